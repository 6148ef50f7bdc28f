package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var dateFormats = []string{
	"2006-01-02",
	"01/02/2006",
	"01-02-2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"Jan 2",
	"2 Jan",
}

// ParseDate parses a day relative to now: today, tomorrow, a weekday name
// (the next one strictly after today), "next week", "+3d" / "+2w" / "in 3
// days", or a calendar date. The result is midnight of that day in now's
// location.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch s {
	case "":
		return time.Time{}, fmt.Errorf("empty date")
	case "today":
		return today, nil
	case "tomorrow", "tom":
		return today.AddDate(0, 0, 1), nil
	case "next week", "nextweek":
		return today.AddDate(0, 0, 7), nil
	}

	if day, ok := weekdays[s]; ok {
		return nextWeekday(today, day), nil
	}
	if days, ok := parseOffset(s); ok {
		return today.AddDate(0, 0, days), nil
	}

	for _, format := range dateFormats {
		t, err := time.ParseInLocation(format, s, now.Location())
		if err != nil {
			continue
		}
		if t.Year() == 0 {
			t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
			// a day-month without a year means the next such day
			if t.Before(today) {
				t = t.AddDate(1, 0, 0)
			}
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func nextWeekday(today time.Time, day time.Weekday) time.Time {
	daysUntil := int(day - today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDate(0, 0, daysUntil)
}

// parseOffset reads "+3d", "3d", "+2w", "in 3 days" and "in 1 week".
func parseOffset(s string) (int, bool) {
	s = strings.TrimPrefix(s, "in ")
	s = strings.TrimPrefix(s, "+")
	s = strings.ReplaceAll(s, " ", "")

	unit := 1
	switch {
	case strings.HasSuffix(s, "days"):
		s = strings.TrimSuffix(s, "days")
	case strings.HasSuffix(s, "day"):
		s = strings.TrimSuffix(s, "day")
	case strings.HasSuffix(s, "d"):
		s = strings.TrimSuffix(s, "d")
	case strings.HasSuffix(s, "weeks"):
		s, unit = strings.TrimSuffix(s, "weeks"), 7
	case strings.HasSuffix(s, "week"):
		s, unit = strings.TrimSuffix(s, "week"), 7
	case strings.HasSuffix(s, "w"):
		s, unit = strings.TrimSuffix(s, "w"), 7
	default:
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n * unit, true
}

// ParseClock parses a 24-hour "HH:MM" time of day.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	return t.Hour(), t.Minute(), nil
}

// DueTime is the time-of-day choice offered after picking a due day.
type DueTime int

const (
	DueNoon DueTime = iota
	DueMidnight
	DueCustom
)

var dueTimes = []DueTime{DueNoon, DueMidnight, DueCustom}

func (d DueTime) String() string {
	switch d {
	case DueNoon:
		return "Noon"
	case DueMidnight:
		return "Midnight"
	default:
		return "Custom"
	}
}

// AskDueDate asks for a due day and a time of day and returns the instant
// in UTC. Noon is 12:00 and Midnight is 23:59 of the chosen day, in now's
// location.
func AskDueDate(ctx context.Context, p Prompter, now time.Time) (time.Time, error) {
	answer, err := p.Text(ctx, TextPrompt{
		Label:       "Due date:",
		Placeholder: "tomorrow, fri, +3d, 2024-03-05",
		Required:    true,
		Validate: func(s string) error {
			_, err := ParseDate(s, now)
			return err
		},
	})
	if err != nil {
		return time.Time{}, err
	}
	day, err := ParseDate(answer, now)
	if err != nil {
		return time.Time{}, err
	}

	items := make([]Item, len(dueTimes))
	for i, d := range dueTimes {
		items[i] = Item{Label: d.String()}
	}
	items[DueNoon].Note = "12:00"
	items[DueMidnight].Note = "23:59"
	i, err := p.Select(ctx, "Due time:", items)
	if err != nil {
		return time.Time{}, err
	}

	var hour, minute int
	switch dueTimes[i] {
	case DueNoon:
		hour = 12
	case DueMidnight:
		hour, minute = 23, 59
	case DueCustom:
		clock, err := p.Text(ctx, TextPrompt{
			Label:       "Due time (HH:MM):",
			Placeholder: "17:30",
			Required:    true,
			Validate: func(s string) error {
				_, _, err := ParseClock(s)
				return err
			},
		})
		if err != nil {
			return time.Time{}, err
		}
		if hour, minute, err = ParseClock(clock); err != nil {
			return time.Time{}, err
		}
	}

	due := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
	return due.UTC(), nil
}
