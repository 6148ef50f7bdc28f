package render

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Urgency classifies how close a due date is.
type Urgency int

const (
	UrgencyLater Urgency = iota
	UrgencySoon
	UrgencyOverdue
)

// Soon is the horizon under which a due date counts as close.
const Soon = 24 * time.Hour

const (
	day  = 24 * time.Hour
	week = 7 * day
	year = 365 * day
)

// RelativeDue formats the time left until a due date in its largest whole
// unit: s, m, h, d, w or y. Negative durations are overdue and keep their
// sign, so "-3d" is three days late.
func RelativeDue(d time.Duration) (string, Urgency) {
	overdue := d < 0
	if overdue {
		d = -d
	}

	var value int64
	var unit string
	switch {
	case d < time.Minute:
		value, unit = int64(d/time.Second), "s"
	case d < time.Hour:
		value, unit = int64(d/time.Minute), "m"
	case d < day:
		value, unit = int64(d/time.Hour), "h"
	case d < week:
		value, unit = int64(d/day), "d"
	case d < year:
		value, unit = int64(d/week), "w"
	default:
		value, unit = int64(d/year), "y"
	}

	switch {
	case overdue:
		return fmt.Sprintf("-%d%s", value, unit), UrgencyOverdue
	case d < Soon:
		return fmt.Sprintf("%d%s", value, unit), UrgencySoon
	default:
		return fmt.Sprintf("%d%s", value, unit), UrgencyLater
	}
}

func (r *Renderer) urgencyStyle(u Urgency) lipgloss.Style {
	switch u {
	case UrgencyOverdue:
		return r.styles.Overdue
	case UrgencySoon:
		return r.styles.DueSoon
	default:
		return r.styles.DueLater
	}
}

// due renders the relative due cell for a task due at t, or "" when unset.
func (r *Renderer) due(t *time.Time) string {
	if t == nil {
		return ""
	}
	text, u := RelativeDue(t.Sub(r.now()))
	return r.urgencyStyle(u).Render(text)
}
