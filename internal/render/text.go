package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Truncate shortens s to at most max display columns, ending in an
// ellipsis when anything was cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, Ellipsis)
}

// FirstLine returns the first line of s, marked with an ellipsis when more
// lines follow.
func FirstLine(s string) string {
	s = strings.TrimSpace(s)
	line, rest, found := strings.Cut(s, "\n")
	line = strings.TrimRight(line, "\r ")
	if found && strings.TrimSpace(rest) != "" {
		return line + " " + Ellipsis
	}
	return line
}

// Wrap breaks s into lines of at most width display columns, splitting at
// whitespace. Existing line breaks are kept; words longer than width get a
// line of their own.
func Wrap(s string, width int) []string {
	if width <= 0 {
		width = 1
	}
	var lines []string
	for _, paragraph := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		var b strings.Builder
		used := 0
		for _, word := range words {
			w := runewidth.StringWidth(word)
			if used > 0 && used+1+w > width {
				lines = append(lines, b.String())
				b.Reset()
				used = 0
			}
			if used > 0 {
				b.WriteByte(' ')
				used++
			}
			b.WriteString(word)
			used += w
		}
		lines = append(lines, b.String())
	}
	return lines
}
