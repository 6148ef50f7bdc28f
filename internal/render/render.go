// Package render prints projects, tasks and users for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dori/crabd/internal/model"
	"github.com/dori/crabd/internal/ui/theme"
)

// TimeLayout formats absolute timestamps.
const TimeLayout = "2006-01-02 15:04"

// Options configure a Renderer.
type Options struct {
	Theme theme.Theme
	Width int
	Color bool
	// Now and Location default to time.Now and time.Local.
	Now      func() time.Time
	Location *time.Location
}

// Renderer writes listings to w.
type Renderer struct {
	w      io.Writer
	styles theme.Styles
	width  int
	now    func() time.Time
	loc    *time.Location
}

// New returns a renderer writing to w.
func New(w io.Writer, opts Options) *Renderer {
	if opts.Theme.Name == "" {
		opts.Theme = theme.Nord
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Renderer{
		w:      w,
		styles: theme.NewStyles(opts.Theme, theme.NewRenderer(w, opts.Color)),
		width:  opts.Width,
		now:    opts.Now,
		loc:    opts.Location,
	}
}

// Styles exposes the renderer's styles to callers printing their own lines.
func (r *Renderer) Styles() theme.Styles {
	return r.styles
}

// Location is the time zone timestamps are shown in.
func (r *Renderer) Location() *time.Location {
	return r.loc
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.w, s)
	return err
}

// Success prints a confirmation line.
func (r *Renderer) Success(format string, args ...any) error {
	return r.println(r.styles.Success.Render(fmt.Sprintf(format, args...)))
}

// Info prints a muted informational line.
func (r *Renderer) Info(format string, args ...any) error {
	return r.println(r.styles.Muted.Render(fmt.Sprintf(format, args...)))
}

func (r *Renderer) time(t time.Time) string {
	return t.In(r.loc).Format(TimeLayout)
}

// table renders rows with the shared table look. muted marks rows drawn in
// the archived style.
func (r *Renderer) table(headers []string, rows [][]string, muted map[int]bool) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.TableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.styles.TableHeader
			case muted[row]:
				return r.styles.Muted.Padding(0, 1)
			default:
				return r.styles.TableCell
			}
		}).
		String()
}

// columns splits the width left over by fixed columns between flexible
// ones, in proportion to weights. Each flexible column gets at least 8.
func (r *Renderer) columns(fixed []int, weights ...int) []int {
	n := len(fixed) + len(weights)
	used := n + 1 + 2*n // borders and cell padding
	for _, w := range fixed {
		used += w
	}
	rest := r.width - used
	total := 0
	for _, w := range weights {
		total += w
	}
	widths := make([]int, len(weights))
	for i, w := range weights {
		widths[i] = max(8, rest*w/total)
	}
	return widths
}

func (r *Renderer) userNames(p *model.Project, ids []uint64, width int) string {
	if len(ids) == 0 {
		return r.styles.Muted.Render("None")
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if u, ok := p.User(id); ok {
			names = append(names, Truncate(u.Name, 10))
		}
	}
	return Truncate(strings.Join(names, ", "), width)
}
