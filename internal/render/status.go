package render

import (
	"fmt"
	"strings"

	"github.com/dori/crabd/internal/model"
)

// ProjectStatus prints the project summary.
func (r *Renderer) ProjectStatus(st model.ProjectStatus) error {
	s := r.styles
	var b strings.Builder
	fmt.Fprintln(&b, s.Title.Render(st.Name))

	line := func(label string, value int, render func(...string) string) {
		fmt.Fprintf(&b, "%s %s\n", s.Label.Render(fmt.Sprintf("%-11s", label)), render(fmt.Sprint(value)))
	}
	line("Tasks", st.Total, s.Value.Render)
	line("Active", st.Active, s.Value.Render)
	line("Archived", st.Archived, s.Muted.Render)
	line("Unassigned", st.Unassigned, s.Value.Render)
	if st.Overdue > 0 {
		line("Overdue", st.Overdue, s.Overdue.Render)
	} else {
		line("Overdue", st.Overdue, s.Value.Render)
	}
	line("Users", st.Users, s.Value.Render)

	if len(st.Categories) > 0 {
		b.WriteByte('\n')
		fmt.Fprintln(&b, s.Subtitle.Render("Categories"))
		for _, c := range st.Categories {
			name := Truncate(c.Category.Name, 20)
			if c.IsDefault {
				name += " " + s.Default.Render("*")
			}
			fmt.Fprintf(&b, "  %s %s\n", name, s.Muted.Render(fmt.Sprintf("%d active, %d archived", c.Active, c.Archived)))
		}
	}
	return r.println(strings.TrimRight(b.String(), "\n"))
}
