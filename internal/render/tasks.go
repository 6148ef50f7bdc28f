package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dori/crabd/internal/model"
)

// TaskTable lists tasks in the order given.
func (r *Renderer) TaskTable(p *model.Project, tasks []model.Task) error {
	if len(tasks) == 0 {
		return r.Info("No tasks")
	}
	const idW, categoryW, assignedW, dueW = 4, 10, 10, 8
	flex := r.columns([]int{idW, categoryW, assignedW, dueW}, 3, 2)
	nameW, descW := flex[0], flex[1]

	rows := make([][]string, len(tasks))
	muted := make(map[int]bool)
	for i, t := range tasks {
		category, _ := p.CategoryName(t.Category)
		rows[i] = []string{
			strconv.FormatUint(t.ID, 10),
			Truncate(t.Name, nameW),
			Truncate(FirstLine(t.Description), descW),
			Truncate(category, categoryW),
			r.userNames(p, t.AssignedTo, assignedW),
			r.due(t.DueDate),
		}
		if t.IsArchived() {
			muted[i] = true
			rows[i][5] = "archived"
		}
	}
	return r.println(r.table([]string{"ID", "Name", "Description", "Category", "Assigned To", "Due"}, rows, muted))
}

// TaskDetail prints every field of one task.
func (r *Renderer) TaskDetail(d model.TaskDetail) error {
	t := d.Task
	inner := r.width - 4
	s := r.styles

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", s.Title.Render(t.Name), s.Muted.Render(fmt.Sprintf("#%d", t.ID)))
	if strings.TrimSpace(t.Description) != "" {
		b.WriteByte('\n')
		for _, line := range Wrap(t.Description, inner) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')

	field := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", s.Label.Render(fmt.Sprintf("%-10s", label+":")), value)
	}
	field("Category", s.Value.Render(d.CategoryName))
	if t.ArchivedAt != nil {
		field("Status", s.TaskArchived.Render("archived")+" "+s.Muted.Render(r.time(*t.ArchivedAt)))
	} else {
		field("Status", s.Value.Render("active"))
	}
	field("Created", s.Value.Render(r.time(t.CreatedAt)))
	field("Updated", s.Value.Render(r.time(t.UpdatedAt)))
	if t.DueDate != nil {
		field("Due", s.Value.Render(r.time(*t.DueDate))+" "+r.due(t.DueDate))
	} else {
		field("Due", s.Muted.Render("not set"))
	}

	if len(d.Assigned) == 0 {
		field("Assigned", s.Muted.Render("No users assigned to task"))
	} else {
		field("Assigned", "")
		for _, u := range d.Assigned {
			email := u.Email()
			if email == "" {
				email = "no email"
			}
			fmt.Fprintf(&b, "  • %s %s\n", s.Assignee.Render(u.Name), s.Muted.Render("<"+email+">"))
		}
	}

	if len(t.CheckList) > 0 {
		done := 0
		for _, item := range t.CheckList {
			if item.Checked {
				done++
			}
		}
		field("Checklist", s.Muted.Render(fmt.Sprintf("%d/%d done", done, len(t.CheckList))))
		for _, item := range t.CheckList {
			box, style := "[ ]", s.Unchecked
			if item.Checked {
				box, style = "[x]", s.Checked
			}
			fmt.Fprintf(&b, "  %s %s %s\n", style.Render(box), s.Muted.Render(strconv.FormatUint(item.Index, 10)),
				style.Render(Truncate(item.Name, inner-8)))
		}
	}

	return r.println(s.Panel.Width(r.width - 2).Render(strings.TrimRight(b.String(), "\n")))
}

// DueList lists tasks with due dates, soonest first, with absolute and
// relative due times.
func (r *Renderer) DueList(p *model.Project, tasks []model.Task) error {
	if len(tasks) == 0 {
		return r.Info("Nothing due")
	}
	const idW, categoryW, dueW, inW = 4, 12, 16, 5
	nameW := r.columns([]int{idW, categoryW, dueW, inW}, 1)[0]

	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		category, _ := p.CategoryName(t.Category)
		rows[i] = []string{
			strconv.FormatUint(t.ID, 10),
			Truncate(t.Name, nameW),
			Truncate(category, categoryW),
			r.time(*t.DueDate),
			r.due(t.DueDate),
		}
	}
	return r.println(r.table([]string{"ID", "Name", "Category", "Due", "In"}, rows, nil))
}

// taskJSON is the export format of `crabd print --json`. Absent timestamps
// are 0 and "".
type taskJSON struct {
	ID             uint64                `json:"id"`
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	CategoryID     uint64                `json:"category_id"`
	Category       string                `json:"category"`
	CreatedAtUnix  int64                 `json:"created_at_utc_unix"`
	CreatedAt      string                `json:"created_at_utc"`
	UpdatedAtUnix  int64                 `json:"updated_at_utc_unix"`
	UpdatedAt      string                `json:"updated_at_utc"`
	ArchivedAtUnix int64                 `json:"archived_at_utc_unix"`
	ArchivedAt     string                `json:"archived_at_utc"`
	DueDateUnix    int64                 `json:"due_date_utc_unix"`
	DueDate        string                `json:"due_date_utc"`
	AssignedToIDs  []uint64              `json:"assigned_to_ids"`
	AssignedTo     []string              `json:"assigned_to"`
	CheckList      []model.CheckListItem `json:"check_list"`
}

const jsonTimeLayout = "2006-01-02 15:04:05"

func exportTime(t *time.Time) (int64, string) {
	if t == nil {
		return 0, ""
	}
	return t.Unix(), t.UTC().Format(jsonTimeLayout)
}

// TasksJSON writes tasks as an indented JSON array with resolved names.
func (r *Renderer) TasksJSON(p *model.Project, tasks []model.Task) error {
	out := make([]taskJSON, len(tasks))
	for i, t := range tasks {
		category, _ := p.CategoryName(t.Category)
		j := taskJSON{
			ID:            t.ID,
			Name:          t.Name,
			Description:   t.Description,
			CategoryID:    t.Category,
			Category:      category,
			AssignedToIDs: append([]uint64{}, t.AssignedTo...),
			AssignedTo:    []string{},
			CheckList:     append([]model.CheckListItem{}, t.CheckList...),
		}
		j.CreatedAtUnix, j.CreatedAt = exportTime(&t.CreatedAt)
		j.UpdatedAtUnix, j.UpdatedAt = exportTime(&t.UpdatedAt)
		j.ArchivedAtUnix, j.ArchivedAt = exportTime(t.ArchivedAt)
		j.DueDateUnix, j.DueDate = exportTime(t.DueDate)
		for _, id := range t.AssignedTo {
			if u, ok := p.User(id); ok {
				j.AssignedTo = append(j.AssignedTo, u.Name)
			}
		}
		out[i] = j
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	_, err = fmt.Fprintf(r.w, "%s\n", data)
	return err
}
