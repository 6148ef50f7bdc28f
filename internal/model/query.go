package model

import (
	"slices"
	"time"
)

// TaskDetail is a task with its foreign ids resolved for display.
type TaskDetail struct {
	Task         Task
	CategoryName string
	Assigned     []User
}

// CategorySummary counts the tasks of one category.
type CategorySummary struct {
	Category  Category
	IsDefault bool
	Total     int
	Active    int
	Archived  int
}

// UserWorkload counts the tasks assigned to one user.
type UserWorkload struct {
	User     User
	Active   int
	Archived int
	Overdue  int
}

// ProjectStatus is the summary shown by the status command.
type ProjectStatus struct {
	Name       string
	Categories []CategorySummary
	Total      int
	Active     int
	Archived   int
	Unassigned int // active tasks nobody is assigned to
	Overdue    int
	Users      int
}

func (p *Project) filterTasks(keep func(*Task) bool) []Task {
	var tasks []Task
	for i := range p.Tasks {
		if keep(&p.Tasks[i]) {
			tasks = append(tasks, p.Tasks[i].clone())
		}
	}
	return tasks
}

// AllTasks returns every task, archived or not, in insertion order.
func (p *Project) AllTasks() []Task {
	return p.filterTasks(func(*Task) bool { return true })
}

// UnarchivedTasks returns the active tasks.
func (p *Project) UnarchivedTasks() []Task {
	return p.filterTasks(func(t *Task) bool { return !t.IsArchived() })
}

// ArchivedTasks returns the archived tasks.
func (p *Project) ArchivedTasks() []Task {
	return p.filterTasks(func(t *Task) bool { return t.IsArchived() })
}

// TasksInCategory returns every task in a category.
func (p *Project) TasksInCategory(categoryID uint64) []Task {
	return p.filterTasks(func(t *Task) bool { return t.Category == categoryID })
}

// TasksForUser returns every task assigned to a user.
func (p *Project) TasksForUser(userID uint64) []Task {
	return p.filterTasks(func(t *Task) bool { return t.IsAssignedTo(userID) })
}

// TasksDueBefore returns active tasks due at or before deadline, earliest
// first.
func (p *Project) TasksDueBefore(deadline time.Time) []Task {
	tasks := p.filterTasks(func(t *Task) bool {
		return !t.IsArchived() && t.DueDate != nil && !t.DueDate.After(deadline)
	})
	slices.SortStableFunc(tasks, func(a, b Task) int {
		return a.DueDate.Compare(*b.DueDate)
	})
	return tasks
}

// SortByCategory orders tasks by the display order of their categories,
// keeping insertion order within a category.
func (p *Project) SortByCategory(tasks []Task) {
	rank := make(map[uint64]int, len(p.Categories))
	for i, c := range p.Categories {
		rank[c.ID] = i
	}
	slices.SortStableFunc(tasks, func(a, b Task) int {
		return rank[a.Category] - rank[b.Category]
	})
}

// TaskDetail resolves a task for display.
func (p *Project) TaskDetail(id uint64) (TaskDetail, error) {
	t, ok := p.Task(id)
	if !ok {
		return TaskDetail{}, notFound(KindTask, id)
	}
	users, err := p.AssignedUsers(id)
	if err != nil {
		return TaskDetail{}, err
	}
	name, _ := p.CategoryName(t.Category)
	return TaskDetail{Task: t, CategoryName: name, Assigned: users}, nil
}

// CategorySummaries counts tasks per category in display order.
func (p *Project) CategorySummaries() []CategorySummary {
	summaries := make([]CategorySummary, len(p.Categories))
	index := make(map[uint64]int, len(p.Categories))
	for i, c := range p.Categories {
		summaries[i] = CategorySummary{Category: c, IsDefault: p.IsDefaultCategory(c.ID)}
		index[c.ID] = i
	}
	for _, t := range p.Tasks {
		i, ok := index[t.Category]
		if !ok {
			continue
		}
		summaries[i].Total++
		if t.IsArchived() {
			summaries[i].Archived++
		} else {
			summaries[i].Active++
		}
	}
	return summaries
}

// UserWorkloads counts assigned tasks per user in insertion order.
func (p *Project) UserWorkloads() []UserWorkload {
	now := p.now()
	workloads := make([]UserWorkload, 0, len(p.Users))
	for _, u := range p.ListUsers() {
		w := UserWorkload{User: u}
		for i := range p.Tasks {
			t := &p.Tasks[i]
			if !t.IsAssignedTo(u.ID) {
				continue
			}
			switch {
			case t.IsArchived():
				w.Archived++
			case t.IsOverdue(now):
				w.Active++
				w.Overdue++
			default:
				w.Active++
			}
		}
		workloads = append(workloads, w)
	}
	return workloads
}

// Status summarizes the project.
func (p *Project) Status() ProjectStatus {
	now := p.now()
	s := ProjectStatus{
		Name:       p.Name,
		Categories: p.CategorySummaries(),
		Total:      len(p.Tasks),
		Users:      len(p.Users),
	}
	for i := range p.Tasks {
		t := &p.Tasks[i]
		if t.IsArchived() {
			s.Archived++
			continue
		}
		s.Active++
		if len(t.AssignedTo) == 0 {
			s.Unassigned++
		}
		if t.IsOverdue(now) {
			s.Overdue++
		}
	}
	return s
}
