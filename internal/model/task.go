package model

import (
	"slices"
	"time"
)

// Task is a unit of work. Category and AssignedTo are references by id;
// the owning Project keeps them resolvable.
type Task struct {
	ID          uint64
	Name        string
	Description string
	Category    uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ArchivedAt  *time.Time // nil while the task is active
	DueDate     *time.Time
	AssignedTo  []uint64 // user ids, no duplicates, assignment order
	CheckList   []CheckListItem

	// LastCheckListIndex only grows, so removed indices are never reused.
	LastCheckListIndex uint64
}

// IsArchived reports whether the task has been archived.
func (t *Task) IsArchived() bool {
	return t.ArchivedAt != nil
}

// IsOverdue reports whether an active task is past its due date at now.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.IsArchived() {
		return false
	}
	return now.After(*t.DueDate)
}

// IsAssignedTo reports whether userID is in the task's assignment set.
func (t *Task) IsAssignedTo(userID uint64) bool {
	return slices.Contains(t.AssignedTo, userID)
}

// clone returns a copy that shares no slices with t.
func (t Task) clone() Task {
	t.AssignedTo = slices.Clone(t.AssignedTo)
	t.CheckList = slices.Clone(t.CheckList)
	if t.ArchivedAt != nil {
		at := *t.ArchivedAt
		t.ArchivedAt = &at
	}
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}

func (p *Project) taskIndex(id uint64) int {
	return slices.IndexFunc(p.Tasks, func(t Task) bool { return t.ID == id })
}

// task returns a pointer into p.Tasks; it is invalidated by appends and deletes.
func (p *Project) task(id uint64) (*Task, error) {
	i := p.taskIndex(id)
	if i < 0 {
		return nil, notFound(KindTask, id)
	}
	return &p.Tasks[i], nil
}

// updateTask applies fn to the task and refreshes UpdatedAt when fn succeeds.
func (p *Project) updateTask(id uint64, fn func(*Task) error) error {
	t, err := p.task(id)
	if err != nil {
		return err
	}
	if err := fn(t); err != nil {
		return err
	}
	t.UpdatedAt = p.now()
	return nil
}

// AddTask creates a task in the default category and returns its id.
func (p *Project) AddTask(name, description string) (uint64, error) {
	if p.DefaultCategory == nil {
		return 0, &InvalidReferenceError{Kind: KindCategory, Reason: "project has no default category"}
	}
	category := *p.DefaultCategory
	if p.categoryIndex(category) < 0 {
		return 0, &InvalidReferenceError{Kind: KindCategory, ID: category, Reason: "default category does not exist"}
	}

	ids := make([]uint64, len(p.Tasks))
	for i, t := range p.Tasks {
		ids[i] = t.ID
	}
	id, err := p.allocator().Next(ids)
	if err != nil {
		return 0, err
	}

	now := p.now()
	p.Tasks = append(p.Tasks, Task{
		ID:          id,
		Name:        name,
		Description: description,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	return id, nil
}

// EditTaskName renames a task.
func (p *Project) EditTaskName(id uint64, name string) error {
	return p.updateTask(id, func(t *Task) error {
		t.Name = name
		return nil
	})
}

// EditTaskDescription replaces a task's description.
func (p *Project) EditTaskDescription(id uint64, description string) error {
	return p.updateTask(id, func(t *Task) error {
		t.Description = description
		return nil
	})
}

// MoveTask reassigns a task to another category. The category must exist.
func (p *Project) MoveTask(taskID, categoryID uint64) error {
	return p.updateTask(taskID, func(t *Task) error {
		if p.categoryIndex(categoryID) < 0 {
			return &InvalidReferenceError{Kind: KindCategory, ID: categoryID, Reason: "category does not exist"}
		}
		t.Category = categoryID
		return nil
	})
}

// ArchiveTask marks a task inactive. Archiving an archived task refreshes
// the timestamp.
func (p *Project) ArchiveTask(id uint64) error {
	return p.updateTask(id, func(t *Task) error {
		now := p.now()
		t.ArchivedAt = &now
		return nil
	})
}

// UnarchiveTask makes an archived task active again.
func (p *Project) UnarchiveTask(id uint64) error {
	return p.updateTask(id, func(t *Task) error {
		t.ArchivedAt = nil
		return nil
	})
}

// RemoveTask deletes a task. Its assignments live on the task and go with it.
func (p *Project) RemoveTask(id uint64) error {
	i := p.taskIndex(id)
	if i < 0 {
		return notFound(KindTask, id)
	}
	p.Tasks = slices.Delete(p.Tasks, i, i+1)
	return nil
}

// SetTaskDueDate sets the due date, stored in UTC.
func (p *Project) SetTaskDueDate(id uint64, due time.Time) error {
	return p.updateTask(id, func(t *Task) error {
		d := due.UTC().Truncate(time.Second)
		t.DueDate = &d
		return nil
	})
}

// ClearTaskDueDate removes the due date.
func (p *Project) ClearTaskDueDate(id uint64) error {
	return p.updateTask(id, func(t *Task) error {
		t.DueDate = nil
		return nil
	})
}

// Task returns a copy of the task with the given id.
func (p *Project) Task(id uint64) (Task, bool) {
	i := p.taskIndex(id)
	if i < 0 {
		return Task{}, false
	}
	return p.Tasks[i].clone(), true
}

// TaskDescription returns a task's description.
func (p *Project) TaskDescription(id uint64) (string, error) {
	t, err := p.task(id)
	if err != nil {
		return "", err
	}
	return t.Description, nil
}

// TaskDueDate returns a task's due date, nil when unset.
func (p *Project) TaskDueDate(id uint64) (*time.Time, error) {
	t, err := p.task(id)
	if err != nil {
		return nil, err
	}
	if t.DueDate == nil {
		return nil, nil
	}
	due := *t.DueDate
	return &due, nil
}
