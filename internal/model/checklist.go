package model

import "slices"

// CheckListItem is a sub-item of a task. Index is stable for the life of
// the item and unique within its task.
type CheckListItem struct {
	Index   uint64 `json:"index"`
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

func (t *Task) checklistIndex(index uint64) int {
	return slices.IndexFunc(t.CheckList, func(c CheckListItem) bool { return c.Index == index })
}

// AddChecklistItem appends an unchecked item and returns its index.
func (p *Project) AddChecklistItem(taskID uint64, name string) (uint64, error) {
	var index uint64
	err := p.updateTask(taskID, func(t *Task) error {
		index = t.LastCheckListIndex + 1
		t.CheckList = append(t.CheckList, CheckListItem{Index: index, Name: name})
		t.LastCheckListIndex = index
		return nil
	})
	return index, err
}

// RemoveChecklistItem removes an item by index. Remaining items keep their
// indices.
func (p *Project) RemoveChecklistItem(taskID, index uint64) error {
	return p.updateTask(taskID, func(t *Task) error {
		i := t.checklistIndex(index)
		if i < 0 {
			return notFound(KindChecklistItem, index)
		}
		t.CheckList = slices.Delete(t.CheckList, i, i+1)
		return nil
	})
}

// SetChecklistItemChecked sets the checked flag of an item.
func (p *Project) SetChecklistItemChecked(taskID, index uint64, checked bool) error {
	return p.updateTask(taskID, func(t *Task) error {
		i := t.checklistIndex(index)
		if i < 0 {
			return notFound(KindChecklistItem, index)
		}
		t.CheckList[i].Checked = checked
		return nil
	})
}

// TaskChecklist returns a copy of a task's checklist.
func (p *Project) TaskChecklist(taskID uint64) ([]CheckListItem, error) {
	t, err := p.task(taskID)
	if err != nil {
		return nil, err
	}
	return slices.Clone(t.CheckList), nil
}
