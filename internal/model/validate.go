package model

import (
	"errors"
	"fmt"
)

// Validate checks the referential invariants of a project, typically right
// after it has been decoded. It reports every violation it finds.
func (p *Project) Validate() error {
	var errs []error

	dup := func(kind Kind, ids []uint64) {
		seen := make(map[uint64]bool, len(ids))
		for _, id := range ids {
			if seen[id] {
				errs = append(errs, fmt.Errorf("%s %d: %w", kind, id, ErrDuplicateID))
			}
			seen[id] = true
		}
	}

	dup(KindCategory, p.categoryIDs())
	taskIDs := make([]uint64, len(p.Tasks))
	for i, t := range p.Tasks {
		taskIDs[i] = t.ID
	}
	dup(KindTask, taskIDs)
	userIDs := make([]uint64, len(p.Users))
	for i, u := range p.Users {
		userIDs[i] = u.ID
	}
	dup(KindUser, userIDs)

	if p.DefaultCategory != nil && p.categoryIndex(*p.DefaultCategory) < 0 {
		errs = append(errs, &InvalidReferenceError{
			Kind: KindCategory, ID: *p.DefaultCategory, Reason: "default category does not exist",
		})
	}

	for _, t := range p.Tasks {
		if p.categoryIndex(t.Category) < 0 {
			errs = append(errs, &InvalidReferenceError{
				Kind: KindCategory, ID: t.Category, Reason: fmt.Sprintf("task %d points at a missing category", t.ID),
			})
		}
		seen := make(map[uint64]bool, len(t.AssignedTo))
		for _, u := range t.AssignedTo {
			if seen[u] {
				errs = append(errs, fmt.Errorf("task %d assigned to user %d twice: %w", t.ID, u, ErrDuplicateID))
			}
			seen[u] = true
			if p.userIndex(u) < 0 {
				errs = append(errs, &InvalidReferenceError{
					Kind: KindUser, ID: u, Reason: fmt.Sprintf("task %d is assigned to a missing user", t.ID),
				})
			}
		}
		indices := make(map[uint64]bool, len(t.CheckList))
		for _, item := range t.CheckList {
			if indices[item.Index] {
				errs = append(errs, fmt.Errorf("task %d checklist item %d: %w", t.ID, item.Index, ErrDuplicateID))
			}
			indices[item.Index] = true
			if item.Index > t.LastCheckListIndex {
				errs = append(errs, fmt.Errorf("task %d checklist item %d is above last index %d: %w",
					t.ID, item.Index, t.LastCheckListIndex, ErrInvalidReference))
			}
		}
	}

	return errors.Join(errs...)
}
