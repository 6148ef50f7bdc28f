package model

import "slices"

// AssignTask adds userID to the task's assignees. Assigning twice is a no-op.
func (p *Project) AssignTask(userID, taskID uint64) error {
	if p.userIndex(userID) < 0 {
		return notFound(KindUser, userID)
	}
	t, err := p.task(taskID)
	if err != nil {
		return err
	}
	if t.IsAssignedTo(userID) {
		return nil
	}
	t.AssignedTo = append(t.AssignedTo, userID)
	t.UpdatedAt = p.now()
	return nil
}

// UnassignTask removes userID from the task's assignees. It is a no-op when
// the user is not assigned, including when the user no longer exists.
func (p *Project) UnassignTask(userID, taskID uint64) error {
	t, err := p.task(taskID)
	if err != nil {
		return err
	}
	if !t.IsAssignedTo(userID) {
		return nil
	}
	t.AssignedTo = slices.DeleteFunc(t.AssignedTo, func(u uint64) bool { return u == userID })
	t.UpdatedAt = p.now()
	return nil
}

// AssignedUsers resolves the task's assignees in assignment order.
func (p *Project) AssignedUsers(taskID uint64) ([]User, error) {
	t, err := p.task(taskID)
	if err != nil {
		return nil, err
	}
	users := make([]User, 0, len(t.AssignedTo))
	for _, id := range t.AssignedTo {
		if u, ok := p.User(id); ok {
			users = append(users, u)
		}
	}
	return users, nil
}
