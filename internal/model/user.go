package model

import (
	"slices"
	"strings"
)

// User is a person tasks can be assigned to. GitEmail is nil for users
// created by hand without an address.
type User struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	GitEmail *string `json:"git_email"`
}

// Email returns the user's email, or "" when none is set.
func (u User) Email() string {
	if u.GitEmail == nil {
		return ""
	}
	return *u.GitEmail
}

func (p *Project) userIndex(id uint64) int {
	return slices.IndexFunc(p.Users, func(u User) bool { return u.ID == id })
}

func cloneEmail(email *string) *string {
	if email == nil {
		return nil
	}
	e := *email
	return &e
}

// AddUser appends a user and returns its id.
func (p *Project) AddUser(name string, gitEmail *string) (uint64, error) {
	ids := make([]uint64, len(p.Users))
	for i, u := range p.Users {
		ids[i] = u.ID
	}
	id, err := p.allocator().Next(ids)
	if err != nil {
		return 0, err
	}
	p.Users = append(p.Users, User{ID: id, Name: name, GitEmail: cloneEmail(gitEmail)})
	return id, nil
}

// EditUser replaces a user's name and email. A nil email clears it.
func (p *Project) EditUser(id uint64, name string, gitEmail *string) error {
	i := p.userIndex(id)
	if i < 0 {
		return notFound(KindUser, id)
	}
	p.Users[i].Name = name
	p.Users[i].GitEmail = cloneEmail(gitEmail)
	return nil
}

// RemoveUser retracts the user from every task and then deletes the user.
// The existence check happens first, so a failed call changes nothing.
func (p *Project) RemoveUser(id uint64) error {
	i := p.userIndex(id)
	if i < 0 {
		return notFound(KindUser, id)
	}
	now := p.now()
	for j := range p.Tasks {
		t := &p.Tasks[j]
		if !t.IsAssignedTo(id) {
			continue
		}
		t.AssignedTo = slices.DeleteFunc(t.AssignedTo, func(u uint64) bool { return u == id })
		t.UpdatedAt = now
	}
	p.Users = slices.Delete(p.Users, i, i+1)
	return nil
}

// User looks up a user by id.
func (p *Project) User(id uint64) (User, bool) {
	i := p.userIndex(id)
	if i < 0 {
		return User{}, false
	}
	u := p.Users[i]
	u.GitEmail = cloneEmail(u.GitEmail)
	return u, true
}

// UserByEmail finds a user by email, case-insensitively. Users without an
// email never match.
func (p *Project) UserByEmail(email string) (User, bool) {
	email = strings.TrimSpace(email)
	if email == "" {
		return User{}, false
	}
	for _, u := range p.Users {
		if u.GitEmail == nil {
			continue
		}
		if strings.EqualFold(*u.GitEmail, email) {
			return p.User(u.ID)
		}
	}
	return User{}, false
}

// ListUsers returns a copy of all users in insertion order.
func (p *Project) ListUsers() []User {
	users := make([]User, len(p.Users))
	for i, u := range p.Users {
		u.GitEmail = cloneEmail(u.GitEmail)
		users[i] = u
	}
	return users
}
