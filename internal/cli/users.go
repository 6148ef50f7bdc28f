package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dori/crabd/internal/model"
	"github.com/dori/crabd/internal/prompt"
	"github.com/dori/crabd/internal/vcs"
)

func runUsersAdd(ctx context.Context, s *session, args []string) error {
	var added []string
	err := s.Update(ctx, func(p *model.Project) error {
		source, err := choose(ctx, s.prompt, "Choose:", userSources)
		if err != nil {
			return err
		}
		switch source {
		case sourceGit:
			added, err = addGitUsers(ctx, s, p)
		default:
			added, err = addUsersManually(ctx, s, p)
		}
		return err
	})
	if err != nil {
		return err
	}
	if len(added) == 0 {
		return s.out.Info("No users added")
	}
	return s.out.Success("Added %s", strings.Join(added, ", "))
}

// addGitUsers offers the commit authors that are not users yet.
func addGitUsers(ctx context.Context, s *session, p *model.Project) ([]string, error) {
	authors, err := s.git.Authors(ctx)
	if err != nil {
		if errors.Is(err, vcs.ErrGitUnavailable) {
			s.out.Info("git is not installed, add users manually instead")
			return nil, errNothingToDo
		}
		return nil, fmt.Errorf("read git authors: %w", err)
	}

	var known []string
	for _, u := range p.ListUsers() {
		if e := u.Email(); e != "" {
			known = append(known, e)
		}
	}
	authors = vcs.Without(authors, known)
	if len(authors) == 0 {
		s.out.Info("Every git author is already a user")
		return nil, errNothingToDo
	}

	items := make([]prompt.Item, len(authors))
	for i, a := range authors {
		items[i] = prompt.Item{Label: fmt.Sprintf("%s <%s>", a.Name, a.Email)}
	}
	picked, err := s.prompt.MultiSelect(ctx, "Select users to add:", items)
	if err != nil {
		return nil, err
	}

	var added []string
	for _, i := range picked {
		email := authors[i].Email
		if _, err := p.AddUser(authors[i].Name, &email); err != nil {
			return nil, err
		}
		added = append(added, authors[i].Name)
	}
	return added, nil
}

// userFields prompts for a name and an optional email. Emails must be unique
// among users other than self.
func userFields(ctx context.Context, s *session, p *model.Project, self *model.User) (string, *string, error) {
	var name, email string
	if self != nil {
		name, email = self.Name, self.Email()
	}

	name, err := s.prompt.Text(ctx, prompt.TextPrompt{Label: "Name:", Default: name, Required: true, Validate: nonEmpty})
	if err != nil {
		return "", nil, err
	}
	email, err = s.prompt.Text(ctx, prompt.TextPrompt{
		Label:       "Email:",
		Default:     email,
		Placeholder: "optional",
		Validate: func(e string) error {
			if e == "" {
				return nil
			}
			if !strings.Contains(e, "@") {
				return fmt.Errorf("%q is not an email address", e)
			}
			if u, ok := p.UserByEmail(e); ok && (self == nil || u.ID != self.ID) {
				return fmt.Errorf("%s already uses %s", u.Name, e)
			}
			return nil
		},
	})
	if err != nil {
		return "", nil, err
	}
	if email == "" {
		return name, nil, nil
	}
	return name, &email, nil
}

func addUsersManually(ctx context.Context, s *session, p *model.Project) ([]string, error) {
	var added []string
	for {
		name, email, err := userFields(ctx, s, p, nil)
		if err != nil {
			return nil, err
		}
		if _, err := p.AddUser(name, email); err != nil {
			return nil, err
		}
		added = append(added, name)

		more, err := s.prompt.Confirm(ctx, "Add another user?", false)
		if err != nil {
			return nil, err
		}
		if !more {
			return added, nil
		}
	}
}

func runUsersRemove(ctx context.Context, s *session, args []string) error {
	var removed []string
	err := s.Update(ctx, func(p *model.Project) error {
		users, err := s.pickUsers(ctx, "Select users to remove:", p.ListUsers(), func(u model.User) string {
			if n := len(p.TasksForUser(u.ID)); n > 0 {
				return fmt.Sprintf("(%d %s)", n, plural(n, "task", "tasks"))
			}
			return ""
		})
		if err != nil {
			return err
		}
		for _, u := range users {
			if err := p.RemoveUser(u.ID); err != nil {
				return err
			}
			removed = append(removed, u.Name)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		return s.out.Info("No users removed")
	}
	return s.out.Success("Removed %s", strings.Join(removed, ", "))
}

func runUsersEdit(ctx context.Context, s *session, args []string) error {
	var name string
	err := s.Update(ctx, func(p *model.Project) error {
		u, err := s.pickUser(ctx, "Select user:", p.ListUsers())
		if err != nil {
			return err
		}
		var email *string
		name, email, err = userFields(ctx, s, p, &u)
		if err != nil {
			return err
		}
		return p.EditUser(u.ID, name, email)
	})
	if err != nil {
		return err
	}
	return s.out.Success("Updated %s", name)
}

func runUsersAssign(ctx context.Context, s *session, args []string) error {
	var user string
	var names []string
	err := s.Update(ctx, func(p *model.Project) error {
		u, err := s.pickUser(ctx, "Select user:", p.ListUsers())
		if err != nil {
			return err
		}
		var open []model.Task
		for _, t := range p.UnarchivedTasks() {
			if !t.IsAssignedTo(u.ID) {
				open = append(open, t)
			}
		}
		tasks, err := s.pickTasks(ctx, p, "Select tasks to assign:", open, true)
		if err != nil {
			return err
		}
		user = u.Name
		for _, t := range tasks {
			if err := p.AssignTask(u.ID, t.ID); err != nil {
				return err
			}
			names = append(names, t.Name)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return s.out.Info("No tasks assigned")
	}
	return s.out.Success("Assigned %d %s to %s", len(names), plural(len(names), "task", "tasks"), user)
}

func runUsersList(ctx context.Context, s *session, args []string) error {
	return s.View(ctx, func(p *model.Project) error {
		return s.out.UsersList(p)
	})
}

func runUsersPrint(ctx context.Context, s *session, args []string) error {
	id, err := oneID(model.KindUser, args)
	if err != nil {
		return err
	}
	return s.View(ctx, func(p *model.Project) error {
		return s.out.UserDetail(p, id)
	})
}

func runUsersStatus(ctx context.Context, s *session, args []string) error {
	return s.View(ctx, func(p *model.Project) error {
		return s.out.UserStatus(p)
	})
}
