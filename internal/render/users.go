package render

import (
	"fmt"
	"strconv"

	"github.com/dori/crabd/internal/model"
)

func emailOrNone(u model.User) string {
	if e := u.Email(); e != "" {
		return e
	}
	return "no email"
}

// UsersList prints every user.
func (r *Renderer) UsersList(p *model.Project) error {
	users := p.ListUsers()
	if len(users) == 0 {
		return r.Info("No users")
	}
	flex := r.columns([]int{4}, 1, 1)
	rows := make([][]string, len(users))
	muted := make(map[int]bool)
	for i, u := range users {
		rows[i] = []string{
			strconv.FormatUint(u.ID, 10),
			Truncate(u.Name, flex[0]),
			Truncate(emailOrNone(u), flex[1]),
		}
		muted[i] = u.GitEmail == nil
	}
	return r.println(r.table([]string{"ID", "Name", "Email"}, rows, muted))
}

// UserDetail prints one user and the tasks assigned to them.
func (r *Renderer) UserDetail(p *model.Project, userID uint64) error {
	u, ok := p.User(userID)
	if !ok {
		return &model.NotFoundError{Kind: model.KindUser, ID: userID}
	}
	s := r.styles
	heading := fmt.Sprintf("%s %s %s", s.Title.Render(u.Name), s.Muted.Render(fmt.Sprintf("#%d", u.ID)),
		s.Muted.Render("<"+emailOrNone(u)+">"))
	if err := r.println(heading); err != nil {
		return err
	}
	tasks := p.TasksForUser(userID)
	if len(tasks) == 0 {
		return r.Info("No tasks assigned")
	}
	p.SortByCategory(tasks)
	return r.TaskTable(p, tasks)
}

// UserStatus prints the workload of every user.
func (r *Renderer) UserStatus(p *model.Project) error {
	workloads := p.UserWorkloads()
	if len(workloads) == 0 {
		return r.Info("No users")
	}
	nameW := r.columns([]int{4, 6, 7, 8}, 1)[0]
	rows := make([][]string, len(workloads))
	for i, w := range workloads {
		overdue := strconv.Itoa(w.Overdue)
		if w.Overdue > 0 {
			overdue = r.styles.Overdue.Render(overdue)
		}
		rows[i] = []string{
			strconv.FormatUint(w.User.ID, 10),
			Truncate(w.User.Name, nameW),
			strconv.Itoa(w.Active),
			overdue,
			strconv.Itoa(w.Archived),
		}
	}
	return r.println(r.table([]string{"ID", "User", "Active", "Overdue", "Archived"}, rows, nil))
}
