package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dori/crabd/internal/model"
	"github.com/dori/crabd/internal/prompt"
	"github.com/dori/crabd/internal/render"
)

// createTasks creates tasks until the user stops.
func createTasks(ctx context.Context, s *session, p *model.Project) error {
	for {
		if err := createTask(ctx, s, p); err != nil {
			return err
		}
		more, err := s.prompt.Confirm(ctx, "Create another task?", false)
		if err != nil || !more {
			return err
		}
	}
}

func createTask(ctx context.Context, s *session, p *model.Project) error {
	name, err := s.prompt.Text(ctx, prompt.TextPrompt{Label: "Task name:", Required: true})
	if err != nil {
		return err
	}
	description, err := s.prompt.Text(ctx, prompt.TextPrompt{Label: "Description:", Placeholder: "optional"})
	if err != nil {
		return err
	}
	id, err := p.AddTask(name, description)
	if err != nil {
		return err
	}

	if users := p.ListUsers(); len(users) > 0 {
		assign, err := s.pickUsers(ctx, "Assign users:", users, nil)
		if err != nil {
			return err
		}
		for _, u := range assign {
			if err := p.AssignTask(u.ID, id); err != nil {
				return err
			}
		}
	}

	due, err := s.prompt.Confirm(ctx, "Set a due date?", false)
	if err != nil {
		return err
	}
	if due {
		if err := setDueDate(ctx, s, p, id); err != nil {
			return err
		}
	}

	checklist, err := s.prompt.Confirm(ctx, "Add checklist items?", false)
	if err != nil {
		return err
	}
	if checklist {
		if err := addChecklistItems(ctx, s, p, id); err != nil {
			return err
		}
	}

	s.Logger.Debug("task created", "id", id, "name", name)
	return nil
}

func setDueDate(ctx context.Context, s *session, p *model.Project, taskID uint64) error {
	due, err := prompt.AskDueDate(ctx, s.prompt, s.localNow())
	if err != nil {
		return err
	}
	return p.SetTaskDueDate(taskID, due)
}

func addChecklistItems(ctx context.Context, s *session, p *model.Project, taskID uint64) error {
	for {
		name, err := s.prompt.Text(ctx, prompt.TextPrompt{Label: "Checklist item name:", Required: true})
		if err != nil {
			return err
		}
		if _, err := p.AddChecklistItem(taskID, name); err != nil {
			return err
		}
		more, err := s.prompt.Confirm(ctx, "Add another checklist item?", false)
		if err != nil || !more {
			return err
		}
	}
}

func runTasksAdd(ctx context.Context, s *session, args []string) error {
	var before, after int
	err := s.Update(ctx, func(p *model.Project) error {
		before = len(p.Tasks)
		if err := createTasks(ctx, s, p); err != nil {
			return err
		}
		after = len(p.Tasks)
		return nil
	})
	if err != nil {
		return err
	}
	n := after - before
	return s.out.Success("Added %d %s", n, plural(n, "task", "tasks"))
}

func runTasksRemove(ctx context.Context, s *session, args []string) error {
	var removed []string
	err := s.Update(ctx, func(p *model.Project) error {
		tasks, err := s.pickTasks(ctx, p, "Select tasks to remove:", p.AllTasks(), true)
		if err != nil {
			return err
		}
		for _, t := range tasks {
			ok, err := s.prompt.Confirm(ctx, fmt.Sprintf("Confirm deletion of task %q", t.Name), false)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := p.RemoveTask(t.ID); err != nil {
				return err
			}
			removed = append(removed, t.Name)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return reportNames(s, "Removed", removed)
}

func runTasksArchive(ctx context.Context, s *session, args []string) error {
	var archived []string
	err := s.Update(ctx, func(p *model.Project) error {
		tasks, err := s.pickTasks(ctx, p, "Select tasks to archive:", p.UnarchivedTasks(), true)
		if err != nil {
			return err
		}
		for _, t := range tasks {
			if err := p.ArchiveTask(t.ID); err != nil {
				return err
			}
			archived = append(archived, t.Name)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return reportNames(s, "Archived", archived)
}

func runTasksUnarchive(ctx context.Context, s *session, args []string) error {
	var restored []string
	err := s.Update(ctx, func(p *model.Project) error {
		tasks, err := s.pickTasks(ctx, p, "Select tasks to restore:", p.ArchivedTasks(), true)
		if err != nil {
			return err
		}
		for _, t := range tasks {
			if err := p.UnarchiveTask(t.ID); err != nil {
				return err
			}
			restored = append(restored, t.Name)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return reportNames(s, "Restored", restored)
}

func runTasksAssign(ctx context.Context, s *session, args []string) error {
	var task string
	var names []string
	err := s.Update(ctx, func(p *model.Project) error {
		t, err := s.pickTask(ctx, p, "Select task to assign:", p.UnarchivedTasks())
		if err != nil {
			return err
		}
		users, err := s.pickUsers(ctx, "Select users to assign:", p.ListUsers(), func(u model.User) string {
			if t.IsAssignedTo(u.ID) {
				return "(assigned)"
			}
			return ""
		})
		if err != nil {
			return err
		}
		task = t.Name
		for _, u := range users {
			if err := p.AssignTask(u.ID, t.ID); err != nil {
				return err
			}
			names = append(names, u.Name)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return s.out.Info("No users assigned")
	}
	return s.out.Success("Assigned %s to %q", strings.Join(names, ", "), task)
}

func runTasksUnassign(ctx context.Context, s *session, args []string) error {
	var task string
	var names []string
	err := s.Update(ctx, func(p *model.Project) error {
		var assigned []model.Task
		for _, t := range p.AllTasks() {
			if len(t.AssignedTo) > 0 {
				assigned = append(assigned, t)
			}
		}
		t, err := s.pickTask(ctx, p, "Select task to unassign:", assigned)
		if err != nil {
			return err
		}
		current, err := p.AssignedUsers(t.ID)
		if err != nil {
			return err
		}
		users, err := s.pickUsers(ctx, "Select users to unassign:", current, nil)
		if err != nil {
			return err
		}
		task = t.Name
		for _, u := range users {
			if err := p.UnassignTask(u.ID, t.ID); err != nil {
				return err
			}
			names = append(names, u.Name)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return s.out.Info("No users unassigned")
	}
	return s.out.Success("Unassigned %s from %q", strings.Join(names, ", "), task)
}

func runTasksMove(ctx context.Context, s *session, args []string) error {
	var moved []string
	var category string
	err := s.Update(ctx, func(p *model.Project) error {
		tasks, err := s.pickTasks(ctx, p, "Select tasks to move:", p.UnarchivedTasks(), true)
		if err != nil {
			return err
		}
		if len(tasks) == 0 {
			return nil
		}
		c, err := s.pickCategory(ctx, p, "Select category:")
		if err != nil {
			return err
		}
		category = c.Name
		for _, t := range tasks {
			if err := p.MoveTask(t.ID, c.ID); err != nil {
				return err
			}
			moved = append(moved, t.Name)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(moved) == 0 {
		return s.out.Info("No tasks moved")
	}
	return s.out.Success("Moved %s to %q", strings.Join(moved, ", "), category)
}

func runTasksEdit(ctx context.Context, s *session, args []string) error {
	var task string
	err := s.Update(ctx, func(p *model.Project) error {
		t, err := s.pickTask(ctx, p, "Select task:", p.AllTasks())
		if err != nil {
			return err
		}
		task = t.Name
		field, err := choose(ctx, s.prompt, "Select field:", taskFields(t))
		if err != nil {
			return err
		}
		return editTask(ctx, s, p, t, field)
	})
	if err != nil {
		return err
	}
	return s.out.Success("Updated %q", task)
}

func editTask(ctx context.Context, s *session, p *model.Project, t model.Task, field taskField) error {
	switch field {
	case fieldName:
		name, err := s.prompt.Text(ctx, prompt.TextPrompt{Label: "New name:", Default: t.Name, Required: true})
		if err != nil {
			return err
		}
		return p.EditTaskName(t.ID, name)

	case fieldDescription:
		current, err := p.TaskDescription(t.ID)
		if err != nil {
			return err
		}
		description, err := s.prompt.Editor(ctx, "New description:", current)
		if err != nil {
			return err
		}
		return p.EditTaskDescription(t.ID, description)

	case fieldCategory:
		c, err := s.pickCategory(ctx, p, "Move to category:")
		if err != nil {
			return err
		}
		return p.MoveTask(t.ID, c.ID)

	case fieldChecklist:
		return editChecklist(ctx, s, p, t)

	case fieldSetDueDate:
		return setDueDate(ctx, s, p, t.ID)

	case fieldClearDueDate:
		due, err := p.TaskDueDate(t.ID)
		if err != nil || due == nil {
			return err
		}
		label := fmt.Sprintf("Clear due date (%s)?", due.In(s.out.Location()).Format(render.TimeLayout))
		ok, err := s.prompt.Confirm(ctx, label, true)
		if err != nil || !ok {
			return err
		}
		return p.ClearTaskDueDate(t.ID)
	}
	return fmt.Errorf("unknown task field %d", field)
}

func editChecklist(ctx context.Context, s *session, p *model.Project, t model.Task) error {
	action, err := choose(ctx, s.prompt, "Checklist:", checklistActions(t))
	if err != nil {
		return err
	}
	items, err := p.TaskChecklist(t.ID)
	if err != nil {
		return err
	}

	switch action {
	case checklistAdd:
		return addChecklistItems(ctx, s, p, t.ID)

	case checklistCheck:
		choices := make([]prompt.Item, len(items))
		for i, item := range items {
			choices[i] = prompt.Item{Label: item.Name, Selected: item.Checked}
		}
		picked, err := s.prompt.MultiSelect(ctx, "Checked items:", choices)
		if err != nil {
			return err
		}
		checked := make(map[int]bool, len(picked))
		for _, i := range picked {
			checked[i] = true
		}
		for i, item := range items {
			if item.Checked == checked[i] {
				continue
			}
			if err := p.SetChecklistItemChecked(t.ID, item.Index, checked[i]); err != nil {
				return err
			}
		}
		return nil

	case checklistRemove:
		choices := make([]prompt.Item, len(items))
		for i, item := range items {
			choices[i] = prompt.Item{Label: item.Name}
		}
		i, err := s.prompt.Select(ctx, "Select checklist item to remove:", choices)
		if err != nil {
			return err
		}
		return p.RemoveChecklistItem(t.ID, items[i].Index)
	}
	return fmt.Errorf("unknown checklist action %d", action)
}

func runTasksList(ctx context.Context, s *session, args []string) error {
	fs := s.flagSet("tasks list")
	all := fs.Bool("all", false, "Include archived tasks")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return s.View(ctx, func(p *model.Project) error {
		tasks := p.UnarchivedTasks()
		if *all {
			tasks = p.AllTasks()
		}
		p.SortByCategory(tasks)
		return s.out.TaskTable(p, tasks)
	})
}

func runTasksPrint(ctx context.Context, s *session, args []string) error {
	if len(args) > 0 {
		return runPrintTask(ctx, s, args)
	}
	return s.View(ctx, func(p *model.Project) error {
		t, err := s.pickTask(ctx, p, "Select task:", p.AllTasks())
		if err != nil {
			return err
		}
		d, err := p.TaskDetail(t.ID)
		if err != nil {
			return err
		}
		return s.out.TaskDetail(d)
	})
}

func reportNames(s *session, verb string, names []string) error {
	if len(names) == 0 {
		return s.out.Info("No tasks changed")
	}
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return s.out.Success("%s %s", verb, strings.Join(quoted, ", "))
}
