package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dori/crabd/internal/model"
	"github.com/dori/crabd/internal/prompt"
)

// option pairs a typed value with the label shown for it.
type option[T any] struct {
	value T
	label string
	note  string
}

// choose asks for one of options and returns its value.
func choose[T any](ctx context.Context, p prompt.Prompter, label string, options []option[T]) (T, error) {
	items := make([]prompt.Item, len(options))
	for i, o := range options {
		items[i] = prompt.Item{Label: o.label, Note: o.note}
	}
	i, err := p.Select(ctx, label, items)
	if err != nil {
		var zero T
		return zero, err
	}
	return options[i].value, nil
}

// categoryPreset is the category set init starts a project with.
type categoryPreset int

const (
	presetDefault categoryPreset = iota
	presetCustom
)

var categoryPresets = []option[categoryPreset]{
	{presetDefault, "Default", "Todo, In Progress, Done"},
	{presetCustom, "Custom", ""},
}

// userSource is where users add takes new users from.
type userSource int

const (
	sourceGit userSource = iota
	sourceManual
)

var userSources = []option[userSource]{
	{sourceGit, "Scrape git users", "authors from git log"},
	{sourceManual, "Add user manually", ""},
}

// taskField is the part of a task edit changes.
type taskField int

const (
	fieldName taskField = iota
	fieldDescription
	fieldCategory
	fieldChecklist
	fieldSetDueDate
	fieldClearDueDate
)

func taskFields(t model.Task) []option[taskField] {
	fields := []option[taskField]{
		{fieldName, "Name", ""},
		{fieldDescription, "Description", ""},
		{fieldCategory, "Category", ""},
		{fieldChecklist, "Checklist", fmt.Sprintf("%d items", len(t.CheckList))},
		{fieldSetDueDate, "Set due date", ""},
	}
	if t.DueDate != nil {
		fields = append(fields, option[taskField]{fieldClearDueDate, "Clear due date", ""})
	}
	return fields
}

// checklistAction is what tasks edit does to a checklist.
type checklistAction int

const (
	checklistAdd checklistAction = iota
	checklistCheck
	checklistRemove
)

func checklistActions(t model.Task) []option[checklistAction] {
	actions := []option[checklistAction]{{checklistAdd, "Add checklist items", ""}}
	if len(t.CheckList) > 0 {
		actions = append(actions,
			option[checklistAction]{checklistCheck, "Check off items", ""},
			option[checklistAction]{checklistRemove, "Remove checklist item", ""},
		)
	}
	return actions
}

// errNothingToDo ends a command that has nothing to act on. The reason has
// already been printed.
var errNothingToDo = errors.New("nothing to do")

func taskItems(p *model.Project, tasks []model.Task, withCategory bool) []prompt.Item {
	items := make([]prompt.Item, len(tasks))
	for i, t := range tasks {
		items[i] = prompt.Item{Label: t.Name}
		if withCategory {
			name, _ := p.CategoryName(t.Category)
			items[i].Note = "(" + name + ")"
		}
		if t.IsArchived() {
			items[i].Note += " archived"
		}
	}
	return items
}

// pickTask asks for one of tasks.
func (s *session) pickTask(ctx context.Context, p *model.Project, label string, tasks []model.Task) (model.Task, error) {
	if len(tasks) == 0 {
		s.out.Info("No tasks")
		return model.Task{}, errNothingToDo
	}
	i, err := s.prompt.Select(ctx, label, taskItems(p, tasks, true))
	if err != nil {
		return model.Task{}, err
	}
	return tasks[i], nil
}

// pickTasks asks for any number of tasks.
func (s *session) pickTasks(ctx context.Context, p *model.Project, label string, tasks []model.Task, withCategory bool) ([]model.Task, error) {
	if len(tasks) == 0 {
		s.out.Info("No tasks")
		return nil, errNothingToDo
	}
	picked, err := s.prompt.MultiSelect(ctx, label, taskItems(p, tasks, withCategory))
	if err != nil {
		return nil, err
	}
	out := make([]model.Task, len(picked))
	for i, idx := range picked {
		out[i] = tasks[idx]
	}
	return out, nil
}

func userLabel(u model.User) string {
	if u.GitEmail == nil {
		return u.Name
	}
	return fmt.Sprintf("%s <%s>", u.Name, *u.GitEmail)
}

// pickUser asks for one of users.
func (s *session) pickUser(ctx context.Context, label string, users []model.User) (model.User, error) {
	if len(users) == 0 {
		s.out.Info("No users, add some with `crabd users add`")
		return model.User{}, errNothingToDo
	}
	items := make([]prompt.Item, len(users))
	for i, u := range users {
		items[i] = prompt.Item{Label: userLabel(u)}
	}
	i, err := s.prompt.Select(ctx, label, items)
	if err != nil {
		return model.User{}, err
	}
	return users[i], nil
}

// pickUsers asks for any number of users. note annotates each user.
func (s *session) pickUsers(ctx context.Context, label string, users []model.User, note func(model.User) string) ([]model.User, error) {
	if len(users) == 0 {
		s.out.Info("No users, add some with `crabd users add`")
		return nil, errNothingToDo
	}
	items := make([]prompt.Item, len(users))
	for i, u := range users {
		items[i] = prompt.Item{Label: userLabel(u)}
		if note != nil {
			items[i].Note = note(u)
		}
	}
	picked, err := s.prompt.MultiSelect(ctx, label, items)
	if err != nil {
		return nil, err
	}
	out := make([]model.User, len(picked))
	for i, idx := range picked {
		out[i] = users[idx]
	}
	return out, nil
}

// pickCategory asks for one of the project's categories.
func (s *session) pickCategory(ctx context.Context, p *model.Project, label string) (model.Category, error) {
	if len(p.Categories) == 0 {
		s.out.Info("No categories, add some with `crabd categories add`")
		return model.Category{}, errNothingToDo
	}
	items := make([]prompt.Item, len(p.Categories))
	for i, c := range p.Categories {
		items[i] = prompt.Item{Label: c.Name}
		if p.IsDefaultCategory(c.ID) {
			items[i].Note = "(default)"
		}
	}
	i, err := s.prompt.Select(ctx, label, items)
	if err != nil {
		return model.Category{}, err
	}
	return p.Categories[i], nil
}

func parseID(kind model.Kind, arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q", kind, arg)
	}
	return id, nil
}

// oneID reads the single ID argument of a print command.
func oneID(kind model.Kind, args []string) (uint64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected one %s ID argument", kind)
	}
	return parseID(kind, args[0])
}

// nonEmpty rejects names that are empty after trimming.
func nonEmpty(s string) error {
	if s == "" {
		return errors.New("name cannot be empty")
	}
	return nil
}
