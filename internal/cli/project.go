package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dori/crabd/internal/model"
	"github.com/dori/crabd/internal/prompt"
)

func runInit(ctx context.Context, s *session, args []string) error {
	initialized, err := s.Initialized(ctx)
	if err != nil {
		return err
	}
	if initialized {
		return fmt.Errorf("project already initialized in %s", s.Root)
	}

	if !s.Repository {
		ok, err := s.prompt.Confirm(ctx, "No git repository found, initialize the project here anyway?", false)
		if err != nil {
			return err
		}
		if !ok {
			return errNothingToDo
		}
	}

	name, err := s.prompt.Text(ctx, prompt.TextPrompt{
		Label:    "Project name:",
		Default:  filepath.Base(s.Root),
		Required: true,
	})
	if err != nil {
		return err
	}
	p := s.NewProject(name)

	if err := initCategories(ctx, s, p); err != nil {
		return err
	}
	if err := offerGitUser(ctx, s, p); err != nil {
		return err
	}

	create, err := s.prompt.Confirm(ctx, "Create initial tasks?", false)
	if err != nil {
		return err
	}
	if create {
		if err := createTasks(ctx, s, p); err != nil {
			return err
		}
	}

	if err := s.Save(ctx, p); err != nil {
		return err
	}
	return s.out.Success("Initialized project %q in %s", p.Name, s.Store.Path())
}

func initCategories(ctx context.Context, s *session, p *model.Project) error {
	preset, err := choose(ctx, s.prompt, "Set initial categories:", categoryPresets)
	if err != nil {
		return err
	}

	switch preset {
	case presetDefault:
		if _, err := p.AddDefaultCategory("Todo"); err != nil {
			return err
		}
		for _, name := range []string{"In Progress", "Done"} {
			if _, err := p.AddCategory(name); err != nil {
				return err
			}
		}
		return nil
	default:
		name, err := s.prompt.Text(ctx, prompt.TextPrompt{
			Label:    "Default category name:",
			Default:  "Todo",
			Required: true,
		})
		if err != nil {
			return err
		}
		if _, err := p.AddDefaultCategory(name); err != nil {
			return err
		}
		_, err = addCategories(ctx, s, p, true)
		return err
	}
}

// offerGitUser offers to add the user from git config, if there is one.
func offerGitUser(ctx context.Context, s *session, p *model.Project) error {
	email, ok, err := s.git.LocalEmail(ctx)
	if err != nil {
		s.Logger.Warn("reading git user.email", "err", err)
		return nil
	}
	if !ok {
		return nil
	}
	if _, exists := p.UserByEmail(email); exists {
		return nil
	}

	name, _, err := s.git.LocalName(ctx)
	if err != nil {
		s.Logger.Warn("reading git user.name", "err", err)
	}
	add, err := s.prompt.Confirm(ctx, fmt.Sprintf("Add yourself (%s) as a user?", email), true)
	if err != nil || !add {
		return err
	}
	name, err = s.prompt.Text(ctx, prompt.TextPrompt{Label: "Your name:", Default: name, Required: true})
	if err != nil {
		return err
	}
	_, err = p.AddUser(name, &email)
	return err
}

func runStatus(ctx context.Context, s *session, args []string) error {
	return s.View(ctx, func(p *model.Project) error {
		return s.out.ProjectStatus(p.Status())
	})
}

func runPrint(ctx context.Context, s *session, args []string) error {
	fs := s.flagSet("print")
	asJSON := fs.Bool("json", false, "Print tasks as JSON")
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
		if *asJSON {
			return s.out.TasksJSON(p, tasks)
		}
		if err := s.out.ProjectStatus(p.Status()); err != nil {
			return err
		}
		return s.out.TaskTable(p, tasks)
	})
}

func runPrintTask(ctx context.Context, s *session, args []string) error {
	id, err := oneID(model.KindTask, args)
	if err != nil {
		return err
	}
	return s.View(ctx, func(p *model.Project) error {
		d, err := p.TaskDetail(id)
		if err != nil {
			return err
		}
		return s.out.TaskDetail(d)
	})
}

func runDue(ctx context.Context, s *session, args []string) error {
	fs := s.flagSet("due")
	within := fs.Duration("within", s.Config.NotifyWindow(), "List tasks due within this duration")
	notify := fs.Bool("notify", false, "Send a desktop reminder for each listed task")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *within < 0 {
		return fmt.Errorf("--within must not be negative")
	}

	return s.View(ctx, func(p *model.Project) error {
		now := s.now()
		tasks := p.TasksDueBefore(now.Add(*within))
		if err := s.out.DueList(p, tasks); err != nil {
			return err
		}
		if !*notify {
			return nil
		}
		if !s.Notifier.IsEnabled() {
			s.Logger.Info("notifications are disabled", "setting", "notify.enabled")
			return nil
		}
		if !s.Notifier.Available() {
			s.Logger.Warn("notify-send not found, skipping reminders", "tasks", len(tasks))
			return nil
		}
		return remind(ctx, s, tasks, now)
	})
}

func remind(ctx context.Context, s *session, tasks []model.Task, now time.Time) error {
	var errs []error
	for _, t := range tasks {
		if err := s.Notifier.SendDueReminder(ctx, t.Name, t.DueDate.Sub(now)); err != nil {
			errs = append(errs, fmt.Errorf("remind %q: %w", t.Name, err))
			continue
		}
		s.Logger.Debug("reminder sent", "task", t.ID)
	}
	return errors.Join(errs...)
}
