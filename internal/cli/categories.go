package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dori/crabd/internal/model"
	"github.com/dori/crabd/internal/prompt"
)

// categoryName prompts for a category name not used yet. current is
// allowed, for renames.
func categoryName(ctx context.Context, s *session, p *model.Project, label, current string) (string, error) {
	return s.prompt.Text(ctx, prompt.TextPrompt{
		Label:    label,
		Default:  current,
		Required: true,
		Validate: func(name string) error {
			if name != current && p.HasCategoryNamed(name) {
				return fmt.Errorf("category %q already exists", name)
			}
			return nil
		},
	})
}

// addCategories adds categories until the user stops. With askFirst the
// user is asked before the first one too.
func addCategories(ctx context.Context, s *session, p *model.Project, askFirst bool) (int, error) {
	added := 0
	for {
		if askFirst || added > 0 {
			more, err := s.prompt.Confirm(ctx, "Add another category?", false)
			if err != nil {
				return added, err
			}
			if !more {
				return added, nil
			}
		}
		name, err := categoryName(ctx, s, p, "Category name:", "")
		if err != nil {
			return added, err
		}
		if _, err := p.AddCategory(name); err != nil {
			return added, err
		}
		added++
	}
}

func runCategoriesAdd(ctx context.Context, s *session, args []string) error {
	var added int
	err := s.Update(ctx, func(p *model.Project) error {
		var err error
		added, err = addCategories(ctx, s, p, false)
		return err
	})
	if err != nil {
		return err
	}
	return s.out.Success("Added %d %s", added, plural(added, "category", "categories"))
}

func runCategoriesRemove(ctx context.Context, s *session, args []string) error {
	var removed []string
	err := s.Update(ctx, func(p *model.Project) error {
		items := make([]prompt.Item, len(p.Categories))
		deletable := 0
		for i, c := range p.Categories {
			items[i] = prompt.Item{Label: c.Name}
			switch {
			case p.IsDefaultCategory(c.ID):
				items[i].Disabled = true
				items[i].Note = "(not deletable - default category)"
			case p.CategoryInUse(c.ID):
				items[i].Disabled = true
				items[i].Note = "(not deletable - has tasks)"
			default:
				deletable++
			}
		}
		if deletable == 0 {
			s.out.Info("Every category is in use or the default")
			return errNothingToDo
		}

		picked, err := s.prompt.MultiSelect(ctx, "Select categories to remove:", items)
		if err != nil {
			return err
		}
		// resolve before removing, removal shifts p.Categories
		chosen := make([]model.Category, len(picked))
		for i, idx := range picked {
			chosen[i] = p.Categories[idx]
		}
		for _, c := range chosen {
			if err := p.RemoveCategory(c.ID); err != nil {
				return err
			}
			removed = append(removed, c.Name)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		return s.out.Info("No categories removed")
	}
	return s.out.Success("Removed %s", strings.Join(removed, ", "))
}

func runCategoriesEdit(ctx context.Context, s *session, args []string) error {
	var oldName, newName string
	err := s.Update(ctx, func(p *model.Project) error {
		c, err := s.pickCategory(ctx, p, "Select category to rename:")
		if err != nil {
			return err
		}
		name, err := categoryName(ctx, s, p, "New name:", c.Name)
		if err != nil {
			return err
		}
		oldName, newName = c.Name, name
		return p.EditCategory(c.ID, name)
	})
	if err != nil {
		return err
	}
	return s.out.Success("Renamed category %q to %q", oldName, newName)
}

func runCategoriesList(ctx context.Context, s *session, args []string) error {
	return s.View(ctx, func(p *model.Project) error {
		return s.out.CategoriesList(p)
	})
}

func runCategoriesPrint(ctx context.Context, s *session, args []string) error {
	fs := s.flagSet("categories print")
	all := fs.Bool("all", false, "Include archived tasks")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := oneID(model.KindCategory, fs.Args())
	if err != nil {
		return err
	}
	return s.View(ctx, func(p *model.Project) error {
		return s.out.CategoryView(p, id, *all)
	})
}

func runCategoriesDefault(ctx context.Context, s *session, args []string) error {
	var name string
	err := s.Update(ctx, func(p *model.Project) error {
		c, err := s.pickCategory(ctx, p, "Select the default category:")
		if err != nil {
			return err
		}
		name = c.Name
		return p.SetDefaultCategory(c.ID)
	})
	if err != nil {
		return err
	}
	return s.out.Success("New tasks go to %q", name)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
