package model

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Project is the aggregate root: it owns every category, task and user of
// one tracked unit of work. All relation edits go through its methods.
type Project struct {
	Name            string
	DefaultCategory *uint64 // nil until a default category is created
	Categories      []Category
	Tasks           []Task
	Users           []User

	ids   *IDAllocator
	clock func() time.Time
}

// Category is a named bucket (a workflow stage) that groups tasks.
type Category struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// Option configures a Project.
type Option func(*Project)

// WithClock sets the time source used for task timestamps.
func WithClock(clock func() time.Time) Option {
	return func(p *Project) {
		p.clock = clock
	}
}

// WithIDAllocator sets the allocator used for new entity ids.
func WithIDAllocator(a *IDAllocator) Option {
	return func(p *Project) {
		p.ids = a
	}
}

// NewProject creates an empty project.
func NewProject(name string, opts ...Option) *Project {
	p := &Project{Name: name}
	p.Apply(opts...)
	return p
}

// Apply applies options to an existing project, e.g. one decoded from disk.
func (p *Project) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(p)
	}
}

// now returns the current UTC time at second precision, which is what the
// document stores.
func (p *Project) now() time.Time {
	clock := p.clock
	if clock == nil {
		clock = time.Now
	}
	return clock().UTC().Truncate(time.Second)
}

func (p *Project) allocator() *IDAllocator {
	if p.ids == nil {
		p.ids = DefaultIDAllocator()
	}
	return p.ids
}

func (p *Project) categoryIndex(id uint64) int {
	return slices.IndexFunc(p.Categories, func(c Category) bool { return c.ID == id })
}

func (p *Project) categoryIDs() []uint64 {
	ids := make([]uint64, len(p.Categories))
	for i, c := range p.Categories {
		ids[i] = c.ID
	}
	return ids
}

func (p *Project) newCategory(name string) (Category, error) {
	id, err := p.allocator().Next(p.categoryIDs())
	if err != nil {
		return Category{}, err
	}
	return Category{ID: id, Name: name}, nil
}

// AddCategory appends a category and returns its id. Name uniqueness is left
// to the caller (see HasCategoryNamed).
func (p *Project) AddCategory(name string) (uint64, error) {
	c, err := p.newCategory(name)
	if err != nil {
		return 0, err
	}
	p.Categories = append(p.Categories, c)
	return c.ID, nil
}

// AddDefaultCategory appends a category and makes it the one new tasks fall into.
func (p *Project) AddDefaultCategory(name string) (uint64, error) {
	id, err := p.AddCategory(name)
	if err != nil {
		return 0, err
	}
	p.DefaultCategory = &id
	return id, nil
}

// SetDefaultCategory points the project default at an existing category.
func (p *Project) SetDefaultCategory(id uint64) error {
	if p.categoryIndex(id) < 0 {
		return notFound(KindCategory, id)
	}
	p.DefaultCategory = &id
	return nil
}

// IsDefaultCategory reports whether id is the project default.
func (p *Project) IsDefaultCategory(id uint64) bool {
	return p.DefaultCategory != nil && *p.DefaultCategory == id
}

// EditCategory renames a category in place.
func (p *Project) EditCategory(id uint64, name string) error {
	i := p.categoryIndex(id)
	if i < 0 {
		return notFound(KindCategory, id)
	}
	p.Categories[i].Name = name
	return nil
}

// RemoveCategory deletes a category. Tasks are never cascaded or silently
// reassigned: a category that still has tasks, or that is the project
// default, is refused with an InvalidReferenceError.
func (p *Project) RemoveCategory(id uint64) error {
	i := p.categoryIndex(id)
	if i < 0 {
		return notFound(KindCategory, id)
	}
	if n := len(p.TasksInCategory(id)); n > 0 {
		return &InvalidReferenceError{Kind: KindCategory, ID: id, Reason: pluralize(n, "task") + " still in category"}
	}
	if p.IsDefaultCategory(id) {
		return &InvalidReferenceError{Kind: KindCategory, ID: id, Reason: "category is the project default"}
	}
	p.Categories = slices.Delete(p.Categories, i, i+1)
	return nil
}

// Category looks up a category by id.
func (p *Project) Category(id uint64) (Category, bool) {
	i := p.categoryIndex(id)
	if i < 0 {
		return Category{}, false
	}
	return p.Categories[i], true
}

// CategoryName returns the name of a category.
func (p *Project) CategoryName(id uint64) (string, bool) {
	c, ok := p.Category(id)
	return c.Name, ok
}

// CategoryInUse reports whether any task, archived or not, references id.
func (p *Project) CategoryInUse(id uint64) bool {
	return slices.ContainsFunc(p.Tasks, func(t Task) bool { return t.Category == id })
}

// HasCategoryNamed reports whether a category with the given name exists,
// ignoring case and surrounding space.
func (p *Project) HasCategoryNamed(name string) bool {
	name = strings.TrimSpace(name)
	return slices.ContainsFunc(p.Categories, func(c Category) bool {
		return strings.EqualFold(strings.TrimSpace(c.Name), name)
	})
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
