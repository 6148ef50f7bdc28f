// Package app wires configuration, logging and storage for one crabd
// command.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dori/crabd/internal/config"
	"github.com/dori/crabd/internal/model"
	"github.com/dori/crabd/internal/notify"
	"github.com/dori/crabd/internal/store"
)

// App holds the resources of one command run.
type App struct {
	Config   *config.Config
	Logger   *log.Logger
	Store    store.Store
	Notifier *notify.Notifier
	// Root is the directory holding the project document.
	Root string
	// Repository reports whether Root is a git repository root.
	Repository bool

	lock  *store.Lock
	clock func() time.Time
	ids   *model.IDAllocator
}

// Option configures an App.
type Option func(*App)

// WithClock sets the clock handed to loaded projects.
func WithClock(clock func() time.Time) Option {
	return func(a *App) {
		a.clock = clock
	}
}

// WithIDAllocator sets the id allocator handed to loaded projects.
func WithIDAllocator(ids *model.IDAllocator) Option {
	return func(a *App) {
		a.ids = ids
	}
}

// WithNotifier replaces the desktop notifier.
func WithNotifier(n *notify.Notifier) Option {
	return func(a *App) {
		a.Notifier = n
	}
}

// New resolves the project root, takes the project lock and opens the store.
// The caller must Close the App.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger, opts ...Option) (*App, error) {
	if logger == nil {
		logger = log.Default()
	}

	root, found, err := store.ResolveRoot(cfg.WorkDir, cfg.Storage.RequireRepository)
	if err != nil {
		return nil, fmt.Errorf("find project root: %w", err)
	}
	if !found {
		logger.Warn("no git repository found, using working directory", "dir", root)
	}

	a := &App{
		Config:     cfg,
		Logger:     logger,
		Root:       root,
		Repository: found,
		Notifier:   notify.NewNotifier(cfg.Notify.Enabled),
	}
	for _, opt := range opts {
		opt(a)
	}

	// Acquire lock to ensure one command at a time per project
	a.lock, err = store.AcquireLock(root)
	if err != nil {
		return nil, err
	}
	logger.Debug("lock acquired", "path", a.lock.Path())

	path := filepath.Join(root, cfg.DocumentFile())
	a.Store, err = store.Open(ctx, store.Backend(cfg.Storage.Backend), path)
	if err != nil {
		a.lock.Release()
		return nil, fmt.Errorf("open %s store: %w", cfg.Storage.Backend, err)
	}
	logger.Debug("store opened", "backend", cfg.Storage.Backend, "path", path)

	return a, nil
}

// ProjectOptions are applied to every project the App creates or loads.
func (a *App) ProjectOptions() []model.Option {
	var opts []model.Option
	if a.clock != nil {
		opts = append(opts, model.WithClock(a.clock))
	}
	if a.ids != nil {
		opts = append(opts, model.WithIDAllocator(a.ids))
	}
	return opts
}

// NewProject creates an unsaved project carrying the App's options.
func (a *App) NewProject(name string) *model.Project {
	return model.NewProject(name, a.ProjectOptions()...)
}

// Initialized reports whether a project document exists.
func (a *App) Initialized(ctx context.Context) (bool, error) {
	return a.Store.Exists(ctx)
}

// Load reads the project document.
func (a *App) Load(ctx context.Context) (*model.Project, error) {
	p, err := a.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	p.Apply(a.ProjectOptions()...)
	a.Logger.Debug("project loaded", "name", p.Name, "path", a.Store.Path(),
		"categories", len(p.Categories), "tasks", len(p.Tasks), "users", len(p.Users))
	return p, nil
}

// Save writes the project document.
func (a *App) Save(ctx context.Context, p *model.Project) error {
	if err := a.Store.Save(ctx, p); err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	a.Logger.Debug("project saved", "path", a.Store.Path())
	return nil
}

// View loads the project and hands it to fn without saving.
func (a *App) View(ctx context.Context, fn func(*model.Project) error) error {
	p, err := a.Load(ctx)
	if err != nil {
		return err
	}
	return fn(p)
}

// Update loads the project, lets fn mutate it and saves it once. Nothing is
// saved when fn fails, including when a prompt is cancelled.
func (a *App) Update(ctx context.Context, fn func(*model.Project) error) error {
	p, err := a.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(p); err != nil {
		return err
	}
	return a.Save(ctx, p)
}

// Close releases the store and the project lock.
func (a *App) Close() error {
	var errs []error

	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close store: %w", err))
		}
	}
	if err := a.lock.Release(); err != nil {
		errs = append(errs, fmt.Errorf("release lock: %w", err))
	}

	return errors.Join(errs...)
}
