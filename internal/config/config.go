package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dori/crabd/internal/store"
	"github.com/dori/crabd/internal/ui/theme"
)

// Config holds every crabd setting.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
	UI      UIConfig      `toml:"ui"`
	Notify  NotifyConfig  `toml:"notify"`

	// WorkDir is the directory crabd was started in. Not read from files.
	WorkDir string `toml:"-"`
	// Files lists the config files that were applied, in order.
	Files []string `toml:"-"`
}

// StorageConfig selects where the project document lives.
type StorageConfig struct {
	Backend           string `toml:"backend"`
	File              string `toml:"file"`
	RequireRepository bool   `toml:"require_repository"`
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// UIConfig controls listings and prompts.
type UIConfig struct {
	Theme string `toml:"theme"`
	Width int    `toml:"width"`
	Color bool   `toml:"color"`
}

// NotifyConfig controls desktop reminders for due tasks.
type NotifyConfig struct {
	Enabled bool   `toml:"enabled"`
	Window  string `toml:"window"`
}

// Default values.
const (
	DefaultBackend      = string(store.BackendJSON)
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "text"
	DefaultWidth        = 80
	DefaultNotifyWindow = "48h"
	MinWidth            = 40
)

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

func setDefaults(cfg *Config) {
	cfg.Storage = StorageConfig{
		Backend: DefaultBackend,
		File:    "",
	}
	cfg.Log = LogConfig{
		Level:  DefaultLogLevel,
		Format: DefaultLogFormat,
	}
	cfg.UI = UIConfig{
		Theme: theme.Default,
		Width: DefaultWidth,
		Color: true,
	}
	cfg.Notify = NotifyConfig{
		Enabled: true,
		Window:  DefaultNotifyWindow,
	}
}

// DocumentFile returns the configured document name, or the backend's
// default name when none is set.
func (c *Config) DocumentFile() string {
	if c.Storage.File != "" {
		return c.Storage.File
	}
	if store.Backend(c.Storage.Backend) == store.BackendSQLite {
		return store.DefaultSQLiteFile
	}
	return store.DefaultFile
}

// NotifyWindow returns the reminder window. Validate guarantees it parses.
func (c *Config) NotifyWindow() time.Duration {
	d, err := time.ParseDuration(c.Notify.Window)
	if err != nil {
		return 48 * time.Hour
	}
	return d
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(store.Backends, store.Backend(c.Storage.Backend)) {
		errs = append(errs, fmt.Errorf("storage.backend: unknown backend %q (want one of %s)",
			c.Storage.Backend, joinBackends()))
	}
	if strings.ContainsAny(c.Storage.File, `/\`) {
		errs = append(errs, fmt.Errorf("storage.file: %q must be a file name, not a path", c.Storage.File))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "logfmt":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q (want text, json or logfmt)", c.Log.Format))
	}
	if _, ok := theme.ByName(c.UI.Theme); !ok {
		errs = append(errs, fmt.Errorf("ui.theme: unknown theme %q (want one of %s)",
			c.UI.Theme, strings.Join(theme.Names(), ", ")))
	}
	if c.UI.Width < MinWidth {
		errs = append(errs, fmt.Errorf("ui.width: %d is narrower than %d columns", c.UI.Width, MinWidth))
	}
	if d, err := time.ParseDuration(c.Notify.Window); err != nil {
		errs = append(errs, fmt.Errorf("notify.window: %w", err))
	} else if d <= 0 {
		errs = append(errs, fmt.Errorf("notify.window: %s must be positive", c.Notify.Window))
	}

	return errors.Join(errs...)
}

func joinBackends() string {
	names := make([]string, len(store.Backends))
	for i, b := range store.Backends {
		names[i] = string(b)
	}
	return strings.Join(names, ", ")
}
