package config

import "flag"

// Flags are the global command-line overrides. Zero values mean "not set".
type Flags struct {
	ConfigFile string
	Backend    string
	LogLevel   string
	Theme      string
	NoColor    bool
}

// Register binds the global flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigFile, "config", "", "Path to a config file used instead of the user config")
	fs.StringVar(&f.Backend, "backend", "", "Storage backend (json, sqlite)")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.Theme, "theme", "", "Color theme")
	fs.BoolVar(&f.NoColor, "no-color", false, "Disable colored output")
}

func (f Flags) apply(cfg *Config) {
	if f.Backend != "" {
		cfg.Storage.Backend = f.Backend
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.Theme != "" {
		cfg.UI.Theme = f.Theme
	}
	if f.NoColor {
		cfg.UI.Color = false
	}
}
