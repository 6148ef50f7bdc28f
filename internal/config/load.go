package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/dori/crabd/internal/store"
)

// ProjectConfigFile is looked up in the working directory, then at the
// repository root.
const ProjectConfigFile = ".crabd.toml"

// Load builds the configuration for a command started in workDir.
func Load(workDir string, flags Flags) (*Config, error) {
	cfg := Default()
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	cfg.WorkDir = abs

	// User config file, or the explicit --config file which must exist.
	if flags.ConfigFile != "" {
		if err := loadConfigFile(cfg, flags.ConfigFile); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", flags.ConfigFile, err)
		}
	} else if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}

	// Project config file (overrides user config)
	if path := findProjectConfigFile(abs); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	lookup, err := envLookup(abs)
	if err != nil {
		return nil, err
	}
	if err := loadFromEnv(cfg, lookup); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	flags.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %s", undecoded[0])
	}
	cfg.Files = append(cfg.Files, path)
	return nil
}

// UserConfigPath returns where the user config file lives.
func UserConfigPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "crabd", "config.toml"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "crabd", "config.toml"), nil
}

func findUserConfigFile() string {
	path, err := UserConfigPath()
	if err != nil {
		return ""
	}
	if fileExists(path) {
		return path
	}
	return ""
}

func findProjectConfigFile(workDir string) string {
	if path := filepath.Join(workDir, ProjectConfigFile); fileExists(path) {
		return path
	}
	root, err := store.FindRoot(workDir)
	if err != nil {
		return ""
	}
	if path := filepath.Join(root, ProjectConfigFile); fileExists(path) {
		return path
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
