package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DotEnvFile is read from the working directory.
const DotEnvFile = ".env"

// lookupFunc resolves one environment variable.
type lookupFunc func(key string) (string, bool)

// envLookup returns a lookup that consults the process environment first
// and the .env file in dir second.
func envLookup(dir string) (lookupFunc, error) {
	dotenv, err := godotenv.Read(filepath.Join(dir, DotEnvFile))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", DotEnvFile, err)
		}
		dotenv = nil
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}, nil
}

// loadFromEnv overrides config from CRABD_* variables.
func loadFromEnv(cfg *Config, lookup lookupFunc) error {
	if v, ok := lookup("CRABD_BACKEND"); ok && v != "" {
		cfg.Storage.Backend = v
	}
	if v, ok := lookup("CRABD_FILE"); ok && v != "" {
		cfg.Storage.File = v
	}
	if v, ok := lookup("CRABD_REQUIRE_REPOSITORY"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CRABD_REQUIRE_REPOSITORY: %w", err)
		}
		cfg.Storage.RequireRepository = b
	}
	if v, ok := lookup("CRABD_LOG_LEVEL"); ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok := lookup("CRABD_LOG_FORMAT"); ok && v != "" {
		cfg.Log.Format = v
	}
	if v, ok := lookup("CRABD_THEME"); ok && v != "" {
		cfg.UI.Theme = v
	}
	if v, ok := lookup("CRABD_WIDTH"); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("CRABD_WIDTH: %w", err)
		}
		cfg.UI.Width = n
	}
	if v, ok := lookup("CRABD_COLOR"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CRABD_COLOR: %w", err)
		}
		cfg.UI.Color = b
	}
	// https://no-color.org
	if v, ok := lookup("NO_COLOR"); ok && v != "" {
		cfg.UI.Color = false
	}
	if v, ok := lookup("CRABD_NOTIFY"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CRABD_NOTIFY: %w", err)
		}
		cfg.Notify.Enabled = b
	}
	if v, ok := lookup("CRABD_NOTIFY_WINDOW"); ok && v != "" {
		cfg.Notify.Window = v
	}
	return nil
}
