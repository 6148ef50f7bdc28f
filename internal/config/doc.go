// Package config loads crabd settings from layered sources, lowest priority
// first:
//
//  1. built-in defaults
//  2. the user file ($XDG_CONFIG_HOME/crabd/config.toml, or --config)
//  3. the project file (.crabd.toml in the working directory or repository root)
//  4. a .env file in the working directory
//  5. CRABD_* environment variables
//  6. global command-line flags
//
// Variables from .env never override variables already set in the process
// environment.
package config
