// Package config handles the XDG configuration directory, file paths, and
// the optional TOML config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"todo/internal/task"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the optional TOML configuration filename.
	ConfigFile = "config.toml"

	// StoreFile is the default task store filename.
	StoreFile = "todos.json"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// StorePath is the task store file path.
	StorePath string

	// Color enables styled terminal output.
	Color bool

	// DefaultPriority is the priority assigned when add is run without
	// --priority.
	DefaultPriority task.Priority

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileConfig is the shape of the optional config.toml.
type fileConfig struct {
	Store           string `toml:"store"`
	Color           *bool  `toml:"color"`
	DefaultPriority string `toml:"default_priority"`
}

// New creates a Config with the default or specified config directory and
// applies config.toml from that directory if it exists.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{
		Dir:             dir,
		StorePath:       filepath.Join(dir, StoreFile),
		Color:           true,
		DefaultPriority: task.PriorityLow,
	}

	path := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("stat config file: %w", err)
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.Store != "" {
		cfg.StorePath = fc.Store
	}
	if fc.Color != nil {
		cfg.Color = *fc.Color
	}
	if fc.DefaultPriority != "" {
		p, err := task.ParsePriority(fc.DefaultPriority)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		cfg.DefaultPriority = p
	}

	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
