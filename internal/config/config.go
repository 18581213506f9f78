// Package config loads settings from defaults, an optional TOML file and
// CONCEPTS_* environment variables, in increasing order of precedence.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

const (
	// AppName is the application name.
	AppName = "concepts"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix prefixes environment overrides, e.g. CONCEPTS_SPEED_ROUNDS.
	EnvPrefix = "CONCEPTS"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadOptions selects where configuration is read from.
type LoadOptions struct {
	// ConfigFilePath is an explicit file; it must exist.
	ConfigFilePath string
	// ConfigDirPath overrides Dir() when looking for the default file.
	ConfigDirPath string
}

// Dir returns the configuration directory: %APPDATA% on Windows,
// ~/Library/Application Support on macOS and $XDG_CONFIG_HOME (defaulting
// to ~/.config) elsewhere.
func Dir() (string, error) {
	var dir string
	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, "Library", "Application Support")
	default:
		dir = os.Getenv("XDG_CONFIG_HOME")
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			dir = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(dir, AppName), nil
}

// DefaultPath returns the config file path inside dir, or inside Dir() when
// dir is empty.
func DefaultPath(dir string) (string, error) {
	if dir == "" {
		var err error
		if dir, err = Dir(); err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// Load resolves the configuration and returns it with the path of the file
// that was read ("" when only defaults and environment applied).
func Load(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("ui.notes", defaults.UI.Notes)
	v.SetDefault("ui.word_wrap", defaults.UI.WordWrap)
	v.SetDefault("ui.style", defaults.UI.Style)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("regex.match_timeout", defaults.Regex.MatchTimeout)
	v.SetDefault("speed.rounds", defaults.Speed.Rounds)
	v.SetDefault("run.parallel", defaults.Run.Parallel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolved := ""
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", fmt.Errorf("config file not found: %s", opts.ConfigFilePath)
		}
		resolved = opts.ConfigFilePath
	} else {
		path, err := DefaultPath(opts.ConfigDirPath)
		if err != nil {
			return nil, "", err
		}
		if fileExists(path) {
			resolved = path
		}
	}
	if resolved != "" {
		if err := loadTOMLIntoViper(v, resolved); err != nil {
			return nil, "", err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, resolved, nil
}

// loadTOMLIntoViper decodes a TOML file and merges it over the defaults.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func loadTOMLIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var strict fileConfig
	if err := dec.Decode(&strict); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	if err := v.MergeConfigMap(m); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

var validLevels = []string{"debug", "info", "warn", "error", "fatal"}

var validStyles = []string{StyleAuto, StyleDark, StyleLight, StyleNoTTY}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if c.UI.WordWrap < 0 {
		errs = append(errs, fmt.Errorf("ui.word_wrap must not be negative, got %d", c.UI.WordWrap))
	}
	if !slices.Contains(validStyles, c.UI.Style) {
		errs = append(errs, fmt.Errorf("ui.style must be one of %s, got %q", strings.Join(validStyles, ", "), c.UI.Style))
	}
	if !slices.Contains(validLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level must be one of %s, got %q", strings.Join(validLevels, ", "), c.Log.Level))
	}
	if c.Regex.MatchTimeout < 0 {
		errs = append(errs, fmt.Errorf("regex.match_timeout must not be negative, got %s", c.Regex.MatchTimeout))
	}
	if c.Speed.Rounds < 1 {
		errs = append(errs, fmt.Errorf("speed.rounds must be at least 1, got %d", c.Speed.Rounds))
	}
	if c.Run.Parallel < 1 {
		errs = append(errs, fmt.Errorf("run.parallel must be at least 1, got %d", c.Run.Parallel))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Marshal renders c as TOML.
func Marshal(c *Config) ([]byte, error) {
	return toml.Marshal(toFile(c))
}

// WriteDefault writes the default configuration to path, creating parent
// directories. An existing file is left alone unless force is set.
func WriteDefault(path string, force bool) error {
	if fileExists(path) && !force {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
