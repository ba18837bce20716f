// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/brochat/internal/model"
	"github.com/jeranaias/brochat/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete brochat configuration.
type Config struct {
	// Ollama endpoint configuration
	Ollama OllamaConfig `toml:"ollama"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Log configuration
	Log LogConfig `toml:"log"`
}

// OllamaConfig contains the single inference endpoint.
type OllamaConfig struct {
	// URL is the Ollama base URL; /api/generate is appended
	URL string `toml:"url"`
	// Model is the model identifier sent with every prompt
	Model string `toml:"model"`
}

// UIConfig contains display settings.
type UIConfig struct {
	// Theme is "light", "dark", or "auto" (detect terminal background)
	Theme string `toml:"theme"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// File is the log destination. Empty disables logging.
	File string `toml:"file"`
	// Level is one of debug, info, warn, error
	Level string `toml:"level"`
}

// ThemeAuto selects light or dark from the terminal background.
const ThemeAuto = "auto"

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Ollama: OllamaConfig{
			URL:   "http://localhost:11434",
			Model: "llama3.2",
		},
		UI: UIConfig{
			Theme: "dark",
		},
		Log: LogConfig{
			File:  "",
			Level: "info",
		},
	}
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Ollama.URL == "" {
		cfg.Ollama.URL = defaults.Ollama.URL
	}
	if cfg.Ollama.Model == "" {
		cfg.Ollama.Model = defaults.Ollama.Model
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the brochat configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".brochat"), nil
}

// ConfigPath returns the path to the default TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load reads configuration from path, or from ConfigPath when path is empty.
// A missing file yields defaults; a file that exists but fails to parse is an
// error. Environment overrides are applied on top. The result is not
// validated, so callers can layer flags with Apply, which validates once.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg.ApplyEnvOverrides()
	return cfg, nil
}

// LoadTOML decodes the file at path over cfg. Keys absent from the file keep
// the values already in cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	fillDefaults(cfg)
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML writes cfg to path atomically with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	data, err := cfg.Encode()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("# brochat configuration file\n")
	buf.WriteString("# Generated by brochat init - edit with care\n\n")
	buf.Write(data)

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Encode renders c as TOML. Naming it MarshalTOML would make *Config a
// toml.Marshaler and the encoder would recurse into it.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// Environment variables recognised by ApplyEnvOverrides.
const (
	EnvOllamaURL = "BROCHAT_OLLAMA_URL"
	EnvModel     = "BROCHAT_MODEL"
)

// ApplyEnvOverrides applies environment variable overrides to the config.
//   - BROCHAT_OLLAMA_URL: overrides ollama.url
//   - BROCHAT_MODEL: overrides ollama.model
func (c *Config) ApplyEnvOverrides() {
	if u := os.Getenv(EnvOllamaURL); u != "" {
		c.Ollama.URL = u
	}
	if m := os.Getenv(EnvModel); m != "" {
		c.Ollama.Model = m
	}
}

// Overrides carries command-line values. Empty fields leave the config alone.
type Overrides struct {
	URL     string
	Model   string
	Theme   string
	LogFile string
	Debug   bool
}

// Apply layers o over c and re-validates.
func (c *Config) Apply(o Overrides) error {
	if o.URL != "" {
		c.Ollama.URL = o.URL
	}
	if o.Model != "" {
		c.Ollama.Model = o.Model
	}
	if o.Theme != "" {
		c.UI.Theme = o.Theme
	}
	if o.LogFile != "" {
		c.Log.File = o.LogFile
	}
	if o.Debug {
		c.Log.Level = "debug"
	}
	return c.Validate()
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks the configuration and returns ValidateErrors if anything
// is wrong.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if u, err := url.Parse(c.Ollama.URL); err != nil {
		errs = append(errs, ValidationError{
			Field:   "ollama.url",
			Message: fmt.Sprintf("invalid URL: %v", err),
		})
	} else if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, ValidationError{
			Field:   "ollama.url",
			Message: fmt.Sprintf("'%s' must be an absolute http(s) URL", c.Ollama.URL),
		})
	}

	if strings.TrimSpace(c.Ollama.Model) == "" {
		errs = append(errs, ValidationError{
			Field:   "ollama.model",
			Message: "model cannot be empty",
		})
	}

	if !strings.EqualFold(c.UI.Theme, ThemeAuto) {
		if _, err := model.ParseTheme(c.UI.Theme); err != nil {
			errs = append(errs, ValidationError{
				Field:   "ui.theme",
				Message: fmt.Sprintf("invalid theme '%s', must be one of: light, dark, auto", c.UI.Theme),
			})
		}
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// DERIVED VALUES
// =============================================================================

// InitialTheme resolves the configured theme. For "auto", isDark is asked
// about the terminal background; a nil isDark means dark.
func (c *Config) InitialTheme(isDark func() bool) model.Theme {
	if strings.EqualFold(c.UI.Theme, ThemeAuto) {
		if isDark == nil || isDark() {
			return model.ThemeDark
		}
		return model.ThemeLight
	}
	theme, err := model.ParseTheme(c.UI.Theme)
	if err != nil {
		return model.DefaultTheme
	}
	return theme
}
