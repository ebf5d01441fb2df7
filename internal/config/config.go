// Package config loads cadence settings from ~/.cadence/config.yaml with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
	"gopkg.in/yaml.v3"
)

// LogConfig controls the zap logger.
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	// Path is where log lines go. Empty means stderr.
	Path string `yaml:"path,omitempty"`
}

// DefaultsConfig seeds the app settings of a fresh store. Once settings
// have been saved, the stored values win.
type DefaultsConfig struct {
	WarningDays  int    `yaml:"warning_days"`
	CriticalDays int    `yaml:"critical_days"`
	Sort         string `yaml:"sort"`
	WeekStart    string `yaml:"week_start"`
}

type Config struct {
	DBPath   string         `yaml:"db_path"`
	Log      LogConfig      `yaml:"log"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// Dir returns ~/.cadence.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".cadence"), nil
}

// DefaultPath returns the config file location, honoring CADENCE_CONFIG.
func DefaultPath() (string, error) {
	if v := os.Getenv("CADENCE_CONFIG"); v != "" {
		return v, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultConfig returns the built-in configuration. Logging is off.
func DefaultConfig() *Config {
	s := domain.DefaultAppSettings()
	cfg := &Config{
		Log: LogConfig{Enabled: false, Level: "info"},
		Defaults: DefaultsConfig{
			WarningDays:  s.WarningDays,
			CriticalDays: s.CriticalDays,
			Sort:         string(s.DefaultSort),
			WeekStart:    "monday",
		},
	}
	if dir, err := Dir(); err == nil {
		cfg.DBPath = filepath.Join(dir, "cadence.db")
	}
	return cfg
}

// Load reads path, falling back to defaults when the file does not exist,
// then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("no database path: set db_path or CADENCE_DB")
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CADENCE_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("CADENCE_LOG_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Log.Enabled = b
		}
	}
	if v := os.Getenv("CADENCE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("CADENCE_LOG_PATH"); v != "" {
		c.Log.Path = v
	}
}

// AppSettings converts the defaults section into seed settings. Invalid
// values are left for the repair step to replace.
func (c *Config) AppSettings() domain.AppSettings {
	s := domain.DefaultAppSettings()
	s.WarningDays = c.Defaults.WarningDays
	s.CriticalDays = c.Defaults.CriticalDays
	if c.Defaults.Sort != "" {
		s.DefaultSort = domain.SortMode(strings.ToUpper(c.Defaults.Sort))
	}
	return s
}
