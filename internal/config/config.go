// Package config holds surveydash configuration loaded from YAML with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultDataPath is where the survey export is expected when neither
// config nor flags say otherwise.
const DefaultDataPath = "./survey_results_small.csv"

// Config holds all surveydash configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig configures the survey data source.
type DataConfig struct {
	// Path to the delimited survey export.
	Path string `yaml:"path"`
}

// UIConfig configures the dashboard appearance.
type UIConfig struct {
	// DarkMode forces the dark theme regardless of terminal detection.
	DarkMode bool `yaml:"dark_mode"`
	// TopN is how many entries the charts and tables show per breakdown.
	TopN int `yaml:"top_n"`
}

// LoggingConfig configures the category file logger.
type LoggingConfig struct {
	// DebugMode is the master toggle; false means no log files at all.
	DebugMode bool   `yaml:"debug_mode"`
	Level     string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Data:    DataConfig{Path: DefaultDataPath},
		UI:      UIConfig{TopN: 15},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. Environment variables override the file:
// SURVEYDASH_DATA (data path), SURVEYDASH_DEBUG=1 (debug logging).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("SURVEYDASH_DATA"); v != "" {
		cfg.Data.Path = v
	}
	if os.Getenv("SURVEYDASH_DEBUG") == "1" {
		cfg.Logging.DebugMode = true
		cfg.Logging.Level = "debug"
	}

	if cfg.Data.Path == "" {
		cfg.Data.Path = DefaultDataPath
	}
	if cfg.UI.TopN <= 0 {
		cfg.UI.TopN = 15
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	return cfg, nil
}

// DefaultPath returns the conventional config location under the
// workspace.
func DefaultPath(workspace string) string {
	return filepath.Join(workspace, ".surveydash", "config.yaml")
}

// Save writes the config as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
