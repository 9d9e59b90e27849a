// Package config holds the VitalDeck configuration. The main configuration is
// a YAML file (defaults apply when it is absent), with environment variable
// overrides for the settings that change between deployments.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all VitalDeck configuration.
type Config struct {
	// Predictor configures the remote prediction service.
	Predictor PredictorConfig `yaml:"predictor"`

	// History configures the session ledger.
	History HistoryConfig `yaml:"history"`

	// Export configures report generation.
	Export ExportConfig `yaml:"export"`

	// UI configures the dashboard.
	UI UIConfig `yaml:"ui"`
}

// PredictorConfig configures the prediction service client.
type PredictorConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// RequestTimeout parses the configured timeout, falling back to 30s.
func (p PredictorConfig) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(p.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// HistoryConfig configures the session ledger.
type HistoryConfig struct {
	Capacity int `yaml:"capacity"`
}

// ExportConfig configures report generation.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// UIConfig configures the dashboard.
type UIConfig struct {
	Theme string `yaml:"theme"` // dark or light
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Predictor: PredictorConfig{
			BaseURL: "http://localhost:5000",
			Timeout: "30s",
		},
		History: HistoryConfig{
			Capacity: 10,
		},
		Export: ExportConfig{
			Dir: ".",
		},
		UI: UIConfig{
			Theme: "dark",
		},
	}
}

// Dir returns the VitalDeck dot-dir inside the workspace.
func Dir(workspace string) string {
	return filepath.Join(workspace, ".vitaldeck")
}

// DefaultPath returns the default config path inside the workspace.
func DefaultPath(workspace string) string {
	return filepath.Join(Dir(workspace), "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields defaults;
// environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("VITALDECK_SERVER"); url != "" {
		c.Predictor.BaseURL = url
	}
	if timeout := os.Getenv("VITALDECK_TIMEOUT"); timeout != "" {
		c.Predictor.Timeout = timeout
	}
	if theme := os.Getenv("VITALDECK_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if dir := os.Getenv("VITALDECK_EXPORT_DIR"); dir != "" {
		c.Export.Dir = dir
	}
}
