// Package config provides configuration management.
package config

import (
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/kelseyhightower/envconfig"

	"support-cost/core/types"
	"support-cost/internal/errors"
	"support-cost/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. SUPPORTCOST_LOG_LEVEL
const EnvPrefix = "SUPPORTCOST"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Engine contains comparison settings
	Engine EngineConfig `json:"engine"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// EngineConfig contains comparison settings
type EngineConfig struct {
	// StrictCurrency fails a vendor instead of leaving its cost unconverted
	// when an exchange rate is missing
	StrictCurrency bool `json:"strict_currency"`

	// DefaultCurrency is used for scenarios that omit a reporting currency
	DefaultCurrency types.Currency `json:"default_currency"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowNotes includes vendor notes in tables
	ShowNotes bool `json:"show_notes"`

	// ShowAssumptions includes projected volumes and coverage multipliers
	ShowAssumptions bool `json:"show_assumptions"`

	// NoColor disables terminal colors
	NoColor bool `json:"no_color"`
}

// envOverrides holds values read from the environment. Empty strings and
// nil pointers mean unset.
type envOverrides struct {
	LogLevel        string `envconfig:"LOG_LEVEL"`
	LogFormat       string `envconfig:"LOG_FORMAT"`
	OutputFormat    string `envconfig:"OUTPUT_FORMAT"`
	StrictCurrency  *bool  `envconfig:"CURRENCY_STRICT"`
	DefaultCurrency string `envconfig:"DEFAULT_CURRENCY"`
	NoColor         *bool  `envconfig:"NO_COLOR"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Engine: EngineConfig{
			StrictCurrency:  false,
			DefaultCurrency: types.CurrencyUSD,
		},
		Output: OutputConfig{
			DefaultFormat:   "cli",
			ShowNotes:       false,
			ShowAssumptions: false,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns the per-user configuration file location
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".support-cost", "config.json")
}

// Load loads configuration from a file and applies environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, errors.Config("invalid configuration file", err).WithContext("path", path)
		}
	case !os.IsNotExist(err):
		return nil, errors.Config("failed to read configuration file", err).WithContext("path", path)
	}

	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnv overlays SUPPORTCOST_* environment variables onto c
func (c *Config) ApplyEnv() error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return errors.Config("invalid environment configuration", err)
	}

	if env.LogLevel != "" {
		c.Logging.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		c.Logging.Format = env.LogFormat
	}
	if env.OutputFormat != "" {
		c.Output.DefaultFormat = env.OutputFormat
	}
	if env.DefaultCurrency != "" {
		c.Engine.DefaultCurrency = types.Currency(strings.ToUpper(env.DefaultCurrency))
	}
	if env.StrictCurrency != nil {
		c.Engine.StrictCurrency = *env.StrictCurrency
	}
	if env.NoColor != nil {
		c.Output.NoColor = *env.NoColor
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
