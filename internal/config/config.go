// Package config provides configuration management.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"cdn-cost/core/types"
	"cdn-cost/internal/logging"
)

// DefaultAPIURL is the Fastly API endpoint
const DefaultAPIURL = "https://api.fastly.com"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// Fastly contains billing API settings
	Fastly FastlyConfig `json:"fastly" yaml:"fastly"`

	// Pricing contains pricing table settings
	Pricing PricingConfig `json:"pricing" yaml:"pricing"`

	// Output contains output configuration
	Output OutputConfig `json:"output" yaml:"output"`

	// Metrics contains metrics export settings
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`
}

// FastlyConfig contains billing API settings
type FastlyConfig struct {
	// APIURL is the base URL of the API
	APIURL string `json:"api_url" yaml:"api_url"`

	// APIKey is the static API token sent as Fastly-Key
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// TimeoutSeconds bounds the usage request
	TimeoutSeconds int `json:"timeout_seconds" yaml:"timeout_seconds"`
}

// PricingConfig contains pricing table settings
type PricingConfig struct {
	// File is an HCL pricing file replacing the built-in rates
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the report format (text, json)
	Format string `json:"format" yaml:"format"`

	// Currency is the ISO 4217 code costs are expressed in
	Currency types.Currency `json:"currency" yaml:"currency"`

	// Symbol is printed in front of amounts
	Symbol string `json:"symbol" yaml:"symbol"`

	// Locale is a BCP 47 tag controlling digit grouping
	Locale string `json:"locale" yaml:"locale"`

	// ShowRegions prints the per-region breakdown
	ShowRegions bool `json:"show_regions" yaml:"show_regions"`

	// NoColor disables ANSI styling
	NoColor bool `json:"no_color" yaml:"no_color"`
}

// MetricsConfig contains metrics export settings
type MetricsConfig struct {
	// TextfilePath is where Prometheus gauges are written; empty disables export
	TextfilePath string `json:"textfile_path,omitempty" yaml:"textfile_path,omitempty"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Fastly: FastlyConfig{
			APIURL:         DefaultAPIURL,
			TimeoutSeconds: 30,
		},
		Output: OutputConfig{
			Format:      "text",
			Currency:    types.CurrencyUSD,
			Symbol:      "$",
			Locale:      "en-US",
			ShowRegions: true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file. A missing file yields the defaults.
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
// ${VAR} references are replaced with environment values before decoding.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	data = expandEnvVars(data)

	config := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// ApplyEnv overrides the API settings from FASTLY_API_KEY and FASTLY_API_URL
func (c *Config) ApplyEnv() {
	if key := os.Getenv("FASTLY_API_KEY"); key != "" {
		c.Fastly.APIKey = key
	}
	if url := os.Getenv("FASTLY_API_URL"); url != "" {
		c.Fastly.APIURL = url
	}
}

// Validate checks the configuration for correctness
func (c *Config) Validate() error {
	if c.Fastly.APIURL == "" {
		return fmt.Errorf("fastly.api_url is required")
	}
	if c.Fastly.TimeoutSeconds < 0 {
		return fmt.Errorf("fastly.timeout_seconds must not be negative, got %d", c.Fastly.TimeoutSeconds)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be \"text\" or \"json\", got %q", c.Output.Format)
	}
	if len(c.Output.Currency) != 3 {
		return fmt.Errorf("output.currency must be a three letter ISO code, got %q", c.Output.Currency)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	// The file may hold the API key.
	return os.WriteFile(path, data, 0600)
}

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		name := envVarPattern.FindSubmatch(match)[1]
		return []byte(os.Getenv(string(name)))
	})
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
