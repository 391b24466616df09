// Package config holds the checker configuration.
//
// Defaults match the behavior of the original hardcoded script. A YAML config
// file can override them, and CLI flags override both.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults
const (
	DefaultServiceName   = "Global Entry"
	DefaultLimit         = 2
	DefaultTimezone      = "America/New_York"
	DefaultTimeout       = 30 * time.Second
	DefaultInterval      = 5 * time.Minute
	DefaultMaxConcurrent = 8
)

// Config holds the checker configuration
type Config struct {
	// States is the region allow-list; only locations in these states are
	// queried for slots
	States []string

	// ServiceName selects the TTP service to check
	ServiceName string

	// Limit is the per-location slot limit
	Limit int

	// Timezone is the display timezone for appointment times
	Timezone string

	// Timeout bounds each HTTP request
	Timeout time.Duration

	// Interval is the delay between checks in watch mode
	Interval time.Duration

	// MaxConcurrent bounds the slot-fetch fan-out width
	MaxConcurrent int

	// AllowPartial keeps results from locations whose slot fetch succeeded
	// even when others failed
	AllowPartial bool
}

// fileConfig is the YAML representation. Durations are strings so that
// values like "2m" or "30s" work.
type fileConfig struct {
	States        []string `yaml:"states"`
	ServiceName   string   `yaml:"service_name"`
	Limit         *int     `yaml:"limit"`
	Timezone      string   `yaml:"timezone"`
	Timeout       string   `yaml:"timeout"`
	Interval      string   `yaml:"interval"`
	MaxConcurrent *int     `yaml:"max_concurrent"`
	AllowPartial  *bool    `yaml:"allow_partial"`
}

// Default returns a config populated with default values
func Default() *Config {
	return &Config{
		ServiceName:   DefaultServiceName,
		Limit:         DefaultLimit,
		Timezone:      DefaultTimezone,
		Timeout:       DefaultTimeout,
		Interval:      DefaultInterval,
		MaxConcurrent: DefaultMaxConcurrent,
	}
}

// Load reads a YAML config file and applies it over defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg := Default()

	if len(file.States) > 0 {
		cfg.States = file.States
	}
	if file.ServiceName != "" {
		cfg.ServiceName = file.ServiceName
	}
	if file.Limit != nil {
		cfg.Limit = *file.Limit
	}
	if file.Timezone != "" {
		cfg.Timezone = file.Timezone
	}
	if file.Timeout != "" {
		timeout, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parsing timeout: %w", err)
		}
		cfg.Timeout = timeout
	}
	if file.Interval != "" {
		interval, err := time.ParseDuration(file.Interval)
		if err != nil {
			return nil, fmt.Errorf("parsing interval: %w", err)
		}
		cfg.Interval = interval
	}
	if file.MaxConcurrent != nil {
		cfg.MaxConcurrent = *file.MaxConcurrent
	}
	if file.AllowPartial != nil {
		cfg.AllowPartial = *file.AllowPartial
	}

	return cfg, nil
}

// Validate checks the config for usable values
func (c *Config) Validate() error {
	if len(c.States) == 0 {
		return fmt.Errorf("at least one state is required")
	}
	for _, state := range c.States {
		if strings.TrimSpace(state) == "" {
			return fmt.Errorf("state codes must not be empty")
		}
	}
	if c.ServiceName == "" {
		return fmt.Errorf("service name must not be empty")
	}
	if c.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d", c.Limit)
	}
	if c.Timezone == "" {
		return fmt.Errorf("timezone must not be empty")
	}
	if c.MaxConcurrent < 1 {
		return fmt.Errorf("max concurrent must be at least 1, got %d", c.MaxConcurrent)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	return nil
}

// NormalizeStates upper-cases and trims the state allow-list in place
func (c *Config) NormalizeStates() {
	for i, state := range c.States {
		c.States[i] = strings.ToUpper(strings.TrimSpace(state))
	}
}
