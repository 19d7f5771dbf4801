// Package cliconfig holds the CLI-facing configuration for hitship,
// merged from (in increasing precedence) defaults, config file,
// HITSHIP_* environment variables and command-line flags.
package cliconfig

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bft-labs/hitship"
)

// Config holds CLI configuration for hitship.
type Config struct {
	TrackingID string
	ClientID   string
	UserID     string

	Hostname  string
	HitPath   string
	BatchPath string
	Insecure  bool

	EnableBatching bool
	BatchSize      int
	HTTPTimeout    time.Duration

	Headers map[string]string

	SpoolDir string
	Debug    bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		TrackingID:  os.Getenv("HITSHIP_TRACKING_ID"),
		Hostname:    hitship.DefaultHostname,
		HitPath:     hitship.DefaultHitPath,
		BatchPath:   hitship.DefaultBatchPath,
		BatchSize:   hitship.DefaultBatchSize,
		HTTPTimeout: hitship.DefaultHTTPTimeout,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.TrackingID == "" {
		return fmt.Errorf("tracking-id is required")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// Visitor builds the library Config from the CLI configuration.
func (c Config) Visitor() hitship.Config {
	return hitship.Config{
		TrackingID:     c.TrackingID,
		ClientID:       c.ClientID,
		UserID:         c.UserID,
		Hostname:       c.Hostname,
		HitPath:        c.HitPath,
		BatchPath:      c.BatchPath,
		Insecure:       c.Insecure,
		EnableBatching: c.EnableBatching,
		BatchSize:      c.BatchSize,
		HTTPTimeout:    c.HTTPTimeout,
		Headers:        c.Headers,
	}
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't
// been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag
// not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if
// valid. Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
