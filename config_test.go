package hitship

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Hostname != DefaultHostname {
		t.Fatalf("unexpected hostname %q", cfg.Hostname)
	}
	if cfg.HitPath != "/collect" || cfg.BatchPath != "/batch" {
		t.Fatalf("unexpected paths %q %q", cfg.HitPath, cfg.BatchPath)
	}
	if cfg.BatchSize != 20 {
		t.Fatalf("unexpected batch size %d", cfg.BatchSize)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.HTTPTimeout)
	}
	if cfg.EnableBatching {
		t.Fatal("batching must default to off")
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"missing tracking id", func(c *Config) { c.TrackingID = "" }},
		{"scheme in hostname", func(c *Config) { c.Hostname = "https://collector.test" }},
		{"relative hit path", func(c *Config) { c.HitPath = "collect" }},
		{"relative batch path", func(c *Config) { c.BatchPath = "batch" }},
		{"negative batch size", func(c *Config) { c.BatchSize = -1 }},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		cfg.TrackingID = "UA-000000-1"
		tc.mut(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got %v", tc.name, err)
		}
	}
}

func TestValidateTrimsTrailingSlash(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TrackingID = "UA-000000-1"
	cfg.Hostname = "collector.test/"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Hostname != "collector.test" {
		t.Fatalf("trailing slash not trimmed: %q", cfg.Hostname)
	}
}

func TestCollectorURL(t *testing.T) {
	cases := []struct {
		insecure bool
		batching bool
		want     string
	}{
		{false, false, "https://collector.test/collect"},
		{false, true, "https://collector.test/batch"},
		{true, false, "http://collector.test/collect"},
		{true, true, "http://collector.test/batch"},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		cfg.Hostname = "collector.test"
		cfg.Insecure = tc.insecure
		cfg.EnableBatching = tc.batching
		if got := cfg.collectorURL(); got != tc.want {
			t.Fatalf("insecure=%v batching=%v: expected %s, got %s", tc.insecure, tc.batching, tc.want, got)
		}
	}
}
