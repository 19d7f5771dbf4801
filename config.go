package hitship

import (
	"fmt"
	"strings"
	"time"
)

// Default collector endpoint values.
const (
	DefaultHostname  = "www.google-analytics.com"
	DefaultHitPath   = "/collect"
	DefaultBatchPath = "/batch"

	// DefaultBatchSize is the collector's per-request hit limit.
	DefaultBatchSize = 20

	// DefaultHTTPTimeout bounds each collector request. The wire protocol
	// itself has no timeout; this is a client-side safety net.
	DefaultHTTPTimeout = 30 * time.Second

	protocolVersion = "1"
)

// Config holds the construction-time settings of a Visitor. Each Visitor
// owns its own Config value; two Visitors with different settings never
// interfere.
type Config struct {
	// TrackingID is the collector property id (tid). Required.
	TrackingID string

	// ClientID identifies the client instance (cid). A fresh UUID is
	// generated when left empty, and is then stable for the Visitor's
	// lifetime.
	ClientID string

	// UserID is the optional known-user id (uid).
	UserID string

	// Hostname is the collector host. Defaults to DefaultHostname.
	Hostname string

	// HitPath is the endpoint path used when batching is disabled.
	HitPath string

	// BatchPath is the endpoint path used when batching is enabled.
	BatchPath string

	// Insecure selects plain HTTP instead of HTTPS.
	Insecure bool

	// EnableBatching groups queued hits into multi-hit request bodies.
	EnableBatching bool

	// BatchSize is the maximum number of hits per request when batching
	// is enabled. Defaults to DefaultBatchSize.
	BatchSize int

	// HTTPTimeout bounds each collector request made by the default HTTP
	// client. Ignored when a custom client is injected.
	HTTPTimeout time.Duration

	// Headers are extra HTTP headers attached to every collector request.
	Headers map[string]string
}

// DefaultConfig returns a Config with default values. TrackingID must be
// set before use.
func DefaultConfig() Config {
	return Config{
		Hostname:    DefaultHostname,
		HitPath:     DefaultHitPath,
		BatchPath:   DefaultBatchPath,
		BatchSize:   DefaultBatchSize,
		HTTPTimeout: DefaultHTTPTimeout,
	}
}

// SetDefaults fills unset fields with default values.
func (c *Config) SetDefaults() {
	if c.Hostname == "" {
		c.Hostname = DefaultHostname
	}
	if c.HitPath == "" {
		c.HitPath = DefaultHitPath
	}
	if c.BatchPath == "" {
		c.BatchPath = DefaultBatchPath
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = DefaultHTTPTimeout
	}
}

// Validate checks the configuration and normalizes derived fields.
func (c *Config) Validate() error {
	if c.TrackingID == "" {
		return fmt.Errorf("%w: tracking id is required", ErrInvalidConfig)
	}

	c.Hostname = strings.TrimSuffix(c.Hostname, "/")
	if c.Hostname == "" {
		return fmt.Errorf("%w: hostname is required", ErrInvalidConfig)
	}
	if strings.Contains(c.Hostname, "://") {
		return fmt.Errorf("%w: hostname must not carry a scheme", ErrInvalidConfig)
	}

	if !strings.HasPrefix(c.HitPath, "/") {
		return fmt.Errorf("%w: hit path must start with /", ErrInvalidConfig)
	}
	if !strings.HasPrefix(c.BatchPath, "/") {
		return fmt.Errorf("%w: batch path must start with /", ErrInvalidConfig)
	}

	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be positive", ErrInvalidConfig)
	}

	return nil
}

// collectorURL resolves the endpoint for this configuration. The path
// depends on whether batching is enabled; the policy is fixed at
// construction, so the URL is too.
func (c Config) collectorURL() string {
	scheme := "https"
	if c.Insecure {
		scheme = "http"
	}
	path := c.HitPath
	if c.EnableBatching {
		path = c.BatchPath
	}
	return scheme + "://" + c.Hostname + path
}
