package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML
// friendly.
type FileConfig struct {
	TrackingID string `toml:"tracking_id"`
	ClientID   string `toml:"client_id"`
	UserID     string `toml:"user_id"`

	Hostname  string `toml:"hostname"`
	HitPath   string `toml:"hit_path"`
	BatchPath string `toml:"batch_path"`
	Insecure  *bool  `toml:"insecure"`

	EnableBatching *bool  `toml:"enable_batching"`
	BatchSize      int    `toml:"batch_size"`
	HTTPTimeout    string `toml:"http_timeout"`

	Headers map[string]string `toml:"headers"`

	SpoolDir string `toml:"spool_dir"`
	Debug    *bool  `toml:"debug"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.hitship/config.toml if the user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".hitship", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("tracking-id", fc.TrackingID, &cfg.TrackingID)
	s.setString("client-id", fc.ClientID, &cfg.ClientID)
	s.setString("user-id", fc.UserID, &cfg.UserID)
	s.setString("hostname", fc.Hostname, &cfg.Hostname)
	s.setString("hit-path", fc.HitPath, &cfg.HitPath)
	s.setString("batch-path", fc.BatchPath, &cfg.BatchPath)
	s.setString("spool-dir", fc.SpoolDir, &cfg.SpoolDir)

	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}

	s.setInt("batch-size", fc.BatchSize, &cfg.BatchSize)

	s.setBool("insecure", fc.Insecure, &cfg.Insecure)
	s.setBool("batching", fc.EnableBatching, &cfg.EnableBatching)
	s.setBool("debug", fc.Debug, &cfg.Debug)

	if len(fc.Headers) > 0 && cfg.Headers == nil {
		cfg.Headers = fc.Headers
	}

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
