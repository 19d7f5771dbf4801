package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (HITSHIP_*). It respects flags that have been explicitly set (changed
// map). Returns an error if any variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("tracking-id", os.Getenv("HITSHIP_TRACKING_ID"), &cfg.TrackingID)
	s.setString("client-id", os.Getenv("HITSHIP_CLIENT_ID"), &cfg.ClientID)
	s.setString("user-id", os.Getenv("HITSHIP_USER_ID"), &cfg.UserID)
	s.setString("hostname", os.Getenv("HITSHIP_HOSTNAME"), &cfg.Hostname)
	s.setString("hit-path", os.Getenv("HITSHIP_HIT_PATH"), &cfg.HitPath)
	s.setString("batch-path", os.Getenv("HITSHIP_BATCH_PATH"), &cfg.BatchPath)
	s.setString("spool-dir", os.Getenv("HITSHIP_SPOOL_DIR"), &cfg.SpoolDir)

	if err := s.setDuration("timeout", os.Getenv("HITSHIP_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}

	if err := s.setIntFromString("batch-size", os.Getenv("HITSHIP_BATCH_SIZE"), &cfg.BatchSize); err != nil {
		return err
	}

	s.setBoolFromString("insecure", os.Getenv("HITSHIP_INSECURE"), &cfg.Insecure)
	s.setBoolFromString("batching", os.Getenv("HITSHIP_ENABLE_BATCHING"), &cfg.EnableBatching)
	s.setBoolFromString("debug", os.Getenv("HITSHIP_DEBUG"), &cfg.Debug)

	return nil
}
