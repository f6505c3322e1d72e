package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must be >= 0 (got %v)", c.Server.ShutdownTimeout)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.RateLimit.WritesPerMinute < 0 {
		return fmt.Errorf("rate_limit.writes_per_minute must be >= 0 (got %d)", c.RateLimit.WritesPerMinute)
	}
	if c.RateLimit.WritesPerMinute > 0 && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	s.DataFile = strings.TrimSpace(s.DataFile)
	if s.DataFile == "" {
		return fmt.Errorf("data_file is required")
	}
	if strings.HasSuffix(s.DataFile, "/") {
		return fmt.Errorf("data_file must name a file, not a directory (got %q)", s.DataFile)
	}
	if s.LockTimeout <= 0 {
		return fmt.Errorf("lock_timeout must be > 0 (got %v)", s.LockTimeout)
	}
	return nil
}
