package config

import (
	"errors"
	"fmt"

	"crosscheck/internal/quality"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRadarr(); err != nil {
		return err
	}
	if err := c.validateTracker(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateRadarr() error {
	if c.Radarr.URL == "" {
		return errors.New("radarr.url must be set")
	}
	if c.Radarr.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/crosscheck/config.toml"
		}
		return fmt.Errorf("radarr.api_key is required. Set RADARR_API_KEY env var or edit %s (create with 'crosscheck config init')", defaultPath)
	}
	return nil
}

func (c *Config) validateTracker() error {
	if c.Tracker.URL == "" {
		return errors.New("tracker.url must be set")
	}
	if c.Tracker.APIToken == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/crosscheck/config.toml"
		}
		return fmt.Errorf("tracker.api_token is required. Set TRACKER_API_TOKEN env var or edit %s (create with 'crosscheck config init')", defaultPath)
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.ExpiryDays <= 0 {
		return errors.New("cache.expiry_days must be positive")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if _, err := quality.TierFor(c.Matching.TargetResolution); err != nil {
		return fmt.Errorf("matching.target_resolution: %w", err)
	}
	if len(c.Matching.ReleaseGroups) == 0 {
		return errors.New("matching.release_groups must list at least one group")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
