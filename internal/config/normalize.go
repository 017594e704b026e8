package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeRadarr()
	c.normalizeTracker()
	c.normalizeMatching()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Cache.Dir) == "" {
		c.Cache.Dir = defaultCacheDir
	}
	if c.Cache.Dir, err = expandPath(c.Cache.Dir); err != nil {
		return fmt.Errorf("cache.dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	c.Report.Path = strings.TrimSpace(c.Report.Path)
	if c.Report.Path == "" {
		c.Report.Path = defaultReportPath
	}
	return nil
}

func (c *Config) normalizeRadarr() {
	if c.Radarr.APIKey == "" {
		if value, ok := os.LookupEnv("RADARR_API_KEY"); ok {
			c.Radarr.APIKey = strings.TrimSpace(value)
		}
	}
	c.Radarr.URL = strings.TrimRight(strings.TrimSpace(c.Radarr.URL), "/")
	c.Radarr.APIKey = strings.TrimSpace(c.Radarr.APIKey)
}

func (c *Config) normalizeTracker() {
	if c.Tracker.APIToken == "" {
		if value, ok := os.LookupEnv("TRACKER_API_TOKEN"); ok {
			c.Tracker.APIToken = strings.TrimSpace(value)
		}
	}
	c.Tracker.URL = strings.TrimRight(strings.TrimSpace(c.Tracker.URL), "/")
	c.Tracker.APIToken = strings.TrimSpace(c.Tracker.APIToken)
}

func (c *Config) normalizeMatching() {
	groups := make([]string, 0, len(c.Matching.ReleaseGroups))
	for _, group := range c.Matching.ReleaseGroups {
		if trimmed := strings.TrimSpace(group); trimmed != "" {
			groups = append(groups, trimmed)
		}
	}
	c.Matching.ReleaseGroups = groups
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
