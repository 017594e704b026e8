package testsupport

import (
	"path/filepath"
	"testing"

	"crosscheck/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Radarr.URL = "http://127.0.0.1:7878"
	cfg.Radarr.APIKey = "test"
	cfg.Tracker.URL = "http://127.0.0.1:8080"
	cfg.Tracker.APIToken = "test"
	cfg.Cache.Dir = filepath.Join(base, "cache")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Report.Path = filepath.Join(base, "movies_not_found.txt")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithExpiryDays overrides the cache expiry window on the test config.
func WithExpiryDays(days int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Cache.ExpiryDays = days
	}
}

// WithReleaseGroups overrides the allow-listed release groups.
func WithReleaseGroups(groups ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Matching.ReleaseGroups = groups
	}
}
