package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"crosscheck/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const minimalConfig = `
[radarr]
url = "http://localhost:7878"
api_key = "radarr-key"

[tracker]
url = "https://tracker.example.org/"
api_token = "tracker-token"
`

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, minimalConfig)

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatalf("expected config at %q to be found", path)
	}

	if cfg.Cache.ExpiryDays != 7 {
		t.Fatalf("expiry_days default = %d, want 7", cfg.Cache.ExpiryDays)
	}
	if cfg.Matching.TargetResolution != 2160 {
		t.Fatalf("target_resolution default = %d, want 2160", cfg.Matching.TargetResolution)
	}
	want := []string{"BHDStudio", "Hallowed"}
	if len(cfg.Matching.ReleaseGroups) != 2 || cfg.Matching.ReleaseGroups[0] != want[0] || cfg.Matching.ReleaseGroups[1] != want[1] {
		t.Fatalf("release_groups default = %v, want %v", cfg.Matching.ReleaseGroups, want)
	}
	if cfg.Report.Path != "movies_not_found.txt" {
		t.Fatalf("report path default = %q", cfg.Report.Path)
	}
	if cfg.Tracker.URL != "https://tracker.example.org" {
		t.Fatalf("tracker url should be trimmed of trailing slash, got %q", cfg.Tracker.URL)
	}
}

func TestLoadHonoursEnvFallbacks(t *testing.T) {
	path := writeConfig(t, `
[radarr]
url = "http://localhost:7878"

[tracker]
url = "https://tracker.example.org"
`)
	t.Setenv("RADARR_API_KEY", "env-radarr")
	t.Setenv("TRACKER_API_TOKEN", "env-tracker")

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Radarr.APIKey != "env-radarr" {
		t.Fatalf("radarr api key = %q", cfg.Radarr.APIKey)
	}
	if cfg.Tracker.APIToken != "env-tracker" {
		t.Fatalf("tracker api token = %q", cfg.Tracker.APIToken)
	}
}

func TestLoadRejectsMissingCredentials(t *testing.T) {
	path := writeConfig(t, `
[radarr]
url = "http://localhost:7878"

[tracker]
url = "https://tracker.example.org"
`)
	t.Setenv("RADARR_API_KEY", "")
	t.Setenv("TRACKER_API_TOKEN", "")
	// Ensure empty values are treated as unset.
	os.Unsetenv("RADARR_API_KEY")
	os.Unsetenv("TRACKER_API_TOKEN")

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected validation failure for missing api key")
	}
	if !strings.Contains(err.Error(), "radarr.api_key") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsUnknownResolution(t *testing.T) {
	path := writeConfig(t, minimalConfig+`
[matching]
target_resolution = 1440
release_groups = ["BHDStudio"]
`)
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation failure for unknown resolution")
	}
}

func TestLoadRejectsEmptyReleaseGroups(t *testing.T) {
	path := writeConfig(t, minimalConfig+`
[matching]
target_resolution = 2160
release_groups = ["  "]
`)
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation failure for empty release groups")
	}
}

func TestLoadRejectsBadLogging(t *testing.T) {
	path := writeConfig(t, minimalConfig+`
[logging]
format = "xml"
`)
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation failure for unsupported log format")
	}
}

func TestLoadRejectsNonPositiveExpiry(t *testing.T) {
	path := writeConfig(t, minimalConfig+`
[cache]
expiry_days = 0
`)
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation failure for zero expiry")
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	t.Setenv("RADARR_API_KEY", "k")
	t.Setenv("TRACKER_API_TOKEN", "k")
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample failed: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Matching.TargetResolution != 2160 {
		t.Fatalf("sample target_resolution = %d", cfg.Matching.TargetResolution)
	}
}
