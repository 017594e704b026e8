package config

const (
	defaultCacheDir         = "~/.local/share/crosscheck"
	defaultLogDir           = "~/.local/share/crosscheck/logs"
	defaultCacheExpiryDays  = 7
	defaultTargetResolution = 2160
	defaultReportPath       = "movies_not_found.txt"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

func defaultReleaseGroups() []string {
	return []string{"BHDStudio", "Hallowed"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Cache: Cache{
			Dir:        defaultCacheDir,
			ExpiryDays: defaultCacheExpiryDays,
		},
		Matching: Matching{
			TargetResolution: defaultTargetResolution,
			ReleaseGroups:    defaultReleaseGroups(),
		},
		Report: Report{
			Path: defaultReportPath,
		},
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
