// Package config loads, normalizes, and validates crosscheck configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// RADARR_API_KEY and TRACKER_API_TOKEN. The Config type centralizes every
// knob the CLI needs, so the cache directory and external service credentials
// are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical resolution tiers, and clear validation errors.
package config
