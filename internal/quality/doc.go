// Package quality holds the pure classification rules for local movie files:
// the mapping between Radarr's numeric resolutions and the tracker's display
// tags, the strict target-resolution check, and release-group extraction from
// file names with case-insensitive allow-list membership.
//
// Nothing here performs I/O; every function is deterministic over its inputs
// so the reconciliation engine's decisions stay trivially testable.
package quality
