// Package services defines shared utilities consumed by the external service
// clients and the reconciliation engine.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that keep failure
//     classification consistent across the Radarr and tracker clients.
//   - errors.Is-friendly sentinels so the engine can distinguish a transport
//     failure (skip the item, keep going) from a configuration problem.
package services
