// Package logging assembles the structured slog loggers used across
// crosscheck.
//
// It owns the console/JSON handler selection, centralizes level and output
// plumbing (stdout plus an append-only run log), and exposes small attr
// aliases so call sites stay terse. The package also provides a no-op logger
// for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape and routing.
package logging
