// Package logging assembles structured slog loggers and formatting helpers used
// across avghash.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so every line of a run carries
// the same run_id. Logs always go to stderr because stdout carries results; a
// JSON copy can additionally be appended to a file. The package also provides
// a no-op logger for tests and wiring code that cannot fail.
package logging
