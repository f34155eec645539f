// Package logging assembles structured slog loggers for mpevm.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so conversion code can tag log lines
// with the run identifier. Diagnostics default to stderr because stdout
// carries converted records. A no-op logger is provided for tests and wiring
// code that cannot fail.
package logging
