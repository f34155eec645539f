// Package preflight validates the environment before a conversion starts.
//
// Checks return a Result describing what was inspected so the CLI can fail
// with a precise message before any output is produced.
package preflight
