// Package config loads, normalizes, and validates mpevm configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. A missing configuration file is not an
// error: every knob has a default that matches miniprot output and the
// labels EVM expects, so a bare invocation converts without any setup.
//
// Always obtain settings through this package so downstream code receives
// trimmed labels, canonical log settings, and clear validation errors.
package config
