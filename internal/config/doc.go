// Package config loads, normalizes, and validates avghash configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// AVGHASH_LOG_LEVEL. The hash section fixes the grid size and resampling
// filter; every hash in a corpus must be produced with the same values, so
// they live in configuration rather than in code.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical names, and clear validation errors.
package config
