// Package config loads, normalizes, and validates robotics dispatcher
// configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// IDAM_OAUTH2_TOKEN and S2S_TOKEN. The Config type centralizes every knob the
// CLI needs, so downstream code receives sanitized paths, canonical log
// formats, and clear validation errors.
package config
