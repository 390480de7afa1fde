// Package config loads and validates reelscribe's TOML configuration.
//
// Load resolves the config path (explicit flag, ~/.config/reelscribe/
// config.toml, then ./reelscribe.toml), applies defaults for anything the
// file omits, expands ~ in path fields, honors the MODEL_SIZE and
// COMPUTE_TYPE environment fallbacks, and validates the result.
package config
