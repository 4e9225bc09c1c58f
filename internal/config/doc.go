// Package config holds all configuration for partscan.
//
// Configuration is assembled from CLI flags with sensible defaults, plus
// an optional .partscan YAML file for per-site overrides (custom headers,
// identity, pacing). The Config struct is passed through the application
// via dependency injection rather than global state.
package config
