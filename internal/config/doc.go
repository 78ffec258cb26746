// Package config loads runtime configuration for the taskmeet CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-b string   storage backend: "sqlite" or "file"
//	-f string   path to the storage file (SQLite database or JSON document)
//	-d int      simulated auth round-trip delay (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for durations, so values can be either
// strings like "1s" or integer nanoseconds:
//
//	{
//	  "storage_backend": "sqlite",
//	  "store_path": "taskmeet.db",
//	  "auth_delay": "1s"
//	}
//
// Primary API
//
//   - type Config                     — backend, store path, and auth delay
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
