package config

import "time"

// Storage backend identifiers accepted in StorageBackend.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Config holds runtime settings for the taskmeet CLI.
//
// Fields:
//   - StorageBackend: which key-value substrate to use ("sqlite" or "file").
//   - StorePath: path of the SQLite database or JSON document.
//   - AuthDelay: artificial latency applied to login/signup, simulating a
//     network round trip.
type Config struct {
	StorageBackend string
	StorePath      string
	AuthDelay      time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = BackendSQLite
	c.StorePath = "taskmeet.db"
	c.AuthDelay = 1 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
