package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, BackendSQLite, c.StorageBackend)
	assert.Equal(t, "taskmeet.db", c.StorePath)
	assert.Equal(t, 1*time.Second, c.AuthDelay)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, BackendSQLite, cfg.StorageBackend)
	assert.Equal(t, "taskmeet.db", cfg.StorePath)
	assert.Equal(t, 1*time.Second, cfg.AuthDelay)
}
