package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault tests the built-in configuration
func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 50051, cfg.ClientPort)
	assert.Equal(t, 50052, cfg.CollectorPort)
	assert.Equal(t, 10*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, 30*time.Second, cfg.HeartbeatTimeout)
	assert.NoError(t, cfg.Validate())
}

// TestLoadMissingFile tests that a missing config path yields defaults
func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().ClientPort, cfg.ClientPort)
}

// TestLoadOverrides tests YAML values layered over defaults
func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("client_port: 6000\ncollector_port: 6001\nheartbeat_interval: 2s\nheartbeat_timeout: 6s\nlog_level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.ClientPort)
	assert.Equal(t, 6001, cfg.CollectorPort)
	assert.Equal(t, 2*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched values keep their defaults.
	assert.Equal(t, Default().SweeperInterval, cfg.SweeperInterval)
}

// TestValidate tests rejection of broken settings
func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"same ports", func(c *Config) { c.CollectorPort = c.ClientPort }},
		{"negative port", func(c *Config) { c.ClientPort = -1 }},
		{"timeout below interval", func(c *Config) { c.HeartbeatTimeout = c.HeartbeatInterval / 2 }},
		{"zero sweeper interval", func(c *Config) { c.SweeperInterval = 0 }},
		{"zero workers", func(c *Config) { c.MaxWorkers = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

// TestAddrs tests listener address formatting
func TestAddrs(t *testing.T) {
	cfg := Default()
	cfg.DispatcherAddress = "10.0.0.5"

	assert.Equal(t, "10.0.0.5:50051", cfg.ClientAddr())
	assert.Equal(t, "10.0.0.5:50052", cfg.CollectorAddr())
}
