package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all dispatcher and collector process settings. A single
// Config object is constructed at startup and shared read-only.
type Config struct {
	// DispatcherAddress is the host collectors and clients dial.
	DispatcherAddress string `yaml:"dispatcher_address"`

	// ClientPort and CollectorPort are the two gRPC listeners.
	ClientPort    int `yaml:"client_port"`
	CollectorPort int `yaml:"collector_port"`

	// HealthPort serves HTTP /health, /ready and /metrics.
	HealthPort int `yaml:"health_port"`

	// DBPath holds task records; UserDBPath holds user credentials.
	DBPath     string `yaml:"db_path"`
	UserDBPath string `yaml:"user_db_path"`

	// SourcesPath is the JSON source catalog file.
	SourcesPath string `yaml:"sources_path"`

	// HeartbeatInterval is how often collectors send heartbeats.
	// HeartbeatTimeout is the max idle age for assignment candidates;
	// collectors idle for more than twice this are failed over.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`
	HeartbeatTimeout  time.Duration `yaml:"heartbeat_timeout"`

	// SweeperInterval drives the task expiry loop.
	SweeperInterval time.Duration `yaml:"sweeper_interval"`

	// StreamPollInterval is the collector task-stream poll period.
	StreamPollInterval time.Duration `yaml:"stream_poll_interval"`

	// RSSRefresh is the collector's per-source fetch period.
	RSSRefresh time.Duration `yaml:"rss_refresh"`

	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`

	// MaxWorkers bounds concurrent RPC handlers.
	MaxWorkers int `yaml:"max_workers"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DispatcherAddress:  "127.0.0.1",
		ClientPort:         50051,
		CollectorPort:      50052,
		HealthPort:         9090,
		DBPath:             "magpie-data/tasks.db",
		UserDBPath:         "magpie-data/users.db",
		SourcesPath:        "sources.json",
		HeartbeatInterval:  10 * time.Second,
		HeartbeatTimeout:   30 * time.Second,
		SweeperInterval:    5 * time.Second,
		StreamPollInterval: 5 * time.Second,
		RSSRefresh:         60 * time.Second,
		LogLevel:           "info",
		MaxWorkers:         10,
	}
}

// Load reads a YAML config file over the defaults. A missing path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail deep inside the
// dispatcher at runtime.
func (c *Config) Validate() error {
	if c.ClientPort <= 0 || c.CollectorPort <= 0 {
		return fmt.Errorf("client_port and collector_port must be positive")
	}
	if c.ClientPort == c.CollectorPort {
		return fmt.Errorf("client_port and collector_port must differ")
	}
	if c.HeartbeatTimeout < c.HeartbeatInterval {
		return fmt.Errorf("heartbeat_timeout must be >= heartbeat_interval")
	}
	if c.SweeperInterval <= 0 || c.StreamPollInterval <= 0 {
		return fmt.Errorf("sweeper_interval and stream_poll_interval must be positive")
	}
	if c.MaxWorkers <= 0 {
		return fmt.Errorf("max_workers must be positive")
	}
	return nil
}

// ClientAddr returns the host:port of the client-facing listener.
func (c *Config) ClientAddr() string {
	return fmt.Sprintf("%s:%d", c.DispatcherAddress, c.ClientPort)
}

// CollectorAddr returns the host:port of the collector-facing listener.
func (c *Config) CollectorAddr() string {
	return fmt.Sprintf("%s:%d", c.DispatcherAddress, c.CollectorPort)
}
