package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// ConnectionConfig describes how to reach the Unreal Engine editor's TCP
// listener. It is immutable for the lifetime of one command; the transport
// core reads it but never mutates it.
type ConnectionConfig struct {
	Host       string  `json:"host"`
	Port       int     `json:"port"`
	Timeout    float64 `json:"timeout"`     // connect timeout in seconds
	BufferSize int     `json:"buffer_size"` // socket send/receive buffer size in bytes
	MaxRetries int     `json:"max_retries"` // dial attempts per command (connect phase only)
	RetryDelay float64 `json:"retry_delay"` // delay between dial attempts in seconds
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level          string `json:"level"`
	FileEnabled    bool   `json:"file_enabled"`
	ConsoleEnabled bool   `json:"console_enabled"`
}

// ServerConfig holds MCP server settings
type ServerConfig struct {
	Address   string `json:"address"`   // HTTP listen address, e.g. ":8080"
	Transport string `json:"transport"` // "stdio" or "http"
}

// WatcherConfig controls config hot reload
type WatcherConfig struct {
	Enabled  bool `json:"enabled"`
	Interval int  `json:"interval_seconds"`
}

// IntervalDuration returns the watcher poll interval as a time.Duration
func (w WatcherConfig) IntervalDuration() time.Duration {
	return time.Duration(w.Interval) * time.Second
}

// Addr returns the host:port dial target for the editor
func (c ConnectionConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// TimeoutDuration returns the connect timeout as a time.Duration
func (c ConnectionConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout * float64(time.Second))
}

// RetryDelayDuration returns the delay between dial attempts as a time.Duration
func (c ConnectionConfig) RetryDelayDuration() time.Duration {
	return time.Duration(c.RetryDelay * float64(time.Second))
}

// Validate checks the connection settings for obviously broken values
func (c ConnectionConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("connection host cannot be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("connection port must be between 1 and 65535, got %d", c.Port)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", c.Timeout)
	}
	if c.BufferSize <= 0 {
		return fmt.Errorf("connection buffer_size must be positive, got %d", c.BufferSize)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("connection max_retries cannot be negative, got %d", c.MaxRetries)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("connection retry_delay cannot be negative, got %v", c.RetryDelay)
	}
	return nil
}

// DefaultConnectionConfig returns the settings used when no config file exists.
// The Unreal plugin listens on localhost only.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		Host:       "127.0.0.1",
		Port:       55557,
		Timeout:    5,
		BufferSize: 65536,
		MaxRetries: 3,
		RetryDelay: 1.0,
	}
}

// DefaultLoggingConfig returns default logging settings
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:          "info",
		FileEnabled:    true,
		ConsoleEnabled: true,
	}
}

// DefaultServerConfig returns default server settings
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:   ":8080",
		Transport: "stdio",
	}
}

// DefaultWatcherConfig returns default hot-reload settings
func DefaultWatcherConfig() WatcherConfig {
	return WatcherConfig{
		Enabled:  false,
		Interval: 30,
	}
}
