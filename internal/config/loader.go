package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ConfigFileName is the expected config file name inside the config directory
const ConfigFileName = "unrealmcp.jsonc"

// fileConfig mirrors the on-disk layout of unrealmcp.jsonc
type fileConfig struct {
	Server     *ServerConfig     `json:"server"`
	Connection *ConnectionConfig `json:"connection"`
	Logging    *LoggingConfig    `json:"logging"`
	Watcher    *WatcherConfig    `json:"watcher"`
}

// LoadedConfig holds all configuration for one server process
type LoadedConfig struct {
	Server     ServerConfig
	Connection ConnectionConfig
	Logging    LoggingConfig
	Watcher    WatcherConfig

	// Path is the file the config was loaded from; empty when running on
	// built-in defaults.
	Path string
}

// FindConfigPath locates unrealmcp.jsonc under the given config directory
func FindConfigPath(configDir string) (string, error) {
	path := filepath.Join(configDir, ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("config file not found at %s: %w", path, err)
	}
	return path, nil
}

// Defaults returns a config populated entirely from built-in defaults and
// environment overrides. Used when no config file exists, matching the
// behavior of falling back to defaults rather than refusing to start.
func Defaults() *LoadedConfig {
	cfg := &LoadedConfig{
		Server:     DefaultServerConfig(),
		Connection: DefaultConnectionConfig(),
		Logging:    DefaultLoggingConfig(),
		Watcher:    DefaultWatcherConfig(),
	}
	applyEnvOverrides(&cfg.Connection)
	return cfg
}

// Load reads and parses the config file at path, applies defaults for missing
// sections, applies UNREAL_MCP_* env overrides, and validates the result.
func Load(path string) (*LoadedConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(StripJSONComments(data), &fc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	cfg := Defaults()
	cfg.Path = path

	if fc.Server != nil {
		if fc.Server.Address != "" {
			cfg.Server.Address = fc.Server.Address
		}
		if fc.Server.Transport != "" {
			cfg.Server.Transport = fc.Server.Transport
		}
	}
	if fc.Connection != nil {
		mergeConnection(&cfg.Connection, fc.Connection)
	}
	if fc.Logging != nil {
		cfg.Logging = *fc.Logging
		if cfg.Logging.Level == "" {
			cfg.Logging.Level = "info"
		}
	}
	if fc.Watcher != nil {
		cfg.Watcher = *fc.Watcher
		if cfg.Watcher.Interval <= 0 {
			cfg.Watcher.Interval = DefaultWatcherConfig().Interval
		}
	}

	// Env overrides win over the file
	applyEnvOverrides(&cfg.Connection)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadAll loads configuration from the config directory, falling back to
// built-in defaults when the file does not exist.
func LoadAll(configDir string) (*LoadedConfig, error) {
	path, err := FindConfigPath(configDir)
	if err != nil {
		return Defaults(), nil
	}
	return Load(path)
}

// Validate checks the loaded configuration
func (c *LoadedConfig) Validate() error {
	if err := c.Connection.Validate(); err != nil {
		return err
	}
	switch c.Server.Transport {
	case "stdio", "http":
	default:
		return fmt.Errorf("server transport must be \"stdio\" or \"http\", got %q", c.Server.Transport)
	}
	return nil
}

func mergeConnection(dst *ConnectionConfig, src *ConnectionConfig) {
	if src.Host != "" {
		dst.Host = src.Host
	}
	if src.Port != 0 {
		dst.Port = src.Port
	}
	if src.Timeout != 0 {
		dst.Timeout = src.Timeout
	}
	if src.BufferSize != 0 {
		dst.BufferSize = src.BufferSize
	}
	if src.MaxRetries != 0 {
		dst.MaxRetries = src.MaxRetries
	}
	if src.RetryDelay != 0 {
		dst.RetryDelay = src.RetryDelay
	}
}

// applyEnvOverrides applies UNREAL_MCP_* environment variables on top of the
// connection settings. Unparseable values are ignored.
func applyEnvOverrides(c *ConnectionConfig) {
	if host := os.Getenv("UNREAL_MCP_HOST"); host != "" {
		c.Host = host
	}
	if port := os.Getenv("UNREAL_MCP_PORT"); port != "" {
		if v, err := strconv.Atoi(port); err == nil {
			c.Port = v
		}
	}
	if timeout := os.Getenv("UNREAL_MCP_TIMEOUT"); timeout != "" {
		if v, err := strconv.ParseFloat(timeout, 64); err == nil {
			c.Timeout = v
		}
	}
	if size := os.Getenv("UNREAL_MCP_BUFFER_SIZE"); size != "" {
		if v, err := strconv.Atoi(size); err == nil {
			c.BufferSize = v
		}
	}
}
