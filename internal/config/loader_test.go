package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config with comments", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `{
			// bridge settings
			"server": {
				"address": ":9090",
				"transport": "http"
			},
			"connection": {
				"host": "10.0.0.5",
				"port": 44444,
				"timeout": 2.5,
				"buffer_size": 8192,
				"max_retries": 5,
				"retry_delay": 0.5
			},
			/* watcher block */
			"watcher": {
				"enabled": true,
				"interval_seconds": 10
			}
		}`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Server.Address != ":9090" {
			t.Errorf("Server.Address = %q, want :9090", cfg.Server.Address)
		}
		if cfg.Server.Transport != "http" {
			t.Errorf("Server.Transport = %q, want http", cfg.Server.Transport)
		}
		if cfg.Connection.Host != "10.0.0.5" || cfg.Connection.Port != 44444 {
			t.Errorf("Connection = %s, want 10.0.0.5:44444", cfg.Connection.Addr())
		}
		if cfg.Connection.Timeout != 2.5 {
			t.Errorf("Connection.Timeout = %v, want 2.5", cfg.Connection.Timeout)
		}
		if !cfg.Watcher.Enabled || cfg.Watcher.Interval != 10 {
			t.Errorf("Watcher = %+v, want enabled with 10s interval", cfg.Watcher)
		}
		if cfg.Path != path {
			t.Errorf("Path = %q, want %q", cfg.Path, path)
		}
	})

	t.Run("partial config fills defaults", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `{
			"connection": {"port": 50000}
		}`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Connection.Port != 50000 {
			t.Errorf("Connection.Port = %d, want 50000", cfg.Connection.Port)
		}
		if cfg.Connection.Host != "127.0.0.1" {
			t.Errorf("Connection.Host = %q, want default 127.0.0.1", cfg.Connection.Host)
		}
		if cfg.Connection.BufferSize != 65536 {
			t.Errorf("Connection.BufferSize = %d, want default 65536", cfg.Connection.BufferSize)
		}
		if cfg.Server.Transport != "stdio" {
			t.Errorf("Server.Transport = %q, want default stdio", cfg.Server.Transport)
		}
	})

	t.Run("invalid port rejected", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `{
			"connection": {"port": 70000}
		}`)

		if _, err := Load(path); err == nil {
			t.Error("Load() = nil error, want port validation failure")
		}
	})

	t.Run("invalid transport rejected", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `{
			"server": {"transport": "websocket"}
		}`)

		if _, err := Load(path); err == nil {
			t.Error("Load() = nil error, want transport validation failure")
		}
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `{"connection": `)

		if _, err := Load(path); err == nil {
			t.Error("Load() = nil error, want parse failure")
		}
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{
		"connection": {"host": "10.1.1.1", "port": 40000}
	}`)

	t.Setenv("UNREAL_MCP_HOST", "192.168.1.50")
	t.Setenv("UNREAL_MCP_PORT", "41000")
	t.Setenv("UNREAL_MCP_TIMEOUT", "7.5")
	t.Setenv("UNREAL_MCP_BUFFER_SIZE", "1024")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Connection.Host != "192.168.1.50" {
		t.Errorf("env override lost: Host = %q", cfg.Connection.Host)
	}
	if cfg.Connection.Port != 41000 {
		t.Errorf("env override lost: Port = %d", cfg.Connection.Port)
	}
	if cfg.Connection.Timeout != 7.5 {
		t.Errorf("env override lost: Timeout = %v", cfg.Connection.Timeout)
	}
	if cfg.Connection.BufferSize != 1024 {
		t.Errorf("env override lost: BufferSize = %d", cfg.Connection.BufferSize)
	}
}

func TestLoadAll_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadAll(t.TempDir())
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty for defaults", cfg.Path)
	}
	if cfg.Connection.Addr() != "127.0.0.1:55557" {
		t.Errorf("default editor address = %s, want 127.0.0.1:55557", cfg.Connection.Addr())
	}
	if cfg.Connection.MaxRetries != 3 || cfg.Connection.RetryDelay != 1.0 {
		t.Errorf("retry defaults = %d/%v, want 3/1.0",
			cfg.Connection.MaxRetries, cfg.Connection.RetryDelay)
	}
}

func TestConnectionConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConnectionConfig)
		wantErr bool
	}{
		{"defaults valid", func(c *ConnectionConfig) {}, false},
		{"empty host", func(c *ConnectionConfig) { c.Host = "" }, true},
		{"port zero", func(c *ConnectionConfig) { c.Port = 0 }, true},
		{"port too high", func(c *ConnectionConfig) { c.Port = 65536 }, true},
		{"zero timeout", func(c *ConnectionConfig) { c.Timeout = 0 }, true},
		{"negative buffer", func(c *ConnectionConfig) { c.BufferSize = -1 }, true},
		{"negative retries", func(c *ConnectionConfig) { c.MaxRetries = -1 }, true},
		{"zero retries allowed", func(c *ConnectionConfig) { c.MaxRetries = 0 }, false},
		{"negative retry delay", func(c *ConnectionConfig) { c.RetryDelay = -0.1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConnectionConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStripJSONComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]any
	}{
		{
			name:  "line comment",
			input: "{\n// comment\n\"a\": 1\n}",
			want:  map[string]any{"a": float64(1)},
		},
		{
			name:  "block comment",
			input: `{"a": /* inline */ 1}`,
			want:  map[string]any{"a": float64(1)},
		},
		{
			name:  "slashes inside string preserved",
			input: `{"url": "http://example.com"}`,
			want:  map[string]any{"url": "http://example.com"},
		},
		{
			name:  "escaped quote inside string",
			input: `{"a": "say \"hi\" // not a comment"}`,
			want:  map[string]any{"a": `say "hi" // not a comment`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stripped := StripJSONComments([]byte(tt.input))
			var got map[string]any
			if err := json.Unmarshal(stripped, &got); err != nil {
				t.Fatalf("stripped output not valid JSON: %v\n%s", err, stripped)
			}
			for k, want := range tt.want {
				if got[k] != want {
					t.Errorf("key %q = %v, want %v", k, got[k], want)
				}
			}
		})
	}
}
