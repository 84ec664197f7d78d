package mcp

import (
	"context"
	"fmt"
	"os"

	mcp_sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/unrealmcp/unrealmcp/internal/config"
	"github.com/unrealmcp/unrealmcp/internal/logger"
)

// GetConfigInfoParams takes no parameters
type GetConfigInfoParams struct{}

func (s *Server) handleGetConfigInfo(ctx context.Context, req *mcp_sdk.CallToolRequest, params GetConfigInfoParams) (*mcp_sdk.CallToolResult, any, error) {
	cfg := s.Config()

	source := cfg.Path
	if source == "" {
		source = "built-in defaults"
	}

	return editorResult(map[string]any{
		"source": source,
		"connection": map[string]any{
			"host":        cfg.Connection.Host,
			"port":        cfg.Connection.Port,
			"timeout":     cfg.Connection.Timeout,
			"buffer_size": cfg.Connection.BufferSize,
			"max_retries": cfg.Connection.MaxRetries,
			"retry_delay": cfg.Connection.RetryDelay,
		},
		"server": map[string]any{
			"address":   cfg.Server.Address,
			"transport": cfg.Server.Transport,
		},
		"logging": map[string]any{
			"level":           cfg.Logging.Level,
			"file_enabled":    cfg.Logging.FileEnabled,
			"console_enabled": cfg.Logging.ConsoleEnabled,
		},
		"watcher": map[string]any{
			"enabled":  cfg.Watcher.Enabled,
			"interval": cfg.Watcher.Interval,
		},
	})
}

// ReloadConfigParams takes no parameters
type ReloadConfigParams struct{}

func (s *Server) handleReloadConfig(ctx context.Context, req *mcp_sdk.CallToolRequest, params ReloadConfigParams) (*mcp_sdk.CallToolResult, any, error) {
	path := s.Config().Path
	if path == "" {
		return nil, nil, fmt.Errorf("running on built-in defaults, no config file to reload")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reload failed, keeping previous config: %w", err)
	}

	s.setConfig(cfg)
	logger.Info("Config reloaded from %s via tool call", path)

	return editorResult(map[string]any{
		"reloaded":       true,
		"source":         path,
		"editor_address": cfg.Connection.Addr(),
	})
}

// CheckConfigChangesParams takes no parameters
type CheckConfigChangesParams struct{}

func (s *Server) handleCheckConfigChanges(ctx context.Context, req *mcp_sdk.CallToolRequest, params CheckConfigChangesParams) (*mcp_sdk.CallToolResult, any, error) {
	cfg := s.Config()
	if cfg.Path == "" {
		return editorResult(map[string]any{
			"changed": false,
			"note":    "running on built-in defaults, no config file to watch",
		})
	}

	if s.watcher != nil {
		changed, err := s.watcher.Changed()
		if err != nil {
			return nil, nil, err
		}
		return editorResult(map[string]any{
			"changed":         changed,
			"source":          cfg.Path,
			"watcher_running": true,
		})
	}

	// No watcher; a plain stat answers the question
	info, err := os.Stat(cfg.Path)
	if err != nil {
		return nil, nil, err
	}
	return editorResult(map[string]any{
		"changed":         info.ModTime().After(s.startedAt),
		"source":          cfg.Path,
		"watcher_running": false,
	})
}
