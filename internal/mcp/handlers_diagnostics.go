package mcp

import (
	"context"
	"time"

	mcp_sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/unrealmcp/unrealmcp/internal/unreal"
)

// CheckUnrealConnectionParams takes no parameters
type CheckUnrealConnectionParams struct{}

func (s *Server) handleCheckUnrealConnection(ctx context.Context, req *mcp_sdk.CallToolRequest, params CheckUnrealConnectionParams) (*mcp_sdk.CallToolResult, any, error) {
	addr := s.Config().Connection.Addr()

	if err := s.client.Ping(ctx); err != nil {
		// Deliberately not a tool error: the whole point of this tool is to
		// explain an unreachable editor
		return editorResult(map[string]any{
			"success":           false,
			"connection_status": "unreachable",
			"editor_address":    addr,
			"error":             err.Error(),
			"troubleshooting": []string{
				"Ensure the Unreal editor is running with your project open",
				"Check that the UnrealMCP plugin is loaded and enabled",
				"Verify the editor is listening on " + addr,
				"Check the log file for detailed error information",
			},
		})
	}

	resp := s.dispatch(ctx, "ping", map[string]any{})
	if unreal.IsError(resp) {
		return editorResult(map[string]any{
			"success":           false,
			"connection_status": "tcp reachable, ping command failed",
			"editor_address":    addr,
			"error":             unreal.ErrorText(resp),
		})
	}

	return editorResult(map[string]any{
		"success":           true,
		"connection_status": "connected",
		"editor_address":    addr,
		"ping_response":     resp,
	})
}

// GetRecentCommandsParams is the params struct for get_recent_commands
type GetRecentCommandsParams struct {
	Limit int `json:"limit,omitempty" description:"Max entries to return, default 20"`
}

func (s *Server) handleGetRecentCommands(ctx context.Context, req *mcp_sdk.CallToolRequest, params GetRecentCommandsParams) (*mcp_sdk.CallToolResult, any, error) {
	if s.history == nil {
		return editorResult(map[string]any{
			"commands": []any{},
			"note":     "command history is disabled",
		})
	}

	entries, err := s.history.Recent(params.Limit)
	if err != nil {
		return nil, nil, err
	}

	return editorResult(map[string]any{
		"count":    len(entries),
		"commands": entries,
	})
}

// GetServerStatusParams takes no parameters
type GetServerStatusParams struct{}

func (s *Server) handleGetServerStatus(ctx context.Context, req *mcp_sdk.CallToolRequest, params GetServerStatusParams) (*mcp_sdk.CallToolResult, any, error) {
	cfg := s.Config()

	status := map[string]any{
		"version":        Version,
		"uptime_seconds": int64(time.Since(s.startedAt).Seconds()),
		"transport":      cfg.Server.Transport,
		"editor_address": cfg.Connection.Addr(),
		"tools":          s.registry.ToolsByCategory(),
		"tool_count":     len(s.registry.GetAllTools()),
	}

	if s.history != nil {
		total, failed, err := s.history.Counts()
		if err == nil {
			status["commands_total"] = total
			status["commands_failed"] = failed
		}
	}

	return editorResult(status)
}
