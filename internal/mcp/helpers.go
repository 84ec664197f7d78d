package mcp

import (
	"encoding/json"
	"errors"

	mcp_sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/unrealmcp/unrealmcp/internal/unreal"
)

// NewTextResult creates a CallToolResult with text content
func NewTextResult(text string) *mcp_sdk.CallToolResult {
	return &mcp_sdk.CallToolResult{
		Content: []mcp_sdk.Content{
			&mcp_sdk.TextContent{Text: text},
		},
	}
}

// NewErrorResult creates a CallToolResult indicating an error
func NewErrorResult(msg string) *mcp_sdk.CallToolResult {
	return &mcp_sdk.CallToolResult{
		IsError: true,
		Content: []mcp_sdk.Content{
			&mcp_sdk.TextContent{Text: msg},
		},
	}
}

// editorResult converts a normalized editor response into a tool result. An
// error-shaped response becomes a Go error so the registry reports it as a
// tool failure; anything else is rendered as indented JSON text with the raw
// map as structured content.
func editorResult(resp map[string]any) (*mcp_sdk.CallToolResult, any, error) {
	if unreal.IsError(resp) {
		return nil, nil, errors.New(unreal.ErrorText(resp))
	}

	text, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return nil, nil, err
	}
	return NewTextResult(string(text)), resp, nil
}
