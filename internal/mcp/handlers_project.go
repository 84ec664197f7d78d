package mcp

import (
	"context"
	"fmt"

	mcp_sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/unrealmcp/unrealmcp/internal/validation"
)

// CreateInputMappingParams is the params struct for create_input_mapping
type CreateInputMappingParams struct {
	ActionName string `json:"action_name" description:"Name for the input action"`
	Key        string `json:"key" description:"Engine key name, e.g. SpaceBar, LeftMouseButton"`
	InputType  string `json:"input_type,omitempty" description:"Action or Axis, default Action"`
	Shift      bool   `json:"shift,omitempty" description:"Require shift"`
	Ctrl       bool   `json:"ctrl,omitempty" description:"Require ctrl"`
	Alt        bool   `json:"alt,omitempty" description:"Require alt"`
	Cmd        bool   `json:"cmd,omitempty" description:"Require cmd"`
}

func (s *Server) handleCreateInputMapping(ctx context.Context, req *mcp_sdk.CallToolRequest, params CreateInputMappingParams) (*mcp_sdk.CallToolResult, any, error) {
	if params.ActionName == "" || params.Key == "" {
		return nil, nil, fmt.Errorf("action_name and key are required")
	}

	inputType := params.InputType
	if inputType == "" {
		inputType = "Action"
	}

	resp := s.dispatch(ctx, "create_input_mapping", map[string]any{
		"action_name": params.ActionName,
		"key":         params.Key,
		"input_type":  inputType,
		"shift":       params.Shift,
		"ctrl":        params.Ctrl,
		"alt":         params.Alt,
		"cmd":         params.Cmd,
	})
	return editorResult(resp)
}

// GetProjectInfoParams takes no parameters
type GetProjectInfoParams struct{}

func (s *Server) handleGetProjectInfo(ctx context.Context, req *mcp_sdk.CallToolRequest, params GetProjectInfoParams) (*mcp_sdk.CallToolResult, any, error) {
	resp := s.dispatch(ctx, "get_project_info", map[string]any{})
	return editorResult(resp)
}

// GetEngineSettingsParams is the params struct for get_engine_settings
type GetEngineSettingsParams struct {
	Section string `json:"section,omitempty" description:"Limit to one ini section"`
}

func (s *Server) handleGetEngineSettings(ctx context.Context, req *mcp_sdk.CallToolRequest, params GetEngineSettingsParams) (*mcp_sdk.CallToolResult, any, error) {
	cmdParams := map[string]any{}
	if params.Section != "" {
		cmdParams["section"] = params.Section
	}

	resp := s.dispatch(ctx, "get_engine_settings", cmdParams)
	return editorResult(resp)
}

// SetEngineSettingParams is the params struct for set_engine_setting
type SetEngineSettingParams struct {
	SettingName  string `json:"setting_name" description:"Setting key to write"`
	SettingValue string `json:"setting_value" description:"Value to write"`
	Section      string `json:"section,omitempty" description:"Ini section, default SystemSettings"`
}

func (s *Server) handleSetEngineSetting(ctx context.Context, req *mcp_sdk.CallToolRequest, params SetEngineSettingParams) (*mcp_sdk.CallToolResult, any, error) {
	if params.SettingName == "" {
		return nil, nil, fmt.Errorf("setting_name is required")
	}

	section := params.Section
	if section == "" {
		section = "SystemSettings"
	}

	resp := s.dispatch(ctx, "set_engine_setting", map[string]any{
		"setting_name":  params.SettingName,
		"setting_value": params.SettingValue,
		"section":       section,
	})
	return editorResult(resp)
}

// PluginParams is the shared params struct for enable_plugin and disable_plugin
type PluginParams struct {
	PluginName string `json:"plugin_name" description:"Plugin to toggle"`
}

func (s *Server) handleEnablePlugin(ctx context.Context, req *mcp_sdk.CallToolRequest, params PluginParams) (*mcp_sdk.CallToolResult, any, error) {
	if params.PluginName == "" {
		return nil, nil, fmt.Errorf("plugin_name is required")
	}

	resp := s.dispatch(ctx, "enable_plugin", map[string]any{"plugin_name": params.PluginName})
	return editorResult(resp)
}

func (s *Server) handleDisablePlugin(ctx context.Context, req *mcp_sdk.CallToolRequest, params PluginParams) (*mcp_sdk.CallToolResult, any, error) {
	if params.PluginName == "" {
		return nil, nil, fmt.Errorf("plugin_name is required")
	}

	resp := s.dispatch(ctx, "disable_plugin", map[string]any{"plugin_name": params.PluginName})
	return editorResult(resp)
}

// CreateContentFolderParams is the params struct for create_content_folder
type CreateContentFolderParams struct {
	FolderPath string `json:"folder_path" description:"Parent content path, e.g. /Game"`
	FolderName string `json:"folder_name" description:"Name for the new folder"`
}

func (s *Server) handleCreateContentFolder(ctx context.Context, req *mcp_sdk.CallToolRequest, params CreateContentFolderParams) (*mcp_sdk.CallToolResult, any, error) {
	folderPath, err := validation.ValidateAssetPath(params.FolderPath)
	if err != nil {
		return nil, nil, err
	}
	folderName, err := validation.ValidateName("folder", params.FolderName)
	if err != nil {
		return nil, nil, err
	}

	resp := s.dispatch(ctx, "create_content_folder", map[string]any{
		"folder_path": folderPath,
		"folder_name": folderName,
	})
	return editorResult(resp)
}
