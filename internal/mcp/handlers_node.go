package mcp

import (
	"context"
	"fmt"

	mcp_sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/unrealmcp/unrealmcp/internal/validation"
)

// AddBlueprintEventNodeParams is the params struct for add_blueprint_event_node
type AddBlueprintEventNodeParams struct {
	BlueprintName string    `json:"blueprint_name" description:"Blueprint to modify"`
	EventName     string    `json:"event_name" description:"Event name, e.g. BeginPlay, Tick"`
	NodePosition  []float64 `json:"node_position,omitempty" description:"[x, y] graph position"`
}

func (s *Server) handleAddBlueprintEventNode(ctx context.Context, req *mcp_sdk.CallToolRequest, params AddBlueprintEventNodeParams) (*mcp_sdk.CallToolResult, any, error) {
	blueprintName, err := validation.ValidateName("blueprint", params.BlueprintName)
	if err != nil {
		return nil, nil, err
	}
	if params.EventName == "" {
		return nil, nil, fmt.Errorf("event_name is required")
	}
	if err := validation.ValidateVector("node_position", params.NodePosition, 2); err != nil {
		return nil, nil, err
	}

	cmdParams := map[string]any{
		"blueprint_name": blueprintName,
		"event_name":     params.EventName,
	}
	if params.NodePosition != nil {
		cmdParams["node_position"] = params.NodePosition
	}

	resp := s.dispatch(ctx, "add_blueprint_event_node", cmdParams)
	return editorResult(resp)
}

// AddBlueprintInputActionNodeParams is the params struct for add_blueprint_input_action_node
type AddBlueprintInputActionNodeParams struct {
	BlueprintName string    `json:"blueprint_name" description:"Blueprint to modify"`
	ActionName    string    `json:"action_name" description:"Input action to respond to"`
	NodePosition  []float64 `json:"node_position,omitempty" description:"[x, y] graph position"`
}

func (s *Server) handleAddBlueprintInputActionNode(ctx context.Context, req *mcp_sdk.CallToolRequest, params AddBlueprintInputActionNodeParams) (*mcp_sdk.CallToolResult, any, error) {
	blueprintName, err := validation.ValidateName("blueprint", params.BlueprintName)
	if err != nil {
		return nil, nil, err
	}
	if params.ActionName == "" {
		return nil, nil, fmt.Errorf("action_name is required")
	}
	if err := validation.ValidateVector("node_position", params.NodePosition, 2); err != nil {
		return nil, nil, err
	}

	cmdParams := map[string]any{
		"blueprint_name": blueprintName,
		"action_name":    params.ActionName,
	}
	if params.NodePosition != nil {
		cmdParams["node_position"] = params.NodePosition
	}

	resp := s.dispatch(ctx, "add_blueprint_input_action_node", cmdParams)
	return editorResult(resp)
}

// AddBlueprintFunctionNodeParams is the params struct for add_blueprint_function_node
type AddBlueprintFunctionNodeParams struct {
	BlueprintName string         `json:"blueprint_name" description:"Blueprint to modify"`
	Target        string         `json:"target" description:"Object to call on: component name or self"`
	FunctionName  string         `json:"function_name" description:"Function to call"`
	Params        map[string]any `json:"params,omitempty" description:"Input pin values"`
	NodePosition  []float64      `json:"node_position,omitempty" description:"[x, y] graph position"`
}

func (s *Server) handleAddBlueprintFunctionNode(ctx context.Context, req *mcp_sdk.CallToolRequest, params AddBlueprintFunctionNodeParams) (*mcp_sdk.CallToolResult, any, error) {
	blueprintName, err := validation.ValidateName("blueprint", params.BlueprintName)
	if err != nil {
		return nil, nil, err
	}
	if params.Target == "" || params.FunctionName == "" {
		return nil, nil, fmt.Errorf("target and function_name are required")
	}
	if err := validation.ValidateVector("node_position", params.NodePosition, 2); err != nil {
		return nil, nil, err
	}

	cmdParams := map[string]any{
		"blueprint_name": blueprintName,
		"target":         params.Target,
		"function_name":  params.FunctionName,
	}
	if len(params.Params) > 0 {
		cmdParams["params"] = params.Params
	}
	if params.NodePosition != nil {
		cmdParams["node_position"] = params.NodePosition
	}

	resp := s.dispatch(ctx, "add_blueprint_function_node", cmdParams)
	return editorResult(resp)
}

// ConnectBlueprintNodesParams is the params struct for connect_blueprint_nodes
type ConnectBlueprintNodesParams struct {
	BlueprintName string `json:"blueprint_name" description:"Blueprint containing the nodes"`
	SourceNodeID  string `json:"source_node_id" description:"Node the connection starts from"`
	SourcePin     string `json:"source_pin" description:"Output pin on the source node"`
	TargetNodeID  string `json:"target_node_id" description:"Node the connection ends at"`
	TargetPin     string `json:"target_pin" description:"Input pin on the target node"`
}

func (s *Server) handleConnectBlueprintNodes(ctx context.Context, req *mcp_sdk.CallToolRequest, params ConnectBlueprintNodesParams) (*mcp_sdk.CallToolResult, any, error) {
	blueprintName, err := validation.ValidateName("blueprint", params.BlueprintName)
	if err != nil {
		return nil, nil, err
	}
	if params.SourceNodeID == "" || params.SourcePin == "" || params.TargetNodeID == "" || params.TargetPin == "" {
		return nil, nil, fmt.Errorf("source_node_id, source_pin, target_node_id, and target_pin are required")
	}

	resp := s.dispatch(ctx, "connect_blueprint_nodes", map[string]any{
		"blueprint_name": blueprintName,
		"source_node_id": params.SourceNodeID,
		"source_pin":     params.SourcePin,
		"target_node_id": params.TargetNodeID,
		"target_pin":     params.TargetPin,
	})
	return editorResult(resp)
}

// AddBlueprintVariableParams is the params struct for add_blueprint_variable
type AddBlueprintVariableParams struct {
	BlueprintName string `json:"blueprint_name" description:"Blueprint to modify"`
	VariableName  string `json:"variable_name" description:"Name for the new variable"`
	VariableType  string `json:"variable_type" description:"Type, e.g. Boolean, Integer, Float, Vector"`
	IsExposed     bool   `json:"is_exposed,omitempty" description:"Editable on instances when true"`
}

func (s *Server) handleAddBlueprintVariable(ctx context.Context, req *mcp_sdk.CallToolRequest, params AddBlueprintVariableParams) (*mcp_sdk.CallToolResult, any, error) {
	blueprintName, err := validation.ValidateName("blueprint", params.BlueprintName)
	if err != nil {
		return nil, nil, err
	}
	variableName, err := validation.ValidateName("variable", params.VariableName)
	if err != nil {
		return nil, nil, err
	}
	if params.VariableType == "" {
		return nil, nil, fmt.Errorf("variable_type is required")
	}

	resp := s.dispatch(ctx, "add_blueprint_variable", map[string]any{
		"blueprint_name": blueprintName,
		"variable_name":  variableName,
		"variable_type":  params.VariableType,
		"is_exposed":     params.IsExposed,
	})
	return editorResult(resp)
}

// AddBlueprintGetSelfComponentReferenceParams is the params struct for
// add_blueprint_get_self_component_reference
type AddBlueprintGetSelfComponentReferenceParams struct {
	BlueprintName string    `json:"blueprint_name" description:"Blueprint to modify"`
	ComponentName string    `json:"component_name" description:"Component to reference"`
	NodePosition  []float64 `json:"node_position,omitempty" description:"[x, y] graph position"`
}

func (s *Server) handleAddBlueprintGetSelfComponentReference(ctx context.Context, req *mcp_sdk.CallToolRequest, params AddBlueprintGetSelfComponentReferenceParams) (*mcp_sdk.CallToolResult, any, error) {
	blueprintName, err := validation.ValidateName("blueprint", params.BlueprintName)
	if err != nil {
		return nil, nil, err
	}
	if params.ComponentName == "" {
		return nil, nil, fmt.Errorf("component_name is required")
	}
	if err := validation.ValidateVector("node_position", params.NodePosition, 2); err != nil {
		return nil, nil, err
	}

	cmdParams := map[string]any{
		"blueprint_name": blueprintName,
		"component_name": params.ComponentName,
	}
	if params.NodePosition != nil {
		cmdParams["node_position"] = params.NodePosition
	}

	resp := s.dispatch(ctx, "add_blueprint_get_self_component_reference", cmdParams)
	return editorResult(resp)
}

// AddBlueprintSelfReferenceParams is the params struct for add_blueprint_self_reference
type AddBlueprintSelfReferenceParams struct {
	BlueprintName string    `json:"blueprint_name" description:"Blueprint to modify"`
	NodePosition  []float64 `json:"node_position,omitempty" description:"[x, y] graph position"`
}

func (s *Server) handleAddBlueprintSelfReference(ctx context.Context, req *mcp_sdk.CallToolRequest, params AddBlueprintSelfReferenceParams) (*mcp_sdk.CallToolResult, any, error) {
	blueprintName, err := validation.ValidateName("blueprint", params.BlueprintName)
	if err != nil {
		return nil, nil, err
	}
	if err := validation.ValidateVector("node_position", params.NodePosition, 2); err != nil {
		return nil, nil, err
	}

	cmdParams := map[string]any{"blueprint_name": blueprintName}
	if params.NodePosition != nil {
		cmdParams["node_position"] = params.NodePosition
	}

	resp := s.dispatch(ctx, "add_blueprint_self_reference", cmdParams)
	return editorResult(resp)
}

// FindBlueprintNodesParams is the params struct for find_blueprint_nodes
type FindBlueprintNodesParams struct {
	BlueprintName string `json:"blueprint_name" description:"Blueprint to search"`
	NodeType      string `json:"node_type,omitempty" description:"Filter by node type, e.g. Event, Function"`
	EventType     string `json:"event_type,omitempty" description:"Filter by event type, e.g. BeginPlay"`
}

func (s *Server) handleFindBlueprintNodes(ctx context.Context, req *mcp_sdk.CallToolRequest, params FindBlueprintNodesParams) (*mcp_sdk.CallToolResult, any, error) {
	blueprintName, err := validation.ValidateName("blueprint", params.BlueprintName)
	if err != nil {
		return nil, nil, err
	}

	cmdParams := map[string]any{"blueprint_name": blueprintName}
	if params.NodeType != "" {
		cmdParams["node_type"] = params.NodeType
	}
	if params.EventType != "" {
		cmdParams["event_type"] = params.EventType
	}

	resp := s.dispatch(ctx, "find_blueprint_nodes", cmdParams)
	return editorResult(resp)
}
