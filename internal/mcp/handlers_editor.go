package mcp

import (
	"context"
	"fmt"
	"strings"

	mcp_sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/unrealmcp/unrealmcp/internal/validation"
)

// GetActorsInLevelParams takes no parameters
type GetActorsInLevelParams struct{}

func (s *Server) handleGetActorsInLevel(ctx context.Context, req *mcp_sdk.CallToolRequest, params GetActorsInLevelParams) (*mcp_sdk.CallToolResult, any, error) {
	resp := s.dispatch(ctx, "get_actors_in_level", map[string]any{})
	return editorResult(resp)
}

// FindActorsByNameParams is the params struct for find_actors_by_name
type FindActorsByNameParams struct {
	Pattern string `json:"pattern" description:"Name pattern to match, * wildcards allowed"`
}

func (s *Server) handleFindActorsByName(ctx context.Context, req *mcp_sdk.CallToolRequest, params FindActorsByNameParams) (*mcp_sdk.CallToolResult, any, error) {
	if params.Pattern == "" {
		return nil, nil, fmt.Errorf("pattern is required")
	}

	resp := s.dispatch(ctx, "find_actors_by_name", map[string]any{
		"pattern": params.Pattern,
	})
	return editorResult(resp)
}

// SpawnActorParams is the params struct for spawn_actor
type SpawnActorParams struct {
	Name     string    `json:"name" description:"Unique name for the new actor"`
	Type     string    `json:"type" description:"Actor class, e.g. StaticMeshActor, PointLight"`
	Location []float64 `json:"location,omitempty" description:"[x, y, z] world location, default origin"`
	Rotation []float64 `json:"rotation,omitempty" description:"[pitch, yaw, roll] in degrees"`
}

func (s *Server) handleSpawnActor(ctx context.Context, req *mcp_sdk.CallToolRequest, params SpawnActorParams) (*mcp_sdk.CallToolResult, any, error) {
	name, err := validation.ValidateName("actor", params.Name)
	if err != nil {
		return nil, nil, err
	}
	if params.Type == "" {
		return nil, nil, fmt.Errorf("actor type must be a non-empty string")
	}
	if err := validation.ValidateVector("location", params.Location, 3); err != nil {
		return nil, nil, err
	}
	if err := validation.ValidateVector("rotation", params.Rotation, 3); err != nil {
		return nil, nil, err
	}

	resp := s.dispatch(ctx, "spawn_actor", map[string]any{
		"name": name,
		// The plugin matches actor types case-insensitively via uppercase
		"type":     strings.ToUpper(params.Type),
		"location": validation.VectorOrDefault(params.Location, 3, 0),
		"rotation": validation.VectorOrDefault(params.Rotation, 3, 0),
	})
	return editorResult(resp)
}

// DeleteActorParams is the params struct for delete_actor
type DeleteActorParams struct {
	Name string `json:"name" description:"Name of the actor to delete"`
}

func (s *Server) handleDeleteActor(ctx context.Context, req *mcp_sdk.CallToolRequest, params DeleteActorParams) (*mcp_sdk.CallToolResult, any, error) {
	name, err := validation.ValidateName("actor", params.Name)
	if err != nil {
		return nil, nil, err
	}

	resp := s.dispatch(ctx, "delete_actor", map[string]any{"name": name})
	return editorResult(resp)
}

// SetActorTransformParams is the params struct for set_actor_transform
type SetActorTransformParams struct {
	Name     string    `json:"name" description:"Name of the actor"`
	Location []float64 `json:"location,omitempty" description:"[x, y, z] world location"`
	Rotation []float64 `json:"rotation,omitempty" description:"[pitch, yaw, roll] in degrees"`
	Scale    []float64 `json:"scale,omitempty" description:"[x, y, z] scale"`
}

func (s *Server) handleSetActorTransform(ctx context.Context, req *mcp_sdk.CallToolRequest, params SetActorTransformParams) (*mcp_sdk.CallToolResult, any, error) {
	name, err := validation.ValidateName("actor", params.Name)
	if err != nil {
		return nil, nil, err
	}
	for _, v := range []struct {
		name string
		val  []float64
	}{{"location", params.Location}, {"rotation", params.Rotation}, {"scale", params.Scale}} {
		if err := validation.ValidateVector(v.name, v.val, 3); err != nil {
			return nil, nil, err
		}
	}

	// Only forward the components the caller supplied; the plugin leaves the
	// rest untouched
	cmdParams := map[string]any{"name": name}
	if params.Location != nil {
		cmdParams["location"] = params.Location
	}
	if params.Rotation != nil {
		cmdParams["rotation"] = params.Rotation
	}
	if params.Scale != nil {
		cmdParams["scale"] = params.Scale
	}

	resp := s.dispatch(ctx, "set_actor_transform", cmdParams)
	return editorResult(resp)
}

// GetActorPropertiesParams is the params struct for get_actor_properties
type GetActorPropertiesParams struct {
	Name string `json:"name" description:"Name of the actor"`
}

func (s *Server) handleGetActorProperties(ctx context.Context, req *mcp_sdk.CallToolRequest, params GetActorPropertiesParams) (*mcp_sdk.CallToolResult, any, error) {
	name, err := validation.ValidateName("actor", params.Name)
	if err != nil {
		return nil, nil, err
	}

	resp := s.dispatch(ctx, "get_actor_properties", map[string]any{"name": name})
	return editorResult(resp)
}

// SetActorPropertyParams is the params struct for set_actor_property
type SetActorPropertyParams struct {
	Name          string `json:"name" description:"Name of the actor"`
	PropertyName  string `json:"property_name" description:"Property to set"`
	PropertyValue any    `json:"property_value" description:"New value for the property"`
}

func (s *Server) handleSetActorProperty(ctx context.Context, req *mcp_sdk.CallToolRequest, params SetActorPropertyParams) (*mcp_sdk.CallToolResult, any, error) {
	name, err := validation.ValidateName("actor", params.Name)
	if err != nil {
		return nil, nil, err
	}
	if params.PropertyName == "" {
		return nil, nil, fmt.Errorf("property_name is required")
	}

	resp := s.dispatch(ctx, "set_actor_property", map[string]any{
		"name":           name,
		"property_name":  params.PropertyName,
		"property_value": params.PropertyValue,
	})
	return editorResult(resp)
}

// FocusViewportParams is the params struct for focus_viewport
type FocusViewportParams struct {
	Target      string    `json:"target,omitempty" description:"Actor name to focus on"`
	Location    []float64 `json:"location,omitempty" description:"[x, y, z] to focus on when no target is given"`
	Distance    float64   `json:"distance,omitempty" description:"Camera distance, default 1000"`
	Orientation []float64 `json:"orientation,omitempty" description:"[pitch, yaw, roll] camera orientation"`
}

func (s *Server) handleFocusViewport(ctx context.Context, req *mcp_sdk.CallToolRequest, params FocusViewportParams) (*mcp_sdk.CallToolResult, any, error) {
	if params.Target == "" && params.Location == nil {
		return nil, nil, fmt.Errorf("either target or location is required")
	}
	if err := validation.ValidateVector("location", params.Location, 3); err != nil {
		return nil, nil, err
	}
	if err := validation.ValidateVector("orientation", params.Orientation, 3); err != nil {
		return nil, nil, err
	}

	cmdParams := map[string]any{}
	if params.Target != "" {
		cmdParams["target"] = params.Target
	} else {
		cmdParams["location"] = params.Location
	}
	distance := params.Distance
	if distance <= 0 {
		distance = 1000
	}
	cmdParams["distance"] = distance
	if params.Orientation != nil {
		cmdParams["orientation"] = params.Orientation
	}

	resp := s.dispatch(ctx, "focus_viewport", cmdParams)
	return editorResult(resp)
}

// TakeScreenshotParams is the params struct for take_screenshot
type TakeScreenshotParams struct {
	Filename string `json:"filename,omitempty" description:"File name for the capture, default editor-generated"`
}

func (s *Server) handleTakeScreenshot(ctx context.Context, req *mcp_sdk.CallToolRequest, params TakeScreenshotParams) (*mcp_sdk.CallToolResult, any, error) {
	cmdParams := map[string]any{}
	if params.Filename != "" {
		cmdParams["filename"] = params.Filename
	}

	resp := s.dispatch(ctx, "take_screenshot", cmdParams)
	return editorResult(resp)
}

// SpawnBlueprintActorParams is the params struct for spawn_blueprint_actor
type SpawnBlueprintActorParams struct {
	BlueprintName string    `json:"blueprint_name" description:"Blueprint to spawn from"`
	ActorName     string    `json:"actor_name" description:"Name to give the spawned actor"`
	Location      []float64 `json:"location,omitempty" description:"[x, y, z] world location, default origin"`
	Rotation      []float64 `json:"rotation,omitempty" description:"[pitch, yaw, roll] in degrees"`
}

func (s *Server) handleSpawnBlueprintActor(ctx context.Context, req *mcp_sdk.CallToolRequest, params SpawnBlueprintActorParams) (*mcp_sdk.CallToolResult, any, error) {
	blueprintName, err := validation.ValidateName("blueprint", params.BlueprintName)
	if err != nil {
		return nil, nil, err
	}
	actorName, err := validation.ValidateName("actor", params.ActorName)
	if err != nil {
		return nil, nil, err
	}
	if err := validation.ValidateVector("location", params.Location, 3); err != nil {
		return nil, nil, err
	}
	if err := validation.ValidateVector("rotation", params.Rotation, 3); err != nil {
		return nil, nil, err
	}

	resp := s.dispatch(ctx, "spawn_blueprint_actor", map[string]any{
		"blueprint_name": blueprintName,
		"actor_name":     actorName,
		"location":       validation.VectorOrDefault(params.Location, 3, 0),
		"rotation":       validation.VectorOrDefault(params.Rotation, 3, 0),
	})
	return editorResult(resp)
}
