package mcp

import (
	"context"
	"fmt"

	mcp_sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/unrealmcp/unrealmcp/internal/validation"
)

// CreateBlueprintParams is the params struct for create_blueprint
type CreateBlueprintParams struct {
	Name        string `json:"name" description:"Name for the new Blueprint"`
	ParentClass string `json:"parent_class" description:"Engine class to derive from, e.g. Actor, Pawn"`
}

func (s *Server) handleCreateBlueprint(ctx context.Context, req *mcp_sdk.CallToolRequest, params CreateBlueprintParams) (*mcp_sdk.CallToolResult, any, error) {
	name, err := validation.ValidateName("blueprint", params.Name)
	if err != nil {
		return nil, nil, err
	}
	if params.ParentClass == "" {
		return nil, nil, fmt.Errorf("parent_class is required")
	}

	resp := s.dispatch(ctx, "create_blueprint", map[string]any{
		"name":         name,
		"parent_class": params.ParentClass,
	})
	return editorResult(resp)
}

// AddComponentToBlueprintParams is the params struct for add_component_to_blueprint
type AddComponentToBlueprintParams struct {
	BlueprintName       string         `json:"blueprint_name" description:"Blueprint to modify"`
	ComponentType       string         `json:"component_type" description:"Component class, e.g. StaticMeshComponent"`
	ComponentName       string         `json:"component_name" description:"Name for the new component"`
	Location            []float64      `json:"location,omitempty" description:"[x, y, z] relative location"`
	Rotation            []float64      `json:"rotation,omitempty" description:"[pitch, yaw, roll] relative rotation"`
	Scale               []float64      `json:"scale,omitempty" description:"[x, y, z] relative scale"`
	ComponentProperties map[string]any `json:"component_properties,omitempty" description:"Initial property values"`
}

func (s *Server) handleAddComponentToBlueprint(ctx context.Context, req *mcp_sdk.CallToolRequest, params AddComponentToBlueprintParams) (*mcp_sdk.CallToolResult, any, error) {
	blueprintName, err := validation.ValidateName("blueprint", params.BlueprintName)
	if err != nil {
		return nil, nil, err
	}
	componentName, err := validation.ValidateName("component", params.ComponentName)
	if err != nil {
		return nil, nil, err
	}
	if params.ComponentType == "" {
		return nil, nil, fmt.Errorf("component_type is required")
	}
	for _, v := range []struct {
		name string
		val  []float64
	}{{"location", params.Location}, {"rotation", params.Rotation}, {"scale", params.Scale}} {
		if err := validation.ValidateVector(v.name, v.val, 3); err != nil {
			return nil, nil, err
		}
	}

	cmdParams := map[string]any{
		"blueprint_name": blueprintName,
		"component_type": params.ComponentType,
		"component_name": componentName,
	}
	if params.Location != nil {
		cmdParams["location"] = params.Location
	}
	if params.Rotation != nil {
		cmdParams["rotation"] = params.Rotation
	}
	if params.Scale != nil {
		cmdParams["scale"] = params.Scale
	}
	if len(params.ComponentProperties) > 0 {
		cmdParams["component_properties"] = params.ComponentProperties
	}

	resp := s.dispatch(ctx, "add_component_to_blueprint", cmdParams)
	return editorResult(resp)
}

// SetComponentPropertyParams is the params struct for set_component_property
type SetComponentPropertyParams struct {
	BlueprintName string `json:"blueprint_name" description:"Blueprint containing the component"`
	ComponentName string `json:"component_name" description:"Component to modify"`
	PropertyName  string `json:"property_name" description:"Property to set"`
	PropertyValue any    `json:"property_value" description:"New value for the property"`
}

func (s *Server) handleSetComponentProperty(ctx context.Context, req *mcp_sdk.CallToolRequest, params SetComponentPropertyParams) (*mcp_sdk.CallToolResult, any, error) {
	blueprintName, err := validation.ValidateName("blueprint", params.BlueprintName)
	if err != nil {
		return nil, nil, err
	}
	if params.ComponentName == "" || params.PropertyName == "" {
		return nil, nil, fmt.Errorf("component_name and property_name are required")
	}

	resp := s.dispatch(ctx, "set_component_property", map[string]any{
		"blueprint_name": blueprintName,
		"component_name": params.ComponentName,
		"property_name":  params.PropertyName,
		"property_value": params.PropertyValue,
	})
	return editorResult(resp)
}

// SetStaticMeshPropertiesParams is the params struct for set_static_mesh_properties
type SetStaticMeshPropertiesParams struct {
	BlueprintName string `json:"blueprint_name" description:"Blueprint containing the component"`
	ComponentName string `json:"component_name" description:"StaticMeshComponent to modify"`
	StaticMesh    string `json:"static_mesh,omitempty" description:"Mesh asset path, default /Engine/BasicShapes/Cube.Cube"`
}

func (s *Server) handleSetStaticMeshProperties(ctx context.Context, req *mcp_sdk.CallToolRequest, params SetStaticMeshPropertiesParams) (*mcp_sdk.CallToolResult, any, error) {
	blueprintName, err := validation.ValidateName("blueprint", params.BlueprintName)
	if err != nil {
		return nil, nil, err
	}
	if params.ComponentName == "" {
		return nil, nil, fmt.Errorf("component_name is required")
	}

	staticMesh := params.StaticMesh
	if staticMesh == "" {
		staticMesh = "/Engine/BasicShapes/Cube.Cube"
	}
	if _, err := validation.ValidateAssetPath(staticMesh); err != nil {
		return nil, nil, err
	}

	resp := s.dispatch(ctx, "set_static_mesh_properties", map[string]any{
		"blueprint_name": blueprintName,
		"component_name": params.ComponentName,
		"static_mesh":    staticMesh,
	})
	return editorResult(resp)
}

// SetPhysicsPropertiesParams is the params struct for set_physics_properties.
// Pointer fields distinguish "not passed" from zero so the editor defaults
// apply.
type SetPhysicsPropertiesParams struct {
	BlueprintName   string   `json:"blueprint_name" description:"Blueprint containing the component"`
	ComponentName   string   `json:"component_name" description:"Component to configure"`
	SimulatePhysics *bool    `json:"simulate_physics,omitempty" description:"Enable physics simulation, default true"`
	GravityEnabled  *bool    `json:"gravity_enabled,omitempty" description:"Enable gravity, default true"`
	Mass            *float64 `json:"mass,omitempty" description:"Mass in kg, default 1.0"`
	LinearDamping   *float64 `json:"linear_damping,omitempty" description:"Linear damping, default 0.01"`
	AngularDamping  *float64 `json:"angular_damping,omitempty" description:"Angular damping, default 0.0"`
}

func (s *Server) handleSetPhysicsProperties(ctx context.Context, req *mcp_sdk.CallToolRequest, params SetPhysicsPropertiesParams) (*mcp_sdk.CallToolResult, any, error) {
	blueprintName, err := validation.ValidateName("blueprint", params.BlueprintName)
	if err != nil {
		return nil, nil, err
	}
	if params.ComponentName == "" {
		return nil, nil, fmt.Errorf("component_name is required")
	}

	boolOr := func(p *bool, def bool) bool {
		if p != nil {
			return *p
		}
		return def
	}
	floatOr := func(p *float64, def float64) float64 {
		if p != nil {
			return *p
		}
		return def
	}

	resp := s.dispatch(ctx, "set_physics_properties", map[string]any{
		"blueprint_name":   blueprintName,
		"component_name":   params.ComponentName,
		"simulate_physics": boolOr(params.SimulatePhysics, true),
		"gravity_enabled":  boolOr(params.GravityEnabled, true),
		"mass":             floatOr(params.Mass, 1.0),
		"linear_damping":   floatOr(params.LinearDamping, 0.01),
		"angular_damping":  floatOr(params.AngularDamping, 0.0),
	})
	return editorResult(resp)
}

// CompileBlueprintParams is the params struct for compile_blueprint
type CompileBlueprintParams struct {
	BlueprintName string `json:"blueprint_name" description:"Blueprint to compile"`
}

func (s *Server) handleCompileBlueprint(ctx context.Context, req *mcp_sdk.CallToolRequest, params CompileBlueprintParams) (*mcp_sdk.CallToolResult, any, error) {
	blueprintName, err := validation.ValidateName("blueprint", params.BlueprintName)
	if err != nil {
		return nil, nil, err
	}

	resp := s.dispatch(ctx, "compile_blueprint", map[string]any{
		"blueprint_name": blueprintName,
	})
	return editorResult(resp)
}

// SetBlueprintPropertyParams is the params struct for set_blueprint_property
type SetBlueprintPropertyParams struct {
	BlueprintName string `json:"blueprint_name" description:"Blueprint to modify"`
	PropertyName  string `json:"property_name" description:"Class-default property to set"`
	PropertyValue any    `json:"property_value" description:"New value for the property"`
}

func (s *Server) handleSetBlueprintProperty(ctx context.Context, req *mcp_sdk.CallToolRequest, params SetBlueprintPropertyParams) (*mcp_sdk.CallToolResult, any, error) {
	blueprintName, err := validation.ValidateName("blueprint", params.BlueprintName)
	if err != nil {
		return nil, nil, err
	}
	if params.PropertyName == "" {
		return nil, nil, fmt.Errorf("property_name is required")
	}

	resp := s.dispatch(ctx, "set_blueprint_property", map[string]any{
		"blueprint_name": blueprintName,
		"property_name":  params.PropertyName,
		"property_value": params.PropertyValue,
	})
	return editorResult(resp)
}

// SetPawnPropertiesParams is the params struct for set_pawn_properties
type SetPawnPropertiesParams struct {
	BlueprintName              string `json:"blueprint_name" description:"Pawn Blueprint to modify"`
	AutoPossessPlayer          string `json:"auto_possess_player,omitempty" description:"e.g. Player0, Disabled"`
	UseControllerRotationYaw   *bool  `json:"use_controller_rotation_yaw,omitempty" description:"Follow controller yaw"`
	UseControllerRotationPitch *bool  `json:"use_controller_rotation_pitch,omitempty" description:"Follow controller pitch"`
	UseControllerRotationRoll  *bool  `json:"use_controller_rotation_roll,omitempty" description:"Follow controller roll"`
	CanBeDamaged               *bool  `json:"can_be_damaged,omitempty" description:"Whether the pawn can take damage"`
}

func (s *Server) handleSetPawnProperties(ctx context.Context, req *mcp_sdk.CallToolRequest, params SetPawnPropertiesParams) (*mcp_sdk.CallToolResult, any, error) {
	blueprintName, err := validation.ValidateName("blueprint", params.BlueprintName)
	if err != nil {
		return nil, nil, err
	}

	// Only the flags actually passed go on the wire
	cmdParams := map[string]any{"blueprint_name": blueprintName}
	if params.AutoPossessPlayer != "" {
		cmdParams["auto_possess_player"] = params.AutoPossessPlayer
	}
	if params.UseControllerRotationYaw != nil {
		cmdParams["use_controller_rotation_yaw"] = *params.UseControllerRotationYaw
	}
	if params.UseControllerRotationPitch != nil {
		cmdParams["use_controller_rotation_pitch"] = *params.UseControllerRotationPitch
	}
	if params.UseControllerRotationRoll != nil {
		cmdParams["use_controller_rotation_roll"] = *params.UseControllerRotationRoll
	}
	if params.CanBeDamaged != nil {
		cmdParams["can_be_damaged"] = *params.CanBeDamaged
	}
	if len(cmdParams) == 1 {
		return nil, nil, fmt.Errorf("no pawn properties specified")
	}

	resp := s.dispatch(ctx, "set_pawn_properties", cmdParams)
	return editorResult(resp)
}
