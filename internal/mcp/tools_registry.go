package mcp

// registerAllTools registers all MCP tools with the registry
func (s *Server) registerAllTools(r *Registry) {
	s.registerEditorTools(r)
	s.registerBlueprintTools(r)
	s.registerNodeTools(r)
	s.registerUMGTools(r)
	s.registerProjectTools(r)
	s.registerDiagnosticsTools(r)
	s.registerConfigTools(r)
}

func (s *Server) registerEditorTools(r *Registry) {
	Register(r, ToolDef{
		Name:        "get_actors_in_level",
		Description: "List all actors in the current level with their names, classes, and transforms.",
		Category:    "editor",
	}, s.handleGetActorsInLevel)

	Register(r, ToolDef{
		Name:        "find_actors_by_name",
		Description: "Find actors in the current level whose names match a pattern. Supports * wildcards.",
		Category:    "editor",
	}, s.handleFindActorsByName)

	Register(r, ToolDef{
		Name: "spawn_actor",
		Description: `Create a new actor in the current level.

The name must be unique in the level. Type is an engine actor class such as
StaticMeshActor, PointLight, or CameraActor.`,
		Category: "editor",
	}, s.handleSpawnActor)

	Register(r, ToolDef{
		Name:        "delete_actor",
		Description: "Delete an actor from the current level by name.",
		Category:    "editor",
	}, s.handleDeleteActor)

	Register(r, ToolDef{
		Name: "set_actor_transform",
		Description: `Set an actor's location, rotation, and/or scale.

Only the components you pass are changed; omitted ones keep their current value.`,
		Category: "editor",
	}, s.handleSetActorTransform)

	Register(r, ToolDef{
		Name:        "get_actor_properties",
		Description: "Get all properties of an actor by name.",
		Category:    "editor",
	}, s.handleGetActorProperties)

	Register(r, ToolDef{
		Name:        "set_actor_property",
		Description: "Set a single named property on an actor.",
		Category:    "editor",
	}, s.handleSetActorProperty)

	Register(r, ToolDef{
		Name: "focus_viewport",
		Description: `Focus the editor viewport on an actor or a world location.

Pass target (actor name) or location ([x, y, z]); target wins when both are given.`,
		Category: "editor",
	}, s.handleFocusViewport)

	Register(r, ToolDef{
		Name:        "take_screenshot",
		Description: "Capture a screenshot of the active editor viewport, optionally to a named file.",
		Category:    "editor",
	}, s.handleTakeScreenshot)

	Register(r, ToolDef{
		Name:        "spawn_blueprint_actor",
		Description: "Spawn an actor from a compiled Blueprint class into the current level.",
		Category:    "editor",
	}, s.handleSpawnBlueprintActor)
}

func (s *Server) registerBlueprintTools(r *Registry) {
	Register(r, ToolDef{
		Name: "create_blueprint",
		Description: `Create a new Blueprint class.

parent_class is the engine class to derive from, e.g. Actor, Pawn, Character.`,
		Category: "blueprint",
	}, s.handleCreateBlueprint)

	Register(r, ToolDef{
		Name: "add_component_to_blueprint",
		Description: `Add a component to a Blueprint.

component_type is an engine component class such as StaticMeshComponent or
PointLightComponent. Optional relative location/rotation/scale and a map of
initial component properties may be supplied.`,
		Category: "blueprint",
	}, s.handleAddComponentToBlueprint)

	Register(r, ToolDef{
		Name:        "set_component_property",
		Description: "Set a property on a component inside a Blueprint.",
		Category:    "blueprint",
	}, s.handleSetComponentProperty)

	Register(r, ToolDef{
		Name:        "set_static_mesh_properties",
		Description: "Assign a static mesh asset to a StaticMeshComponent in a Blueprint.",
		Category:    "blueprint",
	}, s.handleSetStaticMeshProperties)

	Register(r, ToolDef{
		Name:        "set_physics_properties",
		Description: "Configure physics simulation, gravity, mass, and damping on a Blueprint component.",
		Category:    "blueprint",
	}, s.handleSetPhysicsProperties)

	Register(r, ToolDef{
		Name:        "compile_blueprint",
		Description: "Compile a Blueprint. Run this after structural changes so spawned instances pick them up.",
		Category:    "blueprint",
	}, s.handleCompileBlueprint)

	Register(r, ToolDef{
		Name:        "set_blueprint_property",
		Description: "Set a class-default property on a Blueprint.",
		Category:    "blueprint",
	}, s.handleSetBlueprintProperty)

	Register(r, ToolDef{
		Name: "set_pawn_properties",
		Description: `Configure Pawn-specific class defaults on a Blueprint: auto-possession and
controller rotation flags. Only the flags you pass are changed.`,
		Category: "blueprint",
	}, s.handleSetPawnProperties)
}

func (s *Server) registerNodeTools(r *Registry) {
	Register(r, ToolDef{
		Name:        "add_blueprint_event_node",
		Description: "Add an event node (e.g. BeginPlay, Tick) to a Blueprint's event graph.",
		Category:    "node",
	}, s.handleAddBlueprintEventNode)

	Register(r, ToolDef{
		Name:        "add_blueprint_input_action_node",
		Description: "Add an input action event node to a Blueprint's event graph.",
		Category:    "node",
	}, s.handleAddBlueprintInputActionNode)

	Register(r, ToolDef{
		Name: "add_blueprint_function_node",
		Description: `Add a function call node to a Blueprint's event graph.

target is the object to call on (component name or "self"); params pre-fills
input pins.`,
		Category: "node",
	}, s.handleAddBlueprintFunctionNode)

	Register(r, ToolDef{
		Name:        "connect_blueprint_nodes",
		Description: "Connect a pin on one Blueprint graph node to a pin on another.",
		Category:    "node",
	}, s.handleConnectBlueprintNodes)

	Register(r, ToolDef{
		Name:        "add_blueprint_variable",
		Description: "Add a member variable to a Blueprint. Set is_exposed to make it editable on instances.",
		Category:    "node",
	}, s.handleAddBlueprintVariable)

	Register(r, ToolDef{
		Name:        "add_blueprint_get_self_component_reference",
		Description: "Add a node that references one of the Blueprint's own components.",
		Category:    "node",
	}, s.handleAddBlueprintGetSelfComponentReference)

	Register(r, ToolDef{
		Name:        "add_blueprint_self_reference",
		Description: "Add a Get Self node to a Blueprint's event graph.",
		Category:    "node",
	}, s.handleAddBlueprintSelfReference)

	Register(r, ToolDef{
		Name:        "find_blueprint_nodes",
		Description: "Find nodes in a Blueprint's event graph, optionally filtered by node type or event type.",
		Category:    "node",
	}, s.handleFindBlueprintNodes)
}

func (s *Server) registerUMGTools(r *Registry) {
	Register(r, ToolDef{
		Name:        "create_umg_widget_blueprint",
		Description: "Create a new UMG widget Blueprint under the given content path (default /Game/UI).",
		Category:    "umg",
	}, s.handleCreateUMGWidgetBlueprint)

	Register(r, ToolDef{
		Name:        "add_text_block_to_widget",
		Description: "Add a text block to a widget Blueprint with position, size, font size, and color.",
		Category:    "umg",
	}, s.handleAddTextBlockToWidget)

	Register(r, ToolDef{
		Name:        "add_button_to_widget",
		Description: "Add a button to a widget Blueprint with label text, geometry, and colors.",
		Category:    "umg",
	}, s.handleAddButtonToWidget)

	Register(r, ToolDef{
		Name: "bind_widget_event",
		Description: `Bind a widget component event (e.g. OnClicked) to a Blueprint function.

function_name defaults to <component>_<event> when omitted.`,
		Category: "umg",
	}, s.handleBindWidgetEvent)

	Register(r, ToolDef{
		Name:        "add_widget_to_viewport",
		Description: "Instantiate a widget Blueprint and add it to the game viewport.",
		Category:    "umg",
	}, s.handleAddWidgetToViewport)

	Register(r, ToolDef{
		Name:        "set_text_block_binding",
		Description: "Bind a text block's content to a Blueprint property for dynamic updates.",
		Category:    "umg",
	}, s.handleSetTextBlockBinding)
}

func (s *Server) registerProjectTools(r *Registry) {
	Register(r, ToolDef{
		Name: "create_input_mapping",
		Description: `Create a legacy input mapping in the project settings.

key uses engine key names (SpaceBar, LeftMouseButton, W). Modifier flags add
shift/ctrl/alt/cmd chords.`,
		Category: "project",
	}, s.handleCreateInputMapping)

	Register(r, ToolDef{
		Name:        "get_project_info",
		Description: "Get project metadata: name, engine version, enabled plugins, and module list.",
		Category:    "project",
	}, s.handleGetProjectInfo)

	Register(r, ToolDef{
		Name:        "get_engine_settings",
		Description: "Read the project's engine settings (DefaultEngine.ini sections).",
		Category:    "project",
	}, s.handleGetEngineSettings)

	Register(r, ToolDef{
		Name:        "set_engine_setting",
		Description: "Write one engine setting value. section defaults to SystemSettings.",
		Category:    "project",
	}, s.handleSetEngineSetting)

	Register(r, ToolDef{
		Name:        "enable_plugin",
		Description: "Enable a plugin in the project. Takes effect after an editor restart.",
		Category:    "project",
	}, s.handleEnablePlugin)

	Register(r, ToolDef{
		Name:        "disable_plugin",
		Description: "Disable a plugin in the project. Takes effect after an editor restart.",
		Category:    "project",
	}, s.handleDisablePlugin)

	Register(r, ToolDef{
		Name:        "create_content_folder",
		Description: "Create a folder in the content browser under the given parent path.",
		Category:    "project",
	}, s.handleCreateContentFolder)
}

func (s *Server) registerDiagnosticsTools(r *Registry) {
	Register(r, ToolDef{
		Name: "check_unreal_connection",
		Description: `Check connectivity to the Unreal editor. Use this first when other tools fail.

Dials the editor and sends a ping command, returning status plus
troubleshooting hints when unreachable.`,
		Category: "diagnostics",
	}, s.handleCheckUnrealConnection)

	Register(r, ToolDef{
		Name:        "get_recent_commands",
		Description: "List recently dispatched editor commands with status, error, and duration.",
		Category:    "diagnostics",
	}, s.handleGetRecentCommands)

	Register(r, ToolDef{
		Name:        "get_server_status",
		Description: "Get bridge server status: version, uptime, editor address, tool catalog, command counts.",
		Category:    "diagnostics",
	}, s.handleGetServerStatus)
}

func (s *Server) registerConfigTools(r *Registry) {
	Register(r, ToolDef{
		Name:        "get_config_info",
		Description: "Show the active configuration and where it was loaded from.",
		Category:    "config",
	}, s.handleGetConfigInfo)

	Register(r, ToolDef{
		Name:        "reload_config",
		Description: "Reload the config file from disk and apply the new connection settings.",
		Category:    "config",
	}, s.handleReloadConfig)

	Register(r, ToolDef{
		Name:        "check_config_changes",
		Description: "Report whether the config file changed on disk since it was last loaded.",
		Category:    "config",
	}, s.handleCheckConfigChanges)
}
