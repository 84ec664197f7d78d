package mcp

import (
	"context"
	"fmt"

	mcp_sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/unrealmcp/unrealmcp/internal/validation"
)

// CreateUMGWidgetBlueprintParams is the params struct for create_umg_widget_blueprint
type CreateUMGWidgetBlueprintParams struct {
	WidgetName  string `json:"widget_name" description:"Name for the new widget Blueprint"`
	ParentClass string `json:"parent_class,omitempty" description:"Parent widget class, default UserWidget"`
	Path        string `json:"path,omitempty" description:"Content path, default /Game/UI"`
}

func (s *Server) handleCreateUMGWidgetBlueprint(ctx context.Context, req *mcp_sdk.CallToolRequest, params CreateUMGWidgetBlueprintParams) (*mcp_sdk.CallToolResult, any, error) {
	widgetName, err := validation.ValidateName("widget", params.WidgetName)
	if err != nil {
		return nil, nil, err
	}

	parentClass := params.ParentClass
	if parentClass == "" {
		parentClass = "UserWidget"
	}
	path := params.Path
	if path == "" {
		path = "/Game/UI"
	}
	if _, err := validation.ValidateAssetPath(path); err != nil {
		return nil, nil, err
	}

	resp := s.dispatch(ctx, "create_umg_widget_blueprint", map[string]any{
		"widget_name":  widgetName,
		"parent_class": parentClass,
		"path":         path,
	})
	return editorResult(resp)
}

// AddTextBlockToWidgetParams is the params struct for add_text_block_to_widget
type AddTextBlockToWidgetParams struct {
	WidgetName    string    `json:"widget_name" description:"Widget Blueprint to modify"`
	TextBlockName string    `json:"text_block_name" description:"Name for the new text block"`
	Text          string    `json:"text,omitempty" description:"Initial text content"`
	Position      []float64 `json:"position,omitempty" description:"[x, y] canvas position, default [0, 0]"`
	Size          []float64 `json:"size,omitempty" description:"[width, height], default [200, 50]"`
	FontSize      int       `json:"font_size,omitempty" description:"Font size, default 12"`
	Color         []float64 `json:"color,omitempty" description:"[r, g, b, a] 0..1, default white"`
}

func (s *Server) handleAddTextBlockToWidget(ctx context.Context, req *mcp_sdk.CallToolRequest, params AddTextBlockToWidgetParams) (*mcp_sdk.CallToolResult, any, error) {
	widgetName, err := validation.ValidateName("widget", params.WidgetName)
	if err != nil {
		return nil, nil, err
	}
	textBlockName, err := validation.ValidateName("text block", params.TextBlockName)
	if err != nil {
		return nil, nil, err
	}
	if err := validation.ValidateVector("position", params.Position, 2); err != nil {
		return nil, nil, err
	}
	if err := validation.ValidateVector("size", params.Size, 2); err != nil {
		return nil, nil, err
	}
	if err := validation.ValidateVector("color", params.Color, 4); err != nil {
		return nil, nil, err
	}

	fontSize := params.FontSize
	if fontSize <= 0 {
		fontSize = 12
	}
	size := params.Size
	if size == nil {
		size = []float64{200, 50}
	}

	resp := s.dispatch(ctx, "add_text_block_to_widget", map[string]any{
		"widget_name":     widgetName,
		"text_block_name": textBlockName,
		"text":            params.Text,
		"position":        validation.VectorOrDefault(params.Position, 2, 0),
		"size":            size,
		"font_size":       fontSize,
		"color":           validation.VectorOrDefault(params.Color, 4, 1),
	})
	return editorResult(resp)
}

// AddButtonToWidgetParams is the params struct for add_button_to_widget
type AddButtonToWidgetParams struct {
	WidgetName      string    `json:"widget_name" description:"Widget Blueprint to modify"`
	ButtonName      string    `json:"button_name" description:"Name for the new button"`
	Text            string    `json:"text,omitempty" description:"Button label text"`
	Position        []float64 `json:"position,omitempty" description:"[x, y] canvas position, default [0, 0]"`
	Size            []float64 `json:"size,omitempty" description:"[width, height], default [200, 50]"`
	FontSize        int       `json:"font_size,omitempty" description:"Label font size, default 12"`
	Color           []float64 `json:"color,omitempty" description:"Label [r, g, b, a], default white"`
	BackgroundColor []float64 `json:"background_color,omitempty" description:"Button [r, g, b, a], default dark gray"`
}

func (s *Server) handleAddButtonToWidget(ctx context.Context, req *mcp_sdk.CallToolRequest, params AddButtonToWidgetParams) (*mcp_sdk.CallToolResult, any, error) {
	widgetName, err := validation.ValidateName("widget", params.WidgetName)
	if err != nil {
		return nil, nil, err
	}
	buttonName, err := validation.ValidateName("button", params.ButtonName)
	if err != nil {
		return nil, nil, err
	}
	if err := validation.ValidateVector("position", params.Position, 2); err != nil {
		return nil, nil, err
	}
	if err := validation.ValidateVector("size", params.Size, 2); err != nil {
		return nil, nil, err
	}
	if err := validation.ValidateVector("color", params.Color, 4); err != nil {
		return nil, nil, err
	}
	if err := validation.ValidateVector("background_color", params.BackgroundColor, 4); err != nil {
		return nil, nil, err
	}

	fontSize := params.FontSize
	if fontSize <= 0 {
		fontSize = 12
	}
	size := params.Size
	if size == nil {
		size = []float64{200, 50}
	}
	backgroundColor := params.BackgroundColor
	if backgroundColor == nil {
		backgroundColor = []float64{0.1, 0.1, 0.1, 1.0}
	}

	resp := s.dispatch(ctx, "add_button_to_widget", map[string]any{
		"widget_name":      widgetName,
		"button_name":      buttonName,
		"text":             params.Text,
		"position":         validation.VectorOrDefault(params.Position, 2, 0),
		"size":             size,
		"font_size":        fontSize,
		"color":            validation.VectorOrDefault(params.Color, 4, 1),
		"background_color": backgroundColor,
	})
	return editorResult(resp)
}

// BindWidgetEventParams is the params struct for bind_widget_event
type BindWidgetEventParams struct {
	WidgetName          string `json:"widget_name" description:"Widget Blueprint containing the component"`
	WidgetComponentName string `json:"widget_component_name" description:"Component whose event to bind"`
	EventName           string `json:"event_name" description:"Event to bind, e.g. OnClicked"`
	FunctionName        string `json:"function_name,omitempty" description:"Handler name, default <component>_<event>"`
}

func (s *Server) handleBindWidgetEvent(ctx context.Context, req *mcp_sdk.CallToolRequest, params BindWidgetEventParams) (*mcp_sdk.CallToolResult, any, error) {
	widgetName, err := validation.ValidateName("widget", params.WidgetName)
	if err != nil {
		return nil, nil, err
	}
	if params.WidgetComponentName == "" || params.EventName == "" {
		return nil, nil, fmt.Errorf("widget_component_name and event_name are required")
	}

	functionName := params.FunctionName
	if functionName == "" {
		functionName = fmt.Sprintf("%s_%s", params.WidgetComponentName, params.EventName)
	}

	resp := s.dispatch(ctx, "bind_widget_event", map[string]any{
		"widget_name":           widgetName,
		"widget_component_name": params.WidgetComponentName,
		"event_name":            params.EventName,
		"function_name":         functionName,
	})
	return editorResult(resp)
}

// AddWidgetToViewportParams is the params struct for add_widget_to_viewport
type AddWidgetToViewportParams struct {
	WidgetName string `json:"widget_name" description:"Widget Blueprint to instantiate"`
	ZOrder     int    `json:"z_order,omitempty" description:"Stacking order, higher renders on top"`
}

func (s *Server) handleAddWidgetToViewport(ctx context.Context, req *mcp_sdk.CallToolRequest, params AddWidgetToViewportParams) (*mcp_sdk.CallToolResult, any, error) {
	widgetName, err := validation.ValidateName("widget", params.WidgetName)
	if err != nil {
		return nil, nil, err
	}

	resp := s.dispatch(ctx, "add_widget_to_viewport", map[string]any{
		"widget_name": widgetName,
		"z_order":     params.ZOrder,
	})
	return editorResult(resp)
}

// SetTextBlockBindingParams is the params struct for set_text_block_binding
type SetTextBlockBindingParams struct {
	WidgetName      string `json:"widget_name" description:"Widget Blueprint containing the text block"`
	TextBlockName   string `json:"text_block_name" description:"Text block to bind"`
	BindingProperty string `json:"binding_property" description:"Blueprint property to bind to"`
	BindingType     string `json:"binding_type,omitempty" description:"Bound property type, default Text"`
}

func (s *Server) handleSetTextBlockBinding(ctx context.Context, req *mcp_sdk.CallToolRequest, params SetTextBlockBindingParams) (*mcp_sdk.CallToolResult, any, error) {
	widgetName, err := validation.ValidateName("widget", params.WidgetName)
	if err != nil {
		return nil, nil, err
	}
	if params.TextBlockName == "" || params.BindingProperty == "" {
		return nil, nil, fmt.Errorf("text_block_name and binding_property are required")
	}

	bindingType := params.BindingType
	if bindingType == "" {
		bindingType = "Text"
	}

	resp := s.dispatch(ctx, "set_text_block_binding", map[string]any{
		"widget_name":      widgetName,
		"text_block_name":  params.TextBlockName,
		"binding_property": params.BindingProperty,
		"binding_type":     bindingType,
	})
	return editorResult(resp)
}
