package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/dshills/tonetint/internal/classifier"
	"github.com/dshills/tonetint/internal/render"
	"github.com/dshills/tonetint/internal/tonetint"
	"github.com/dshills/tonetint/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams        = -32602 // Invalid method parameters
	ErrorCodeInternalError        = -32603 // Internal JSON-RPC error
	ErrorCodeEmptyText            = -32001 // Text parameter is missing or empty
	ErrorCodeClassificationFailed = -32002 // The sentiment model failed
)

// handleVisualizeText handles the visualize_text tool invocation
func (s *Server) handleVisualizeText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	v, text, err := s.visualizerFor(request)
	if err != nil {
		return nil, err
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.sem.Release(1)

	segments, err := v.Analyze(ctx, text)
	if err != nil {
		return nil, classificationError(err)
	}

	cfg := v.Config()
	markup, err := render.Markup(segments, cfg.Palette, cfg.Font)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "rendering failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.logger.Debug("visualize_text", zap.Int("chunks", len(segments)))

	response := map[string]interface{}{
		"markup":       markup,
		"chunks":       len(segments),
		"chunk_size":   cfg.ChunkSize,
		"distribution": distribution(segments),
		"model":        s.model.Model(),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleRenderDocument handles the render_document tool invocation
func (s *Server) handleRenderDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	v, text, err := s.visualizerFor(request)
	if err != nil {
		return nil, err
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.sem.Release(1)

	doc, err := v.Document(ctx, text)
	if err != nil {
		return nil, classificationError(err)
	}

	return mcp.NewToolResultText(doc), nil
}

// handleListModels handles the list_models tool invocation
func (s *Server) handleListModels(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	response := map[string]interface{}{
		"provider":         s.model.Provider(),
		"model":            s.model.Model(),
		"providers":        classifier.Providers(),
		"suggested_models": classifier.SuggestedModels,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// visualizerFor validates the tool arguments and builds a visualizer with
// the per-call overrides applied
func (s *Server) visualizerFor(request mcp.CallToolRequest) (*tonetint.Visualizer, string, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, "", newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	text, ok := args["text"].(string)
	if !ok || text == "" {
		return nil, "", newMCPError(ErrorCodeEmptyText, "text parameter is required", map[string]interface{}{
			"param":  "text",
			"reason": "missing or empty",
		})
	}

	chunkSize := getIntDefault(args, "chunk_size", s.config.ChunkSize)
	if chunkSize < 1 {
		return nil, "", newMCPError(ErrorCodeInvalidParams, "chunk_size must be at least 1", map[string]interface{}{
			"param": "chunk_size",
			"value": chunkSize,
		})
	}

	cfg := s.config.Apply(tonetint.Overrides{
		ChunkSize:  chunkSize,
		Positive:   getStringDefault(args, "positive_color", ""),
		Negative:   getStringDefault(args, "negative_color", ""),
		Neutral:    getStringDefault(args, "neutral_color", ""),
		FontFamily: getStringDefault(args, "font_family", ""),
		FontSize:   getIntDefault(args, "font_size", 0),
	})

	v, err := tonetint.New(cfg, s.model, tonetint.WithLogger(s.logger))
	if err != nil {
		return nil, "", newMCPError(ErrorCodeInvalidParams, "invalid rendering options", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return v, text, nil
}

// classificationError maps a model failure to an MCP error
func classificationError(err error) error {
	data := map[string]interface{}{"error": err.Error()}
	if errors.Is(err, types.ErrCardinalityMismatch) {
		data["reason"] = "model returned the wrong number of results"
	}
	return newMCPError(ErrorCodeClassificationFailed, "classification failed", data)
}

// distribution counts chunks per category keyed by lower-case name
func distribution(segments []types.Segment) map[string]int {
	out := make(map[string]int)
	for c, n := range types.Distribution(segments) {
		out[strings.ToLower(string(c))] = n
	}
	return out
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
