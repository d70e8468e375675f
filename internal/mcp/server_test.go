package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/tonetint/internal/classifier"
	"github.com/dshills/tonetint/internal/render"
	"github.com/dshills/tonetint/internal/tonetint"
	"github.com/dshills/tonetint/pkg/types"
)

// labelModel labels chunks by keyword and records every batch it receives
type labelModel struct {
	batches [][]string
	closed  bool
}

func (m *labelModel) Classify(_ context.Context, texts []string) ([]types.SentimentResult, error) {
	m.batches = append(m.batches, texts)
	out := make([]types.SentimentResult, len(texts))
	for i, text := range texts {
		switch {
		case strings.Contains(text, "love"):
			out[i] = types.SentimentResult{Label: "POS", Score: 0.9}
		case strings.Contains(text, "hate"):
			out[i] = types.SentimentResult{Label: "NEG", Score: 0.8}
		default:
			out[i] = types.SentimentResult{Label: "NEU", Score: 0.6}
		}
	}
	return out, nil
}

func (m *labelModel) Provider() string { return "test" }
func (m *labelModel) Model() string    { return "keyword" }
func (m *labelModel) Close() error     { m.closed = true; return nil }

func newTestServer(t *testing.T, model classifier.Model) *Server {
	t.Helper()
	s, err := NewServer(model, tonetint.DefaultConfig(), nil)
	require.NoError(t, err)
	return s
}

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func requireMCPError(t *testing.T, err error, code int) *MCPError {
	t.Helper()
	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, code, mcpErr.Code)
	return mcpErr
}

func TestNewServer(t *testing.T) {
	_, err := NewServer(nil, tonetint.DefaultConfig(), nil)
	assert.Error(t, err)

	cfg := tonetint.DefaultConfig()
	cfg.ChunkSize = 0
	_, err = NewServer(&labelModel{}, cfg, nil)
	assert.ErrorIs(t, err, types.ErrInvalidChunkSize)

	s := newTestServer(t, &labelModel{})
	assert.NotNil(t, s.mcp)
	assert.False(t, s.config.Save)
	assert.False(t, s.config.Open)
}

func TestHandleVisualizeText(t *testing.T) {
	model := &labelModel{}
	s := newTestServer(t, model)

	result, err := s.handleVisualizeText(context.Background(), callRequest("visualize_text", map[string]interface{}{
		"text":       "I love it. I hate it.",
		"chunk_size": float64(2),
	}))
	require.NoError(t, err)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &response))

	assert.Equal(t, float64(4), response["chunks"])
	assert.Equal(t, float64(2), response["chunk_size"])
	assert.Equal(t, "keyword", response["model"])

	markup := response["markup"].(string)
	assert.Equal(t, 4, strings.Count(markup, "<span"))
	assert.Contains(t, markup, "rgba(174, 200, 103, 0.9)")
	assert.Contains(t, markup, "rgba(232, 165, 108, 0.8)")

	dist := response["distribution"].(map[string]interface{})
	assert.Equal(t, float64(1), dist["positive"])
	assert.Equal(t, float64(1), dist["negative"])
	assert.Equal(t, float64(2), dist["neutral"])

	require.Len(t, model.batches, 1)
	assert.Equal(t, []string{"I love", "it .", "I hate", "it ."}, model.batches[0])
}

func TestHandleVisualizeText_Overrides(t *testing.T) {
	s := newTestServer(t, &classifier.Static{Results: []types.SentimentResult{{Label: "POS", Score: 1}}})

	result, err := s.handleVisualizeText(context.Background(), callRequest("visualize_text", map[string]interface{}{
		"text":           "Lovely.",
		"positive_color": "#000000",
		"font_family":    "Georgia",
	}))
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "rgba(0, 0, 0, 1)")
	assert.Contains(t, text, "font-family:Georgia;")
}

func TestHandleVisualizeText_InvalidParams(t *testing.T) {
	s := newTestServer(t, &labelModel{})
	ctx := context.Background()

	_, err := s.handleVisualizeText(ctx, callRequest("visualize_text", map[string]interface{}{}))
	requireMCPError(t, err, ErrorCodeEmptyText)

	_, err = s.handleVisualizeText(ctx, callRequest("visualize_text", map[string]interface{}{"text": ""}))
	requireMCPError(t, err, ErrorCodeEmptyText)

	_, err = s.handleVisualizeText(ctx, callRequest("visualize_text", map[string]interface{}{
		"text":       "hello",
		"chunk_size": float64(0),
	}))
	requireMCPError(t, err, ErrorCodeInvalidParams)

	_, err = s.handleVisualizeText(ctx, callRequest("visualize_text", map[string]interface{}{
		"text":          "hello",
		"neutral_color": "#12",
	}))
	mcpErr := requireMCPError(t, err, ErrorCodeInvalidParams)
	assert.Contains(t, mcpErr.Data.(map[string]interface{})["error"], render.ErrInvalidHexColor.Error())

	var req mcp.CallToolRequest
	req.Params.Arguments = "not a map"
	_, err = s.handleVisualizeText(ctx, req)
	requireMCPError(t, err, ErrorCodeInvalidParams)
}

func TestHandleVisualizeText_ModelFailure(t *testing.T) {
	model := classifier.ModelFunc(func(_ context.Context, _ []string) ([]types.SentimentResult, error) {
		return nil, errors.New("rate limited")
	})
	s := newTestServer(t, model)

	_, err := s.handleVisualizeText(context.Background(), callRequest("visualize_text", map[string]interface{}{
		"text": "hello there",
	}))
	mcpErr := requireMCPError(t, err, ErrorCodeClassificationFailed)
	assert.Contains(t, mcpErr.Data.(map[string]interface{})["error"], "rate limited")

	// the semaphore is released after a failure
	assert.True(t, s.sem.TryAcquire(1))
	s.sem.Release(1)
}

func TestHandleVisualizeText_CardinalityMismatch(t *testing.T) {
	s := newTestServer(t, &classifier.Static{})

	_, err := s.handleVisualizeText(context.Background(), callRequest("visualize_text", map[string]interface{}{
		"text": "hello there",
	}))
	mcpErr := requireMCPError(t, err, ErrorCodeClassificationFailed)
	assert.NotEmpty(t, mcpErr.Data.(map[string]interface{})["reason"])
}

func TestHandleVisualizeText_Cancelled(t *testing.T) {
	s := newTestServer(t, &labelModel{})
	require.True(t, s.sem.TryAcquire(1))
	defer s.sem.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.handleVisualizeText(ctx, callRequest("visualize_text", map[string]interface{}{"text": "hello"}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHandleRenderDocument(t *testing.T) {
	s := newTestServer(t, &labelModel{})

	result, err := s.handleRenderDocument(context.Background(), callRequest("render_document", map[string]interface{}{
		"text": "I love <b>tags</b>.",
	}))
	require.NoError(t, err)

	doc := resultText(t, result)
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, render.DocumentHeading)
	assert.Contains(t, doc, "&lt;b&gt;")
	assert.NotContains(t, doc, "<b>tags")
}

func TestHandleListModels(t *testing.T) {
	s := newTestServer(t, &labelModel{})

	result, err := s.handleListModels(context.Background(), callRequest("list_models", nil))
	require.NoError(t, err)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &response))
	assert.Equal(t, "test", response["provider"])
	assert.Equal(t, "keyword", response["model"])
	assert.Len(t, response["providers"], len(classifier.Providers()))
	assert.Len(t, response["suggested_models"], len(classifier.SuggestedModels))
}

func TestToolDefinitions(t *testing.T) {
	for _, tool := range []mcp.Tool{visualizeTextTool(), renderDocumentTool()} {
		assert.Equal(t, []string{"text"}, tool.InputSchema.Required, tool.Name)
		assert.Contains(t, tool.InputSchema.Properties, "chunk_size", tool.Name)
		assert.Contains(t, tool.InputSchema.Properties, "positive_color", tool.Name)
	}
	assert.Equal(t, "list_models", listModelsTool().Name)
}

func TestArgumentHelpers(t *testing.T) {
	args := map[string]interface{}{
		"f": float64(3),
		"i": 4,
		"s": "x",
	}
	assert.Equal(t, 3, getIntDefault(args, "f", 0))
	assert.Equal(t, 4, getIntDefault(args, "i", 0))
	assert.Equal(t, 7, getIntDefault(args, "missing", 7))
	assert.Equal(t, "x", getStringDefault(args, "s", ""))
	assert.Equal(t, "d", getStringDefault(args, "f", "d"))
}

func TestServerClose(t *testing.T) {
	model := &labelModel{}
	s := newTestServer(t, model)

	require.NoError(t, s.Close())
	assert.True(t, model.closed)
}
