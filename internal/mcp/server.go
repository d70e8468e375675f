package mcp

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/dshills/tonetint/internal/classifier"
	"github.com/dshills/tonetint/internal/tonetint"
)

const (
	// ServerName is the MCP server name
	ServerName = "tonetint"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp    *server.MCPServer
	model  classifier.Model
	config tonetint.Config
	logger *zap.Logger

	// One visualization at a time
	sem *semaphore.Weighted
}

// NewServer creates a new MCP server around a sentiment model. cfg is the
// base visualizer configuration that tool arguments override per call.
func NewServer(model classifier.Model, cfg tonetint.Config, logger *zap.Logger) (*Server, error) {
	if model == nil {
		return nil, errors.New("sentiment model is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	// Tools never write or open artifacts
	cfg.Save = false
	cfg.Open = false

	// Reject a bad base configuration up front
	if _, err := tonetint.New(cfg, model); err != nil {
		return nil, err
	}

	s := &Server{
		mcp:    server.NewMCPServer(ServerName, ServerVersion),
		model:  model,
		config: cfg,
		logger: logger,
		sem:    semaphore.NewWeighted(1),
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until stdin closes
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// Close releases the sentiment model
func (s *Server) Close() error {
	return s.model.Close()
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(visualizeTextTool(), s.handleVisualizeText)
	s.mcp.AddTool(renderDocumentTool(), s.handleRenderDocument)
	s.mcp.AddTool(listModelsTool(), s.handleListModels)
}
