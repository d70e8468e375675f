package main

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/tonetint/internal/mcp"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdio",
		Long: `Starts a Model Context Protocol server on stdin/stdout exposing the tools
visualize_text, render_document and list_models. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := a.newModel()
			if err != nil {
				return err
			}

			server, err := mcp.NewServer(model, a.cfg.Visualizer(), a.logger)
			if err != nil {
				_ = model.Close()
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a.logger.Info("MCP server ready, listening on stdio",
				zap.String("version", version),
				zap.String("model", model.Model()))

			return serveUntilDone(ctx, server.Serve, server, a.logger)
		},
	}
}

// serveUntilDone runs serve until it returns or ctx is done. closer is
// closed on both paths.
func serveUntilDone(ctx context.Context, serve func(context.Context) error, closer io.Closer, logger *zap.Logger) error {
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Warn("close failed", zap.Error(err))
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- serve(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		return nil
	}
}
