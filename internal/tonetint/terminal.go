package tonetint

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/dshills/tonetint/internal/output"
	"github.com/dshills/tonetint/internal/render"
	"github.com/dshills/tonetint/pkg/types"
)

// TerminalReport describes what a terminal-mode run produced
type TerminalReport struct {
	Segments []types.Segment
	Document string // Standalone HTML page
	Path     string // Where the page was saved, empty when not saved
	Opened   bool   // Whether the browser was launched
}

// DisplayTerminal prints one colored line per chunk to w and renders the
// standalone document. Depending on configuration the document is then saved
// to the artifact path and opened in the browser; failures of either step
// are returned.
func (v *Visualizer) DisplayTerminal(ctx context.Context, w io.Writer, text string) (*TerminalReport, error) {
	segments, err := v.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := render.Terminal(w, segments, v.cfg.Terminal); err != nil {
		return nil, err
	}

	doc, err := v.document(segments)
	if err != nil {
		return nil, err
	}

	report := &TerminalReport{Segments: segments, Document: doc}
	if !v.cfg.Save {
		return report, nil
	}

	path := v.cfg.ArtifactPath
	if path == "" {
		path, err = output.DefaultArtifactPath()
		if err != nil {
			return nil, err
		}
	}

	if err := v.writer.Save(path, doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	report.Path = path
	v.logger.Info("document saved", zap.String("path", path))

	if !v.cfg.Open {
		return report, nil
	}

	if err := v.opener.Open(ctx, path); err != nil {
		return report, err
	}
	report.Opened = true

	return report, nil
}
