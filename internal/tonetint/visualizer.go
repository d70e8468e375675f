package tonetint

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/dshills/tonetint/internal/chunker"
	"github.com/dshills/tonetint/internal/classifier"
	"github.com/dshills/tonetint/internal/output"
	"github.com/dshills/tonetint/internal/render"
	"github.com/dshills/tonetint/internal/tokenizer"
	"github.com/dshills/tonetint/pkg/types"
)

// ErrNoModel is returned when a visualizer is built without a sentiment model
var ErrNoModel = errors.New("sentiment model is required")

// Config is the immutable configuration of a Visualizer
type Config struct {
	ChunkSize int
	Palette   render.Palette
	Font      render.Font
	Terminal  render.TerminalOptions

	// Terminal mode side effects
	Save         bool   // Write the standalone document
	Open         bool   // Open the saved document in the browser
	ArtifactPath string // Empty means ~/Downloads/tonetint_output.html
}

// DefaultConfig returns 8-word chunks, the stock palette, and terminal mode
// saving and opening its document
func DefaultConfig() Config {
	return Config{
		ChunkSize: chunker.DefaultChunkSize,
		Palette:   render.DefaultPalette(),
		Terminal:  render.TerminalOptions{Neutral: render.NeutralYellow},
		Save:      true,
		Open:      true,
	}
}

// Visualizer runs text through chunking, classification and rendering
type Visualizer struct {
	cfg       Config
	tokenizer tokenizer.Tokenizer
	chunker   *chunker.Chunker
	adapter   *classifier.Adapter
	writer    *output.Writer
	opener    output.Opener
	logger    *zap.Logger
}

// Option customizes a Visualizer
type Option func(*Visualizer)

// WithTokenizer replaces the default rule tokenizer
func WithTokenizer(tok tokenizer.Tokenizer) Option {
	return func(v *Visualizer) { v.tokenizer = tok }
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(v *Visualizer) { v.logger = logger }
}

// WithWriter replaces the OS file writer used by terminal mode
func WithWriter(w *output.Writer) Option {
	return func(v *Visualizer) { v.writer = w }
}

// WithOpener replaces the browser opener used by terminal mode
func WithOpener(o output.Opener) Option {
	return func(v *Visualizer) { v.opener = o }
}

// New creates a Visualizer. Invalid chunk sizes and malformed palette colors
// are reported here.
func New(cfg Config, model classifier.Model, opts ...Option) (*Visualizer, error) {
	if model == nil {
		return nil, ErrNoModel
	}
	if err := cfg.Palette.Validate(); err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}

	v := &Visualizer{
		cfg:     cfg,
		adapter: classifier.NewAdapter(model),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}

	c, err := chunker.New(cfg.ChunkSize, v.tokenizer)
	if err != nil {
		return nil, err
	}
	v.chunker = c

	if v.writer == nil {
		v.writer = output.NewWriter(nil)
	}
	if v.opener == nil {
		v.opener = output.NewBrowserOpener()
	}

	return v, nil
}

// Config returns the visualizer configuration
func (v *Visualizer) Config() Config {
	return v.cfg
}

// Model returns the sentiment model in use
func (v *Visualizer) Model() classifier.Model {
	return v.adapter.Model()
}

// Analyze splits text into chunks and pairs each chunk with its sentiment
func (v *Visualizer) Analyze(ctx context.Context, text string) ([]types.Segment, error) {
	chunks := v.chunker.Split(text)

	results, err := v.adapter.Classify(ctx, chunks)
	if err != nil {
		return nil, err
	}

	v.logger.Debug("text analyzed",
		zap.Int("chunks", len(chunks)),
		zap.Int("chunk_size", v.chunker.Size()),
		zap.String("model", v.adapter.Model().Model()))

	return types.Zip(chunks, results)
}

// Visualize returns the markup rendering of text
func (v *Visualizer) Visualize(ctx context.Context, text string) (string, error) {
	segments, err := v.Analyze(ctx, text)
	if err != nil {
		return "", err
	}
	return render.Markup(segments, v.cfg.Palette, v.cfg.Font)
}

// Display writes the markup rendering of text to a hosting surface
func (v *Visualizer) Display(ctx context.Context, w io.Writer, text string) error {
	markup, err := v.Visualize(ctx, text)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, markup); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

// Document returns text rendered as a standalone HTML page
func (v *Visualizer) Document(ctx context.Context, text string) (string, error) {
	segments, err := v.Analyze(ctx, text)
	if err != nil {
		return "", err
	}
	return v.document(segments)
}

func (v *Visualizer) document(segments []types.Segment) (string, error) {
	markup, err := render.Markup(segments, v.cfg.Palette, v.cfg.Font)
	if err != nil {
		return "", err
	}
	return render.Document(markup, render.DocumentOptions{
		Font:    v.cfg.Font,
		Palette: v.cfg.Palette,
		Legend:  true,
	})
}

// PDF writes text rendered as a PDF document
func (v *Visualizer) PDF(ctx context.Context, w io.Writer, text string) error {
	segments, err := v.Analyze(ctx, text)
	if err != nil {
		return err
	}
	return render.PDF(w, segments, v.cfg.Palette, v.cfg.Font)
}

// Overrides adjust a base configuration for a single request. Zero values
// keep the base setting.
type Overrides struct {
	ChunkSize  int
	Positive   string
	Negative   string
	Neutral    string
	FontFamily string
	FontSize   int
}

// Apply returns a copy of c with the overrides applied
func (c Config) Apply(o Overrides) Config {
	if o.ChunkSize != 0 {
		c.ChunkSize = o.ChunkSize
	}
	if o.Positive != "" {
		c.Palette.Positive = o.Positive
	}
	if o.Negative != "" {
		c.Palette.Negative = o.Negative
	}
	if o.Neutral != "" {
		c.Palette.Neutral = o.Neutral
	}
	if o.FontFamily != "" {
		c.Font.Family = o.FontFamily
	}
	if o.FontSize != 0 {
		c.Font.Size = o.FontSize
	}
	return c
}
