package config

import (
	"time"

	"go.uber.org/zap"

	"github.com/dshills/tonetint/internal/chunker"
	"github.com/dshills/tonetint/internal/classifier"
	"github.com/dshills/tonetint/internal/render"
	"github.com/dshills/tonetint/internal/tonetint"
)

// Config is the complete application configuration
type Config struct {
	Classifier ClassifierConfig `koanf:"classifier"`
	Render     RenderConfig     `koanf:"render"`
	Output     OutputConfig     `koanf:"output"`
	Web        WebConfig        `koanf:"web"`
	Log        LogConfig        `koanf:"log"`
}

// ClassifierConfig selects and configures the sentiment model
type ClassifierConfig struct {
	Provider         string        `koanf:"provider"          validate:"omitempty,oneof=huggingface openai lexicon"`
	Model            string        `koanf:"model"`
	HuggingFaceToken string        `koanf:"huggingface_token"`
	OpenAIKey        string        `koanf:"openai_key"`
	BaseURL          string        `koanf:"base_url"          validate:"omitempty,url"`
	Timeout          time.Duration `koanf:"timeout"           validate:"gte=0"`
	CacheSize        int           `koanf:"cache_size"        validate:"gte=0"`
}

// RenderConfig controls chunking and colors
type RenderConfig struct {
	ChunkSize       int    `koanf:"chunk_size"       validate:"min=1"`
	PositiveColor   string `koanf:"positive_color"   validate:"hexcolor"`
	NegativeColor   string `koanf:"negative_color"   validate:"hexcolor"`
	NeutralColor    string `koanf:"neutral_color"    validate:"hexcolor"`
	FontFamily      string `koanf:"font_family"`
	FontSize        int    `koanf:"font_size"        validate:"gte=0"`
	TerminalNeutral string `koanf:"terminal_neutral" validate:"oneof=yellow default"`
}

// OutputConfig controls the terminal mode artifact
type OutputConfig struct {
	Save bool   `koanf:"save"`
	Open bool   `koanf:"open"`
	Path string `koanf:"path"` // Empty means ~/Downloads/tonetint_output.html
}

// WebConfig configures the web demo
type WebConfig struct {
	Addr string `koanf:"addr" validate:"required"`
}

// LogConfig configures logging
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `koanf:"json"`
}

// Default returns the built-in configuration
func Default() *Config {
	palette := render.DefaultPalette()
	return &Config{
		Classifier: ClassifierConfig{
			Timeout:   classifier.DefaultTimeout,
			CacheSize: classifier.DefaultCacheSize,
		},
		Render: RenderConfig{
			ChunkSize:       chunker.DefaultChunkSize,
			PositiveColor:   palette.Positive,
			NegativeColor:   palette.Negative,
			NeutralColor:    palette.Neutral,
			TerminalNeutral: render.NeutralYellow,
		},
		Output: OutputConfig{
			Save: true,
			Open: true,
		},
		Web: WebConfig{
			Addr: "127.0.0.1:7860",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ClassifierOptions converts the configuration for classifier.New
func (c *Config) ClassifierOptions(logger *zap.Logger) classifier.Config {
	return classifier.Config{
		Provider:         c.Classifier.Provider,
		Model:            c.Classifier.Model,
		HuggingFaceToken: c.Classifier.HuggingFaceToken,
		OpenAIKey:        c.Classifier.OpenAIKey,
		BaseURL:          c.Classifier.BaseURL,
		Timeout:          c.Classifier.Timeout,
		CacheSize:        c.Classifier.CacheSize,
		Logger:           logger,
	}
}

// Palette returns the configured label colors
func (c *Config) Palette() render.Palette {
	return render.Palette{
		Positive: c.Render.PositiveColor,
		Negative: c.Render.NegativeColor,
		Neutral:  c.Render.NeutralColor,
	}
}

// ApplyColorMap overlays a {POS, NEG, NEU} color map on the configured colors
func (c *Config) ApplyColorMap(colors map[string]string) error {
	p, err := render.PaletteFromMap(c.Palette(), colors)
	if err != nil {
		return err
	}
	c.Render.PositiveColor = p.Positive
	c.Render.NegativeColor = p.Negative
	c.Render.NeutralColor = p.Neutral
	return nil
}

// Font returns the configured markup font
func (c *Config) Font() render.Font {
	return render.Font{Family: c.Render.FontFamily, Size: c.Render.FontSize}
}

// Visualizer converts the configuration for tonetint.New
func (c *Config) Visualizer() tonetint.Config {
	return tonetint.Config{
		ChunkSize:    c.Render.ChunkSize,
		Palette:      c.Palette(),
		Font:         c.Font(),
		Terminal:     render.TerminalOptions{Neutral: c.Render.TerminalNeutral},
		Save:         c.Output.Save,
		Open:         c.Output.Open,
		ArtifactPath: c.Output.Path,
	}
}
