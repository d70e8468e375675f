package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/tonetint/internal/classifier"
	"github.com/dshills/tonetint/internal/config"
	"github.com/dshills/tonetint/internal/logging"
	"github.com/dshills/tonetint/internal/tonetint"
)

// app holds state shared by all commands
type app struct {
	// Global flags
	verbose    bool
	envFile    string
	provider   string
	model      string
	chunkSize  int
	colors     map[string]string
	positive   string
	negative   string
	neutral    string
	fontFamily string
	fontSize   int

	fs     afero.Fs
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{fs: afero.NewOsFs(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "tonetint",
		Short: "Color text by sentiment, chunk by chunk",
		Long: `ToneTint splits text into short word chunks, classifies each chunk with a
sentiment model and renders the text with every chunk tinted green
(positive), red (negative) or neutral. Color opacity follows the model's
confidence.

Models:
  huggingface  HuggingFace inference API (HF_TOKEN)
  openai       OpenAI chat model (OPENAI_API_KEY)
  lexicon      offline word list, used when no credentials are set`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&a.envFile, "env-file", ".env", "Dotenv file to load if present")
	flags.StringVar(&a.provider, "provider", "", "Sentiment provider: "+strings.Join(classifier.Providers(), ", "))
	flags.StringVarP(&a.model, "model", "m", "", "Model id of the provider")
	flags.IntVarP(&a.chunkSize, "chunk-size", "n", 0, "Maximum words per chunk")
	flags.StringToStringVar(&a.colors, "colors", nil, "Color map, e.g. POS=#aec867,NEG=#e8a56c,NEU=#f0e8d2")
	flags.StringVar(&a.positive, "positive", "", "Hex color of positive chunks")
	flags.StringVar(&a.negative, "negative", "", "Hex color of negative chunks")
	flags.StringVar(&a.neutral, "neutral", "", "Hex color of neutral chunks")
	flags.StringVar(&a.fontFamily, "font-family", "", "CSS font family of the markup")
	flags.IntVar(&a.fontSize, "font-size", 0, "Font size of the markup in pixels")

	root.AddCommand(
		newVisualizeCmd(a),
		newClassifyCmd(a),
		newTerminalCmd(a),
		newServeCmd(a),
		newWebCmd(a),
		newVersionCmd(),
	)

	return root
}

// init loads configuration, applies flags and builds the logger
func (a *app) init(cmd *cobra.Command) error {
	loader := config.NewLoader()
	loader.DotEnv = []string{a.envFile}

	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("provider") {
		cfg.Classifier.Provider = a.provider
	}
	if flags.Changed("model") {
		cfg.Classifier.Model = a.model
	}
	if flags.Changed("chunk-size") {
		cfg.Render.ChunkSize = a.chunkSize
	}
	if flags.Changed("colors") {
		if err := cfg.ApplyColorMap(a.colors); err != nil {
			return fmt.Errorf("invalid options: %w", err)
		}
	}
	if flags.Changed("positive") {
		cfg.Render.PositiveColor = a.positive
	}
	if flags.Changed("negative") {
		cfg.Render.NegativeColor = a.negative
	}
	if flags.Changed("neutral") {
		cfg.Render.NeutralColor = a.neutral
	}
	if flags.Changed("font-family") {
		cfg.Render.FontFamily = a.fontFamily
	}
	if flags.Changed("font-size") {
		cfg.Render.FontSize = a.fontSize
	}

	if err := loader.Validate(cfg); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	a.cfg = cfg

	logger, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		Verbose: a.verbose,
		JSON:    cfg.Log.JSON,
	})
	if err != nil {
		return err
	}
	a.logger = logger

	return nil
}

// newModel creates the configured sentiment model
func (a *app) newModel() (classifier.Model, error) {
	model, err := classifier.New(a.cfg.ClassifierOptions(a.logger))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("sentiment model ready",
		zap.String("provider", model.Provider()),
		zap.String("model", model.Model()))
	return model, nil
}

// newVisualizer creates a visualizer over a new model
func (a *app) newVisualizer(cfg tonetint.Config, opts ...tonetint.Option) (*tonetint.Visualizer, error) {
	model, err := a.newModel()
	if err != nil {
		return nil, err
	}
	opts = append([]tonetint.Option{tonetint.WithLogger(a.logger)}, opts...)
	v, err := tonetint.New(cfg, model, opts...)
	if err != nil {
		_ = model.Close()
		return nil, err
	}
	return v, nil
}

// readText returns the text to analyze: the arguments, a file or stdin
func (a *app) readText(cmd *cobra.Command, args []string, file string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if file != "" {
		data, err := afero.ReadFile(a.fs, file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(data), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return "", fmt.Errorf("no text given: pass it as arguments, with --file or on stdin")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
