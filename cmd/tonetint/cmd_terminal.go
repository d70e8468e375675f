package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/tonetint/internal/output"
	"github.com/dshills/tonetint/internal/render"
	"github.com/dshills/tonetint/internal/tonetint"
)

func newTerminalCmd(a *app) *cobra.Command {
	var (
		file         string
		noSave       bool
		noOpen       bool
		noColor      bool
		neutralColor string
		outPath      string
	)

	cmd := &cobra.Command{
		Use:   "terminal [text]",
		Short: "Print sentiment-colored chunks and open the HTML rendering",
		Long: `Prints every chunk on its own line in green (positive), red (negative) or
the neutral color, then writes the HTML rendering to
~/Downloads/tonetint_output.html and opens it in the default browser.
The file is overwritten on every run.`,
		Example: `  tonetint terminal "I loved the food but the service was slow."
  tonetint terminal --no-open --neutral-color default -f notes.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readText(cmd, args, file)
			if err != nil {
				return err
			}

			cfg := a.cfg.Visualizer()
			if cmd.Flags().Changed("neutral-color") {
				cfg.Terminal.Neutral = neutralColor
			}
			if cfg.Terminal.Neutral != render.NeutralYellow && cfg.Terminal.Neutral != render.NeutralDefault {
				return fmt.Errorf("unknown neutral color %q (yellow, default)", cfg.Terminal.Neutral)
			}
			cfg.Terminal.NoColor = noColor || !colorEnabled(cmd.OutOrStdout())
			if noSave {
				cfg.Save = false
			}
			if noOpen {
				cfg.Open = false
			}
			if outPath != "" {
				cfg.ArtifactPath = outPath
			}

			v, err := a.newVisualizer(cfg, tonetint.WithWriter(output.NewWriter(a.fs)))
			if err != nil {
				return err
			}
			defer func() { _ = v.Model().Close() }()

			out := cmd.OutOrStdout()
			report, err := v.DisplayTerminal(cmd.Context(), out, text)
			if report != nil {
				fmt.Fprintln(out)
				fmt.Fprintln(out, summary(report, cfg.Palette, !cfg.Terminal.NoColor))
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read text from a file")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not write the HTML file")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "Do not open the HTML file in the browser")
	cmd.Flags().BoolVar(&noColor, "no-color", os.Getenv("NO_COLOR") != "", "Print chunks without ANSI colors")
	cmd.Flags().StringVar(&neutralColor, "neutral-color", render.NeutralYellow, "Terminal color of neutral chunks: yellow or default")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "HTML file path (default ~/Downloads/tonetint_output.html)")

	return cmd
}
