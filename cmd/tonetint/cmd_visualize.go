package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/tonetint/internal/output"
)

// Output formats of the visualize command
const (
	formatHTML     = "html"
	formatDocument = "document"
	formatPDF      = "pdf"
)

func newVisualizeCmd(a *app) *cobra.Command {
	var (
		file    string
		format  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "visualize [text]",
		Short: "Render text as sentiment-colored HTML",
		Long: `Renders the text as inline HTML spans, one per chunk, for embedding in a
notebook or web page. --format document wraps the spans in a standalone page
and --format pdf renders a PDF.

Text is read from the arguments, from --file, or from stdin.`,
		Example: `  tonetint visualize "What a wonderful day. The traffic was awful."
  tonetint visualize --format document -o review.html < review.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readText(cmd, args, file)
			if err != nil {
				return err
			}

			v, err := a.newVisualizer(a.cfg.Visualizer())
			if err != nil {
				return err
			}
			defer func() { _ = v.Model().Close() }()

			ctx := cmd.Context()
			var buf bytes.Buffer
			switch format {
			case formatHTML:
				err = v.Display(ctx, &buf, text)
			case formatDocument:
				var doc string
				doc, err = v.Document(ctx, text)
				buf.WriteString(doc)
			case formatPDF:
				err = v.PDF(ctx, &buf, text)
			default:
				return fmt.Errorf("unknown format %q (html, document, pdf)", format)
			}
			if err != nil {
				return err
			}

			if outPath == "" {
				return writeAll(cmd.OutOrStdout(), buf.Bytes())
			}
			if err := output.NewWriter(a.fs).Save(outPath, buf.String()); err != nil {
				return err
			}
			a.logger.Info("output written", zap.String("path", outPath), zap.String("format", format))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read text from a file")
	cmd.Flags().StringVar(&format, "format", formatHTML, "Output format: html, document or pdf")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func writeAll(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
