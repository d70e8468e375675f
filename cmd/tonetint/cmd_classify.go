package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// classifiedChunk is one row of classify output
type classifiedChunk struct {
	Index    int     `json:"index"`
	Sentence int     `json:"sentence"`
	Text     string  `json:"text"`
	Words    int     `json:"words"`
	Label    string  `json:"label"`
	Score    float64 `json:"score"`
	Color    string  `json:"color"`
}

func newClassifyCmd(a *app) *cobra.Command {
	var (
		file   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "classify [text]",
		Short: "Show the label and score of every chunk",
		Long: `Runs the configured sentiment model over the text and lists each chunk with
the model's label, its confidence and the color it is rendered with. Useful
to check credentials and model output before rendering.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readText(cmd, args, file)
			if err != nil {
				return err
			}

			cfg := a.cfg.Visualizer()
			v, err := a.newVisualizer(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = v.Model().Close() }()

			segments, err := v.Analyze(cmd.Context(), text)
			if err != nil {
				return err
			}

			rows := make([]classifiedChunk, 0, len(segments))
			for _, seg := range segments {
				color, err := cfg.Palette.ColorFor(seg.Result.Label, seg.Result.Score)
				if err != nil {
					return err
				}
				rows = append(rows, classifiedChunk{
					Index:    seg.Chunk.Index,
					Sentence: seg.Chunk.Sentence,
					Text:     seg.Chunk.Text,
					Words:    seg.Chunk.WordCount(),
					Label:    seg.Result.Label,
					Score:    seg.Result.Score,
					Color:    color.String(),
				})
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("#", "LABEL", "SCORE", "WORDS", "CHUNK")
			for _, r := range rows {
				t.Row(strconv.Itoa(r.Index), r.Label, fmt.Sprintf("%.2f", r.Score), strconv.Itoa(r.Words), r.Text)
			}
			fmt.Fprintln(out, t.Render())
			fmt.Fprintf(out, "%s/%s\n", v.Model().Provider(), v.Model().Model())
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read text from a file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")

	return cmd
}
