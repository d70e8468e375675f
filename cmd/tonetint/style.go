package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/dshills/tonetint/internal/render"
	"github.com/dshills/tonetint/internal/tonetint"
	"github.com/dshills/tonetint/pkg/types"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	pathStyle  = lipgloss.NewStyle().Underline(true)
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

// isTerminal reports whether f is an interactive terminal
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// colorEnabled reports whether ANSI colors should be written to w
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// badge renders a category name on its palette color
func badge(name, hex string, color bool) string {
	if !color {
		return name
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color("#000000")).
		Padding(0, 1).
		Render(name)
}

// summary renders the chunk counts per category and where the page went
func summary(report *tonetint.TerminalReport, palette render.Palette, color bool) string {
	counts := types.Distribution(report.Segments)

	parts := make([]string, 0, 4)
	for _, c := range []types.Category{types.CategoryPositive, types.CategoryNeutral, types.CategoryNegative} {
		name := strings.ToLower(string(c))
		parts = append(parts, fmt.Sprintf("%s %d", badge(name, palette.Hex(c), color), counts[c]))
	}
	if n := counts[types.CategoryUnknown]; n > 0 {
		parts = append(parts, fmt.Sprintf("%s %d", badge("other", render.FallbackColor, color), n))
	}

	styled := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	b.WriteString(styled(labelStyle, fmt.Sprintf("%d chunks", len(report.Segments))))
	b.WriteString("  ")
	b.WriteString(strings.Join(parts, "  "))

	switch {
	case report.Path == "":
		b.WriteString("\n" + styled(mutedStyle, "HTML output not saved"))
	case report.Opened:
		b.WriteString("\nOpened " + styled(pathStyle, report.Path))
	default:
		b.WriteString("\nSaved " + styled(pathStyle, report.Path))
	}

	return b.String()
}
