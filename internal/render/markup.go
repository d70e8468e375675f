package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/dshills/tonetint/pkg/types"
)

// Font is the optional typography of the markup container
type Font struct {
	Family string // CSS font-family, empty for inherit
	Size   int    // Pixels, 0 for inherit
}

// IsZero reports whether no font property is set
func (f Font) IsZero() bool {
	return f.Family == "" && f.Size <= 0
}

// style returns the CSS declarations of the font
func (f Font) style() string {
	parts := make([]string, 0, 2)
	if f.Family != "" {
		parts = append(parts, "font-family:"+f.Family+";")
	}
	if f.Size > 0 {
		parts = append(parts, fmt.Sprintf("font-size:%dpx;", f.Size))
	}
	return strings.Join(parts, " ")
}

// Tooltip returns the hover text of a rendered chunk
func Tooltip(r types.SentimentResult) string {
	return fmt.Sprintf("Label: %s, Score: %.2f", strings.ToUpper(r.Label), r.Score)
}

// Span renders one chunk as an inline-styled span. The trailing space inside
// the span separates it from the next chunk.
func Span(seg types.Segment, palette Palette) (string, error) {
	color, err := palette.ColorFor(seg.Result.Label, seg.Result.Score)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("<span style='background-color:%s;' title='%s'>%s </span>",
		color, html.EscapeString(Tooltip(seg.Result)), html.EscapeString(seg.Chunk.Text)), nil
}

// Markup renders segments as HTML spans, wrapped in a styled div when a font
// is configured. The output can be embedded in a notebook or web page as is.
func Markup(segments []types.Segment, palette Palette, font Font) (string, error) {
	var b strings.Builder

	if !font.IsZero() {
		fmt.Fprintf(&b, "<div style='%s'>", html.EscapeString(font.style()))
	}

	for _, seg := range segments {
		span, err := Span(seg, palette)
		if err != nil {
			return "", fmt.Errorf("render chunk %d: %w", seg.Chunk.Index, err)
		}
		b.WriteString(span)
	}

	if !font.IsZero() {
		b.WriteString("</div>")
	}

	return b.String(), nil
}
