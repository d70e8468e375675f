// Package render turns classified chunks into colored output.
//
// # Color Mapping
//
// A Palette holds one 24-bit hex color per sentiment category. ColorFor picks
// the color for a model label (POSITIVE/POS, NEGATIVE/NEG, NEUTRAL/NEU,
// case-insensitive; anything else is light gray) and uses the confidence
// score directly as alpha, so faint chunks are ones the model was unsure of:
//
//	c, _ := render.DefaultPalette().ColorFor("POSITIVE", 1.0)
//	c.String() // "rgba(174, 200, 103, 1)"
//
//	c, _ = render.HexToRGBA("#aec867", 0.42)
//	c.String() // "rgba(174, 200, 103, 0.42)"
//
// # Output Modes
//
//   - Markup: inline-styled spans with a "Label: X, Score: 0.00" tooltip,
//     optionally wrapped in a font container; embeddable in any HTML host
//   - Terminal: one ANSI-colored line per chunk (green, red, neutral yellow
//     or default)
//   - Document: a standalone HTML page around the markup
//   - PDF: an A4 page with chunk backgrounds blended onto white
package render
