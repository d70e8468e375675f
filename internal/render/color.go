package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/tonetint/pkg/types"
)

var (
	// ErrInvalidHexColor is returned for colors that are not six hex digits
	ErrInvalidHexColor = errors.New("invalid hex color")
	// ErrUnknownColorKey is returned for color map keys that name no category
	ErrUnknownColorKey = errors.New("unknown color map key")
)

// Default colors
const (
	DefaultPositive = "#aec867" // green
	DefaultNegative = "#e8a56c" // red
	DefaultNeutral  = "#f0e8d2" // yellow
	FallbackColor   = "#d3d3d3" // light gray, for labels outside the palette
)

// RGBA is a color whose alpha carries the classifier confidence
type RGBA struct {
	R, G, B uint8
	A       float64
}

// String formats the color as a CSS rgba() value. Alpha uses the shortest
// decimal representation.
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Blend composites the color over an opaque background and returns the
// resulting opaque channels
func (c RGBA) Blend(bgR, bgG, bgB uint8) (r, g, b uint8) {
	a := c.A
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	mix := func(fg, bg uint8) uint8 {
		return uint8(float64(fg)*a + float64(bg)*(1-a) + 0.5)
	}
	return mix(c.R, bgR), mix(c.G, bgG), mix(c.B, bgB)
}

// HexToRGBA parses "#rrggbb" (leading # optional) and attaches alpha
func HexToRGBA(hex string, alpha float64) (RGBA, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return RGBA{}, fmt.Errorf("%w: %q must have 6 hex digits", ErrInvalidHexColor, hex)
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidHexColor, hex, err)
		}
		channels[i] = uint8(v)
	}

	return RGBA{R: channels[0], G: channels[1], B: channels[2], A: alpha}, nil
}

// Palette maps sentiment categories to 24-bit hex colors
type Palette struct {
	Positive string
	Negative string
	Neutral  string
}

// DefaultPalette returns the stock green/red/yellow palette
func DefaultPalette() Palette {
	return Palette{
		Positive: DefaultPositive,
		Negative: DefaultNegative,
		Neutral:  DefaultNeutral,
	}
}

// PaletteFromMap overlays a {POS, NEG, NEU} color map on base. Keys are
// matched like model labels; missing keys keep the base color.
func PaletteFromMap(base Palette, colors map[string]string) (Palette, error) {
	p := base
	for key, hex := range colors {
		switch types.ParseCategory(key) {
		case types.CategoryPositive:
			p.Positive = hex
		case types.CategoryNegative:
			p.Negative = hex
		case types.CategoryNeutral:
			p.Neutral = hex
		default:
			return base, fmt.Errorf("%w: %q", ErrUnknownColorKey, key)
		}
	}
	return p, nil
}

// Validate checks that every palette color parses
func (p Palette) Validate() error {
	for _, hex := range []string{p.Positive, p.Negative, p.Neutral} {
		if _, err := HexToRGBA(hex, 1); err != nil {
			return err
		}
	}
	return nil
}

// Hex returns the palette color for a category, or the fallback gray
func (p Palette) Hex(c types.Category) string {
	switch c {
	case types.CategoryPositive:
		return p.Positive
	case types.CategoryNegative:
		return p.Negative
	case types.CategoryNeutral:
		return p.Neutral
	default:
		return FallbackColor
	}
}

// ColorFor maps a model label and its confidence to a color. The label is
// matched case-insensitively; unknown labels get the fallback gray. The
// confidence becomes the alpha channel unchanged.
func (p Palette) ColorFor(label string, score float64) (RGBA, error) {
	return HexToRGBA(p.Hex(types.ParseCategory(label)), score)
}
