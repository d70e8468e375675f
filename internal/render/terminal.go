package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dshills/tonetint/pkg/types"
)

// ANSI escape codes
const (
	ANSIGreen   = "\033[32m"
	ANSIRed     = "\033[31m"
	ANSIYellow  = "\033[33m"
	ANSIDefault = "\033[39m"
	ANSIReset   = "\033[0m"
)

// Neutral terminal color choices
const (
	NeutralYellow  = "yellow"
	NeutralDefault = "default"
)

// TerminalOptions controls terminal rendering
type TerminalOptions struct {
	Neutral string // NeutralYellow (default) or NeutralDefault
	NoColor bool   // Print plain text, e.g. when stdout is not a terminal
}

// TerminalColor returns the escape code for a category. Anything that is
// neither positive nor negative uses the neutral color.
func TerminalColor(c types.Category, neutral string) string {
	switch c {
	case types.CategoryPositive:
		return ANSIGreen
	case types.CategoryNegative:
		return ANSIRed
	default:
		if neutral == NeutralDefault {
			return ANSIDefault
		}
		return ANSIYellow
	}
}

// Terminal prints one colored line per chunk, each followed by a reset code
func Terminal(w io.Writer, segments []types.Segment, opts TerminalOptions) error {
	bw := bufio.NewWriter(w)

	for _, seg := range segments {
		var err error
		if opts.NoColor {
			_, err = fmt.Fprintf(bw, "%s\n", seg.Chunk.Text)
		} else {
			code := TerminalColor(seg.Result.Category(), opts.Neutral)
			_, err = fmt.Fprintf(bw, "%s%s%s\n", code, seg.Chunk.Text, ANSIReset)
		}
		if err != nil {
			return fmt.Errorf("write chunk %d: %w", seg.Chunk.Index, err)
		}
	}

	return bw.Flush()
}
