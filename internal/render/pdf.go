package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/dshills/tonetint/pkg/types"
)

const (
	defaultPDFFontSize = 12.0 // points
	pxToPt             = 0.75
	ptToMM             = 0.3528
	pdfLineSpacing     = 1.6
)

// pdfFamily maps a CSS font family to one of the PDF core fonts
func pdfFamily(css string) string {
	lower := strings.ToLower(css)
	switch {
	case strings.Contains(lower, "mono"), strings.Contains(lower, "courier"):
		return "Courier"
	case strings.Contains(lower, "sans"), strings.Contains(lower, "helvetica"), strings.Contains(lower, "arial"):
		return "Helvetica"
	case strings.Contains(lower, "serif"), strings.Contains(lower, "times"), strings.Contains(lower, "georgia"):
		return "Times"
	default:
		return "Helvetica"
	}
}

// PDF writes segments as an A4 document. Each chunk is drawn on a background
// of its sentiment color, blended onto white by its confidence, since PDF
// core fonts have no notion of CSS alpha.
func PDF(w io.Writer, segments []types.Segment, palette Palette, font Font) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("ToneTint Output", true)
	pdf.SetCreator("tonetint", true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	family := pdfFamily(font.Family)

	pdf.SetFont(family, "B", 16)
	pdf.CellFormat(0, 10, DocumentHeading, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	size := defaultPDFFontSize
	if font.Size > 0 {
		size = float64(font.Size) * pxToPt
	}
	pdf.SetFont(family, "", size)
	lineHeight := size * ptToMM * pdfLineSpacing

	left, _, right, _ := pdf.GetMargins()
	pageWidth, _ := pdf.GetPageSize()
	maxX := pageWidth - right
	lineWidth := maxX - left

	for _, seg := range segments {
		color, err := palette.ColorFor(seg.Result.Label, seg.Result.Score)
		if err != nil {
			return fmt.Errorf("render chunk %d: %w", seg.Chunk.Index, err)
		}
		r, g, b := color.Blend(255, 255, 255)
		pdf.SetFillColor(int(r), int(g), int(b))

		text := tr(seg.Chunk.Text + " ")
		width := pdf.GetStringWidth(text)

		if width > lineWidth {
			if pdf.GetX() > left {
				pdf.Ln(lineHeight)
			}
			pdf.MultiCell(lineWidth, lineHeight, text, "", "L", true)
			continue
		}
		if pdf.GetX()+width > maxX {
			pdf.Ln(lineHeight)
		}
		pdf.CellFormat(width, lineHeight, text, "", 0, "L", true, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
