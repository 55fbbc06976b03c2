package translate

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Letter page layout of the translated output, in points.
const (
	pageMargin = 36 // half an inch
	fontSize   = 10
	lineHeight = 12
)

// WritePDF lays translated pages out as a Letter-size PDF at path. Each
// source page starts a new output page and its text is written line by
// line; text overflowing the bottom margin continues on an additional
// page, so one source page yields one or more output pages, in order.
func WritePDF(path string, pages []string) error {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetFont("Helvetica", "", fontSize)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	_, pageHeight := pdf.GetPageSize()
	bottom := pageHeight - pageMargin

	for _, page := range pages {
		pdf.AddPage()
		for _, line := range strings.Split(page, "\n") {
			if pdf.GetY()+lineHeight > bottom {
				pdf.AddPage()
			}
			pdf.CellFormat(0, lineHeight, tr(line), "", 2, "L", false, 0, "")
		}
	}

	if len(pages) == 0 {
		pdf.AddPage()
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed write pdf %q: %w", path, err)
	}
	return nil
}
