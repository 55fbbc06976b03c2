package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// headingSizes maps markdown heading level to font size in points.
var headingSizes = map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}

var (
	italicRe     = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	inlineCodeRe = regexp.MustCompile("`([^`]+)`")
	linkRe       = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
	numberedRe   = regexp.MustCompile(`^\d+\.\s`)
)

// renderPDF lays out markdown as an A4 portrait PDF and returns its bytes.
// Headings shrink with their level, fenced code renders monospace on a gray
// background, inline markdown syntax is stripped.
func renderPDF(markdown string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	var inCodeBlock bool
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "```"):
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
		case inCodeBlock:
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, tr(line), "", "L", true)
		case trimmed == "":
			pdf.Ln(3)
		case strings.HasPrefix(line, "#"):
			text := strings.TrimSpace(strings.TrimLeft(line, "# "))
			renderHeading(pdf, tr(cleanInlineMarkdown(text)),
				headingLevel(line))
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			pdf.SetFont("Helvetica", "", 11)
			text := "• " + cleanInlineMarkdown(trimmed[2:])
			pdf.MultiCell(0, 5.5, tr(text), "", "L", false)
		case numberedRe.MatchString(trimmed):
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 5.5, tr(cleanInlineMarkdown(trimmed)), "", "L",
				false)
		default:
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 5.5, tr(cleanInlineMarkdown(line)), "", "L",
				false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed output pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func headingLevel(line string) int {
	var level int
	for _, r := range line {
		if r != '#' {
			break
		}
		level++
	}
	return level
}

func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	size, ok := headingSizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}

// cleanInlineMarkdown strips inline markdown syntax, keeping the text.
func cleanInlineMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = italicRe.ReplaceAllString(text, " $1 ")
	text = inlineCodeRe.ReplaceAllString(text, "$1")
	text = linkRe.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
