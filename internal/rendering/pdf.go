package rendering

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/jonathan/ats-optimizer/internal/types"
)

const (
	pdfMargin      = 25.0
	pdfHeadingSize = 12.0
	pdfBodySize    = 10.0
	pdfScoreSize   = 9.0
	pdfLineHeight  = 5.5
)

// RenderPDF produces a letter-format PDF of the resume with the ATS
// score noted in the top right corner.
func RenderPDF(sections types.SectionMap, atsScore int) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "I", pdfScoreSize)
	pdf.SetTextColor(113, 128, 150)
	pdf.CellFormat(0, 5, ascii(formatScoreLine(atsScore)), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	for _, key := range sectionOrder {
		content := sections[key]
		if content == "" {
			continue
		}

		pdf.SetFont("Helvetica", "B", pdfHeadingSize)
		pdf.SetTextColor(44, 82, 130)
		pdf.CellFormat(0, 7, ascii(sectionTitles[key]), "B", 1, "L", false, 0, "")
		pdf.Ln(2)

		pdf.SetFont("Helvetica", "", pdfBodySize)
		pdf.SetTextColor(0, 0, 0)
		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if rest, ok := strings.CutPrefix(line, "-"); ok {
				line = "* " + strings.TrimSpace(rest)
			}
			pdf.MultiCell(0, pdfLineHeight, ascii(line), "", "L", false)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Format: "pdf", Cause: err}
	}
	return buf.Bytes(), nil
}

func formatScoreLine(atsScore int) string {
	return fmt.Sprintf("ATS Compatibility Score: %d/100", atsScore)
}

// ascii downgrades characters outside the core font's coverage.
func ascii(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 128 {
			b.WriteRune(r)
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}
