package rendering

import (
	"bytes"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// Font sizes in half-points.
const (
	docxHeadingSize = "22"
	docxBodySize    = "20"
	docxScoreSize   = "18"
)

const docxHeadingColor = "2C5282"

// RenderDOCX produces a Word document of the resume with the ATS score
// noted in the top right corner.
func RenderDOCX(sections types.SectionMap, atsScore int) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	score := doc.AddParagraph().Justification("right")
	score.AddText(formatScoreLine(atsScore)).Size(docxScoreSize).Italic()

	for _, key := range sectionOrder {
		content := sections[key]
		if content == "" {
			continue
		}

		heading := doc.AddParagraph()
		heading.AddText(sectionTitles[key]).Size(docxHeadingSize).Color(docxHeadingColor).Bold()

		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if rest, ok := strings.CutPrefix(line, "-"); ok {
				line = "• " + strings.TrimSpace(rest)
			}
			doc.AddParagraph().AddText(line).Size(docxBodySize)
		}

		doc.AddParagraph()
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, &RenderError{Format: "docx", Cause: err}
	}
	return buf.Bytes(), nil
}
