package rendering

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// highlightOrder fixes the sections included in the marked-up text view.
var highlightOrder = []string{
	types.SectionSummary,
	types.SectionExperience,
	types.SectionSkills,
	types.SectionEducation,
}

// FormatWithKeywords renders the resume as markdown-style text, wrapping
// case-insensitive keyword occurrences in double asterisks.
func FormatWithKeywords(sections types.SectionMap, keywords []string) string {
	var lines []string

	for _, key := range highlightOrder {
		content := sections[key]
		if content == "" {
			continue
		}

		for _, keyword := range keywords {
			pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(keyword))
			content = pattern.ReplaceAllString(content, "**"+keyword+"**")
		}

		lines = append(lines, "## "+sectionHeading(key))
		lines = append(lines, content)
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// RenderText produces a plain-text rendition of the resume.
func RenderText(sections types.SectionMap, atsScore int) []byte {
	var b strings.Builder
	b.WriteString(formatScoreLine(atsScore))
	b.WriteString("\n\n")

	for _, key := range sectionOrder {
		content := sections[key]
		if content == "" {
			continue
		}
		b.WriteString(sectionTitles[key])
		b.WriteString("\n")
		b.WriteString(content)
		b.WriteString("\n\n")
	}

	return []byte(strings.TrimRight(b.String(), "\n") + "\n")
}

func sectionHeading(key string) string {
	if key == "" {
		return key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}
