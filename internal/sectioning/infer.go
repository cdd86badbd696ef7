package sectioning

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// maxInferredSummaryLines caps how much leading prose is attributed to the
// summary when no section headers exist.
const maxInferredSummaryLines = 5

var (
	yearToken = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	techHint  = regexp.MustCompile(`(?i)(Python|Java|SQL|AWS|React|Node)`)
)

// inferSections guesses sections from content shape when no headers were
// detected. Lines carrying a 4-digit year go to experience, lines naming a
// known technology go to skills, and the first few remaining lines become
// the summary. The heuristic trades recall for a guaranteed non-empty
// result on unstructured input.
func inferSections(text string) types.SectionMap {
	sections := make(types.SectionMap)

	var experienceLines, skillLines, otherLines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case yearToken.MatchString(line):
			experienceLines = append(experienceLines, line)
		case techHint.MatchString(line):
			skillLines = append(skillLines, line)
		default:
			otherLines = append(otherLines, line)
		}
	}

	if len(experienceLines) > 0 {
		sections[types.SectionExperience] = strings.Join(experienceLines, "\n")
	}
	if len(skillLines) > 0 {
		sections[types.SectionSkills] = strings.Join(skillLines, "\n")
	}
	if len(otherLines) > 0 {
		if len(otherLines) > maxInferredSummaryLines {
			otherLines = otherLines[:maxInferredSummaryLines]
		}
		sections[types.SectionSummary] = strings.Join(otherLines, "\n")
	}

	return sections
}
