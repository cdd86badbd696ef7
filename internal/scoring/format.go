package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// Format penalties and word-count bounds.
const (
	specialCharPenalty = 20
	imageTablePenalty  = 15
	tooShortPenalty    = 15
	tooLongPenalty     = 10
	minWordCount       = 200
	maxWordCount       = 1500
)

var (
	// Box-drawing characters survive naive PDF extraction of tables and
	// reliably break ATS parsers.
	specialChars    = regexp.MustCompile(`[│║╔╗╚╝═─┌┐└┘├┤┬┴┼]`)
	imageTableToken = regexp.MustCompile(`(?i)\[image\]|\[table\]`)
)

// scoreFormat checks ATS format compatibility: problematic characters,
// embedded image/table markers, and overall length. Starts at 100 and
// subtracts per finding, floored at zero.
func scoreFormat(sections types.SectionMap) (int, []note) {
	allText := sections.JoinedText()
	score := 100
	var notes []note

	if specialChars.MatchString(allText) {
		score -= specialCharPenalty
		notes = append(notes, note{positive: false, text: "Contains special characters that may break ATS parsing"})
	} else {
		notes = append(notes, note{positive: true, text: "No problematic special characters"})
	}

	if imageTableToken.MatchString(allText) {
		score -= imageTablePenalty
		notes = append(notes, note{positive: false, text: "Contains images or tables (not ATS-friendly)"})
	}

	wordCount := len(strings.Fields(allText))
	switch {
	case wordCount < minWordCount:
		score -= tooShortPenalty
		notes = append(notes, note{positive: false, text: "Resume too short (under 200 words)"})
	case wordCount > maxWordCount:
		score -= tooLongPenalty
		notes = append(notes, note{positive: false, text: "Resume may be too long (over 1500 words)"})
	default:
		notes = append(notes, note{positive: true, text: "Good resume length"})
	}

	if score < 0 {
		score = 0
	}
	return score, notes
}
