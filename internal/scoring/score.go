// Package scoring computes the 0-100 ATS compatibility score of a resume
// against extracted JD intelligence. Four independent sub-scores (keyword
// match, section completeness, format compatibility, content quality) are
// combined with fixed weights. The weighting assumes binary present/absent
// keyword matching; do not swap in fuzzy matching without re-deriving it.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// Sub-score weights. They sum to 1.0.
const (
	keywordWeight = 0.40
	sectionWeight = 0.20
	formatWeight  = 0.20
	qualityWeight = 0.20
)

// note is a finding emitted by a sub-scorer. Positive notes become
// improvements, negative ones remaining gaps.
type note struct {
	positive bool
	text     string
}

// Score computes the weighted compatibility score. It is total: fully
// empty sections and an empty-skill JD still produce a defined report.
func Score(sections types.SectionMap, jd types.JDIntelligence) types.ScoreReport {
	var notes []note

	keywordScore, keywordNotes := scoreKeywords(sections, jd)
	notes = append(notes, keywordNotes...)

	sectionScore, sectionNotes := scoreSections(sections)
	notes = append(notes, sectionNotes...)

	formatScore, formatNotes := scoreFormat(sections)
	notes = append(notes, formatNotes...)

	qualityScore, qualityNotes := scoreQuality(sections)
	notes = append(notes, qualityNotes...)

	total := float64(keywordScore)*keywordWeight +
		float64(sectionScore)*sectionWeight +
		float64(formatScore)*formatWeight +
		float64(qualityScore)*qualityWeight

	report := types.ScoreReport{
		Score: int(math.Round(total)),
		Breakdown: types.ScoreBreakdown{
			Keywords: keywordScore,
			Sections: sectionScore,
			Format:   formatScore,
			Quality:  qualityScore,
		},
		Improvements:  []string{},
		RemainingGaps: []string{},
	}
	for _, n := range notes {
		if n.positive {
			report.Improvements = append(report.Improvements, n.text)
		} else {
			report.RemainingGaps = append(report.RemainingGaps, n.text)
		}
	}
	return report
}

// scoreKeywords measures what fraction of the JD's keyword union (primary,
// secondary, and hard skills) appears in the resume text, as lowercase
// substring matches. An empty union scores 100: with nothing demanded, the
// resume is vacuously compatible.
func scoreKeywords(sections types.SectionMap, jd types.JDIntelligence) (int, []note) {
	allText := strings.ToLower(sections.JoinedText())

	keywords := dedupe(append(append(append([]string{},
		jd.Keywords.Primary...), jd.Keywords.Secondary...), jd.HardSkills...))
	if len(keywords) == 0 {
		return 100, nil
	}

	var matched, missing []string
	for _, keyword := range keywords {
		if strings.Contains(allText, strings.ToLower(keyword)) {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}

	score := int(float64(len(matched)) / float64(len(keywords)) * 100)

	var notes []note
	if len(matched) > 0 {
		notes = append(notes, note{positive: true, text: fmt.Sprintf(
			"Matched %d keywords: %s", len(matched), strings.Join(head(matched, 5), ", "))})
	}
	if len(missing) > 0 {
		notes = append(notes, note{positive: false, text: fmt.Sprintf(
			"Missing keywords: %s", strings.Join(head(missing, 5), ", "))})
	}
	return score, notes
}

// minSectionLength is the content length a section must exceed to count as
// present for completeness scoring.
const minSectionLength = 20

// scoreSections measures completeness of the four required sections.
func scoreSections(sections types.SectionMap) (int, []note) {
	present := 0
	notes := make([]note, 0, len(types.RequiredSections))

	for _, key := range types.RequiredSections {
		title := strings.ToUpper(key[:1]) + key[1:]
		if len(sections[key]) > minSectionLength {
			present++
			notes = append(notes, note{positive: true, text: title + " section present"})
		} else {
			notes = append(notes, note{positive: false, text: "Missing or empty " + title + " section"})
		}
	}

	score := int(float64(present) / float64(len(types.RequiredSections)) * 100)
	return score, notes
}
