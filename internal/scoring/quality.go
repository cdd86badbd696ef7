package scoring

import (
	"fmt"
	"regexp"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// Quality thresholds and penalties, evaluated on the experience section.
const (
	noExperienceScore = 50
	strongVerbCount   = 5
	someVerbCount     = 2
	someVerbPenalty   = 10
	fewVerbPenalty    = 25
	noMetricsPenalty  = 20
	minBulletCount    = 5
	fewBulletsPenalty = 10
)

var (
	actionVerbs   = regexp.MustCompile(`(?i)\b(led|developed|built|created|managed|designed|implemented|achieved|increased|reduced|delivered|launched|optimized)\b`)
	metricTokens  = regexp.MustCompile(`(?i)\d+%|\$[\d,]+|\d+ (users|customers|projects|team members)`)
	bulletMarkers = regexp.MustCompile(`\n[-•]\s`)
)

// scoreQuality evaluates writing quality of the experience section: action
// verb usage, quantified metrics, and bullet structure. An absent
// experience section short-circuits to a fixed midpoint score.
func scoreQuality(sections types.SectionMap) (int, []note) {
	experience := sections[types.SectionExperience]
	if experience == "" {
		return noExperienceScore, []note{{positive: false, text: "No experience section to evaluate"}}
	}

	score := 100
	var notes []note

	verbCount := len(actionVerbs.FindAllString(experience, -1))
	switch {
	case verbCount >= strongVerbCount:
		notes = append(notes, note{positive: true, text: fmt.Sprintf("Strong use of action verbs (%d found)", verbCount)})
	case verbCount >= someVerbCount:
		score -= someVerbPenalty
		notes = append(notes, note{positive: true, text: fmt.Sprintf("Some action verbs used (%d found)", verbCount)})
	default:
		score -= fewVerbPenalty
		notes = append(notes, note{positive: false, text: "Few action verbs - bullets may be weak"})
	}

	metricCount := len(metricTokens.FindAllString(experience, -1))
	if metricCount > 0 {
		notes = append(notes, note{positive: true, text: fmt.Sprintf("Contains quantifiable achievements (%d metrics)", metricCount)})
	} else {
		score -= noMetricsPenalty
		notes = append(notes, note{positive: false, text: "No metrics/numbers to quantify impact"})
	}

	bulletCount := len(bulletMarkers.FindAllString(experience, -1))
	if bulletCount >= minBulletCount {
		notes = append(notes, note{positive: true, text: fmt.Sprintf("Well-structured with %d bullet points", bulletCount)})
	} else {
		score -= fewBulletsPenalty
		notes = append(notes, note{positive: false, text: "Could use more bullet points for readability"})
	}

	if score < 0 {
		score = 0
	}
	return score, notes
}
