package gap

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

const (
	// minBulletLength is the fragment length below which a split fragment
	// is ignored entirely (headers, stray punctuation).
	minBulletLength = 20
	// shortBulletLength flags fragments that are real bullets but too thin
	// to carry impact.
	shortBulletLength = 50
	// maxWeakBullets caps the report.
	maxWeakBullets = 5
	// bulletPreviewLength is where flagged text is truncated for display.
	bulletPreviewLength = 100
)

var (
	bulletDelimiter = regexp.MustCompile(`\n[-•]\s*|\n\d+\.\s*`)
	actionVerbLead  = regexp.MustCompile(`(?i)^(led|developed|built|created|managed|designed|implemented|achieved|increased|reduced|delivered|launched|optimized)`)
	metricPattern   = regexp.MustCompile(`(?i)\d+%|\d+x|\$\d+|\d+ (users|customers|team|projects)`)
	passivePattern  = regexp.MustCompile(`(?i)\b(was|were|been|being)\s+\w+ed\b`)
)

// identifyWeakBullets splits the experience section into bullet fragments
// and flags stylistic deficiencies on each: no leading action verb, no
// quantified metric, passive voice, or too short. Fragments with no issues
// are not reported. At most the first maxWeakBullets flagged fragments are
// returned, in original order, with long text truncated for display.
func identifyWeakBullets(experience string) []types.WeakBullet {
	var weak []types.WeakBullet

	for i, fragment := range bulletDelimiter.Split(experience, -1) {
		fragment = strings.TrimSpace(fragment)
		if len([]rune(fragment)) < minBulletLength {
			continue
		}

		var issues []string
		if !actionVerbLead.MatchString(fragment) {
			issues = append(issues, types.IssueMissingActionVerb)
		}
		if !metricPattern.MatchString(fragment) {
			issues = append(issues, types.IssueNoMetrics)
		}
		if passivePattern.MatchString(fragment) {
			issues = append(issues, types.IssuePassiveVoice)
		}
		if len([]rune(fragment)) < shortBulletLength {
			issues = append(issues, types.IssueTooShort)
		}

		if len(issues) == 0 {
			continue
		}
		weak = append(weak, types.WeakBullet{
			Index:  i,
			Text:   previewText(fragment),
			Issues: issues,
		})
		if len(weak) == maxWeakBullets {
			break
		}
	}

	return weak
}

// previewText truncates flagged text with an ellipsis marker.
func previewText(text string) string {
	runes := []rune(text)
	if len(runes) <= bulletPreviewLength {
		return text
	}
	return string(runes[:bulletPreviewLength]) + "..."
}
