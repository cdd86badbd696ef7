package scoring

import (
	"strings"
	"testing"

	"github.com/jonathan/ats-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// strongResume has every required section present and an experience
// section with five strong, metric-bearing bullets.
func strongResume() types.SectionMap {
	experience := strings.Join([]string{
		"Acme Corp, Senior Engineer, 2019-2024",
		"- Developed Python microservices handling 2M requests daily on AWS infrastructure",
		"- Increased deployment frequency by 300% by building CI pipelines with Python tooling",
		"- Reduced cloud spend by 35% through AWS rightsizing and autoscaling policies",
		"- Led a team of 6 engineers delivering a platform migration to AWS",
		"- Optimized database queries cutting p99 latency by 45% across core services",
	}, "\n")

	filler := strings.Repeat("delivered measurable impact across teams and platforms ", 20)

	return types.SectionMap{
		types.SectionSummary:    "Senior software engineer with nine years of experience in Python and AWS.",
		types.SectionExperience: experience + "\n" + filler,
		types.SectionSkills:     "Python, AWS, Terraform, Docker, PostgreSQL",
		types.SectionEducation:  "BS Computer Science, State University, 2014",
	}
}

func pythonAWSJD() types.JDIntelligence {
	return types.JDIntelligence{
		Role:       "Senior Python Developer",
		Seniority:  types.SenioritySenior,
		HardSkills: []string{"Python", "AWS"},
		Keywords: types.Keywords{
			Primary:   []string{"Python", "AWS"},
			Secondary: []string{},
		},
	}
}

func TestScore_StrongResumeScoresHigh(t *testing.T) {
	report := Score(strongResume(), pythonAWSJD())

	assert.GreaterOrEqual(t, report.Score, 80)
	assert.Equal(t, 100, report.Breakdown.Keywords)
	assert.Equal(t, 100, report.Breakdown.Sections)
}

func TestScore_TerseSkillsSectionStillScoresHigh(t *testing.T) {
	// A skills section of just "Python, AWS" is under the 20-character
	// presence threshold, costing one section, but the overall score stays
	// comfortably high when everything else is strong.
	sections := strongResume()
	sections[types.SectionSkills] = "Python, AWS"

	report := Score(sections, pythonAWSJD())

	assert.Equal(t, 75, report.Breakdown.Sections)
	assert.GreaterOrEqual(t, report.Score, 80)
}

func TestScore_AlwaysInRange(t *testing.T) {
	inputs := []struct {
		name     string
		sections types.SectionMap
		jd       types.JDIntelligence
	}{
		{"both empty", types.SectionMap{}, types.JDIntelligence{}},
		{"empty sections", types.SectionMap{}, pythonAWSJD()},
		{"empty jd", strongResume(), types.JDIntelligence{}},
		{"full", strongResume(), pythonAWSJD()},
	}

	for _, tc := range inputs {
		t.Run(tc.name, func(t *testing.T) {
			report := Score(tc.sections, tc.jd)
			assert.GreaterOrEqual(t, report.Score, 0)
			assert.LessOrEqual(t, report.Score, 100)
			for _, sub := range []int{
				report.Breakdown.Keywords, report.Breakdown.Sections,
				report.Breakdown.Format, report.Breakdown.Quality,
			} {
				assert.GreaterOrEqual(t, sub, 0)
				assert.LessOrEqual(t, sub, 100)
			}
		})
	}
}

func TestScoreKeywords_EmptyUnionIsVacuouslyCompatible(t *testing.T) {
	score, notes := scoreKeywords(strongResume(), types.JDIntelligence{})

	assert.Equal(t, 100, score)
	assert.Empty(t, notes)
}

func TestScoreKeywords_SubstringMatchIsCaseInsensitive(t *testing.T) {
	sections := types.SectionMap{types.SectionSkills: "python, aws, terraform experience"}
	jd := types.JDIntelligence{HardSkills: []string{"Python", "AWS", "Kafka"}}

	score, notes := scoreKeywords(sections, jd)

	assert.Equal(t, 66, score)
	require.Len(t, notes, 2)
	assert.True(t, notes[0].positive)
	assert.Contains(t, notes[0].text, "Matched 2 keywords")
	assert.False(t, notes[1].positive)
	assert.Contains(t, notes[1].text, "Kafka")
}

func TestScoreKeywords_MonotoneUnderKeywordAppending(t *testing.T) {
	jd := pythonAWSJD()
	base := types.SectionMap{
		types.SectionSummary:    "An engineer summary that is long enough to count as present.",
		types.SectionExperience: "Did some work at some company for several years running.",
		types.SectionSkills:     "Spreadsheets",
		types.SectionEducation:  "BS Mathematics, Some University",
	}

	before := Score(base, jd)

	enriched := base.Clone()
	enriched[types.SectionSkills] = base[types.SectionSkills] + ", Python, AWS"
	after := Score(enriched, jd)

	assert.GreaterOrEqual(t, after.Breakdown.Keywords, before.Breakdown.Keywords)
}

func TestScoreSections_CountsOnlySubstantialContent(t *testing.T) {
	sections := types.SectionMap{
		types.SectionSummary:    "A summary easily longer than twenty characters.",
		types.SectionExperience: "short",
		types.SectionSkills:     "",
		types.SectionEducation:  "BS Computer Science, State University",
	}

	score, notes := scoreSections(sections)

	assert.Equal(t, 50, score)
	require.Len(t, notes, 4)
	assert.True(t, notes[0].positive)
	assert.False(t, notes[1].positive)
	assert.False(t, notes[2].positive)
	assert.True(t, notes[3].positive)
	assert.Contains(t, notes[2].text, "Skills")
}

func TestScoreFormat_PenalizesSpecialCharacters(t *testing.T) {
	sections := strongResume()
	sections[types.SectionSummary] = "│ boxed summary │"

	score, _ := scoreFormat(sections)

	assert.Equal(t, 80, score)
}

func TestScoreFormat_PenalizesImageAndTableMarkers(t *testing.T) {
	sections := strongResume()
	sections[types.SectionSummary] = sections[types.SectionSummary] + " [image]"

	score, _ := scoreFormat(sections)

	assert.Equal(t, 85, score)
}

func TestScoreFormat_ShortResumePenalized(t *testing.T) {
	sections := types.SectionMap{types.SectionSummary: "just a few words here"}

	score, notes := scoreFormat(sections)

	assert.Equal(t, 85, score)
	found := false
	for _, n := range notes {
		if strings.Contains(n.text, "too short") {
			found = true
			assert.False(t, n.positive)
		}
	}
	assert.True(t, found)
}

func TestScoreFormat_LongResumePenalized(t *testing.T) {
	sections := types.SectionMap{
		types.SectionExperience: strings.Repeat("word ", 1600),
	}

	score, _ := scoreFormat(sections)

	assert.Equal(t, 90, score)
}

func TestScoreQuality_NoExperienceScoresFifty(t *testing.T) {
	sections := types.SectionMap{
		types.SectionSummary:   "A summary long enough to be substantial for scoring.",
		types.SectionSkills:    "Python, AWS, Terraform",
		types.SectionEducation: "BS Computer Science",
	}

	report := Score(sections, pythonAWSJD())

	assert.Equal(t, 50, report.Breakdown.Quality)
	found := false
	for _, gap := range report.RemainingGaps {
		if strings.Contains(gap, "No experience section") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestScoreQuality_VerbAndMetricTiers(t *testing.T) {
	weak := types.SectionMap{
		types.SectionExperience: "worked on things\nhandled stuff\nhelped the team succeed",
	}
	score, _ := scoreQuality(weak)
	// -25 few verbs, -20 no metrics, -10 few bullets
	assert.Equal(t, 45, score)

	some := types.SectionMap{
		types.SectionExperience: "developed the platform and reduced costs by 15%\n- one bullet here",
	}
	score, _ = scoreQuality(some)
	// 2 verbs (-10), metrics present, bullets below five (-10)
	assert.Equal(t, 80, score)
}

func TestScoreQuality_StrongExperienceKeepsFullScore(t *testing.T) {
	score, notes := scoreQuality(strongResume())

	assert.Equal(t, 100, score)
	for _, n := range notes {
		assert.True(t, n.positive, "unexpected negative note: %s", n.text)
	}
}

func TestScore_NoteOrderFollowsSubScorers(t *testing.T) {
	report := Score(strongResume(), pythonAWSJD())

	require.NotEmpty(t, report.Improvements)
	// Keyword note first, then the four section notes.
	assert.Contains(t, report.Improvements[0], "Matched")
	assert.Contains(t, report.Improvements[1], "Summary section present")
}
