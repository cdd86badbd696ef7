package gap

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/ats-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jdFixture() types.JDIntelligence {
	return types.JDIntelligence{
		Role:       "Senior Python Developer",
		Seniority:  types.SenioritySenior,
		HardSkills: []string{"Python", "AWS", "Terraform", "Docker"},
		Keywords: types.Keywords{
			Primary:   []string{"Python", "AWS"},
			Secondary: []string{"Terraform"},
		},
	}
}

func TestAnalyze_CriticalAndOptionalGaps(t *testing.T) {
	sections := types.SectionMap{
		types.SectionSummary:    "Engineer with solid fundamentals.",
		types.SectionExperience: "Built internal services.",
		types.SectionSkills:     "Python",
		types.SectionEducation:  "BS CS",
	}

	report := Analyze(sections, jdFixture())

	assert.Equal(t, []string{"aws"}, report.Critical)
	assert.Equal(t, []string{"terraform", "docker"}, report.Optional)
	assert.Equal(t, []string{"python"}, report.MatchedSkills)
	// missing primary (aws) + missing hard (aws, terraform, docker)
	assert.Equal(t, 4, report.MissingCount)
}

func TestAnalyze_FullMatchLeavesNoGaps(t *testing.T) {
	sections := types.SectionMap{
		types.SectionSummary:    "Cloud engineer.",
		types.SectionExperience: "Deployed python services on aws with terraform and docker.",
		types.SectionSkills:     "Python, AWS, Terraform, Docker",
		types.SectionEducation:  "BS CS",
	}

	report := Analyze(sections, jdFixture())

	assert.Empty(t, report.Critical)
	assert.Empty(t, report.Optional)
	assert.Equal(t, 0, report.MissingCount)
	assert.ElementsMatch(t, []string{"python", "aws", "terraform", "docker"}, report.MatchedSkills)
}

func TestAnalyze_EmptySectionsYieldEmptyMatches(t *testing.T) {
	sections := types.SectionMap{
		types.SectionSummary:    "",
		types.SectionExperience: "",
		types.SectionSkills:     "",
		types.SectionEducation:  "",
	}

	report := Analyze(sections, jdFixture())

	assert.Empty(t, report.MatchedSkills)
	assert.Empty(t, report.WeakBullets)
	assert.Equal(t, []string{"python", "aws"}, report.Critical)
}

func TestAnalyze_EmptyJDYieldsEmptyReport(t *testing.T) {
	sections := types.SectionMap{
		types.SectionSkills: "Python, Go",
	}

	report := Analyze(sections, types.JDIntelligence{})

	assert.Empty(t, report.Critical)
	assert.Empty(t, report.Optional)
	assert.Empty(t, report.MatchedSkills)
	assert.Equal(t, 0, report.MissingCount)
}

func TestAnalyze_CriticalCappedAtTen(t *testing.T) {
	jd := types.JDIntelligence{}
	for i := 0; i < 15; i++ {
		jd.Keywords.Primary = append(jd.Keywords.Primary, fmt.Sprintf("skill%d", i))
	}

	report := Analyze(types.SectionMap{}, jd)

	assert.Len(t, report.Critical, 10)
}

func TestIdentifyWeakBullets_FlagsIssues(t *testing.T) {
	experience := strings.Join([]string{
		"Acme Corp, Software Engineer",
		"- Responsible for maintaining the legacy system",
		"- Increased revenue by 25% through optimization efforts and delivery",
		"- was handed tasks and they were completed by me as needed",
	}, "\n")

	weak := identifyWeakBullets(experience)

	require.Len(t, weak, 2)

	assert.Equal(t, 1, weak[0].Index)
	assert.Contains(t, weak[0].Issues, types.IssueMissingActionVerb)
	assert.Contains(t, weak[0].Issues, types.IssueNoMetrics)
	assert.Contains(t, weak[0].Issues, types.IssueTooShort)

	assert.Equal(t, 3, weak[1].Index)
	assert.Contains(t, weak[1].Issues, types.IssuePassiveVoice)
	assert.Contains(t, weak[1].Issues, types.IssueNoMetrics)
	assert.NotContains(t, weak[1].Issues, types.IssueTooShort)
}

func TestIdentifyWeakBullets_CleanBulletNotReported(t *testing.T) {
	weak := identifyWeakBullets("header\n- Increased revenue by 25% through optimization efforts and delivery")

	assert.Empty(t, weak)
}

func TestIdentifyWeakBullets_SkipsShortFragments(t *testing.T) {
	weak := identifyWeakBullets("title\n- tiny\n- also small")

	assert.Empty(t, weak)
}

func TestIdentifyWeakBullets_CappedAtFive(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("header line")
	for i := 0; i < 8; i++ {
		sb.WriteString(fmt.Sprintf("\n- weak fragment number %d with enough length to qualify", i))
	}

	weak := identifyWeakBullets(sb.String())

	assert.Len(t, weak, 5)
}

func TestIdentifyWeakBullets_TruncatesLongText(t *testing.T) {
	long := "maintained " + strings.Repeat("very ", 30) + "old systems"
	weak := identifyWeakBullets("header\n- " + long)

	require.Len(t, weak, 1)
	assert.True(t, strings.HasSuffix(weak[0].Text, "..."))
	assert.Len(t, []rune(weak[0].Text), 103)
}

func TestIdentifyWeakBullets_NumberedListDelimiters(t *testing.T) {
	weak := identifyWeakBullets("role summary\n1. handled various responsibilities across the team")

	require.Len(t, weak, 1)
	assert.Contains(t, weak[0].Issues, types.IssueMissingActionVerb)
}

func TestAnalyze_MatchedSkillsCappedAtFifteen(t *testing.T) {
	// All seven category patterns firing still stays under the cap; this
	// guards the truncation path with a wide skills section.
	sections := types.SectionMap{
		types.SectionSkills: "python java javascript typescript go rust ruby php react angular vue django flask spring aws azure gcp docker kubernetes terraform postgresql mysql mongodb redis elasticsearch git linux agile scrum sql html css rest api microservices",
	}
	jd := types.JDIntelligence{HardSkills: []string{
		"python", "java", "javascript", "typescript", "go", "rust", "ruby", "php",
		"react", "angular", "vue", "django", "flask", "spring", "aws", "azure",
		"gcp", "docker", "kubernetes", "terraform",
	}}

	report := Analyze(sections, jd)

	assert.Len(t, report.MatchedSkills, 15)
}
