package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/jonathan/ats-optimizer/internal/rewriting"
	"github.com/jonathan/ats-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureSections() types.SectionMap {
	return types.SectionMap{
		types.SectionSummary: "Engineer with 6 years of experience in backend systems.",
		types.SectionExperience: strings.Join([]string{
			"Acme Corp | Backend Engineer",
			"- responsible for python services handling 1M requests",
			"- worked on aws deployments",
		}, "\n"),
		types.SectionSkills:    "Python, AWS, PostgreSQL",
		types.SectionEducation: "BS Computer Science",
	}
}

func fixtureJD() types.JDIntelligence {
	return types.JDIntelligence{
		Role:       "Backend Engineer",
		Seniority:  types.SeniorityMid,
		HardSkills: []string{"python", "aws"},
		Keywords: types.Keywords{
			Primary:   []string{"python", "aws"},
			Secondary: []string{"backend"},
		},
	}
}

func TestOptimize_ProducesResult(t *testing.T) {
	p := New(rewriting.New(nil))

	result, err := p.Optimize(context.Background(), fixtureSections(), fixtureJD(), nil)
	require.NoError(t, err)

	assert.NotEmpty(t, result.OptimizedResume[types.SectionSummary])
	assert.NotEmpty(t, result.OptimizedResume[types.SectionExperience])
	assert.GreaterOrEqual(t, result.ATSScore, 0)
	assert.LessOrEqual(t, result.ATSScore, 100)
	assert.GreaterOrEqual(t, result.BaselineScore, 0)
	assert.NotNil(t, result.Improvements)
	assert.NotNil(t, result.RemainingGaps)
}

func TestOptimize_ReportsProgressInOrder(t *testing.T) {
	p := New(rewriting.New(nil))

	type update struct {
		progress int
		step     string
	}
	var updates []update
	report := func(progress int, step string) {
		updates = append(updates, update{progress, step})
	}

	_, err := p.Optimize(context.Background(), fixtureSections(), fixtureJD(), report)
	require.NoError(t, err)

	require.Len(t, updates, 5)
	assert.Equal(t, update{20, "Analyzing gaps"}, updates[0])
	assert.Equal(t, update{40, "Rewriting resume"}, updates[1])
	assert.Equal(t, update{70, "Rewriting resume"}, updates[2])
	assert.Equal(t, update{90, "Calculating ATS score"}, updates[3])
	assert.Equal(t, update{100, "Complete"}, updates[4])
}

func TestOptimize_CanceledContext(t *testing.T) {
	p := New(rewriting.New(nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Optimize(ctx, fixtureSections(), fixtureJD(), nil)
	assert.Error(t, err)
}

func TestOptimize_RewrittenBulletsKeepMetrics(t *testing.T) {
	p := New(rewriting.New(nil))

	result, err := p.Optimize(context.Background(), fixtureSections(), fixtureJD(), nil)
	require.NoError(t, err)

	assert.Contains(t, result.OptimizedResume[types.SectionExperience], "1M requests")
}
