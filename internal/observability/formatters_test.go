package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/ats-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintJDIntelligence(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJDIntelligence(&types.JDIntelligence{
		Role:       "Backend Engineer",
		Seniority:  types.SenioritySenior,
		HardSkills: []string{"Python", "AWS", "Docker", "Kubernetes", "Terraform", "Go"},
		SoftSkills: []string{"Communication"},
		Keywords:   types.Keywords{Primary: []string{"python", "aws"}},
	})

	out := buf.String()
	assert.Contains(t, out, "JOB DESCRIPTION INTELLIGENCE")
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "senior")
	assert.Contains(t, out, "... and 1 more")
}

func TestPrintJDIntelligence_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJDIntelligence(nil)

	assert.Empty(t, buf.String())
}

func TestPrintGapReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGapReport(&types.GapReport{
		Critical:      []string{"kubernetes"},
		Optional:      []string{"terraform"},
		MatchedSkills: []string{"python"},
		MissingCount:  2,
		WeakBullets: []types.WeakBullet{
			{Index: 0, Text: "did stuff", Issues: []string{types.IssueMissingActionVerb}},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "GAP ANALYSIS")
	assert.Contains(t, out, "Missing requirements: 2")
	assert.Contains(t, out, "kubernetes")
	assert.Contains(t, out, "missing_action_verb")
}

func TestPrintScoreReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreReport(&types.ScoreReport{
		Score: 82,
		Breakdown: types.ScoreBreakdown{
			Keywords: 90,
			Sections: 75,
			Format:   100,
			Quality:  70,
		},
		Improvements: []string{"Matched 5 keywords"},
	})

	out := buf.String()
	assert.Contains(t, out, "ATS SCORE")
	assert.Contains(t, out, "82/100")
	assert.Contains(t, out, "Keywords:     90")
}
