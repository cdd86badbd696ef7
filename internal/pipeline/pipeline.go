// Package pipeline orchestrates a full optimization run: gap analysis,
// rewriting and rescoring, with progress reporting for job tracking.
package pipeline

import (
	"context"

	"github.com/jonathan/ats-optimizer/internal/gap"
	"github.com/jonathan/ats-optimizer/internal/rewriting"
	"github.com/jonathan/ats-optimizer/internal/scoring"
	"github.com/jonathan/ats-optimizer/internal/types"
	"golang.org/x/sync/errgroup"
)

// Progress receives pipeline updates. progress is a percentage in
// [0,100]; step describes the current stage.
type Progress func(progress int, step string)

// Pipeline runs optimization end to end.
type Pipeline struct {
	rewriter *rewriting.Rewriter
}

// New creates a Pipeline around the given rewriter.
func New(rewriter *rewriting.Rewriter) *Pipeline {
	return &Pipeline{rewriter: rewriter}
}

// Optimize analyzes the resume against the job description, rewrites it
// and scores the result. Gap analysis and the baseline score run
// concurrently. A nil report callback is allowed.
func (p *Pipeline) Optimize(ctx context.Context, sections types.SectionMap, jd types.JDIntelligence, report Progress) (*types.OptimizeResult, error) {
	if report == nil {
		report = func(int, string) {}
	}

	report(20, "Analyzing gaps")

	var (
		gaps     types.GapReport
		baseline types.ScoreReport
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		gaps = gap.Analyze(sections, jd)
		return gctx.Err()
	})
	g.Go(func() error {
		baseline = scoring.Score(sections, jd)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report(40, "Rewriting resume")
	optimized := p.rewriter.Rewrite(ctx, sections, jd, &gaps)
	report(70, "Rewriting resume")

	report(90, "Calculating ATS score")
	score := scoring.Score(optimized, jd)

	report(100, "Complete")
	return &types.OptimizeResult{
		OptimizedResume: optimized,
		ATSScore:        score.Score,
		BaselineScore:   baseline.Score,
		Improvements:    score.Improvements,
		RemainingGaps:   gaps.Optional,
	}, nil
}
