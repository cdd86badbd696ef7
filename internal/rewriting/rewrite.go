// Package rewriting rewrites resume sections for ATS compatibility.
//
// When an LLM client is available the summary and experience bullets are
// rewritten by the model and checked against a fabrication guard; any
// failure falls back to deterministic rule-based rewriting, so Rewrite
// always produces a result.
package rewriting

import (
	"context"
	"log"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/llm"
	"github.com/jonathan/ats-optimizer/internal/types"
)

const (
	maxSummaryKeywords = 5
	maxPromptSkills    = 5
	maxBulletKeywords  = 8
	summarySkillsLimit = 100
)

// Rewriter rewrites resume sections against a target job description.
type Rewriter struct {
	client llm.Client
}

// New creates a Rewriter. A nil client selects rule-based rewriting only.
func New(client llm.Client) *Rewriter {
	return &Rewriter{client: client}
}

// Rewrite returns an optimized copy of sections. Summary, experience and
// skills are rewritten; education, projects and certifications pass
// through unchanged. Facts are preserved: no new skills, employers or
// metrics are introduced.
func (r *Rewriter) Rewrite(ctx context.Context, sections types.SectionMap, jd types.JDIntelligence, gaps *types.GapReport) types.SectionMap {
	optimized := types.SectionMap{}

	if summary := sections[types.SectionSummary]; strings.TrimSpace(summary) != "" {
		optimized[types.SectionSummary] = r.rewriteSummary(ctx, summary, jd)
	} else {
		optimized[types.SectionSummary] = generateSummary(sections, jd)
	}

	if experience := sections[types.SectionExperience]; experience != "" {
		optimized[types.SectionExperience] = r.rewriteExperience(ctx, experience, jd, gaps)
	} else {
		optimized[types.SectionExperience] = ""
	}

	if skills := sections[types.SectionSkills]; skills != "" {
		optimized[types.SectionSkills] = reorderSkills(skills, jd)
	} else {
		optimized[types.SectionSkills] = ""
	}

	optimized[types.SectionEducation] = sections[types.SectionEducation]

	if projects := sections[types.SectionProjects]; projects != "" {
		optimized[types.SectionProjects] = projects
	}
	if certs := sections[types.SectionCertifications]; certs != "" {
		optimized[types.SectionCertifications] = certs
	}

	return optimized
}

func (r *Rewriter) rewriteSummary(ctx context.Context, summary string, jd types.JDIntelligence) string {
	keywords := head(jd.Keywords.Primary, maxSummaryKeywords)

	if r.client != nil {
		rewritten, err := r.llmRewriteSummary(ctx, summary, jd, keywords)
		if err == nil && validateRewrite(summary, rewritten) {
			return rewritten
		}
		if err != nil {
			log.Printf("[rewriting] summary rewrite failed, using rules: %v", err)
		}
	}

	return ruleBasedSummary(summary, keywords)
}

// rewriteExperience rewrites bullet lines and keeps headers (company and
// role lines) untouched. Bullets are sent to the model as a single batch.
func (r *Rewriter) rewriteExperience(ctx context.Context, experience string, jd types.JDIntelligence, gaps *types.GapReport) string {
	lines := strings.Split(experience, "\n")

	type slot struct {
		line   int
		bullet string
	}
	var slots []slot
	out := make([]string, 0, len(lines))

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if bullet, ok := stripBulletMarker(line); ok {
			slots = append(slots, slot{line: len(out), bullet: bullet})
			out = append(out, "") // filled in below
			continue
		}
		out = append(out, line)
	}

	keywords := bulletKeywords(jd, gaps)

	bullets := make([]string, len(slots))
	for i, s := range slots {
		bullets[i] = s.bullet
	}

	rewritten := r.rewriteBullets(ctx, bullets, keywords)
	for i, s := range slots {
		out[s.line] = "- " + rewritten[i]
	}

	return strings.Join(out, "\n")
}

// rewriteBullets returns one rewritten bullet per input bullet. Model
// output that trips the fabrication guard is replaced per bullet by the
// rule-based rewrite.
func (r *Rewriter) rewriteBullets(ctx context.Context, bullets []string, keywords []string) []string {
	out := make([]string, len(bullets))

	var llmBullets []string
	if r.client != nil && len(bullets) > 0 {
		var err error
		llmBullets, err = r.llmRewriteBullets(ctx, bullets, keywords)
		if err != nil {
			log.Printf("[rewriting] bullet rewrite failed, using rules: %v", err)
			llmBullets = nil
		}
	}

	for i, bullet := range bullets {
		if llmBullets != nil {
			candidate := strings.TrimSpace(strings.Trim(strings.TrimSpace(llmBullets[i]), "-•\"'"))
			if candidate != "" && validateRewrite(bullet, candidate) {
				out[i] = candidate
				continue
			}
		}
		out[i] = ruleBasedBullet(bullet, keywords)
	}

	return out
}

// bulletKeywords builds the target keyword list for bullet rewriting:
// missing critical skills first, then primary keywords and hard skills.
func bulletKeywords(jd types.JDIntelligence, gaps *types.GapReport) []string {
	seen := make(map[string]bool)
	var keywords []string
	add := func(list []string) {
		for _, kw := range list {
			key := strings.ToLower(kw)
			if !seen[key] {
				seen[key] = true
				keywords = append(keywords, kw)
			}
		}
	}
	if gaps != nil {
		add(gaps.Critical)
	}
	add(jd.Keywords.Primary)
	add(jd.HardSkills)
	return head(keywords, maxBulletKeywords)
}

// reorderSkills moves skills the job description asks for to the front.
func reorderSkills(skills string, jd types.JDIntelligence) string {
	entries := skillEntryPattern.FindAllString(skills, -1)

	var list []string
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if len(entry) > 1 {
			list = append(list, entry)
		}
	}

	targets := make(map[string]bool)
	for _, s := range jd.HardSkills {
		targets[strings.ToLower(s)] = true
	}
	for _, kw := range jd.Keywords.Primary {
		targets[strings.ToLower(kw)] = true
	}

	var matching, other []string
	for _, s := range list {
		if targets[strings.ToLower(s)] {
			matching = append(matching, s)
		} else {
			other = append(other, s)
		}
	}

	return strings.Join(append(matching, other...), ", ")
}

// generateSummary builds a summary when the resume has none.
func generateSummary(sections types.SectionMap, jd types.JDIntelligence) string {
	role := jd.Role
	if role == "" {
		role = "professional"
	}
	skills := sections[types.SectionSkills]
	return "Experienced " + role + " with expertise in " + truncateRunes(skills, summarySkillsLimit) + "..."
}

func head(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
