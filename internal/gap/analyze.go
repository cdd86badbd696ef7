// Package gap compares segmented resume sections against extracted JD
// intelligence and reports missing skills, matched skills, and weak
// experience bullets. All comparisons are lowercase whole-word set
// operations; output ordering follows scan discovery order so truncation is
// reproducible.
package gap

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

const (
	maxCriticalGaps  = 10
	maxOptionalGaps  = 10
	maxMatchedSkills = 15
)

// resumeSkillPatterns is the narrower, category-grouped technology scan
// applied to resume text. Matches are collected lowercase in pattern order.
var resumeSkillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(python|java|javascript|typescript|c\+\+|c#|go|rust|ruby|php)\b`),
	regexp.MustCompile(`(?i)\b(react|angular|vue|node\.?js|django|flask|spring|\.net)\b`),
	regexp.MustCompile(`(?i)\b(aws|azure|gcp|docker|kubernetes|terraform)\b`),
	regexp.MustCompile(`(?i)\b(postgresql|mysql|mongodb|redis|elasticsearch)\b`),
	regexp.MustCompile(`(?i)\b(git|linux|agile|scrum|ci/cd)\b`),
	regexp.MustCompile(`(?i)\b(machine learning|deep learning|data science)\b`),
	regexp.MustCompile(`(?i)\b(sql|html|css|rest|api|microservices)\b`),
}

// Analyze produces a GapReport for the given resume sections and JD
// intelligence. It is total: empty sections or an empty-skill JD yield
// empty gap lists, never an error.
func Analyze(sections types.SectionMap, jd types.JDIntelligence) types.GapReport {
	resumeSkills := extractResumeSkills(sections)

	jdPrimary := lowercaseAll(jd.Keywords.Primary)
	jdSecondary := lowercaseAll(jd.Keywords.Secondary)
	jdHard := lowercaseAll(jd.HardSkills)
	primarySet := toSet(jdPrimary)

	missingPrimary := subtract(jdPrimary, resumeSkills)
	missingSecondary := subtract(jdSecondary, resumeSkills)
	missingHard := subtract(jdHard, resumeSkills)

	// Primary keywords are the highest-value gaps; hard skills that are
	// also primary are elevated even when only captured via missingHard.
	critical := union(missingPrimary, intersectSet(missingHard, primarySet))
	optional := union(missingSecondary, subtractSet(missingHard, primarySet))

	jdVocabulary := toSet(jdHard)
	for _, s := range append(jdPrimary, jdSecondary...) {
		jdVocabulary[s] = true
	}
	matched := intersectSet(resumeSkills.ordered, jdVocabulary)

	return types.GapReport{
		Critical:      truncate(critical, maxCriticalGaps),
		Optional:      truncate(optional, maxOptionalGaps),
		WeakBullets:   identifyWeakBullets(sections[types.SectionExperience]),
		MatchedSkills: truncate(matched, maxMatchedSkills),
		MissingCount:  len(missingPrimary) + len(missingHard),
	}
}

// skillSet keeps both membership and discovery order.
type skillSet struct {
	members map[string]bool
	ordered []string
}

func (s *skillSet) add(skill string) {
	if !s.members[skill] {
		s.members[skill] = true
		s.ordered = append(s.ordered, skill)
	}
}

func (s *skillSet) has(skill string) bool {
	return s.members[skill]
}

// extractResumeSkills scans the concatenated section text with the
// category patterns and returns every matched term, lowercased.
func extractResumeSkills(sections types.SectionMap) *skillSet {
	allText := strings.ToLower(sections.JoinedText())

	skills := &skillSet{members: make(map[string]bool)}
	for _, pattern := range resumeSkillPatterns {
		for _, match := range pattern.FindAllString(allText, -1) {
			skills.add(strings.ToLower(match))
		}
	}
	return skills
}

func lowercaseAll(terms []string) []string {
	out := make([]string, 0, len(terms))
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		lower := strings.ToLower(term)
		if !seen[lower] {
			out = append(out, lower)
			seen[lower] = true
		}
	}
	return out
}

func toSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, term := range terms {
		set[term] = true
	}
	return set
}

// subtract returns the terms not present in the resume skill set,
// preserving input order.
func subtract(terms []string, skills *skillSet) []string {
	var out []string
	for _, term := range terms {
		if !skills.has(term) {
			out = append(out, term)
		}
	}
	return out
}

// subtractSet returns the terms not present in the given set.
func subtractSet(terms []string, set map[string]bool) []string {
	var out []string
	for _, term := range terms {
		if !set[term] {
			out = append(out, term)
		}
	}
	return out
}

// intersectSet returns the terms present in the given set.
func intersectSet(terms []string, set map[string]bool) []string {
	var out []string
	for _, term := range terms {
		if set[term] {
			out = append(out, term)
		}
	}
	return out
}

// union appends b's terms to a, skipping duplicates, preserving order.
func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]bool, len(a)+len(b))
	for _, term := range append(append([]string{}, a...), b...) {
		if !seen[term] {
			out = append(out, term)
			seen[term] = true
		}
	}
	return out
}

func truncate(terms []string, max int) []string {
	if len(terms) > max {
		return terms[:max]
	}
	return terms
}
