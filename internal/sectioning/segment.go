// Package sectioning splits raw resume text into canonical sections.
// Detection is deterministic: lines are matched against an ordered lexicon
// of header patterns, and the content between two headers belongs to the
// first. When no headers are found at all, sections are inferred from
// content shape instead so the result is never empty-handed.
package sectioning

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// sectionLexicon maps header patterns to canonical section keys, in the
// order sections are tested against each line. Patterns are anchored to the
// start of the trimmed line and case-insensitive.
var sectionLexicon = []struct {
	name     string
	patterns []*regexp.Regexp
}{
	{types.SectionSummary, compileAll(
		`^(professional\s+)?summary\b`,
		`^(career\s+)?objective\b`,
		`^profile\b`,
		`^about(\s+me)?\b`,
		`^overview\b`,
	)},
	{types.SectionExperience, compileAll(
		`^(work\s+)?experience\b`,
		`^(employment|work)\s+history\b`,
		`^professional\s+experience\b`,
		`^career\s+history\b`,
	)},
	{types.SectionSkills, compileAll(
		`^(technical\s+)?skills\b`,
		`^technologies\b`,
		`^competencies\b`,
		`^expertise\b`,
		`^tools\s*(and|&)\s*technologies\b`,
	)},
	{types.SectionEducation, compileAll(
		`^education\b`,
		`^academic\s+(background|qualifications)\b`,
		`^degrees?\b`,
		`^qualifications\b`,
	)},
	{types.SectionProjects, compileAll(
		`^(personal\s+)?projects\b`,
		`^portfolio\b`,
		`^key\s+projects\b`,
	)},
	{types.SectionCertifications, compileAll(
		`^certifications?\b`,
		`^licenses?\s*(and|&)?\s*certifications?\b`,
		`^professional\s+certifications?\b`,
	)},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+expr))
	}
	return compiled
}

// marker records a detected section header at a line index.
type marker struct {
	line int
	name string
}

// Segment splits resume text into a SectionMap. The four required keys
// (summary, experience, skills, education) are always present, defaulting
// to empty strings; projects and certifications appear only when detected.
// Segment is total: any input, including empty or noise text, yields a
// valid map.
func Segment(text string) types.SectionMap {
	lines := strings.Split(text, "\n")

	var markers []marker
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		for _, entry := range sectionLexicon {
			for _, pattern := range entry.patterns {
				if pattern.MatchString(trimmed) {
					markers = append(markers, marker{line: i, name: entry.name})
					break
				}
			}
		}
	}

	sections := make(types.SectionMap)
	for idx, m := range markers {
		end := len(lines)
		if idx+1 < len(markers) {
			end = markers[idx+1].line
		}
		sections[m.name] = collectContent(lines[m.line+1 : end])
	}

	if len(sections) == 0 {
		sections = inferSections(text)
	}

	for _, required := range types.RequiredSections {
		if _, ok := sections[required]; !ok {
			sections[required] = ""
		}
	}

	return sections
}

// collectContent drops blank lines and rejoins the remainder.
func collectContent(lines []string) string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
