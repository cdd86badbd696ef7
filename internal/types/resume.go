// Package types defines the shared data structures used across the ATS
// optimizer pipeline: resume sections, JD intelligence, gap reports, score
// reports, and optimization job state.
package types

import "strings"

// Canonical section keys produced by the segmenter.
const (
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionSkills         = "skills"
	SectionEducation      = "education"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
)

// RequiredSections are the keys every SectionMap must contain, even when
// their content is empty.
var RequiredSections = []string{
	SectionSummary,
	SectionExperience,
	SectionSkills,
	SectionEducation,
}

// OptionalSections are present only when detected in the source text.
var OptionalSections = []string{
	SectionProjects,
	SectionCertifications,
}

// SectionMap maps a canonical section key to its body text.
// The four required keys are always present; optional keys appear only when
// detected. The map is treated as immutable once produced.
type SectionMap map[string]string

// JoinedText concatenates all section bodies with single spaces, in
// canonical section order. Used for whole-resume text scans.
func (m SectionMap) JoinedText() string {
	canonical := append(append([]string{}, RequiredSections...), OptionalSections...)
	parts := make([]string, 0, len(m))
	seen := make(map[string]bool, len(canonical))
	for _, key := range canonical {
		seen[key] = true
		if content, ok := m[key]; ok && content != "" {
			parts = append(parts, content)
		}
	}
	// Non-canonical keys can appear after external section edits.
	for key, content := range m {
		if !seen[key] && content != "" {
			parts = append(parts, content)
		}
	}
	return strings.Join(parts, " ")
}

// Clone returns a shallow copy of the section map.
func (m SectionMap) Clone() SectionMap {
	out := make(SectionMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
