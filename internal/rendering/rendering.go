// Package rendering turns optimized resume sections into downloadable
// documents. PDF and DOCX are supported, plus a markdown-style text view
// with keyword highlighting.
package rendering

import (
	"fmt"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// sectionOrder fixes the order sections appear in rendered documents.
var sectionOrder = []string{
	types.SectionSummary,
	types.SectionExperience,
	types.SectionSkills,
	types.SectionEducation,
	types.SectionProjects,
	types.SectionCertifications,
}

// sectionTitles maps section keys to their rendered headings.
var sectionTitles = map[string]string{
	types.SectionSummary:        "PROFESSIONAL SUMMARY",
	types.SectionExperience:     "PROFESSIONAL EXPERIENCE",
	types.SectionSkills:         "TECHNICAL SKILLS",
	types.SectionEducation:      "EDUCATION",
	types.SectionProjects:       "PROJECTS",
	types.SectionCertifications: "CERTIFICATIONS",
}

// RenderError represents a document generation failure
type RenderError struct {
	Format string
	Cause  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render %s: %v", e.Format, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
