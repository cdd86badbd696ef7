package types

import (
	"github.com/go-playground/validator/v10"
)

// ExtractJDRequest represents the request to extract intelligence from a
// pasted job description. URL ingestion is intentionally unsupported.
type ExtractJDRequest struct {
	Text string `json:"text" validate:"required,min=100"`
}

// OptimizeRequest represents the request to start an optimization job.
type OptimizeRequest struct {
	ResumeID string `json:"resume_id" validate:"required"`
	JDID     string `json:"jd_id" validate:"required"`
}

// UpdateSectionsRequest represents a wholesale replacement of a resume's
// sections (user edits).
type UpdateSectionsRequest struct {
	Sections SectionMap `json:"sections" validate:"required"`
}

// DownloadRequest represents the request to render a completed job's
// optimized resume into a downloadable format.
type DownloadRequest struct {
	JobID  string `json:"job_id" validate:"required"`
	Format string `json:"format,omitempty" validate:"omitempty,oneof=pdf docx txt"`
}

// Validate validates the ExtractJDRequest using the validator.
func (r *ExtractJDRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the OptimizeRequest using the validator.
func (r *OptimizeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateSectionsRequest using the validator.
func (r *UpdateSectionsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the DownloadRequest using the validator.
func (r *DownloadRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
