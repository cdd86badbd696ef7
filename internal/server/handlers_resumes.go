package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/ingestion"
	"github.com/jonathan/ats-optimizer/internal/rendering"
	"github.com/jonathan/ats-optimizer/internal/sectioning"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// rawTextPreviewLength caps the raw text echoed back on upload.
const rawTextPreviewLength = 500

// UploadResponse represents the response for /api/resume/upload
type UploadResponse struct {
	ResumeID string           `json:"resume_id"`
	Sections types.SectionMap `json:"sections"`
	RawText  string           `json:"raw_text"`
}

// handleUploadResume accepts a multipart resume file (PDF, DOCX or TXT)
// or a "text" form field, detects sections and stores the result.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes())

	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes()); err != nil {
		if errors.As(err, new(*http.MaxBytesError)) {
			s.errorResponse(w, http.StatusBadRequest, "File too large")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	var (
		rawText  string
		filename string
	)

	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()

		data, readErr := io.ReadAll(file)
		if readErr != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to read file: "+readErr.Error())
			return
		}

		filename = header.Filename
		text, extractErr := ingestion.ExtractText(data, filename)
		if extractErr != nil {
			var unsupported *ingestion.UnsupportedFileError
			if errors.As(extractErr, &unsupported) {
				s.errorResponse(w, http.StatusBadRequest, "Only PDF, DOCX and TXT files are supported")
				return
			}
			s.errorResponse(w, http.StatusBadRequest, "Could not extract text from resume")
			return
		}
		rawText = ingestion.NormalizeText(text)

	case errors.Is(err, http.ErrMissingFile):
		rawText = strings.TrimSpace(r.FormValue("text"))
		if rawText == "" {
			s.errorResponse(w, http.StatusBadRequest, "Provide either a file or text")
			return
		}

	default:
		s.errorResponse(w, http.StatusBadRequest, "Invalid upload: "+err.Error())
		return
	}

	if rawText == "" {
		s.errorResponse(w, http.StatusBadRequest, "Could not extract text from resume")
		return
	}

	sections := sectioning.Segment(rawText)
	resume := s.store.PutResume(filename, rawText, sections)

	preview := rawText
	if len(preview) > rawTextPreviewLength {
		preview = preview[:rawTextPreviewLength] + "..."
	}

	s.jsonResponse(w, http.StatusOK, UploadResponse{
		ResumeID: resume.ID,
		Sections: resume.Sections,
		RawText:  preview,
	})
}

// handleGetResume returns a stored resume by ID.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.store.Resume(r.PathValue("id"))
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleUpdateSections replaces a resume's sections with user edits.
func (s *Server) handleUpdateSections(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateSectionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "sections is required")
		return
	}

	resume, ok := s.store.UpdateResumeSections(r.PathValue("id"), req.Sections)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":    "updated",
		"resume_id": resume.ID,
	})
}

// FormattedResponse represents the response for /api/resume/{id}/formatted
type FormattedResponse struct {
	ResumeID        string   `json:"resume_id"`
	FormattedResume string   `json:"formatted_resume"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// handleFormattedResume returns a markdown-style view of the resume.
// When a jd_id query parameter names a stored JD, its primary keywords
// and hard skills are highlighted.
func (s *Server) handleFormattedResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.store.Resume(r.PathValue("id"))
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	keywords := []string{}
	if jdID := r.URL.Query().Get("jd_id"); jdID != "" {
		if jd, ok := s.store.JD(jdID); ok {
			keywords = append(keywords, jd.Intelligence.Keywords.Primary...)
			keywords = append(keywords, jd.Intelligence.HardSkills...)
		}
	}

	s.jsonResponse(w, http.StatusOK, FormattedResponse{
		ResumeID:        resume.ID,
		FormattedResume: rendering.FormatWithKeywords(resume.Sections, keywords),
		MatchedKeywords: keywords,
	})
}

// handleDownloadResume renders a completed job's optimized resume as a
// PDF, DOCX or plain-text attachment.
func (s *Server) handleDownloadResume(w http.ResponseWriter, r *http.Request) {
	var req types.DownloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Format == "" {
		req.Format = "pdf"
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "job_id is required and format must be pdf, docx or txt")
		return
	}

	job, ok := s.store.Job(req.JobID)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}
	if job.Status != types.JobCompleted || job.Result == nil {
		s.errorResponse(w, http.StatusBadRequest, "Job not completed. Status: "+string(job.Status))
		return
	}

	sections := job.Result.OptimizedResume
	score := job.Result.ATSScore

	var (
		data        []byte
		err         error
		contentType string
	)
	switch req.Format {
	case "docx":
		data, err = rendering.RenderDOCX(sections, score)
		contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "txt":
		data = rendering.RenderText(sections, score)
		contentType = "text/plain; charset=utf-8"
	default:
		data, err = rendering.RenderPDF(sections, score)
		contentType = "application/pdf"
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render resume: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename=optimized_resume."+req.Format)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing download response: %v", err)
	}
}
