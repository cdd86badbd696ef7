package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/ingestion"
	"github.com/jonathan/ats-optimizer/internal/jdintel"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// ExtractJDResponse represents the response for /api/jd/extract
type ExtractJDResponse struct {
	JDID string `json:"jd_id"`
	types.JDIntelligence
}

// handleExtractJD extracts intelligence from a pasted job description.
// Noise sections (benefits, EEO statements, application instructions)
// are stripped before extraction.
func (s *Server) handleExtractJD(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractJDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Job description too short")
		return
	}

	cleaned := ingestion.CleanJD(req.Text)
	intelligence := jdintel.Extract(cleaned)

	jd := s.store.PutJD(req.Text, &intelligence)

	s.jsonResponse(w, http.StatusOK, ExtractJDResponse{
		JDID:           jd.ID,
		JDIntelligence: intelligence,
	})
}

// handleGetJD returns a stored job description by ID.
func (s *Server) handleGetJD(w http.ResponseWriter, r *http.Request) {
	jd, ok := s.store.JD(r.PathValue("id"))
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "JD not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, jd)
}
