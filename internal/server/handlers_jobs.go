package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// OptimizeResponse represents the response for /api/optimize
type OptimizeResponse struct {
	JobID  string          `json:"job_id"`
	Status types.JobStatus `json:"status"`
}

// JobStatusResponse represents the response for /api/job/{id}/status
type JobStatusResponse struct {
	JobID    string          `json:"job_id"`
	Status   types.JobStatus `json:"status"`
	Progress int             `json:"progress"`
	Step     string          `json:"step"`
}

// JobResultResponse represents the response for /api/job/{id}/result
type JobResultResponse struct {
	JobID string `json:"job_id"`
	*types.OptimizeResult
}

// handleOptimize starts an optimization job. The pipeline runs in a
// background goroutine; the job ID is returned immediately for polling.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req types.OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume_id and jd_id are required")
		return
	}

	resume, ok := s.store.Resume(req.ResumeID)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}
	jd, ok := s.store.JD(req.JDID)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "JD not found")
		return
	}

	job := s.store.CreateJob(req.ResumeID, req.JDID)

	go s.runOptimization(job.ID, resume.Sections, *jd.Intelligence)

	s.jsonResponse(w, http.StatusOK, OptimizeResponse{
		JobID:  job.ID,
		Status: job.Status,
	})
}

// runOptimization executes the pipeline for a job and records the
// outcome. It is detached from the request context.
func (s *Server) runOptimization(jobID string, sections types.SectionMap, jd types.JDIntelligence) {
	report := func(progress int, step string) {
		s.store.UpdateJobProgress(jobID, progress, step)
	}

	result, err := s.pipeline.Optimize(context.Background(), sections, jd, report)
	if err != nil {
		log.Printf("[optimize] job %s failed: %v", jobID, err)
		s.store.FailJob(jobID, err)
		return
	}

	s.store.CompleteJob(jobID, result)
}

// handleJobStatus returns a job's progress.
func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	job, ok := s.store.Job(r.PathValue("id"))
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, JobStatusResponse{
		JobID:    job.ID,
		Status:   job.Status,
		Progress: job.Progress,
		Step:     job.Step,
	})
}

// handleJobResult returns the result of a completed job.
func (s *Server) handleJobResult(w http.ResponseWriter, r *http.Request) {
	job, ok := s.store.Job(r.PathValue("id"))
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}
	if job.Status != types.JobCompleted {
		s.errorResponse(w, http.StatusBadRequest, "Job not completed. Status: "+string(job.Status))
		return
	}

	s.jsonResponse(w, http.StatusOK, JobResultResponse{
		JobID:          job.ID,
		OptimizeResult: job.Result,
	})
}
