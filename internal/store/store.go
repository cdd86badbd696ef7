// Package store holds the in-memory registries for resumes, job
// descriptions and optimization jobs. Records live for the lifetime of
// the process.
package store

import (
	"encoding/hex"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// idLength is the number of hex characters after the prefix.
const idLength = 8

// Resume is a stored resume with its detected sections.
type Resume struct {
	ID        string           `json:"resume_id"`
	Filename  string           `json:"filename,omitempty"`
	RawText   string           `json:"raw_text"`
	Sections  types.SectionMap `json:"sections"`
	CharCount int              `json:"char_count"`
}

// JD is a stored job description with its extracted intelligence.
type JD struct {
	ID           string                `json:"jd_id"`
	RawText      string                `json:"raw_text"`
	Intelligence *types.JDIntelligence `json:"intelligence"`
}

// Store is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	resumes map[string]Resume
	jds     map[string]JD
	jobs    map[string]types.OptimizeJob
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		resumes: make(map[string]Resume),
		jds:     make(map[string]JD),
		jobs:    make(map[string]types.OptimizeJob),
	}
}

func newID(prefix string) string {
	id := uuid.New()
	return prefix + "-" + hex.EncodeToString(id[:])[:idLength]
}

// PutResume stores a resume and returns it with a fresh "res-" ID.
func (s *Store) PutResume(filename, rawText string, sections types.SectionMap) Resume {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume := Resume{
		ID:        s.uniqueID("res"),
		Filename:  filename,
		RawText:   rawText,
		Sections:  sections.Clone(),
		CharCount: len(rawText),
	}
	s.resumes[resume.ID] = resume
	return resume
}

// Resume returns the resume with the given ID.
func (s *Store) Resume(id string) (Resume, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resume, ok := s.resumes[id]
	if !ok {
		return Resume{}, false
	}
	resume.Sections = resume.Sections.Clone()
	return resume, true
}

// UpdateResumeSections replaces a resume's sections wholesale.
func (s *Store) UpdateResumeSections(id string, sections types.SectionMap) (Resume, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume, ok := s.resumes[id]
	if !ok {
		return Resume{}, false
	}
	resume.Sections = sections.Clone()
	s.resumes[id] = resume

	resume.Sections = resume.Sections.Clone()
	return resume, true
}

// PutJD stores a job description and returns it with a fresh "jd-" ID.
func (s *Store) PutJD(rawText string, intelligence *types.JDIntelligence) JD {
	s.mu.Lock()
	defer s.mu.Unlock()

	jd := JD{
		ID:           s.uniqueID("jd"),
		RawText:      rawText,
		Intelligence: intelligence,
	}
	s.jds[jd.ID] = jd
	return jd
}

// JD returns the job description with the given ID.
func (s *Store) JD(id string) (JD, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jd, ok := s.jds[id]
	return jd, ok
}

// CreateJob registers a new optimization job in the processing state.
func (s *Store) CreateJob(resumeID, jdID string) types.OptimizeJob {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := types.OptimizeJob{
		ID:       s.uniqueID("job"),
		ResumeID: resumeID,
		JDID:     jdID,
		Status:   types.JobProcessing,
		Progress: 0,
		Step:     "Starting optimization",
	}
	s.jobs[job.ID] = job
	return job
}

// Job returns a snapshot of the job with the given ID.
func (s *Store) Job(id string) (types.OptimizeJob, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	return job, ok
}

// UpdateJobProgress records a progress update for a running job.
func (s *Store) UpdateJobProgress(id string, progress int, step string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok || job.Status != types.JobProcessing {
		return
	}
	job.Progress = progress
	job.Step = step
	s.jobs[id] = job
}

// CompleteJob marks a job completed and attaches its result.
func (s *Store) CompleteJob(id string, result *types.OptimizeResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return
	}
	job.Status = types.JobCompleted
	job.Progress = 100
	job.Step = "Complete"
	job.Result = result
	job.Error = ""
	s.jobs[id] = job
}

// FailJob marks a job failed with the given error.
func (s *Store) FailJob(id string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return
	}
	job.Status = types.JobFailed
	job.Error = err.Error()
	s.jobs[id] = job
}

// uniqueID generates an ID that is not yet in use. Callers must hold mu.
func (s *Store) uniqueID(prefix string) string {
	for {
		id := newID(prefix)
		switch prefix {
		case "res":
			if _, ok := s.resumes[id]; !ok {
				return id
			}
		case "jd":
			if _, ok := s.jds[id]; !ok {
				return id
			}
		default:
			if _, ok := s.jobs[id]; !ok {
				return id
			}
		}
	}
}
