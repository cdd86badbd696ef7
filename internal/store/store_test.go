package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/ats-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutResume_RoundTrip(t *testing.T) {
	s := New()

	sections := types.SectionMap{types.SectionSummary: "Engineer."}
	stored := s.PutResume("resume.pdf", "Engineer.", sections)

	assert.True(t, strings.HasPrefix(stored.ID, "res-"))
	assert.Len(t, stored.ID, len("res-")+8)
	assert.Equal(t, 9, stored.CharCount)

	got, ok := s.Resume(stored.ID)
	require.True(t, ok)
	assert.Equal(t, "resume.pdf", got.Filename)
	assert.Equal(t, "Engineer.", got.Sections[types.SectionSummary])
}

func TestResume_UnknownID(t *testing.T) {
	s := New()
	_, ok := s.Resume("res-deadbeef")
	assert.False(t, ok)
}

func TestResume_SnapshotIsolation(t *testing.T) {
	s := New()
	stored := s.PutResume("", "text", types.SectionMap{types.SectionSummary: "original"})

	got, ok := s.Resume(stored.ID)
	require.True(t, ok)
	got.Sections[types.SectionSummary] = "mutated"

	again, ok := s.Resume(stored.ID)
	require.True(t, ok)
	assert.Equal(t, "original", again.Sections[types.SectionSummary])
}

func TestUpdateResumeSections(t *testing.T) {
	s := New()
	stored := s.PutResume("", "text", types.SectionMap{types.SectionSummary: "old"})

	updated, ok := s.UpdateResumeSections(stored.ID, types.SectionMap{types.SectionSummary: "new"})
	require.True(t, ok)
	assert.Equal(t, "new", updated.Sections[types.SectionSummary])

	_, ok = s.UpdateResumeSections("res-missing0", types.SectionMap{})
	assert.False(t, ok)
}

func TestPutJD_RoundTrip(t *testing.T) {
	s := New()

	intel := &types.JDIntelligence{Role: "Backend Engineer", Seniority: types.SeniorityMid}
	stored := s.PutJD("We are hiring.", intel)

	assert.True(t, strings.HasPrefix(stored.ID, "jd-"))

	got, ok := s.JD(stored.ID)
	require.True(t, ok)
	assert.Equal(t, "Backend Engineer", got.Intelligence.Role)
}

func TestJobLifecycle(t *testing.T) {
	s := New()
	job := s.CreateJob("res-1", "jd-1")

	assert.True(t, strings.HasPrefix(job.ID, "job-"))
	assert.Equal(t, types.JobProcessing, job.Status)
	assert.Equal(t, "Starting optimization", job.Step)

	s.UpdateJobProgress(job.ID, 40, "Rewriting resume")
	got, ok := s.Job(job.ID)
	require.True(t, ok)
	assert.Equal(t, 40, got.Progress)
	assert.Equal(t, "Rewriting resume", got.Step)

	s.CompleteJob(job.ID, &types.OptimizeResult{ATSScore: 88})
	got, ok = s.Job(job.ID)
	require.True(t, ok)
	assert.Equal(t, types.JobCompleted, got.Status)
	assert.Equal(t, 100, got.Progress)
	assert.Equal(t, 88, got.Result.ATSScore)
}

func TestFailJob(t *testing.T) {
	s := New()
	job := s.CreateJob("res-1", "jd-1")

	s.FailJob(job.ID, errors.New("model unavailable"))

	got, ok := s.Job(job.ID)
	require.True(t, ok)
	assert.Equal(t, types.JobFailed, got.Status)
	assert.Equal(t, "model unavailable", got.Error)
}

func TestUpdateJobProgress_IgnoredAfterCompletion(t *testing.T) {
	s := New()
	job := s.CreateJob("res-1", "jd-1")

	s.CompleteJob(job.ID, &types.OptimizeResult{})
	s.UpdateJobProgress(job.ID, 40, "Rewriting resume")

	got, ok := s.Job(job.ID)
	require.True(t, ok)
	assert.Equal(t, types.JobCompleted, got.Status)
	assert.Equal(t, 100, got.Progress)
}

func TestIDsAreUnique(t *testing.T) {
	s := New()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := s.PutResume("", "x", types.SectionMap{}).ID
		assert.False(t, seen[id])
		seen[id] = true
	}
}
