package types

// JobStatus tracks the lifecycle of an optimization job.
type JobStatus string

// Job lifecycle states.
const (
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// OptimizeResult is the payload of a completed optimization job.
// BaselineScore is the ATS score of the resume before rewriting.
type OptimizeResult struct {
	OptimizedResume SectionMap `json:"optimized_resume"`
	ATSScore        int        `json:"ats_score"`
	BaselineScore   int        `json:"baseline_score"`
	Improvements    []string   `json:"improvements"`
	RemainingGaps   []string   `json:"remaining_gaps"`
}

// OptimizeJob is the tracked state of one optimization run. Progress is a
// percentage in [0,100]; Step is a human-readable description of the
// current pipeline stage.
type OptimizeJob struct {
	ID       string          `json:"job_id"`
	ResumeID string          `json:"resume_id"`
	JDID     string          `json:"jd_id"`
	Status   JobStatus       `json:"status"`
	Progress int             `json:"progress"`
	Step     string          `json:"step"`
	Result   *OptimizeResult `json:"result,omitempty"`
	Error    string          `json:"error,omitempty"`
}
