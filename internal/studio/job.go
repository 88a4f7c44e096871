package studio

import "fmt"

// JobStatus enumerates the lifecycle states of one generation attempt.
type JobStatus string

const (
	JobStatusPending JobStatus = "pending"
	JobStatusSuccess JobStatus = "success"
	JobStatusFailed  JobStatus = "failed"
)

// Job tracks one generation attempt for a single prompt variant within a run.
// Jobs are value records: the run replaces the record at its index on every
// transition, never mutates a shared pointer.
type Job struct {
	ID          string    `json:"id"`
	Index       int       `json:"index"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      JobStatus `json:"status"`
	URL         string    `json:"url,omitempty"`
	Error       string    `json:"error,omitempty"`
	Liked       bool      `json:"liked"`
}

// jobID combines the variant identifier with a stable ordering index so that
// duplicate variant names stay addressable.
func jobID(variantID string, index int) string {
	return fmt.Sprintf("%s#%d", variantID, index)
}
