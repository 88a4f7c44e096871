package studio

import (
	"sync"
	"time"

	"pictureme/internal/catalog"
)

// Run is one end-to-end generation attempt spanning all expanded variants for
// a frozen source-image/theme/selection combination. The source image and
// selection never change after the run starts; a new combination is a new run.
type Run struct {
	ID        string
	UserID    string
	ThemeKey  string
	CreatedAt time.Time

	sourceImage string
	selection   catalog.Selection
	variants    []catalog.Variant

	mu         sync.Mutex
	jobs       []Job
	inProgress bool
}

// Snapshot is a read-only copy of a run's state, stable to render at any time.
type Snapshot struct {
	RunID      string `json:"run_id"`
	ThemeKey   string `json:"theme"`
	InProgress bool   `json:"in_progress"`
	Jobs       []Job  `json:"jobs"`
}

// Snapshot returns a copy of the run's jobs and progress flag.
func (r *Run) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	jobs := make([]Job, len(r.jobs))
	copy(jobs, r.jobs)
	return Snapshot{
		RunID:      r.ID,
		ThemeKey:   r.ThemeKey,
		InProgress: r.inProgress,
		Jobs:       jobs,
	}
}

// InProgress reports whether any job of the main run is still unsettled.
func (r *Run) InProgress() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inProgress
}

// Job returns the job with the given identifier.
func (r *Run) Job(jobID string) (Job, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.jobs {
		if j.ID == jobID {
			return j, true
		}
	}
	return Job{}, false
}

// SuccessfulJobs returns the settled successful jobs in run order.
func (r *Run) SuccessfulJobs() []Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		if j.Status == JobStatusSuccess {
			out = append(out, j)
		}
	}
	return out
}

// setJob replaces the job record at index. The slice shape never changes
// during a run; transitions always swap one record in place.
func (r *Run) setJob(index int, job Job) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index >= 0 && index < len(r.jobs) {
		r.jobs[index] = job
	}
}

func (r *Run) jobAt(index int) Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.jobs[index]
}

func (r *Run) finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inProgress = false
}
