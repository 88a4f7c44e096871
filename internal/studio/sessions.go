package studio

import (
	"sync"

	"pictureme/internal/domain"
)

// Sessions tracks generation runs per user. Each user holds at most one
// registered run: starting another while one is in progress is rejected at
// the entry point, and a new run replaces the user's settled predecessor so
// the registry stays bounded per user.
type Sessions struct {
	mu     sync.Mutex
	active map[string]*Run
	byID   map[string]*Run
}

func NewSessions() *Sessions {
	return &Sessions{
		active: make(map[string]*Run),
		byID:   make(map[string]*Run),
	}
}

// Register records a freshly started run. It fails when the user already has
// a run in progress; otherwise the user's previous run is evicted.
func (s *Sessions) Register(run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.active[run.UserID]; ok {
		if current.InProgress() {
			return domain.ErrRunActive
		}
		delete(s.byID, current.ID)
	}
	s.active[run.UserID] = run
	s.byID[run.ID] = run
	return nil
}

// Get returns the run with the given identifier.
func (s *Sessions) Get(runID string) (*Run, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.byID[runID]
	return run, ok
}
