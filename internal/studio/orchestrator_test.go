package studio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"pictureme/internal/catalog"
	"pictureme/internal/domain"
	"pictureme/internal/providers/image"
)

// stubGenerator settles each request through fn and records call order and
// the compiled prompts it received.
type stubGenerator struct {
	mu      sync.Mutex
	calls   []string
	prompts []string
	fn      func(req image.GenerateRequest) (string, error)
}

func (s *stubGenerator) Generate(_ context.Context, req image.GenerateRequest) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req.RequestID)
	s.prompts = append(s.prompts, req.Prompt)
	s.mu.Unlock()
	if s.fn != nil {
		return s.fn(req)
	}
	return "https://cdn.example.com/" + req.RequestID + ".png", nil
}

func (s *stubGenerator) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func newTestOrchestrator(gen image.Generator) *Orchestrator {
	return NewOrchestrator(gen, zerolog.Nop())
}

func TestStartMaterializesPendingJobs(t *testing.T) {
	gen := &stubGenerator{}
	o := newTestOrchestrator(gen)

	run, err := o.Start("user-1", "data:image/png;base64,AAAA", "costumes", catalog.Selection{})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	snap := run.Snapshot()
	if !snap.InProgress {
		t.Fatalf("new run should be in progress")
	}
	if len(snap.Jobs) != 6 {
		t.Fatalf("Start(costumes) = %d jobs, want 6", len(snap.Jobs))
	}
	for i, job := range snap.Jobs {
		if job.Status != JobStatusPending {
			t.Fatalf("job[%d] status = %q, want pending", i, job.Status)
		}
		if job.Index != i {
			t.Fatalf("job[%d] index = %d", i, job.Index)
		}
	}
	if gen.callCount() != 0 {
		t.Fatalf("Start must not call the provider, got %d calls", gen.callCount())
	}
}

func TestStartValidation(t *testing.T) {
	o := newTestOrchestrator(&stubGenerator{})

	cases := []struct {
		name  string
		image string
		theme string
		sel   catalog.Selection
	}{
		{name: "missing image", image: "", theme: "costumes"},
		{name: "missing theme", image: "img", theme: ""},
		{name: "unknown theme", image: "img", theme: "hologram"},
		{name: "too many hair colors", image: "img", theme: "hairStyler", sel: catalog.Selection{
			HairStyles: []string{"Bob"},
			HairColors: []string{"Red", "Blue", "Silver"},
		}},
		{name: "empty expansion", image: "img", theme: "socialMedia"},
	}
	for _, tc := range cases {
		if _, err := o.Start("user-1", tc.image, tc.theme, tc.sel); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: Start() error = %v, want ErrValidation", tc.name, err)
		}
	}
}

func TestProcessRunsSequentiallyInOrder(t *testing.T) {
	gen := &stubGenerator{}
	inFlight := 0
	maxInFlight := 0
	var mu sync.Mutex
	gen.fn = func(req image.GenerateRequest) (string, error) {
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		mu.Unlock()
		defer func() {
			mu.Lock()
			inFlight--
			mu.Unlock()
		}()
		return "https://cdn.example.com/out.png", nil
	}
	o := newTestOrchestrator(gen)

	run, err := o.Start("user-1", "img", "costumes", catalog.Selection{})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	o.Process(context.Background(), run)

	if maxInFlight != 1 {
		t.Fatalf("max in-flight calls = %d, want 1", maxInFlight)
	}
	snap := run.Snapshot()
	if snap.InProgress {
		t.Fatalf("run should be settled after Process")
	}
	for i, job := range snap.Jobs {
		if job.Status != JobStatusSuccess {
			t.Fatalf("job[%d] = %q, want success", i, job.Status)
		}
		if gen.calls[i] != job.ID {
			t.Fatalf("call order at %d = %q, want %q", i, gen.calls[i], job.ID)
		}
	}
}

func TestProcessIsolatesSingleFailure(t *testing.T) {
	gen := &stubGenerator{}
	call := 0
	gen.fn = func(image.GenerateRequest) (string, error) {
		call++
		if call == 3 {
			return "", fmt.Errorf("provider timed out")
		}
		return "https://cdn.example.com/out.png", nil
	}
	o := newTestOrchestrator(gen)

	run, err := o.Start("user-1", "img", "impossibleSelfies", catalog.Selection{})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	o.Process(context.Background(), run)

	snap := run.Snapshot()
	if len(snap.Jobs) != 5 {
		t.Fatalf("got %d jobs, want 5", len(snap.Jobs))
	}
	for i, job := range snap.Jobs {
		if i == 2 {
			if job.Status != JobStatusFailed || job.Error != "provider timed out" {
				t.Fatalf("job[2] = %+v, want failed with provider error", job)
			}
			continue
		}
		if job.Status != JobStatusSuccess {
			t.Fatalf("job[%d] = %q, failure leaked to sibling", i, job.Status)
		}
	}
}

func TestAlbumStyleBindsWholeRun(t *testing.T) {
	theme, ok := catalog.ThemeByKey("eightiesMall")
	if !ok || len(theme.AlbumStyles) < 2 {
		t.Fatalf("eightiesMall theme missing album styles")
	}

	// Omitted album style: the first catalog style is fixed for the run.
	gen := &stubGenerator{}
	o := newTestOrchestrator(gen)
	run, err := o.Start("user-1", "img", "eightiesMall", catalog.Selection{})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	o.Process(context.Background(), run)
	if len(gen.prompts) != len(theme.Prompts) {
		t.Fatalf("prompts = %d, want %d", len(gen.prompts), len(theme.Prompts))
	}
	for i, p := range gen.prompts {
		if !strings.Contains(p, theme.AlbumStyles[0]) {
			t.Fatalf("prompt[%d] missing the run-wide default style: %q", i, p)
		}
	}

	// Explicit album style: the same one style appears in every instruction.
	gen = &stubGenerator{}
	o = newTestOrchestrator(gen)
	chosen := theme.AlbumStyles[1]
	run, err = o.Start("user-1", "img", "eightiesMall", catalog.Selection{AlbumStyle: chosen})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	o.Process(context.Background(), run)
	for i, p := range gen.prompts {
		if !strings.Contains(p, chosen) {
			t.Fatalf("prompt[%d] missing the selected style %q: %q", i, chosen, p)
		}
		if strings.Contains(p, theme.AlbumStyles[0]) {
			t.Fatalf("prompt[%d] leaked the default style: %q", i, p)
		}
	}
}

func TestRetryReopensOnlyFailedJob(t *testing.T) {
	gen := &stubGenerator{}
	failAll := true
	gen.fn = func(req image.GenerateRequest) (string, error) {
		if failAll {
			return "", fmt.Errorf("boom")
		}
		return "https://cdn.example.com/retry.png", nil
	}
	o := newTestOrchestrator(gen)

	run, err := o.Start("user-1", "img", "stickers", catalog.Selection{})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	o.Process(context.Background(), run)

	before := run.Snapshot()
	target := before.Jobs[1]
	if target.Status != JobStatusFailed {
		t.Fatalf("setup: job[1] = %q, want failed", target.Status)
	}

	failAll = false
	got, err := o.Retry(context.Background(), run, target.ID)
	if err != nil {
		t.Fatalf("Retry() error: %v", err)
	}
	if got.Status != JobStatusSuccess || got.URL == "" {
		t.Fatalf("Retry() = %+v, want success with url", got)
	}

	after := run.Snapshot()
	for i, job := range after.Jobs {
		if i == 1 {
			continue
		}
		if job != before.Jobs[i] {
			t.Fatalf("retry touched sibling job[%d]: %+v vs %+v", i, job, before.Jobs[i])
		}
	}
}

func TestRetryRejectsNonFailedJobs(t *testing.T) {
	gen := &stubGenerator{}
	o := newTestOrchestrator(gen)

	run, err := o.Start("user-1", "img", "stickers", catalog.Selection{})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	o.Process(context.Background(), run)

	snap := run.Snapshot()
	if _, err := o.Retry(context.Background(), run, snap.Jobs[0].ID); !errors.Is(err, domain.ErrJobNotRetryable) {
		t.Fatalf("Retry(success job) error = %v, want ErrJobNotRetryable", err)
	}
	if _, err := o.Retry(context.Background(), run, "missing#9"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Retry(unknown job) error = %v, want ErrNotFound", err)
	}
}

func TestProcessStopsOnCanceledContext(t *testing.T) {
	gen := &stubGenerator{}
	o := newTestOrchestrator(gen)

	run, err := o.Start("user-1", "img", "costumes", catalog.Selection{})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	o.Process(ctx, run)

	if gen.callCount() != 0 {
		t.Fatalf("canceled context should prevent provider calls, got %d", gen.callCount())
	}
	snap := run.Snapshot()
	if snap.InProgress {
		t.Fatalf("run should be settled")
	}
	for i, job := range snap.Jobs {
		if job.Status != JobStatusFailed {
			t.Fatalf("job[%d] = %q, want failed after cancel", i, job.Status)
		}
	}
}

func TestSessionsSingleActiveRunPerUser(t *testing.T) {
	gen := &stubGenerator{}
	o := newTestOrchestrator(gen)
	sessions := NewSessions()

	first, err := o.Start("user-1", "img", "costumes", catalog.Selection{})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if err := sessions.Register(first); err != nil {
		t.Fatalf("Register(first) error: %v", err)
	}

	second, err := o.Start("user-1", "img", "stickers", catalog.Selection{})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if err := sessions.Register(second); !errors.Is(err, domain.ErrRunActive) {
		t.Fatalf("Register(second) error = %v, want ErrRunActive", err)
	}

	// After the first run settles, a new run may start.
	o.Process(context.Background(), first)
	if err := sessions.Register(second); err != nil {
		t.Fatalf("Register after settle error: %v", err)
	}

	if got, ok := sessions.Get(second.ID); !ok || got != second {
		t.Fatalf("Get(%q) = %v, %v", second.ID, got, ok)
	}

	// Other users are unaffected.
	other, err := o.Start("user-2", "img", "costumes", catalog.Selection{})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if err := sessions.Register(other); err != nil {
		t.Fatalf("Register(other user) error: %v", err)
	}
}

func TestSessionsEvictsSettledRunOnRegister(t *testing.T) {
	gen := &stubGenerator{}
	o := newTestOrchestrator(gen)
	sessions := NewSessions()

	first, err := o.Start("user-1", "img", "stickers", catalog.Selection{})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if err := sessions.Register(first); err != nil {
		t.Fatalf("Register(first) error: %v", err)
	}
	o.Process(context.Background(), first)

	second, err := o.Start("user-1", "img", "costumes", catalog.Selection{})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if err := sessions.Register(second); err != nil {
		t.Fatalf("Register(second) error: %v", err)
	}

	if _, ok := sessions.Get(first.ID); ok {
		t.Fatalf("settled predecessor should be evicted from the registry")
	}
	if got, ok := sessions.Get(second.ID); !ok || got != second {
		t.Fatalf("Get(%q) = %v, %v", second.ID, got, ok)
	}
}
