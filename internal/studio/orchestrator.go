package studio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pictureme/internal/catalog"
	"pictureme/internal/domain"
	"pictureme/internal/infra"
	"pictureme/internal/prompt"
	"pictureme/internal/providers/image"
)

// Orchestrator drives generation runs: it expands a theme selection into
// variants, materializes one pending job per variant, and processes them
// strictly sequentially against the configured provider. Per-job failures are
// isolated; partial success is an expected terminal state.
type Orchestrator struct {
	generator   image.Generator
	logger      infra.Logger
	aspectRatio string
}

func NewOrchestrator(generator image.Generator, logger infra.Logger) *Orchestrator {
	return &Orchestrator{
		generator:   generator,
		logger:      logger,
		aspectRatio: image.DefaultAspectRatio,
	}
}

// Start validates the request, expands the variants, and returns a run whose
// jobs are all pending. No provider call happens here: callers receive the
// initial snapshot before any network activity and then drive processing via
// Process.
func (o *Orchestrator) Start(userID, sourceImage, themeKey string, sel catalog.Selection) (*Run, error) {
	if strings.TrimSpace(sourceImage) == "" {
		return nil, fmt.Errorf("%w: source image is required", domain.ErrValidation)
	}
	themeKey = strings.TrimSpace(themeKey)
	if themeKey == "" {
		return nil, fmt.Errorf("%w: theme is required", domain.ErrValidation)
	}
	if _, ok := catalog.ThemeByKey(themeKey); !ok {
		return nil, fmt.Errorf("%w: unknown theme %q", domain.ErrValidation, themeKey)
	}
	if len(sel.HairColors) > catalog.MaxHairColors {
		return nil, fmt.Errorf("%w: at most %d hair colors are supported", domain.ErrValidation, catalog.MaxHairColors)
	}
	sel.Normalize()
	if themeKey == "eightiesMall" && sel.AlbumStyle == "" {
		// The album style binds every photo of the set; pick one for the whole
		// run when the client left it open.
		if t, ok := catalog.ThemeByKey(themeKey); ok && len(t.AlbumStyles) > 0 {
			sel.AlbumStyle = t.AlbumStyles[0]
		}
	}

	variants := catalog.Expand(themeKey, sel)
	if len(variants) == 0 {
		return nil, fmt.Errorf("%w: no prompts selected", domain.ErrValidation)
	}

	run := &Run{
		ID:          uuid.NewString(),
		UserID:      userID,
		ThemeKey:    themeKey,
		CreatedAt:   time.Now(),
		sourceImage: sourceImage,
		selection:   sel,
		variants:    variants,
		jobs:        make([]Job, len(variants)),
		inProgress:  true,
	}
	for i, v := range variants {
		run.jobs[i] = Job{
			ID:          jobID(v.ID, i),
			Index:       i,
			Title:       v.ID,
			Description: v.Base,
			Status:      JobStatusPending,
		}
	}
	return run, nil
}

// Process executes the run's jobs in order with exactly one in-flight
// provider call at a time, then clears the run's in-progress flag. A failed
// job never halts its successors.
func (o *Orchestrator) Process(ctx context.Context, run *Run) {
	defer run.finish()
	for i := range run.variants {
		select {
		case <-ctx.Done():
			o.failRemaining(run, i, ctx.Err())
			return
		default:
		}
		o.attempt(ctx, run, i)
	}
}

// Retry re-opens a single failed job and repeats the attempt in isolation.
// Sibling jobs are untouched, and retries are safe to run concurrently with
// each other or after the main run has settled.
func (o *Orchestrator) Retry(ctx context.Context, run *Run, id string) (Job, error) {
	job, ok := run.Job(id)
	if !ok {
		return Job{}, domain.ErrNotFound
	}
	if job.Status != JobStatusFailed {
		return Job{}, domain.ErrJobNotRetryable
	}

	job.Status = JobStatusPending
	job.URL = ""
	job.Error = ""
	run.setJob(job.Index, job)

	o.attempt(ctx, run, job.Index)
	return run.jobAt(job.Index), nil
}

// attempt compiles the instruction for job i, invokes the provider, and
// settles that job alone.
func (o *Orchestrator) attempt(ctx context.Context, run *Run, i int) {
	variant := run.variants[i]
	job := run.jobAt(i)
	instruction := prompt.Compile(run.ThemeKey, variant, run.selection)

	url, err := o.generator.Generate(ctx, image.GenerateRequest{
		Prompt:      instruction,
		SourceImage: run.sourceImage,
		AspectRatio: o.aspectRatio,
		RequestID:   job.ID,
	})
	if err != nil {
		o.logger.Error().Err(err).Str("run_id", run.ID).Str("job_id", job.ID).Msg("studio: generation failed")
		job.Status = JobStatusFailed
		job.Error = err.Error()
		job.URL = ""
		run.setJob(i, job)
		return
	}

	job.Status = JobStatusSuccess
	job.URL = url
	job.Error = ""
	run.setJob(i, job)
}

func (o *Orchestrator) failRemaining(run *Run, from int, cause error) {
	for i := from; i < len(run.variants); i++ {
		job := run.jobAt(i)
		if job.Status != JobStatusPending {
			continue
		}
		job.Status = JobStatusFailed
		job.Error = cause.Error()
		run.setJob(i, job)
	}
}
