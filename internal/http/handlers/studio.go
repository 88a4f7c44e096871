package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pictureme/internal/catalog"
	"pictureme/internal/domain"
	"pictureme/internal/studio"
	"pictureme/pkg/zip"
)

type studioStartRequest struct {
	Image     string            `json:"image"`
	Theme     string            `json:"theme"`
	Selection catalog.Selection `json:"selection"`
}

// StudioStart validates the request, materializes the pending job list, and
// kicks off sequential processing in the background. The response carries the
// initial snapshot so clients can render placeholders right away.
func (a *App) StudioStart(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req studioStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	run, err := a.Orchestrator.Start(userID, req.Image, req.Theme, req.Selection)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			a.error(w, http.StatusBadRequest, "validation", err.Error())
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to start run")
		return
	}
	if err := a.Sessions.Register(run); err != nil {
		a.error(w, http.StatusConflict, "run_active", "a generation run is already in progress")
		return
	}

	// The run outlives this request; processing continues against the
	// background context.
	go a.Orchestrator.Process(context.Background(), run)

	a.json(w, http.StatusAccepted, run.Snapshot())
}

func (a *App) StudioRun(w http.ResponseWriter, r *http.Request) {
	run, ok := a.runForRequest(w, r)
	if !ok {
		return
	}
	a.json(w, http.StatusOK, run.Snapshot())
}

func (a *App) StudioRetry(w http.ResponseWriter, r *http.Request) {
	run, ok := a.runForRequest(w, r)
	if !ok {
		return
	}
	jobID := chi.URLParam(r, "job_id")
	job, err := a.Orchestrator.Retry(r.Context(), run, jobID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			a.error(w, http.StatusNotFound, "not_found", "job not found")
		case errors.Is(err, domain.ErrJobNotRetryable):
			a.error(w, http.StatusConflict, "not_retryable", "only failed jobs can be retried")
		default:
			a.error(w, http.StatusInternalServerError, "internal", "retry failed")
		}
		return
	}
	a.json(w, http.StatusOK, job)
}

// StudioJobDownload streams the job's result bytes with a filename derived
// from the job title. When the fetch fails the client is redirected to the
// source URL instead; the action is never dropped.
func (a *App) StudioJobDownload(w http.ResponseWriter, r *http.Request) {
	run, ok := a.runForRequest(w, r)
	if !ok {
		return
	}
	jobID := chi.URLParam(r, "job_id")
	job, ok := run.Job(jobID)
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "job not found")
		return
	}
	if job.Status != studio.JobStatusSuccess || job.URL == "" {
		a.error(w, http.StatusConflict, "no_result", "job has no result to download")
		return
	}

	data, mime, err := a.fetchImage(r.Context(), job.URL)
	if err != nil {
		a.Logger.Warn().Err(err).Str("job_id", job.ID).Msg("download fetch failed, redirecting")
		http.Redirect(w, r, job.URL, http.StatusFound)
		return
	}
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.png", sanitizeFilename(job.Title)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// StudioZip archives every successful job of the run into one download.
func (a *App) StudioZip(w http.ResponseWriter, r *http.Request) {
	run, ok := a.runForRequest(w, r)
	if !ok {
		return
	}
	jobs := run.SuccessfulJobs()
	if len(jobs) == 0 {
		a.error(w, http.StatusConflict, "no_result", "run has no successful jobs")
		return
	}
	var assets []zip.Asset
	for _, job := range jobs {
		data, mime, err := a.fetchImage(r.Context(), job.URL)
		if err != nil {
			a.Logger.Warn().Err(err).Str("job_id", job.ID).Msg("zip fetch failed, skipping job")
			continue
		}
		assets = append(assets, zip.Asset{
			Filename: fmt.Sprintf("%s.png", sanitizeFilename(job.Title)),
			MIME:     mime,
			Data:     data,
		})
	}
	if len(assets) == 0 {
		a.error(w, http.StatusBadGateway, "fetch_failed", "no results could be fetched")
		return
	}
	archive := zip.ArchiveAssets(assets)
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=run-%s.zip", run.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

// StudioSaveAll persists every successful job independently: one failing save
// never aborts the rest.
func (a *App) StudioSaveAll(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	run, ok := a.runForRequest(w, r)
	if !ok {
		return
	}
	type saveResult struct {
		JobID string `json:"job_id"`
		Saved bool   `json:"saved"`
		ID    string `json:"id,omitempty"`
		Error string `json:"error,omitempty"`
	}
	var results []saveResult
	for _, job := range run.SuccessfulJobs() {
		record, err := a.persistImage(r.Context(), userID, job.URL, job.Description, run.ThemeKey)
		if err != nil {
			a.Logger.Error().Err(err).Str("job_id", job.ID).Msg("save all: persist failed")
			results = append(results, saveResult{JobID: job.ID, Error: err.Error()})
			continue
		}
		results = append(results, saveResult{JobID: job.ID, Saved: true, ID: record.ID})
	}
	a.json(w, http.StatusOK, map[string]any{"items": results})
}

func (a *App) runForRequest(w http.ResponseWriter, r *http.Request) (*studio.Run, bool) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return nil, false
	}
	runID := chi.URLParam(r, "run_id")
	if runID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "run_id required")
		return nil, false
	}
	run, ok := a.Sessions.Get(runID)
	if !ok || run.UserID != userID {
		a.error(w, http.StatusNotFound, "not_found", "run not found")
		return nil, false
	}
	return run, true
}

func (a *App) fetchImage(ctx context.Context, url string) ([]byte, string, error) {
	if data, mime, ok := decodeDataURI(url); ok {
		return data, mime, nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := a.httpClient().Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, "", fmt.Errorf("fetch image: http %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<20))
	if err != nil {
		return nil, "", err
	}
	mime := resp.Header.Get("Content-Type")
	if mime == "" {
		mime = "image/png"
	}
	return data, mime, nil
}

func (a *App) httpClient() *http.Client {
	if a.HTTPClient != nil {
		return a.HTTPClient
	}
	return http.DefaultClient
}

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "image"
	}
	replacer := strings.NewReplacer("/", "-", "\\", "-", " ", "_", "\"", "", "'", "")
	return replacer.Replace(name)
}
