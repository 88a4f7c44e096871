package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

type promptEnhanceRequest struct {
	Prompt string `json:"prompt"`
}

type promptAnalyzeRequest struct {
	Image string `json:"image"`
}

// PromptEnhance rewrites a rough style idea into a richer prompt.
func (a *App) PromptEnhance(w http.ResponseWriter, r *http.Request) {
	var req promptEnhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		a.error(w, http.StatusBadRequest, "validation", "prompt is required")
		return
	}
	enhanced, err := a.Enhancer.Enhance(r.Context(), req.Prompt)
	if err != nil {
		a.Logger.Error().Err(err).Msg("prompt enhance failed")
		a.error(w, http.StatusBadGateway, "provider_failure", "could not enhance prompt")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"prompt": enhanced})
}

// PromptAnalyze describes the style of a reference image as a reusable prompt.
func (a *App) PromptAnalyze(w http.ResponseWriter, r *http.Request) {
	var req promptAnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Image) == "" {
		a.error(w, http.StatusBadRequest, "validation", "image is required")
		return
	}
	description, err := a.Enhancer.Analyze(r.Context(), req.Image)
	if err != nil {
		a.Logger.Error().Err(err).Msg("prompt analyze failed")
		a.error(w, http.StatusBadGateway, "provider_failure", "could not analyze image")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"prompt": description})
}
