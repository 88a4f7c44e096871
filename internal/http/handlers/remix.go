package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"pictureme/internal/providers/image"
)

type remixRequest struct {
	Image  string `json:"image"`
	Prompt string `json:"prompt"`
}

// Remix runs a single ad-hoc generation against the source photo with a
// freeform prompt, outside the themed run pipeline.
func (a *App) Remix(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req remixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Image) == "" {
		a.error(w, http.StatusBadRequest, "validation", "image is required")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		a.error(w, http.StatusBadRequest, "validation", "prompt is required")
		return
	}

	url, err := a.Generator.Generate(r.Context(), image.GenerateRequest{
		Prompt:      req.Prompt,
		SourceImage: req.Image,
		AspectRatio: image.DefaultAspectRatio,
	})
	if err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("remix generation failed")
		a.error(w, http.StatusBadGateway, "provider_failure", "generation failed")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"url": url})
}
