package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"pictureme/internal/domain"
	"pictureme/internal/sqlinline"
)

type imageSaveRequest struct {
	ImageURL string `json:"image_url"`
	Prompt   string `json:"prompt"`
	ThemeKey string `json:"theme_key"`
}

// ImageSave downloads the generated result, copies it into local storage, and
// records the saved image for the authenticated user.
func (a *App) ImageSave(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req imageSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		a.error(w, http.StatusBadRequest, "validation", "image_url is required")
		return
	}

	record, err := a.persistImage(r.Context(), userID, req.ImageURL, req.Prompt, req.ThemeKey)
	if err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("image save failed")
		a.error(w, http.StatusBadGateway, "save_failed", "could not persist image")
		return
	}
	a.json(w, http.StatusCreated, record)
}

// ImagesList returns the caller's saved images, newest first.
func (a *App) ImagesList(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	rows, err := a.SQL.Query(r.Context(), sqlinline.QSelectUserImages, userID)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "could not list images")
		return
	}
	defer rows.Close()

	images := make([]domain.SavedImage, 0)
	for rows.Next() {
		var img domain.SavedImage
		if err := rows.Scan(&img.ID, &img.UserID, &img.ImageURL, &img.Prompt, &img.ThemeKey, &img.CreatedAt); err != nil {
			a.error(w, http.StatusInternalServerError, "internal", "could not read images")
			return
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "could not read images")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": images})
}

// ImageGet returns a single saved image. Lookups are scoped to the caller, so
// another user's image id reads as missing.
func (a *App) ImageGet(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	imageID := chi.URLParam(r, "image_id")
	if strings.TrimSpace(imageID) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "image_id required")
		return
	}
	row := a.SQL.QueryRow(r.Context(), sqlinline.QSelectSavedImage, imageID, userID)
	var img domain.SavedImage
	if err := row.Scan(&img.ID, &img.UserID, &img.ImageURL, &img.Prompt, &img.ThemeKey, &img.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.error(w, http.StatusNotFound, "not_found", "image not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "could not read image")
		return
	}
	a.json(w, http.StatusOK, img)
}

// persistImage copies the result bytes into the file store and inserts the
// database record. It accepts both remote URLs and data URIs.
func (a *App) persistImage(ctx context.Context, userID, sourceURL, prompt, themeKey string) (*domain.SavedImage, error) {
	data, _, err := a.fetchImage(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("fetch result: %w", err)
	}
	key := fmt.Sprintf("generated/%s/%s.png", userID, uuid.NewString())
	storedKey, err := a.Store.Write(ctx, key, data)
	if err != nil {
		return nil, fmt.Errorf("store result: %w", err)
	}
	publicURL := strings.TrimRight(a.Config.StorageBaseURL, "/") + "/" + storedKey

	record := &domain.SavedImage{
		UserID:   userID,
		ImageURL: publicURL,
		Prompt:   prompt,
		ThemeKey: themeKey,
	}
	row := a.SQL.QueryRow(ctx, sqlinline.QInsertSavedImage, userID, publicURL, prompt, themeKey)
	if err := row.Scan(&record.ID, &record.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert saved image: %w", err)
	}
	return record, nil
}

// decodeDataURI unpacks a base64 data URI into raw bytes and its MIME type.
func decodeDataURI(uri string) ([]byte, string, bool) {
	if !strings.HasPrefix(uri, "data:") {
		return nil, "", false
	}
	rest := strings.TrimPrefix(uri, "data:")
	semi := strings.Index(rest, ";base64,")
	if semi < 0 {
		return nil, "", false
	}
	mime := rest[:semi]
	payload := rest[semi+len(";base64,"):]
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", false
	}
	if mime == "" {
		mime = "image/png"
	}
	return data, mime, true
}
