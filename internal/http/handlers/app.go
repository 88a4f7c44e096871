package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"pictureme/internal/infra"
	"pictureme/internal/middleware"
	"pictureme/internal/providers/image"
	promptsvc "pictureme/internal/providers/prompt"
	"pictureme/internal/storage"
	"pictureme/internal/studio"
)

// GoogleVerifier validates a Google ID token and returns its claims.
type GoogleVerifier interface {
	VerifyIDToken(ctx context.Context, token string) (map[string]any, error)
}

// App bundles the dependencies shared by all HTTP handlers.
type App struct {
	Config         *infra.Config
	Logger         infra.Logger
	SQL            infra.SQLExecutor
	Store          *storage.FileStore
	Sessions       *studio.Sessions
	Orchestrator   *studio.Orchestrator
	Generator      image.Generator
	Enhancer       promptsvc.Enhancer
	GoogleVerifier GoogleVerifier
	JWTSecret      string
	HTTPClient     *http.Client
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]errorResponse{"error": {Code: errCode, Message: message}})
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}
