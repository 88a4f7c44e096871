package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"pictureme/internal/middleware"
	"pictureme/internal/sqlinline"
)

func TestSignAndVerifyJWT(t *testing.T) {
	secret := "test-secret"
	claims := middleware.TokenClaims{
		Sub:      "user-123",
		Locale:   "en",
		Exp:      time.Now().Add(time.Hour).Unix(),
		Issuer:   "pictureme",
		Audience: "pictureme-clients",
	}
	token, err := middleware.SignJWT(secret, claims)
	if err != nil {
		t.Fatalf("SignJWT() unexpected error: %v", err)
	}
	parsed, err := middleware.VerifyJWT(secret, token)
	if err != nil {
		t.Fatalf("VerifyJWT() unexpected error: %v", err)
	}
	if parsed.Sub != claims.Sub || parsed.Locale != claims.Locale {
		t.Fatalf("VerifyJWT() returned %+v, want %+v", parsed, claims)
	}
}

func TestVerifyJWTInvalidSignature(t *testing.T) {
	claims := middleware.TokenClaims{
		Sub: "user-123",
		Exp: time.Now().Add(time.Hour).Unix(),
	}
	token, err := middleware.SignJWT("secret-a", claims)
	if err != nil {
		t.Fatalf("SignJWT() error: %v", err)
	}
	if _, err := middleware.VerifyJWT("secret-b", token); err == nil {
		t.Fatalf("VerifyJWT() expected invalid signature error")
	}
}

func TestVerifyJWTExpired(t *testing.T) {
	claims := middleware.TokenClaims{
		Sub: "user-123",
		Exp: time.Now().Add(-time.Minute).Unix(),
	}
	token, err := middleware.SignJWT("secret", claims)
	if err != nil {
		t.Fatalf("SignJWT() error: %v", err)
	}
	if _, err := middleware.VerifyJWT("secret", token); err == nil {
		t.Fatalf("VerifyJWT() expected expiration error")
	}
}

type stubVerifier struct {
	claims map[string]any
	err    error
}

func (v stubVerifier) VerifyIDToken(ctx context.Context, token string) (map[string]any, error) {
	return v.claims, v.err
}

func TestAuthGoogleVerifyIssuesToken(t *testing.T) {
	app := newTestApp(t, &blockingGenerator{})
	app.SQL = queryRowOnlyDB{stubDB: &stubDB{}, match: sqlinline.QUpsertGoogleUser, row: stubRow{scan: func(dest ...any) error {
		*(dest[0].(*string)) = "user-42"
		*(dest[1].(*string)) = "en"
		return nil
	}}}
	app.GoogleVerifier = stubVerifier{claims: map[string]any{
		"sub":   "google-sub-1",
		"email": "person@example.com",
		"name":  "Test Person",
	}}

	body, _ := json.Marshal(googleVerifyRequest{IDToken: "token"})
	rec := httptest.NewRecorder()
	app.AuthGoogleVerify(rec, httptest.NewRequest(http.MethodPost, "/v1/auth/google", bytes.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp googleVerifyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.ID != "user-42" || resp.User.Email != "person@example.com" {
		t.Fatalf("user = %+v", resp.User)
	}
	claims, err := middleware.VerifyJWT(app.JWTSecret, resp.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Sub != "user-42" || claims.Issuer != "pictureme" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestAuthGoogleVerifyRejectsBadToken(t *testing.T) {
	app := newTestApp(t, &blockingGenerator{})
	app.GoogleVerifier = stubVerifier{err: errors.New("bad signature")}

	body, _ := json.Marshal(googleVerifyRequest{IDToken: "nope"})
	rec := httptest.NewRecorder()
	app.AuthGoogleVerify(rec, httptest.NewRequest(http.MethodPost, "/v1/auth/google", bytes.NewReader(body)))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

// queryRowOnlyDB serves the single QueryRow a handler under test needs. Any
// other query scans as no rows.
type queryRowOnlyDB struct {
	*stubDB
	match string
	row   stubRow
}

func (d queryRowOnlyDB) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	if query == d.match {
		return d.row
	}
	return stubRow{}
}
