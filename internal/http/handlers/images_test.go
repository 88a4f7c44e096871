package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pictureme/internal/domain"
	"pictureme/internal/sqlinline"
)

func TestImageGetReturnsCallersImage(t *testing.T) {
	app := newTestApp(t, &blockingGenerator{})
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	app.SQL = queryRowOnlyDB{stubDB: &stubDB{}, match: sqlinline.QSelectSavedImage, row: stubRow{scan: func(dest ...any) error {
		*(dest[0].(*string)) = "img-1"
		*(dest[1].(*string)) = "user-1"
		*(dest[2].(*string)) = "http://localhost:8080/static/generated/user-1/a.png"
		*(dest[3].(*string)) = "a compiled instruction"
		*(dest[4].(*string)) = "costumes"
		*(dest[5].(*time.Time)) = created
		return nil
	}}}

	req := withRouteParams(
		authedRequest(http.MethodGet, "/v1/images/img-1", nil, "user-1"),
		map[string]string{"image_id": "img-1"},
	)
	rec := httptest.NewRecorder()
	app.ImageGet(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var img domain.SavedImage
	if err := json.Unmarshal(rec.Body.Bytes(), &img); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.ID != "img-1" || img.ThemeKey != "costumes" || !img.CreatedAt.Equal(created) {
		t.Fatalf("image = %+v", img)
	}
}

func TestImageGetMissingRowIs404(t *testing.T) {
	app := newTestApp(t, &blockingGenerator{})
	// The stub scans pgx.ErrNoRows for any unmatched query, which covers both
	// an unknown id and another user's image.
	app.SQL = queryRowOnlyDB{stubDB: &stubDB{}}

	req := withRouteParams(
		authedRequest(http.MethodGet, "/v1/images/img-9", nil, "user-2"),
		map[string]string{"image_id": "img-9"},
	)
	rec := httptest.NewRecorder()
	app.ImageGet(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestImageGetRequiresID(t *testing.T) {
	app := newTestApp(t, &blockingGenerator{})
	req := withRouteParams(
		authedRequest(http.MethodGet, "/v1/images/", nil, "user-1"),
		map[string]string{},
	)
	rec := httptest.NewRecorder()
	app.ImageGet(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
