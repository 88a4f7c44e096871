package handlers

import (
	"net/http"

	"pictureme/internal/catalog"
)

type catalogTheme struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Kind        string   `json:"kind"`
	Keys        []string `json:"keys,omitempty"`
	Expressions []string `json:"expressions,omitempty"`
	Poses       []string `json:"poses,omitempty"`
	AlbumStyles []string `json:"album_styles,omitempty"`
	Styles      []string `json:"styles,omitempty"`
	HairColors  []string `json:"hair_colors,omitempty"`
}

// Catalog lists the available themes together with the option schema the
// client needs to render each theme's controls.
func (a *App) Catalog(w http.ResponseWriter, r *http.Request) {
	themes := catalog.Themes()
	out := make([]catalogTheme, 0, len(themes))
	for _, t := range themes {
		out = append(out, catalogTheme{
			Key:         t.Key,
			Title:       t.Name,
			Kind:        string(t.Kind),
			Keys:        t.KeyOrder,
			Expressions: t.Expressions,
			Poses:       t.Poses,
			AlbumStyles: t.AlbumStyles,
			Styles:      t.Styles,
			HairColors:  t.HairColors,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"themes": out})
}
