package catalog

import "strings"

// MaxHairColors bounds hair color selection. The two-color blend sentence is
// the largest supported combination; anything larger is rejected at
// validation time.
const MaxHairColors = 2

// Selection captures the user's choices for the active theme. A custom
// free-text field counts as active when it is non-empty after trimming.
type Selection struct {
	Season              string   `json:"season,omitempty"`
	Holiday             string   `json:"holiday,omitempty"`
	Expression          string   `json:"expression,omitempty"`
	Pose                string   `json:"pose,omitempty"`
	LookbookStyle       string   `json:"lookbook_style,omitempty"`
	CustomLookbookStyle string   `json:"custom_lookbook_style,omitempty"`
	AlbumStyle          string   `json:"album_style,omitempty"`
	HairStyles          []string `json:"hair_styles,omitempty"`
	CustomHairStyle     string   `json:"custom_hair_style,omitempty"`
	HairColors          []string `json:"hair_colors,omitempty"`
	Platforms           []string `json:"platforms,omitempty"`
	CustomPlatform      string   `json:"custom_platform,omitempty"`
	CustomStyle         string   `json:"custom_style,omitempty"`
}

// Normalize trims free-text fields and fills theme defaults so a sparse
// payload still resolves to a usable selection.
func (s *Selection) Normalize() {
	s.Season = defaultString(s.Season, "Autumn")
	s.Holiday = defaultString(s.Holiday, "Christmas")
	s.Expression = defaultString(s.Expression, "Friendly Smile")
	s.Pose = defaultString(s.Pose, "Forward")
	s.LookbookStyle = strings.TrimSpace(s.LookbookStyle)
	s.CustomLookbookStyle = strings.TrimSpace(s.CustomLookbookStyle)
	s.AlbumStyle = strings.TrimSpace(s.AlbumStyle)
	s.CustomHairStyle = strings.TrimSpace(s.CustomHairStyle)
	s.CustomPlatform = strings.TrimSpace(s.CustomPlatform)
	s.CustomStyle = strings.TrimSpace(s.CustomStyle)
}

func defaultString(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
