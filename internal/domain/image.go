package domain

import "time"

// SavedImage is a generation result persisted to a user's profile.
type SavedImage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ImageURL  string    `json:"image_url"`
	Prompt    string    `json:"prompt,omitempty"`
	ThemeKey  string    `json:"theme_key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
