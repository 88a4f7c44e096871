package domain

import "time"

// User represents an authenticated account within the platform.
type User struct {
	ID        string
	GoogleSub string
	Email     string
	Name      string
	Picture   string
	Locale    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
