package entity

import "time"

// Tweet belongs to exactly one user. UpdatedAt stays nil until the first edit
// and is re-stamped on every edit.
type Tweet struct {
	ID        int64
	Content   string
	CreatedAt time.Time
	UpdatedAt *time.Time
	UserID    int64
}
