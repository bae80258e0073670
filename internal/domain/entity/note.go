package entity

import "time"

// Note is a text note owned by exactly one user. A note is only visible and
// mutable through requests authenticated as its owner.
type Note struct {
	ID        int64     // Unique identifier, assigned by the database on creation.
	Title     string    // Required, non-empty.
	Content   string    // Required, non-empty.
	UserID    int64     // Owning user; immutable after creation.
	CreatedAt time.Time // Set on creation, immutable thereafter.
	UpdatedAt time.Time // Timestamp of the last modification.
}
