package repository

import (
	"context"
	"errors"

	"noteboard/internal/domain/entity"
)

// ErrNoteNotFound is returned when a note does not exist for the given owner.
// An existing note owned by a different user is indistinguishable from a
// nonexistent one.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository defines the standard operations for note persistence.
// Every lookup is scoped to an owning user.
type NoteRepository interface {
	// FindByIDAndOwner retrieves the note with the given ID if it is owned by
	// ownerID, returning ErrNoteNotFound otherwise.
	FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.Note, error)

	// ListByOwner returns the owner's notes ordered by creation time
	// descending, sliced by offset and limit.
	ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]*entity.Note, error)

	// CountByOwner returns the total number of notes the owner has.
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)

	// Create persists a new note. The generated ID and timestamps are written
	// back to the entity.
	Create(ctx context.Context, note *entity.Note) error

	// Update persists changes to title and content of an existing note.
	Update(ctx context.Context, note *entity.Note) error

	// DeleteByIDAndOwner removes the note with the given ID if it is owned by
	// ownerID, returning ErrNoteNotFound otherwise.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID int64) error
}
