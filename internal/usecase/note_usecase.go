package usecase

import (
	"context"

	"noteboard/internal/domain/entity"
)

// --- Input DTOs ---

// ListNotesInput carries pagination parameters. Non-positive values fall back
// to the defaults (page 1, 10 per page).
type ListNotesInput struct {
	Page    int
	PerPage int
}

// CreateNoteInput defines the data required to create a note.
type CreateNoteInput struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdateNoteInput defines a partial note update. Nil fields are left
// untouched; a present-but-empty field is rejected.
type UpdateNoteInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// --- Output DTOs ---

// NotePage is one page of a user's notes, newest first.
type NotePage struct {
	Notes   []*entity.Note
	Total   int64
	Page    int
	PerPage int
	Pages   int
}

// NoteUsecase defines the interface for note CRUD operations. Every operation
// is scoped to the authenticated owner resolved by the delivery layer.
type NoteUsecase interface {
	// List returns the requested page of the owner's notes ordered by
	// creation time descending. An out-of-range page yields an empty page.
	List(ctx context.Context, ownerID int64, input *ListNotesInput) (*NotePage, error)

	// Create persists a new note owned by ownerID.
	Create(ctx context.Context, ownerID int64, input *CreateNoteInput) (*entity.Note, error)

	// Get returns the note if it exists and is owned by ownerID.
	Get(ctx context.Context, ownerID, noteID int64) (*entity.Note, error)

	// Update applies the present fields of input to the owner's note.
	Update(ctx context.Context, ownerID, noteID int64, input *UpdateNoteInput) (*entity.Note, error)

	// Delete removes the owner's note.
	Delete(ctx context.Context, ownerID, noteID int64) error
}
