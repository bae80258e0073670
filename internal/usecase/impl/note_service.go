package impl

import (
	"context"
	"log/slog"

	"noteboard/internal/domain/entity"
	domainerrors "noteboard/internal/domain/errors"
	"noteboard/internal/domain/repository"
	"noteboard/internal/errors"
	"noteboard/internal/usecase"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

// noteService implements the NoteUsecase interface.
type noteService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewNoteService is the constructor for noteService.
func NewNoteService(txManager repository.TransactionManager, logger *slog.Logger) usecase.NoteUsecase {
	return &noteService{
		txManager: txManager,
		logger:    logger,
	}
}

// List returns one page of the owner's notes, newest first.
func (srv *noteService) List(ctx context.Context, ownerID int64, input *usecase.ListNotesInput) (*usecase.NotePage, error) {
	if input == nil {
		input = &usecase.ListNotesInput{}
	}
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}

	result := &usecase.NotePage{
		Notes:   []*entity.Note{},
		Page:    page,
		PerPage: perPage,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		noteRepo := repoFactory.NoteRepo()

		total, countErr := noteRepo.CountByOwner(ctx, ownerID)
		if countErr != nil {
			return countErr
		}
		result.Total = total

		notes, listErr := noteRepo.ListByOwner(ctx, ownerID, (page-1)*perPage, perPage)
		if listErr != nil {
			return listErr
		}
		result.Notes = notes

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to list notes", slog.Int64("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list notes")
	}

	// ceil(total / perPage); an empty collection has zero pages.
	result.Pages = int((result.Total + int64(perPage) - 1) / int64(perPage))

	return result, nil
}

// Create persists a new note for the owner.
func (srv *noteService) Create(ctx context.Context, ownerID int64, input *usecase.CreateNoteInput) (*entity.Note, error) {
	if input == nil || input.Title == "" || input.Content == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Title and content are required")
	}

	note := &entity.Note{
		Title:   input.Title,
		Content: input.Content,
		UserID:  ownerID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NoteRepo().Create(ctx, note)
	})
	if err != nil {
		srv.logger.Error("Failed to create note", slog.Int64("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create note")
	}

	srv.logger.Debug("Note created", slog.Int64("noteID", note.ID), slog.Int64("ownerID", ownerID))

	return note, nil
}

// Get returns the owner's note, or a not-found error that does not reveal
// whether the note exists under another owner.
func (srv *noteService) Get(ctx context.Context, ownerID, noteID int64) (*entity.Note, error) {
	var note *entity.Note

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		note, findErr = repoFactory.NoteRepo().FindByIDAndOwner(ctx, noteID, ownerID)

		return findErr
	})
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, domainerrors.ErrNoteNotFound
		}

		return nil, errors.Wrap(err, "failed to get note")
	}

	return note, nil
}

// Update applies the present fields of input to the note. Absent fields are
// untouched; present-but-empty fields are rejected.
func (srv *noteService) Update(ctx context.Context, ownerID, noteID int64, input *usecase.UpdateNoteInput) (*entity.Note, error) {
	if input == nil {
		input = &usecase.UpdateNoteInput{}
	}

	var note *entity.Note

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		noteRepo := repoFactory.NoteRepo()

		var findErr error
		note, findErr = noteRepo.FindByIDAndOwner(ctx, noteID, ownerID)
		if findErr != nil {
			return findErr
		}

		if input.Title != nil {
			if *input.Title == "" {
				return domainerrors.ErrEmptyField.WithMessage("Title cannot be empty")
			}
			note.Title = *input.Title
		}
		if input.Content != nil {
			if *input.Content == "" {
				return domainerrors.ErrEmptyField.WithMessage("Content cannot be empty")
			}
			note.Content = *input.Content
		}

		return noteRepo.Update(ctx, note)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, domainerrors.ErrNoteNotFound
		}
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		srv.logger.Error("Failed to update note", slog.Int64("noteID", noteID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update note")
	}

	return note, nil
}

// Delete removes the owner's note.
func (srv *noteService) Delete(ctx context.Context, ownerID, noteID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NoteRepo().DeleteByIDAndOwner(ctx, noteID, ownerID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return domainerrors.ErrNoteNotFound
		}

		srv.logger.Error("Failed to delete note", slog.Int64("noteID", noteID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete note")
	}

	srv.logger.Debug("Note deleted", slog.Int64("noteID", noteID), slog.Int64("ownerID", ownerID))

	return nil
}
