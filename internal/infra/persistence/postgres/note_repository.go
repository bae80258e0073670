package postgres

import (
	"context"

	"gorm.io/gorm"

	"noteboard/internal/domain/entity"
	domainerrors "noteboard/internal/domain/errors"
	"noteboard/internal/domain/repository"
	"noteboard/internal/errors"
	"noteboard/internal/infra/persistence/model"
)

// noteRepository implements the domain.NoteRepository interface using GORM.
// Every query is scoped to the owning user; an ownership mismatch surfaces as
// ErrNoteNotFound, identical to a missing row.
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

// FindByIDAndOwner retrieves a note by ID scoped to its owner.
func (repo *noteRepository) FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.Note, error) {
	var noteM model.NoteModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&noteM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find note by id")
	}

	return toNoteDomain(&noteM), nil
}

// ListByOwner returns the owner's notes, newest first. The id tiebreaker keeps
// pagination stable when creation timestamps collide.
func (repo *noteRepository) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]*entity.Note, error) {
	var noteModels []model.NoteModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&noteModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notes")
	}

	notes := make([]*entity.Note, 0, len(noteModels))
	for i := range noteModels {
		notes = append(notes, toNoteDomain(&noteModels[i]))
	}

	return notes, nil
}

// CountByOwner returns the total number of notes owned by the user.
func (repo *noteRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("user_id = ?", ownerID).
		Count(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count notes")
	}

	return total, nil
}

// Create persists a new note.
func (repo *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	noteM := fromNoteDomain(note)

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required note information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "note owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create note")
	}

	note.ID = noteM.ID
	note.CreatedAt = noteM.CreatedAt
	note.UpdatedAt = noteM.UpdatedAt

	return nil
}

// Update persists the mutable fields (title, content) of an existing note.
func (repo *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	res := repo.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("id = ? AND user_id = ?", note.ID, note.UserID).
		Updates(map[string]any{
			"title":   note.Title,
			"content": note.Content,
		})
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to update note")
	}
	if res.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

// DeleteByIDAndOwner removes a note by ID scoped to its owner.
func (repo *noteRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID int64) error {
	res := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.NoteModel{})
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete note")
	}
	if res.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toNoteDomain converts a GORM NoteModel to a domain Note entity.
func toNoteDomain(data *model.NoteModel) *entity.Note {
	if data == nil {
		return nil
	}

	return &entity.Note{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromNoteDomain converts a domain Note entity to a GORM NoteModel for persistence.
func fromNoteDomain(data *entity.Note) *model.NoteModel {
	if data == nil {
		return nil
	}

	return &model.NoteModel{
		ID:      data.ID,
		Title:   data.Title,
		Content: data.Content,
		UserID:  data.UserID,
	}
}
