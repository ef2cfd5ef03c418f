package postgres

import (
	"context"
	"time"

	"cafemeetup/internal/domain/entity"
	domainerrors "cafemeetup/internal/domain/errors"
	"cafemeetup/internal/domain/repository"
	"cafemeetup/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// blackBookRepository implements the domain's BlackBookRepository interface using GORM.
type blackBookRepository struct {
	db *gorm.DB
}

// NewBlackBookRepository is the constructor for blackBookRepository.
func NewBlackBookRepository(db *gorm.DB) repository.BlackBookRepository {
	return &blackBookRepository{db: db}
}

// Upsert creates or replaces the owner's note about a subject. The unique
// index on owner and subject drives the conflict clause.
func (repo *blackBookRepository) Upsert(ctx context.Context, entry *entity.BlackBookEntry) error {
	entryM := fromBlackBookDomain(entry)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "subject_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"note", "updated_at"}),
		}).
		Create(entryM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert black book entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// FindByOwner retrieves all of an owner's entries, newest first.
func (repo *blackBookRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.BlackBookEntry, error) {
	var models []model.BlackBookModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find black book entries")
	}

	entries := make([]*entity.BlackBookEntry, 0, len(models))
	for i := range models {
		entries = append(entries, toBlackBookDomain(&models[i]))
	}

	return entries, nil
}

// FindByOwnerAndSubject retrieves the owner's note about a subject, if any.
func (repo *blackBookRepository) FindByOwnerAndSubject(ctx context.Context, ownerID, subjectID uuid.UUID) (*entity.BlackBookEntry, error) {
	var entryM model.BlackBookModel
	err := repo.db.WithContext(ctx).
		First(&entryM, "owner_id = ? AND subject_id = ?", ownerID, subjectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlackBookEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find black book entry")
	}

	return toBlackBookDomain(&entryM), nil
}

// Delete removes the owner's note about a subject.
func (repo *blackBookRepository) Delete(ctx context.Context, ownerID, subjectID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Delete(&model.BlackBookModel{}, "owner_id = ? AND subject_id = ?", ownerID, subjectID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete black book entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlackBookEntryNotFound
	}

	return nil
}

// toBlackBookDomain converts a GORM BlackBookModel to a domain entity.
func toBlackBookDomain(data *model.BlackBookModel) *entity.BlackBookEntry {
	if data == nil {
		return nil
	}

	return &entity.BlackBookEntry{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		SubjectID: data.SubjectID,
		Note:      data.Note,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromBlackBookDomain converts a domain entity to a GORM BlackBookModel.
func fromBlackBookDomain(data *entity.BlackBookEntry) *model.BlackBookModel {
	if data == nil {
		return nil
	}

	return &model.BlackBookModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		SubjectID: data.SubjectID,
		Note:      data.Note,
		CreatedAt: data.CreatedAt,
		UpdatedAt: time.Now(),
	}
}
