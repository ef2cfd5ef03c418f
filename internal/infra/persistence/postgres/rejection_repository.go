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
)

// rejectionRepository implements the domain's RejectionRepository interface using GORM.
type rejectionRepository struct {
	db *gorm.DB
}

// NewRejectionRepository is the constructor for rejectionRepository.
func NewRejectionRepository(db *gorm.DB) repository.RejectionRepository {
	return &rejectionRepository{db: db}
}

// Get retrieves the user's rejection counter. A user with no counter row yet
// gets a zero counter stamped now, without writing a row.
func (repo *rejectionRepository) Get(ctx context.Context, userID uuid.UUID) (*entity.RejectionCount, error) {
	var countM model.RejectionCountModel
	err := repo.db.WithContext(ctx).First(&countM, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.RejectionCount{
				UserID:        userID,
				Count:         0,
				LastResetDate: time.Now(),
			}, nil
		}

		return nil, errors.Wrap(err, "failed to find rejection counter")
	}

	return toRejectionDomain(&countM), nil
}

// Increment raises the counter by one, applying the lazy daily reset first.
// The row is created on first use.
func (repo *rejectionRepository) Increment(ctx context.Context, userID uuid.UUID) (*entity.RejectionCount, error) {
	now := time.Now()

	var countM model.RejectionCountModel
	err := repo.db.WithContext(ctx).First(&countM, "user_id = ?", userID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		countM = model.RejectionCountModel{
			UserID:        userID,
			Count:         1,
			LastResetDate: now,
		}
		if createErr := repo.db.WithContext(ctx).Create(&countM).Error; createErr != nil {
			return nil, domainerrors.NewDatabaseExecuteError(createErr, "failed to create rejection counter")
		}

		return toRejectionDomain(&countM), nil

	case err != nil:
		return nil, errors.Wrap(err, "failed to find rejection counter")
	}

	counter := toRejectionDomain(&countM)
	if counter.ShouldReset(now) {
		countM.Count = 1
		countM.LastResetDate = now
	} else {
		countM.Count++
	}

	if err := repo.db.WithContext(ctx).Save(&countM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update rejection counter")
	}

	return toRejectionDomain(&countM), nil
}

// Reset zeroes the counter and stamps a new reset date.
func (repo *rejectionRepository) Reset(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.RejectionCountModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"count":           0,
			"last_reset_date": time.Now(),
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to reset rejection counter")
	}

	return nil
}

// toRejectionDomain converts a GORM RejectionCountModel to a domain entity.
func toRejectionDomain(data *model.RejectionCountModel) *entity.RejectionCount {
	if data == nil {
		return nil
	}

	return &entity.RejectionCount{
		UserID:        data.UserID,
		Count:         data.Count,
		LastResetDate: data.LastResetDate,
		UpdatedAt:     data.UpdatedAt,
	}
}
