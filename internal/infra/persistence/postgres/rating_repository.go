package postgres

import (
	"context"

	"cafemeetup/internal/domain/entity"
	domainerrors "cafemeetup/internal/domain/errors"
	"cafemeetup/internal/domain/repository"
	"cafemeetup/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ratingRepository implements the domain's RatingRepository interface using GORM.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// Create persists a new rating. The unique index on date and rater turns a
// second attempt into ErrRatingExists.
func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrRatingExists
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrScoreOutOfRange
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt

	return nil
}

// FindByDateAndRater retrieves the rating a user gave for a date, if any.
func (repo *ratingRepository) FindByDateAndRater(ctx context.Context, dateID, raterID uuid.UUID) (*entity.Rating, error) {
	var ratingM model.RatingModel
	err := repo.db.WithContext(ctx).
		First(&ratingM, "date_id = ? AND rater_id = ?", dateID, raterID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating")
	}

	return toRatingDomain(&ratingM), nil
}

// FindByRated retrieves ratings received by a user, newest first.
func (repo *ratingRepository) FindByRated(ctx context.Context, ratedID uuid.UUID, limit, offset int) ([]*entity.Rating, error) {
	var models []model.RatingModel
	err := repo.db.WithContext(ctx).
		Where("rated_id = ?", ratedID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find ratings by rated user")
	}

	ratings := make([]*entity.Rating, 0, len(models))
	for i := range models {
		ratings = append(ratings, toRatingDomain(&models[i]))
	}

	return ratings, nil
}

// AverageScore returns the mean score received by a user and the number of
// ratings it is based on. A user with no ratings gets a zero average.
func (repo *ratingRepository) AverageScore(ctx context.Context, ratedID uuid.UUID) (float64, int64, error) {
	var result struct {
		Average float64
		Total   int64
	}
	err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("COALESCE(AVG(score), 0) AS average, COUNT(*) AS total").
		Where("rated_id = ?", ratedID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to compute average score")
	}

	return result.Average, result.Total, nil
}

// toRatingDomain converts a GORM RatingModel to a domain entity.
func toRatingDomain(data *model.RatingModel) *entity.Rating {
	if data == nil {
		return nil
	}

	return &entity.Rating{
		ID:        data.ID,
		DateID:    data.DateID,
		RaterID:   data.RaterID,
		RatedID:   data.RatedID,
		Score:     data.Score,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
	}
}

// fromRatingDomain converts a domain entity to a GORM RatingModel.
func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	if data == nil {
		return nil
	}

	return &model.RatingModel{
		ID:        data.ID,
		DateID:    data.DateID,
		RaterID:   data.RaterID,
		RatedID:   data.RatedID,
		Score:     data.Score,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
	}
}
