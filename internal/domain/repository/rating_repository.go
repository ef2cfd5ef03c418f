// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"cafemeetup/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for rating persistence.
var (
	// ErrRatingNotFound is returned when a rating is not found.
	ErrRatingNotFound = errors.New("rating not found")
	// ErrRatingExists is returned when the rater has already rated this date.
	ErrRatingExists = errors.New("date already rated")
)

// RatingRepository defines the interface for post-date rating persistence.
type RatingRepository interface {
	// Create persists a new rating. It returns ErrRatingExists when the
	// rater has already rated the date.
	Create(ctx context.Context, rating *entity.Rating) error

	// FindByDateAndRater retrieves the rating a user gave for a date, if any.
	FindByDateAndRater(ctx context.Context, dateID, raterID uuid.UUID) (*entity.Rating, error)

	// FindByRated retrieves ratings received by a user, newest first.
	FindByRated(ctx context.Context, ratedID uuid.UUID, limit, offset int) ([]*entity.Rating, error)

	// AverageScore returns the mean score received by a user and the number
	// of ratings it is based on.
	AverageScore(ctx context.Context, ratedID uuid.UUID) (float64, int64, error)
}
