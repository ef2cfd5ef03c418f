package usecase

import (
	"context"

	"cafemeetup/internal/domain/entity"

	"github.com/google/uuid"
)

// RateDateInput carries a post-date rating submission.
type RateDateInput struct {
	Score   int
	Comment *string
}

// RatingSummary aggregates the ratings a user has received.
type RatingSummary struct {
	AverageScore float64
	RatingCount  int64
}

// RatingUsecase manages post-date ratings.
type RatingUsecase interface {
	// RateDate records the caller's rating of the other party of a completed
	// date. A date can be rated once per rater.
	RateDate(ctx context.Context, userID, proposalID uuid.UUID, input *RateDateInput) (*entity.Rating, error)

	// Summary returns the aggregate ratings received by a user.
	Summary(ctx context.Context, userID uuid.UUID) (*RatingSummary, error)

	// Received lists ratings the user has received, newest first.
	Received(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Rating, error)
}
