package impl

import (
	"context"
	"log/slog"

	deliverycontext "cafemeetup/internal/delivery/context"
	"cafemeetup/internal/domain/entity"
	domainerrors "cafemeetup/internal/domain/errors"
	"cafemeetup/internal/domain/repository"
	"cafemeetup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	txManager    repository.TransactionManager
	matchRepo    repository.MatchRepository
	proposalRepo repository.ProposalRepository
	ratingRepo   repository.RatingRepository
	logger       *slog.Logger
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	MatchRepo    repository.MatchRepository
	ProposalRepo repository.ProposalRepository
	RatingRepo   repository.RatingRepository
	Logger       *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager:    params.TxManager,
		matchRepo:    params.MatchRepo,
		proposalRepo: params.ProposalRepo,
		ratingRepo:   params.RatingRepo,
		logger:       params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RateDate records the caller's rating of the other party of a completed date.
func (srv *ratingService) RateDate(ctx context.Context, userID, proposalID uuid.UUID, input *usecase.RateDateInput) (*entity.Rating, error) {
	if !entity.ValidScore(input.Score) {
		return nil, errors.Wrap(domainerrors.ErrScoreOutOfRange, "score must be between 1 and 5")
	}

	var rating *entity.Rating
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		proposal, err := repoFactory.ProposalRepo().FindByID(ctx, proposalID)
		if err != nil {
			if errors.Is(err, repository.ErrProposalNotFound) {
				return errors.Wrap(domainerrors.ErrProposalNotFound, "date not found")
			}

			return errors.Wrap(err, "failed to find proposal")
		}

		match, err := repoFactory.MatchRepo().FindByID(ctx, proposal.MatchID)
		if err != nil {
			return errors.Wrap(err, "failed to find match for proposal")
		}
		if !match.Involves(userID) {
			return errors.Wrap(domainerrors.ErrNotMatchParty, "rater is not a party to this date")
		}

		rating = &entity.Rating{
			DateID:  proposalID,
			RaterID: userID,
			RatedID: match.OtherParty(userID),
			Score:   input.Score,
			Comment: input.Comment,
		}
		if err := repoFactory.RatingRepo().Create(ctx, rating); err != nil {
			if errors.Is(err, repository.ErrRatingExists) {
				return errors.Wrap(domainerrors.ErrRatingExists, "date already rated")
			}

			return errors.Wrap(err, "failed to create rating")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to rate date", slog.Any("dateID", proposalID), slog.Any("error", err))

		return nil, err
	}

	return rating, nil
}

// Summary returns the aggregate ratings received by a user.
func (srv *ratingService) Summary(ctx context.Context, userID uuid.UUID) (*usecase.RatingSummary, error) {
	avg, count, err := srv.ratingRepo.AverageScore(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate ratings")
	}

	return &usecase.RatingSummary{AverageScore: avg, RatingCount: count}, nil
}

// Received lists ratings the user has received, newest first.
func (srv *ratingService) Received(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Rating, error) {
	ratings, err := srv.ratingRepo.FindByRated(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list received ratings")
	}

	return ratings, nil
}
