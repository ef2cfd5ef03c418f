package impl

import (
	"context"
	"testing"

	"cafemeetup/internal/domain/entity"
	domainerrors "cafemeetup/internal/domain/errors"
	"cafemeetup/internal/domain/repository"
	mockRepo "cafemeetup/internal/mocks/repository"
	"cafemeetup/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ratingFixture struct {
	service      usecase.RatingUsecase
	matchRepo    *mockRepo.MockMatchRepository
	proposalRepo *mockRepo.MockProposalRepository
	ratingRepo   *mockRepo.MockRatingRepository
}

func newRatingFixture(t *testing.T) *ratingFixture {
	f := &ratingFixture{
		matchRepo:    mockRepo.NewMockMatchRepository(t),
		proposalRepo: mockRepo.NewMockProposalRepository(t),
		ratingRepo:   mockRepo.NewMockRatingRepository(t),
	}
	factory := &mockRepo.StubRepositoryFactory{
		MatchRepository:    f.matchRepo,
		ProposalRepository: f.proposalRepo,
		RatingRepository:   f.ratingRepo,
	}

	f.service = NewRatingService(RatingServiceParams{
		TxManager:    &mockRepo.StubTransactionManager{Factory: factory},
		MatchRepo:    f.matchRepo,
		ProposalRepo: f.proposalRepo,
		RatingRepo:   f.ratingRepo,
		Logger:       testLogger(),
	})

	return f
}

func TestRatingService_RateDate_Success(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()
	raterID := uuid.New()
	ratedID := uuid.New()
	matchID := uuid.New()
	proposalID := uuid.New()

	f.proposalRepo.On("FindByID", ctx, proposalID).Return(&entity.DateProposal{
		ID:      proposalID,
		MatchID: matchID,
		Status:  entity.DateConfirmed,
	}, nil)
	f.matchRepo.On("FindByID", ctx, matchID).Return(&entity.Match{
		ID:        matchID,
		ChooserID: raterID,
		ChosenID:  ratedID,
	}, nil)
	f.ratingRepo.On("Create", ctx, mock.MatchedBy(func(rating *entity.Rating) bool {
		return rating.RaterID == raterID && rating.RatedID == ratedID && rating.Score == 4
	})).Return(nil)

	rating, err := f.service.RateDate(ctx, raterID, proposalID, &usecase.RateDateInput{Score: 4})
	require.NoError(t, err)
	assert.Equal(t, ratedID, rating.RatedID)
}

func TestRatingService_RateDate_ScoreOutOfRange(t *testing.T) {
	f := newRatingFixture(t)

	for _, score := range []int{0, 6, -1} {
		_, err := f.service.RateDate(context.Background(), uuid.New(), uuid.New(), &usecase.RateDateInput{Score: score})
		assert.ErrorIs(t, err, domainerrors.ErrScoreOutOfRange, "score %d", score)
	}
}

func TestRatingService_RateDate_AlreadyRated(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()
	raterID := uuid.New()
	matchID := uuid.New()
	proposalID := uuid.New()

	f.proposalRepo.On("FindByID", ctx, proposalID).Return(&entity.DateProposal{
		ID:      proposalID,
		MatchID: matchID,
	}, nil)
	f.matchRepo.On("FindByID", ctx, matchID).Return(&entity.Match{
		ID:        matchID,
		ChooserID: raterID,
		ChosenID:  uuid.New(),
	}, nil)
	f.ratingRepo.On("Create", ctx, mock.Anything).Return(repository.ErrRatingExists)

	_, err := f.service.RateDate(ctx, raterID, proposalID, &usecase.RateDateInput{Score: 5})
	assert.ErrorIs(t, err, domainerrors.ErrRatingExists)
}

func TestRatingService_RateDate_NotAParty(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()
	matchID := uuid.New()
	proposalID := uuid.New()

	f.proposalRepo.On("FindByID", ctx, proposalID).Return(&entity.DateProposal{
		ID:      proposalID,
		MatchID: matchID,
	}, nil)
	f.matchRepo.On("FindByID", ctx, matchID).Return(&entity.Match{
		ID:        matchID,
		ChooserID: uuid.New(),
		ChosenID:  uuid.New(),
	}, nil)

	_, err := f.service.RateDate(ctx, uuid.New(), proposalID, &usecase.RateDateInput{Score: 3})
	assert.ErrorIs(t, err, domainerrors.ErrNotMatchParty)
}

func TestRatingService_Summary(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.ratingRepo.On("AverageScore", ctx, userID).Return(4.2, int64(5), nil)

	summary, err := f.service.Summary(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 4.2, summary.AverageScore)
	assert.Equal(t, int64(5), summary.RatingCount)
}
