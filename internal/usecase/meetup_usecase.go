package usecase

import (
	"context"
	"time"

	"cafemeetup/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ProposeDatesInput carries the proposer's date options.
type ProposeDatesInput struct {
	Options []entity.DateOption
}

// --- Output DTOs ---

// MeetupState is the dashboard view of a user's current position in the
// lifecycle, assembled after stale matches and proposals have been expired.
type MeetupState struct {
	User     *entity.User
	Match    *entity.Match
	Other    *entity.User
	Proposal *entity.DateProposal
}

// CandidateOutput is one discoverable user shown to a chooser.
type CandidateOutput struct {
	User         *entity.User
	AverageScore float64
	RatingCount  int64
}

// PastDate is one completed or cancelled meetup shown in history.
type PastDate struct {
	Match    *entity.Match
	Other    *entity.User
	Proposal *entity.DateProposal
	When     *time.Time
	Venue    string
	MyRating *entity.Rating
}

// MeetupUsecase drives the meetup lifecycle state machine. Every transition
// runs inside one transaction with conditional status updates, so concurrent
// requests cannot leave the two parties in inconsistent states.
type MeetupUsecase interface {
	// GetState assembles the dashboard view, expiring stale pending matches
	// and proposals first.
	GetState(ctx context.Context, userID uuid.UUID) (*MeetupState, error)

	// BecomeChooser moves the user from default to chooser.
	BecomeChooser(ctx context.Context, userID uuid.UUID) error

	// BecomeChosen moves the user from default to chosen.
	BecomeChosen(ctx context.Context, userID uuid.UUID) error

	// BackToDefault cancels a chooser or chosen stance that has not produced
	// a match yet.
	BackToDefault(ctx context.Context, userID uuid.UUID) error

	// ListCandidates returns discoverable users for a chooser.
	ListCandidates(ctx context.Context, userID uuid.UUID) ([]*CandidateOutput, error)

	// SelectCandidate creates a pending match between the chooser and the
	// chosen candidate and moves both to waiting_for_acceptance.
	SelectCandidate(ctx context.Context, chooserID, candidateID uuid.UUID) (*entity.Match, error)

	// RespondToMatch accepts or rejects the pending match the user is party
	// to. Rejection is gated by the daily rejection limit and resets both
	// parties to default; acceptance moves the chooser to
	// waiting_for_date_selection.
	RespondToMatch(ctx context.Context, userID, matchID uuid.UUID, accept bool) error

	// ProposeDates lets the chooser of an accepted match submit three date
	// options.
	ProposeDates(ctx context.Context, userID, matchID uuid.UUID, input *ProposeDatesInput) (*entity.DateProposal, error)

	// SelectDateOption lets the non-proposer pick one of the proposed options.
	SelectDateOption(ctx context.Context, userID, proposalID uuid.UUID, optionIndex int) error

	// ConfirmDate locks in the selected option and moves both parties to
	// date_confirmed.
	ConfirmDate(ctx context.Context, userID, proposalID uuid.UUID) error

	// CloseMeetup returns a date_completed user to default. This never
	// happens automatically.
	CloseMeetup(ctx context.Context, userID uuid.UUID) error

	// History lists the user's past dates, newest first.
	History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*PastDate, error)
}
