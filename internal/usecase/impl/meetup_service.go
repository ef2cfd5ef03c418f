package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cafemeetup/config"
	deliverycontext "cafemeetup/internal/delivery/context"
	"cafemeetup/internal/domain/entity"
	domainerrors "cafemeetup/internal/domain/errors"
	"cafemeetup/internal/domain/repository"
	"cafemeetup/internal/domain/service"
	"cafemeetup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// meetupService implements the MeetupUsecase interface. Every transition runs
// inside a transaction and uses conditional status updates, so a concurrent
// request from the other party surfaces as a conflict instead of a lost update.
type meetupService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	matchRepo     repository.MatchRepository
	proposalRepo  repository.ProposalRepository
	ratingRepo    repository.RatingRepository
	rejectionRepo repository.RejectionRepository
	publisher     service.EventPublisher
	unreadCache   service.UnreadCache
	rules         *config.MeetupConfig
	logger        *slog.Logger
}

// MeetupServiceParams holds dependencies for MeetupService, injected by Fx.
type MeetupServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	MatchRepo     repository.MatchRepository
	ProposalRepo  repository.ProposalRepository
	RatingRepo    repository.RatingRepository
	RejectionRepo repository.RejectionRepository
	Publisher     service.EventPublisher
	UnreadCache   service.UnreadCache
	Config        *config.Config
	Logger        *slog.Logger
}

// NewMeetupService is the constructor for meetupService.
func NewMeetupService(params MeetupServiceParams) usecase.MeetupUsecase {
	return &meetupService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		matchRepo:     params.MatchRepo,
		proposalRepo:  params.ProposalRepo,
		ratingRepo:    params.RatingRepo,
		rejectionRepo: params.RejectionRepo,
		publisher:     params.Publisher,
		unreadCache:   params.UnreadCache,
		rules:         params.Config.Meetup,
		logger:        params.Logger,
	}
}

func (srv *meetupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// publish sends a lifecycle event after the transaction has committed.
// Delivery is best effort; failures are logged, never surfaced.
func (srv *meetupService) publish(ctx context.Context, event *service.MeetupEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().Unix()

	if err := srv.publisher.PublishMeetupEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish lifecycle event", slog.String("eventType", event.EventType), slog.Any("error", err))
	}
}

// dropUnread invalidates the receiver's cached unread count after a new
// inbox message. Best effort.
func (srv *meetupService) dropUnread(ctx context.Context, receiverID uuid.UUID) {
	if err := srv.unreadCache.InvalidateUnread(ctx, receiverID); err != nil {
		srv.log(ctx).Warn("Failed to invalidate unread cache", slog.Any("userID", receiverID), slog.Any("error", err))
	}
}

// GetState assembles the dashboard view for a user, expiring a stale pending
// match or unanswered proposal first so the returned statuses are already
// reconciled.
func (srv *meetupService) GetState(ctx context.Context, userID uuid.UUID) (*usecase.MeetupState, error) {
	state := &usecase.MeetupState{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		matchRepo := repoFactory.MatchRepo()
		proposalRepo := repoFactory.ProposalRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user by id")
		}
		state.User = user

		match, err := matchRepo.FindActiveByUser(ctx, userID)
		if errors.Is(err, repository.ErrMatchNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find active match")
		}

		if match.Expired(time.Now()) {
			if err := srv.expirePendingMatch(ctx, repoFactory, match); err != nil {
				return err
			}
			// Re-read, the expiry reset this user's status.
			state.User, err = userRepo.FindByID(ctx, userID)
			if err != nil {
				return errors.Wrap(err, "failed to reload user after expiry")
			}

			return nil
		}

		state.Match = match

		other, err := userRepo.FindByID(ctx, match.OtherParty(userID))
		if err != nil {
			return errors.Wrap(err, "failed to find match counterpart")
		}
		state.Other = other

		proposal, err := proposalRepo.FindByMatch(ctx, match.ID)
		if err != nil && !errors.Is(err, repository.ErrProposalNotFound) {
			return errors.Wrap(err, "failed to find proposal for match")
		}
		if err == nil {
			if proposal.Stale(time.Now(), srv.rules.ProposalWindowDays) {
				if err := srv.cancelStaleProposal(ctx, repoFactory, match, proposal); err != nil {
					return err
				}
				state.Match = nil
				state.Other = nil
				state.User, err = userRepo.FindByID(ctx, userID)
				if err != nil {
					return errors.Wrap(err, "failed to reload user after proposal expiry")
				}

				return nil
			}

			state.Proposal = proposal
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute dashboard transaction")
	}

	return state, nil
}

// expirePendingMatch marks a lapsed pending match expired and resets both
// parties to default. Runs inside the caller's transaction.
func (srv *meetupService) expirePendingMatch(ctx context.Context, repoFactory repository.RepositoryFactory, match *entity.Match) error {
	if err := repoFactory.MatchRepo().UpdateStatus(ctx, match.ID, entity.MatchPending, entity.MatchExpired); err != nil {
		if errors.Is(err, repository.ErrMatchConflict) {
			// Someone answered it in the meantime, nothing to expire.
			return nil
		}

		return errors.Wrap(err, "failed to expire match")
	}

	userRepo := repoFactory.UserRepo()
	for _, id := range []uuid.UUID{match.ChooserID, match.ChosenID} {
		if err := userRepo.UpdateStatus(ctx, id, entity.StatusWaitingForAcceptance, entity.StatusDefault); err != nil &&
			!errors.Is(err, repository.ErrStatusConflict) {
			return errors.Wrap(err, "failed to reset party after match expiry")
		}
	}

	srv.log(ctx).Info("Expired stale pending match", slog.Any("matchID", match.ID))
	srv.publish(ctx, &service.MeetupEvent{
		EventType: service.EventMatchExpired,
		UserID:    match.ChooserID.String(),
		OtherID:   match.ChosenID.String(),
		MatchID:   match.ID.String(),
	})

	return nil
}

// cancelStaleProposal cancels a proposal whose window lapsed without an
// answer, retires the match, and resets both parties to default. Runs inside
// the caller's transaction.
func (srv *meetupService) cancelStaleProposal(ctx context.Context, repoFactory repository.RepositoryFactory, match *entity.Match, proposal *entity.DateProposal) error {
	if err := repoFactory.ProposalRepo().UpdateStatus(ctx, proposal.ID, entity.DateProposed, entity.DateCancelled); err != nil {
		if errors.Is(err, repository.ErrProposalConflict) {
			// The other party answered it in the meantime, nothing to cancel.
			return nil
		}

		return errors.Wrap(err, "failed to cancel proposal")
	}

	if err := repoFactory.MatchRepo().UpdateStatus(ctx, match.ID, entity.MatchAccepted, entity.MatchExpired); err != nil &&
		!errors.Is(err, repository.ErrMatchConflict) {
		return errors.Wrap(err, "failed to expire match of stale proposal")
	}

	userRepo := repoFactory.UserRepo()
	partnerID := match.OtherParty(proposal.ProposerID)
	// The proposer waits for the partner's choice; the partner never picked.
	resets := []struct {
		userID uuid.UUID
		from   entity.UserStatus
	}{
		{proposal.ProposerID, entity.StatusWaitingForDateChoice},
		{partnerID, entity.StatusWaitingForDateSelection},
	}
	for _, reset := range resets {
		if err := userRepo.UpdateStatus(ctx, reset.userID, reset.from, entity.StatusDefault); err != nil &&
			!errors.Is(err, repository.ErrStatusConflict) {
			return errors.Wrap(err, "failed to reset party after proposal expiry")
		}
	}

	messageRepo := repoFactory.MessageRepo()
	for _, reset := range resets {
		message := &entity.Message{
			SenderID:   match.OtherParty(reset.userID),
			ReceiverID: reset.userID,
			Type:       entity.MessageSystem,
			Content:    "The proposed dates lapsed without a pick. You are back in the pool.",
		}
		if err := messageRepo.Create(ctx, message); err != nil {
			return errors.Wrap(err, "failed to create proposal expiry message")
		}
		srv.dropUnread(ctx, reset.userID)
	}

	srv.log(ctx).Info("Cancelled stale date proposal", slog.Any("proposalID", proposal.ID))
	srv.publish(ctx, &service.MeetupEvent{
		EventType: service.EventDateCancelled,
		UserID:    proposal.ProposerID.String(),
		OtherID:   partnerID.String(),
		MatchID:   match.ID.String(),
		DateID:    proposal.ID.String(),
	})

	return nil
}

// BecomeChooser moves a user from default to chooser, subject to the daily
// rejection limit.
func (srv *meetupService) BecomeChooser(ctx context.Context, userID uuid.UUID) error {
	return srv.enterFlow(ctx, userID, entity.StatusChooser)
}

// BecomeChosen moves a user from default to chosen, subject to the daily
// rejection limit.
func (srv *meetupService) BecomeChosen(ctx context.Context, userID uuid.UUID) error {
	return srv.enterFlow(ctx, userID, entity.StatusChosen)
}

func (srv *meetupService) enterFlow(ctx context.Context, userID uuid.UUID, target entity.UserStatus) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		counter, err := repoFactory.RejectionRepo().Get(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load rejection counter")
		}
		if counter.Blocked(time.Now(), srv.rules.RejectionLimit) {
			return errors.Wrap(domainerrors.ErrRejectionLimitReached, "entry blocked by rejection limit")
		}

		if err := repoFactory.UserRepo().UpdateStatus(ctx, userID, entity.StatusDefault, target); err != nil {
			if errors.Is(err, repository.ErrStatusConflict) {
				return errors.Wrap(domainerrors.ErrInvalidTransition, "user is not in default status")
			}

			return errors.Wrap(err, "failed to update user status")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to enter flow", slog.Any("userID", userID), slog.String("target", target.String()), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("User entered flow", slog.Any("userID", userID), slog.String("status", target.String()))

	return nil
}

// BackToDefault cancels a chooser or chosen stance that has not produced a
// match yet.
func (srv *meetupService) BackToDefault(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user by id")
		}
		if user.Status != entity.StatusChooser && user.Status != entity.StatusChosen {
			return errors.Wrap(domainerrors.ErrInvalidTransition, "only chooser or chosen can back out")
		}

		if err := userRepo.UpdateStatus(ctx, userID, user.Status, entity.StatusDefault); err != nil {
			if errors.Is(err, repository.ErrStatusConflict) {
				return errors.Wrap(domainerrors.ErrStatusConflict, "status changed while backing out")
			}

			return errors.Wrap(err, "failed to update user status")
		}

		return nil
	})

	return err
}

// ListCandidates returns discoverable users for a chooser, with their rating
// aggregates attached.
func (srv *meetupService) ListCandidates(ctx context.Context, userID uuid.UUID) ([]*usecase.CandidateOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}
	if user.Status != entity.StatusChooser {
		return nil, errors.Wrap(domainerrors.ErrInvalidTransition, "only a chooser can browse candidates")
	}

	candidates, err := srv.userRepo.FindByStatus(ctx, entity.StatusChosen, userID, srv.rules.CandidateLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list candidates")
	}

	outputs := make([]*usecase.CandidateOutput, 0, len(candidates))
	for _, candidate := range candidates {
		avg, count, err := srv.ratingRepo.AverageScore(ctx, candidate.ID)
		if err != nil {
			srv.log(ctx).Warn("Failed to load rating summary for candidate", slog.Any("userID", candidate.ID), slog.Any("error", err))
		}
		outputs = append(outputs, &usecase.CandidateOutput{
			User:         candidate,
			AverageScore: avg,
			RatingCount:  count,
		})
	}

	return outputs, nil
}

// SelectCandidate creates a pending match between the chooser and a chosen
// candidate. Both conditional status updates and the match insert commit
// together or not at all.
func (srv *meetupService) SelectCandidate(ctx context.Context, chooserID, candidateID uuid.UUID) (*entity.Match, error) {
	if chooserID == candidateID {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "cannot select yourself")
	}

	var match *entity.Match
	var chooser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var err error
		chooser, err = userRepo.FindByID(ctx, chooserID)
		if err != nil {
			return errors.Wrap(err, "failed to find chooser")
		}

		if err := userRepo.UpdateStatus(ctx, chooserID, entity.StatusChooser, entity.StatusWaitingForAcceptance); err != nil {
			if errors.Is(err, repository.ErrStatusConflict) {
				return errors.Wrap(domainerrors.ErrInvalidTransition, "chooser is not browsing")
			}

			return errors.Wrap(err, "failed to update chooser status")
		}

		if err := userRepo.UpdateStatus(ctx, candidateID, entity.StatusChosen, entity.StatusWaitingForAcceptance); err != nil {
			if errors.Is(err, repository.ErrStatusConflict) {
				return errors.Wrap(domainerrors.ErrStatusConflict, "candidate is no longer available")
			}

			return errors.Wrap(err, "failed to update candidate status")
		}

		match = &entity.Match{
			ChooserID: chooserID,
			ChosenID:  candidateID,
			Status:    entity.MatchPending,
			ExpiresAt: time.Now().Add(srv.rules.ResponseWindow),
		}
		if err := repoFactory.MatchRepo().Create(ctx, match); err != nil {
			return errors.Wrap(err, "failed to create match")
		}

		message := &entity.Message{
			SenderID:   chooserID,
			ReceiverID: candidateID,
			Type:       entity.MessageMatch,
			Content:    fmt.Sprintf("%s has chosen you! Accept to start planning your coffee date.", chooser.FullName()),
		}
		if err := repoFactory.MessageRepo().Create(ctx, message); err != nil {
			return errors.Wrap(err, "failed to create match message")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to select candidate", slog.Any("chooserID", chooserID), slog.Any("candidateID", candidateID), slog.Any("error", err))

		return nil, err
	}

	srv.dropUnread(ctx, candidateID)
	srv.publish(ctx, &service.MeetupEvent{
		EventType: service.EventMatchCreated,
		UserID:    chooserID.String(),
		OtherID:   candidateID.String(),
		MatchID:   match.ID.String(),
	})
	srv.log(ctx).Info("Match created", slog.Any("matchID", match.ID))

	return match, nil
}

// RespondToMatch accepts or rejects the pending match the user is party to.
func (srv *meetupService) RespondToMatch(ctx context.Context, userID, matchID uuid.UUID, accept bool) error {
	var other uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		match, err := repoFactory.MatchRepo().FindByID(ctx, matchID)
		if err != nil {
			return errors.Wrap(err, "failed to find match")
		}
		if !match.Involves(userID) {
			return errors.Wrap(domainerrors.ErrNotMatchParty, "responder is not a match party")
		}
		if match.Status != entity.MatchPending {
			return errors.Wrap(domainerrors.ErrConflict, "match already answered")
		}
		if match.Expired(time.Now()) {
			if err := srv.expirePendingMatch(ctx, repoFactory, match); err != nil {
				return err
			}

			return errors.Wrap(domainerrors.ErrMatchExpired, "match response window elapsed")
		}

		other = match.OtherParty(userID)
		if accept {
			return srv.acceptMatch(ctx, repoFactory, match, userID)
		}

		return srv.rejectMatch(ctx, repoFactory, match, userID)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to respond to match", slog.Any("matchID", matchID), slog.Bool("accept", accept), slog.Any("error", err))

		return err
	}

	srv.dropUnread(ctx, other)

	eventType := service.EventMatchAccepted
	if !accept {
		eventType = service.EventMatchRejected
	}
	srv.publish(ctx, &service.MeetupEvent{
		EventType: eventType,
		UserID:    userID.String(),
		OtherID:   other.String(),
		MatchID:   matchID.String(),
	})

	return nil
}

// acceptMatch moves the chooser to date selection and keeps the chosen party
// waiting. Runs inside the caller's transaction.
func (srv *meetupService) acceptMatch(ctx context.Context, repoFactory repository.RepositoryFactory, match *entity.Match, userID uuid.UUID) error {
	if userID != match.ChosenID {
		return errors.Wrap(domainerrors.ErrForbidden, "only the chosen party answers a match")
	}

	if err := repoFactory.MatchRepo().UpdateStatus(ctx, match.ID, entity.MatchPending, entity.MatchAccepted); err != nil {
		if errors.Is(err, repository.ErrMatchConflict) {
			return errors.Wrap(domainerrors.ErrConflict, "match already answered")
		}

		return errors.Wrap(err, "failed to accept match")
	}

	userRepo := repoFactory.UserRepo()
	// The chooser proposes dates; the chosen party stays waiting for them.
	if err := userRepo.UpdateStatus(ctx, match.ChooserID, entity.StatusWaitingForAcceptance, entity.StatusWaitingForDateSelection); err != nil {
		return errors.Wrap(err, "failed to advance chooser to date selection")
	}
	if err := userRepo.UpdateStatus(ctx, match.ChosenID, entity.StatusWaitingForAcceptance, entity.StatusWaitingForDateSelection); err != nil {
		return errors.Wrap(err, "failed to advance chosen party")
	}

	responder, err := userRepo.FindByID(ctx, match.ChosenID)
	if err != nil {
		return errors.Wrap(err, "failed to find responder")
	}

	message := &entity.Message{
		SenderID:   match.ChosenID,
		ReceiverID: match.ChooserID,
		Type:       entity.MessageMatch,
		Content:    fmt.Sprintf("%s accepted your match! Propose three dates for your meetup.", responder.FullName()),
	}
	if err := repoFactory.MessageRepo().Create(ctx, message); err != nil {
		return errors.Wrap(err, "failed to create acceptance message")
	}

	return nil
}

// rejectMatch increments the rejecting user's counter and resets both
// parties to default. Runs inside the caller's transaction.
func (srv *meetupService) rejectMatch(ctx context.Context, repoFactory repository.RepositoryFactory, match *entity.Match, userID uuid.UUID) error {
	if err := repoFactory.MatchRepo().UpdateStatus(ctx, match.ID, entity.MatchPending, entity.MatchRejected); err != nil {
		if errors.Is(err, repository.ErrMatchConflict) {
			return errors.Wrap(domainerrors.ErrConflict, "match already answered")
		}

		return errors.Wrap(err, "failed to reject match")
	}

	if _, err := repoFactory.RejectionRepo().Increment(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to increment rejection counter")
	}

	userRepo := repoFactory.UserRepo()
	for _, id := range []uuid.UUID{match.ChooserID, match.ChosenID} {
		if err := userRepo.UpdateStatus(ctx, id, entity.StatusWaitingForAcceptance, entity.StatusDefault); err != nil &&
			!errors.Is(err, repository.ErrStatusConflict) {
			return errors.Wrap(err, "failed to reset party after rejection")
		}
	}

	message := &entity.Message{
		SenderID:   userID,
		ReceiverID: match.OtherParty(userID),
		Type:       entity.MessageSystem,
		Content:    "Your match was not accepted this time. You are back in the pool.",
	}
	if err := repoFactory.MessageRepo().Create(ctx, message); err != nil {
		return errors.Wrap(err, "failed to create rejection message")
	}

	return nil
}

// ProposeDates lets the chooser of an accepted match submit date options.
func (srv *meetupService) ProposeDates(ctx context.Context, userID, matchID uuid.UUID, input *usecase.ProposeDatesInput) (*entity.DateProposal, error) {
	if err := entity.ValidateOptions(input.Options, time.Now(), srv.rules.ProposalWindowDays); err != nil {
		return nil, domainerrors.ErrProposalInvalid.WithDetails(err.Error())
	}

	var proposal *entity.DateProposal
	var other uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		match, err := repoFactory.MatchRepo().FindByID(ctx, matchID)
		if err != nil {
			return errors.Wrap(err, "failed to find match")
		}
		if match.ChooserID != userID {
			return errors.Wrap(domainerrors.ErrForbidden, "only the chooser proposes dates")
		}
		if match.Status != entity.MatchAccepted {
			return errors.Wrap(domainerrors.ErrInvalidTransition, "match is not accepted")
		}

		if _, err := repoFactory.ProposalRepo().FindByMatch(ctx, matchID); err == nil {
			return errors.Wrap(domainerrors.ErrConflict, "dates already proposed for this match")
		} else if !errors.Is(err, repository.ErrProposalNotFound) {
			return errors.Wrap(err, "failed to check existing proposal")
		}

		other = match.OtherParty(userID)

		userRepo := repoFactory.UserRepo()
		// Proposer now waits for the other party's choice.
		if err := userRepo.UpdateStatus(ctx, userID, entity.StatusWaitingForDateSelection, entity.StatusWaitingForDateChoice); err != nil {
			if errors.Is(err, repository.ErrStatusConflict) {
				return errors.Wrap(domainerrors.ErrInvalidTransition, "proposer is not selecting dates")
			}

			return errors.Wrap(err, "failed to advance proposer")
		}

		proposal = &entity.DateProposal{
			MatchID:    matchID,
			ProposerID: userID,
			Options:    input.Options,
			Status:     entity.DateProposed,
		}
		if err := repoFactory.ProposalRepo().Create(ctx, proposal); err != nil {
			return errors.Wrap(err, "failed to create proposal")
		}

		proposer, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find proposer")
		}

		message := &entity.Message{
			SenderID:   userID,
			ReceiverID: other,
			Type:       entity.MessageDateProposal,
			Content:    fmt.Sprintf("%s proposed date options for your meetup. Pick the one that works for you.", proposer.FullName()),
		}
		if err := repoFactory.MessageRepo().Create(ctx, message); err != nil {
			return errors.Wrap(err, "failed to create proposal message")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to propose dates", slog.Any("matchID", matchID), slog.Any("error", err))

		return nil, err
	}

	srv.dropUnread(ctx, other)
	srv.publish(ctx, &service.MeetupEvent{
		EventType: service.EventDatesProposed,
		UserID:    userID.String(),
		OtherID:   other.String(),
		MatchID:   matchID.String(),
		DateID:    proposal.ID.String(),
	})

	return proposal, nil
}

// SelectDateOption lets the non-proposer pick one of the proposed options.
func (srv *meetupService) SelectDateOption(ctx context.Context, userID, proposalID uuid.UUID, optionIndex int) error {
	var proposerID uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		proposal, err := repoFactory.ProposalRepo().FindByID(ctx, proposalID)
		if err != nil {
			return errors.Wrap(err, "failed to find proposal")
		}
		if proposal.ProposerID == userID {
			return errors.Wrap(domainerrors.ErrForbidden, "the proposer does not pick an option")
		}
		if optionIndex < 0 || optionIndex >= len(proposal.Options) {
			return errors.Wrap(domainerrors.ErrOptionOutOfRange, "option index out of range")
		}

		match, err := repoFactory.MatchRepo().FindByID(ctx, proposal.MatchID)
		if err != nil {
			return errors.Wrap(err, "failed to find match for proposal")
		}
		if !match.Involves(userID) {
			return errors.Wrap(domainerrors.ErrNotMatchParty, "selector is not a match party")
		}

		if err := repoFactory.ProposalRepo().SelectOption(ctx, proposalID, optionIndex); err != nil {
			if errors.Is(err, repository.ErrProposalConflict) {
				return errors.Wrap(domainerrors.ErrConflict, "proposal already answered")
			}

			return errors.Wrap(err, "failed to select option")
		}

		proposerID = proposal.ProposerID

		userRepo := repoFactory.UserRepo()
		// Selector moves straight to confirmation; the proposer follows.
		if err := userRepo.UpdateStatus(ctx, userID, entity.StatusWaitingForDateSelection, entity.StatusWaitingForConfirmation); err != nil {
			if errors.Is(err, repository.ErrStatusConflict) {
				return errors.Wrap(domainerrors.ErrInvalidTransition, "selector is not awaiting date selection")
			}

			return errors.Wrap(err, "failed to advance selector")
		}
		if err := userRepo.UpdateStatus(ctx, proposerID, entity.StatusWaitingForDateChoice, entity.StatusWaitingForConfirmation); err != nil &&
			!errors.Is(err, repository.ErrStatusConflict) {
			return errors.Wrap(err, "failed to advance proposer")
		}

		selector, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find selector")
		}

		chosen := proposal.Options[optionIndex]
		message := &entity.Message{
			SenderID:   userID,
			ReceiverID: proposerID,
			Type:       entity.MessageDateProposal,
			Content: fmt.Sprintf("%s picked %s at %s. Confirm to lock it in.",
				selector.FullName(), chosen.StartsAt.Format("Mon Jan 2 15:04"), chosen.VenueName),
		}
		if err := repoFactory.MessageRepo().Create(ctx, message); err != nil {
			return errors.Wrap(err, "failed to create selection message")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to select date option", slog.Any("proposalID", proposalID), slog.Any("error", err))

		return err
	}

	srv.dropUnread(ctx, proposerID)
	srv.publish(ctx, &service.MeetupEvent{
		EventType: service.EventDateSelected,
		UserID:    userID.String(),
		OtherID:   proposerID.String(),
		DateID:    proposalID.String(),
	})

	return nil
}

// ConfirmDate locks in the selected option and moves both parties to
// date_confirmed.
func (srv *meetupService) ConfirmDate(ctx context.Context, userID, proposalID uuid.UUID) error {
	var other uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		proposal, err := repoFactory.ProposalRepo().FindByID(ctx, proposalID)
		if err != nil {
			return errors.Wrap(err, "failed to find proposal")
		}
		if proposal.ProposerID != userID {
			return errors.Wrap(domainerrors.ErrForbidden, "only the proposer confirms the date")
		}

		selected, ok := proposal.SelectedOption()
		if !ok {
			return errors.Wrap(domainerrors.ErrInvalidTransition, "no option selected yet")
		}

		match, err := repoFactory.MatchRepo().FindByID(ctx, proposal.MatchID)
		if err != nil {
			return errors.Wrap(err, "failed to find match for proposal")
		}
		other = match.OtherParty(userID)

		if err := repoFactory.ProposalRepo().UpdateStatus(ctx, proposalID, entity.DateSelected, entity.DateConfirmed); err != nil {
			if errors.Is(err, repository.ErrProposalConflict) {
				return errors.Wrap(domainerrors.ErrConflict, "proposal is not awaiting confirmation")
			}

			return errors.Wrap(err, "failed to confirm proposal")
		}

		userRepo := repoFactory.UserRepo()
		for _, id := range []uuid.UUID{match.ChooserID, match.ChosenID} {
			if err := userRepo.UpdateStatus(ctx, id, entity.StatusWaitingForConfirmation, entity.StatusDateConfirmed); err != nil {
				return errors.Wrap(err, "failed to advance party to confirmed date")
			}
		}

		content := fmt.Sprintf("Your date at %s is confirmed for %s. See you there!",
			selected.VenueName, selected.StartsAt.Format("Mon Jan 2 15:04"))
		messageRepo := repoFactory.MessageRepo()
		for _, pair := range [][2]uuid.UUID{{userID, other}, {other, userID}} {
			message := &entity.Message{
				SenderID:   pair[0],
				ReceiverID: pair[1],
				Type:       entity.MessageDateConfirmation,
				Content:    content,
			}
			if err := messageRepo.Create(ctx, message); err != nil {
				return errors.Wrap(err, "failed to create confirmation message")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to confirm date", slog.Any("proposalID", proposalID), slog.Any("error", err))

		return err
	}

	srv.dropUnread(ctx, userID)
	srv.dropUnread(ctx, other)
	srv.publish(ctx, &service.MeetupEvent{
		EventType: service.EventDateConfirmed,
		UserID:    userID.String(),
		OtherID:   other.String(),
		DateID:    proposalID.String(),
	})
	srv.log(ctx).Info("Date confirmed", slog.Any("proposalID", proposalID))

	return nil
}

// CloseMeetup returns a date_completed user to default.
func (srv *meetupService) CloseMeetup(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().UpdateStatus(ctx, userID, entity.StatusDateCompleted, entity.StatusDefault); err != nil {
			if errors.Is(err, repository.ErrStatusConflict) {
				return errors.Wrap(domainerrors.ErrInvalidTransition, "no completed date to close")
			}

			return errors.Wrap(err, "failed to close meetup")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.publish(ctx, &service.MeetupEvent{
		EventType: service.EventMeetupClosed,
		UserID:    userID.String(),
	})

	return nil
}

// History lists the user's past dates, newest first.
func (srv *meetupService) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*usecase.PastDate, error) {
	matches, err := srv.matchRepo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list matches")
	}

	history := make([]*usecase.PastDate, 0, len(matches))
	for _, match := range matches {
		if match.Status != entity.MatchAccepted {
			continue
		}

		proposal, err := srv.proposalRepo.FindByMatch(ctx, match.ID)
		if err != nil {
			if errors.Is(err, repository.ErrProposalNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to load proposal for history")
		}
		if proposal.Status != entity.DateConfirmed {
			continue
		}

		other, err := srv.userRepo.FindByID(ctx, match.OtherParty(userID))
		if err != nil {
			return nil, errors.Wrap(err, "failed to load past date counterpart")
		}

		past := &usecase.PastDate{
			Match:    match,
			Other:    other,
			Proposal: proposal,
		}
		if selected, ok := proposal.SelectedOption(); ok {
			when := selected.StartsAt
			past.When = &when
			past.Venue = selected.VenueName
		}

		rating, err := srv.ratingRepo.FindByDateAndRater(ctx, proposal.ID, userID)
		if err == nil {
			past.MyRating = rating
		} else if !errors.Is(err, repository.ErrRatingNotFound) {
			return nil, errors.Wrap(err, "failed to load rating for history")
		}

		history = append(history, past)
	}

	return history, nil
}
