package impl

import (
	"context"
	"log/slog"
	"time"

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

// attendanceService implements the AttendanceUsecase interface.
type attendanceService struct {
	txManager      repository.TransactionManager
	matchRepo      repository.MatchRepository
	proposalRepo   repository.ProposalRepository
	attendanceRepo repository.AttendanceRepository
	codeGen        service.CodeGenerator
	qrService      service.QRCodeService
	publisher      service.EventPublisher
	unreadCache    service.UnreadCache
	logger         *slog.Logger
}

// AttendanceServiceParams holds dependencies for AttendanceService, injected by Fx.
type AttendanceServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	MatchRepo      repository.MatchRepository
	ProposalRepo   repository.ProposalRepository
	AttendanceRepo repository.AttendanceRepository
	CodeGen        service.CodeGenerator
	QRService      service.QRCodeService
	Publisher      service.EventPublisher
	UnreadCache    service.UnreadCache
	Logger         *slog.Logger
}

// NewAttendanceService is the constructor for attendanceService.
func NewAttendanceService(params AttendanceServiceParams) usecase.AttendanceUsecase {
	return &attendanceService{
		txManager:      params.TxManager,
		matchRepo:      params.MatchRepo,
		proposalRepo:   params.ProposalRepo,
		attendanceRepo: params.AttendanceRepo,
		codeGen:        params.CodeGen,
		qrService:      params.QRService,
		publisher:      params.Publisher,
		unreadCache:    params.UnreadCache,
		logger:         params.Logger,
	}
}

func (srv *attendanceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// loadConfirmedDate resolves a proposal and its match, checking that userID
// is a party and the date has been confirmed.
func (srv *attendanceService) loadConfirmedDate(ctx context.Context, userID, proposalID uuid.UUID) (*entity.DateProposal, *entity.Match, error) {
	proposal, err := srv.proposalRepo.FindByID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, repository.ErrProposalNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrProposalNotFound, "date not found")
		}

		return nil, nil, errors.Wrap(err, "failed to find proposal")
	}
	if proposal.Status != entity.DateConfirmed {
		return nil, nil, errors.Wrap(domainerrors.ErrInvalidTransition, "date is not confirmed")
	}

	match, err := srv.matchRepo.FindByID(ctx, proposal.MatchID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find match for proposal")
	}
	if !match.Involves(userID) {
		return nil, nil, errors.Wrap(domainerrors.ErrNotMatchParty, "caller is not a party to this date")
	}

	return proposal, match, nil
}

// StartAttendance moves the caller to waiting_for_attendance and issues a
// confirmation code. Calling it again returns the existing record.
func (srv *attendanceService) StartAttendance(ctx context.Context, userID, proposalID uuid.UUID) (*usecase.AttendanceOutput, error) {
	if _, _, err := srv.loadConfirmedDate(ctx, userID, proposalID); err != nil {
		return nil, err
	}

	var record *entity.Attendance
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		attendanceRepo := repoFactory.AttendanceRepo()

		existing, err := attendanceRepo.FindByDateAndUser(ctx, proposalID, userID)
		if err == nil {
			record = existing

			return nil
		}
		if !errors.Is(err, repository.ErrAttendanceNotFound) {
			return errors.Wrap(err, "failed to check existing attendance")
		}

		code, err := srv.codeGen.ConfirmationCode()
		if err != nil {
			return errors.Wrap(err, "failed to generate confirmation code")
		}

		record = &entity.Attendance{
			DateID:           proposalID,
			UserID:           userID,
			ConfirmationCode: code,
		}
		if err := attendanceRepo.Create(ctx, record); err != nil {
			return errors.Wrap(err, "failed to create attendance record")
		}

		if err := repoFactory.UserRepo().UpdateStatus(ctx, userID, entity.StatusDateConfirmed, entity.StatusWaitingForAttendance); err != nil &&
			!errors.Is(err, repository.ErrStatusConflict) {
			return errors.Wrap(err, "failed to move caller to attendance")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to start attendance", slog.Any("dateID", proposalID), slog.Any("error", err))

		return nil, err
	}

	srv.publish(ctx, &service.MeetupEvent{
		EventType: service.EventAttendanceStarted,
		UserID:    userID.String(),
		DateID:    proposalID.String(),
	})

	return &usecase.AttendanceOutput{Attendance: record}, nil
}

// GetMyAttendance returns the caller's attendance record for a date.
func (srv *attendanceService) GetMyAttendance(ctx context.Context, userID, proposalID uuid.UUID) (*usecase.AttendanceOutput, error) {
	record, err := srv.attendanceRepo.FindByDateAndUser(ctx, proposalID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAttendanceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAttendanceNotFound, "attendance not started")
		}

		return nil, errors.Wrap(err, "failed to find attendance record")
	}

	return &usecase.AttendanceOutput{Attendance: record}, nil
}

// AttendanceQR renders the caller's confirmation code as a QR PNG.
func (srv *attendanceService) AttendanceQR(ctx context.Context, userID, proposalID uuid.UUID) ([]byte, error) {
	output, err := srv.GetMyAttendance(ctx, userID, proposalID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateAttendanceQR(proposalID, output.Attendance.ConfirmationCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render attendance qr")
	}

	return png, nil
}

// VerifyCode checks a submitted code against every attendance record of the
// date. On a match both parties move to date_completed.
func (srv *attendanceService) VerifyCode(ctx context.Context, userID, proposalID uuid.UUID, code string) error {
	if !entity.ValidConfirmationCode(code) {
		return errors.Wrap(domainerrors.ErrCodeInvalid, "malformed confirmation code")
	}

	_, match, err := srv.loadConfirmedDate(ctx, userID, proposalID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		attendanceRepo := repoFactory.AttendanceRepo()

		matched, err := attendanceRepo.CodeMatches(ctx, proposalID, code)
		if err != nil {
			return errors.Wrap(err, "failed to check confirmation code")
		}
		if !matched {
			return errors.Wrap(domainerrors.ErrCodeMismatch, "confirmation code does not match")
		}

		if _, err := attendanceRepo.FindByDateAndUser(ctx, proposalID, userID); err != nil {
			return errors.Wrap(domainerrors.ErrAttendanceNotFound, "verifier has not started attendance")
		}

		// One successful verification confirms the meeting for every party
		// that checked in.
		records, err := attendanceRepo.FindByDate(ctx, proposalID)
		if err != nil {
			return errors.Wrap(err, "failed to list attendance records")
		}
		for _, record := range records {
			if record.Confirmed {
				continue
			}
			if err := attendanceRepo.MarkConfirmed(ctx, record.ID); err != nil {
				return errors.Wrap(err, "failed to mark attendance confirmed")
			}
		}

		userRepo := repoFactory.UserRepo()
		for _, id := range []uuid.UUID{match.ChooserID, match.ChosenID} {
			if err := srv.completeParty(ctx, userRepo, id); err != nil {
				return err
			}
		}

		messageRepo := repoFactory.MessageRepo()
		other := match.OtherParty(userID)
		for _, pair := range [][2]uuid.UUID{{userID, other}, {other, userID}} {
			message := &entity.Message{
				SenderID:   pair[0],
				ReceiverID: pair[1],
				Type:       entity.MessageAttendance,
				Content:    "Meeting Verified! Enjoy your coffee date.",
			}
			if err := messageRepo.Create(ctx, message); err != nil {
				return errors.Wrap(err, "failed to create verification message")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to verify attendance code", slog.Any("dateID", proposalID), slog.Any("error", err))

		return err
	}

	other := match.OtherParty(userID)
	srv.dropUnread(ctx, userID)
	srv.dropUnread(ctx, other)
	srv.publish(ctx, &service.MeetupEvent{
		EventType: service.EventMeetingVerified,
		UserID:    userID.String(),
		OtherID:   other.String(),
		DateID:    proposalID.String(),
	})
	srv.log(ctx).Info("Meeting verified", slog.Any("dateID", proposalID))

	return nil
}

// completeParty walks a party to date_completed, passing through
// waiting_for_attendance if they had not started attendance themselves.
func (srv *attendanceService) completeParty(ctx context.Context, userRepo repository.UserRepository, id uuid.UUID) error {
	err := userRepo.UpdateStatus(ctx, id, entity.StatusWaitingForAttendance, entity.StatusDateCompleted)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrStatusConflict) {
		return errors.Wrap(err, "failed to complete party")
	}

	if err := userRepo.UpdateStatus(ctx, id, entity.StatusDateConfirmed, entity.StatusWaitingForAttendance); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			// Already completed by a concurrent verification.
			return nil
		}

		return errors.Wrap(err, "failed to move party to attendance")
	}

	if err := userRepo.UpdateStatus(ctx, id, entity.StatusWaitingForAttendance, entity.StatusDateCompleted); err != nil &&
		!errors.Is(err, repository.ErrStatusConflict) {
		return errors.Wrap(err, "failed to complete party")
	}

	return nil
}

func (srv *attendanceService) publish(ctx context.Context, event *service.MeetupEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().Unix()

	if err := srv.publisher.PublishMeetupEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish lifecycle event", slog.String("eventType", event.EventType), slog.Any("error", err))
	}
}

func (srv *attendanceService) dropUnread(ctx context.Context, receiverID uuid.UUID) {
	if err := srv.unreadCache.InvalidateUnread(ctx, receiverID); err != nil {
		srv.log(ctx).Warn("Failed to invalidate unread cache", slog.Any("userID", receiverID), slog.Any("error", err))
	}
}
