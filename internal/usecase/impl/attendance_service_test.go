package impl

import (
	"context"
	"testing"
	"time"

	"cafemeetup/internal/domain/entity"
	domainerrors "cafemeetup/internal/domain/errors"
	"cafemeetup/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func confirmedDate(proposalID, matchID, chooserID, chosenID uuid.UUID) (*entity.DateProposal, *entity.Match) {
	idx := 0
	proposal := &entity.DateProposal{
		ID:            proposalID,
		MatchID:       matchID,
		ProposerID:    chooserID,
		Status:        entity.DateConfirmed,
		SelectedIndex: &idx,
		Options: []entity.DateOption{
			{StartsAt: time.Now().Add(24 * time.Hour), VenueName: "Roast House"},
		},
	}
	match := &entity.Match{
		ID:        matchID,
		ChooserID: chooserID,
		ChosenID:  chosenID,
		Status:    entity.MatchAccepted,
	}

	return proposal, match
}

func TestAttendanceService_StartAttendance_IssuesCode(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()
	chooserID := uuid.New()
	chosenID := uuid.New()
	matchID := uuid.New()
	proposalID := uuid.New()

	proposal, match := confirmedDate(proposalID, matchID, chooserID, chosenID)
	f.proposalRepo.On("FindByID", ctx, proposalID).Return(proposal, nil)
	f.matchRepo.On("FindByID", ctx, matchID).Return(match, nil)

	f.attendanceRepo.On("FindByDateAndUser", ctx, proposalID, chooserID).
		Return(nil, repository.ErrAttendanceNotFound)
	f.codeGen.On("ConfirmationCode").Return("0042", nil)
	f.attendanceRepo.On("Create", ctx, mock.MatchedBy(func(a *entity.Attendance) bool {
		return a.DateID == proposalID && a.UserID == chooserID && a.ConfirmationCode == "0042"
	})).Return(nil)
	f.userRepo.On("UpdateStatus", ctx, chooserID, entity.StatusDateConfirmed, entity.StatusWaitingForAttendance).Return(nil)
	f.publisher.On("PublishMeetupEvent", ctx, mock.Anything).Return(nil)

	output, err := f.service.StartAttendance(ctx, chooserID, proposalID)
	require.NoError(t, err)
	assert.Equal(t, "0042", output.Attendance.ConfirmationCode)
	assert.True(t, entity.ValidConfirmationCode(output.Attendance.ConfirmationCode))
}

func TestAttendanceService_StartAttendance_Idempotent(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()
	chooserID := uuid.New()
	chosenID := uuid.New()
	matchID := uuid.New()
	proposalID := uuid.New()

	proposal, match := confirmedDate(proposalID, matchID, chooserID, chosenID)
	f.proposalRepo.On("FindByID", ctx, proposalID).Return(proposal, nil)
	f.matchRepo.On("FindByID", ctx, matchID).Return(match, nil)

	existing := &entity.Attendance{ID: uuid.New(), DateID: proposalID, UserID: chooserID, ConfirmationCode: "7315"}
	f.attendanceRepo.On("FindByDateAndUser", ctx, proposalID, chooserID).Return(existing, nil)
	f.publisher.On("PublishMeetupEvent", ctx, mock.Anything).Return(nil)

	output, err := f.service.StartAttendance(ctx, chooserID, proposalID)
	require.NoError(t, err)
	assert.Equal(t, "7315", output.Attendance.ConfirmationCode)
}

func TestAttendanceService_StartAttendance_NotConfirmed(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()
	proposalID := uuid.New()

	f.proposalRepo.On("FindByID", ctx, proposalID).Return(&entity.DateProposal{
		ID:     proposalID,
		Status: entity.DateSelected,
	}, nil)

	_, err := f.service.StartAttendance(ctx, uuid.New(), proposalID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestAttendanceService_VerifyCode_Success(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()
	chooserID := uuid.New()
	chosenID := uuid.New()
	matchID := uuid.New()
	proposalID := uuid.New()

	proposal, match := confirmedDate(proposalID, matchID, chooserID, chosenID)
	f.proposalRepo.On("FindByID", ctx, proposalID).Return(proposal, nil)
	f.matchRepo.On("FindByID", ctx, matchID).Return(match, nil)

	f.attendanceRepo.On("CodeMatches", ctx, proposalID, "0042").Return(true, nil)
	own := &entity.Attendance{ID: uuid.New(), DateID: proposalID, UserID: chosenID, ConfirmationCode: "9911"}
	partners := &entity.Attendance{ID: uuid.New(), DateID: proposalID, UserID: chooserID, ConfirmationCode: "0042"}
	f.attendanceRepo.On("FindByDateAndUser", ctx, proposalID, chosenID).Return(own, nil)
	// Verification confirms every row of the date, not just the verifier's.
	f.attendanceRepo.On("FindByDate", ctx, proposalID).Return([]*entity.Attendance{own, partners}, nil)
	f.attendanceRepo.On("MarkConfirmed", ctx, own.ID).Return(nil)
	f.attendanceRepo.On("MarkConfirmed", ctx, partners.ID).Return(nil)

	// The verifier was already attending; the other party walks through
	// waiting_for_attendance on the way to completion.
	f.userRepo.On("UpdateStatus", ctx, chosenID, entity.StatusWaitingForAttendance, entity.StatusDateCompleted).Return(nil)
	f.userRepo.On("UpdateStatus", ctx, chooserID, entity.StatusWaitingForAttendance, entity.StatusDateCompleted).
		Return(repository.ErrStatusConflict).Once()
	f.userRepo.On("UpdateStatus", ctx, chooserID, entity.StatusDateConfirmed, entity.StatusWaitingForAttendance).Return(nil)
	f.userRepo.On("UpdateStatus", ctx, chooserID, entity.StatusWaitingForAttendance, entity.StatusDateCompleted).Return(nil)

	f.messageRepo.On("Create", ctx, mock.MatchedBy(func(msg *entity.Message) bool {
		return msg.Type == entity.MessageAttendance && msg.Content == "Meeting Verified! Enjoy your coffee date."
	})).Return(nil).Twice()
	f.unreadCache.On("InvalidateUnread", ctx, chosenID).Return(nil)
	f.unreadCache.On("InvalidateUnread", ctx, chooserID).Return(nil)
	f.publisher.On("PublishMeetupEvent", ctx, mock.Anything).Return(nil)

	assert.NoError(t, f.service.VerifyCode(ctx, chosenID, proposalID, "0042"))
}

func TestAttendanceService_VerifyCode_Mismatch(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()
	chooserID := uuid.New()
	chosenID := uuid.New()
	matchID := uuid.New()
	proposalID := uuid.New()

	proposal, match := confirmedDate(proposalID, matchID, chooserID, chosenID)
	f.proposalRepo.On("FindByID", ctx, proposalID).Return(proposal, nil)
	f.matchRepo.On("FindByID", ctx, matchID).Return(match, nil)
	f.attendanceRepo.On("CodeMatches", ctx, proposalID, "1234").Return(false, nil)

	err := f.service.VerifyCode(ctx, chosenID, proposalID, "1234")
	assert.ErrorIs(t, err, domainerrors.ErrCodeMismatch)
}

func TestAttendanceService_VerifyCode_MalformedCode(t *testing.T) {
	f := newAttendanceFixture(t)

	for _, code := range []string{"", "12", "12345", "12a4"} {
		err := f.service.VerifyCode(context.Background(), uuid.New(), uuid.New(), code)
		assert.ErrorIs(t, err, domainerrors.ErrCodeInvalid, "code %q", code)
	}
}

func TestAttendanceService_VerifyCode_NotAParty(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()
	matchID := uuid.New()
	proposalID := uuid.New()

	proposal, match := confirmedDate(proposalID, matchID, uuid.New(), uuid.New())
	f.proposalRepo.On("FindByID", ctx, proposalID).Return(proposal, nil)
	f.matchRepo.On("FindByID", ctx, matchID).Return(match, nil)

	err := f.service.VerifyCode(ctx, uuid.New(), proposalID, "0042")
	assert.ErrorIs(t, err, domainerrors.ErrNotMatchParty)
}

func TestAttendanceService_AttendanceQR(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	proposalID := uuid.New()

	record := &entity.Attendance{ID: uuid.New(), DateID: proposalID, UserID: userID, ConfirmationCode: "0042"}
	f.attendanceRepo.On("FindByDateAndUser", ctx, proposalID, userID).Return(record, nil)
	f.qrService.On("GenerateAttendanceQR", proposalID, "0042").Return([]byte("png"), nil)

	png, err := f.service.AttendanceQR(ctx, userID, proposalID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
