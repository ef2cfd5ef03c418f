package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"cafemeetup/config"
	"cafemeetup/internal/domain/entity"
	mockRepo "cafemeetup/internal/mocks/repository"
	mockSvc "cafemeetup/internal/mocks/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Meetup = &config.MeetupConfig{
		RejectionLimit:     3,
		ProposalWindowDays: 3,
		CandidateLimit:     10,
		ResponseWindow:     24 * time.Hour,
	}

	return cfg
}

// validDateOptions builds a full proposal submission: three options with
// distinct date-times inside the three day window.
func validDateOptions() []entity.DateOption {
	return []entity.DateOption{
		{StartsAt: time.Now().Add(4 * time.Hour), VenueName: "Roast House", Address: "12 Bean St"},
		{StartsAt: time.Now().AddDate(0, 0, 1), VenueName: "Corner Brew", Address: "3 Mill Ln"},
		{StartsAt: time.Now().AddDate(0, 0, 2), VenueName: "Roast House", Address: "12 Bean St"},
	}
}

// meetupFixture bundles a meetup service with every mock it talks to.
type meetupFixture struct {
	service       *meetupService
	factory       *mockRepo.StubRepositoryFactory
	userRepo      *mockRepo.MockUserRepository
	matchRepo     *mockRepo.MockMatchRepository
	proposalRepo  *mockRepo.MockProposalRepository
	ratingRepo    *mockRepo.MockRatingRepository
	rejectionRepo *mockRepo.MockRejectionRepository
	messageRepo   *mockRepo.MockMessageRepository
	publisher     *mockSvc.MockEventPublisher
	unreadCache   *mockSvc.MockUnreadCache
}

func newMeetupFixture(t *testing.T) *meetupFixture {
	f := &meetupFixture{
		userRepo:      mockRepo.NewMockUserRepository(t),
		matchRepo:     mockRepo.NewMockMatchRepository(t),
		proposalRepo:  mockRepo.NewMockProposalRepository(t),
		ratingRepo:    mockRepo.NewMockRatingRepository(t),
		rejectionRepo: mockRepo.NewMockRejectionRepository(t),
		messageRepo:   mockRepo.NewMockMessageRepository(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
		unreadCache:   mockSvc.NewMockUnreadCache(t),
	}
	f.factory = &mockRepo.StubRepositoryFactory{
		UserRepository:      f.userRepo,
		MatchRepository:     f.matchRepo,
		ProposalRepository:  f.proposalRepo,
		RatingRepository:    f.ratingRepo,
		RejectionRepository: f.rejectionRepo,
		MessageRepository:   f.messageRepo,
	}

	f.service = NewMeetupService(MeetupServiceParams{
		TxManager:     &mockRepo.StubTransactionManager{Factory: f.factory},
		UserRepo:      f.userRepo,
		MatchRepo:     f.matchRepo,
		ProposalRepo:  f.proposalRepo,
		RatingRepo:    f.ratingRepo,
		RejectionRepo: f.rejectionRepo,
		Publisher:     f.publisher,
		UnreadCache:   f.unreadCache,
		Config:        testConfig(),
		Logger:        testLogger(),
	}).(*meetupService)

	return f
}

// attendanceFixture bundles an attendance service with its mocks.
type attendanceFixture struct {
	service        *attendanceService
	matchRepo      *mockRepo.MockMatchRepository
	proposalRepo   *mockRepo.MockProposalRepository
	attendanceRepo *mockRepo.MockAttendanceRepository
	userRepo       *mockRepo.MockUserRepository
	messageRepo    *mockRepo.MockMessageRepository
	codeGen        *mockSvc.MockCodeGenerator
	qrService      *mockSvc.MockQRCodeService
	publisher      *mockSvc.MockEventPublisher
	unreadCache    *mockSvc.MockUnreadCache
}

func newAttendanceFixture(t *testing.T) *attendanceFixture {
	f := &attendanceFixture{
		matchRepo:      mockRepo.NewMockMatchRepository(t),
		proposalRepo:   mockRepo.NewMockProposalRepository(t),
		attendanceRepo: mockRepo.NewMockAttendanceRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		messageRepo:    mockRepo.NewMockMessageRepository(t),
		codeGen:        mockSvc.NewMockCodeGenerator(t),
		qrService:      mockSvc.NewMockQRCodeService(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
		unreadCache:    mockSvc.NewMockUnreadCache(t),
	}
	factory := &mockRepo.StubRepositoryFactory{
		UserRepository:       f.userRepo,
		MatchRepository:      f.matchRepo,
		ProposalRepository:   f.proposalRepo,
		AttendanceRepository: f.attendanceRepo,
		MessageRepository:    f.messageRepo,
	}

	f.service = NewAttendanceService(AttendanceServiceParams{
		TxManager:      &mockRepo.StubTransactionManager{Factory: factory},
		MatchRepo:      f.matchRepo,
		ProposalRepo:   f.proposalRepo,
		AttendanceRepo: f.attendanceRepo,
		CodeGen:        f.codeGen,
		QRService:      f.qrService,
		Publisher:      f.publisher,
		UnreadCache:    f.unreadCache,
		Logger:         testLogger(),
	}).(*attendanceService)

	return f
}
