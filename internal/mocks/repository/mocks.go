// Package repository provides testify mocks for the persistence interfaces.
package repository

import (
	"context"
	"testing"

	"cafemeetup/internal/domain/entity"
	"cafemeetup/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByStatus(ctx context.Context, status entity.UserStatus, excludeID uuid.UUID, limit int) ([]*entity.User, error) {
	args := m.Called(ctx, status, excludeID, limit)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.UserStatus) error {
	return m.Called(ctx, id, from, to).Error(0)
}

func (m *MockUserRepository) TouchLastActive(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockAuthRepository mocks repository.AuthRepository.
type MockAuthRepository struct {
	mock.Mock
}

func NewMockAuthRepository(t *testing.T) *MockAuthRepository {
	m := &MockAuthRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	return m.Called(ctx, auth).Error(0)
}

func (m *MockAuthRepository) FindAuthentication(ctx context.Context, provider entity.ProviderType, identifier string) (*entity.Authentication, error) {
	args := m.Called(ctx, provider, identifier)
	if auth, ok := args.Get(0).(*entity.Authentication); ok {
		return auth, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthRepository) UpdatePasswordHash(ctx context.Context, auth *entity.Authentication) error {
	return m.Called(ctx, auth).Error(0)
}

// MockRefreshTokenRepository mocks repository.RefreshTokenRepository.
type MockRefreshTokenRepository struct {
	mock.Mock
}

func NewMockRefreshTokenRepository(t *testing.T) *MockRefreshTokenRepository {
	m := &MockRefreshTokenRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRefreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockRefreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	if token, ok := args.Get(0).(*entity.RefreshToken); ok {
		return token, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRefreshTokenRepository) RevokeRefreshToken(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRefreshTokenRepository) DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockRefreshTokenRepository) DeleteExpiredRefreshTokens(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockMatchRepository mocks repository.MatchRepository.
type MockMatchRepository struct {
	mock.Mock
}

func NewMockMatchRepository(t *testing.T) *MockMatchRepository {
	m := &MockMatchRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMatchRepository) Create(ctx context.Context, match *entity.Match) error {
	return m.Called(ctx, match).Error(0)
}

func (m *MockMatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Match, error) {
	args := m.Called(ctx, id)
	if match, ok := args.Get(0).(*entity.Match); ok {
		return match, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockMatchRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Match, error) {
	args := m.Called(ctx, userID)
	if match, ok := args.Get(0).(*entity.Match); ok {
		return match, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockMatchRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Match, error) {
	args := m.Called(ctx, userID, limit, offset)
	if matches, ok := args.Get(0).([]*entity.Match); ok {
		return matches, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockMatchRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.MatchStatus) error {
	return m.Called(ctx, id, from, to).Error(0)
}

// MockProposalRepository mocks repository.ProposalRepository.
type MockProposalRepository struct {
	mock.Mock
}

func NewMockProposalRepository(t *testing.T) *MockProposalRepository {
	m := &MockProposalRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProposalRepository) Create(ctx context.Context, proposal *entity.DateProposal) error {
	return m.Called(ctx, proposal).Error(0)
}

func (m *MockProposalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DateProposal, error) {
	args := m.Called(ctx, id)
	if proposal, ok := args.Get(0).(*entity.DateProposal); ok {
		return proposal, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProposalRepository) FindByMatch(ctx context.Context, matchID uuid.UUID) (*entity.DateProposal, error) {
	args := m.Called(ctx, matchID)
	if proposal, ok := args.Get(0).(*entity.DateProposal); ok {
		return proposal, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProposalRepository) SelectOption(ctx context.Context, id uuid.UUID, optionIndex int) error {
	return m.Called(ctx, id, optionIndex).Error(0)
}

func (m *MockProposalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.DateStatus) error {
	return m.Called(ctx, id, from, to).Error(0)
}

// MockAttendanceRepository mocks repository.AttendanceRepository.
type MockAttendanceRepository struct {
	mock.Mock
}

func NewMockAttendanceRepository(t *testing.T) *MockAttendanceRepository {
	m := &MockAttendanceRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAttendanceRepository) Create(ctx context.Context, attendance *entity.Attendance) error {
	return m.Called(ctx, attendance).Error(0)
}

func (m *MockAttendanceRepository) FindByDateAndUser(ctx context.Context, dateID, userID uuid.UUID) (*entity.Attendance, error) {
	args := m.Called(ctx, dateID, userID)
	if attendance, ok := args.Get(0).(*entity.Attendance); ok {
		return attendance, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAttendanceRepository) FindByDate(ctx context.Context, dateID uuid.UUID) ([]*entity.Attendance, error) {
	args := m.Called(ctx, dateID)
	if records, ok := args.Get(0).([]*entity.Attendance); ok {
		return records, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAttendanceRepository) CodeMatches(ctx context.Context, dateID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, dateID, code)

	return args.Bool(0), args.Error(1)
}

func (m *MockAttendanceRepository) MarkConfirmed(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockMessageRepository mocks repository.MessageRepository.
type MockMessageRepository struct {
	mock.Mock
}

func NewMockMessageRepository(t *testing.T) *MockMessageRepository {
	m := &MockMessageRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *MockMessageRepository) FindByReceiver(ctx context.Context, receiverID uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	args := m.Called(ctx, receiverID, limit, offset)
	if messages, ok := args.Get(0).([]*entity.Message); ok {
		return messages, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	args := m.Called(ctx, id)
	if message, ok := args.Get(0).(*entity.Message); ok {
		return message, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, id, receiverID uuid.UUID) error {
	return m.Called(ctx, id, receiverID).Error(0)
}

func (m *MockMessageRepository) CountUnread(ctx context.Context, receiverID uuid.UUID) (int64, error) {
	args := m.Called(ctx, receiverID)

	return args.Get(0).(int64), args.Error(1)
}

// MockRatingRepository mocks repository.RatingRepository.
type MockRatingRepository struct {
	mock.Mock
}

func NewMockRatingRepository(t *testing.T) *MockRatingRepository {
	m := &MockRatingRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRatingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	return m.Called(ctx, rating).Error(0)
}

func (m *MockRatingRepository) FindByDateAndRater(ctx context.Context, dateID, raterID uuid.UUID) (*entity.Rating, error) {
	args := m.Called(ctx, dateID, raterID)
	if rating, ok := args.Get(0).(*entity.Rating); ok {
		return rating, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRatingRepository) FindByRated(ctx context.Context, ratedID uuid.UUID, limit, offset int) ([]*entity.Rating, error) {
	args := m.Called(ctx, ratedID, limit, offset)
	if ratings, ok := args.Get(0).([]*entity.Rating); ok {
		return ratings, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRatingRepository) AverageScore(ctx context.Context, ratedID uuid.UUID) (float64, int64, error) {
	args := m.Called(ctx, ratedID)

	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

// MockBlackBookRepository mocks repository.BlackBookRepository.
type MockBlackBookRepository struct {
	mock.Mock
}

func NewMockBlackBookRepository(t *testing.T) *MockBlackBookRepository {
	m := &MockBlackBookRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBlackBookRepository) Upsert(ctx context.Context, entry *entity.BlackBookEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockBlackBookRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.BlackBookEntry, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if entries, ok := args.Get(0).([]*entity.BlackBookEntry); ok {
		return entries, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBlackBookRepository) FindByOwnerAndSubject(ctx context.Context, ownerID, subjectID uuid.UUID) (*entity.BlackBookEntry, error) {
	args := m.Called(ctx, ownerID, subjectID)
	if entry, ok := args.Get(0).(*entity.BlackBookEntry); ok {
		return entry, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBlackBookRepository) Delete(ctx context.Context, ownerID, subjectID uuid.UUID) error {
	return m.Called(ctx, ownerID, subjectID).Error(0)
}

// MockRejectionRepository mocks repository.RejectionRepository.
type MockRejectionRepository struct {
	mock.Mock
}

func NewMockRejectionRepository(t *testing.T) *MockRejectionRepository {
	m := &MockRejectionRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRejectionRepository) Get(ctx context.Context, userID uuid.UUID) (*entity.RejectionCount, error) {
	args := m.Called(ctx, userID)
	if counter, ok := args.Get(0).(*entity.RejectionCount); ok {
		return counter, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRejectionRepository) Increment(ctx context.Context, userID uuid.UUID) (*entity.RejectionCount, error) {
	args := m.Called(ctx, userID)
	if counter, ok := args.Get(0).(*entity.RejectionCount); ok {
		return counter, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRejectionRepository) Reset(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// StubRepositoryFactory hands back the mocks above as a repository factory.
type StubRepositoryFactory struct {
	UserRepository         *MockUserRepository
	AuthRepository         *MockAuthRepository
	RefreshTokenRepository *MockRefreshTokenRepository
	MatchRepository        *MockMatchRepository
	ProposalRepository     *MockProposalRepository
	AttendanceRepository   *MockAttendanceRepository
	MessageRepository      *MockMessageRepository
	RatingRepository       *MockRatingRepository
	BlackBookRepository    *MockBlackBookRepository
	RejectionRepository    *MockRejectionRepository
}

func (f *StubRepositoryFactory) UserRepo() repository.UserRepository {
	return f.UserRepository
}

func (f *StubRepositoryFactory) AuthRepo() repository.AuthRepository {
	return f.AuthRepository
}

func (f *StubRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return f.RefreshTokenRepository
}

func (f *StubRepositoryFactory) MatchRepo() repository.MatchRepository {
	return f.MatchRepository
}

func (f *StubRepositoryFactory) ProposalRepo() repository.ProposalRepository {
	return f.ProposalRepository
}

func (f *StubRepositoryFactory) AttendanceRepo() repository.AttendanceRepository {
	return f.AttendanceRepository
}

func (f *StubRepositoryFactory) MessageRepo() repository.MessageRepository {
	return f.MessageRepository
}

func (f *StubRepositoryFactory) RatingRepo() repository.RatingRepository {
	return f.RatingRepository
}

func (f *StubRepositoryFactory) BlackBookRepo() repository.BlackBookRepository {
	return f.BlackBookRepository
}

func (f *StubRepositoryFactory) RejectionRepo() repository.RejectionRepository {
	return f.RejectionRepository
}

// StubTransactionManager runs the callback against a stub factory without a
// real database transaction.
type StubTransactionManager struct {
	Factory *StubRepositoryFactory
}

func (m *StubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}
