// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"
	"io"
	"testing"
	"time"

	"cafemeetup/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

func (m *MockPasswordHasher) ValidatePasswordStrength(password string) error {
	return m.Called(password).Error(0)
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateTokens(userID uuid.UUID) (string, string, error) {
	args := m.Called(userID)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) HashToken(token string) string {
	return m.Called(token).String(0)
}

func (m *MockTokenService) GetRefreshTokenDuration() (d time.Duration) {
	args := m.Called()
	if v, ok := args.Get(0).(time.Duration); ok {
		return v
	}

	return d
}

// MockCodeGenerator mocks service.CodeGenerator.
type MockCodeGenerator struct {
	mock.Mock
}

func NewMockCodeGenerator(t *testing.T) *MockCodeGenerator {
	m := &MockCodeGenerator{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCodeGenerator) ConfirmationCode() (string, error) {
	args := m.Called()

	return args.String(0), args.Error(1)
}

// MockQRCodeService mocks service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

func NewMockQRCodeService(t *testing.T) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQRCodeService) GenerateAttendanceQR(dateID uuid.UUID, code string) ([]byte, error) {
	args := m.Called(dateID, code)
	if png, ok := args.Get(0).([]byte); ok {
		return png, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockQRCodeService) ParseAttendanceQR(qrData string) (uuid.UUID, string, error) {
	args := m.Called(qrData)

	return args.Get(0).(uuid.UUID), args.String(1), args.Error(2)
}

// MockEventPublisher mocks service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func NewMockEventPublisher(t *testing.T) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishMeetupEvent(ctx context.Context, event *service.MeetupEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// MockUnreadCache mocks service.UnreadCache.
type MockUnreadCache struct {
	mock.Mock
}

func NewMockUnreadCache(t *testing.T) *MockUnreadCache {
	m := &MockUnreadCache{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUnreadCache) GetUnread(ctx context.Context, userID uuid.UUID) (int64, bool, error) {
	args := m.Called(ctx, userID)

	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockUnreadCache) SetUnread(ctx context.Context, userID uuid.UUID, count int64) error {
	return m.Called(ctx, userID, count).Error(0)
}

func (m *MockUnreadCache) InvalidateUnread(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// MockPhotoStore mocks service.PhotoStore.
type MockPhotoStore struct {
	mock.Mock
}

func NewMockPhotoStore(t *testing.T) *MockPhotoStore {
	m := &MockPhotoStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPhotoStore) Upload(ctx context.Context, email string, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, email, contentType, body)

	return args.String(0), args.Error(1)
}

func (m *MockPhotoStore) Download(ctx context.Context, email string) ([]byte, error) {
	args := m.Called(ctx, email)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPhotoStore) Delete(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
