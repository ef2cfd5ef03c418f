package impl

import (
	"context"
	"testing"
	"time"

	"cafemeetup/internal/domain/entity"
	domainerrors "cafemeetup/internal/domain/errors"
	"cafemeetup/internal/domain/repository"
	"cafemeetup/internal/domain/service"
	mockRepo "cafemeetup/internal/mocks/repository"
	mockSvc "cafemeetup/internal/mocks/service"
	"cafemeetup/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	service          usecase.UserUsecase
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	photoStore       *mockSvc.MockPhotoStore
}

func newUserFixture(t *testing.T) *userFixture {
	f := &userFixture{
		userRepo:         mockRepo.NewMockUserRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		photoStore:       mockSvc.NewMockPhotoStore(t),
	}
	factory := &mockRepo.StubRepositoryFactory{
		UserRepository:         f.userRepo,
		AuthRepository:         f.authRepo,
		RefreshTokenRepository: f.refreshTokenRepo,
	}

	f.service = NewUserService(UserServiceParams{
		TxManager:        &mockRepo.StubTransactionManager{Factory: factory},
		UserRepo:         f.userRepo,
		AuthRepo:         f.authRepo,
		RefreshTokenRepo: f.refreshTokenRepo,
		Hasher:           f.hasher,
		TokenService:     f.tokenService,
		PhotoStore:       f.photoStore,
		Logger:           testLogger(),
	})

	return f
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	f.hasher.On("ValidatePasswordStrength", "s3cure-pass").Return(nil)
	f.hasher.On("Hash", "s3cure-pass").Return("hashed", nil)
	f.authRepo.On("FindAuthentication", ctx, entity.ProviderTypeEmail, "ava@example.com").
		Return(nil, repository.ErrAuthNotFound)
	f.userRepo.On("Create", ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.Email == "ava@example.com" && user.Status == entity.StatusDefault
	})).Return(nil)
	f.authRepo.On("CreateAuthentication", ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
		return auth.Identifier == "ava@example.com" && auth.PasswordHash == "hashed"
	})).Return(nil)

	output, err := f.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		FirstName: "Ava",
		LastName:  "Lin",
		Email:     "ava@example.com",
		Password:  "s3cure-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDefault, output.User.Status)
}

func TestUserService_RegisterUser_EmailTaken(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	f.hasher.On("ValidatePasswordStrength", "s3cure-pass").Return(nil)
	f.hasher.On("Hash", "s3cure-pass").Return("hashed", nil)
	f.authRepo.On("FindAuthentication", ctx, entity.ProviderTypeEmail, "ava@example.com").
		Return(&entity.Authentication{}, nil)

	_, err := f.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Email:    "ava@example.com",
		Password: "s3cure-pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_RegisterUser_WeakPassword(t *testing.T) {
	f := newUserFixture(t)

	f.hasher.On("ValidatePasswordStrength", "123").Return(domainerrors.ErrPasswordStrength)

	_, err := f.service.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Email:    "ava@example.com",
		Password: "123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestUserService_Login_Success(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.authRepo.On("FindAuthentication", ctx, entity.ProviderTypeEmail, "ava@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
	f.hasher.On("Check", "s3cure-pass", "hashed").Return(true)
	f.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Email: "ava@example.com"}, nil)
	f.tokenService.On("GenerateTokens", userID).Return("access", "refresh", nil)
	f.tokenService.On("HashToken", "refresh").Return("refresh-hash")
	f.tokenService.On("GetRefreshTokenDuration").Return(30 * 24 * time.Hour)
	f.refreshTokenRepo.On("CreateRefreshToken", ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
		return token.UserID == userID && token.TokenHash == "refresh-hash"
	})).Return(nil)
	f.userRepo.On("TouchLastActive", ctx, userID).Return(nil)

	output, err := f.service.Login(ctx, &usecase.LoginInput{Email: "ava@example.com", Password: "s3cure-pass"})
	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	f.authRepo.On("FindAuthentication", ctx, entity.ProviderTypeEmail, "ava@example.com").
		Return(&entity.Authentication{PasswordHash: "hashed"}, nil)
	f.hasher.On("Check", "wrong", "hashed").Return(false)

	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "ava@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	f.authRepo.On("FindAuthentication", ctx, entity.ProviderTypeEmail, "ghost@example.com").
		Return(nil, repository.ErrAuthNotFound)

	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_RefreshSession_RotatesToken(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	tokenID := uuid.New()

	f.tokenService.On("ValidateToken", "old-refresh").
		Return(&service.Claims{UserID: userID}, nil)
	f.tokenService.On("HashToken", "old-refresh").Return("old-hash")
	f.refreshTokenRepo.On("FindRefreshTokenByHash", ctx, "old-hash").
		Return(&entity.RefreshToken{ID: tokenID, UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	f.tokenService.On("GenerateTokens", userID).Return("new-access", "new-refresh", nil)
	f.refreshTokenRepo.On("RevokeRefreshToken", ctx, tokenID).Return(nil)
	f.tokenService.On("HashToken", "new-refresh").Return("new-hash")
	f.tokenService.On("GetRefreshTokenDuration").Return(30 * 24 * time.Hour)
	f.refreshTokenRepo.On("CreateRefreshToken", ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
		return token.TokenHash == "new-hash"
	})).Return(nil)

	output, err := f.service.RefreshSession(ctx, "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}
