// Package impl contains the implementation of the application's business logic.
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

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	authRepo         repository.AuthRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	photoStore       service.PhotoStore
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	PhotoStore       service.PhotoStore
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		authRepo:         params.AuthRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		photoStore:       params.PhotoStore,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser orchestrates the complete user registration process.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, findErr := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to find authentication")
		}

		newUser := &entity.User{
			Email:     input.Email,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Status:    entity.StatusDefault,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:       newUser.ID,
			Provider:     entity.ProviderTypeEmail,
			Identifier:   input.Email,
			PasswordHash: hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	loggedInUser, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(loggedInUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	newToken := &entity.RefreshToken{
		UserID:    loggedInUser.ID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, newToken); err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}

	if err := srv.userRepo.TouchLastActive(ctx, loggedInUser.ID); err != nil {
		srv.log(ctx).Warn("Failed to update last active timestamp", slog.Any("userID", loggedInUser.ID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

// RefreshSession rotates a refresh token: the old token is revoked and a new
// pair is issued in the same transaction.
func (srv *userService) RefreshSession(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Info("Attempting to refresh session")

	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	var output *usecase.RefreshOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		stored, err := refreshRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
		if err != nil {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found")
		}
		if !stored.Active(time.Now()) {
			return errors.Wrap(domainerrors.ErrRefreshTokenExpired, "refresh token expired or revoked")
		}

		newAccess, newRefresh, err := srv.tokenService.GenerateTokens(claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to generate new tokens")
		}

		if err := refreshRepo.RevokeRefreshToken(ctx, stored.ID); err != nil {
			return errors.Wrap(err, "failed to revoke old refresh token")
		}

		newToken := &entity.RefreshToken{
			UserID:    claims.UserID,
			TokenHash: srv.tokenService.HashToken(newRefresh),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := refreshRepo.CreateRefreshToken(ctx, newToken); err != nil {
			return errors.Wrap(err, "failed to store rotated refresh token")
		}

		output = &usecase.RefreshOutput{AccessToken: newAccess, RefreshToken: newRefresh}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute refresh session transaction", slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// Logout invalidates a user's session by revoking their refresh token.
func (srv *userService) Logout(ctx context.Context, refreshToken string) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(refreshToken); err != nil {
		// Even with an invalid token, proceed to revoke it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find refresh token")
	}

	if err := srv.refreshTokenRepo.RevokeRefreshToken(ctx, stored.ID); err != nil {
		srv.log(ctx).Error("Failed to revoke refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// GetProfile loads a user's own profile.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// UpdateProfile applies the provided profile changes.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user by id")
		}

		if input.FirstName != nil {
			user.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			user.LastName = *input.LastName
		}
		if input.Bio != nil {
			user.Bio = input.Bio
		}
		if input.Location != nil {
			user.Location = input.Location
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user profile")
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute profile update transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return updated, nil
}

// UploadPhoto stores a profile photo and records its public URL.
func (srv *userService) UploadPhoto(ctx context.Context, userID uuid.UUID, input *usecase.UploadPhotoInput) (string, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", errors.Wrap(err, "failed to find user by id")
	}

	url, err := srv.photoStore.Upload(ctx, user.Email, input.ContentType, input.Body)
	if err != nil {
		srv.log(ctx).Error("Failed to upload profile photo", slog.Any("userID", userID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to upload profile photo")
	}

	user.PhotoURL = &url
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to record photo url")
	}

	srv.log(ctx).Debug("Profile photo updated", slog.Any("userID", userID))

	return url, nil
}
