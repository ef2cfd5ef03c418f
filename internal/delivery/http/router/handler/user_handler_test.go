package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cafemeetup/internal/delivery/http/middleware"
	"cafemeetup/internal/delivery/http/validator"
	"cafemeetup/internal/domain/entity"
	"cafemeetup/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserUsecase lets each test plug in just the method it exercises.
type stubUserUsecase struct {
	registerFn   func(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error)
	getProfileFn func(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}

func (s *stubUserUsecase) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserUsecase) Login(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error) {
	panic("not implemented")
}

func (s *stubUserUsecase) RefreshSession(context.Context, string) (*usecase.RefreshOutput, error) {
	panic("not implemented")
}

func (s *stubUserUsecase) Logout(context.Context, string) error {
	panic("not implemented")
}

func (s *stubUserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return s.getProfileFn(ctx, userID)
}

func (s *stubUserUsecase) UpdateProfile(context.Context, uuid.UUID, *usecase.UpdateProfileInput) (*entity.User, error) {
	panic("not implemented")
}

func (s *stubUserUsecase) UploadPhoto(context.Context, uuid.UUID, *usecase.UploadPhotoInput) (string, error) {
	panic("not implemented")
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func TestUserHandler_Register(t *testing.T) {
	userID := uuid.New()
	uc := &stubUserUsecase{
		registerFn: func(_ context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
			assert.Equal(t, "jamie@example.com", input.Email)

			return &usecase.RegisterOutput{User: &entity.User{
				ID:        userID,
				Email:     input.Email,
				FirstName: input.FirstName,
				LastName:  input.LastName,
			}}, nil
		},
	}
	h := NewUserHandler(uc, slog.Default())
	e := newTestEcho()

	body := `{"first_name":"Jamie","last_name":"Rivera","email":"jamie@example.com","password":"Str0ng-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "jamie@example.com")
}

func TestUserHandler_Register_RejectsInvalidEmail(t *testing.T) {
	h := NewUserHandler(&stubUserUsecase{}, slog.Default())
	e := newTestEcho()

	body := `{"first_name":"Jamie","last_name":"Rivera","email":"not-an-email","password":"Str0ng-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUserHandler_GetProfile(t *testing.T) {
	userID := uuid.New()
	uc := &stubUserUsecase{
		getProfileFn: func(_ context.Context, gotID uuid.UUID) (*entity.User, error) {
			assert.Equal(t, userID, gotID)

			return &entity.User{ID: userID, Email: "jamie@example.com"}, nil
		},
	}
	h := NewUserHandler(uc, slog.Default())
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestUserHandler_GetProfile_Unauthenticated(t *testing.T) {
	h := NewUserHandler(&stubUserUsecase{}, slog.Default())
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
