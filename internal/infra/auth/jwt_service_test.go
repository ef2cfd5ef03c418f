package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafemeetup/config"
	"cafemeetup/internal/domain/service"
)

func newTestJWTService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "only-access"

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t)
	userID := uuid.New()

	access, refresh, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	accessClaims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "a-completely-different-secret"
	otherCfg.SecretKey.Refresh = "another-different-secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	access, _, err := other.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t)

	_, err := svc.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestJWTService_HashTokenIsStable(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t)

	first := svc.HashToken("refresh-token-value")
	second := svc.HashToken("refresh-token-value")
	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, svc.HashToken("different-value"))
}
