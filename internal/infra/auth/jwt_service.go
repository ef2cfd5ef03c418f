package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"cafemeetup/config"
	"cafemeetup/internal/domain/service"
)

const (
	// TokenTypeAccess identifies short-lived tokens used on API requests.
	TokenTypeAccess = "access"
	// TokenTypeRefresh identifies long-lived tokens used to mint new sessions.
	TokenTypeRefresh = "refresh"

	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// jwtService issues and validates HS256-signed tokens. Access and refresh
// tokens are signed with separate secrets so a leaked access secret cannot
// mint refresh tokens.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets are not configured")
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     accessTokenTTL,
		refreshTTL:    refreshTokenTTL,
	}, nil
}

// GenerateTokens creates a new access and refresh token pair for the user.
func (s *jwtService) GenerateTokens(userID uuid.UUID) (string, string, error) {
	now := time.Now()

	accessToken, err := s.signToken(userID, TokenTypeAccess, now, s.accessTTL, s.accessSecret)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign access token")
	}

	refreshToken, err := s.signToken(userID, TokenTypeRefresh, now, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign refresh token")
	}

	return accessToken, refreshToken, nil
}

func (s *jwtService) signToken(userID uuid.UUID, tokenType string, now time.Time, ttl time.Duration, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"type": tokenType,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ValidateToken parses a token string and returns its claims. The signing
// secret is picked from the unverified "type" claim, then the signature and
// expiry are checked against it.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		if tokenType, _ := tokenTypeOf(token.Claims); tokenType == TokenTypeRefresh {
			return s.refreshSecret, nil
		}

		return s.accessSecret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	tokenType, ok := tokenTypeOf(token.Claims)
	if !ok {
		return nil, errors.New("token type claim is missing")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "subject claim is missing")
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "subject claim is not a user id")
	}

	claims := &service.Claims{
		UserID: userID,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: subject,
		},
	}
	if exp, expErr := token.Claims.GetExpirationTime(); expErr == nil && exp != nil {
		claims.ExpiresAt = exp
	}

	return claims, nil
}

// HashToken produces the digest under which a refresh token is persisted.
// Only the digest ever reaches storage.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// GetRefreshTokenDuration returns the configured refresh token lifetime.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func tokenTypeOf(claims jwt.Claims) (string, bool) {
	mapClaims, ok := claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	tokenType, ok := mapClaims["type"].(string)

	return tokenType, ok
}
