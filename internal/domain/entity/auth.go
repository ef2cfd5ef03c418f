package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies the credential provider of an authentication
// record. Email with a bcrypt hash is the only provider today.
type ProviderType string

const (
	ProviderTypeEmail ProviderType = "email"
)

// Authentication stores one credential for a user.
type Authentication struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Provider     ProviderType
	Identifier   string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is a persisted long-lived token. Rotation revokes the old
// token and issues a new row.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// Active reports whether the token may still be exchanged.
func (t *RefreshToken) Active(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
