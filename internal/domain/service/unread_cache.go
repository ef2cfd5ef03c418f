package service

import (
	"context"

	"github.com/google/uuid"
)

// UnreadCache caches per-user unread message counts. Implementations must
// treat the cache as advisory: a miss or error falls back to the database.
type UnreadCache interface {
	// GetUnread returns the cached count and whether the key was present.
	GetUnread(ctx context.Context, userID uuid.UUID) (int64, bool, error)

	// SetUnread stores the count under the configured TTL.
	SetUnread(ctx context.Context, userID uuid.UUID, count int64) error

	// InvalidateUnread drops the cached count after the inbox changes.
	InvalidateUnread(ctx context.Context, userID uuid.UUID) error
}
