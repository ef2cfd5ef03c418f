package usecase

import (
	"context"

	"cafemeetup/internal/domain/entity"

	"github.com/google/uuid"
)

// InboxOutput is one page of a user's inbox plus the unread total.
type InboxOutput struct {
	Messages []*entity.Message
	Unread   int64
}

// MessageUsecase manages the lifecycle notification inbox.
type MessageUsecase interface {
	// Inbox returns a page of the user's messages, newest first, along with
	// the unread count.
	Inbox(ctx context.Context, userID uuid.UUID, limit, offset int) (*InboxOutput, error)

	// MarkRead flags one of the user's messages as read.
	MarkRead(ctx context.Context, userID, messageID uuid.UUID) error

	// UnreadCount returns the number of unread messages, served from cache
	// when possible.
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}
