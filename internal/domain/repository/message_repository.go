// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"cafemeetup/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for message persistence.
var (
	// ErrMessageNotFound is returned when a message is not found.
	ErrMessageNotFound = errors.New("message not found")
)

// MessageRepository defines the interface for inbox message persistence.
type MessageRepository interface {
	// Create persists a new message.
	Create(ctx context.Context, message *entity.Message) error

	// FindByReceiver retrieves a user's inbox, newest first.
	FindByReceiver(ctx context.Context, receiverID uuid.UUID, limit, offset int) ([]*entity.Message, error)

	// FindByID retrieves a message by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)

	// MarkRead flags a message as read. Only the receiver may do this.
	MarkRead(ctx context.Context, id, receiverID uuid.UUID) error

	// CountUnread returns the number of unread messages in a user's inbox.
	CountUnread(ctx context.Context, receiverID uuid.UUID) (int64, error)
}
