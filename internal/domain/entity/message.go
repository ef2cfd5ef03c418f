package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageType classifies system-generated messages so clients can render
// them with the right affordance.
type MessageType string

const (
	MessageMatch            MessageType = "match"
	MessageDateProposal     MessageType = "date_proposal"
	MessageDateConfirmation MessageType = "date_confirmation"
	MessageAttendance       MessageType = "attendance"
	MessageReminder         MessageType = "reminder"
	MessageSystem           MessageType = "system"
)

// Message is a lifecycle notification delivered to a user's inbox. Messages
// are append-only; only the read flag mutates.
type Message struct {
	ID         uuid.UUID
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Type       MessageType
	Content    string
	Read       bool
	CreatedAt  time.Time
}
