package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel mirrors the 'messages' table.
type MessageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_receiver_read"`
	Type       string    `gorm:"type:varchar(30);not null"`
	Content    string    `gorm:"type:text;not null"`
	Read       bool      `gorm:"not null;default:false;index:idx_messages_receiver_read"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
