package model

import (
	"time"

	"github.com/google/uuid"
)

// RejectionCountModel mirrors the 'rejection_counts' table. One row per user,
// reset lazily on the first access a day after the last reset.
type RejectionCountModel struct {
	UserID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Count         int       `gorm:"not null;default:0"`
	LastResetDate time.Time `gorm:"not null"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (RejectionCountModel) TableName() string {
	return "rejection_counts"
}
