package model

import (
	"time"

	"github.com/google/uuid"
)

// MatchModel mirrors the 'matches' table.
type MatchModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ChooserID uuid.UUID `gorm:"type:uuid;not null;index"`
	ChosenID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MatchModel) TableName() string {
	return "matches"
}
