package model

import (
	"time"

	"github.com/google/uuid"
)

// BlackBookModel mirrors the 'black_book' table. An owner keeps at most one
// note per subject.
type BlackBookModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_black_book_owner_subject"`
	SubjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_black_book_owner_subject"`
	Note      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlackBookModel) TableName() string {
	return "black_book"
}
