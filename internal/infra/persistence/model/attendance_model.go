package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceModel mirrors the 'attendance' table. One row per party per
// confirmed date, carrying that party's confirmation code.
type AttendanceModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DateID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_date_user"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_date_user"`
	ConfirmationCode string    `gorm:"type:char(4);not null"`
	Confirmed        bool      `gorm:"not null;default:false"`
	ConfirmedAt      *time.Time
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (AttendanceModel) TableName() string {
	return "attendance"
}
