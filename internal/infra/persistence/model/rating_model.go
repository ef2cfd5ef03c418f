package model

import (
	"time"

	"github.com/google/uuid"
)

// RatingModel mirrors the 'ratings' table. The unique index on date and
// rater enforces one rating per party per date.
type RatingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DateID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_date_rater"`
	RaterID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_date_rater"`
	RatedID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Score     int       `gorm:"not null;check:score >= 1 AND score <= 5"`
	Comment   *string   `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}
