package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating is one party's post-date score of the other, 1 through 5. A rater
// may rate a given date at most once.
type Rating struct {
	ID        uuid.UUID
	DateID    uuid.UUID
	RaterID   uuid.UUID
	RatedID   uuid.UUID
	Score     int
	Comment   *string
	CreatedAt time.Time
}

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// ValidScore reports whether score lies inside the allowed range.
func ValidScore(score int) bool {
	return score >= MinRatingScore && score <= MaxRatingScore
}
