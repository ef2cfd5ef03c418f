package entity

import (
	"time"

	"github.com/google/uuid"
)

// BlackBookEntry is a private per-owner note about a past date partner.
// Entries are visible only to their owner; one entry per owner and subject.
type BlackBookEntry struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	SubjectID uuid.UUID
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
