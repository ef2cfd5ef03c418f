package entity

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus tracks the outcome of a chooser's selection.
type MatchStatus string

const (
	MatchPending  MatchStatus = "pending"
	MatchAccepted MatchStatus = "accepted"
	MatchRejected MatchStatus = "rejected"
	MatchExpired  MatchStatus = "expired"
)

// IsTerminal reports whether the match can no longer change state.
func (s MatchStatus) IsTerminal() bool {
	return s == MatchRejected || s == MatchExpired
}

// Match records a chooser selecting a chosen user. At most one pending match
// may reference a given user at a time, enforced by state preconditions on
// both parties.
type Match struct {
	ID        uuid.UUID
	ChooserID uuid.UUID
	ChosenID  uuid.UUID
	Status    MatchStatus
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
}

// OtherParty returns the counterpart of userID within the match.
func (m *Match) OtherParty(userID uuid.UUID) uuid.UUID {
	if m.ChooserID == userID {
		return m.ChosenID
	}

	return m.ChooserID
}

// Involves reports whether userID is one of the match parties.
func (m *Match) Involves(userID uuid.UUID) bool {
	return m.ChooserID == userID || m.ChosenID == userID
}

// Expired reports whether the response window has lapsed while the match is
// still pending.
func (m *Match) Expired(now time.Time) bool {
	return m.Status == MatchPending && now.After(m.ExpiresAt)
}
