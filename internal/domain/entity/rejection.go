package entity

import (
	"time"

	"github.com/google/uuid"
)

// RejectionCount tracks how many matches a user has rejected inside the
// current window. The counter resets lazily: the next read or write after at
// least one full day since LastResetDate zeroes it first.
type RejectionCount struct {
	UserID        uuid.UUID
	Count         int
	LastResetDate time.Time
	UpdatedAt     time.Time
}

// ShouldReset reports whether a full day has passed since the last reset.
func (r *RejectionCount) ShouldReset(now time.Time) bool {
	return now.Sub(r.LastResetDate) >= 24*time.Hour
}

// EffectiveCount returns the count as of now, applying a pending lazy reset
// without mutating the record.
func (r *RejectionCount) EffectiveCount(now time.Time) int {
	if r.ShouldReset(now) {
		return 0
	}

	return r.Count
}

// Blocked reports whether the user has exhausted the rejection allowance for
// the current window.
func (r *RejectionCount) Blocked(now time.Time, limit int) bool {
	return r.EffectiveCount(now) >= limit
}
