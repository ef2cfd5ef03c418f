package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConfirmationCodeLength is the number of digits in an attendance code.
// Codes are zero-padded, so "0042" is valid.
const ConfirmationCodeLength = 4

// Attendance records one party's arrival at a confirmed date. Both parties
// write their own row; the meeting counts as verified once either party
// submits a code that matches any row for the date.
type Attendance struct {
	ID               uuid.UUID
	DateID           uuid.UUID
	UserID           uuid.UUID
	Confirmed        bool
	ConfirmationCode string
	ConfirmedAt      *time.Time
	CreatedAt        time.Time
}

// ValidConfirmationCode reports whether code has the expected shape: exactly
// four ASCII digits, leading zeros included.
func ValidConfirmationCode(code string) bool {
	if len(code) != ConfirmationCodeLength {
		return false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
