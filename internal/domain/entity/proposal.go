package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DateStatus tracks a proposal's progress from submission to confirmation.
type DateStatus string

const (
	DateProposed  DateStatus = "proposed"
	DateSelected  DateStatus = "selected"
	DateConfirmed DateStatus = "confirmed"
	DateCancelled DateStatus = "cancelled"
)

// MaxDateOptions is the number of alternatives every proposal carries.
const MaxDateOptions = 3

// DateOption is one concrete date-time-venue alternative inside a proposal.
type DateOption struct {
	StartsAt  time.Time
	VenueName string
	Address   string
	Latitude  *float64
	Longitude *float64
}

// Equal compares the fields that make two options interchangeable from the
// chooser's point of view.
func (o DateOption) Equal(other DateOption) bool {
	return o.StartsAt.Equal(other.StartsAt) &&
		o.VenueName == other.VenueName &&
		o.Address == other.Address
}

// DateProposal carries the MaxDateOptions alternatives submitted by the
// proposer of an accepted match. SelectedIndex is set once the other party
// picks an option and stays set through confirmation.
type DateProposal struct {
	ID            uuid.UUID
	MatchID       uuid.UUID
	ProposerID    uuid.UUID
	Options       []DateOption
	SelectedIndex *int
	Status        DateStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Stale reports whether the proposal has sat unanswered past windowDays
// calendar days since submission.
func (p *DateProposal) Stale(now time.Time, windowDays int) bool {
	return p.Status == DateProposed && now.After(p.CreatedAt.AddDate(0, 0, windowDays))
}

// SelectedOption returns the chosen option, if any.
func (p *DateProposal) SelectedOption() (DateOption, bool) {
	if p.SelectedIndex == nil || *p.SelectedIndex < 0 || *p.SelectedIndex >= len(p.Options) {
		return DateOption{}, false
	}

	return p.Options[*p.SelectedIndex], true
}

// ValidateOptions enforces the submission rules for a set of proposed
// options: exactly MaxDateOptions of them, pairwise distinct date-times, not
// in the past, and each within windowDays calendar days of now (inclusive).
// Distinctness ignores the venue: the same moment at two venues is still one
// moment.
func ValidateOptions(options []DateOption, now time.Time, windowDays int) error {
	if len(options) != MaxDateOptions {
		return errors.Errorf("exactly %d date options are required", MaxDateOptions)
	}

	for i, opt := range options {
		if opt.VenueName == "" {
			return errors.Errorf("option %d: venue name is required", i+1)
		}
		if opt.StartsAt.Before(now) {
			return errors.Errorf("option %d: date is in the past", i+1)
		}
		if calendarDaysBetween(now, opt.StartsAt) > windowDays {
			return errors.Errorf("option %d: date is more than %d days away", i+1, windowDays)
		}
		for j := i + 1; j < len(options); j++ {
			if opt.StartsAt.Equal(options[j].StartsAt) {
				return errors.Errorf("options %d and %d share the same date-time", i+1, j+1)
			}
		}
	}

	return nil
}

// calendarDaysBetween counts whole calendar days from a to b, ignoring the
// time-of-day component of both.
func calendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)

	return int(end.Sub(start).Hours() / 24)
}
