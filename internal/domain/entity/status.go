// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// UserStatus is the single tagged representation of a user's position in the
// meetup lifecycle. It is persisted verbatim on the users table, so every
// value here must round-trip through ParseUserStatus.
type UserStatus string

const (
	// StatusDefault is the initial state: no meetup journey in progress.
	StatusDefault UserStatus = "default"
	// StatusChooser marks a user browsing discoverable candidates.
	StatusChooser UserStatus = "chooser"
	// StatusChosen marks a user waiting to be picked by a chooser.
	StatusChosen UserStatus = "chosen"
	// StatusWaitingForAcceptance applies to both parties of a pending match.
	StatusWaitingForAcceptance UserStatus = "waiting_for_acceptance"
	// StatusWaitingForDateSelection applies after acceptance, before the
	// proposer has submitted date options.
	StatusWaitingForDateSelection UserStatus = "waiting_for_date_selection"
	// StatusWaitingForDateChoice marks the proposer waiting for the other
	// party to pick one of the three submitted options.
	StatusWaitingForDateChoice UserStatus = "waiting_for_date_choice"
	// StatusWaitingForConfirmation applies to both parties once an option
	// has been selected but not yet confirmed.
	StatusWaitingForConfirmation UserStatus = "waiting_for_confirmation"
	// StatusDateConfirmed marks a locked-in date.
	StatusDateConfirmed UserStatus = "date_confirmed"
	// StatusWaitingForAttendance marks the attendance verification phase.
	StatusWaitingForAttendance UserStatus = "waiting_for_attendance"
	// StatusDateCompleted marks a verified meeting. Leaving it requires the
	// explicit close operation; it never happens automatically.
	StatusDateCompleted UserStatus = "date_completed"
)

// AllUserStatuses lists every reachable lifecycle state.
var AllUserStatuses = []UserStatus{
	StatusDefault,
	StatusChooser,
	StatusChosen,
	StatusWaitingForAcceptance,
	StatusWaitingForDateSelection,
	StatusWaitingForDateChoice,
	StatusWaitingForConfirmation,
	StatusDateConfirmed,
	StatusWaitingForAttendance,
	StatusDateCompleted,
}

// transitions is the adjacency table of the lifecycle state machine.
// An entry lists every status a user may move to from the key status.
// Every waiting state can fall back to StatusDefault (rejection or window
// expiry by the opposing party).
var transitions = map[UserStatus][]UserStatus{
	StatusDefault:                 {StatusChooser, StatusChosen},
	StatusChooser:                 {StatusWaitingForAcceptance, StatusDefault},
	StatusChosen:                  {StatusWaitingForAcceptance, StatusDefault},
	StatusWaitingForAcceptance:    {StatusWaitingForDateSelection, StatusDefault},
	StatusWaitingForDateSelection: {StatusWaitingForDateChoice, StatusWaitingForConfirmation, StatusDefault},
	StatusWaitingForDateChoice:    {StatusWaitingForConfirmation, StatusDefault},
	StatusWaitingForConfirmation:  {StatusDateConfirmed, StatusDefault},
	StatusDateConfirmed:           {StatusWaitingForAttendance, StatusDefault},
	StatusWaitingForAttendance:    {StatusDateCompleted, StatusDefault},
	StatusDateCompleted:           {StatusDefault},
}

// String returns the persisted representation of the status.
func (s UserStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a member of the defined state set.
func (s UserStatus) IsValid() bool {
	_, ok := transitions[s]

	return ok
}

// CanTransitionTo reports whether moving from s to target is a legal edge of
// the lifecycle state machine.
func (s UserStatus) CanTransitionTo(target UserStatus) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}

	return false
}

// IsWaiting reports whether the status is one of the intermediate states in
// which the opposing party or the expiry window can push the user back to
// StatusDefault.
func (s UserStatus) IsWaiting() bool {
	switch s {
	case StatusWaitingForAcceptance,
		StatusWaitingForDateSelection,
		StatusWaitingForDateChoice,
		StatusWaitingForConfirmation,
		StatusWaitingForAttendance:
		return true
	default:
		return false
	}
}

// Label returns the human-readable description shown on the dashboard.
func (s UserStatus) Label() string {
	switch s {
	case StatusDefault:
		return "Ready to Start"
	case StatusChooser:
		return "Choosing"
	case StatusChosen:
		return "Waiting to be Chosen"
	case StatusWaitingForAcceptance:
		return "Waiting for Response"
	case StatusWaitingForDateSelection:
		return "Selecting Dates"
	case StatusWaitingForDateChoice:
		return "Waiting for Date Choice"
	case StatusWaitingForConfirmation:
		return "Confirming Date"
	case StatusDateConfirmed:
		return "Date Confirmed"
	case StatusWaitingForAttendance:
		return "Confirming Attendance"
	case StatusDateCompleted:
		return "Date Completed"
	default:
		return string(s)
	}
}

// ParseUserStatus converts a raw persisted string into a UserStatus,
// rejecting anything outside the defined state set.
func ParseUserStatus(raw string) (UserStatus, bool) {
	s := UserStatus(raw)
	if !s.IsValid() {
		return "", false
	}

	return s, true
}
