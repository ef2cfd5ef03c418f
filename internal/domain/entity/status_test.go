package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserStatus(t *testing.T) {
	t.Parallel()

	for _, s := range AllUserStatuses {
		parsed, ok := ParseUserStatus(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, parsed)
	}

	_, ok := ParseUserStatus("dating")
	assert.False(t, ok)

	_, ok = ParseUserStatus("")
	assert.False(t, ok)
}

func TestUserStatusCanTransitionTo(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from    UserStatus
		to      UserStatus
		allowed bool
	}{
		{StatusDefault, StatusChooser, true},
		{StatusDefault, StatusChosen, true},
		{StatusDefault, StatusDateConfirmed, false},
		{StatusChooser, StatusWaitingForAcceptance, true},
		{StatusChooser, StatusDefault, true},
		{StatusChosen, StatusWaitingForAcceptance, true},
		{StatusWaitingForAcceptance, StatusWaitingForDateSelection, true},
		{StatusWaitingForAcceptance, StatusDefault, true},
		{StatusWaitingForAcceptance, StatusDateConfirmed, false},
		{StatusWaitingForDateSelection, StatusWaitingForDateChoice, true},
		{StatusWaitingForDateSelection, StatusWaitingForConfirmation, true},
		{StatusWaitingForDateChoice, StatusWaitingForConfirmation, true},
		{StatusWaitingForConfirmation, StatusDateConfirmed, true},
		{StatusDateConfirmed, StatusWaitingForAttendance, true},
		{StatusDateConfirmed, StatusDateCompleted, false},
		{StatusWaitingForAttendance, StatusDateCompleted, true},
		{StatusDateCompleted, StatusDefault, true},
		{StatusDateCompleted, StatusChooser, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestUserStatusWaitingStatesFallBackToDefault(t *testing.T) {
	t.Parallel()

	for _, s := range AllUserStatuses {
		if !s.IsWaiting() {
			continue
		}
		assert.True(t, s.CanTransitionTo(StatusDefault), "%s should allow reset", s)
	}
}

func TestUserStatusIsWaiting(t *testing.T) {
	t.Parallel()

	assert.False(t, StatusDefault.IsWaiting())
	assert.False(t, StatusChooser.IsWaiting())
	assert.False(t, StatusDateConfirmed.IsWaiting())
	assert.False(t, StatusDateCompleted.IsWaiting())
	assert.True(t, StatusWaitingForAcceptance.IsWaiting())
	assert.True(t, StatusWaitingForAttendance.IsWaiting())
}
