package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRejectionCount(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("blocks at the limit within a window", func(t *testing.T) {
		t.Parallel()

		r := &RejectionCount{Count: 3, LastResetDate: now.Add(-2 * time.Hour)}
		assert.True(t, r.Blocked(now, 3))
		assert.False(t, r.Blocked(now, 5))
	})

	t.Run("resets after a full day", func(t *testing.T) {
		t.Parallel()

		r := &RejectionCount{Count: 3, LastResetDate: now.Add(-25 * time.Hour)}
		assert.True(t, r.ShouldReset(now))
		assert.Equal(t, 0, r.EffectiveCount(now))
		assert.False(t, r.Blocked(now, 3))
	})

	t.Run("does not reset within the same day", func(t *testing.T) {
		t.Parallel()

		r := &RejectionCount{Count: 2, LastResetDate: now.Add(-23 * time.Hour)}
		assert.False(t, r.ShouldReset(now))
		assert.Equal(t, 2, r.EffectiveCount(now))
	})
}

func TestValidConfirmationCode(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidConfirmationCode("0042"))
	assert.True(t, ValidConfirmationCode("9999"))
	assert.True(t, ValidConfirmationCode("0000"))
	assert.False(t, ValidConfirmationCode("999"))
	assert.False(t, ValidConfirmationCode("99999"))
	assert.False(t, ValidConfirmationCode("12a4"))
	assert.False(t, ValidConfirmationCode(""))
}

func TestValidScore(t *testing.T) {
	t.Parallel()

	assert.False(t, ValidScore(0))
	assert.True(t, ValidScore(1))
	assert.True(t, ValidScore(5))
	assert.False(t, ValidScore(6))
}
