package cache

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafemeetup/config"
	"cafemeetup/internal/domain/service"
)

func newTestCache(t *testing.T) (service.UnreadCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	cfg := &config.Config{
		Redis: &config.RedisConfig{Addr: mr.Addr(), TTL: time.Minute},
	}

	return NewUnreadCache(cfg), mr
}

func TestUnreadCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	userID := uuid.New()

	_, hit, err := c.GetUnread(t.Context(), userID)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.SetUnread(t.Context(), userID, 7))

	count, hit, err := c.GetUnread(t.Context(), userID)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, int64(7), count)
}

func TestUnreadCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)
	userID := uuid.New()

	require.NoError(t, c.SetUnread(t.Context(), userID, 3))
	require.NoError(t, c.InvalidateUnread(t.Context(), userID))

	_, hit, err := c.GetUnread(t.Context(), userID)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestUnreadCache_EntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	userID := uuid.New()

	require.NoError(t, c.SetUnread(t.Context(), userID, 3))
	mr.FastForward(2 * time.Minute)

	_, hit, err := c.GetUnread(t.Context(), userID)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestUnreadCache_NoopWithoutConfig(t *testing.T) {
	c := NewUnreadCache(&config.Config{})
	userID := uuid.New()

	require.NoError(t, c.SetUnread(t.Context(), userID, 3))

	_, hit, err := c.GetUnread(t.Context(), userID)
	require.NoError(t, err)
	assert.False(t, hit)
}
