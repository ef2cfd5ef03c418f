package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafemeetup/internal/domain/entity"
)

func TestDateOptionsJSON_ValueAndScan(t *testing.T) {
	t.Parallel()

	lat, lng := 51.5074, -0.1278
	options := DateOptionsJSON{
		{
			StartsAt:  time.Date(2026, 9, 3, 18, 30, 0, 0, time.UTC),
			VenueName: "Monmouth Coffee",
			Address:   "27 Monmouth St, London",
			Latitude:  &lat,
			Longitude: &lng,
		},
		{
			StartsAt:  time.Date(2026, 9, 4, 10, 0, 0, 0, time.UTC),
			VenueName: "Kaffeine",
		},
	}

	value, err := options.Value()
	require.NoError(t, err)

	var scanned DateOptionsJSON
	require.NoError(t, scanned.Scan(value))
	require.Len(t, scanned, 2)
	assert.Equal(t, "Monmouth Coffee", scanned[0].VenueName)
	assert.True(t, scanned[0].Equal(entity.DateOption(options[0])))
	assert.Nil(t, scanned[1].Latitude)
}

func TestDateOptionsJSON_ScanNil(t *testing.T) {
	t.Parallel()

	scanned := DateOptionsJSON{{VenueName: "stale"}}
	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)
}

func TestDateOptionsJSON_ScanRejectsUnsupportedType(t *testing.T) {
	t.Parallel()

	var scanned DateOptionsJSON
	assert.Error(t, scanned.Scan(42))
}
