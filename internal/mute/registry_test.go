package mute

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

func newRegistryAt(now time.Time) *Registry {
	registry := NewRegistry(time.UTC)
	registry.now = func() time.Time { return now }
	return registry
}

func TestMute_CoversRequestedDays(t *testing.T) {
	registry := newRegistryAt(day.Add(15 * time.Hour))

	expiresOn, err := registry.Mute("u1", 3)
	require.NoError(t, err)
	assert.Equal(t, day.AddDate(0, 0, 2), expiresOn)

	assert.True(t, registry.IsMuted("u1", day))
	assert.True(t, registry.IsMuted("u1", day.AddDate(0, 0, 1)))
	assert.True(t, registry.IsMuted("u1", day.AddDate(0, 0, 2)))
	assert.False(t, registry.IsMuted("u1", day.AddDate(0, 0, 3)))
	assert.False(t, registry.IsMuted("u2", day))
}

func TestMute_RejectsNonPositiveDays(t *testing.T) {
	registry := newRegistryAt(day)

	_, err := registry.Mute("u1", 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = registry.Mute("u1", -2)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	assert.False(t, registry.IsMuted("u1", day))
}

func TestMute_OverwritesInsteadOfStacking(t *testing.T) {
	registry := newRegistryAt(day)

	_, err := registry.Mute("u1", 10)
	require.NoError(t, err)
	expiresOn, err := registry.Mute("u1", 2)
	require.NoError(t, err)

	assert.Equal(t, day.AddDate(0, 0, 1), expiresOn)
	assert.False(t, registry.IsMuted("u1", day.AddDate(0, 0, 2)))
}

func TestUnmute(t *testing.T) {
	registry := newRegistryAt(day)
	_, err := registry.Mute("u1", 5)
	require.NoError(t, err)

	assert.True(t, registry.Unmute("u1"))
	assert.False(t, registry.Unmute("u1"))
	assert.False(t, registry.IsMuted("u1", day))
}

func TestStatus(t *testing.T) {
	registry := newRegistryAt(day)
	_, err := registry.Mute("u1", 3)
	require.NoError(t, err)

	status := registry.Status("u1", day)
	assert.True(t, status.Muted)
	assert.Equal(t, day.AddDate(0, 0, 2), status.ExpiresOn)
	assert.Equal(t, 3, status.DaysLeft)

	assert.Equal(t, 1, registry.Status("u1", day.AddDate(0, 0, 2)).DaysLeft)
	assert.Equal(t, Status{}, registry.Status("u2", day))
}

func TestStatus_DropsExpiredEntry(t *testing.T) {
	registry := newRegistryAt(day)
	_, err := registry.Mute("u1", 1)
	require.NoError(t, err)

	assert.Equal(t, Status{}, registry.Status("u1", day.AddDate(0, 0, 1)))
	assert.False(t, registry.Unmute("u1"))
}

func TestCleanupExpired(t *testing.T) {
	registry := newRegistryAt(day)
	for userID, days := range map[string]int{"short": 1, "edge": 2, "long": 5} {
		_, err := registry.Mute(userID, days)
		require.NoError(t, err)
	}

	cleanupDay := day.AddDate(0, 0, 1)

	assert.Equal(t, 1, registry.CleanupExpired(cleanupDay))
	assert.Equal(t, 0, registry.CleanupExpired(cleanupDay))

	assert.False(t, registry.Unmute("short"))
	assert.True(t, registry.IsMuted("edge", cleanupDay))
	assert.True(t, registry.IsMuted("long", cleanupDay))

	assert.Equal(t, 1, registry.CleanupExpired(day.AddDate(0, 0, 2)))
	assert.True(t, registry.IsMuted("long", day.AddDate(0, 0, 2)))
}

func TestToday_UsesRegistryLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	registry := NewRegistry(tokyo)
	registry.now = func() time.Time { return time.Date(2024, time.March, 4, 20, 0, 0, 0, time.UTC) }

	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, tokyo), registry.Today())
}
