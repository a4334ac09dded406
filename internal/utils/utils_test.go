package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/overload/internal/models"
)

func TestCalculateEpley1RM(t *testing.T) {
	assert.Equal(t, 200.0, CalculateEpley1RM(200, 1))
	assert.InDelta(t, 175.0, CalculateEpley1RM(150, 5), 0.001)
	assert.Zero(t, CalculateEpley1RM(150, 0))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 3, 1, 6, 0, 0, 0, time.Local)
	assert.True(t, SameDay(a, a.Add(12*time.Hour)))
	assert.False(t, SameDay(a, a.Add(24*time.Hour)))
}

func TestSessionState(t *testing.T) {
	dir := t.TempDir()
	orig := SessionDir
	SessionDir = func() (string, error) { return dir, nil }
	defer func() { SessionDir = orig }()

	assert.False(t, SessionExists())
	require.NoError(t, ClearSessionState())

	want := &models.SessionState{Program: "Starter", Workout: "A", Exercise: "Squat"}
	require.NoError(t, SaveSessionState(want))
	assert.True(t, SessionExists())

	got, err := LoadSessionState()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, ClearSessionState())
	assert.False(t, SessionExists())
}
