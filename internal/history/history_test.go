package history_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/overload/internal/history"
	"github.com/misterclayt0n/overload/internal/models"
)

func cycle(i int) *int { return &i }

func sample() *history.Ledger {
	day := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	return history.New(
		models.Result{ID: "a", Title: "5x5 @ 135", Date: day, Weight: 135, Primary: true},
		models.Result{ID: "b", Title: "3x5 @ 140", Date: day.AddDate(0, 0, 2), Weight: 140, Cycle: cycle(0), Primary: true},
		models.Result{ID: "c", Title: "3x3 @ 150", Date: day.AddDate(0, 0, 4), Weight: 150, Cycle: cycle(1)},
		models.Result{ID: "d", Title: "note", Date: day.AddDate(0, 0, 6), Weight: 150},
	)
}

func ids(rs []models.Result) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func TestLedger_Last(t *testing.T) {
	l := history.New()
	_, ok := l.Last()
	assert.False(t, ok)

	l = sample()
	last, ok := l.Last()
	require.True(t, ok)
	assert.Equal(t, "d", last.ID)

	primary, ok := l.LastPrimary()
	require.True(t, ok)
	assert.Equal(t, "b", primary.ID)
}

func TestLedger_Matching(t *testing.T) {
	l := sample()
	heavy := l.Matching(func(r models.Result) bool { return r.Weight >= 140 })
	assert.Equal(t, []string{"b", "c", "d"}, ids(heavy))
	assert.Empty(t, l.Matching(func(r models.Result) bool { return r.Missed }))
}

func TestLedger_RemoveAtKeepsOrder(t *testing.T) {
	l := sample()
	before := l.All()

	removed, err := l.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, "b", removed.ID)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"a", "c", "d"}, ids(l.All()))

	// The copy handed out earlier is unaffected.
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(before))

	_, err = l.RemoveAt(3)
	assert.Error(t, err)
	_, err = l.RemoveAt(-1)
	assert.Error(t, err)
	assert.Equal(t, 3, l.Len())
}

func TestLedger_NextCycle(t *testing.T) {
	assert.Equal(t, 0, history.New().NextCycle(3))

	l := sample()
	assert.Equal(t, 2, l.NextCycle(3))
	assert.Equal(t, 0, l.NextCycle(2))

	l.Append(models.Result{ID: "e", Cycle: cycle(2)})
	assert.Equal(t, 0, l.NextCycle(3))
}

func TestLedger_JSON(t *testing.T) {
	data, err := json.Marshal(history.New())
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))

	l := sample()
	data, err = json.Marshal(l)
	require.NoError(t, err)

	var back history.Ledger
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, l.All(), back.All())
}
