package deload_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/misterclayt0n/overload/internal/deload"
)

var now = time.Date(2026, time.March, 14, 18, 30, 0, 0, time.UTC)

func TestCompute_ClampsToLastEntry(t *testing.T) {
	table := []float64{1.0, 1.0, 0.95, 0.9, 0.9, 0.85}

	d := deload.Compute(200, now.AddDate(0, 0, -56), now, table)

	assert.InDelta(t, 170.0, d.Weight, 1e-9)
	assert.Equal(t, 15, d.Percent)
	assert.Equal(t, 8, d.Weeks)
	assert.True(t, d.Active())
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		days    int
		weight  float64
		percent int
		weeks   int
	}{
		{"same day", 0, 200, 0, 0},
		{"six days", 6, 200, 0, 0},
		{"one week", 7, 200, 0, 1},
		{"two weeks", 15, 190, 5, 2},
		{"three weeks", 21, 180, 10, 3},
		{"long gap", 400, 170, 15, 57},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := deload.Compute(200, now.AddDate(0, 0, -tt.days), now, deload.DefaultTable)
			assert.InDelta(t, tt.weight, d.Weight, 1e-9)
			assert.Equal(t, tt.percent, d.Percent)
			assert.Equal(t, tt.weeks, d.Weeks)
			assert.Equal(t, tt.percent > 0, d.Active())
		})
	}
}

func TestCompute_NoClockOrTable(t *testing.T) {
	d := deload.Compute(135, time.Time{}, now, deload.DefaultTable)
	assert.False(t, d.Active())
	assert.Equal(t, 135.0, d.Weight)

	d = deload.Compute(135, now.AddDate(0, -6, 0), now, nil)
	assert.False(t, d.Active())
	assert.Equal(t, 135.0, d.Weight)
}

func TestWeeks_CountsCalendarDays(t *testing.T) {
	late := time.Date(2026, time.March, 7, 23, 59, 0, 0, time.UTC)
	early := time.Date(2026, time.March, 14, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, deload.Weeks(late, early))
	assert.Equal(t, 0, deload.Weeks(early, late))
}
