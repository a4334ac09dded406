// Package deload computes the time-based reduction applied to a working
// weight that hasn't changed in a while.
package deload

import (
	"math"
	"time"
)

// DefaultTable is used when an exercise doesn't declare its own factors.
// Index i is the factor after i whole weeks without a weight change.
var DefaultTable = []float64{1.0, 1.0, 0.95, 0.90, 0.85}

// Deload is the adjusted weight for a session. Percent is zero when no
// reduction applies.
type Deload struct {
	Weight  float64
	Factor  float64
	Percent int
	Weeks   int
}

// Active reports whether the weight was reduced.
func (d Deload) Active() bool {
	return d.Factor < 1
}

// Compute applies the factor for the weeks elapsed between lastChanged and
// now. Gaps longer than the table use its last entry. A zero lastChanged or
// an empty table leaves the weight untouched.
func Compute(weight float64, lastChanged, now time.Time, table []float64) Deload {
	d := Deload{Weight: weight, Factor: 1}
	if lastChanged.IsZero() || len(table) == 0 {
		return d
	}

	d.Weeks = Weeks(lastChanged, now)
	i := d.Weeks
	if i >= len(table) {
		i = len(table) - 1
	}

	factor := table[i]
	if factor >= 1 || factor <= 0 {
		return d
	}
	d.Factor = factor
	d.Weight = weight * factor
	d.Percent = int(math.Round(100 * (1 - factor)))
	return d
}

// Weeks returns the whole weeks between two dates, counted in calendar days.
func Weeks(from, to time.Time) int {
	days := calendarDays(from, to)
	if days < 0 {
		return 0
	}
	return days / 7
}

func calendarDays(from, to time.Time) int {
	to = to.In(from.Location())
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
