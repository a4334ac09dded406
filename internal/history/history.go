// Package history holds the append-only record of finished plan runs for one
// exercise.
package history

import (
	"encoding/json"
	"fmt"

	"github.com/misterclayt0n/overload/internal/models"
)

// Ledger is ordered oldest first. Results are only ever appended, except for
// RemoveAt which exists so a user can correct a mistaken entry.
type Ledger struct {
	results []models.Result
}

// New returns a ledger holding results in the given order.
func New(results ...models.Result) *Ledger {
	return &Ledger{results: append([]models.Result(nil), results...)}
}

func (l *Ledger) Append(r models.Result) {
	l.results = append(l.results, r)
}

func (l *Ledger) Len() int {
	return len(l.results)
}

// All returns a copy of every result, oldest first.
func (l *Ledger) All() []models.Result {
	return append([]models.Result(nil), l.results...)
}

// Last returns the most recent result.
func (l *Ledger) Last() (models.Result, bool) {
	if len(l.results) == 0 {
		return models.Result{}, false
	}
	return l.results[len(l.results)-1], true
}

// LastPrimary returns the most recent result that counts toward the headline
// trend.
func (l *Ledger) LastPrimary() (models.Result, bool) {
	for i := len(l.results) - 1; i >= 0; i-- {
		if l.results[i].Primary {
			return l.results[i], true
		}
	}
	return models.Result{}, false
}

// Matching returns the results keep accepts, oldest first.
func (l *Ledger) Matching(keep func(models.Result) bool) []models.Result {
	var out []models.Result
	for _, r := range l.results {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// LastMatching returns the most recent result keep accepts.
func (l *Ledger) LastMatching(keep func(models.Result) bool) (models.Result, bool) {
	for i := len(l.results) - 1; i >= 0; i-- {
		if keep(l.results[i]) {
			return l.results[i], true
		}
	}
	return models.Result{}, false
}

// RemoveAt deletes the result at index i, keeping the order of the rest.
func (l *Ledger) RemoveAt(i int) (models.Result, error) {
	if i < 0 || i >= len(l.results) {
		return models.Result{}, fmt.Errorf("history index %d out of range [0, %d)", i, len(l.results))
	}
	removed := l.results[i]
	l.results = append(l.results[:i:i], l.results[i+1:]...)
	return removed, nil
}

// NextCycle returns the cycle following the latest result that recorded one,
// wrapping at count. An empty ledger starts at cycle 0.
func (l *Ledger) NextCycle(count int) int {
	if count <= 0 {
		return 0
	}
	last, ok := l.LastMatching(func(r models.Result) bool { return r.Cycle != nil })
	if !ok {
		return 0
	}
	return (*last.Cycle + 1) % count
}

func (l *Ledger) MarshalJSON() ([]byte, error) {
	if l.results == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.results)
}

func (l *Ledger) UnmarshalJSON(data []byte) error {
	var results []models.Result
	if err := json.Unmarshal(data, &results); err != nil {
		return err
	}
	l.results = results
	return nil
}
