package models

import (
	"time"

	"github.com/misterclayt0n/overload/internal/apparatus"
)

// SetSpec is one prescribed set.
type SetSpec struct {
	Title    string               `json:"title"`
	Subtitle string               `json:"subtitle"`
	Reps     int                  `json:"reps"`
	Weight   apparatus.WeightInfo `json:"weight"`
	Warmup   bool                 `json:"warmup"`
	Amrap    bool                 `json:"amrap"`
	Seconds  int                  `json:"seconds,omitempty"` // Duration for timed sets.
	Rest     int                  `json:"rest"`              // Seconds to rest after the set.
}

// Result is one completed plan run. Results are appended to an exercise's
// history and never edited.
type Result struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Date    time.Time `json:"date"`
	Weight  float64   `json:"weight"`
	Missed  bool      `json:"missed"`
	Primary bool      `json:"primary"` // Counts toward the headline progress trend.
	Plan    string    `json:"plan"`
	Cycle   *int      `json:"cycle,omitempty"`
	Reps    int       `json:"reps,omitempty"`
	Seconds int       `json:"seconds,omitempty"`
	Note    string    `json:"note,omitempty"`
}
