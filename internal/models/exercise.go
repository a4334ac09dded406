package models

import (
	"encoding/json"
	"time"

	"github.com/misterclayt0n/overload/internal/apparatus"
)

// Setting is the persistent per-exercise record a plan reads and progresses.
type Setting struct {
	Apparatus     apparatus.Apparatus `json:"-"`
	Weight        float64             `json:"weight"`
	RequestedReps int                 `json:"requested_reps,omitempty"`
	LastChanged   time.Time           `json:"last_changed"`
	Stalls        int                 `json:"stalls"`
	RestSeconds   int                 `json:"rest_seconds"`
	Seconds       int                 `json:"seconds,omitempty"`   // Timed sets and steady-state cardio.
	Intervals     *Intervals          `json:"intervals,omitempty"` // HIIT only.
}

// Intervals are the durations, in seconds, of a HIIT session.
type Intervals struct {
	Warmup   int `json:"warmup" toml:"warmup" yaml:"warmup"`
	High     int `json:"high" toml:"high" yaml:"high"`
	Low      int `json:"low" toml:"low" yaml:"low"`
	Cooldown int `json:"cooldown" toml:"cooldown" yaml:"cooldown"`
	Cycles   int `json:"cycles" toml:"cycles" yaml:"cycles"`
}

// ChangeWeight sets a new working weight and restarts the deload clock.
func (s *Setting) ChangeWeight(weight float64, now time.Time) {
	s.Weight = weight
	s.LastChanged = now
}

// Touch records that the working weight was confirmed without changing it.
func (s *Setting) Touch(now time.Time) {
	s.LastChanged = now
}

// Units returns the display unit of the setting's apparatus.
func (s *Setting) Units() apparatus.Unit {
	if s.Apparatus == nil {
		return ""
	}
	return s.Apparatus.Units()
}

type settingJSON Setting

func (s Setting) MarshalJSON() ([]byte, error) {
	app, err := apparatus.Encode(s.Apparatus)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Apparatus json.RawMessage `json:"apparatus"`
		settingJSON
	}{app, settingJSON(s)})
}

func (s *Setting) UnmarshalJSON(data []byte) error {
	var raw struct {
		Apparatus json.RawMessage `json:"apparatus"`
		settingJSON
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	app, err := apparatus.Decode(raw.Apparatus)
	if err != nil {
		return err
	}
	*s = Setting(raw.settingJSON)
	s.Apparatus = app
	return nil
}

//
// For catalog parsing only (TOML or YAML)
//

type ExerciseDef struct {
	Name        string         `toml:"name" yaml:"name"`
	Formal      string         `toml:"formal,omitempty" yaml:"formal,omitempty"`
	Description string         `toml:"description,omitempty" yaml:"description,omitempty"`
	Apparatus   *apparatus.Def `toml:"apparatus,omitempty" yaml:"apparatus,omitempty"`
	Plan        PlanDef        `toml:"plan" yaml:"plan"`
	Weight      float64        `toml:"weight,omitempty" yaml:"weight,omitempty"`
	Reps        int            `toml:"reps,omitempty" yaml:"reps,omitempty"`
	Rest        int            `toml:"rest,omitempty" yaml:"rest,omitempty"`
	Seconds     int            `toml:"seconds,omitempty" yaml:"seconds,omitempty"`
	Intervals   *Intervals     `toml:"intervals,omitempty" yaml:"intervals,omitempty"`
}

// Setting builds the initial setting an exercise starts with.
func (d ExerciseDef) Setting(now time.Time) (Setting, error) {
	s := Setting{
		Weight:        d.Weight,
		RequestedReps: d.Reps,
		LastChanged:   now,
		RestSeconds:   d.Rest,
		Seconds:       d.Seconds,
		Intervals:     d.Intervals,
	}
	if d.Apparatus != nil {
		app, err := d.Apparatus.Build()
		if err != nil {
			return Setting{}, err
		}
		s.Apparatus = app
	}
	return s, nil
}
