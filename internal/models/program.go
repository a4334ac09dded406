package models

// Workout is an ordered group of exercises done together.
type Workout struct {
	Name      string   `json:"name" toml:"name" yaml:"name"`
	Exercises []string `json:"exercises" toml:"exercises" yaml:"exercises"`
	Optional  []string `json:"optional,omitempty" toml:"optional,omitempty" yaml:"optional,omitempty"`
}

// Has reports whether the workout includes the named exercise.
func (w Workout) Has(exercise string) bool {
	for _, name := range w.Exercises {
		if name == exercise {
			return true
		}
	}
	for _, name := range w.Optional {
		if name == exercise {
			return true
		}
	}
	return false
}

//
// For catalog parsing only (TOML or YAML)
//

type Catalog struct {
	Name        string        `toml:"name" yaml:"name"`
	Description string        `toml:"description" yaml:"description"`
	Exercises   []ExerciseDef `toml:"exercise" yaml:"exercises"`
	Workouts    []Workout     `toml:"workout" yaml:"workouts"`
}

// SessionState remembers which workout and exercise the CLI is on between
// invocations.
type SessionState struct {
	Program  string `toml:"program"`
	Workout  string `toml:"workout"`
	Exercise string `toml:"exercise"`
}
