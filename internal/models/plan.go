package models

//
// For catalog parsing only (TOML or YAML)
//

// PlanDef declares which progression an exercise follows. Only the fields the
// kind uses are read.
type PlanDef struct {
	Kind string `toml:"kind" yaml:"kind"`
	Name string `toml:"name,omitempty" yaml:"name,omitempty"`

	Sets    int        `toml:"sets,omitempty" yaml:"sets,omitempty"`
	Reps    int        `toml:"reps,omitempty" yaml:"reps,omitempty"`
	Warmup  *WarmupDef `toml:"warmup,omitempty" yaml:"warmup,omitempty"`
	Cycles  []CycleDef `toml:"cycle,omitempty" yaml:"cycles,omitempty"`
	Percent float64    `toml:"percent,omitempty" yaml:"percent,omitempty"`
	Base    string     `toml:"base,omitempty" yaml:"base,omitempty"`

	MinReps    int `toml:"min_reps,omitempty" yaml:"min_reps,omitempty"`
	MaxReps    int `toml:"max_reps,omitempty" yaml:"max_reps,omitempty"`
	TargetReps int `toml:"target_reps,omitempty" yaml:"target_reps,omitempty"`

	StepSeconds int `toml:"step_seconds,omitempty" yaml:"step_seconds,omitempty"`
	MaxSeconds  int `toml:"max_seconds,omitempty" yaml:"max_seconds,omitempty"`
	MaxCycles   int `toml:"max_cycles,omitempty" yaml:"max_cycles,omitempty"`

	DeloadTable []float64 `toml:"deload_table,omitempty" yaml:"deload_table,omitempty"`
}

// WarmupDef is either an explicit list of steps or an interpolated ramp.
type WarmupDef struct {
	Steps   []StepDef `toml:"step,omitempty" yaml:"steps,omitempty"`
	First   float64   `toml:"first,omitempty" yaml:"first,omitempty"`
	Last    float64   `toml:"last,omitempty" yaml:"last,omitempty"`
	Reps    []int     `toml:"reps,omitempty" yaml:"reps,omitempty"`
	BarOnly *int      `toml:"bar_only,omitempty" yaml:"bar_only,omitempty"`
}

type StepDef struct {
	Reps    int     `toml:"reps" yaml:"reps"`
	Percent float64 `toml:"percent" yaml:"percent"`
}

type CycleDef struct {
	Warmup  *WarmupDef `toml:"warmup,omitempty" yaml:"warmup,omitempty"`
	Reps    []int      `toml:"reps" yaml:"reps"`
	Percent float64    `toml:"percent,omitempty" yaml:"percent,omitempty"`
}
