package plan

import (
	"encoding/json"
	"fmt"

	"github.com/misterclayt0n/overload/internal/errors"
	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/warmup"
)

// FromDef builds a waiting plan from its catalog definition.
func FromDef(def models.PlanDef) (*Plan, error) {
	var v variant
	switch Kind(def.Kind) {
	case KindLinear:
		v = &linear{Sets: def.Sets, Reps: def.Reps, Warmup: warmupSpec(def.Warmup), Deloads: def.DeloadTable}
	case KindCycle:
		c := &cycle{Deloads: def.DeloadTable}
		for _, cd := range def.Cycles {
			c.Steps = append(c.Steps, cycleStep{Warmup: warmupSpec(cd.Warmup), Reps: cd.Reps, Percent: cd.Percent})
		}
		v = c
	case KindAmrap:
		v = &amrap{Sets: def.Sets, Reps: def.Reps, Warmup: warmupSpec(def.Warmup), Deloads: def.DeloadTable}
	case KindPercent:
		v = &percent{Base: def.Base, Percent: def.Percent, Sets: def.Sets, Reps: def.Reps, Warmup: warmupSpec(def.Warmup)}
	case KindVReps:
		v = &vreps{Sets: def.Sets, MinReps: def.MinReps, MaxReps: def.MaxReps, Warmup: warmupSpec(def.Warmup)}
	case KindVSets:
		v = &vsets{TargetReps: def.TargetReps}
	case KindTimed:
		v = &timed{Sets: def.Sets, StepSeconds: def.StepSeconds, MaxSeconds: def.MaxSeconds}
	case KindHIIT:
		v = &hiit{MaxCycles: def.MaxCycles, StepSeconds: def.StepSeconds}
	case KindSteady:
		v = &steady{StepSeconds: def.StepSeconds, MaxSeconds: def.MaxSeconds}
	case KindRepMax:
		v = &repMax{Reps: def.Reps}
	default:
		return nil, errors.Misconfigured("unknown plan kind %q", def.Kind)
	}

	name := def.Name
	if name == "" {
		name = defaultName(def)
	}
	if err := v.validate(); err != nil {
		return nil, errors.Misconfigured("plan %s: %v", name, err)
	}
	return newPlan(name, v), nil
}

func defaultName(def models.PlanDef) string {
	switch Kind(def.Kind) {
	case KindLinear, KindPercent:
		return fmt.Sprintf("%dx%d", def.Sets, def.Reps)
	case KindAmrap:
		return fmt.Sprintf("%dx%d+", def.Sets, def.Reps)
	case KindCycle:
		return fmt.Sprintf("%d cycle", len(def.Cycles))
	case KindVReps:
		return fmt.Sprintf("%dx%d-%d", def.Sets, def.MinReps, def.MaxReps)
	case KindVSets:
		return fmt.Sprintf("%d total reps", def.TargetReps)
	}
	return def.Kind
}

func warmupSpec(def *models.WarmupDef) warmup.Spec {
	if def == nil {
		return warmup.Spec{}
	}
	spec := warmup.Spec{First: def.First, Last: def.Last, Reps: def.Reps, BarOnly: def.BarOnly}
	for _, st := range def.Steps {
		spec.Steps = append(spec.Steps, warmup.Step{Reps: st.Reps, Percent: st.Percent})
	}
	return spec
}

func newVariant(k Kind) (variant, error) {
	switch k {
	case KindLinear:
		return &linear{}, nil
	case KindCycle:
		return &cycle{}, nil
	case KindAmrap:
		return &amrap{}, nil
	case KindPercent:
		return &percent{}, nil
	case KindVReps:
		return &vreps{}, nil
	case KindVSets:
		return &vsets{}, nil
	case KindTimed:
		return &timed{}, nil
	case KindHIIT:
		return &hiit{}, nil
	case KindSteady:
		return &steady{}, nil
	case KindRepMax:
		return &repMax{}, nil
	}
	return nil, fmt.Errorf("unknown plan kind %q", k)
}

type planFields Plan

// MarshalJSON stores the kind specific parameters under "params" next to
// the session state, so a stored plan resumes exactly where it was left.
func (p Plan) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		planFields
		Params variant `json:"params"`
	}{planFields(p), p.v})
}

func (p *Plan) UnmarshalJSON(data []byte) error {
	var raw struct {
		planFields
		Params json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := newVariant(raw.Kind)
	if err != nil {
		return err
	}
	if len(raw.Params) > 0 {
		if err := json.Unmarshal(raw.Params, v); err != nil {
			return fmt.Errorf("decoding %s plan: %w", raw.Kind, err)
		}
	}
	*p = Plan(raw.planFields)
	p.v = v
	return nil
}
