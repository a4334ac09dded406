package plan

import (
	"fmt"

	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/warmup"
)

type cycleStep struct {
	Warmup  warmup.Spec `json:"warmup"`
	Reps    []int       `json:"reps"`
	Percent float64     `json:"percent,omitempty"` // Of the working weight, 1 when unset.
}

// cycle rotates through a fixed list of rep schemes, one per session. The
// working weight goes up after the last step of a run, and only when the
// run's first step wasn't missed.
type cycle struct {
	Steps   []cycleStep `json:"steps"`
	Deloads []float64   `json:"deloads,omitempty"`
}

func (c *cycle) kind() Kind { return KindCycle }

func (c *cycle) repTarget() int {
	if len(c.Steps) > 0 && len(c.Steps[0].Reps) > 0 {
		return c.Steps[0].Reps[0]
	}
	return 0
}

func (c *cycle) validate() error {
	if len(c.Steps) == 0 {
		return fmt.Errorf("at least one cycle is required")
	}
	for i, st := range c.Steps {
		if len(st.Reps) == 0 {
			return fmt.Errorf("cycle %d has no sets", i+1)
		}
		for _, r := range st.Reps {
			if r <= 0 {
				return fmt.Errorf("cycle %d has a non-positive rep count (%d)", i+1, r)
			}
		}
		if st.Percent < 0 || st.Percent > 2 {
			return fmt.Errorf("cycle %d percent out of range (%v)", i+1, st.Percent)
		}
		if err := st.Warmup.Validate(); err != nil {
			return fmt.Errorf("cycle %d: %w", i+1, err)
		}
	}
	return validateTable(c.Deloads)
}

func (c *cycle) build(s *session) ([]models.SetSpec, error) {
	a, err := s.baseline()
	if err != nil {
		return nil, err
	}
	s.plan.Cycle = s.ledger.NextCycle(len(c.Steps))
	step := c.Steps[s.plan.Cycle]

	pct := step.Percent
	if pct == 0 {
		pct = 1
	}
	work := s.resolve(s.deloaded(c.Deloads) * pct)

	sets := warmup.Build(a, work.Weight, step.Warmup)
	ws := worksets(step.Reps, work, s.setting.RestSeconds)
	for i := range ws {
		ws[i].Subtitle = fmt.Sprintf("cycle %d of %d", s.plan.Cycle+1, len(c.Steps))
	}
	return append(sets, ws...), nil
}

func (c *cycle) options(*Plan) []Action {
	return []Action{actFinished, actMissed}
}

func (c *cycle) finish(s *session, a Action) (*models.Result, error) {
	idx := s.plan.Cycle
	missed := a.ID == ActMissed
	work, _ := lastWork(s.plan.Sets)
	st := s.setting

	if idx == len(c.Steps)-1 {
		firstMissed := missed
		if idx > 0 {
			first, ok := s.ledger.LastMatching(func(r models.Result) bool {
				return r.Cycle != nil && *r.Cycle == 0
			})
			firstMissed = !ok || first.Missed
		}
		if !firstMissed {
			st.ChangeWeight(s.next(st.Weight), s.now)
		} else {
			st.Touch(s.now)
		}
	} else {
		st.Touch(s.now)
	}

	return &models.Result{
		Weight:  work.Weight.Weight,
		Missed:  missed,
		Primary: idx == 0,
		Cycle:   &idx,
		Reps:    work.Reps,
	}, nil
}
