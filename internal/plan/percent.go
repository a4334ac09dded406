package plan

import (
	"fmt"

	"github.com/misterclayt0n/overload/internal/apparatus"
	"github.com/misterclayt0n/overload/internal/errors"
	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/warmup"
)

// percent works off another exercise of the same workout, typically a
// lighter variation of a main lift. It never progresses on its own.
type percent struct {
	Base    string      `json:"base"`
	Percent float64     `json:"percent"`
	Sets    int         `json:"sets"`
	Reps    int         `json:"reps"`
	Warmup  warmup.Spec `json:"warmup"`
}

func (c *percent) kind() Kind { return KindPercent }

func (c *percent) validate() error {
	if c.Base == "" {
		return fmt.Errorf("a base exercise is required")
	}
	if c.Percent <= 0 || c.Percent > 2 {
		return fmt.Errorf("percent out of range (%v)", c.Percent)
	}
	if c.Sets <= 0 || c.Reps <= 0 {
		return fmt.Errorf("sets and reps must be positive, got %dx%d", c.Sets, c.Reps)
	}
	return c.Warmup.Validate()
}

func (c *percent) build(s *session) ([]models.SetSpec, error) {
	if c.Base == s.plan.Exercise {
		return nil, errors.Misconfigured("%s can't be a percentage of itself", c.Base)
	}
	workout, err := s.env.FindWorkout(s.plan.Workout)
	if err != nil {
		return nil, err
	}
	if !workout.Has(c.Base) {
		return nil, errors.Misconfigured("%s isn't part of %s", c.Base, workout.Name)
	}

	base, err := c.baseWeight(s)
	if err != nil {
		return nil, err
	}
	a := s.setting.Apparatus
	if a == nil {
		bs, err := s.env.FindSetting(c.Base)
		if err != nil {
			return nil, err
		}
		a = bs.Apparatus
	}
	if a == nil {
		return nil, errors.Misconfigured("%s has no apparatus configured", s.plan.Exercise)
	}

	work := apparatus.Closest(a, base*c.Percent)
	sets := warmup.Build(a, work.Weight, c.Warmup)
	ws := worksets(repeat(c.Reps, c.Sets), work, s.setting.RestSeconds)
	for i := range ws {
		ws[i].Subtitle = fmt.Sprintf("%.0f%% of %s", c.Percent*100, c.Base)
	}
	return append(sets, ws...), nil
}

// baseWeight is the weight the base exercise used today, or will use next
// when it hasn't been started.
func (c *percent) baseWeight(s *session) (float64, error) {
	bp, err := s.env.FindPlan(c.Base)
	if err != nil {
		return 0, err
	}
	if bp != nil && (bp.Active() || bp.State == StateFinished) {
		if w, ok := lastWork(bp.Sets); ok && w.Weight.Weight > 0 {
			return w.Weight.Weight, nil
		}
	}
	bs, err := s.env.FindSetting(c.Base)
	if err != nil {
		return 0, err
	}
	if bs.Weight <= 0 {
		return 0, errors.Misconfigured("%s has no working weight yet", c.Base)
	}
	return bs.Weight, nil
}

func (c *percent) options(*Plan) []Action {
	return []Action{actFinished, actMissed}
}

func (c *percent) finish(s *session, a Action) (*models.Result, error) {
	work, _ := lastWork(s.plan.Sets)
	s.setting.Touch(s.now)
	return &models.Result{Weight: work.Weight.Weight, Missed: a.ID == ActMissed, Primary: true, Reps: c.Reps}, nil
}
