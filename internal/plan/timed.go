package plan

import (
	"fmt"

	"github.com/misterclayt0n/overload/internal/errors"
	"github.com/misterclayt0n/overload/internal/models"
)

// timed holds sets for a duration, such as planks. Advancing lengthens them
// by StepSeconds up to MaxSeconds.
type timed struct {
	Sets        int `json:"sets"`
	StepSeconds int `json:"step_seconds"`
	MaxSeconds  int `json:"max_seconds,omitempty"`
}

func (t *timed) kind() Kind { return KindTimed }

func (t *timed) validate() error {
	if t.Sets <= 0 {
		return fmt.Errorf("sets must be positive, got %d", t.Sets)
	}
	return validateDurations(t.StepSeconds, t.MaxSeconds)
}

func (t *timed) build(s *session) ([]models.SetSpec, error) {
	secs, err := duration(s)
	if err != nil {
		return nil, err
	}
	work := s.fixed()
	sets := make([]models.SetSpec, t.Sets)
	for i := range sets {
		sets[i] = models.SetSpec{
			Title:   fmt.Sprintf("Set %d of %d", i+1, t.Sets),
			Seconds: secs,
			Weight:  work,
			Rest:    s.setting.RestSeconds,
		}
	}
	return sets, nil
}

func (t *timed) options(*Plan) []Action {
	return []Action{actAdvance, actHold}
}

func (t *timed) finish(s *session, a Action) (*models.Result, error) {
	return lengthen(s, a, t.StepSeconds, t.MaxSeconds), nil
}

// steady is a single block of steady-state cardio.
type steady struct {
	StepSeconds int `json:"step_seconds"`
	MaxSeconds  int `json:"max_seconds,omitempty"`
}

func (c *steady) kind() Kind { return KindSteady }

func (c *steady) validate() error {
	return validateDurations(c.StepSeconds, c.MaxSeconds)
}

func (c *steady) build(s *session) ([]models.SetSpec, error) {
	secs, err := duration(s)
	if err != nil {
		return nil, err
	}
	return []models.SetSpec{{Title: "Steady state", Seconds: secs, Weight: s.fixed()}}, nil
}

func (c *steady) options(*Plan) []Action {
	return []Action{actAdvance, actHold}
}

func (c *steady) finish(s *session, a Action) (*models.Result, error) {
	return lengthen(s, a, c.StepSeconds, c.MaxSeconds), nil
}

func validateDurations(step, limit int) error {
	if step < 0 || limit < 0 {
		return fmt.Errorf("durations can't be negative (step %d, max %d)", step, limit)
	}
	return nil
}

func duration(s *session) (int, error) {
	if s.setting.Seconds <= 0 {
		return 0, errors.Misconfigured("%s has no duration set", s.plan.Exercise)
	}
	return s.setting.Seconds, nil
}

// lengthen records a timed session and, on advance, adds step seconds to the
// setting without going past limit (0 means no limit).
func lengthen(s *session, a Action, step, limit int) *models.Result {
	st := s.setting
	done := st.Seconds
	if a.ID == ActAdvance {
		next := st.Seconds + step
		if limit > 0 && next > limit {
			next = max(limit, st.Seconds)
		}
		st.Seconds = next
	}
	st.Touch(s.now)
	work, _ := lastWork(s.plan.Sets)
	return &models.Result{Seconds: done, Weight: work.Weight.Weight, Primary: true}
}
