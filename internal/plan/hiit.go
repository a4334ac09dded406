package plan

import (
	"fmt"

	"github.com/misterclayt0n/overload/internal/errors"
	"github.com/misterclayt0n/overload/internal/models"
)

// hiit alternates high and low intensity intervals between a warmup and a
// cooldown. Advancing adds a cycle until MaxCycles, then lengthens the high
// interval by StepSeconds.
type hiit struct {
	MaxCycles   int `json:"max_cycles"`
	StepSeconds int `json:"step_seconds"`
}

func (h *hiit) kind() Kind { return KindHIIT }

func (h *hiit) validate() error {
	if h.MaxCycles < 0 || h.StepSeconds < 0 {
		return fmt.Errorf("max cycles and step can't be negative (%d, %d)", h.MaxCycles, h.StepSeconds)
	}
	return nil
}

func (h *hiit) build(s *session) ([]models.SetSpec, error) {
	iv := s.setting.Intervals
	if iv == nil || iv.Cycles <= 0 || iv.High <= 0 {
		return nil, errors.Misconfigured("%s has no intervals set", s.plan.Exercise)
	}

	var sets []models.SetSpec
	if iv.Warmup > 0 {
		sets = append(sets, models.SetSpec{Title: "Warmup", Seconds: iv.Warmup, Warmup: true})
	}
	for i := 1; i <= iv.Cycles; i++ {
		sets = append(sets, models.SetSpec{
			Title:    fmt.Sprintf("High %d of %d", i, iv.Cycles),
			Subtitle: "all out",
			Seconds:  iv.High,
		})
		if iv.Low > 0 {
			sets = append(sets, models.SetSpec{
				Title:    fmt.Sprintf("Low %d of %d", i, iv.Cycles),
				Subtitle: "recover",
				Seconds:  iv.Low,
			})
		}
	}
	if iv.Cooldown > 0 {
		sets = append(sets, models.SetSpec{Title: "Cooldown", Seconds: iv.Cooldown})
	}
	return sets, nil
}

func (h *hiit) options(*Plan) []Action {
	return []Action{actAdvance, actHold}
}

func (h *hiit) finish(s *session, a Action) (*models.Result, error) {
	iv := s.setting.Intervals
	res := &models.Result{
		Title:   fmt.Sprintf("%d x %ds/%ds", iv.Cycles, iv.High, iv.Low),
		Seconds: iv.Cycles * (iv.High + iv.Low),
		Reps:    iv.Cycles,
		Primary: true,
	}

	if a.ID == ActAdvance {
		next := *iv
		if h.MaxCycles == 0 || next.Cycles < h.MaxCycles {
			next.Cycles++
		} else {
			next.High += h.StepSeconds
		}
		s.setting.Intervals = &next
	}
	s.setting.Touch(s.now)
	return res, nil
}
