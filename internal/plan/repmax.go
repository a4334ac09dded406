package plan

import (
	"fmt"
	"math"

	"github.com/misterclayt0n/overload/internal/apparatus"
	"github.com/misterclayt0n/overload/internal/errors"
	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/utils"
)

// repMax finds a starting weight: the user works up to the heaviest weight
// they can do for Reps and records it as the exercise's working weight.
type repMax struct {
	Reps int `json:"reps"`
}

func (r *repMax) kind() Kind { return KindRepMax }

func (r *repMax) validate() error {
	if r.Reps <= 0 {
		return fmt.Errorf("reps must be positive, got %d", r.Reps)
	}
	return nil
}

func (r *repMax) build(s *session) ([]models.SetSpec, error) {
	a, err := s.apparatus()
	if err != nil {
		return nil, err
	}
	return []models.SetSpec{
		{
			Title:    "Empty",
			Subtitle: "start as light as the apparatus goes",
			Reps:     r.Reps,
			Weight:   apparatus.Lightest(a),
			Warmup:   true,
			Rest:     s.setting.RestSeconds,
		},
		{
			Title:    fmt.Sprintf("Find your %d rep max", r.Reps),
			Subtitle: "add weight in small jumps until a set is hard",
			Reps:     r.Reps,
			Weight:   apparatus.Lightest(a),
			Amrap:    true,
		},
	}, nil
}

func (r *repMax) options(*Plan) []Action {
	return []Action{actWeight}
}

func (r *repMax) finish(s *session, a Action) (*models.Result, error) {
	if a.Weight <= 0 || math.IsNaN(a.Weight) || math.IsInf(a.Weight, 0) {
		return nil, errors.Misconfigured("weight must be positive, got %v", a.Weight)
	}
	found := apparatus.Closest(s.setting.Apparatus, a.Weight)
	s.setting.ChangeWeight(found.Weight, s.now)
	s.setting.Stalls = 0

	last := &s.plan.Sets[len(s.plan.Sets)-1]
	last.Weight = found
	return &models.Result{
		Title:  fmt.Sprintf("%dRM @ %s", r.Reps, found.Text),
		Weight: found.Weight,
		Reps:   r.Reps,
		Note:   fmt.Sprintf("estimated 1RM %s", apparatus.FormatWeight(math.Round(utils.CalculateEpley1RM(found.Weight, r.Reps)), s.setting.Units())),
	}, nil
}
