package plan

import (
	"fmt"

	"github.com/misterclayt0n/overload/internal/errors"
	"github.com/misterclayt0n/overload/internal/models"
)

// vsets counts reps up to a target across as many sets as it takes. The
// weight stays wherever the user sets it.
type vsets struct {
	TargetReps int `json:"target_reps"`
}

func (v *vsets) kind() Kind { return KindVSets }

func (v *vsets) validate() error {
	if v.TargetReps <= 0 {
		return fmt.Errorf("target reps must be positive, got %d", v.TargetReps)
	}
	return nil
}

func total(reps []int) int {
	n := 0
	for _, r := range reps {
		n += r
	}
	return n
}

// build lays out the sets already done plus one for the reps still to go.
func (v *vsets) build(s *session) ([]models.SetSpec, error) {
	work := s.fixed()
	done := s.plan.Performed
	sets := make([]models.SetSpec, 0, len(done)+1)
	for i, r := range done {
		sets = append(sets, models.SetSpec{Title: fmt.Sprintf("Set %d", i+1), Reps: r, Weight: work, Rest: s.setting.RestSeconds})
	}
	if left := v.TargetReps - total(done); left > 0 {
		sets = append(sets, models.SetSpec{
			Title:    fmt.Sprintf("Set %d", len(done)+1),
			Subtitle: fmt.Sprintf("%d of %d reps to go", left, v.TargetReps),
			Reps:     left,
			Weight:   work,
			Rest:     s.setting.RestSeconds,
		})
	}
	return sets, nil
}

func (v *vsets) options(*Plan) []Action {
	return []Action{actReps}
}

func (v *vsets) finish(s *session, a Action) (*models.Result, error) {
	if a.Reps <= 0 {
		return nil, errors.Misconfigured("reps must be positive, got %d", a.Reps)
	}
	p := s.plan
	p.Performed = append(p.Performed, a.Reps)
	done := total(p.Performed)

	if done < v.TargetReps {
		sets, err := v.build(s)
		if err != nil {
			return nil, err
		}
		p.Sets = sets
		p.Cursor = len(p.Performed)
		return nil, nil
	}

	p.Sets[len(p.Sets)-1].Reps = a.Reps
	p.Sets[len(p.Sets)-1].Subtitle = ""
	work := s.fixed()
	s.setting.Touch(s.now)
	return &models.Result{
		Title:   fmt.Sprintf("%d reps in %d sets", done, len(p.Performed)),
		Weight:  work.Weight,
		Reps:    done,
		Primary: true,
	}, nil
}
