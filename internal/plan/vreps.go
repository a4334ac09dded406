package plan

import (
	"fmt"

	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/warmup"
)

// vreps keeps the weight and adds a rep per good session. Past MaxReps it
// drops back to MinReps at the next loadable weight.
type vreps struct {
	Sets    int         `json:"sets"`
	MinReps int         `json:"min_reps"`
	MaxReps int         `json:"max_reps"`
	Warmup  warmup.Spec `json:"warmup"`
}

func (v *vreps) kind() Kind { return KindVReps }

func (v *vreps) validate() error {
	if v.Sets <= 0 {
		return fmt.Errorf("sets must be positive, got %d", v.Sets)
	}
	if v.MinReps <= 0 || v.MaxReps < v.MinReps {
		return fmt.Errorf("rep range must satisfy 0 < min <= max, got %d..%d", v.MinReps, v.MaxReps)
	}
	return v.Warmup.Validate()
}

func (v *vreps) reps(st *models.Setting) int {
	return min(max(st.RequestedReps, v.MinReps), v.MaxReps)
}

func (v *vreps) build(s *session) ([]models.SetSpec, error) {
	work := s.fixed()
	var sets []models.SetSpec
	if s.setting.Apparatus != nil && work.Weight > 0 {
		sets = warmup.Build(s.setting.Apparatus, work.Weight, v.Warmup)
	}
	ws := worksets(repeat(v.reps(s.setting), v.Sets), work, s.setting.RestSeconds)
	for i := range ws {
		ws[i].Subtitle = fmt.Sprintf("%d-%d reps", v.MinReps, v.MaxReps)
	}
	return append(sets, ws...), nil
}

func (v *vreps) options(*Plan) []Action {
	return []Action{actAdvance, actHold}
}

func (v *vreps) finish(s *session, a Action) (*models.Result, error) {
	st := s.setting
	reps := v.reps(st)
	work, _ := lastWork(s.plan.Sets)

	if a.ID != ActAdvance {
		st.Touch(s.now)
		return &models.Result{Weight: work.Weight.Weight, Reps: reps, Primary: true}, nil
	}

	switch {
	case reps < v.MaxReps:
		st.RequestedReps = reps + 1
		st.Touch(s.now)
	case st.Apparatus != nil && st.Weight > 0:
		st.RequestedReps = v.MinReps
		st.ChangeWeight(s.next(st.Weight), s.now)
	default:
		st.RequestedReps = v.MaxReps
		st.Touch(s.now)
	}
	return &models.Result{Weight: work.Weight.Weight, Reps: reps, Primary: true}, nil
}
