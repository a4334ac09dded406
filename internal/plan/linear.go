package plan

import (
	"fmt"

	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/warmup"
)

// stallLimit is how many missed sessions in a row trigger a deload.
const stallLimit = 3

// linear adds the smallest loadable increment after every good session.
type linear struct {
	Sets    int         `json:"sets"`
	Reps    int         `json:"reps"`
	Warmup  warmup.Spec `json:"warmup"`
	Deloads []float64   `json:"deloads,omitempty"`
}

func (l *linear) kind() Kind { return KindLinear }

func (l *linear) repTarget() int { return l.Reps }

func (l *linear) validate() error {
	if l.Sets <= 0 || l.Reps <= 0 {
		return fmt.Errorf("sets and reps must be positive, got %dx%d", l.Sets, l.Reps)
	}
	if err := validateTable(l.Deloads); err != nil {
		return err
	}
	return l.Warmup.Validate()
}

func (l *linear) build(s *session) ([]models.SetSpec, error) {
	a, err := s.baseline()
	if err != nil {
		return nil, err
	}
	work := s.resolve(s.deloaded(l.Deloads))
	sets := warmup.Build(a, work.Weight, l.Warmup)
	return append(sets, worksets(repeat(l.Reps, l.Sets), work, s.setting.RestSeconds)...), nil
}

func (l *linear) options(*Plan) []Action {
	return []Action{actFinished, actMissed}
}

func (l *linear) finish(s *session, a Action) (*models.Result, error) {
	work, _ := lastWork(s.plan.Sets)
	missed := a.ID == ActMissed
	progressLinear(s, missed)
	return &models.Result{Weight: work.Weight.Weight, Missed: missed, Primary: true, Reps: l.Reps}, nil
}

// progressLinear is shared by the plans that progress like linear: a good
// session moves to the next increment, three misses in a row back off about
// ten percent. Progress is always from the stored weight, deloaded or not.
func progressLinear(s *session, missed bool) {
	st := s.setting
	switch {
	case missed:
		st.Stalls++
		if st.Stalls >= stallLimit {
			st.ChangeWeight(s.reduce(st.Weight), s.now)
			st.Stalls = 0
			return
		}
		st.Touch(s.now)
	default:
		st.Stalls = 0
		st.ChangeWeight(s.next(st.Weight), s.now)
	}
}

func validateTable(table []float64) error {
	for _, f := range table {
		if f <= 0 || f > 1 {
			return fmt.Errorf("deload factors must be in (0, 1], got %v", f)
		}
	}
	return nil
}
