package plan

import (
	"fmt"

	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/warmup"
)

// amrap is laid out like linear but the last set is open ended. How it went
// is judged by the user picking how far to advance; the reps themselves are
// not recorded.
type amrap struct {
	Sets    int         `json:"sets"`
	Reps    int         `json:"reps"`
	Warmup  warmup.Spec `json:"warmup"`
	Deloads []float64   `json:"deloads,omitempty"`
}

func (m *amrap) kind() Kind { return KindAmrap }

func (m *amrap) repTarget() int { return m.Reps }

func (m *amrap) validate() error {
	if m.Sets <= 0 || m.Reps <= 0 {
		return fmt.Errorf("sets and reps must be positive, got %dx%d", m.Sets, m.Reps)
	}
	if err := validateTable(m.Deloads); err != nil {
		return err
	}
	return m.Warmup.Validate()
}

func (m *amrap) build(s *session) ([]models.SetSpec, error) {
	a, err := s.baseline()
	if err != nil {
		return nil, err
	}
	work := s.resolve(s.deloaded(m.Deloads))
	sets := warmup.Build(a, work.Weight, m.Warmup)

	ws := worksets(repeat(m.Reps, m.Sets), work, s.setting.RestSeconds)
	last := &ws[len(ws)-1]
	last.Amrap = true
	last.Subtitle = "as many reps as possible"
	return append(sets, ws...), nil
}

func (m *amrap) options(*Plan) []Action {
	return []Action{actAdvance, actAdvance2, actHold, actDeload}
}

func (m *amrap) finish(s *session, a Action) (*models.Result, error) {
	work, _ := lastWork(s.plan.Sets)
	st := s.setting
	st.Stalls = 0

	switch a.ID {
	case ActAdvance:
		st.ChangeWeight(s.next(st.Weight), s.now)
	case ActAdvance2:
		st.ChangeWeight(s.next(s.next(st.Weight)), s.now)
	case ActDeload:
		st.ChangeWeight(s.reduce(st.Weight), s.now)
	default:
		st.Touch(s.now)
	}

	return &models.Result{
		Weight:  work.Weight.Weight,
		Missed:  a.ID == ActDeload,
		Primary: true,
		Note:    a.Label,
	}, nil
}
