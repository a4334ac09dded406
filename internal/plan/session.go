package plan

import (
	"fmt"
	"time"

	"github.com/misterclayt0n/overload/internal/apparatus"
	"github.com/misterclayt0n/overload/internal/deload"
	"github.com/misterclayt0n/overload/internal/errors"
	"github.com/misterclayt0n/overload/internal/history"
	"github.com/misterclayt0n/overload/internal/models"
)

// session bundles what one operation borrows from the host.
type session struct {
	env     Env
	plan    *Plan
	setting *models.Setting
	ledger  *history.Ledger
	now     time.Time
}

func (p *Plan) session(env Env) (*session, error) {
	setting, err := env.FindSetting(p.Exercise)
	if err != nil {
		return nil, err
	}
	ledger, err := env.FindHistory(p.Exercise)
	if err != nil {
		return nil, err
	}
	return &session{env: env, plan: p, setting: setting, ledger: ledger, now: env.Now()}, nil
}

func (s *session) apparatus() (apparatus.Apparatus, error) {
	if s.setting.Apparatus == nil {
		return nil, errors.Misconfigured("%s has no apparatus configured", s.plan.Exercise)
	}
	return s.setting.Apparatus, nil
}

// baseline is the weighted plans' starting point: an apparatus and a known
// working weight.
func (s *session) baseline() (apparatus.Apparatus, error) {
	a, err := s.apparatus()
	if err != nil {
		return nil, err
	}
	if s.setting.Weight <= 0 {
		return nil, errors.Blocked("%s needs a starting weight", s.plan.Exercise)
	}
	return a, nil
}

// deloaded returns the working weight adjusted for time since it last
// changed and records the reduction on the plan.
func (s *session) deloaded(table []float64) float64 {
	if table == nil {
		table = deload.DefaultTable
	}
	d := deload.Compute(s.setting.Weight, s.setting.LastChanged, s.now, table)
	s.plan.DeloadPercent = d.Percent
	return d.Weight
}

// resolve rounds weight to the apparatus, or shows it as is when the
// exercise has none (bodyweight work).
func (s *session) resolve(weight float64) apparatus.WeightInfo {
	if s.setting.Apparatus == nil {
		return apparatus.Raw(weight, "")
	}
	return apparatus.Closest(s.setting.Apparatus, weight)
}

func (s *session) next(weight float64) float64 {
	if s.setting.Apparatus == nil {
		return weight
	}
	return apparatus.Next(s.setting.Apparatus, weight).Weight
}

// reduce is the stall deload: about ten percent lighter, always strictly
// below the current weight when the apparatus allows it.
func (s *session) reduce(weight float64) float64 {
	if s.setting.Apparatus == nil {
		return weight * 0.9
	}
	return apparatus.ClosestBelow(s.setting.Apparatus, weight*0.9, weight).Weight
}

// worksets lays out one work set per entry of reps, all at weight.
func worksets(reps []int, weight apparatus.WeightInfo, rest int) []models.SetSpec {
	sets := make([]models.SetSpec, 0, len(reps))
	for i, r := range reps {
		sets = append(sets, models.SetSpec{
			Title:  fmt.Sprintf("Workset %d of %d", i+1, len(reps)),
			Reps:   r,
			Weight: weight,
			Rest:   rest,
		})
	}
	return sets
}

func repeat(reps, sets int) []int {
	out := make([]int, sets)
	for i := range out {
		out[i] = reps
	}
	return out
}

// lastWork returns the last non-warmup set.
func lastWork(sets []models.SetSpec) (models.SetSpec, bool) {
	for i := len(sets) - 1; i >= 0; i-- {
		if !sets[i].Warmup {
			return sets[i], true
		}
	}
	return models.SetSpec{}, false
}

type repTargeter interface {
	repTarget() int
}

// repTarget is the rep count a rep max finder should look for on behalf of
// v.
func repTarget(v variant) int {
	if t, ok := v.(repTargeter); ok && t.repTarget() > 0 {
		return t.repTarget()
	}
	return 5
}

// fixed is the weight for plans that hold it constant. Unweighted work has
// an empty WeightInfo.
func (s *session) fixed() apparatus.WeightInfo {
	if s.setting.Weight <= 0 {
		return apparatus.WeightInfo{}
	}
	return s.resolve(s.setting.Weight)
}
