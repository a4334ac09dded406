// Package warmup expands a ramp specification into the warmup sets done
// before a work weight.
package warmup

import (
	"fmt"
	"math"

	"github.com/misterclayt0n/overload/internal/apparatus"
	"github.com/misterclayt0n/overload/internal/models"
)

// Step is one explicit warmup: Reps at Percent of the work weight (0..1).
type Step struct {
	Reps    int     `json:"reps"`
	Percent float64 `json:"percent"`
}

// Spec is either a list of explicit Steps or a ramp from First to Last
// percent across Reps. When BarOnly is nil a barbell's WarmupsWithBar decides
// how many of the leading Reps are done with the empty bar.
type Spec struct {
	Steps   []Step  `json:"steps,omitempty"`
	First   float64 `json:"first,omitempty"`
	Last    float64 `json:"last,omitempty"`
	Reps    []int   `json:"reps,omitempty"`
	BarOnly *int    `json:"bar_only,omitempty"`
}

// Validate rejects negative rep counts and percentages outside (0, 1].
func (s Spec) Validate() error {
	for _, st := range s.Steps {
		if st.Reps < 0 {
			return fmt.Errorf("warmup reps can't be negative (%d)", st.Reps)
		}
		if st.Percent <= 0 || st.Percent > 1 {
			return fmt.Errorf("warmup percent must be in (0, 1], got %v", st.Percent)
		}
	}
	for _, r := range s.Reps {
		if r < 0 {
			return fmt.Errorf("warmup reps can't be negative (%d)", r)
		}
	}
	if len(s.Reps) > 0 {
		if s.First < 0 || s.First > 1 || s.Last < 0 || s.Last > 1 {
			return fmt.Errorf("warmup ramp must stay within 0..1, got %v..%v", s.First, s.Last)
		}
	}
	if s.BarOnly != nil && *s.BarOnly < 0 {
		return fmt.Errorf("bar only warmups can't be negative (%d)", *s.BarOnly)
	}
	return nil
}

type pending struct {
	reps    int
	weight  apparatus.WeightInfo
	percent float64
	bar     bool
}

// Build returns the warmup sets for work in the order they are done. Every
// warmup is strictly lighter than work; steps that can't be are dropped, as
// are steps with zero reps.
func Build(a apparatus.Apparatus, work float64, spec Spec) []models.SetSpec {
	var steps []pending

	if len(spec.Steps) > 0 {
		for _, st := range spec.Steps {
			steps = append(steps, pending{reps: st.Reps, percent: st.Percent, weight: below(a, work*st.Percent, work)})
		}
	} else {
		bar := barOnly(a, spec)
		if bar < 0 {
			bar = 0
		}
		if bar > len(spec.Reps) {
			bar = len(spec.Reps)
		}
		for _, reps := range spec.Reps[:bar] {
			steps = append(steps, pending{reps: reps, bar: true, weight: apparatus.Lightest(a)})
		}
		ramp := spec.Reps[bar:]
		for i, reps := range ramp {
			pct := spec.First
			if len(ramp) > 1 {
				pct = spec.First + (spec.Last-spec.First)*float64(i)/float64(len(ramp)-1)
			}
			steps = append(steps, pending{reps: reps, percent: pct, weight: below(a, work*pct, work)})
		}
	}

	kept := steps[:0]
	for _, st := range steps {
		if st.reps <= 0 || st.weight.Weight >= work {
			continue
		}
		kept = append(kept, st)
	}

	sets := make([]models.SetSpec, 0, len(kept))
	for i, st := range kept {
		subtitle := "bar only"
		if !st.bar {
			subtitle = fmt.Sprintf("%d%% of %s", int(math.Round(st.percent*100)), apparatus.FormatWeight(work, units(a)))
		}
		sets = append(sets, models.SetSpec{
			Title:    fmt.Sprintf("Warmup %d of %d", i+1, len(kept)),
			Subtitle: subtitle,
			Reps:     st.reps,
			Weight:   st.weight,
			Warmup:   true,
		})
	}
	return sets
}

func barOnly(a apparatus.Apparatus, spec Spec) int {
	b, ok := a.(apparatus.Barbell)
	if !ok {
		return 0
	}
	if spec.BarOnly != nil {
		return *spec.BarOnly
	}
	return b.WarmupsWithBar
}

func below(a apparatus.Apparatus, target, ceiling float64) apparatus.WeightInfo {
	if a == nil {
		return apparatus.Raw(target, "")
	}
	return apparatus.ClosestBelow(a, target, ceiling)
}

func units(a apparatus.Apparatus) apparatus.Unit {
	if a == nil {
		return ""
	}
	return a.Units()
}
