package warmup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/overload/internal/apparatus"
	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/warmup"
)

var bar = apparatus.Barbell{
	Bar:            45,
	Plates:         []float64{45, 35, 25, 10, 5, 2.5},
	WarmupsWithBar: 2,
}

func weights(sets []models.SetSpec) []float64 {
	out := make([]float64, len(sets))
	for i, s := range sets {
		out[i] = s.Weight.Weight
	}
	return out
}

func TestBuild_InterpolatedRamp(t *testing.T) {
	spec := warmup.Spec{First: 0.5, Last: 0.9, Reps: []int{5, 5, 3, 2, 1}}

	sets := warmup.Build(bar, 225, spec)
	require.Len(t, sets, 5)

	assert.Equal(t, []float64{45, 45, 115, 155, 205}, weights(sets))
	assert.Equal(t, "Warmup 1 of 5", sets[0].Title)
	assert.Equal(t, "bar only", sets[0].Subtitle)
	assert.Equal(t, "50% of 225 lbs", sets[2].Subtitle)
	assert.Equal(t, "90% of 225 lbs", sets[4].Subtitle)
	for _, s := range sets {
		assert.True(t, s.Warmup)
		assert.Less(t, s.Weight.Weight, 225.0)
	}
}

func TestBuild_BarOnlyOverride(t *testing.T) {
	none := 0
	spec := warmup.Spec{First: 0.5, Last: 0.5, Reps: []int{5}, BarOnly: &none}

	sets := warmup.Build(bar, 225, spec)
	require.Len(t, sets, 1)
	assert.Equal(t, 115.0, sets[0].Weight.Weight)
}

func TestBuild_ExplicitSteps(t *testing.T) {
	pair := apparatus.Dumbbells{Weights: []float64{5, 10, 15, 20}}
	spec := warmup.Spec{Steps: []warmup.Step{{Reps: 8, Percent: 0.5}, {Reps: 4, Percent: 0.75}}}

	sets := warmup.Build(pair, 40, spec)
	assert.Equal(t, []float64{20, 30}, weights(sets))
	assert.Equal(t, 8, sets[0].Reps)
	assert.Equal(t, 4, sets[1].Reps)
}

func TestBuild_ZeroReps(t *testing.T) {
	assert.Empty(t, warmup.Build(bar, 225, warmup.Spec{}))
	assert.Empty(t, warmup.Build(bar, 225, warmup.Spec{First: 0.5, Last: 0.9, Reps: []int{0, 0, 0}}))
	assert.Empty(t, warmup.Build(bar, 225, warmup.Spec{Steps: []warmup.Step{{Reps: 0, Percent: 0.5}}}))
}

func TestBuild_NeverReachesWorkWeight(t *testing.T) {
	// Work weight is the empty bar: nothing can be lighter.
	sets := warmup.Build(bar, 45, warmup.Spec{First: 0.5, Last: 0.9, Reps: []int{5, 5, 3}})
	assert.Empty(t, sets)

	pair := apparatus.Dumbbells{Weights: []float64{5, 10}}
	sets = warmup.Build(pair, 10, warmup.Spec{Steps: []warmup.Step{{Reps: 5, Percent: 0.5}}})
	assert.Empty(t, sets)
}

func TestSpecValidate(t *testing.T) {
	neg := -1
	assert.NoError(t, warmup.Spec{First: 0.4, Last: 0.8, Reps: []int{5, 3}}.Validate())
	assert.Error(t, warmup.Spec{Reps: []int{5, -3}}.Validate())
	assert.Error(t, warmup.Spec{Steps: []warmup.Step{{Reps: 5, Percent: 1.5}}}.Validate())
	assert.Error(t, warmup.Spec{BarOnly: &neg}.Validate())
}
