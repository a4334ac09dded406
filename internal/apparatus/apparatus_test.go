package apparatus_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/overload/internal/apparatus"
	"github.com/misterclayt0n/overload/internal/errors"
)

var (
	pair = apparatus.Dumbbells{Weights: []float64{5, 10, 15, 20}}

	pairWithMagnets = apparatus.Dumbbells{
		Weights: []float64{5, 10, 15, 20},
		Magnets: []float64{0.25, 0.5},
	}

	stack = apparatus.Machine{Primary: apparatus.Range{Min: 10, Max: 200, Step: 10}}

	barbell = apparatus.Barbell{
		Bar:    45,
		Plates: []float64{45, 35, 25, 10, 5, 2.5},
	}

	belt = apparatus.PlateStack{Plates: []float64{25, 10, 5}}
)

func TestClosest_Dumbbells(t *testing.T) {
	cases := []struct {
		target float64
		want   float64
	}{
		{0, 10},
		{9, 10},
		{12, 10},
		{28, 30},
		{50, 40},
	}
	for _, tc := range cases {
		got := apparatus.Closest(pair, tc.target)
		assert.Equal(t, tc.want, got.Weight, "closest(%v)", tc.target)
	}
}

func TestClosest_DumbbellMagnets(t *testing.T) {
	cases := []struct {
		target float64
		want   float64
		plates string
	}{
		{10.3, 10.5, "5 lb + 0.25"},
		{11.0, 11.0, "5 lb + 0.5"},
		{12.0, 11.5, "5 lb + 0.25 + 0.5"},
		{50.0, 41.5, "20 lb + 0.25 + 0.5"},
	}
	for _, tc := range cases {
		got := apparatus.Closest(pairWithMagnets, tc.target)
		assert.Equal(t, tc.want, got.Weight, "closest(%v)", tc.target)
		assert.Equal(t, tc.plates, got.Plates, "closest(%v)", tc.target)
	}
}

func TestClosest_Machine(t *testing.T) {
	cases := []struct {
		target float64
		want   float64
	}{
		{0, 10},
		{14, 10},
		{18, 20},
		{500, 200},
	}
	for _, tc := range cases {
		got := apparatus.Closest(stack, tc.target)
		assert.Equal(t, tc.want, got.Weight, "closest(%v)", tc.target)
	}
}

func TestClosest_MachineSecondaryAndExtras(t *testing.T) {
	m := apparatus.Machine{
		Primary:   apparatus.Range{Min: 10, Max: 100, Step: 10},
		Secondary: apparatus.Range{Min: 105, Max: 205, Step: 20},
		Extras:    []float64{2.5},
	}

	assert.Equal(t, 125.0, apparatus.Closest(m, 124).Weight)
	assert.Equal(t, 102.5, apparatus.Closest(m, 102).Weight)

	got := apparatus.Closest(m, 52.5)
	assert.Equal(t, 52.5, got.Weight)
	assert.Equal(t, "50 lb + 2.5", got.Plates)
}

func TestClosest_Barbell(t *testing.T) {
	got := apparatus.Closest(barbell, 135)
	assert.Equal(t, 135.0, got.Weight)
	assert.Equal(t, "45 lb", got.Plates)
	assert.Equal(t, "135 lbs", got.Text)

	// 135 and 140 are equally near; 135 needs fewer plates.
	assert.Equal(t, 135.0, apparatus.Closest(barbell, 137.5).Weight)
	assert.Equal(t, 140.0, apparatus.Closest(barbell, 139).Weight)

	empty := apparatus.Closest(barbell, 0)
	assert.Equal(t, 45.0, empty.Weight)
	assert.Equal(t, "bar", empty.Plates)

	got = apparatus.Closest(barbell, 227)
	assert.Equal(t, 225.0, got.Weight)
	assert.Equal(t, "45 lb + 45", got.Plates)
}

func TestClosest_BarbellCollarsAndMagnets(t *testing.T) {
	b := apparatus.Barbell{
		Bar:     20,
		Collar:  2.5,
		Plates:  []float64{20, 10, 5, 2.5, 1.25},
		Magnets: []float64{0.5},
		Unit:    apparatus.Kilograms,
	}

	assert.Equal(t, 25.0, apparatus.Closest(b, 0).Weight)

	got := apparatus.Closest(b, 66)
	assert.Equal(t, 66.0, got.Weight)
	assert.Equal(t, "20 kg + 0.5", got.Plates)
	assert.Equal(t, "66 kg", got.Text)
}

func TestClosest_PlateStack(t *testing.T) {
	assert.Equal(t, 0.0, apparatus.Closest(belt, 0).Weight)
	assert.Equal(t, "empty", apparatus.Closest(belt, 1).Plates)

	got := apparatus.Closest(belt, 41)
	assert.Equal(t, 40.0, got.Weight)
	assert.Equal(t, "25 lb + 10 + 5", got.Plates)
}

func TestClosest_Idempotent(t *testing.T) {
	all := []apparatus.Apparatus{pair, pairWithMagnets, stack, barbell, belt}
	for _, a := range all {
		for w := 0.0; w <= 300; w += 3.7 {
			first := apparatus.Closest(a, w)
			second := apparatus.Closest(a, first.Weight)
			assert.Equal(t, first.Weight, second.Weight, "%s closest(%v)", a.Kind(), w)
		}
	}
}

func TestClosestBelow_StrictlyBelowCeiling(t *testing.T) {
	all := []apparatus.Apparatus{pair, pairWithMagnets, stack, barbell, belt}
	for _, a := range all {
		lightest := apparatus.Lightest(a).Weight
		for ceiling := 0.0; ceiling <= 300; ceiling += 4.3 {
			got := apparatus.ClosestBelow(a, ceiling*0.8, ceiling)
			if lightest < ceiling {
				assert.Less(t, got.Weight, ceiling, "%s closestBelow(%v)", a.Kind(), ceiling)
			} else {
				assert.Equal(t, lightest, got.Weight, "%s closestBelow(%v)", a.Kind(), ceiling)
			}
		}
	}
}

func TestClosestBelow(t *testing.T) {
	assert.Equal(t, 130.0, apparatus.ClosestBelow(barbell, 135, 135).Weight)
	assert.Equal(t, 95.0, apparatus.ClosestBelow(barbell, 94, 135).Weight)
	assert.Equal(t, 20.0, apparatus.ClosestBelow(pair, 30, 30).Weight)

	// Nothing is lighter than the bar, so the bar comes back.
	assert.Equal(t, 45.0, apparatus.ClosestBelow(barbell, 40, 45).Weight)
}

func TestNext(t *testing.T) {
	assert.Equal(t, 140.0, apparatus.Next(barbell, 135).Weight)
	assert.Equal(t, 20.0, apparatus.Next(pair, 10).Weight)
	assert.Equal(t, 10.5, apparatus.Next(pairWithMagnets, 10).Weight)
	assert.Equal(t, 30.0, apparatus.Next(stack, 20).Weight)

	// Top of the rack stays put.
	assert.Equal(t, 40.0, apparatus.Next(pair, 40).Weight)
	assert.Equal(t, 200.0, apparatus.Next(stack, 200).Weight)
}

func TestEncodeDecode(t *testing.T) {
	all := []apparatus.Apparatus{pairWithMagnets, stack, barbell, belt}
	for _, a := range all {
		data, err := apparatus.Encode(a)
		require.NoError(t, err)

		var kind struct {
			Kind apparatus.Kind `json:"kind"`
		}
		require.NoError(t, json.Unmarshal(data, &kind))
		assert.Equal(t, a.Kind(), kind.Kind)

		back, err := apparatus.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, a, back)
	}

	none, err := apparatus.Decode([]byte("null"))
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestDefBuild_Invalid(t *testing.T) {
	cases := []apparatus.Def{
		{},
		{Kind: "kettlebell"},
		{Kind: apparatus.KindDumbbells},
		{Kind: apparatus.KindMachine, Primary: &apparatus.Range{Min: 10, Max: 100}},
		{Kind: apparatus.KindMachine, Primary: &apparatus.Range{Min: 10, Max: 100, Step: 0.0004}},
		{Kind: apparatus.KindMachine, Primary: &apparatus.Range{Min: 0, Max: 1e6, Step: 1}},
		{Kind: apparatus.KindBarbell, Bar: 45, Plates: []float64{45, -5}},
		{Kind: apparatus.KindPlates, Unit: "stone"},
	}
	for _, d := range cases {
		_, err := d.Build()
		assert.True(t, errors.IsCode(err, errors.CodeMisconfigured), "%+v", d)
	}
}

func TestClosest_HugeTargetStaysBounded(t *testing.T) {
	done := make(chan apparatus.WeightInfo, 1)
	go func() { done <- apparatus.Closest(barbell, 1_350_000) }()

	select {
	case got := <-done:
		assert.Equal(t, 1_350_000.0, got.Weight)
		assert.True(t, strings.HasPrefix(got.Plates, "45 lb + 45"), "plates start with the heaviest")
	case <-time.After(5 * time.Second):
		t.Fatal("resolving 1350000 lbs did not finish")
	}

	below := apparatus.ClosestBelow(barbell, 0.9*1_350_000, 1_350_000)
	assert.Less(t, below.Weight, 1_350_000.0)
	assert.InDelta(t, 0.9*1_350_000, below.Weight, 5)

	half := apparatus.ClosestBelow(barbell, 500_000, 1_350_000)
	assert.InDelta(t, 500_000, half.Weight, 5)
}
