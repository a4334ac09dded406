package apparatus

import (
	"encoding/json"
	"fmt"

	"github.com/misterclayt0n/overload/internal/errors"
)

// Def is the flat, serializable form of an apparatus. It is what program
// catalogs declare and what settings persist.
type Def struct {
	Kind Kind `json:"kind" toml:"kind" yaml:"kind"`
	Unit Unit `json:"unit,omitempty" toml:"unit,omitempty" yaml:"unit,omitempty"`

	// barbell
	Bar            float64   `json:"bar,omitempty" toml:"bar,omitempty" yaml:"bar,omitempty"`
	Collar         float64   `json:"collar,omitempty" toml:"collar,omitempty" yaml:"collar,omitempty"`
	Bumpers        []float64 `json:"bumpers,omitempty" toml:"bumpers,omitempty" yaml:"bumpers,omitempty"`
	WarmupsWithBar int       `json:"warmups_with_bar,omitempty" toml:"warmups_with_bar,omitempty" yaml:"warmups_with_bar,omitempty"`

	// barbell and plate stacks
	Plates []float64 `json:"plates,omitempty" toml:"plates,omitempty" yaml:"plates,omitempty"`

	// dumbbells
	Weights []float64 `json:"weights,omitempty" toml:"weights,omitempty" yaml:"weights,omitempty"`

	// barbell and dumbbells
	Magnets []float64 `json:"magnets,omitempty" toml:"magnets,omitempty" yaml:"magnets,omitempty"`

	// machine
	Primary   *Range    `json:"primary,omitempty" toml:"primary,omitempty" yaml:"primary,omitempty"`
	Secondary *Range    `json:"secondary,omitempty" toml:"secondary,omitempty" yaml:"secondary,omitempty"`
	Extras    []float64 `json:"extras,omitempty" toml:"extras,omitempty" yaml:"extras,omitempty"`
}

// Build validates the definition and returns the apparatus it describes.
func (d Def) Build() (Apparatus, error) {
	if d.Unit != "" && d.Unit != Pounds && d.Unit != Kilograms {
		return nil, errors.Misconfigured("unknown unit %q", d.Unit)
	}
	for _, list := range [][]float64{d.Plates, d.Bumpers, d.Magnets, d.Weights, d.Extras} {
		for _, w := range list {
			if w < 0 {
				return nil, errors.Misconfigured("%s weights can't be negative (%v)", d.Kind, w)
			}
		}
	}

	switch d.Kind {
	case KindBarbell:
		if d.Bar < 0 || d.Collar < 0 || d.WarmupsWithBar < 0 {
			return nil, errors.Misconfigured("barbell bar, collar and warmups can't be negative")
		}
		return Barbell{
			Bar:            d.Bar,
			Collar:         d.Collar,
			Plates:         d.Plates,
			Bumpers:        d.Bumpers,
			Magnets:        d.Magnets,
			WarmupsWithBar: d.WarmupsWithBar,
			Unit:           d.Unit,
		}, nil
	case KindDumbbells:
		if len(d.Weights) == 0 {
			return nil, errors.Misconfigured("dumbbells need at least one weight")
		}
		return Dumbbells{Weights: d.Weights, Magnets: d.Magnets, Unit: d.Unit}, nil
	case KindMachine:
		m := Machine{Extras: d.Extras, Unit: d.Unit}
		if d.Primary != nil {
			m.Primary = *d.Primary
		}
		if d.Secondary != nil {
			m.Secondary = *d.Secondary
		}
		if len(m.Primary.values()) == 0 && len(m.Secondary.values()) == 0 {
			return nil, errors.Misconfigured("machine needs a range with a positive step and at most %d pins", maxStops)
		}
		return m, nil
	case KindPlates:
		return PlateStack{Plates: d.Plates, Unit: d.Unit}, nil
	case "":
		return nil, errors.Misconfigured("apparatus kind is missing")
	default:
		return nil, errors.Misconfigured("unknown apparatus kind %q", d.Kind)
	}
}

// DefOf is the inverse of Def.Build.
func DefOf(a Apparatus) Def {
	switch v := a.(type) {
	case Barbell:
		return Def{
			Kind:           KindBarbell,
			Unit:           v.Unit,
			Bar:            v.Bar,
			Collar:         v.Collar,
			Plates:         v.Plates,
			Bumpers:        v.Bumpers,
			Magnets:        v.Magnets,
			WarmupsWithBar: v.WarmupsWithBar,
		}
	case Dumbbells:
		return Def{Kind: KindDumbbells, Unit: v.Unit, Weights: v.Weights, Magnets: v.Magnets}
	case Machine:
		d := Def{Kind: KindMachine, Unit: v.Unit, Extras: v.Extras}
		primary, secondary := v.Primary, v.Secondary
		d.Primary = &primary
		if secondary != (Range{}) {
			d.Secondary = &secondary
		}
		return d
	case PlateStack:
		return Def{Kind: KindPlates, Unit: v.Unit, Plates: v.Plates}
	}
	panic(fmt.Sprintf("apparatus: unhandled kind %T", a))
}

// Encode serializes an apparatus as a tagged JSON object. A nil apparatus
// encodes as null.
func Encode(a Apparatus) (json.RawMessage, error) {
	if a == nil {
		return json.RawMessage("null"), nil
	}
	return json.Marshal(DefOf(a))
}

// Decode is the inverse of Encode.
func Decode(data []byte) (Apparatus, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var d Def
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decoding apparatus: %w", err)
	}
	return d.Build()
}
