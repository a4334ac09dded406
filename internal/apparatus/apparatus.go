// Package apparatus models the equipment an exercise is loaded on and resolves
// an abstract target weight into the nearest weight that equipment can
// actually produce.
package apparatus

import (
	"math"
	"strconv"
	"strings"
)

type Kind string

const (
	KindBarbell   Kind = "barbell"
	KindDumbbells Kind = "dumbbells"
	KindMachine   Kind = "machine"
	KindPlates    Kind = "plates"
)

// Unit is the unit weights are displayed in. The resolver itself is unitless.
type Unit string

const (
	Pounds    Unit = "lb"
	Kilograms Unit = "kg"
)

func (u Unit) single() string {
	if u == "" {
		return string(Pounds)
	}
	return string(u)
}

func (u Unit) plural() string {
	switch u {
	case "", Pounds:
		return "lbs"
	default:
		return string(u)
	}
}

// Apparatus is one of Barbell, Dumbbells, Machine or PlateStack.
// The set is closed: the unexported method keeps other packages from adding
// variants the resolver doesn't know how to search.
type Apparatus interface {
	Kind() Kind
	Units() Unit

	// loads enumerates every achievable load up to limit, plus at least the
	// lightest load above it when one exists.
	loads(limit float64) []load
}

// WeightInfo is a resolved, loadable weight.
type WeightInfo struct {
	Weight float64 `json:"weight"`
	Text   string  `json:"text"`
	Plates string  `json:"plates"`
}

// Raw describes a weight that doesn't go through an apparatus, such as a
// bodyweight exercise or a user-entered number.
func Raw(weight float64, unit Unit) WeightInfo {
	return WeightInfo{Weight: weight, Text: FormatWeight(weight, unit)}
}

// FormatWeight renders a weight with its unit, e.g. "102.5 lbs".
func FormatWeight(weight float64, unit Unit) string {
	return trim(weight) + " " + unit.plural()
}

// trim formats a weight without trailing zeros: 5, 0.25, 102.5.
func trim(weight float64) string {
	return strconv.FormatFloat(math.Round(weight*1000)/1000, 'f', -1, 64)
}

// load is one achievable weight. Totals are kept in thousandths so that
// fractional plates compare exactly.
type load struct {
	total  int64
	pieces int
	parts  func() []float64 // Only the picked load builds its plate list.
}

func milli(w float64) int64 {
	return int64(math.Round(w * 1000))
}

func fromMilli(m int64) float64 {
	return float64(m) / 1000
}

func (l load) info(a Apparatus) WeightInfo {
	w := fromMilli(l.total)
	return WeightInfo{
		Weight: w,
		Text:   FormatWeight(w, a.Units()),
		Plates: breakdown(l.parts(), a),
	}
}

func breakdown(parts []float64, a Apparatus) string {
	if len(parts) == 0 {
		switch a.Kind() {
		case KindBarbell:
			return "bar"
		case KindPlates:
			return "empty"
		}
		return ""
	}
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = trim(p)
	}
	out[0] += " " + a.Units().single()
	return strings.Join(out, " + ")
}

// better reports whether candidate c beats the current best b for target.
// Nearest wins, then fewer pieces, then the lighter total.
func better(c, b load, target int64) bool {
	dc, db := abs(c.total-target), abs(b.total-target)
	if dc != db {
		return dc < db
	}
	if c.pieces != b.pieces {
		return c.pieces < b.pieces
	}
	return c.total < b.total
}

func pick(loads []load, target int64, keep func(load) bool) (load, bool) {
	var best load
	found := false
	for _, l := range loads {
		if keep != nil && !keep(l) {
			continue
		}
		if !found || better(l, best, target) {
			best = l
			found = true
		}
	}
	return best, found
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Closest returns the achievable weight nearest target. Ties go to the
// combination using fewer pieces.
func Closest(a Apparatus, target float64) WeightInfo {
	if target < 0 {
		target = 0
	}
	l, ok := pick(a.loads(target), milli(target), nil)
	if !ok {
		return Raw(0, a.Units())
	}
	return l.info(a)
}

// ClosestBelow returns the achievable weight nearest target that is strictly
// lighter than ceiling. When nothing is lighter than ceiling it returns the
// lightest weight the apparatus can produce.
func ClosestBelow(a Apparatus, target, ceiling float64) WeightInfo {
	if target < 0 {
		target = 0
	}
	loads := a.loads(math.Min(target, ceiling))
	limit := milli(ceiling)
	if l, ok := pick(loads, milli(target), func(l load) bool { return l.total < limit }); ok {
		return l.info(a)
	}
	return Lightest(a)
}

// Next returns the lightest achievable weight strictly heavier than weight.
// At the top of the apparatus' range it returns the heaviest weight instead.
func Next(a Apparatus, weight float64) WeightInfo {
	loads := a.loads(weight)
	floor := milli(weight)
	if l, ok := pick(loads, floor, func(l load) bool { return l.total > floor }); ok {
		return l.info(a)
	}
	return Closest(a, weight)
}

// Lightest returns the lightest weight the apparatus can produce.
func Lightest(a Apparatus) WeightInfo {
	l, ok := pick(a.loads(0), math.MinInt64/2, nil)
	if !ok {
		return Raw(0, a.Units())
	}
	return l.info(a)
}

// subsets enumerates every subset of values (in their given order) with the
// sum in thousandths. The empty subset comes first.
func subsets(values []float64) []subset {
	out := []subset{{}}
	for _, v := range values {
		if v <= 0 {
			continue
		}
		n := len(out)
		for i := 0; i < n; i++ {
			parts := append(append([]float64(nil), out[i].parts...), v)
			out = append(out, subset{sum: out[i].sum + milli(v), parts: parts})
		}
	}
	return out
}

type subset struct {
	sum   int64
	parts []float64
}
