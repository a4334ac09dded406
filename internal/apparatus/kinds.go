package apparatus

import "sort"

// Barbell is a bar with collars loaded symmetrically from an unlimited supply
// of plates and bumpers. Magnets are fractional plates, at most one of each
// per side. WarmupsWithBar is how many warmup sets are done with the empty bar.
type Barbell struct {
	Bar            float64
	Collar         float64
	Plates         []float64
	Bumpers        []float64
	Magnets        []float64
	WarmupsWithBar int
	Unit           Unit
}

func (b Barbell) Kind() Kind  { return KindBarbell }
func (b Barbell) Units() Unit { return b.Unit }

func (b Barbell) loads(limit float64) []load {
	base := milli(b.Bar) + 2*milli(b.Collar)
	side := (milli(limit) - base) / 2
	if side < 0 {
		side = 0
	}
	pool := append(append([]float64(nil), b.Plates...), b.Bumpers...)
	sides := combos(pool, side+largest(pool))
	mags := subsets(b.Magnets)

	out := make([]load, 0, len(sides)*len(mags))
	for _, c := range sides {
		for _, m := range mags {
			out = append(out, load{
				total:  base + 2*(c.sum+m.sum),
				pieces: c.pieces + len(m.parts),
				parts:  func() []float64 { return join(c.parts(), m.parts) },
			})
		}
	}
	return out
}

// Dumbbells is a pair of fixed dumbbells. Each hand holds one of Weights plus
// any subset of Magnets, and the resolved weight is the pair's total.
type Dumbbells struct {
	Weights []float64
	Magnets []float64
	Unit    Unit
}

func (d Dumbbells) Kind() Kind  { return KindDumbbells }
func (d Dumbbells) Units() Unit { return d.Unit }

func (d Dumbbells) loads(float64) []load {
	weights := append([]float64(nil), d.Weights...)
	sort.Float64s(weights)
	mags := subsets(d.Magnets)

	var out []load
	for _, w := range weights {
		if w <= 0 {
			continue
		}
		for _, m := range mags {
			out = append(out, load{
				total:  2 * (milli(w) + m.sum),
				pieces: 1 + len(m.parts),
				parts:  fixed(join([]float64{w}, m.parts)),
			})
		}
	}
	return out
}

// maxStops bounds how many pins a machine stack may have.
const maxStops = 10000

// Range is the stack of a selectorized machine: Min, Min+Step, ... up to Max.
// A range whose step rounds to nothing, or with more than maxStops pins, is
// absent.
type Range struct {
	Min  float64 `json:"min" toml:"min" yaml:"min"`
	Max  float64 `json:"max" toml:"max" yaml:"max"`
	Step float64 `json:"step" toml:"step" yaml:"step"`
}

func (r Range) values() []int64 {
	lo, hi, step := milli(r.Min), milli(r.Max), milli(r.Step)
	if step <= 0 || hi < lo || (hi-lo)/step >= maxStops {
		return nil
	}
	out := make([]int64, 0, (hi-lo)/step+1)
	for v := lo; v <= hi; v += step {
		out = append(out, v)
	}
	return out
}

// Machine is a selectorized machine with up to two independent weight
// stacks and a few small add-on weights.
type Machine struct {
	Primary   Range
	Secondary Range
	Extras    []float64
	Unit      Unit
}

func (m Machine) Kind() Kind  { return KindMachine }
func (m Machine) Units() Unit { return m.Unit }

func (m Machine) loads(float64) []load {
	extras := subsets(m.Extras)
	var out []load
	for _, r := range []Range{m.Primary, m.Secondary} {
		for _, v := range r.values() {
			for _, e := range extras {
				out = append(out, load{
					total:  v + e.sum,
					pieces: len(e.parts),
					parts:  fixed(join([]float64{fromMilli(v)}, e.parts)),
				})
			}
		}
	}
	return out
}

// PlateStack is a plate-loaded implement with no bar, e.g. a dip belt or a
// sled. Plates are unlimited and the empty stack weighs nothing.
type PlateStack struct {
	Plates []float64
	Unit   Unit
}

func (p PlateStack) Kind() Kind  { return KindPlates }
func (p PlateStack) Units() Unit { return p.Unit }

func (p PlateStack) loads(limit float64) []load {
	var out []load
	for _, c := range combos(p.Plates, milli(limit)+largest(p.Plates)) {
		out = append(out, load{total: c.sum, pieces: c.pieces, parts: c.parts})
	}
	return out
}

// maxCells bounds the plate table. Loads heavier than that many steps are
// reached by stacking the heaviest plate first and filling the rest from the
// table.
const maxCells = 1 << 16

type combo struct {
	sum    int64
	pieces int
	parts  func() []float64 // Heaviest first, built on demand.
}

// combos returns every sum up to bound reachable from an unlimited supply of
// plates, each with the fewest plates that reach it. Past maxCells steps only
// the heaviest window of sums is returned.
func combos(plates []float64, bound int64) []combo {
	vals := denominations(plates)
	if len(vals) == 0 {
		return []combo{{parts: fixed(nil)}}
	}

	g := vals[0]
	for _, v := range vals[1:] {
		g = gcd(g, v)
	}
	n := int(bound / g)

	// Stack whole heaviest plates until the rest fits the table.
	heavy := 0
	if n > maxCells {
		heavy = (n - maxCells) / int(vals[0]/g)
		n -= heavy * int(vals[0]/g)
	}
	base := int64(heavy) * vals[0]
	top := fromMilli(vals[0])

	count := make([]int, n+1)
	prev := make([]int, n+1)
	for i := 1; i <= n; i++ {
		count[i] = -1
	}
	for v := 1; v <= n; v++ {
		for i, p := range vals {
			u := int(p / g)
			if v < u || count[v-u] < 0 {
				continue
			}
			if count[v] < 0 || count[v-u]+1 < count[v] {
				count[v] = count[v-u] + 1
				prev[v] = i
			}
		}
	}

	out := make([]combo, 0, n+1)
	for v := 0; v <= n; v++ {
		if count[v] < 0 {
			continue
		}
		out = append(out, combo{
			sum:    base + int64(v)*g,
			pieces: heavy + count[v],
			parts: func() []float64 {
				parts := make([]float64, 0, heavy+count[v])
				for range heavy {
					parts = append(parts, top)
				}
				for r := v; r > 0; r -= int(vals[prev[r]] / g) {
					parts = append(parts, fromMilli(vals[prev[r]]))
				}
				sort.Sort(sort.Reverse(sort.Float64Slice(parts)))
				return parts
			},
		})
	}
	return out
}

// denominations returns the distinct positive plates in thousandths,
// heaviest first.
func denominations(plates []float64) []int64 {
	seen := make(map[int64]bool)
	var vals []int64
	for _, p := range plates {
		m := milli(p)
		if m <= 0 || seen[m] {
			continue
		}
		seen[m] = true
		vals = append(vals, m)
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i] > vals[j] })
	return vals
}

func largest(plates []float64) int64 {
	var max int64
	for _, p := range plates {
		if m := milli(p); m > max {
			max = m
		}
	}
	return max
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func fixed(parts []float64) func() []float64 {
	return func() []float64 { return parts }
}

func join(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
