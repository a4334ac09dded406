package plan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/misterclayt0n/overload/internal/history"
	"github.com/misterclayt0n/overload/internal/models"
)

// Label summarizes the session's work sets, e.g. "3x5 @ 135 lbs".
func (p *Plan) Label() string {
	switch p.State {
	case StateBlocked:
		return "needs a starting weight"
	case StateError:
		return p.Problem
	case StateWaiting:
		return p.Name
	}
	return describe(p.Sets)
}

// Sublabel is the secondary status line: deloads, cycle position or what a
// count-up plan still needs.
func (p *Plan) Sublabel() string {
	if !p.Active() {
		return ""
	}
	var parts []string
	if p.DeloadPercent > 0 {
		parts = append(parts, fmt.Sprintf("deloaded by %d%%", p.DeloadPercent))
	}
	switch v := p.v.(type) {
	case *cycle:
		parts = append(parts, fmt.Sprintf("cycle %d of %d", p.Cycle+1, len(v.Steps)))
	case *vsets:
		parts = append(parts, fmt.Sprintf("%d of %d reps", total(p.Performed), v.TargetReps))
	}
	return strings.Join(parts, ", ")
}

// ProgressSummary describes the headline trend across the primary results
// in ledger.
func (p *Plan) ProgressSummary(ledger *history.Ledger) string {
	primary := ledger.Matching(func(r models.Result) bool { return r.Primary })
	if len(primary) == 0 {
		return "no history yet"
	}
	first, last := primary[0], primary[len(primary)-1]
	sessions := "session"
	if len(primary) > 1 {
		sessions = "sessions"
	}

	if first.Weight == 0 && last.Weight == 0 {
		if last.Seconds > 0 {
			return fmt.Sprintf("%s after %d %s (from %s)", clock(last.Seconds), len(primary), sessions, clock(first.Seconds))
		}
		return fmt.Sprintf("%d reps after %d %s (from %d)", last.Reps, len(primary), sessions, first.Reps)
	}
	if len(primary) == 1 {
		return fmt.Sprintf("%s after 1 session", number(last.Weight))
	}
	delta := last.Weight - first.Weight
	sign := "+"
	if delta < 0 {
		sign = "-"
		delta = -delta
	}
	return fmt.Sprintf("%s%s over %d sessions (%s to %s)", sign, number(delta), len(primary), number(first.Weight), number(last.Weight))
}

// RestInfo returns how long to rest after the current set.
func (p *Plan) RestInfo() (int, bool) {
	if !p.Active() || p.Cursor >= len(p.Sets) {
		return 0, false
	}
	rest := p.Sets[p.Cursor].Rest
	return rest, rest > 0
}

// describe renders work sets compactly: "3x5 @ 135 lbs", "5/3/1+ @ 200 lbs",
// "3x45s".
func describe(sets []models.SetSpec) string {
	var work []models.SetSpec
	for _, s := range sets {
		if !s.Warmup {
			work = append(work, s)
		}
	}
	if len(work) == 0 {
		return ""
	}

	last := work[len(work)-1]
	if last.Reps == 0 && last.Seconds > 0 {
		same := true
		secs := 0
		for _, s := range work {
			same = same && s.Seconds == last.Seconds
			secs += s.Seconds
		}
		if same && len(work) > 1 {
			return fmt.Sprintf("%dx%s", len(work), clock(last.Seconds))
		}
		return clock(secs)
	}

	same := true
	for _, s := range work {
		same = same && s.Reps == last.Reps
	}
	var out string
	if same {
		out = fmt.Sprintf("%dx%d", len(work), last.Reps)
	} else {
		reps := make([]string, len(work))
		for i, s := range work {
			reps[i] = strconv.Itoa(s.Reps)
		}
		out = strings.Join(reps, "/")
	}
	if last.Amrap {
		out += "+"
	}
	if last.Weight.Weight > 0 {
		out += " @ " + last.Weight.Text
	}
	return out
}

func clock(secs int) string {
	switch {
	case secs < 60:
		return fmt.Sprintf("%ds", secs)
	case secs%60 == 0:
		return fmt.Sprintf("%d min", secs/60)
	default:
		return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
	}
}

func number(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
