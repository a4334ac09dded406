// Package plan implements the per-exercise state machines that expand a
// setting into the sets of a session and progress the setting once the
// session is finished.
//
// A Plan moves waiting → started → underway → finished. Start may instead
// leave it blocked (no baseline weight yet, a rep max finder is returned in
// its place) or in error (something it needs is missing or invalid).
// Reading the current set or invoking an action in a state that doesn't allow
// it panics with an *InvariantViolation.
package plan

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/misterclayt0n/overload/internal/errors"
	"github.com/misterclayt0n/overload/internal/history"
	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/utils"
)

type Kind string

const (
	KindLinear  Kind = "linear"
	KindCycle   Kind = "cycle"
	KindAmrap   Kind = "amrap"
	KindPercent Kind = "percent"
	KindVReps   Kind = "vreps"
	KindVSets   Kind = "vsets"
	KindTimed   Kind = "timed"
	KindHIIT    Kind = "hiit"
	KindSteady  Kind = "steady"
	KindRepMax  Kind = "repmax"
)

type State string

const (
	StateWaiting  State = "waiting"
	StateStarted  State = "started"
	StateUnderway State = "underway"
	StateFinished State = "finished"
	StateBlocked  State = "blocked"
	StateError    State = "error"
)

// Env is what a plan needs from the program hosting it. Settings and ledgers
// are owned by the host; a plan looks them up on every operation and never
// keeps them.
type Env interface {
	FindSetting(exercise string) (*models.Setting, error)
	FindHistory(exercise string) (*history.Ledger, error)
	FindPlan(exercise string) (*Plan, error)
	FindWorkout(name string) (models.Workout, error)
	// SaveExercise persists the exercise after a plan changed it.
	SaveExercise(exercise string) error
	Now() time.Time
}

type ActionID string

const (
	ActNext     ActionID = "next"
	ActAdvance  ActionID = "advance"
	ActAdvance2 ActionID = "advance2"
	ActHold     ActionID = "hold"
	ActDeload   ActionID = "deload"
	ActFinished ActionID = "finished"
	ActMissed   ActionID = "missed"
	ActReps     ActionID = "reps"
	ActWeight   ActionID = "weight"
)

// Input names the value an action needs from the user before it is invoked.
type Input string

const (
	InputNone   Input = ""
	InputReps   Input = "reps"
	InputWeight Input = "weight"
)

// Action is one choice offered by Options. Reps or Weight carry the user's
// value for actions that ask for one.
type Action struct {
	ID     ActionID
	Label  string
	Input  Input
	Reps   int
	Weight float64
}

var (
	actNext     = Action{ID: ActNext, Label: "Next"}
	actAdvance  = Action{ID: ActAdvance, Label: "Advance"}
	actAdvance2 = Action{ID: ActAdvance2, Label: "Advance x2"}
	actHold     = Action{ID: ActHold, Label: "Don't Advance"}
	actDeload   = Action{ID: ActDeload, Label: "Deload"}
	actFinished = Action{ID: ActFinished, Label: "Finished"}
	actMissed   = Action{ID: ActMissed, Label: "Missed a rep"}
	actReps     = Action{ID: ActReps, Label: "Record reps", Input: InputReps}
	actWeight   = Action{ID: ActWeight, Label: "Record weight", Input: InputWeight}
)

// Plan is one exercise's session. The exported fields are its persisted
// state; the progression parameters live in the kind specific payload.
type Plan struct {
	Name     string           `json:"name"`
	Kind     Kind             `json:"kind"`
	Exercise string           `json:"exercise"`
	Workout  string           `json:"workout"`
	Sets     []models.SetSpec `json:"sets"`
	Cursor   int              `json:"cursor"`
	State    State            `json:"state"`
	Problem  string           `json:"problem,omitempty"`
	Modified time.Time        `json:"modified"`

	Performed     []int `json:"performed,omitempty"` // Reps recorded per set by count-up plans.
	DeloadPercent int   `json:"deload_percent,omitempty"`
	Cycle         int   `json:"cycle,omitempty"`

	v variant
}

// variant is the closed set of progression policies.
type variant interface {
	kind() Kind
	validate() error
	build(s *session) ([]models.SetSpec, error)
	options(p *Plan) []Action
	// finish applies the progression for a. A nil result means the plan
	// keeps going.
	finish(s *session, a Action) (*models.Result, error)
}

func newPlan(name string, v variant) *Plan {
	return &Plan{Name: name, Kind: v.kind(), State: StateWaiting, v: v}
}

// InvariantViolation is the panic value for operations a plan's state
// doesn't allow.
type InvariantViolation struct {
	Op     string
	State  State
	Detail string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("plan: %s while %s: %s", e.Op, e.State, e.Detail)
}

func (p *Plan) violate(op, format string, args ...any) {
	panic(&InvariantViolation{Op: op, State: p.State, Detail: fmt.Sprintf(format, args...)})
}

// Active reports whether the plan is mid-session.
func (p *Plan) Active() bool {
	return p.State == StateStarted || p.State == StateUnderway
}

// Start builds the sets for a new session of exercise within workout. When
// there is no baseline weight yet the plan becomes blocked and a rep max
// finder for the same exercise is returned to run in its place. Errors are
// configuration problems; the plan is left in the error state with the
// message in Problem.
func (p *Plan) Start(env Env, workout, exercise string) (*Plan, error) {
	p.Workout, p.Exercise = workout, exercise
	p.Sets, p.Cursor, p.Performed = nil, 0, nil
	p.Problem, p.DeloadPercent, p.Cycle = "", 0, 0
	p.Modified = env.Now()

	if err := p.rebuild(env); err != nil {
		return p.setback(env, err)
	}
	p.State = StateStarted
	return nil, p.save(env)
}

// setback records why the sets couldn't be built. A missing baseline blocks
// the plan and hands back a rep max finder; anything else is an error.
func (p *Plan) setback(env Env, err error) (*Plan, error) {
	if !errors.IsCode(err, errors.CodeBlocked) {
		p.fail(err)
		if serr := p.save(env); serr != nil {
			return nil, serr
		}
		return nil, err
	}

	p.State = StateBlocked
	p.Problem = err.Error()
	p.Sets, p.Cursor, p.Performed = nil, 0, nil
	sub := newPlan("Find "+p.Name+" baseline", &repMax{Reps: repTarget(p.v)})
	if _, err := sub.Start(env, p.Workout, p.Exercise); err != nil {
		return nil, err
	}
	return sub, p.save(env)
}

// Reset starts the session over from the first set, picking up any changes
// made to the setting. History is left alone.
func (p *Plan) Reset(env Env) (*Plan, error) {
	if p.Exercise == "" {
		p.violate("reset", "plan was never started")
	}
	return p.Start(env, p.Workout, p.Exercise)
}

// Refresh rebuilds the sets of an active session in place, keeping the
// cursor, after the setting changed. A setting that lost its weight blocks
// the plan and a rep max finder is returned, as with Start.
func (p *Plan) Refresh(env Env) (*Plan, error) {
	if !p.Active() {
		return nil, nil
	}
	if err := p.rebuild(env); err != nil {
		return p.setback(env, err)
	}
	if p.Cursor > len(p.Sets)-1 {
		p.Cursor = len(p.Sets) - 1
	}
	p.Modified = env.Now()
	return nil, p.save(env)
}

// Expire abandons a session left unfinished on an earlier day. It reports
// whether the plan was reset to waiting.
func (p *Plan) Expire(now time.Time) bool {
	if p.State == StateWaiting || p.State == StateFinished {
		return false
	}
	if utils.SameDay(p.Modified, now) {
		return false
	}
	p.Abandon()
	return true
}

// Abandon drops an unfinished session without recording anything.
func (p *Plan) Abandon() {
	if p.State == StateFinished {
		return
	}
	p.State = StateWaiting
	p.Sets, p.Cursor, p.Performed = nil, 0, nil
	p.Problem, p.DeloadPercent = "", 0
}

// Current returns the set at the cursor.
func (p *Plan) Current() models.SetSpec {
	if !p.Active() {
		p.violate("current", "no set to show")
	}
	if p.Cursor < 0 || p.Cursor >= len(p.Sets) {
		p.violate("current", "cursor %d outside %d sets", p.Cursor, len(p.Sets))
	}
	return p.Sets[p.Cursor]
}

// Next moves to the following set.
func (p *Plan) Next(env Env) error {
	if !p.Active() {
		p.violate("next", "plan isn't running")
	}
	if p.Cursor >= len(p.Sets)-1 {
		p.violate("next", "already at the last set")
	}
	p.Cursor++
	p.State = StateUnderway
	p.Modified = env.Now()
	return p.save(env)
}

// Options lists what the user can do with the current set: move on while
// sets remain, otherwise the plan's way of finishing.
func (p *Plan) Options() []Action {
	if !p.Active() {
		return nil
	}
	if p.Cursor < len(p.Sets)-1 {
		return []Action{actNext}
	}
	return p.v.options(p)
}

// Invoke performs one of the actions from Options. Finishing actions append
// a result to the exercise's history, progress its setting and leave the
// plan finished. Invalid user input is reported as a misconfiguration and
// changes nothing.
func (p *Plan) Invoke(env Env, a Action) error {
	if !p.Active() {
		p.violate("invoke", "plan isn't running")
	}
	if !slices.ContainsFunc(p.Options(), func(o Action) bool { return o.ID == a.ID }) {
		p.violate("invoke", "action %q isn't available", a.ID)
	}
	if a.ID == ActNext {
		return p.Next(env)
	}

	s, err := p.session(env)
	if err != nil {
		return err
	}
	result, err := p.v.finish(s, a)
	if err != nil {
		return err
	}
	p.Modified = s.now
	if result == nil {
		p.State = StateUnderway
		return p.save(env)
	}

	result.ID = uuid.NewString()
	result.Date = s.now
	result.Plan = string(p.Kind)
	if result.Title == "" {
		result.Title = describe(p.Sets)
	}
	s.ledger.Append(*result)

	p.Cursor = len(p.Sets)
	p.State = StateFinished
	return p.save(env)
}

func (p *Plan) rebuild(env Env) error {
	s, err := p.session(env)
	if err != nil {
		return err
	}
	sets, err := p.v.build(s)
	if err != nil {
		return err
	}
	if len(sets) == 0 {
		return errors.Misconfigured("%s has no sets to do", p.Exercise)
	}
	p.Sets = sets
	return nil
}

func (p *Plan) fail(err error) {
	p.State = StateError
	p.Problem = err.Error()
	p.Sets, p.Cursor = nil, 0
}

func (p *Plan) save(env Env) error {
	return env.SaveExercise(p.Exercise)
}

// Params returns the kind specific payload, for display.
func (p *Plan) Params() any {
	return p.v
}
