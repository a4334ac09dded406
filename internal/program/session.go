package program

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/plan"
)

func (p *Program) entry(name string) *logrus.Entry {
	return p.log.WithField("exercise", name)
}

// Start begins a session of the named exercise as part of workout. When its
// plan is blocked the rep max finder it hands back runs instead.
func (p *Program) Start(workout, name string) error {
	ex, err := p.Exercise(name)
	if err != nil {
		return err
	}
	w, err := p.FindWorkout(workout)
	if err != nil {
		return err
	}
	if !w.Has(name) {
		return fmt.Errorf("%s isn't part of workout %s", name, workout)
	}

	ex.Sub = nil
	sub, err := ex.Plan.Start(p, workout, name)
	if err != nil {
		p.entry(name).WithError(err).Warn("plan failed to start")
		return err
	}
	if sub != nil {
		ex.Sub = sub
		p.entry(name).WithField("problem", ex.Plan.Problem).Info("plan blocked, finding a rep max first")
		return p.SaveExercise(name)
	}
	p.entry(name).WithField("sets", len(ex.Plan.Sets)).Info("session started")
	return nil
}

// running returns the exercise and its plan, which must be mid-session.
func (p *Program) running(name string) (*Exercise, *plan.Plan, error) {
	ex, err := p.Exercise(name)
	if err != nil {
		return nil, nil, err
	}
	pl := ex.Running()
	if !pl.Active() {
		return nil, nil, fmt.Errorf("%s has no session in progress (%s)", name, pl.State)
	}
	return ex, pl, nil
}

// Current returns the set to do now.
func (p *Program) Current(name string) (models.SetSpec, error) {
	_, pl, err := p.running(name)
	if err != nil {
		return models.SetSpec{}, err
	}
	return pl.Current(), nil
}

func (p *Program) Options(name string) ([]plan.Action, error) {
	_, pl, err := p.running(name)
	if err != nil {
		return nil, err
	}
	return pl.Options(), nil
}

// Next moves past the current set.
func (p *Program) Next(name string) error {
	_, pl, err := p.running(name)
	if err != nil {
		return err
	}
	return pl.Next(p)
}

// Invoke performs action on the running plan. Once a rep max finder is done
// the exercise's own plan starts with the weight it found.
func (p *Program) Invoke(name string, action plan.Action) error {
	ex, pl, err := p.running(name)
	if err != nil {
		return err
	}
	if !hasAction(pl.Options(), action.ID) {
		return fmt.Errorf("%s can't %s right now", name, action.ID)
	}
	if err := pl.Invoke(p, action); err != nil {
		return err
	}
	if pl.State != plan.StateFinished {
		return nil
	}

	p.entry(name).WithFields(logrus.Fields{
		"plan":   pl.Kind,
		"action": action.ID,
		"weight": ex.Setting.Weight,
	}).Info("session finished")

	if pl == ex.Sub {
		ex.Sub = nil
		return p.Start(ex.Plan.Workout, name)
	}
	return nil
}

func hasAction(actions []plan.Action, id plan.ActionID) bool {
	for _, a := range actions {
		if a.ID == id {
			return true
		}
	}
	return false
}

// Reset starts the running session over, picking up setting changes.
func (p *Program) Reset(name string) error {
	ex, err := p.Exercise(name)
	if err != nil {
		return err
	}
	if ex.Plan.Exercise == "" {
		return fmt.Errorf("%s was never started", name)
	}
	ex.Sub = nil
	sub, err := ex.Plan.Reset(p)
	if err != nil {
		return err
	}
	if sub != nil {
		ex.Sub = sub
		return p.SaveExercise(name)
	}
	return nil
}

// Refresh rebuilds the sets of a session in progress without moving it.
func (p *Program) Refresh(name string) error {
	ex, err := p.Exercise(name)
	if err != nil {
		return err
	}
	return p.refresh(ex)
}

// refresh rebuilds the running plan. When the exercise's own plan ends up
// blocked its rep max finder is installed.
func (p *Program) refresh(ex *Exercise) error {
	running := ex.Running()
	sub, err := running.Refresh(p)
	if err != nil || sub == nil || running != ex.Plan {
		return err
	}
	ex.Sub = sub
	p.entry(ex.Name).WithField("problem", ex.Plan.Problem).Info("plan blocked, finding a rep max first")
	return p.SaveExercise(ex.Name)
}

// EditSetting changes the setting of an exercise and rebuilds a session in
// progress to match.
func (p *Program) EditSetting(name string, edit func(*models.Setting) error) error {
	ex, err := p.Exercise(name)
	if err != nil {
		return err
	}
	if err := edit(&ex.Setting); err != nil {
		return err
	}
	if err := p.SaveExercise(name); err != nil {
		return err
	}
	p.entry(name).Info("setting changed")
	return p.refresh(ex)
}

// DeleteResult removes one entry of an exercise's history. The setting is
// left alone.
func (p *Program) DeleteResult(name string, index int) (models.Result, error) {
	ex, err := p.Exercise(name)
	if err != nil {
		return models.Result{}, err
	}
	removed, err := ex.History.RemoveAt(index)
	if err != nil {
		return models.Result{}, err
	}
	return removed, p.SaveExercise(name)
}

// Cancel abandons the session of an exercise without recording anything.
func (p *Program) Cancel(name string) error {
	ex, err := p.Exercise(name)
	if err != nil {
		return err
	}
	ex.Sub = nil
	ex.Plan.Abandon()
	return p.SaveExercise(name)
}
