// Package program hosts the exercises of one training program: it owns
// their settings and histories, answers the lookups plans make, and saves
// an exercise after every change.
package program

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/misterclayt0n/overload/internal/errors"
	"github.com/misterclayt0n/overload/internal/history"
	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/plan"
)

// Store persists catalogs and exercise documents. *storage.Storage
// implements it.
type Store interface {
	SaveProgram(ctx context.Context, catalog models.Catalog) error
	GetProgram(ctx context.Context, name string) (*models.Catalog, error)
	SaveExercise(ctx context.Context, program, name string, body []byte) error
	LoadExercises(ctx context.Context, program string) (map[string][]byte, error)
	DeleteExercises(ctx context.Context, program string, names ...string) error
}

// Exercise is everything persisted for one exercise. Sub is the rep max
// finder running while Plan is blocked.
type Exercise struct {
	Name        string          `json:"name"`
	Formal      string          `json:"formal,omitempty"`
	Description string          `json:"description,omitempty"`
	Setting     models.Setting  `json:"setting"`
	Plan        *plan.Plan      `json:"plan"`
	Sub         *plan.Plan      `json:"sub,omitempty"`
	History     *history.Ledger `json:"history"`
}

// Running returns the plan the user is working through: the sub plan when
// there is one.
func (e *Exercise) Running() *plan.Plan {
	if e.Sub != nil {
		return e.Sub
	}
	return e.Plan
}

type Program struct {
	Name        string
	Description string
	Workouts    []models.Workout

	exercises map[string]*Exercise
	order     []string
	orphans   []string // Stored exercises the catalog no longer has.

	// ctx is used for the saves plans trigger through SaveExercise.
	ctx   context.Context
	store Store
	clock func() time.Time
	log   *logrus.Entry
}

// New builds a program in its initial state from catalog. Every exercise
// starts with the setting and plan its definition declares and no history.
func New(ctx context.Context, catalog models.Catalog, store Store, clock func() time.Time) (*Program, error) {
	if clock == nil {
		clock = time.Now
	}
	p := &Program{
		Name:        catalog.Name,
		Description: catalog.Description,
		Workouts:    catalog.Workouts,
		exercises:   make(map[string]*Exercise, len(catalog.Exercises)),
		ctx:         ctx,
		store:       store,
		clock:       clock,
		log:         logrus.WithField("program", catalog.Name),
	}

	now := clock()
	var errs error
	for _, def := range catalog.Exercises {
		if _, dup := p.exercises[def.Name]; dup {
			errs = multierr.Append(errs, errors.Misconfigured("exercise %s is declared twice", def.Name))
			continue
		}
		ex, err := newExercise(def, now)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		p.exercises[def.Name] = ex
		p.order = append(p.order, def.Name)
	}
	for _, w := range catalog.Workouts {
		for _, name := range append(append([]string(nil), w.Exercises...), w.Optional...) {
			if _, ok := p.exercises[name]; !ok {
				errs = multierr.Append(errs, errors.Misconfigured("workout %s uses unknown exercise %s", w.Name, name))
			}
		}
	}
	if errs != nil {
		return nil, errs
	}
	return p, nil
}

func newExercise(def models.ExerciseDef, now time.Time) (*Exercise, error) {
	setting, err := def.Setting(now)
	if err != nil {
		return nil, errors.Misconfigured("exercise %s: %v", def.Name, err)
	}
	pl, err := plan.FromDef(def.Plan)
	if err != nil {
		return nil, errors.Misconfigured("exercise %s: %v", def.Name, err)
	}
	return &Exercise{
		Name:        def.Name,
		Formal:      def.Formal,
		Description: def.Description,
		Setting:     setting,
		Plan:        pl,
		History:     history.New(),
	}, nil
}

// Import validates catalog and stores it.
func Import(ctx context.Context, store Store, catalog models.Catalog) error {
	if _, err := New(ctx, catalog, store, nil); err != nil {
		return err
	}
	return store.SaveProgram(ctx, catalog)
}

// Load reads the named program and the stored state of its exercises.
// Sessions left unfinished on an earlier day are abandoned.
func Load(ctx context.Context, store Store, name string, clock func() time.Time) (*Program, error) {
	catalog, err := store.GetProgram(ctx, name)
	if err != nil {
		return nil, err
	}
	p, err := New(ctx, *catalog, store, clock)
	if err != nil {
		return nil, err
	}

	docs, err := store.LoadExercises(ctx, name)
	if err != nil {
		return nil, err
	}
	for exName, body := range docs {
		fresh, ok := p.exercises[exName]
		if !ok {
			p.log.WithField("exercise", exName).Warn("ignoring state of an exercise no longer in the program")
			p.orphans = append(p.orphans, exName)
			continue
		}
		var stored Exercise
		if err := json.Unmarshal(body, &stored); err != nil {
			return nil, fmt.Errorf("Failed to decode exercise %s: %w", exName, err)
		}
		p.exercises[exName] = merge(fresh, &stored)
	}

	if _, err := p.Resume(); err != nil {
		return nil, err
	}
	return p, nil
}

// Prune deletes the stored state of exercises that were dropped from the
// catalog and returns their names.
func (p *Program) Prune() ([]string, error) {
	if len(p.orphans) == 0 || p.store == nil {
		return nil, nil
	}
	pruned := p.orphans
	if err := p.store.DeleteExercises(p.ctx, p.Name, pruned...); err != nil {
		return nil, err
	}
	p.orphans = nil
	return pruned, nil
}

// merge keeps the stored state but follows the catalog when the plan or the
// descriptive fields changed since it was saved.
func merge(fresh, stored *Exercise) *Exercise {
	stored.Name = fresh.Name
	stored.Formal = fresh.Formal
	stored.Description = fresh.Description
	if stored.History == nil {
		stored.History = history.New()
	}
	if stored.Plan == nil || stored.Plan.Kind != fresh.Plan.Kind || stored.Plan.Name != fresh.Plan.Name {
		stored.Plan = fresh.Plan
		stored.Sub = nil
	}
	return stored
}

// Resume abandons sessions that were left unfinished on an earlier day and
// returns the exercises it reset.
func (p *Program) Resume() ([]string, error) {
	now := p.clock()
	var expired []string
	var errs error
	for _, name := range p.order {
		ex := p.exercises[name]
		changed := ex.Plan.Expire(now)
		if ex.Sub != nil && (ex.Sub.Expire(now) || ex.Sub.State == plan.StateWaiting) {
			ex.Sub = nil
			changed = true
		}
		if changed {
			expired = append(expired, name)
			errs = multierr.Append(errs, p.SaveExercise(name))
		}
	}
	if len(expired) > 0 {
		p.log.WithField("exercises", expired).Info("abandoned sessions from an earlier day")
	}
	return expired, errs
}

// Exercises returns the exercises in catalog order.
func (p *Program) Exercises() []*Exercise {
	out := make([]*Exercise, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, p.exercises[name])
	}
	return out
}

func (p *Program) Exercise(name string) (*Exercise, error) {
	ex, ok := p.exercises[name]
	if !ok {
		return nil, errors.NotFound("no exercise named %s in %s", name, p.Name)
	}
	return ex, nil
}

//
// plan.Env
//

func (p *Program) FindSetting(name string) (*models.Setting, error) {
	ex, err := p.Exercise(name)
	if err != nil {
		return nil, err
	}
	return &ex.Setting, nil
}

func (p *Program) FindHistory(name string) (*history.Ledger, error) {
	ex, err := p.Exercise(name)
	if err != nil {
		return nil, err
	}
	return ex.History, nil
}

func (p *Program) FindPlan(name string) (*plan.Plan, error) {
	ex, err := p.Exercise(name)
	if err != nil {
		return nil, err
	}
	return ex.Plan, nil
}

func (p *Program) FindWorkout(name string) (models.Workout, error) {
	for _, w := range p.Workouts {
		if w.Name == name {
			return w, nil
		}
	}
	return models.Workout{}, errors.NotFound("no workout named %s in %s", name, p.Name)
}

func (p *Program) SaveExercise(name string) error {
	ex, err := p.Exercise(name)
	if err != nil {
		return err
	}
	body, err := json.Marshal(ex)
	if err != nil {
		return fmt.Errorf("Failed to encode exercise %s: %w", name, err)
	}
	if p.store == nil {
		return nil
	}
	if err := p.store.SaveExercise(p.ctx, p.Name, name, body); err != nil {
		return err
	}
	p.log.WithField("exercise", name).Debug("saved exercise")
	return nil
}

func (p *Program) Now() time.Time {
	return p.clock()
}
