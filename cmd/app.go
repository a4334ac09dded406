package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/misterclayt0n/overload/internal/config"
	"github.com/misterclayt0n/overload/internal/logging"
	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/program"
	"github.com/misterclayt0n/overload/internal/storage"
	"github.com/misterclayt0n/overload/internal/utils"
)

// app is what every command needs: the config, logging set up from it and
// an open database.
type app struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    *config.Config
	st     *storage.Storage
}

func openApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logging.Setup(logging.Params{
		Level:      cfg.Log.Level,
		FileName:   cfg.Log.Path,
		ToStderr:   cfg.Log.ToStderr,
		FormatJSON: cfg.Log.JSON,
	})

	st, err := storage.Open(cfg.DB.ConnectionString, cfg.DB.AuthToken)
	if err != nil {
		return nil, err
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	return &app{ctx: ctx, cancel: cancel, cfg: cfg, st: st}, nil
}

func (a *app) Close() {
	a.cancel()
	_ = a.st.Close()
}

// programFor picks the program to work on: the --program flag, then the
// current session's, then the only program in the database.
func (a *app) programFor(name string) (*program.Program, error) {
	if name == "" {
		if state, err := utils.LoadSessionState(); err == nil {
			name = state.Program
		}
	}
	if name == "" {
		programs, err := a.st.ListPrograms(a.ctx)
		if err != nil {
			return nil, err
		}
		switch len(programs) {
		case 0:
			return nil, fmt.Errorf("no programs yet, import one with import-program")
		case 1:
			name = programs[0].Name
		default:
			return nil, fmt.Errorf("more than one program, pick one with --program")
		}
	}
	return program.Load(a.ctx, a.st, name, time.Now)
}

// target resolves the program and exercise a session command acts on. An
// empty exercise means the current session's.
func (a *app) target(exercise string) (*program.Program, string, error) {
	p, err := a.programFor(programName)
	if err != nil {
		return nil, "", err
	}
	if exercise != "" {
		return p, exercise, nil
	}
	state, err := utils.LoadSessionState()
	if err != nil || state.Exercise == "" {
		return nil, "", fmt.Errorf("no active session, start one with start or name the exercise")
	}
	return p, state.Exercise, nil
}

func exerciseArg(args []string) string {
	return strings.Join(args, " ")
}

func saveSession(p *program.Program, workout, exercise string) error {
	return utils.SaveSessionState(&models.SessionState{
		Program:  p.Name,
		Workout:  workout,
		Exercise: exercise,
	})
}

// clock formats a duration in seconds as m:ss.
func clock(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
