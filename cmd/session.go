package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/overload/internal/plan"
	"github.com/misterclayt0n/overload/internal/program"
	"github.com/misterclayt0n/overload/internal/utils"
)

var (
	exerciseFlag string
	doneReps     int
	doneWeight   float64
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Move on to the next set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		p, name, err := a.target(exerciseFlag)
		if err != nil {
			return err
		}
		if err := p.Next(name); err != nil {
			return err
		}
		printSession(p, name)
		return nil
	},
}

var doneCmd = &cobra.Command{
	Use:   "done [action]",
	Short: "Finish the exercise with one of the actions shown by show",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		p, name, err := a.target(exerciseFlag)
		if err != nil {
			return err
		}
		opts, err := p.Options(name)
		if err != nil {
			return err
		}

		action, err := pickAction(opts, args)
		if err != nil {
			return err
		}
		switch action.Input {
		case plan.InputReps:
			if !cmd.Flags().Changed("reps") {
				return fmt.Errorf("%s needs --reps", action.ID)
			}
			action.Reps = doneReps
		case plan.InputWeight:
			if !cmd.Flags().Changed("weight") {
				return fmt.Errorf("%s needs --weight", action.ID)
			}
			action.Weight = doneWeight
		}

		ex, err := p.Exercise(name)
		if err != nil {
			return err
		}
		finding := ex.Sub != nil

		if err := p.Invoke(name, action); err != nil {
			return fmt.Errorf("Failed to finish %s: %w", name, err)
		}

		if finding && ex.Sub == nil {
			fmt.Printf("✅ Baseline found for %s: %s\n", name, ex.Plan.Label())
			printSession(p, name)
			return nil
		}
		if ex.Plan.State != plan.StateFinished {
			printSession(p, name)
			return nil
		}

		if r, ok := ex.History.Last(); ok {
			fmt.Printf("✅ %s finished: %s\n", name, r.Title)
		}
		return advance(p, name)
	},
}

// pickAction matches the action named in args against opts. With no name
// the only option is taken.
func pickAction(opts []plan.Action, args []string) (plan.Action, error) {
	if len(args) == 0 {
		if len(opts) == 1 {
			return opts[0], nil
		}
		ids := make([]string, len(opts))
		for i, o := range opts {
			ids[i] = string(o.ID)
		}
		return plan.Action{}, fmt.Errorf("pick one of: %s", strings.Join(ids, ", "))
	}
	for _, o := range opts {
		if string(o.ID) == args[0] {
			return o, nil
		}
	}
	return plan.Action{}, fmt.Errorf("%q isn't available right now", args[0])
}

// advance moves the session on to the next exercise of the workout.
func advance(p *program.Program, name string) error {
	state, err := utils.LoadSessionState()
	if err != nil || state.Exercise != name {
		return nil
	}
	w, err := p.FindWorkout(state.Workout)
	if err != nil {
		return nil
	}

	next := following(p, w, name)
	if next == "" {
		fmt.Printf("🏁 Workout %s complete\n", w.Name)
		return utils.ClearSessionState()
	}
	if err := p.Start(w.Name, next); err != nil {
		return fmt.Errorf("Failed to start %s: %w", next, err)
	}
	if err := saveSession(p, w.Name, next); err != nil {
		return err
	}
	fmt.Printf("Next up: %s\n\n", next)
	printSession(p, next)
	return nil
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Start the current exercise over from its first set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		p, name, err := a.target(exerciseFlag)
		if err != nil {
			return err
		}
		if err := p.Reset(name); err != nil {
			return fmt.Errorf("Failed to reset %s: %w", name, err)
		}
		fmt.Printf("✅ %s reset\n", name)
		printSession(p, name)
		return nil
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Abandon the current exercise without recording anything",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		p, name, err := a.target(exerciseFlag)
		if err != nil {
			return err
		}
		if err := p.Cancel(name); err != nil {
			return fmt.Errorf("Failed to cancel %s: %w", name, err)
		}
		if exerciseFlag == "" {
			if err := utils.ClearSessionState(); err != nil {
				return err
			}
		}
		fmt.Printf("✅ %s cancelled\n", name)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{nextCmd, doneCmd, resetCmd, cancelCmd} {
		rootCmd.AddCommand(c)
		c.Flags().StringVarP(&exerciseFlag, "exercise", "e", "", "Exercise name (defaults to the current session's)")
	}
	doneCmd.Flags().IntVar(&doneReps, "reps", 0, "Reps done, for actions that record them")
	doneCmd.Flags().Float64Var(&doneWeight, "weight", 0, "Weight lifted, for actions that record it")
}
