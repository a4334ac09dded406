package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/plan"
	"github.com/misterclayt0n/overload/internal/program"
	"github.com/misterclayt0n/overload/internal/utils"
)

var restart bool

var startCmd = &cobra.Command{
	Use:   "start [workout] [exercise]",
	Short: "Start the next exercise of a workout, or the named one",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.programFor(programName)
		if err != nil {
			return err
		}
		w, err := p.FindWorkout(args[0])
		if err != nil {
			return err
		}

		name := ""
		if len(args) == 2 {
			name = args[1]
		} else if name = pending(p, w); name == "" {
			fmt.Printf("✅ Workout %s is done for today\n", w.Name)
			return nil
		}

		ex, err := p.Exercise(name)
		if err != nil {
			return err
		}
		if restart || !ex.Running().Active() {
			if err := p.Start(w.Name, name); err != nil {
				return fmt.Errorf("Failed to start %s: %w", name, err)
			}
		}
		if err := saveSession(p, w.Name, name); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		printSession(p, name)
		return nil
	},
}

// pending returns the first required exercise of w not finished today.
func pending(p *program.Program, w models.Workout) string {
	now := p.Now()
	for _, name := range w.Exercises {
		ex, err := p.Exercise(name)
		if err != nil {
			continue
		}
		pl := ex.Running()
		if pl.State == plan.StateFinished && utils.SameDay(pl.Modified, now) {
			continue
		}
		return name
	}
	return ""
}

// following returns the exercise after name in w, skipping ones already
// finished today.
func following(p *program.Program, w models.Workout, name string) string {
	for i, n := range w.Exercises {
		if n != name {
			continue
		}
		rest := models.Workout{Name: w.Name, Exercises: w.Exercises[i+1:]}
		return pending(p, rest)
	}
	return ""
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().BoolVarP(&restart, "restart", "r", false, "Start over even if a session is in progress")
}
