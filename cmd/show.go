package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/plan"
	"github.com/misterclayt0n/overload/internal/program"
	"github.com/misterclayt0n/overload/internal/utils"
)

var showCmd = &cobra.Command{
	Use:   "show [exercise]",
	Short: "Show the sets of the current exercise and what you can do next",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		p, name, err := a.target(exerciseArg(args))
		if err != nil {
			return err
		}
		if _, err := p.Exercise(name); err != nil {
			return err
		}
		printSession(p, name)
		return nil
	},
}

func printSession(p *program.Program, name string) {
	ex, err := p.Exercise(name)
	if err != nil {
		return
	}
	pl := ex.Running()

	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	fmt.Printf("%s  %s\n", yellow(ex.Name), pl.Label())
	if ex.Sub != nil {
		fmt.Printf("   %s %s, finding it first\n", red("Blocked:"), ex.Plan.Problem)
	}
	if sub := pl.Sublabel(); sub != "" {
		fmt.Printf("   %s\n", cyan(sub))
	}
	if best, ok := bestSet(ex.History.All()); ok {
		fmt.Printf("   %s %s × %d (1RM: %.1f)\n",
			cyan("Best set:"),
			strconv.FormatFloat(best.Weight, 'f', -1, 64),
			best.Reps,
			utils.CalculateEpley1RM(best.Weight, best.Reps))
	}

	if !pl.Active() {
		switch pl.State {
		case plan.StateFinished:
			fmt.Printf("   %s\n", green("Finished"))
		case plan.StateError:
			fmt.Printf("   %s %s\n", red("Error:"), pl.Problem)
		default:
			fmt.Printf("   %s\n", pl.State)
		}
		return
	}

	fmt.Println("\n   ┌───┬──────────────────┬────────┬──────────────────┬──────────────────────┐")
	fmt.Println("   │   │ Set              │ Reps   │ Weight           │ Plates               │")
	fmt.Println("   ├───┼──────────────────┼────────┼──────────────────┼──────────────────────┤")
	for i, s := range pl.Sets {
		marker := " "
		if i == pl.Cursor {
			marker = "→"
		}
		fmt.Printf("   │ %s │ %-16s │ %-6s │ %-16s │ %-20s │\n", marker, s.Title, reps(s), s.Weight.Text, s.Weight.Plates)
	}
	fmt.Println("   └───┴──────────────────┴────────┴──────────────────┴──────────────────────┘")

	cur := pl.Current()
	if cur.Subtitle != "" {
		fmt.Printf("   %s %s\n", cyan("Note:"), cur.Subtitle)
	}
	if rest, ok := pl.RestInfo(); ok {
		fmt.Printf("   %s %s\n", cyan("Rest after this set:"), clock(rest))
	}

	fmt.Println()
	for _, o := range pl.Options() {
		hint := ""
		switch o.Input {
		case plan.InputReps:
			hint = " --reps N"
		case plan.InputWeight:
			hint = " --weight W"
		}
		if o.ID == plan.ActNext {
			fmt.Printf("   %s  %s\n", green("next"), o.Label)
			continue
		}
		fmt.Printf("   %s  %s\n", green("done "+string(o.ID)+hint), o.Label)
	}
}

func reps(s models.SetSpec) string {
	switch {
	case s.Seconds > 0 && s.Reps == 0:
		return clock(s.Seconds)
	case s.Amrap:
		return fmt.Sprintf("%d+", s.Reps)
	default:
		return strconv.Itoa(s.Reps)
	}
}

// bestSet is the recorded result with the highest estimated one rep max.
func bestSet(results []models.Result) (models.Result, bool) {
	var best models.Result
	found := false
	for _, r := range results {
		if r.Weight <= 0 || r.Reps <= 0 || r.Missed {
			continue
		}
		if !found || utils.CalculateEpley1RM(r.Weight, r.Reps) > utils.CalculateEpley1RM(best.Weight, best.Reps) {
			best, found = r, true
		}
	}
	return best, found
}

func init() {
	rootCmd.AddCommand(showCmd)
}
