package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var dayFilter string // Optional workout filter.

var showProgramCmd = &cobra.Command{
	Use:   "show-program [name]",
	Short: "Display the workouts of a program and where each exercise stands (optionally filter by workout)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		name := programName
		if len(args) == 1 {
			name = args[0]
		}
		prog, err := a.programFor(name)
		if err != nil {
			return fmt.Errorf("failed to load program: %w", err)
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		fmt.Printf("\n%s\n", green(strings.ToUpper(prog.Name)))
		if prog.Description != "" {
			fmt.Printf("%s: %s\n", cyan("Description"), prog.Description)
		}
		fmt.Println(strings.Repeat("=", 60))

		for _, w := range prog.Workouts {
			if dayFilter != "" && !strings.EqualFold(w.Name, dayFilter) {
				continue
			}
			fmt.Printf("\n%s: %s\n", yellow("Workout"), w.Name)
			fmt.Println(strings.Repeat("-", 60))

			names := append(append([]string(nil), w.Exercises...), w.Optional...)
			for i, n := range names {
				ex, err := prog.Exercise(n)
				if err != nil {
					return err
				}
				title := ex.Name
				if i >= len(w.Exercises) {
					title += " (optional)"
				}
				fmt.Printf("%d. %s\n", i+1, title)
				if ex.Formal != "" {
					fmt.Printf("   %s: %s\n", cyan("Formal"), ex.Formal)
				}
				fmt.Printf("   %s: %s (%s)\n", cyan("Plan"), ex.Plan.Name, ex.Plan.Kind)
				fmt.Printf("   %s: %s\n", cyan("Progress"), ex.Plan.ProgressSummary(ex.History))
				if ex.Description != "" {
					fmt.Printf("   %s: %s\n", cyan("Notes"), ex.Description)
				}
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showProgramCmd)
	showProgramCmd.Flags().StringVarP(&dayFilter, "day", "d", "", "Filter by workout name")
}
