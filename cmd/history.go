package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/overload/internal/apparatus"
	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/program"
	"github.com/misterclayt0n/overload/internal/utils"
)

var filterDay string

// historyCmd lists the recorded results of one exercise, or of every
// exercise of the program.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display recorded results, optionally for one exercise and/or day",
	Args:  cobra.NoArgs,
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

		var day time.Time
		if filterDay != "" {
			day, err = time.ParseInLocation("2006-01-02", filterDay, time.Local)
			if err != nil {
				day, err = time.ParseInLocation("02/01/06", filterDay, time.Local)
			}
			if err != nil {
				return fmt.Errorf("failed to parse day: %w", err)
			}
		}

		exercises := p.Exercises()
		if exerciseFlag != "" {
			ex, err := p.Exercise(exerciseFlag)
			if err != nil {
				return err
			}
			exercises = []*program.Exercise{ex}
		}

		yellow := color.New(color.FgYellow).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		for _, ex := range exercises {
			results := ex.History.All()
			if len(results) == 0 && exerciseFlag == "" {
				continue
			}
			fmt.Printf("%s  %s\n", yellow(ex.Name), cyan(ex.Plan.ProgressSummary(ex.History)))
			unit := ex.Setting.Units()
			if unit == "" {
				unit = a.cfg.Training.Unit
			}
			for i, r := range results {
				if !day.IsZero() && !utils.SameDay(day, r.Date) {
					continue
				}
				fmt.Printf("  %3d  %s  %s", i, utils.FormatDate(r.Date), r.Title)
				if r.Weight > 0 && !r.Primary {
					fmt.Printf(" (%s)", apparatus.FormatWeight(r.Weight, unit))
				}
				if r.Missed {
					fmt.Printf(" %s", red("missed"))
				}
				if r.Note != "" {
					fmt.Printf(" | %s", r.Note)
				}
				fmt.Println()
			}
			fmt.Println()
		}
		return nil
	},
}

var deleteResultCmd = &cobra.Command{
	Use:   "delete-result [index]",
	Short: "Delete one entry of an exercise's history by the index history shows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index: %s", args[0])
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		p, name, err := a.target(exerciseFlag)
		if err != nil {
			return err
		}
		removed, err := p.DeleteResult(name, index)
		if err != nil {
			return fmt.Errorf("Failed to delete result: %w", err)
		}

		fmt.Printf("✅ Deleted %s from %s (%s)\n", removed.Title, name, utils.FormatDateTime(removed.Date))
		return nil
	},
}

func allResults(p *program.Program) []models.Result {
	var all []models.Result
	for _, ex := range p.Exercises() {
		all = append(all, ex.History.All()...)
	}
	return all
}

func init() {
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(deleteResultCmd)
	historyCmd.Flags().StringVarP(&exerciseFlag, "exercise", "e", "", "Only this exercise")
	historyCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (e.g. 2025-02-07 or 07/02/25)")
	deleteResultCmd.Flags().StringVarP(&exerciseFlag, "exercise", "e", "", "Exercise name (defaults to the current session's)")
}
