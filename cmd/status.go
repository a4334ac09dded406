package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/plan"
	"github.com/misterclayt0n/overload/internal/utils"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show training days, week streak, misses and where every exercise stands",
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
		results := allResults(p)

		days := make(map[string]bool)
		missed := 0
		for _, r := range results {
			days[r.Date.Local().Format("2006-01-02")] = true
			if r.Missed {
				missed++
			}
		}

		printBoxedHeader(strings.ToUpper(p.Name))

		printMetric("Training days", len(days))
		printMetric("Results recorded", len(results))
		printMetric("Missed sessions", missed)
		printMetric("Week streak", fmt.Sprintf("%d weeks", computeWeekStreak(results, time.Now())))
		if state, err := utils.LoadSessionState(); err == nil && state.Program == p.Name {
			printMetric("Current", fmt.Sprintf("%s / %s", state.Workout, state.Exercise))
		}
		fmt.Println()

		header := color.New(color.FgGreen, color.Bold).Sprintf("Exercises:")
		fmt.Println(header)
		magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()
		for _, ex := range p.Exercises() {
			pl := ex.Running()
			line := ex.Plan.ProgressSummary(ex.History)
			if pl.State != plan.StateWaiting {
				line = fmt.Sprintf("%s, %s", pl.Label(), line)
			}
			fmt.Printf("  • %s [%s]: %s\n", magenta(ex.Name), pl.State, line)
		}
		fmt.Println()

		return nil
	},
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText(title, width, true) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value any) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

// computeWeekStreak computes how many consecutive ISO weeks (ending with the
// week of now) have at least one result.
func computeWeekStreak(results []models.Result, now time.Time) int {
	weekSet := make(map[string]bool)
	for _, r := range results {
		year, week := r.Date.Local().ISOWeek()
		weekSet[fmt.Sprintf("%d-%02d", year, week)] = true
	}

	streak := 0
	year, week := now.ISOWeek()
	for weekSet[fmt.Sprintf("%d-%02d", year, week)] {
		streak++
		now = now.AddDate(0, 0, -7)
		year, week = now.ISOWeek()
	}
	return streak
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
