package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/program"
)

// details is a flag to enable verbose day details.
var details bool

type dayEntry struct {
	exercise string
	result   models.Result
}

// calendarCmd prints the calendar grid. Training days are colored by the
// workout of the first exercise done that day, with a legend below.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of training days with a legend mapping colors to workouts",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.programFor(programName)
		if err != nil {
			return err
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		byDay := make(map[int][]dayEntry)
		for _, ex := range p.Exercises() {
			for _, r := range ex.History.All() {
				d := r.Date.Local()
				if d.Year() != year || d.Month() != month {
					continue
				}
				byDay[d.Day()] = append(byDay[d.Day()], dayEntry{exercise: ex.Name, result: r})
			}
		}
		for _, entries := range byDay {
			sort.Slice(entries, func(i, j int) bool { return entries[i].result.Date.Before(entries[j].result.Date) })
		}

		colorPalette := []color.Attribute{
			color.FgRed, color.FgGreen, color.FgYellow,
			color.FgBlue, color.FgMagenta, color.FgCyan,
		}
		workoutColors := make(map[string]func(a ...any) string)
		for i, w := range p.Workouts {
			workoutColors[w.Name] = color.New(colorPalette[i%len(colorPalette)]).SprintFunc()
		}

		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20, false))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		used := make(map[string]bool)
		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if entries, ok := byDay[day]; ok {
				w := workoutOf(p, entries[0].exercise)
				if colFunc, ok := workoutColors[w]; ok {
					dayStr = colFunc(dayStr + "*")
					used[w] = true
				} else {
					dayStr = color.New(color.FgWhite).Sprint(dayStr + "*")
				}
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		fmt.Println("Legend:")
		for _, w := range p.Workouts {
			if used[w.Name] {
				fmt.Printf("  %s: %s\n", workoutColors[w.Name]("██"), w.Name)
			}
		}

		if details {
			fmt.Println("\nDay Details:")
			var days []int
			for d := range byDay {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, day := range days {
				dayDate := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
				fmt.Printf("\n%s:\n", dayDate.Format("Mon, 02 Jan 2006"))
				for _, e := range byDay[day] {
					fmt.Printf("  %s %s: %s\n", e.result.Date.Local().Format("15:04"), e.exercise, e.result.Title)
				}
			}
		}

		return nil
	},
}

// workoutOf returns the first workout that includes exercise.
func workoutOf(p *program.Program, exercise string) string {
	for _, w := range p.Workouts {
		if w.Has(exercise) {
			return w.Name
		}
	}
	return ""
}

// centerText centers s in a field of width, padding the right side too when
// pad is set.
func centerText(s string, width int, pad bool) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	out := strings.Repeat(" ", padding) + s
	if pad {
		out += strings.Repeat(" ", width-len(s)-padding)
	}
	return out
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print what was done each day")
}
