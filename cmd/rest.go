package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/overload/internal/timer"
)

var restCmd = &cobra.Command{
	Use:   "rest [seconds]",
	Short: "Count down the rest after the current set (Ctrl-C stops it)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		secs := 0
		if len(args) == 1 {
			if secs, err = strconv.Atoi(args[0]); err != nil || secs <= 0 {
				return fmt.Errorf("invalid seconds: %s", args[0])
			}
		} else {
			p, name, err := a.target(exerciseFlag)
			if err != nil {
				return err
			}
			ex, err := p.Exercise(name)
			if err != nil {
				return err
			}
			rest, ok := ex.Running().RestInfo()
			if !ok {
				return fmt.Errorf("%s has no rest after this set", name)
			}
			secs = rest
		}

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		out := timer.Run(a.ctx, time.Duration(secs)*time.Second, func(left time.Duration) {
			fmt.Printf("\r⏱  %s ", cyan(clock(int(left.Seconds()))))
		})
		fmt.Println()

		switch out {
		case timer.Expired:
			if a.cfg.Training.RestBell {
				fmt.Print("\a")
			}
			fmt.Println("✅ Rest over")
		case timer.Cancelled:
			fmt.Println("⏹  Rest cut short")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restCmd)
	restCmd.Flags().StringVarP(&exerciseFlag, "exercise", "e", "", "Exercise name (defaults to the current session's)")
}
