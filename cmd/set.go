package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/overload/internal/apparatus"
	"github.com/misterclayt0n/overload/internal/models"
)

var setCmd = &cobra.Command{
	Use:   "set [weight|reps|rest|seconds] [value]",
	Short: "Change a setting of the current exercise; a session in progress picks it up",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, raw := args[0], args[1]
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 {
			return fmt.Errorf("invalid value: %s", raw)
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

		var shown string
		edit := func(s *models.Setting) error {
			switch field {
			case "weight":
				s.ChangeWeight(value, p.Now())
				unit := s.Units()
				if unit == "" {
					unit = a.cfg.Training.Unit
				}
				shown = apparatus.FormatWeight(value, unit)
			case "reps":
				s.RequestedReps = int(value)
				shown = strconv.Itoa(s.RequestedReps)
			case "rest":
				s.RestSeconds = int(value)
				shown = clock(s.RestSeconds)
			case "seconds":
				s.Seconds = int(value)
				shown = clock(s.Seconds)
			default:
				return fmt.Errorf("unknown setting %q", field)
			}
			return nil
		}
		if err := p.EditSetting(name, edit); err != nil {
			return fmt.Errorf("Failed to change %s: %w", name, err)
		}

		fmt.Printf("✅ %s %s set to %s\n", name, field, shown)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
	setCmd.Flags().StringVarP(&exerciseFlag, "exercise", "e", "", "Exercise name (defaults to the current session's)")
}
