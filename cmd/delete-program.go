package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/overload/internal/utils"
)

var deleteProgramCmd = &cobra.Command{
	Use:   "delete-program [name]",
	Short: "Delete a program along with the settings and history of its exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.st.DeleteProgram(a.ctx, args[0]); err != nil {
			return fmt.Errorf("Failed to delete program: %w", err)
		}

		if state, err := utils.LoadSessionState(); err == nil && state.Program == args[0] {
			if err := utils.ClearSessionState(); err != nil {
				return err
			}
		}

		fmt.Printf("✅ Program '%s' deleted successfully\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteProgramCmd)
}
