package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/overload/internal/program"
)

var updateProgramCmd = &cobra.Command{
	Use:   "update-program [file]",
	Short: "Update an existing program from its catalog without losing settings or history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := program.LoadCatalog(args[0])
		if err != nil {
			return err
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.st.GetProgram(a.ctx, catalog.Name); err != nil {
			return fmt.Errorf("Failed to update program: %w", err)
		}
		if err := program.Import(a.ctx, a.st, *catalog); err != nil {
			return fmt.Errorf("Failed to update program: %w", err)
		}

		p, err := program.Load(a.ctx, a.st, catalog.Name, time.Now)
		if err != nil {
			return err
		}
		pruned, err := p.Prune()
		if err != nil {
			return err
		}
		for _, name := range pruned {
			fmt.Printf("🗑  Dropped saved state of %s\n", name)
		}

		fmt.Println("✅ Program updated successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateProgramCmd)
}
