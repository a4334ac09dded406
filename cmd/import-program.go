package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/overload/internal/program"
)

var importProgramCmd = &cobra.Command{
	Use:   "import-program [file]",
	Short: "Import a program from a TOML or YAML catalog",
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

		if _, err := a.st.GetProgram(a.ctx, catalog.Name); err == nil {
			return fmt.Errorf("program %s already exists, use update-program", catalog.Name)
		}
		if err := program.Import(a.ctx, a.st, *catalog); err != nil {
			return fmt.Errorf("failed to import program: %w", err)
		}

		fmt.Printf("✅ Program %s imported with %d exercises\n", catalog.Name, len(catalog.Exercises))
		return nil
	},
}

var listProgramsCmd = &cobra.Command{
	Use:   "list-programs",
	Short: "List all programs",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		programs, err := a.st.ListPrograms(a.ctx)
		if err != nil {
			return err
		}
		for _, p := range programs {
			fmt.Printf("%s - %s\n", p.Name, p.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importProgramCmd)
	rootCmd.AddCommand(listProgramsCmd)
}
