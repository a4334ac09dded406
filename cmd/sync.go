package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/overload/internal/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export all the database data to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile, err := storage.ExportPath()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			outputFile = args[0]
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("error creating %s: %w", outputFile, err)
		}
		defer f.Close()

		if err := a.st.ExportTOML(a.ctx, f); err != nil {
			return fmt.Errorf("error exporting database: %w", err)
		}

		fmt.Printf("✅ Database exported successfully to %s\n", outputFile)
		return nil
	},
}

var buildDBCmd = &cobra.Command{
	Use:   "build-db [dump-file]",
	Short: "Build the entire database from the given TOML dump file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("Failed to open dump: %w", err)
		}
		defer f.Close()

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.st.ImportTOML(a.ctx, f); err != nil {
			return fmt.Errorf("Failed to build database: %w", err)
		}
		fmt.Println("✅ Database built successfully from TOML dump.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(buildDBCmd)
}
