package cmd

import (
	"github.com/spf13/cobra"
)

var programName string

var rootCmd = &cobra.Command{
	Use:          "overload",
	Short:        "CLI training planner that works out your next session for you",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&programName, "program", "p", "", "Program name (defaults to the current session's)")
}
