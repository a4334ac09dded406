package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/overload/internal/config"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file and create the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if err := writeDefaultConfig(path); err != nil {
				return fmt.Errorf("Failed to write config: %w", err)
			}
			fmt.Printf("✅ Wrote default config to %s\n", path)
		}

		a, err := openApp()
		if err != nil {
			return fmt.Errorf("Failed to initialize database: %w", err)
		}
		defer a.Close()

		fmt.Printf("✅ Database initialized successfully at %s\n", a.cfg.DB.ConnectionString)
		return nil
	},
}

func writeDefaultConfig(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
