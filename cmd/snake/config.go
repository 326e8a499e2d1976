package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/piston-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way 'snake play' does and prints it
as YAML. Redirect the output to ~/.snake/snake.yaml to start a custom config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
