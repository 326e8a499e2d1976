// snake is a minimal Snake game on a 64x48 grid.
//
// Usage:
//
//	snake                    - Play in a window (same as "snake play")
//	snake play               - Play a game
//	snake frontends          - List available frontends
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--frontend <id>    - Frontend to play with (default: window)
//	--seed <value>     - Set RNG seed for reproducible food placement
//	--config <path>    - Path to config YAML (default: ~/.snake/snake.yaml)
//	--log-level <lvl>  - Override the configured log level
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/piston-snake/internal/platform/tui"
	_ "github.com/vovakirdan/piston-snake/internal/platform/window"
)

var (
	// Global flags
	flagFrontend string
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "piston snake - a minimal Snake game",
	Long: `A minimal Snake game on a 64x48 grid. Eat the red food to grow and
speed up; leaving the board or biting yourself ends the run.

Available commands:
  play       - Play a game (default)
  frontends  - Show all available frontends
  config     - Print the effective configuration

Examples:
  snake
  snake play --frontend tui
  snake play --seed 42
  snake config --config ./snake.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagFrontend, "frontend", "window", "Frontend to play with (see 'snake frontends')")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(configCmd)
}
