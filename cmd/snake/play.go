package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/piston-snake/internal/config"
	"github.com/vovakirdan/piston-snake/internal/core"
	"github.com/vovakirdan/piston-snake/internal/platform/tui"
	"github.com/vovakirdan/piston-snake/internal/registry"
	"github.com/vovakirdan/piston-snake/internal/session"
	"github.com/vovakirdan/piston-snake/internal/snake"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game.

Controls:
  Arrows   - Steer
  Esc      - Quit (window)
  Q/Esc    - Quit (terminal)

Examples:
  snake play
  snake play --frontend tui
  snake play --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q, run 'snake frontends' to see available frontends", flagFrontend)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, flagFrontend)
	if err != nil {
		return err
	}
	defer closeLog()

	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		return fmt.Errorf("creating frontend: %w", err)
	}

	s := session.New(core.RuntimeConfig{
		TickRate: cfg.TUI.TickRate,
		Seed:     flagSeed,
	}, logger)
	logger.Info("starting", "frontend", frontend.ID(), "seed", s.Seed())

	if err := frontend.Run(s, cfg, logger); err != nil {
		return fmt.Errorf("running %s: %w", frontend.Title(), err)
	}

	if msg := resultMessage(s); msg != "" {
		fmt.Println(msg)
	}
	return nil
}

// loadConfig loads the config file and applies the logging flags on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagLogLevel != "" {
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return config.Config{}, fmt.Errorf("--log-level: %w", err)
		}
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	return cfg, nil
}

// newLogger builds the process logger. Without a log file the terminal
// frontend discards logs, since the alternate screen owns the terminal.
func newLogger(cfg config.Config, frontend string) (*log.Logger, func(), error) {
	var (
		w       io.Writer = os.Stderr
		closeFn           = func() {}
	)

	switch {
	case cfg.Log.File != "":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case frontend == tui.ID:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           cfg.LogLevel(),
	})
	return logger, closeFn, nil
}

// resultMessage describes how the run ended, or returns "" if the player
// quit while still playing.
func resultMessage(s *session.Session) string {
	size := s.Game().Size()
	switch s.Status() {
	case session.StatusWon:
		return fmt.Sprintf("The board is full. You win with length %d!", size)
	case session.StatusDead:
		reason := "game over"
		switch {
		case errors.Is(s.Err(), snake.ErrOutOfBounds):
			reason = "You left the board"
		case errors.Is(s.Err(), snake.ErrSelfCollision):
			reason = "You ran into yourself"
		}
		return fmt.Sprintf("%s. Final length: %d", reason, size)
	default:
		return ""
	}
}
