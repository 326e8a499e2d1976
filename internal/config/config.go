// Package config provides YAML-based presentation configuration for the
// snake frontends: window geometry, terminal tick rate, palette and logging.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/piston-snake/internal/snake"
)

// Config contains all user-adjustable settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	TUI     TUIConfig     `yaml:"tui"`
	Palette snake.Palette `yaml:"palette"`
	Log     LogConfig     `yaml:"log"`
}

// WindowConfig defines the graphical window.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TileSize  int    `yaml:"tile_size"` // Pixels per grid cell
	TPS       int    `yaml:"tps"`       // Updates per second
	VSync     bool   `yaml:"vsync"`
	ExitOnEsc bool   `yaml:"exit_on_esc"`
}

// TUIConfig defines the terminal frontend.
type TUIConfig struct {
	TickRate int `yaml:"tick_rate"` // Updates per second
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means the frontend's default sink
}

// Validate checks that the settings can drive a frontend.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TileSize <= 0 {
		return fmt.Errorf("config: tile_size must be positive, got %d", c.Window.TileSize)
	}
	if w, h := c.Window.TileSize*snake.Width, c.Window.TileSize*snake.Height; w > c.Window.Width || h > c.Window.Height {
		return fmt.Errorf("config: board needs %dx%d px at tile_size %d, window is %dx%d",
			w, h, c.Window.TileSize, c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("config: tps must be positive, got %d", c.Window.TPS)
	}
	if c.TUI.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.TUI.TickRate)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
