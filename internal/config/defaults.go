package config

import (
	_ "embed"

	"github.com/vovakirdan/piston-snake/internal/snake"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors defaults/snake.yaml
// and is used if the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:     "piston snake!",
			Width:     640,
			Height:    480,
			TileSize:  10,
			TPS:       120,
			VSync:     true,
			ExitOnEsc: true,
		},
		TUI: TUIConfig{
			TickRate: 60,
		},
		Palette: snake.DefaultPalette(),
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
