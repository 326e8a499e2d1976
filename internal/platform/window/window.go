// Package window runs a snake session in a graphical window using Ebitengine.
// Each grid cell is drawn as a solid tile; arrow keys steer and Escape quits.
package window

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/piston-snake/internal/config"
	"github.com/vovakirdan/piston-snake/internal/core"
	"github.com/vovakirdan/piston-snake/internal/registry"
	"github.com/vovakirdan/piston-snake/internal/session"
	"github.com/vovakirdan/piston-snake/internal/snake"
)

// ID is the registry key of the window frontend.
const ID = "window"

func init() {
	registry.Register(ID, func() registry.Frontend {
		return &Frontend{}
	})
}

// Frontend plays in an Ebitengine window.
type Frontend struct{}

// ID returns the frontend identifier.
func (f *Frontend) ID() string {
	return ID
}

// Title returns the display name.
func (f *Frontend) Title() string {
	return "Graphical window"
}

// Run opens the window and blocks until the snake dies, the board fills,
// or the window is closed.
func (f *Frontend) Run(s *session.Session, cfg config.Config, logger *log.Logger) error {
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)
	ebiten.SetTPS(cfg.Window.TPS)

	logger.Debug("opening window",
		"title", cfg.Window.Title,
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
		"vsync", cfg.Window.VSync,
		"tps", cfg.Window.TPS)

	err := ebiten.RunGame(newGame(s, cfg, logger))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// game adapts a session to ebiten.Game.
type game struct {
	session *session.Session
	window  config.WindowConfig
	palette snake.Palette
	logger  *log.Logger
	screen  *core.Screen
	keys    []ebiten.Key
}

func newGame(s *session.Session, cfg config.Config, logger *log.Logger) *game {
	return &game{
		session: s,
		window:  cfg.Window,
		palette: cfg.Palette,
		logger:  logger,
		screen:  core.NewScreen(snake.Width, snake.Height),
	}
}

// Update forwards this frame's key presses and elapsed time to the session.
func (g *game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		key := translateKey(k)
		if key == core.KeyQuit {
			if g.window.ExitOnEsc {
				g.logger.Debug("escape pressed, closing window")
				return ebiten.Termination
			}
			continue
		}
		g.session.Press(key)
	}

	g.session.Update(1.0 / float64(ebiten.TPS()))
	if g.session.Over() {
		return ebiten.Termination
	}
	return nil
}

// Draw paints every grid cell as a tile.
func (g *game) Draw(dst *ebiten.Image) {
	dst.Fill(rgba(g.palette.Clear))
	g.session.Game().Render(g.screen, g.palette)

	for y := 0; y < g.screen.Height(); y++ {
		for x := 0; x < g.screen.Width(); x++ {
			px, py, size := tileRect(x, y, g.window.TileSize)
			vector.DrawFilledRect(dst, px, py, size, size, rgba(g.screen.Get(x, y).BG), false)
		}
	}
}

// Layout keeps a fixed logical resolution; ebiten scales it to the window.
func (g *game) Layout(_, _ int) (int, int) {
	return g.window.Width, g.window.Height
}

// tileRect returns the top-left pixel and side length of grid cell (x, y).
func tileRect(x, y, tileSize int) (px, py, size float32) {
	size = float32(tileSize)
	return float32(x) * size, float32(y) * size, size
}

// translateKey maps the four arrow keys and Escape; everything else is
// KeyNone.
func translateKey(k ebiten.Key) core.Key {
	switch k {
	case ebiten.KeyArrowUp:
		return core.KeyUp
	case ebiten.KeyArrowDown:
		return core.KeyDown
	case ebiten.KeyArrowLeft:
		return core.KeyLeft
	case ebiten.KeyArrowRight:
		return core.KeyRight
	case ebiten.KeyEscape:
		return core.KeyQuit
	default:
		return core.KeyNone
	}
}
