package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/piston-snake/internal/config"
	"github.com/vovakirdan/piston-snake/internal/core"
	"github.com/vovakirdan/piston-snake/internal/registry"
	"github.com/vovakirdan/piston-snake/internal/session"
	"github.com/vovakirdan/piston-snake/internal/snake"
)

// ID is the registry key of the terminal frontend.
const ID = "tui"

// Minimum terminal size: the folded board plus status and help lines.
const (
	MinWidth  = snake.Width
	MinHeight = (snake.Height+1)/2 + 2
)

func init() {
	registry.Register(ID, func() registry.Frontend {
		return &Frontend{}
	})
}

// Frontend plays in the terminal.
type Frontend struct{}

// ID returns the frontend identifier.
func (f *Frontend) ID() string {
	return ID
}

// Title returns the display name.
func (f *Frontend) Title() string {
	return "Terminal"
}

// Run starts the Bubble Tea program on the alternate screen and blocks until
// the run ends or the player quits.
func (f *Frontend) Run(s *session.Session, cfg config.Config, logger *log.Logger) error {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < MinWidth || h < MinHeight) {
		logger.Warn("terminal smaller than the board",
			"width", w, "height", h,
			"need_width", MinWidth, "need_height", MinHeight)
	}

	p := tea.NewProgram(NewModel(s, cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

var (
	statusStyle = lipgloss.NewStyle().Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Model is the Bubble Tea model for a snake session.
type Model struct {
	session *session.Session
	palette snake.Palette
	runtime core.RuntimeConfig
	logger  *log.Logger

	board  *core.Screen // One cell per grid square
	folded *core.Screen // Two grid rows per terminal row

	keys KeyMap
	help help.Model

	width, height int
	quitting      bool
}

// NewModel creates a model for the given session.
func NewModel(s *session.Session, cfg config.Config, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Model{
		session: s,
		palette: cfg.Palette,
		runtime: core.RuntimeConfig{TickRate: cfg.TUI.TickRate},
		logger:  logger,
		board:   core.NewScreen(snake.Width, snake.Height),
		folded:  core.NewScreen(snake.Width, (snake.Height+1)/2),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys.Translate(msg)
	if k == core.KeyQuit {
		m.logger.Debug("quit requested")
		m.quitting = true
		return m, tea.Quit
	}
	m.session.Press(k)
	return m, nil
}

func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Update(m.runtime.TickSeconds())
	if m.session.Over() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.runtime.TickRate)
}

// View renders the board, a status line and the key help.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width > 0 && (m.width < MinWidth || m.height < MinHeight) {
		return warnStyle.Render(fmt.Sprintf(
			"Terminal too small: %dx%d, need %dx%d", m.width, m.height, MinWidth, MinHeight))
	}

	m.session.Game().Render(m.board, m.palette)
	FoldRows(m.board, m.folded)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.folded))
	sb.WriteRune('\n')
	sb.WriteString(statusStyle.Render(m.statusLine()))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m *Model) statusLine() string {
	g := m.session.Game()
	return fmt.Sprintf("Length: %d  Speed: %.0f  Turns: %d", g.Size(), g.Speed(), g.Turns())
}
