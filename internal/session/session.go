// Package session owns the state of a single snake run on behalf of a
// frontend's event loop. Frontends feed it elapsed time and key presses and
// read the game back for drawing; the session decides when turns happen and
// when the run is over.
package session

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/piston-snake/internal/core"
	"github.com/vovakirdan/piston-snake/internal/snake"
)

// Status is the run's lifecycle state.
type Status int

const (
	StatusPlaying Status = iota
	StatusDead
	StatusWon
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusDead:
		return "dead"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Session drives one game from start to its terminal turn.
type Session struct {
	game   *snake.Game
	clock  snake.Clock
	logger *log.Logger
	status Status
	err    error
	seed   int64
}

// New starts a session. A zero seed is replaced with a time-based one; a nil
// logger discards output.
func New(cfg core.RuntimeConfig, logger *log.Logger) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	logger.Debug("session started", "seed", seed, "width", snake.Width, "height", snake.Height)

	return &Session{
		game:   snake.New(seed),
		logger: logger,
		seed:   seed,
	}
}

// Update advances the session by dt seconds of frame time and reports
// whether a turn was taken. Once the run is over Update does nothing.
func (s *Session) Update(dt float64) bool {
	if s.status != StatusPlaying {
		return false
	}
	if !s.clock.Advance(dt, s.game.Speed()) {
		return false
	}

	ev, err := s.game.TakeTurn()
	switch {
	case err == nil:
		if ev == snake.EventAte {
			food, _ := s.game.Food()
			s.logger.Debug("food eaten",
				"size", s.game.Size(),
				"speed", s.game.Speed(),
				"next_food", food)
		}
	case errors.Is(err, snake.ErrGridFull):
		s.finish(StatusWon, err)
	default:
		s.finish(StatusDead, err)
	}
	return true
}

func (s *Session) finish(status Status, err error) {
	s.status = status
	s.err = err
	s.logger.Info("game over",
		"result", status,
		"reason", err,
		"size", s.game.Size(),
		"turns", s.game.Turns())
}

// Press handles a key press. Direction keys overwrite the pending direction;
// every other key is ignored.
func (s *Session) Press(k core.Key) {
	d, ok := snake.KeyDirection(k)
	if !ok {
		return
	}
	s.game.SetDirection(d)
}

// Game returns the game for read-only use by renderers.
func (s *Session) Game() *snake.Game {
	return s.game
}

// Seed returns the seed food placement was started with.
func (s *Session) Seed() int64 {
	return s.seed
}

// Status returns the lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// Over reports whether the run has ended.
func (s *Session) Over() bool {
	return s.status != StatusPlaying
}

// Err returns the turn error that ended the run, or nil while playing.
func (s *Session) Err() error {
	return s.err
}

// Snapshot returns the game snapshot together with the session status.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Game:   s.game.Snapshot(),
		Status: s.status,
	}
}

// Snapshot is a session-level view for tests and logging.
type Snapshot struct {
	Game   snake.Snapshot
	Status Status
}
