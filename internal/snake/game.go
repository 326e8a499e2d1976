// Package snake implements the grid-based snake rules: the cell-age grid,
// the turn-step, food placement, and the read-only projection used by the
// frontends. It has no frontend dependencies.
package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/piston-snake/internal/core"
)

// Fixed game rules.
const (
	Width  = 64
	Height = 48

	StartSize      = 3
	StartSpeed     = 10.0
	SpeedIncrement = 5.0

	// LengthOfTurn is how much speed-scaled time must accumulate before the
	// snake takes a turn.
	LengthOfTurn = 0.5
)

var (
	// StartHead is where the snake's head begins.
	StartHead = core.Point{X: 0, Y: 0}
	// StartFood is where the first food marker is placed.
	StartFood = core.Point{X: 5, Y: 5}
)

// Terminal turn outcomes.
var (
	ErrOutOfBounds   = errors.New("snake: moved out of bounds")
	ErrSelfCollision = errors.New("snake: ran into itself")
	ErrGridFull      = errors.New("snake: no empty cell left")
)

// IsDeath reports whether err ends the run as a loss.
func IsDeath(err error) bool {
	return errors.Is(err, ErrOutOfBounds) || errors.Is(err, ErrSelfCollision)
}

// Event describes what a successful turn did.
type Event int

const (
	EventNone Event = iota
	EventMoved
	EventAte
)

func (e Event) String() string {
	switch e {
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	default:
		return "none"
	}
}

// Game holds the grid and snake state for one run.
type Game struct {
	grid      *Grid
	rng       *rand.Rand
	head      core.Point
	direction Direction
	size      int
	speed     float64
	turns     uint64
}

// New creates a game in its starting position. The seed drives food
// placement only.
func New(seed int64) *Game {
	g := &Game{
		grid:      NewGrid(Width, Height),
		rng:       rand.New(rand.NewSource(seed)),
		head:      StartHead,
		direction: DirUp,
		size:      StartSize,
		speed:     StartSpeed,
	}
	g.grid.Set(StartFood, Food)
	return g
}

// Grid returns the game's grid. Callers must treat it as read-only.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Head returns the head position.
func (g *Game) Head() core.Point {
	return g.head
}

// Direction returns the current facing direction.
func (g *Game) Direction() Direction {
	return g.direction
}

// SetDirection overwrites the facing direction used by the next turn.
// Reversing onto the neck is allowed and ends in a self collision.
func (g *Game) SetDirection(d Direction) {
	g.direction = d
}

// Size returns the snake's length.
func (g *Game) Size() int {
	return g.size
}

// Speed returns the current speed factor.
func (g *Game) Speed() float64 {
	return g.speed
}

// Turns returns the number of successful turns taken.
func (g *Game) Turns() uint64 {
	return g.turns
}

// Food returns the food marker position, if one is on the grid.
func (g *Game) Food() (core.Point, bool) {
	return g.grid.Find(Food)
}

// TakeTurn advances the snake by one cell in its facing direction.
//
// Moving out of the grid or onto the body returns ErrOutOfBounds or
// ErrSelfCollision and leaves the state untouched. Eating the last
// reachable food fills the board: the move is applied and ErrGridFull is
// returned.
func (g *Game) TakeTurn() (Event, error) {
	next := g.head.Add(g.direction.Offset())
	if !g.grid.InBounds(next) {
		return EventNone, ErrOutOfBounds
	}

	switch v := g.grid.At(next); {
	case v == Food:
		g.size++
		g.grid.Set(next, g.size)
		g.head = next
		g.speed += SpeedIncrement
		g.turns++

		spot, err := FindEmptySpot(g.grid, g.rng)
		if err != nil {
			return EventAte, err
		}
		g.grid.Set(spot, Food)
		return EventAte, nil

	case v == Empty:
		g.grid.Age()
		g.grid.Set(next, g.size)
		g.head = next
		g.turns++
		return EventMoved, nil

	default:
		return EventNone, ErrSelfCollision
	}
}
