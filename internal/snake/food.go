package snake

import (
	"math/rand"

	"github.com/vovakirdan/piston-snake/internal/core"
)

// MaxFoodAttempts bounds the random sampling in FindEmptySpot before it
// falls back to scanning the whole grid.
const MaxFoodAttempts = 64

// FindEmptySpot picks a uniformly random empty cell for the next food
// marker. It does not write to the grid. ErrGridFull is returned when no
// empty cell exists.
func FindEmptySpot(grid *Grid, rng *rand.Rand) (core.Point, error) {
	for range MaxFoodAttempts {
		p := core.Point{
			X: rng.Intn(grid.Width()),
			Y: rng.Intn(grid.Height()),
		}
		if grid.At(p) == Empty {
			return p, nil
		}
	}

	// Crowded grid: choose among the empty cells directly
	var empty []core.Point
	for x := 0; x < grid.Width(); x++ {
		for y := 0; y < grid.Height(); y++ {
			p := core.Point{X: x, Y: y}
			if grid.At(p) == Empty {
				empty = append(empty, p)
			}
		}
	}
	if len(empty) == 0 {
		return core.Point{}, ErrGridFull
	}
	return empty[rng.Intn(len(empty))], nil
}
