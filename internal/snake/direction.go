package snake

import "github.com/vovakirdan/piston-snake/internal/core"

// Direction represents the snake's facing direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Offset returns the unit step for the direction. Up grows y and Down
// shrinks it; screen row 0 is drawn at the top, so "Up" moves the head
// down the window. The key mapping in KeyDirection compensates for this.
func (d Direction) Offset() core.Point {
	switch d {
	case DirUp:
		return core.Point{X: 0, Y: 1}
	case DirDown:
		return core.Point{X: 0, Y: -1}
	case DirLeft:
		return core.Point{X: -1, Y: 0}
	case DirRight:
		return core.Point{X: 1, Y: 0}
	default:
		return core.Point{}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
