package snake

import "github.com/vovakirdan/piston-snake/internal/core"

// KeyDirection maps a key press to a facing direction. The vertical keys
// are swapped because grid y grows toward the bottom of the screen: the
// Down key must move the head toward higher y, which is DirUp.
func KeyDirection(k core.Key) (Direction, bool) {
	switch k {
	case core.KeyDown:
		return DirUp, true
	case core.KeyUp:
		return DirDown, true
	case core.KeyLeft:
		return DirLeft, true
	case core.KeyRight:
		return DirRight, true
	default:
		return 0, false
	}
}
