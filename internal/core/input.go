package core

// Key is a frontend-neutral key press. Frontends translate their native key
// events into Keys; everything else is dropped before it reaches the game.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit // Escape, q, ctrl+c
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
