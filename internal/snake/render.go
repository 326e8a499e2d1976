package snake

import "github.com/vovakirdan/piston-snake/internal/core"

// CellKind is what a grid cell shows on screen.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindFood
	KindHead
	KindBody
)

// Palette assigns a color to each CellKind. Clear is the color behind the
// grid.
type Palette struct {
	Clear core.Color `yaml:"clear"`
	Food  core.Color `yaml:"food"`
	Head  core.Color `yaml:"head"`
	Body  core.Color `yaml:"body"`
	Empty core.Color `yaml:"empty"`
}

// DefaultPalette returns the classic colors: red food, green head, yellow
// body on black.
func DefaultPalette() Palette {
	return Palette{
		Clear: core.ColorWhite,
		Food:  core.ColorRed,
		Head:  core.ColorGreen,
		Body:  core.ColorYellow,
		Empty: core.ColorBlack,
	}
}

// Color returns the palette color for kind.
func (p Palette) Color(kind CellKind) core.Color {
	switch kind {
	case KindFood:
		return p.Food
	case KindHead:
		return p.Head
	case KindBody:
		return p.Body
	default:
		return p.Empty
	}
}

// Classify returns how the cell at p should be drawn. Food wins over the
// head position, which wins over body age.
func (g *Game) Classify(p core.Point) CellKind {
	v := g.grid.At(p)
	switch {
	case v == Food:
		return KindFood
	case p == g.head:
		return KindHead
	case v > 0:
		return KindBody
	default:
		return KindEmpty
	}
}

// Render projects the grid onto dst, one screen cell per grid cell, with
// the kind's color as the cell background. dst should be Width×Height;
// larger screens are left untouched outside the grid.
func (g *Game) Render(dst *core.Screen, pal Palette) {
	for x := 0; x < g.grid.Width(); x++ {
		for y := 0; y < g.grid.Height(); y++ {
			c := pal.Color(g.Classify(core.Point{X: x, Y: y}))
			dst.Set(x, y, core.Cell{Rune: ' ', FG: c, BG: c})
		}
	}
}
