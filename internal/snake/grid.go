package snake

import "github.com/vovakirdan/piston-snake/internal/core"

// Cell values. Any positive value is a body segment holding the number of
// turns it has left before it vanishes.
const (
	Empty = 0
	Food  = -1
)

// Grid is a fixed-size map of cell values indexed by (x, y).
type Grid struct {
	width  int
	height int
	cells  []int
}

// NewGrid creates an empty grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]int, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Bounds returns the rectangle of valid coordinates.
func (g *Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, g.width, g.height)
}

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p core.Point) bool {
	return g.Bounds().Contains(p)
}

// At returns the value at p. Callers must check InBounds first.
func (g *Grid) At(p core.Point) int {
	return g.cells[p.Y*g.width+p.X]
}

// Set stores v at p. Callers must check InBounds first.
func (g *Grid) Set(p core.Point, v int) {
	g.cells[p.Y*g.width+p.X] = v
}

// Age decrements every body segment by one turn. Segments reaching zero
// become empty, which is how the tail disappears.
func (g *Grid) Age() {
	for i, v := range g.cells {
		if v > 0 {
			g.cells[i] = v - 1
		}
	}
}

// Find returns the first cell (scanning column by column) holding v.
func (g *Grid) Find(v int) (core.Point, bool) {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			p := core.Point{X: x, Y: y}
			if g.At(p) == v {
				return p, true
			}
		}
	}
	return core.Point{}, false
}

// Count returns how many cells satisfy match.
func (g *Grid) Count(match func(v int) bool) int {
	n := 0
	for _, v := range g.cells {
		if match(v) {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]int, len(g.cells)),
	}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}
