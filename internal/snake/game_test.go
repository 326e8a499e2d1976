package snake

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/piston-snake/internal/core"
)

// place puts the head of g at p with a body cell of the current size, as if
// the snake had just moved there.
func place(g *Game, p core.Point, d Direction) {
	g.head = p
	g.direction = d
	g.grid.Set(p, g.size)
}

func TestNewGame(t *testing.T) {
	g := New(1)

	if g.Head() != StartHead {
		t.Errorf("Head() = %v, expected %v", g.Head(), StartHead)
	}
	if g.Direction() != DirUp {
		t.Errorf("Direction() = %v, expected up", g.Direction())
	}
	if g.Size() != StartSize {
		t.Errorf("Size() = %d, expected %d", g.Size(), StartSize)
	}
	if g.Speed() != StartSpeed {
		t.Errorf("Speed() = %v, expected %v", g.Speed(), StartSpeed)
	}
	if g.Grid().Width() != 64 || g.Grid().Height() != 48 {
		t.Errorf("grid is %dx%d, expected 64x48", g.Grid().Width(), g.Grid().Height())
	}

	food, ok := g.Food()
	if !ok || food != StartFood {
		t.Errorf("Food() = %v, %v, expected %v, true", food, ok, StartFood)
	}
	if n := g.Grid().Count(func(v int) bool { return v != Empty }); n != 1 {
		t.Errorf("new grid should only hold the food marker, found %d non-empty cells", n)
	}
}

func TestMoveOntoEmptyCell(t *testing.T) {
	g := New(1)

	ev, err := g.TakeTurn()
	if err != nil {
		t.Fatalf("TakeTurn() failed: %v", err)
	}
	if ev != EventMoved {
		t.Errorf("TakeTurn() event = %v, expected moved", ev)
	}

	want := core.Point{X: 0, Y: 1}
	if g.Head() != want {
		t.Errorf("Head() = %v, expected %v", g.Head(), want)
	}
	if v := g.Grid().At(want); v != 3 {
		t.Errorf("head cell = %d, expected 3", v)
	}
	if v := g.Grid().At(core.Point{X: 0, Y: 0}); v != Empty {
		t.Errorf("start cell = %d, expected empty", v)
	}
	if g.Speed() != StartSpeed {
		t.Errorf("Speed() = %v, speed should not change on a plain move", g.Speed())
	}
}

func TestEatFood(t *testing.T) {
	g := New(42)
	place(g, core.Point{X: 5, Y: 4}, DirUp)

	ev, err := g.TakeTurn()
	if err != nil {
		t.Fatalf("TakeTurn() failed: %v", err)
	}
	if ev != EventAte {
		t.Errorf("TakeTurn() event = %v, expected ate", ev)
	}

	if g.Size() != StartSize+1 {
		t.Errorf("Size() = %d, expected %d", g.Size(), StartSize+1)
	}
	if v := g.Grid().At(StartFood); v != StartSize+1 {
		t.Errorf("eaten cell = %d, expected %d", v, StartSize+1)
	}
	if g.Head() != StartFood {
		t.Errorf("Head() = %v, expected %v", g.Head(), StartFood)
	}
	if g.Speed() != StartSpeed+5.0 {
		t.Errorf("Speed() = %v, expected %v", g.Speed(), StartSpeed+5.0)
	}

	food, ok := g.Food()
	if !ok {
		t.Fatal("no food on grid after eating")
	}
	if food == StartFood {
		t.Error("new food placed on the eaten cell")
	}
	if n := g.Grid().Count(func(v int) bool { return v == Food }); n != 1 {
		t.Errorf("expected exactly one food cell, found %d", n)
	}
	// Body cells are not aged on the eating turn
	if v := g.Grid().At(core.Point{X: 5, Y: 4}); v != StartSize {
		t.Errorf("previous head cell = %d, expected %d", v, StartSize)
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		head core.Point
		dir  Direction
	}{
		{"left edge", core.Point{X: 0, Y: 10}, DirLeft},
		{"right edge", core.Point{X: Width - 1, Y: 10}, DirRight},
		{"y zero moving down", core.Point{X: 10, Y: 0}, DirDown},
		{"last row moving up", core.Point{X: 10, Y: Height - 1}, DirUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(3)
			place(g, tc.head, tc.dir)
			before := g.Grid().Clone()
			snap := g.Snapshot()

			ev, err := g.TakeTurn()
			if !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("TakeTurn() error = %v, expected ErrOutOfBounds", err)
			}
			if ev != EventNone {
				t.Errorf("TakeTurn() event = %v, expected none", ev)
			}
			if !IsDeath(err) {
				t.Error("IsDeath() should be true for out of bounds")
			}
			if !g.Grid().Equal(before) {
				t.Error("grid changed on a failed turn")
			}
			if g.Snapshot() != snap {
				t.Errorf("snapshot changed on a failed turn: %+v vs %+v", g.Snapshot(), snap)
			}
		})
	}
}

func TestOutOfBoundsFromStart(t *testing.T) {
	g := New(1)
	g.SetDirection(DirLeft)
	before := g.Grid().Clone()

	if _, err := g.TakeTurn(); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("TakeTurn() error = %v, expected ErrOutOfBounds", err)
	}
	if g.Head() != StartHead {
		t.Errorf("Head() = %v, expected %v", g.Head(), StartHead)
	}
	if !g.Grid().Equal(before) {
		t.Error("grid changed on a failed turn")
	}
}

func TestSelfCollision(t *testing.T) {
	g := New(5)
	g.grid.Set(core.Point{X: 3, Y: 3}, 2)
	place(g, core.Point{X: 3, Y: 2}, DirUp)
	before := g.Grid().Clone()
	size, speed := g.Size(), g.Speed()

	ev, err := g.TakeTurn()
	if !errors.Is(err, ErrSelfCollision) {
		t.Fatalf("TakeTurn() error = %v, expected ErrSelfCollision", err)
	}
	if ev != EventNone {
		t.Errorf("TakeTurn() event = %v, expected none", ev)
	}
	if g.Head() != (core.Point{X: 3, Y: 2}) {
		t.Errorf("Head() = %v, head should not move", g.Head())
	}
	if !g.Grid().Equal(before) {
		t.Error("grid changed on a failed turn")
	}
	if g.Size() != size || g.Speed() != speed {
		t.Error("size or speed changed on a failed turn")
	}
}

func TestReverseIntoNeck(t *testing.T) {
	g := New(9)
	for range 3 {
		if _, err := g.TakeTurn(); err != nil {
			t.Fatalf("TakeTurn() failed: %v", err)
		}
	}

	g.SetDirection(DirDown)
	if _, err := g.TakeTurn(); !errors.Is(err, ErrSelfCollision) {
		t.Errorf("reversing onto the neck: error = %v, expected ErrSelfCollision", err)
	}
}

func TestTailVanishes(t *testing.T) {
	g := New(1)
	g.SetDirection(DirRight)

	// Walk along row 0; after StartSize moves the first body cell is gone
	for range 5 {
		if _, err := g.TakeTurn(); err != nil {
			t.Fatalf("TakeTurn() failed: %v", err)
		}
	}

	if n := g.Grid().Count(func(v int) bool { return v > 0 }); n != StartSize {
		t.Errorf("body cells = %d, expected %d", n, StartSize)
	}
	for x, want := range []int{0, 0, 0, 1, 2, 3} {
		if v := g.Grid().At(core.Point{X: x, Y: 0}); v != want {
			t.Errorf("cell (%d, 0) = %d, expected %d", x, v, want)
		}
	}
}

func TestEatingLastFoodFillsGrid(t *testing.T) {
	g := New(1)
	g.grid = NewGrid(2, 1)
	g.grid.Set(core.Point{X: 1, Y: 0}, Food)
	place(g, core.Point{X: 0, Y: 0}, DirRight)

	ev, err := g.TakeTurn()
	if !errors.Is(err, ErrGridFull) {
		t.Fatalf("TakeTurn() error = %v, expected ErrGridFull", err)
	}
	if IsDeath(err) {
		t.Error("a full grid is not a death")
	}
	if ev != EventAte {
		t.Errorf("TakeTurn() event = %v, expected ate", ev)
	}
	if g.Head() != (core.Point{X: 1, Y: 0}) {
		t.Errorf("Head() = %v, the eating move should still apply", g.Head())
	}
	if _, ok := g.Food(); ok {
		t.Error("no food should remain on a full grid")
	}
}

// TestTurnProperties drives the game with random steering and checks the
// per-turn invariants for every outcome.
func TestTurnProperties(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := New(seed)
		steer := rand.New(rand.NewSource(seed * 31))

		for tick := 0; tick < 2000; tick++ {
			if steer.Intn(4) == 0 {
				g.SetDirection(Direction(steer.Intn(4)))
			}

			before := g.Grid().Clone()
			head, size, speed := g.Head(), g.Size(), g.Speed()
			oldFood, _ := g.Food()

			ev, err := g.TakeTurn()
			if err != nil {
				if !IsDeath(err) {
					t.Fatalf("seed %d tick %d: unexpected error %v", seed, tick, err)
				}
				if !g.Grid().Equal(before) || g.Head() != head || g.Size() != size {
					t.Fatalf("seed %d tick %d: state changed on %v", seed, tick, err)
				}
				break
			}

			newHead := g.Head()
			switch ev {
			case EventAte:
				if g.Size() != size+1 {
					t.Fatalf("seed %d tick %d: Size() = %d, expected %d", seed, tick, g.Size(), size+1)
				}
				if g.Speed() != speed+SpeedIncrement {
					t.Fatalf("seed %d tick %d: Speed() = %v, expected %v", seed, tick, g.Speed(), speed+SpeedIncrement)
				}
				food, ok := g.Food()
				if !ok || food == oldFood || before.At(food) != Empty {
					t.Fatalf("seed %d tick %d: new food %v (ok=%v) must be a previously empty cell", seed, tick, food, ok)
				}
				if n := g.Grid().Count(func(v int) bool { return v == Food }); n != 1 {
					t.Fatalf("seed %d tick %d: %d food cells", seed, tick, n)
				}

			case EventMoved:
				for x := 0; x < Width; x++ {
					for y := 0; y < Height; y++ {
						p := core.Point{X: x, Y: y}
						prev, cur := before.At(p), g.Grid().At(p)
						switch {
						case p == newHead:
							if cur != g.Size() {
								t.Fatalf("seed %d tick %d: head cell = %d, expected %d", seed, tick, cur, g.Size())
							}
						case prev > 0 && cur != prev-1:
							t.Fatalf("seed %d tick %d: cell %v aged %d -> %d", seed, tick, p, prev, cur)
						}
					}
				}
				if n := g.Grid().Count(func(v int) bool { return v > 0 }); n > g.Size() {
					t.Fatalf("seed %d tick %d: %d body cells exceed length %d", seed, tick, n, g.Size())
				}

			default:
				t.Fatalf("seed %d tick %d: unexpected event %v", seed, tick, ev)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New(12345)
		place(g, core.Point{X: 5, Y: 4}, DirUp)
		for range 3 {
			if _, err := g.TakeTurn(); err != nil {
				t.Fatalf("TakeTurn() failed: %v", err)
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1 != snap2 {
		t.Errorf("same seed produced different snapshots:\n%+v\n%+v", snap1, snap2)
	}
}

func TestSnapshot(t *testing.T) {
	g := New(1)
	if _, err := g.TakeTurn(); err != nil {
		t.Fatalf("TakeTurn() failed: %v", err)
	}

	snap := g.Snapshot()
	want := Snapshot{
		Turns:   1,
		HeadX:   0,
		HeadY:   1,
		Dir:     DirUp,
		Size:    StartSize,
		Speed:   StartSpeed,
		FoodX:   StartFood.X,
		FoodY:   StartFood.Y,
		HasFood: true,
		BodyLen: 1,
	}
	if snap != want {
		t.Errorf("Snapshot() = %+v, expected %+v", snap, want)
	}
}
