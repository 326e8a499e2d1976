package snake

// Snapshot captures the game state for determinism testing and logging.
type Snapshot struct {
	Turns   uint64
	HeadX   int
	HeadY   int
	Dir     Direction
	Size    int
	Speed   float64
	FoodX   int
	FoodY   int
	HasFood bool
	BodyLen int // Number of positive cells on the grid
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	food, ok := g.Food()
	return Snapshot{
		Turns:   g.turns,
		HeadX:   g.head.X,
		HeadY:   g.head.Y,
		Dir:     g.direction,
		Size:    g.size,
		Speed:   g.speed,
		FoodX:   food.X,
		FoodY:   food.Y,
		HasFood: ok,
		BodyLen: g.grid.Count(func(v int) bool { return v > 0 }),
	}
}
