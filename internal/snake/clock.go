package snake

// Clock decides when the next turn is due. Elapsed frame time is scaled by
// the snake's speed, so a faster snake turns more often.
type Clock struct {
	accumulated float64
}

// Advance adds dt seconds at the given speed and reports whether a turn is
// due. The accumulator restarts from zero when it fires.
func (c *Clock) Advance(dt, speed float64) bool {
	c.accumulated += dt * speed
	if c.accumulated >= LengthOfTurn {
		c.accumulated = 0
		return true
	}
	return false
}
