package core

// RuntimeConfig contains the settings a frontend passes to a session at
// startup.
type RuntimeConfig struct {
	TickRate int   // Frontend update ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic food placement; 0 means time-based
}

// TickSeconds returns the duration of one frontend tick in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}
