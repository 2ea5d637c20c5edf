package core

import "time"

// RuntimeConfig is what the front end hands a game on Reset: the screen it
// will draw into, the tick rate and the seed of the session.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // Simulation ticks per second
	Seed     int64 // 0 picks a time-based seed in Normalize
}

// DefaultConfig returns an 80x24 screen at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Normalize fills zero or negative fields from DefaultConfig and replaces
// a zero seed with the current time.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	d := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = d.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = d.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// GameState is the summary the front end shows and persists.
type GameState struct {
	Score    int
	Level    int // 1-based; 0 when the game has no levels
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
	// Messages are short notices produced during the tick, such as
	// warnings or collected power-ups, in the order they happened.
	Messages []string
}
