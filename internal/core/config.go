package core

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // columns available to the game
	ScreenH  int   // rows available to the game
	TickRate int   // frames per second
	Seed     int64 // 0 picks a time-based seed
}

// DefaultConfig is an 80x24 terminal at 60 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the status the platform shows around the game.
type GameState struct {
	Score  int
	Paused bool
	Halted bool // stopped on an internal error, only restart continues
}

// StepResult is returned from every Step.
type StepResult struct {
	State GameState
	Moved bool // a movement step ran this frame
}

// Summary describes a run when it ends, for the session history.
type Summary struct {
	Score  int    // food eaten
	Length int    // final chain length
	Ticks  uint64 // movement steps taken
}
