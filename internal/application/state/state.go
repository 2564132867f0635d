package state

// GameState represents the current state of a run
type GameState int

const (
	StateIntro GameState = iota
	StatePlaying
	StatePaused
	StateWon
	StateLost
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateIntro:
		return "Intro"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateWon:
		return "Won"
	case StateLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Ended reports whether the run is over
func (s GameState) Ended() bool {
	return s == StateWon || s == StateLost
}
