package pour

// GameState is the lifecycle stage of the game.
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateAnalyzing
	StateFinished
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateAnalyzing:
		return "analyzing"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}
