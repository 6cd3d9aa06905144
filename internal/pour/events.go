package pour

// Event is emitted by the Machine to its subscribers.
type Event interface {
	pourEvent()
}

// StateChanged is emitted after every accepted transition.
type StateChanged struct {
	From GameState
	To   GameState
}

func (StateChanged) pourEvent() {}

// FillUpdated is emitted on every tick in which liquid flows.
type FillUpdated struct {
	FillUpdate
}

func (FillUpdated) pourEvent() {}

// Spilled is emitted once per session, on the tick the cup first overflows.
type Spilled struct {
	Fill float64
}

func (Spilled) pourEvent() {}
