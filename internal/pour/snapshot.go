package pour

import "github.com/vovakirdan/barista/internal/fortune"

// Snapshot is everything the presentation layer needs to draw one frame.
type Snapshot struct {
	State         GameState
	TiltAngle     float64
	Pouring       bool
	FillLevel     float64 // Uncapped
	VisualFill    float64 // min(FillLevel, 100) / 100
	Spilled       bool
	StreamVisible bool // Pot is past the pouring threshold
	CanFinish     bool
	Verdict       Verdict
	Stats         *fortune.PourStats
	Fortune       *fortune.CoffeeFortune
}

// Snapshot captures the current frame state. Stats and Fortune are copies.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		State:         m.state,
		TiltAngle:     m.session.TiltAngle,
		Pouring:       m.session.Pouring,
		FillLevel:     m.session.FillLevel,
		VisualFill:    m.session.VisualFill(),
		Spilled:       m.session.Spilled,
		StreamVisible: m.params.IsFlowing(m.session.TiltAngle),
		CanFinish:     m.CanFinish(),
		Verdict:       m.params.Judge(m.session.FillLevel),
	}
	if m.stats != nil {
		stats := *m.stats
		snap.Stats = &stats
	}
	if m.fortune != nil {
		f := *m.fortune
		snap.Fortune = &f
	}
	return snap
}
