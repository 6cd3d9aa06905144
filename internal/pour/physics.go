package pour

import "math"

// FillUpdate is reported on every tick in which liquid flows.
type FillUpdate struct {
	Fill     float64
	Overflow bool
}

// PhysicsResult describes what happened to the cup during one tick.
type PhysicsResult struct {
	Flowing    bool       // Tilt was past the threshold while playing
	Update     FillUpdate // Valid only when Flowing
	SpilledNow bool       // The cup overflowed for the first time this tick
}

// IsFlowing reports whether the pot is tipped far enough to pour.
func (p Params) IsFlowing(tilt float64) bool {
	return tilt > p.Threshold
}

// StepFill integrates the fill level for one tick. Nothing changes unless the
// game is being played and the pot is past the threshold. The fill rate is
// constant regardless of how far past the threshold the pot is.
func (p Params) StepFill(s *Session, delta float64, playing bool) PhysicsResult {
	if !playing || !p.IsFlowing(s.TiltAngle) {
		return PhysicsResult{}
	}

	fill := s.FillLevel
	if delta > 0 {
		fill += p.PourRate * delta
	}

	var res PhysicsResult
	if fill > Capacity && !s.Spilled {
		s.Spilled = true
		res.SpilledNow = true
	}
	s.FillLevel = fill

	res.Flowing = true
	res.Update = FillUpdate{Fill: fill, Overflow: fill > Capacity}
	return res
}

// VisualFillFraction returns the cup fill for drawing, capped at a full cup.
func VisualFillFraction(fill float64) float64 {
	return math.Max(0, math.Min(fill, Capacity)) / Capacity
}
