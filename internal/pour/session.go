package pour

import "time"

// Session is the ephemeral state of one pour, from Start to Reset.
type Session struct {
	TiltAngle float64   // Radians, [0, MaxTilt]
	Pouring   bool      // Pour intent currently held
	FillLevel float64   // Percent of capacity, uncapped
	Spilled   bool      // Sticky once FillLevel exceeded Capacity
	StartTime time.Time // Zero until the first pour input
}

// Started reports whether the player has pressed pour in this session.
func (s Session) Started() bool {
	return !s.StartTime.IsZero()
}

// VisualFill returns the capped fill fraction in [0, 1].
func (s Session) VisualFill() float64 {
	return VisualFillFraction(s.FillLevel)
}
