package pour

import (
	"github.com/vovakirdan/barista/internal/core"
)

// TargetTilt returns the angle the pot eases toward for the given intent.
func (p Params) TargetTilt(pouring bool) float64 {
	if pouring {
		return p.MaxTilt
	}
	return 0
}

// EaseTilt advances the tilt angle by one frame of exponential easing:
// tilt ← lerp(tilt, target, min(1, delta·responsiveness)).
// The step never overshoots the target and the result stays in [0, MaxTilt].
func (p Params) EaseTilt(tilt float64, pouring bool, delta float64) float64 {
	if delta <= 0 {
		return core.ClampF(tilt, 0, p.MaxTilt)
	}
	step := core.ClampF(delta*p.Responsiveness, 0, 1)
	next := core.Lerp(tilt, p.TargetTilt(pouring), step)
	return core.ClampF(next, 0, p.MaxTilt)
}
