// Package pour implements the pour simulation: a pot that eases toward a
// tilt target, a fill meter that rises while the pot is tipped past a
// threshold, and the state machine that walks a session from the menu to a
// served cup and its fortune.
//
// The package has no terminal or network dependencies. The presentation
// layer calls Tick once per frame and forwards pointer input; the fortune
// request is issued by the caller between FinishPour and CompleteFortune.
package pour

import "math"

// Default tuning.
const (
	DefaultPourRate       = 25.0        // Fill percentage points per second
	DefaultThreshold      = 0.5         // Radians (~30°) before liquid flows
	DefaultMaxTilt        = math.Pi / 3 // Radians at full tilt
	DefaultResponsiveness = 4.0         // Easing rate per second
	DefaultGoodMin        = 80.0        // Lower edge of the gold ring window
	DefaultGoodMax        = 96.0        // Upper edge of the gold ring window
)

// Capacity is the fill level at the cup's rim.
const Capacity = 100.0

// Params holds the tunable constants of the simulation.
type Params struct {
	PourRate       float64
	Threshold      float64
	MaxTilt        float64
	Responsiveness float64
	GoodMin        float64
	GoodMax        float64
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		PourRate:       DefaultPourRate,
		Threshold:      DefaultThreshold,
		MaxTilt:        DefaultMaxTilt,
		Responsiveness: DefaultResponsiveness,
		GoodMin:        DefaultGoodMin,
		GoodMax:        DefaultGoodMax,
	}
}
