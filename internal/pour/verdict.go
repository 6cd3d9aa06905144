package pour

// Verdict classifies the current fill level for HUD hints.
type Verdict int

const (
	VerdictEmpty Verdict = iota
	VerdictUnder
	VerdictGood
	VerdictOver     // Above the gold ring, still in the cup
	VerdictOverflow // Past the rim
)

// String returns a short label for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictEmpty:
		return "empty"
	case VerdictUnder:
		return "under"
	case VerdictGood:
		return "good"
	case VerdictOver:
		return "over"
	case VerdictOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// Judge classifies a fill level against the gold ring window.
func (p Params) Judge(fill float64) Verdict {
	switch {
	case fill <= 0:
		return VerdictEmpty
	case fill > Capacity:
		return VerdictOverflow
	case fill < p.GoodMin:
		return VerdictUnder
	case fill <= p.GoodMax:
		return VerdictGood
	default:
		return VerdictOver
	}
}

// ServeLabel is the caption of the serve control for a fill level.
func ServeLabel(fill float64) string {
	if fill > Capacity {
		return "Clean Up & Serve"
	}
	return "Serve Coffee"
}
