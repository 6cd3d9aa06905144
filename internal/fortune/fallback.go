package fortune

import "math"

// Degraded is returned whenever the remote reading fails for any reason.
func Degraded() CoffeeFortune {
	return CoffeeFortune{
		Rating:         5,
		Title:          "The Silent Cup",
		Fortune:        "The spirits are quiet today. Try pouring again.",
		BaristaComment: "Unable to connect to the ether (API Error).",
	}
}

// Offline is the reading used when no credential is configured.
// The rating is floor(fill/10) and is not clamped, so an overflowing pour can
// rate above 10.
func Offline(stats PourStats) CoffeeFortune {
	return CoffeeFortune{
		Rating:         int(math.Floor(stats.FillPercentage / 10)),
		Title:          "The Mystery Pour",
		Fortune:        "The mists of the future are clouded... (Check API Key)",
		BaristaComment: "I can't quite read this cup.",
	}
}
