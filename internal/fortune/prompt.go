package fortune

import (
	"fmt"
	"strings"
)

// Praise window communicated to the model. The UI uses a slightly wider
// window (see pour.Verdict) for its own gold-ring hint.
const (
	TargetMin = 80
	TargetMax = 95
)

// BuildPrompt renders the instruction sent to the model for a pour.
func BuildPrompt(stats PourStats) string {
	spilled := "No, clean."
	if stats.Spilled {
		spilled = "Yes, messy!"
	}

	var b strings.Builder
	b.WriteString("You are a wise, slightly mystical, but modern Coffee Fortune Teller and Master Barista.\n")
	b.WriteString("A user has just poured a cup of coffee in a simulation.\n\n")
	b.WriteString("Here are their stats:\n")
	fmt.Fprintf(&b, "- Fill Percentage: %.1f%% (Target was %d-%d%%)\n", stats.FillPercentage, TargetMin, TargetMax)
	fmt.Fprintf(&b, "- Spilled: %s\n", spilled)
	fmt.Fprintf(&b, "- Time Taken: %.1f seconds.\n\n", stats.TimeTaken)
	b.WriteString("Based on this performance, generate a \"Coffee Reading\" (fortune) and a critique of their technique.\n")
	b.WriteString("Rate the pour from 0 to 10.\n")
	b.WriteString("If they spilled or underfilled/overfilled, be gently teasing but constructive.\n")
	fmt.Fprintf(&b, "If they did well (%d-%d%%), be praiseworthy and give a lucky fortune.\n\n", TargetMin, TargetMax)
	b.WriteString("Return the response in JSON.\n")
	return b.String()
}
