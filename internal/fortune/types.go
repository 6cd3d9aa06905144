// Package fortune turns the statistics of a finished pour into a coffee
// reading. A remote generative model writes the reading when a credential is
// configured; otherwise, and on any failure, a fixed local fortune is used.
package fortune

// PourStats is the immutable snapshot of a pour taken when the player serves.
type PourStats struct {
	FillPercentage float64 // Final fill level, uncapped (overflow > 100)
	Spilled        bool    // Whether the cup overflowed at any point
	TimeTaken      float64 // Seconds from first pour input to serving
}

// CoffeeFortune is the reading shown to the player once a pour is analyzed.
type CoffeeFortune struct {
	Rating         int    `json:"rating"`
	Title          string `json:"title"`
	Fortune        string `json:"fortune"`
	BaristaComment string `json:"baristaComment"`
}

// Source records which path produced a fortune.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceOffline  Source = "offline"
	SourceDegraded Source = "degraded"
)

// Result pairs a fortune with the path that produced it.
type Result struct {
	Fortune CoffeeFortune
	Source  Source
}
