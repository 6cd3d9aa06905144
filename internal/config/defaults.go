package config

import (
	_ "embed"

	"github.com/vovakirdan/barista/internal/fortune"
	"github.com/vovakirdan/barista/internal/pour"
)

//go:embed defaults/barista.yaml
var defaultYAML []byte

// DefaultKeyEnv is the environment variable checked first for the API key.
const DefaultKeyEnv = "GEMINI_API_KEY"

// FallbackKeyEnv is checked when the primary variable is empty.
const FallbackKeyEnv = "API_KEY"

// Default returns the hard-coded default configuration.
func Default() Config {
	p := pour.DefaultParams()
	return Config{
		Pour: PourConfig{
			PourRate:       p.PourRate,
			Threshold:      p.Threshold,
			MaxTilt:        p.MaxTilt,
			Responsiveness: p.Responsiveness,
			GoodMin:        p.GoodMin,
			GoodMax:        p.GoodMax,
		},
		Fortune: FortuneConfig{
			Model:   fortune.DefaultModel,
			Timeout: fortune.DefaultTimeout,
			KeyEnv:  DefaultKeyEnv,
		},
	}
}
