// Package config provides YAML-based configuration loading for the pour
// simulation and the fortune teller, plus credential lookup from the
// environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/barista/internal/pour"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete application configuration.
type Config struct {
	Pour    PourConfig    `yaml:"pour"`
	Fortune FortuneConfig `yaml:"fortune"`
}

// PourConfig defines the simulation tuning.
type PourConfig struct {
	PourRate       float64 `yaml:"pour_rate"`
	Threshold      float64 `yaml:"threshold"`
	MaxTilt        float64 `yaml:"max_tilt"`
	Responsiveness float64 `yaml:"responsiveness"`
	GoodMin        float64 `yaml:"good_min"`
	GoodMax        float64 `yaml:"good_max"`
}

// FortuneConfig defines the remote fortune teller.
type FortuneConfig struct {
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
	KeyEnv  string        `yaml:"key_env"` // Primary environment variable holding the API key
}

// Params converts the pour section into simulation parameters.
func (c Config) Params() pour.Params {
	return pour.Params{
		PourRate:       c.Pour.PourRate,
		Threshold:      c.Pour.Threshold,
		MaxTilt:        c.Pour.MaxTilt,
		Responsiveness: c.Pour.Responsiveness,
		GoodMin:        c.Pour.GoodMin,
		GoodMax:        c.Pour.GoodMax,
	}
}

// Validate checks that the configuration describes a playable simulation.
func (c Config) Validate() error {
	p := c.Pour
	switch {
	case p.PourRate <= 0:
		return fmt.Errorf("%w: pour_rate must be positive, got %v", ErrInvalid, p.PourRate)
	case p.MaxTilt <= 0:
		return fmt.Errorf("%w: max_tilt must be positive, got %v", ErrInvalid, p.MaxTilt)
	case p.Threshold <= 0 || p.Threshold >= p.MaxTilt:
		return fmt.Errorf("%w: threshold must be in (0, max_tilt), got %v", ErrInvalid, p.Threshold)
	case p.Responsiveness <= 0:
		return fmt.Errorf("%w: responsiveness must be positive, got %v", ErrInvalid, p.Responsiveness)
	case p.GoodMin <= 0 || p.GoodMin > p.GoodMax || p.GoodMax > pour.Capacity:
		return fmt.Errorf("%w: good window [%v, %v] must lie within (0, %v]", ErrInvalid, p.GoodMin, p.GoodMax, pour.Capacity)
	case c.Fortune.Timeout < 0:
		return fmt.Errorf("%w: fortune timeout must not be negative", ErrInvalid)
	}
	return nil
}
