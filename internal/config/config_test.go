package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/barista/internal/pour"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultYAML)
	require.NoError(t, err)

	def := Default()
	assert.InDelta(t, def.Pour.MaxTilt, cfg.Pour.MaxTilt, 1e-9)
	cfg.Pour.MaxTilt = def.Pour.MaxTilt
	assert.Equal(t, def, cfg)
	assert.Equal(t, pour.DefaultParams(), def.Params())
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "barista.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pour:\n  pour_rate: 40\nfortune:\n  timeout: 5s\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 40.0, cfg.Pour.PourRate)
	assert.Equal(t, 5*time.Second, cfg.Fortune.Timeout)
	assert.Equal(t, pour.DefaultThreshold, cfg.Pour.Threshold)
	assert.Equal(t, DefaultKeyEnv, cfg.Fortune.KeyEnv)
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pour:\n  threshold: 2\n"), 0o600))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rate", func(c *Config) { c.Pour.PourRate = 0 }},
		{"negative threshold", func(c *Config) { c.Pour.Threshold = -0.1 }},
		{"zero responsiveness", func(c *Config) { c.Pour.Responsiveness = 0 }},
		{"inverted window", func(c *Config) { c.Pour.GoodMin = 97 }},
		{"window past rim", func(c *Config) { c.Pour.GoodMax = 120 }},
		{"negative timeout", func(c *Config) { c.Fortune.Timeout = -time.Second }},
	}

	require.NoError(t, Default().Validate())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestAPIKeyLookup(t *testing.T) {
	cfg := Default()

	t.Setenv(DefaultKeyEnv, "")
	t.Setenv(FallbackKeyEnv, "")
	assert.Empty(t, cfg.APIKey())

	t.Setenv(FallbackKeyEnv, "fallback")
	assert.Equal(t, "fallback", cfg.APIKey())

	t.Setenv(DefaultKeyEnv, " primary ")
	assert.Equal(t, "primary", cfg.APIKey())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("BARISTA_TEST_KEY=from-dotenv\n"), 0o600))

	t.Setenv("BARISTA_TEST_KEY", "")
	require.NoError(t, os.Unsetenv("BARISTA_TEST_KEY"))

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "from-dotenv", os.Getenv("BARISTA_TEST_KEY"))

	cfg := Default()
	cfg.Fortune.KeyEnv = "BARISTA_TEST_KEY"
	assert.Equal(t, "from-dotenv", cfg.APIKey())
}
