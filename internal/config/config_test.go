package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"ENV", "LOG_LEVEL", "PASSGEN_LENGTH", "PASSGEN_TYPE", "PASSGEN_COUNT",
		"PASSGEN_COMPLEX", "PASSGEN_FORMAT", "PASSGEN_MIN_ENTROPY"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, Config{
		Env:      "development",
		LogLevel: "info",
		Length:   12,
		Type:     "standard",
		Count:    1,
		Complex:  true,
		Format:   "text",
	}, cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PASSGEN_LENGTH", "24")
	t.Setenv("PASSGEN_TYPE", "alphanumeric")
	t.Setenv("PASSGEN_COUNT", "5")
	t.Setenv("PASSGEN_COMPLEX", "false")
	t.Setenv("PASSGEN_FORMAT", "yaml")
	t.Setenv("PASSGEN_MIN_ENTROPY", "60.5")

	cfg := Load()
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 24, cfg.Length)
	assert.Equal(t, "alphanumeric", cfg.Type)
	assert.Equal(t, 5, cfg.Count)
	assert.False(t, cfg.Complex)
	assert.Equal(t, "yaml", cfg.Format)
	assert.InDelta(t, 60.5, cfg.MinEntropy, 0.0001)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("PASSGEN_LENGTH", "twelve")
	t.Setenv("PASSGEN_COMPLEX", "maybe")
	t.Setenv("PASSGEN_MIN_ENTROPY", "lots")

	cfg := Load()
	assert.Equal(t, 12, cfg.Length)
	assert.True(t, cfg.Complex)
	assert.Zero(t, cfg.MinEntropy)
}
