package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	cfg := RuntimeConfig{}.Normalize()

	assert.Equal(t, 80, cfg.ScreenW)
	assert.Equal(t, 24, cfg.ScreenH)
	assert.Equal(t, 60, cfg.TickRate)
	assert.NotZero(t, cfg.Seed, "zero seed is replaced")
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	in := RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, Seed: 42}
	assert.Equal(t, in, in.Normalize())
}
