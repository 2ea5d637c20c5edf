package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML TanksConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &fromYAML))
	assert.Equal(t, DefaultTanksConfig(), fromYAML)
}

func TestDefaultsValidate(t *testing.T) {
	require.NoError(t, DefaultTanksConfig().Validate())
}

func TestLoadTanksCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tanks.yaml")
	data := []byte("presets:\n  easy:\n    lives: 9\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadTanks(path)
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Presets.Easy.Lives)
	// untouched keys keep defaults
	assert.Equal(t, 5, cfg.Presets.Easy.Quota)
	assert.Equal(t, 16, cfg.Arena.Cols)
}

func TestLoadTanksCustomPathErrors(t *testing.T) {
	_, err := LoadTanks(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("opponents:\n  sniper:\n    fire_min: 90\n    fire_max: 10\n"), 0o644))
	_, err = LoadTanks(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sniper")
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
	}{
		{"", DifficultyNormal},
		{"easy", DifficultyEasy},
		{" HARD ", DifficultyHard},
		{"Hardcore", DifficultyHardcore},
	}
	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseDifficulty("nightmare")
	assert.Error(t, err)
}

func TestPresetTable(t *testing.T) {
	cfg := DefaultTanksConfig()

	easy := cfg.Preset(DifficultyEasy)
	assert.Equal(t, PresetConfig{PlayerHP: 1, Lives: 5, Quota: 5, SpawnInterval: 240, OnScreenCap: 3}, easy)

	hardcore := cfg.Preset(DifficultyHardcore)
	assert.Equal(t, 1, hardcore.Lives)
	assert.Equal(t, 20, hardcore.OnScreenCap)

	assert.Equal(t, cfg.Presets.Normal, cfg.Preset("bogus"))
}
