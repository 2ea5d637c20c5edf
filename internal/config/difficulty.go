package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy     DifficultyPreset = "easy"
	DifficultyNormal   DifficultyPreset = "normal"
	DifficultyHard     DifficultyPreset = "hard"
	DifficultyHardcore DifficultyPreset = "hardcore"
)

// AllDifficulties lists presets in increasing order of difficulty.
var AllDifficulties = []DifficultyPreset{
	DifficultyEasy,
	DifficultyNormal,
	DifficultyHard,
	DifficultyHardcore,
}

// ParseDifficulty maps a user-supplied name to a preset.
// An empty string selects DifficultyNormal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyHard:
		return DifficultyHard, nil
	case DifficultyHardcore:
		return DifficultyHardcore, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or hardcore)", s)
	}
}

// Preset returns the tuning for a difficulty. Unknown presets get Normal.
func (c TanksConfig) Preset(d DifficultyPreset) PresetConfig {
	switch d {
	case DifficultyEasy:
		return c.Presets.Easy
	case DifficultyHard:
		return c.Presets.Hard
	case DifficultyHardcore:
		return c.Presets.Hardcore
	default:
		return c.Presets.Normal
	}
}
