package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollDrop(t *testing.T) {
	tests := []struct {
		name      string
		typ       OpponentType
		structure bool
		roll      float64
		want      PowerUpType
		ok        bool
	}{
		{"basic structure fortify", OpponentBasic, true, 0.10, PowerUpFortify, true},
		{"basic structure gap", OpponentBasic, true, 0.18, 0, false},
		{"basic structure shield", OpponentBasic, true, 0.20, PowerUpShield, true},
		{"basic structure upper bound", OpponentBasic, true, 0.25, 0, false},
		{"basic clear all", OpponentBasic, false, 0.04, PowerUpClearAll, true},
		{"basic nothing", OpponentBasic, false, 0.05, 0, false},
		{"fast freeze", OpponentFast, false, 0.0, PowerUpFreeze, true},
		{"fast clear all", OpponentFast, true, 0.15, PowerUpClearAll, true},
		{"fast nothing", OpponentFast, false, 0.20, 0, false},
		{"sniper clear all", OpponentSniper, false, 0.05, PowerUpClearAll, true},
		{"sniper fortify", OpponentSniper, false, 0.12, PowerUpFortify, true},
		{"sniper extra life", OpponentSniper, false, 0.17, PowerUpExtraLife, true},
		{"sniper nothing", OpponentSniper, false, 0.18, 0, false},
		{"armored extra life", OpponentArmored, false, 0.09, PowerUpExtraLife, true},
		{"armored shield", OpponentArmored, false, 0.10, PowerUpShield, true},
		{"armored fortify", OpponentArmored, false, 0.30, PowerUpFortify, true},
		{"armored nothing", OpponentArmored, false, 0.35, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RollDrop(tt.typ, tt.structure, tt.roll)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
