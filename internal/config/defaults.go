package config

import (
	_ "embed"
)

//go:embed defaults/tanks.yaml
var defaultTanksYAML []byte

// DefaultTanksConfig returns the default tanks configuration.
func DefaultTanksConfig() TanksConfig {
	return TanksConfig{
		Arena: ArenaConfig{
			Cols:          16,
			Rows:          16,
			GenAttempts:   999,
			MinArea:       45,
			MinExitRow:    4,
			TickRate:      60,
			DefaultRoster: 20,
		},
		Player: PlayerConfig{
			MoveDelay:     15,
			HitInvuln:     30,
			RespawnDelay:  60,
			RespawnInvuln: 120,
		},
		Projectile: ProjectileConfig{
			Speed: 0.25,
		},
		Opponents: OpponentsConfig{
			Basic:   OpponentStats{SpeedDelay: 23, HP: 1, Score: 100, FireMin: 60, FireMax: 180, SightChance: 0.3},
			Fast:    OpponentStats{SpeedDelay: 11, HP: 1, Score: 200, FireMin: 60, FireMax: 180, SightChance: 0.3},
			Armored: OpponentStats{SpeedDelay: 33, HP: 3, Score: 400, FireMin: 60, FireMax: 180, SightChance: 0.3},
			Sniper:  OpponentStats{SpeedDelay: 23, HP: 1, Score: 300, FireMin: 30, FireMax: 60, SightChance: 0.7},
		},
		AI: AIConfig{
			SightRange:     6,
			TrackMoveDelay: 30,
			TrackFireDelay: 50,
			FireReady:      20,
			RerollChance:   0.05,
			TrackDistance:  3,
		},
		PowerUps: PowerUpsConfig{
			Lifetime:     300, // 5 seconds at 60 ticks
			ShieldTicks:  600,
			FreezeTicks:  120,
			FortifyTicks: 600,
		},
		Presets: PresetsConfig{
			Easy:     PresetConfig{PlayerHP: 1, Lives: 5, Quota: 5, SpawnInterval: 240, OnScreenCap: 3},
			Normal:   PresetConfig{PlayerHP: 1, Lives: 3, Quota: 10, SpawnInterval: 180, OnScreenCap: 5},
			Hard:     PresetConfig{PlayerHP: 1, Lives: 2, Quota: 20, SpawnInterval: 120, OnScreenCap: 10},
			Hardcore: PresetConfig{PlayerHP: 1, Lives: 1, Quota: 30, SpawnInterval: 60, OnScreenCap: 20},
		},
		Levels: LevelsConfig{
			CampaignCount: 10,
			ClassicCount:  5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTanksYAML
}
