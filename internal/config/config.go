// Package config provides YAML-based game configuration loading and
// difficulty presets for the tanks game.
package config

// TanksConfig contains all tunable parameters of the tanks game.
type TanksConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Opponents  OpponentsConfig  `yaml:"opponents"`
	AI         AIConfig         `yaml:"ai"`
	PowerUps   PowerUpsConfig   `yaml:"powerups"`
	Presets    PresetsConfig    `yaml:"presets"`
	Levels     LevelsConfig     `yaml:"levels"`
}

// ArenaConfig defines the grid and the procedural generator limits.
type ArenaConfig struct {
	Cols          int `yaml:"cols"`
	Rows          int `yaml:"rows"`
	GenAttempts   int `yaml:"gen_attempts"`   // Retry budget for the generator
	MinArea       int `yaml:"min_area"`       // Minimum reachable cells per spawn point
	MinExitRow    int `yaml:"min_exit_row"`   // Some reachable cell must be at or below this row
	TickRate      int `yaml:"tick_rate"`      // Simulation ticks per second
	DefaultRoster int `yaml:"default_roster"` // Basic opponents used when a level lists none
}

// PlayerConfig defines the player tank.
type PlayerConfig struct {
	MoveDelay     int `yaml:"move_delay"`     // Ticks between one-cell steps
	HitInvuln     int `yaml:"hit_invuln"`     // Invulnerability after taking a hit
	RespawnDelay  int `yaml:"respawn_delay"`  // Ticks before a destroyed tank reappears
	RespawnInvuln int `yaml:"respawn_invuln"` // Invulnerability granted on respawn
}

// ProjectileConfig defines projectile motion.
type ProjectileConfig struct {
	Speed float64 `yaml:"speed"` // Cells per tick
}

// OpponentStats are the fixed attributes of one opponent type.
type OpponentStats struct {
	SpeedDelay  int     `yaml:"speed_delay"`
	HP          int     `yaml:"hp"`
	Score       int     `yaml:"score"`
	FireMin     int     `yaml:"fire_min"`
	FireMax     int     `yaml:"fire_max"`
	SightChance float64 `yaml:"sight_chance"`
}

// OpponentsConfig holds the per-type stats table.
type OpponentsConfig struct {
	Basic   OpponentStats `yaml:"basic"`
	Fast    OpponentStats `yaml:"fast"`
	Armored OpponentStats `yaml:"armored"`
	Sniper  OpponentStats `yaml:"sniper"`
}

// AIConfig defines opponent decision tuning.
type AIConfig struct {
	SightRange     int     `yaml:"sight_range"`      // Alignment distance (exclusive)
	TrackMoveDelay int     `yaml:"track_move_delay"` // Movement re-arm after snapping to the player
	TrackFireDelay int     `yaml:"track_fire_delay"` // Fire re-arm after snapping to the player
	FireReady      int     `yaml:"fire_ready"`       // Fire immediately when the timer is at or below this
	RerollChance   float64 `yaml:"reroll_chance"`    // Direction re-roll after a successful step
	TrackDistance  int     `yaml:"track_distance"`   // Both axis gaps must exceed this for bonus weights
}

// PowerUpsConfig defines power-up timers.
type PowerUpsConfig struct {
	Lifetime     int `yaml:"lifetime"`
	ShieldTicks  int `yaml:"shield_ticks"`
	FreezeTicks  int `yaml:"freeze_ticks"`
	FortifyTicks int `yaml:"fortify_ticks"`
}

// PresetConfig is the tuning selected by a difficulty preset.
type PresetConfig struct {
	PlayerHP      int `yaml:"player_hp"`
	Lives         int `yaml:"lives"`
	Quota         int `yaml:"quota"`
	SpawnInterval int `yaml:"spawn_interval"` // Ticks between spawns
	OnScreenCap   int `yaml:"on_screen_cap"`
}

// PresetsConfig holds one PresetConfig per difficulty.
type PresetsConfig struct {
	Easy     PresetConfig `yaml:"easy"`
	Normal   PresetConfig `yaml:"normal"`
	Hard     PresetConfig `yaml:"hard"`
	Hardcore PresetConfig `yaml:"hardcore"`
}

// LevelsConfig describes the shipped level sets.
type LevelsConfig struct {
	Dir           string `yaml:"dir"`            // Optional directory overriding embedded levels
	CampaignCount int    `yaml:"campaign_count"` // Campaign wraps to level 1 after this
	ClassicCount  int    `yaml:"classic_count"`  // Classic wraps to level 1 after this
}
