package core

// AIParams tunes the opponent decision tree.
type AIParams struct {
	SightRange     int     // Alignment distance, exclusive
	TrackMoveDelay int     // Movement re-arm after turning toward the player
	TrackFireDelay int     // Fire re-arm after turning toward the player
	FireReady      int     // Fire on sighting when the timer is at or below this
	RerollChance   float64 // Direction re-roll after a successful step
	TrackDistance  int     // Both gaps must exceed this for tracking bonuses
}

// DefaultAIParams returns the stock AI tuning.
func DefaultAIParams() AIParams {
	return AIParams{
		SightRange:     6,
		TrackMoveDelay: 30,
		TrackFireDelay: 50,
		FireReady:      20,
		RerollChance:   0.05,
		TrackDistance:  3,
	}
}

// Rules is the full configuration surface consumed by a World.
type Rules struct {
	Cols, Rows int
	Arena      ArenaParams
	Stats      StatsTable
	AI         AIParams

	ProjectileSpeed float64

	PlayerHP        int
	Lives           int
	PlayerMoveDelay int
	HitInvuln       int
	RespawnDelay    int
	RespawnInvuln   int

	Quota         int // Length of generated default rosters
	SpawnInterval int
	OnScreenCap   int

	PowerUpLifetime int
	ShieldTicks     int
	FreezeTicks     int
	FortifyTicks    int
}

// DefaultRules returns the normal-difficulty rules on a 16x16 arena.
func DefaultRules() Rules {
	return Rules{
		Cols:            16,
		Rows:            16,
		Arena:           DefaultArenaParams(),
		Stats:           DefaultStats(),
		AI:              DefaultAIParams(),
		ProjectileSpeed: 0.25,
		PlayerHP:        1,
		Lives:           3,
		PlayerMoveDelay: 15,
		HitInvuln:       30,
		RespawnDelay:    60,
		RespawnInvuln:   120,
		Quota:           10,
		SpawnInterval:   180,
		OnScreenCap:     5,
		PowerUpLifetime: 300,
		ShieldTicks:     600,
		FreezeTicks:     120,
		FortifyTicks:    600,
	}
}
