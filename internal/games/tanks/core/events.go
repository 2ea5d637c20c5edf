package core

// EventKind enumerates observable simulation outcomes.
type EventKind uint8

const (
	EventOpponentSpawned EventKind = iota
	EventOpponentKilled
	EventPlayerDamaged
	EventPlayerKilled
	EventPlayerRespawned
	EventPowerUpDropped
	EventPowerUpCollected
	EventStructureDestroyed
	EventLevelCleared
	EventSessionOver
	EventWarning
)

func (k EventKind) String() string {
	switch k {
	case EventOpponentSpawned:
		return "OpponentSpawned"
	case EventOpponentKilled:
		return "OpponentKilled"
	case EventPlayerDamaged:
		return "PlayerDamaged"
	case EventPlayerKilled:
		return "PlayerKilled"
	case EventPlayerRespawned:
		return "PlayerRespawned"
	case EventPowerUpDropped:
		return "PowerUpDropped"
	case EventPowerUpCollected:
		return "PowerUpCollected"
	case EventStructureDestroyed:
		return "StructureDestroyed"
	case EventLevelCleared:
		return "LevelCleared"
	case EventSessionOver:
		return "SessionOver"
	case EventWarning:
		return "Warning"
	default:
		return "Unknown"
	}
}

// OverReason says why a session ended.
type OverReason uint8

const (
	OverNone OverReason = iota
	OverLivesExhausted
	OverStructureDestroyed
)

func (r OverReason) String() string {
	switch r {
	case OverLivesExhausted:
		return "lives exhausted"
	case OverStructureDestroyed:
		return "structure destroyed"
	default:
		return "none"
	}
}

// Warning names a recovered, non-fatal condition.
type Warning uint8

const (
	WarnNone Warning = iota
	WarnGenerationExhausted
	WarnEmptyRoster
	WarnLevelFallback
)

func (w Warning) String() string {
	switch w {
	case WarnGenerationExhausted:
		return "generation exhausted, using best-effort layout"
	case WarnEmptyRoster:
		return "empty roster, using default Basic roster"
	case WarnLevelFallback:
		return "level missing or malformed, generating procedurally"
	default:
		return "none"
	}
}

// Event is one outcome produced during Start or Step.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind     EventKind
	Pos      Coord
	Opponent OpponentType
	PowerUp  PowerUpType
	Reason   OverReason
	Warning  Warning
	Score    int // Points awarded by an OpponentKilled event
}
