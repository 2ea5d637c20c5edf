package core

// PowerUpType is the effect granted on pickup.
type PowerUpType uint8

const (
	PowerUpClearAll  PowerUpType = iota // Destroys every live opponent
	PowerUpShield                       // Temporary invulnerability
	PowerUpExtraLife                    // One extra hit point
	PowerUpFreeze                       // Delays every opponent's timers
	PowerUpFortify                      // Steel protection around the structure
)

func (t PowerUpType) String() string {
	switch t {
	case PowerUpClearAll:
		return "ClearAll"
	case PowerUpShield:
		return "Shield"
	case PowerUpExtraLife:
		return "ExtraLife"
	case PowerUpFreeze:
		return "Freeze"
	case PowerUpFortify:
		return "Fortify"
	default:
		return "Unknown"
	}
}

// PowerUp is a collectible lying on a cell until it expires.
type PowerUp struct {
	Pos   Coord
	Type  PowerUpType
	Timer int
}

// dropBand maps a half-open roll interval [from, to) to a power-up.
type dropBand struct {
	from, to float64
	kind     PowerUpType
}

var (
	// Rolls in [0.15, 0.20) must drop nothing, so the shield band sits
	// just above the gap.
	basicStructureDrops = []dropBand{
		{0, 0.15, PowerUpFortify},
		{0.20, 0.25, PowerUpShield},
	}
	basicDrops = []dropBand{
		{0, 0.05, PowerUpClearAll},
	}
	fastDrops = []dropBand{
		{0, 0.15, PowerUpFreeze},
		{0.15, 0.20, PowerUpClearAll},
	}
	sniperDrops = []dropBand{
		{0, 0.10, PowerUpClearAll},
		{0.10, 0.15, PowerUpFortify},
		{0.15, 0.18, PowerUpExtraLife},
	}
	armoredDrops = []dropBand{
		{0, 0.10, PowerUpExtraLife},
		{0.10, 0.25, PowerUpShield},
		{0.25, 0.35, PowerUpFortify},
	}
)

// RollDrop resolves a kill's drop roll in [0, 1) against the table for the
// opponent type. At most one power-up results.
func RollDrop(t OpponentType, structureMode bool, roll float64) (PowerUpType, bool) {
	var bands []dropBand
	switch t {
	case OpponentBasic:
		if structureMode {
			bands = basicStructureDrops
		} else {
			bands = basicDrops
		}
	case OpponentFast:
		bands = fastDrops
	case OpponentSniper:
		bands = sniperDrops
	case OpponentArmored:
		bands = armoredDrops
	}
	for _, b := range bands {
		if roll >= b.from && roll < b.to {
			return b.kind, true
		}
	}
	return 0, false
}
