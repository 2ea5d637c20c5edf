package core

import bt "github.com/joeycumines/go-behaviortree"

// OpponentType tags an opponent with its fixed stats.
type OpponentType uint8

const (
	OpponentBasic OpponentType = iota
	OpponentFast
	OpponentArmored
	OpponentSniper
)

// AllOpponentTypes lists every opponent type.
var AllOpponentTypes = [...]OpponentType{OpponentBasic, OpponentFast, OpponentArmored, OpponentSniper}

func (t OpponentType) String() string {
	switch t {
	case OpponentBasic:
		return "Basic"
	case OpponentFast:
		return "Fast"
	case OpponentArmored:
		return "Armored"
	case OpponentSniper:
		return "Sniper"
	default:
		return "Unknown"
	}
}

// Code returns the roster character used in ENEMIES lines.
func (t OpponentType) Code() rune {
	switch t {
	case OpponentFast:
		return 'f'
	case OpponentArmored:
		return 'a'
	case OpponentSniper:
		return 's'
	default:
		return 'b'
	}
}

// OpponentTypeFromCode maps an ENEMIES code character to a type.
func OpponentTypeFromCode(r rune) (OpponentType, bool) {
	switch r {
	case 'b':
		return OpponentBasic, true
	case 'f':
		return OpponentFast, true
	case 'a':
		return OpponentArmored, true
	case 's':
		return OpponentSniper, true
	default:
		return 0, false
	}
}

// OpponentStats are the attributes fixed by an opponent's type.
type OpponentStats struct {
	SpeedDelay  int     // Ticks between steps
	HP          int     // Hits to destroy
	Score       int     // Points awarded on kill
	FireMin     int     // Fire interval lower bound (inclusive)
	FireMax     int     // Fire interval upper bound (inclusive)
	SightChance float64 // Per-tick probability of checking alignment with the player
}

// StatsTable holds stats indexed by OpponentType.
type StatsTable [len(AllOpponentTypes)]OpponentStats

// DefaultStats returns the stock opponent table.
func DefaultStats() StatsTable {
	return StatsTable{
		OpponentBasic:   {SpeedDelay: 23, HP: 1, Score: 100, FireMin: 60, FireMax: 180, SightChance: 0.3},
		OpponentFast:    {SpeedDelay: 11, HP: 1, Score: 200, FireMin: 60, FireMax: 180, SightChance: 0.3},
		OpponentArmored: {SpeedDelay: 33, HP: 3, Score: 400, FireMin: 60, FireMax: 180, SightChance: 0.3},
		OpponentSniper:  {SpeedDelay: 23, HP: 1, Score: 300, FireMin: 30, FireMax: 60, SightChance: 0.7},
	}
}

// Of returns the stats for a type, falling back to Basic.
func (s StatsTable) Of(t OpponentType) OpponentStats {
	if int(t) < len(s) {
		return s[t]
	}
	return s[OpponentBasic]
}

// flashTicks is the invulnerability window after a non-lethal hit.
const flashTicks = 10

// Opponent is an AI-controlled tank.
type Opponent struct {
	ID        int
	Type      OpponentType
	Pos       Coord
	Facing    Dir
	HP        int
	MoveTimer int // Ticks until the next step attempt
	FireTimer int // Ticks until the next scheduled shot
	Flash     int // Invulnerability window remaining
	Alive     bool

	stats OpponentStats
	brain bt.Node
}

// NewOpponent creates an opponent with full stats for its type, facing down.
func NewOpponent(id int, t OpponentType, pos Coord, stats OpponentStats, rng Rand) *Opponent {
	return &Opponent{
		ID:        id,
		Type:      t,
		Pos:       pos,
		Facing:    DirDown,
		HP:        stats.HP,
		MoveTimer: stats.SpeedDelay,
		FireTimer: randRange(rng, stats.FireMin, stats.FireMax),
		Alive:     true,
		stats:     stats,
	}
}

// Stats returns the opponent's type stats.
func (o *Opponent) Stats() OpponentStats {
	return o.stats
}

// Invulnerable reports whether the flash window is active.
func (o *Opponent) Invulnerable() bool {
	return o.Flash > 0
}

// TakeDamage applies one hit. Hits during the flash window are ignored.
func (o *Opponent) TakeDamage() HitResult {
	if !o.Alive || o.Invulnerable() {
		return HitNone
	}
	o.HP--
	if o.HP <= 0 {
		o.Alive = false
		return HitLethal
	}
	o.Flash = flashTicks
	return HitActor
}

func (o *Opponent) redrawFireTimer(rng Rand) {
	o.FireTimer = randRange(rng, o.stats.FireMin, o.stats.FireMax)
}
