package core

// OpponentView is the observable part of an Opponent.
type OpponentView struct {
	ID        int
	Type      OpponentType
	Pos       Coord
	Facing    Dir
	HP        int
	Flash     int
	MoveTimer int
	FireTimer int
}

// Snapshot is a deep copy of the observable world state.
type Snapshot struct {
	Tick         int
	State        State
	Reason       OverReason
	Grid         *Grid
	Player       Player
	Opponents    []OpponentView
	Projectiles  []Projectile
	PowerUps     []PowerUp
	Explosions   []Explosion
	HasStructure bool
	Structure    Structure
	Kills        int
	Quota        int
	Score        int
	RosterLeft   int
	FortifyTimer int
}

// Snapshot captures the current state. Mutating it does not affect the world.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:         w.Tick,
		State:        w.State,
		Reason:       w.Reason,
		Grid:         w.Arena.Grid.Clone(),
		Player:       w.Player,
		Opponents:    make([]OpponentView, 0, len(w.Opponents)),
		Projectiles:  make([]Projectile, 0, len(w.Projectiles)),
		PowerUps:     append([]PowerUp(nil), w.PowerUps...),
		Explosions:   append([]Explosion(nil), w.Explosions...),
		Kills:        w.Kills,
		Quota:        w.Quota,
		Score:        w.Score,
		FortifyTimer: w.FortifyTimer,
	}
	for _, o := range w.Opponents {
		s.Opponents = append(s.Opponents, OpponentView{
			ID:        o.ID,
			Type:      o.Type,
			Pos:       o.Pos,
			Facing:    o.Facing,
			HP:        o.HP,
			Flash:     o.Flash,
			MoveTimer: o.MoveTimer,
			FireTimer: o.FireTimer,
		})
	}
	for _, p := range w.Projectiles {
		s.Projectiles = append(s.Projectiles, *p)
	}
	if w.Structure != nil {
		s.HasStructure = true
		s.Structure = *w.Structure
	}
	if w.Spawner != nil {
		s.RosterLeft = w.Spawner.Remaining()
	}
	return s
}
