package core

// Player is the controlled tank.
type Player struct {
	Pos          Coord
	Facing       Dir
	HP           int
	Lives        int // Includes the current life
	Invuln       int // Damage is ignored while > 0
	MoveCooldown int
	Alive        bool
	RespawnTimer int
	Spawn        Coord
}

// Owner identifies who fired a projectile.
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerOpponent
)

// Projectile travels in sub-cell steps along a fixed direction.
type Projectile struct {
	X, Y   float64
	Dir    Dir
	Owner  Owner
	Active bool
}

// NewProjectile creates an active projectile at a cell.
func NewProjectile(at Coord, d Dir, owner Owner) *Projectile {
	return &Projectile{
		X:      float64(at.X),
		Y:      float64(at.Y),
		Dir:    d,
		Owner:  owner,
		Active: true,
	}
}

// Cell returns the cell the projectile currently occupies.
// Only meaningful while the position is inside the grid.
func (p *Projectile) Cell() Coord {
	return C(int(p.X), int(p.Y))
}

// Advance moves the projectile by speed and deactivates it if it leaves
// a w×h grid. It returns whether the projectile is still in bounds.
func (p *Projectile) Advance(speed float64, w, h int) bool {
	dx, dy := p.Dir.Delta()
	p.X += float64(dx) * speed
	p.Y += float64(dy) * speed
	if p.X < 0 || p.X >= float64(w) || p.Y < 0 || p.Y >= float64(h) {
		p.Active = false
		return false
	}
	return true
}

// Structure is the base defended in classic mode.
type Structure struct {
	Pos   Coord
	Alive bool
}

// Explosion is a short-lived visual effect record.
type Explosion struct {
	Pos    Coord
	Frames int
}

// explosionFrames is how long an explosion record lives.
const explosionFrames = 20
