// Package core provides the tank battle simulation: arena generation and
// validation, opponents and their decision trees, projectiles, power-ups,
// the spawn scheduler and the per-tick World orchestrator.
// This package is UI-agnostic and deterministic for a given Rand.
package core

import "fmt"

// Dir represents a facing or movement direction.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// AllDirs lists every direction in declaration order.
var AllDirs = [...]Dir{DirUp, DirRight, DirDown, DirLeft}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Coord represents a cell on the grid.
// X increases to the right, Y increases downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns a new Coord one step in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Tile is the kind of terrain occupying one cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileBrick
	TileSteel
	TileWater
	TileFoliage
)

type tileAttrs struct {
	name             string
	glyph            rune // level description character
	walkable         bool
	destructible     bool
	blocksProjectile bool
}

var tileTable = [...]tileAttrs{
	TileEmpty:   {name: "Empty", glyph: '.', walkable: true},
	TileBrick:   {name: "Brick", glyph: '#', destructible: true, blocksProjectile: true},
	TileSteel:   {name: "Steel", glyph: '@', blocksProjectile: true},
	TileWater:   {name: "Water", glyph: '~'},
	TileFoliage: {name: "Foliage", glyph: '%', walkable: true},
}

func (t Tile) attrs() tileAttrs {
	if int(t) < len(tileTable) {
		return tileTable[t]
	}
	return tileTable[TileSteel]
}

// Walkable reports whether actors may occupy the tile.
func (t Tile) Walkable() bool { return t.attrs().walkable }

// Destructible reports whether a projectile hit clears the tile.
func (t Tile) Destructible() bool { return t.attrs().destructible }

// BlocksProjectile reports whether the tile stops projectiles.
func (t Tile) BlocksProjectile() bool { return t.attrs().blocksProjectile }

// Glyph returns the level description character for the tile.
func (t Tile) Glyph() rune { return t.attrs().glyph }

func (t Tile) String() string { return t.attrs().name }

// TileFromGlyph maps a level description character to a tile.
// Unrecognized characters are Empty.
func TileFromGlyph(r rune) Tile {
	switch r {
	case '#':
		return TileBrick
	case '@':
		return TileSteel
	case '~':
		return TileWater
	case '%':
		return TileFoliage
	default:
		return TileEmpty
	}
}

// Rand is the randomness source threaded through generation, AI and drops.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// randRange returns a uniform integer in [lo, hi].
func randRange(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// HitResult is the outcome of applying a projectile to something.
type HitResult uint8

const (
	HitNone HitResult = iota
	HitTerrain
	HitActor
	HitLethal
)

func (h HitResult) String() string {
	switch h {
	case HitNone:
		return "None"
	case HitTerrain:
		return "Terrain"
	case HitActor:
		return "Actor"
	case HitLethal:
		return "Lethal"
	default:
		return "Unknown"
	}
}
