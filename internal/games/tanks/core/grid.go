package core

import "strings"

// Grid is the arena terrain as a rectangular matrix of tiles.
// Tiles are stored in row-major order: index = y*W + x.
// The outer ring is Steel after NewGrid and Reset.
type Grid struct {
	W     int
	H     int
	Tiles []Tile
}

// NewGrid creates a border-only grid.
func NewGrid(w, h int) *Grid {
	g := &Grid{
		W:     w,
		H:     h,
		Tiles: make([]Tile, w*h),
	}
	g.Reset()
	return g
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the tile at c. Out-of-bounds cells read as Steel.
func (g *Grid) At(c Coord) Tile {
	if !g.InBounds(c) {
		return TileSteel
	}
	return g.Tiles[g.index(c)]
}

// Set writes a tile. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, t Tile) {
	if g.InBounds(c) {
		g.Tiles[g.index(c)] = t
	}
}

// Reset clears the interior to Empty and rebuilds the Steel border.
func (g *Grid) Reset() {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			t := TileEmpty
			if x == 0 || y == 0 || x == g.W-1 || y == g.H-1 {
				t = TileSteel
			}
			g.Tiles[y*g.W+x] = t
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.Tiles))
	copy(tiles, g.Tiles)
	return &Grid{W: g.W, H: g.H, Tiles: tiles}
}

// Count returns the number of cells holding tile t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, v := range g.Tiles {
		if v == t {
			n++
		}
	}
	return n
}

// String renders the grid in level description glyphs, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.W; x++ {
			sb.WriteRune(g.Tiles[y*g.W+x].Glyph())
		}
	}
	return sb.String()
}
