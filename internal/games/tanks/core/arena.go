package core

import "strings"

// ArenaParams configures generation and validation.
type ArenaParams struct {
	GenAttempts   int // Generator retry budget
	MinArea       int // Minimum reachable cells from each spawn point
	MinExitRow    int // Some reachable cell must have Y >= this
	DefaultRoster int // Basic opponents used when a description lists none
}

// DefaultArenaParams returns the stock generator limits.
func DefaultArenaParams() ArenaParams {
	return ArenaParams{
		GenAttempts:   999,
		MinArea:       45,
		MinExitRow:    4,
		DefaultRoster: 20,
	}
}

// Arena is the grid plus the declared opponent spawn points.
type Arena struct {
	Grid        *Grid
	SpawnPoints []Coord
	Params      ArenaParams
}

// NewArena creates a border-only arena with spawn points along the top row.
func NewArena(w, h int, params ArenaParams) *Arena {
	return &Arena{
		Grid: NewGrid(w, h),
		SpawnPoints: []Coord{
			C(2, 1),
			C(w/2, 1),
			C(w-3, 1),
		},
		Params: params,
	}
}

// GenResult reports how a Generate call went.
type GenResult struct {
	Attempts int
	Valid    bool
}

// Generate builds a mirrored random layout, retrying until Validate passes
// or the attempt budget runs out. On exhaustion the last layout is kept.
func (a *Arena) Generate(rng Rand) GenResult {
	attempts := a.Params.GenAttempts
	if attempts < 1 {
		attempts = 1
	}
	for i := 1; i <= attempts; i++ {
		a.Grid.Reset()
		a.scatter(rng)
		a.mirror()
		a.clearSpawnPoints()
		if a.Validate() == nil {
			return GenResult{Attempts: i, Valid: true}
		}
	}
	return GenResult{Attempts: attempts, Valid: false}
}

// scatter places obstacles on the left half, one roll per even cell.
func (a *Arena) scatter(rng Rand) {
	g := a.Grid
	for y := 2; y < g.H-2; y += 2 {
		for x := 2; x < g.W/2; x += 2 {
			r := rng.Float64()
			switch {
			case r < 0.15:
				g.Set(C(x, y), TileWater)
			case r < 0.25:
				g.Set(C(x, y), TileSteel)
				if x+1 < g.W-1 {
					g.Set(C(x+1, y), TileSteel)
				}
			case r < 0.50:
				n := randRange(rng, 2, 5)
				for i := 0; i < n && y+i < g.H-1; i++ {
					g.Set(C(x, y+i), TileBrick)
				}
			case r < 0.75:
				n := randRange(rng, 2, 5)
				for i := 0; i < n && x+i < g.W-1; i++ {
					g.Set(C(x+i, y), TileBrick)
				}
			default:
				g.Set(C(x, y), TileFoliage)
				if x+1 < g.W-1 && rng.Float64() < 0.5 {
					g.Set(C(x+1, y), TileFoliage)
				}
			}
		}
	}
}

// mirror copies the left half onto the right half.
func (a *Arena) mirror() {
	g := a.Grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W/2; x++ {
			g.Set(C(g.W-1-x, y), g.At(C(x, y)))
		}
	}
}

func (a *Arena) clearSpawnPoints() {
	for _, p := range a.SpawnPoints {
		a.Grid.Set(p, TileEmpty)
	}
}

// CanMoveTo reports whether an actor may enter c.
func (a *Arena) CanMoveTo(c Coord) bool {
	return a.Grid.At(c).Walkable()
}

// ResolveProjectileHit applies a projectile arriving at c.
// Brick is cleared and reports a hit, Steel reports a hit and stays.
// Out-of-bounds cells never report a hit.
func (a *Arena) ResolveProjectileHit(c Coord) bool {
	if !a.Grid.InBounds(c) {
		return false
	}
	t := a.Grid.At(c)
	if !t.BlocksProjectile() {
		return false
	}
	if t.Destructible() {
		a.Grid.Set(c, TileEmpty)
	}
	return true
}

// StructureFootprint returns the protection cells around a structure:
// left, above-left, above, above-right, right.
func StructureFootprint(base Coord) [5]Coord {
	return [5]Coord{
		base.Add(-1, 0),
		base.Add(-1, -1),
		base.Add(0, -1),
		base.Add(1, -1),
		base.Add(1, 0),
	}
}

// SetStructureProtection writes kind to every in-bounds footprint cell.
func (a *Arena) SetStructureProtection(base Coord, kind Tile) {
	for _, c := range StructureFootprint(base) {
		a.Grid.Set(c, kind)
	}
}

// Description is the result of parsing a level description.
type Description struct {
	Roster          []OpponentType
	Rows            int  // Grid rows read from the text
	RosterDefaulted bool // No ENEMIES codes were found
}

const rosterPrefix = "ENEMIES:"

// LoadDescription replaces the layout with a parsed level description.
// Blank lines are skipped; rows beyond the grid height and columns beyond
// its width are ignored. Spawn points are cleared afterwards.
func (a *Arena) LoadDescription(text string) Description {
	a.Grid.Reset()
	var d Description

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, rosterPrefix) {
			codes, _, _ := strings.Cut(strings.TrimPrefix(line, rosterPrefix), ":")
			for _, r := range strings.TrimSpace(codes) {
				if t, ok := OpponentTypeFromCode(r); ok {
					d.Roster = append(d.Roster, t)
				}
			}
			continue
		}

		if d.Rows < a.Grid.H {
			for x, r := range []rune(line) {
				if x >= a.Grid.W {
					break
				}
				a.Grid.Set(C(x, d.Rows), TileFromGlyph(r))
			}
			d.Rows++
		}
	}

	a.clearSpawnPoints()

	if len(d.Roster) == 0 {
		d.Roster = BasicRoster(a.Params.DefaultRoster)
		d.RosterDefaulted = true
	}
	return d
}

// BasicRoster returns n Basic entries.
func BasicRoster(n int) []OpponentType {
	r := make([]OpponentType, n)
	for i := range r {
		r[i] = OpponentBasic
	}
	return r
}

// RandomRoster draws n types uniformly.
func RandomRoster(rng Rand, n int) []OpponentType {
	r := make([]OpponentType, n)
	for i := range r {
		r[i] = AllOpponentTypes[rng.Intn(len(AllOpponentTypes))]
	}
	return r
}
