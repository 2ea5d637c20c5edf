package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridBorder(t *testing.T) {
	g := NewGrid(16, 16)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			border := x == 0 || y == 0 || x == 15 || y == 15
			if border {
				require.Equal(t, TileSteel, g.At(C(x, y)), "border at %d,%d", x, y)
			} else {
				require.Equal(t, TileEmpty, g.At(C(x, y)), "interior at %d,%d", x, y)
			}
		}
	}
	assert.Equal(t, TileSteel, g.At(C(-1, 3)), "out of bounds reads as Steel")
	assert.Equal(t, TileSteel, g.At(C(3, 16)))
}

func TestTileAttributes(t *testing.T) {
	assert.True(t, TileEmpty.Walkable())
	assert.True(t, TileFoliage.Walkable())
	assert.False(t, TileFoliage.BlocksProjectile())
	assert.False(t, TileWater.Walkable())
	assert.False(t, TileWater.BlocksProjectile())
	assert.True(t, TileBrick.Destructible())
	assert.True(t, TileBrick.BlocksProjectile())
	assert.False(t, TileSteel.Destructible())
	assert.True(t, TileSteel.BlocksProjectile())

	for _, tile := range []Tile{TileEmpty, TileBrick, TileSteel, TileWater, TileFoliage} {
		assert.Equal(t, tile, TileFromGlyph(tile.Glyph()))
	}
	assert.Equal(t, TileEmpty, TileFromGlyph('x'))
}

func TestGeneratedLayoutsSatisfyReachability(t *testing.T) {
	params := DefaultArenaParams()

	for seed := int64(1); seed <= 25; seed++ {
		a := NewArena(16, 16, params)
		res := a.Generate(seeded(seed))
		if !res.Valid {
			continue
		}

		for _, sp := range a.SpawnPoints {
			reach := a.Reachable(sp)
			require.GreaterOrEqual(t, len(reach), params.MinArea, "seed %d spawn %s", seed, sp)

			deep := false
			for c := range reach {
				if c.Y >= params.MinExitRow {
					deep = true
					break
				}
			}
			require.True(t, deep, "seed %d spawn %s has no path south", seed, sp)
		}

		for x := 0; x < 16; x++ {
			require.Equal(t, TileSteel, a.Grid.At(C(x, 0)))
			require.Equal(t, TileSteel, a.Grid.At(C(x, 15)))
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := NewArena(16, 16, DefaultArenaParams())
	b := NewArena(16, 16, DefaultArenaParams())

	ra := a.Generate(seeded(99))
	rb := b.Generate(seeded(99))

	assert.Equal(t, ra, rb)
	assert.Equal(t, a.Grid.String(), b.Grid.String())
}

func TestLayoutMirroredBeforeSpawnClearing(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		a := NewArena(16, 16, DefaultArenaParams())
		a.Grid.Reset()
		a.scatter(seeded(seed))
		a.mirror()

		g := a.Grid
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				require.Equal(t, g.At(C(x, y)), g.At(C(g.W-1-x, y)), "seed %d cell %d,%d", seed, x, y)
			}
		}
	}
}

func TestGenerateExhaustionKeepsBestEffort(t *testing.T) {
	params := DefaultArenaParams()
	params.GenAttempts = 4
	params.MinArea = 10_000

	a := NewArena(16, 16, params)
	res := a.Generate(seeded(3))

	assert.False(t, res.Valid)
	assert.Equal(t, 4, res.Attempts)
	for _, sp := range a.SpawnPoints {
		assert.Equal(t, TileEmpty, a.Grid.At(sp), "spawn points still cleared")
	}
}

func TestValidateErrorCodes(t *testing.T) {
	codeOf := func(err error) string {
		var ve ValidationError
		require.True(t, errors.As(err, &ve), "want ValidationError, got %v", err)
		return ve.Code
	}

	t.Run("open arena passes", func(t *testing.T) {
		a := NewArena(16, 16, DefaultArenaParams())
		assert.NoError(t, a.Validate())
		assert.True(t, a.IsValid())
	})

	t.Run("blocked spawn", func(t *testing.T) {
		a := NewArena(16, 16, DefaultArenaParams())
		a.Grid.Set(a.SpawnPoints[1], TileWater)
		assert.Equal(t, CodeSpawnBlocked, codeOf(a.Validate()))
	})

	wallRow3 := func(a *Arena) {
		for x := 1; x < 15; x++ {
			a.Grid.Set(C(x, 3), TileSteel)
		}
	}

	t.Run("area too small", func(t *testing.T) {
		a := NewArena(16, 16, DefaultArenaParams())
		wallRow3(a) // rows 1-2 only: 28 cells
		assert.Equal(t, CodeAreaTooSmall, codeOf(a.Validate()))
	})

	t.Run("no exit", func(t *testing.T) {
		params := DefaultArenaParams()
		params.MinArea = 5
		a := NewArena(16, 16, params)
		wallRow3(a)
		assert.Equal(t, CodeNoExit, codeOf(a.Validate()))
	})
}

func TestResolveProjectileHit(t *testing.T) {
	a := NewArena(16, 16, DefaultArenaParams())
	brick := C(4, 4)
	a.Grid.Set(brick, TileBrick)

	assert.True(t, a.ResolveProjectileHit(brick))
	assert.Equal(t, TileEmpty, a.Grid.At(brick))
	assert.False(t, a.ResolveProjectileHit(brick), "second hit on cleared brick")

	steel := C(5, 5)
	a.Grid.Set(steel, TileSteel)
	for i := 0; i < 10; i++ {
		assert.True(t, a.ResolveProjectileHit(steel))
	}
	assert.Equal(t, TileSteel, a.Grid.At(steel))

	a.Grid.Set(C(6, 6), TileWater)
	a.Grid.Set(C(7, 7), TileFoliage)
	assert.False(t, a.ResolveProjectileHit(C(6, 6)))
	assert.False(t, a.ResolveProjectileHit(C(7, 7)))
	assert.False(t, a.ResolveProjectileHit(C(-1, 2)))
	assert.False(t, a.ResolveProjectileHit(C(2, 99)))
}

func TestCanMoveTo(t *testing.T) {
	a := NewArena(16, 16, DefaultArenaParams())
	a.Grid.Set(C(3, 3), TileWater)
	a.Grid.Set(C(4, 3), TileFoliage)

	assert.True(t, a.CanMoveTo(C(2, 2)))
	assert.False(t, a.CanMoveTo(C(3, 3)))
	assert.True(t, a.CanMoveTo(C(4, 3)))
	assert.False(t, a.CanMoveTo(C(0, 5)))
	assert.False(t, a.CanMoveTo(C(-3, 5)))
	assert.False(t, a.CanMoveTo(C(5, 40)))
}

func TestLoadDescription(t *testing.T) {
	a := NewArena(16, 16, DefaultArenaParams())
	text := strings.Join([]string{
		"@@@@@@@@@@@@@@@@",
		"@##............@", // spawn (2,1) is forced clear
		"",
		"  @.#~%x........@ ",
		"ENEMIES:bbf",
	}, "\n")

	d := a.LoadDescription(text)

	assert.Equal(t, []OpponentType{OpponentBasic, OpponentBasic, OpponentFast}, d.Roster)
	assert.False(t, d.RosterDefaulted)
	assert.Equal(t, 3, d.Rows)

	assert.Equal(t, TileBrick, a.Grid.At(C(1, 1)))
	assert.Equal(t, TileEmpty, a.Grid.At(C(2, 1)))

	// third row is trimmed before mapping
	assert.Equal(t, TileSteel, a.Grid.At(C(0, 2)))
	assert.Equal(t, TileEmpty, a.Grid.At(C(1, 2)))
	assert.Equal(t, TileBrick, a.Grid.At(C(2, 2)))
	assert.Equal(t, TileWater, a.Grid.At(C(3, 2)))
	assert.Equal(t, TileFoliage, a.Grid.At(C(4, 2)))
	assert.Equal(t, TileEmpty, a.Grid.At(C(5, 2)))

	// rows not present in the text keep the border-only layout
	assert.Equal(t, TileSteel, a.Grid.At(C(0, 15)))
	assert.Equal(t, TileEmpty, a.Grid.At(C(7, 9)))
}

func TestLoadDescriptionDefaultsAndLimits(t *testing.T) {
	a := NewArena(16, 16, DefaultArenaParams())

	lines := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		lines = append(lines, strings.Repeat("#", 20))
	}
	d := a.LoadDescription(strings.Join(lines, "\n") + "\nENEMIES:xyz")

	assert.Equal(t, 16, d.Rows, "rows past the grid are ignored")
	assert.True(t, d.RosterDefaulted)
	assert.Equal(t, BasicRoster(20), d.Roster)
	for _, sp := range a.SpawnPoints {
		assert.Equal(t, TileEmpty, a.Grid.At(sp))
	}
}

func TestSetStructureProtection(t *testing.T) {
	a := NewArena(16, 16, DefaultArenaParams())
	base := C(8, 14)

	a.SetStructureProtection(base, TileSteel)
	for _, c := range StructureFootprint(base) {
		assert.Equal(t, TileSteel, a.Grid.At(c), c.String())
	}
	assert.Equal(t, TileEmpty, a.Grid.At(base))
	assert.Equal(t, TileEmpty, a.Grid.At(C(8, 12)))

	a.SetStructureProtection(base, TileBrick)
	for _, c := range StructureFootprint(base) {
		assert.Equal(t, TileBrick, a.Grid.At(c))
	}
}

func TestProjectileUpStopsAtBorderWithoutDamage(t *testing.T) {
	a := NewArena(16, 16, DefaultArenaParams())
	before := a.Grid.String()

	p := NewProjectile(C(5, 5), DirUp, OwnerPlayer)
	steps := 0
	for p.Active && steps < 100 {
		steps++
		if !p.Advance(0.25, 16, 16) {
			break
		}
		if a.ResolveProjectileHit(p.Cell()) {
			p.Active = false
		}
	}

	assert.False(t, p.Active)
	assert.Equal(t, C(5, 0), p.Cell())
	assert.Equal(t, 17, steps)
	assert.Equal(t, before, a.Grid.String())
}
