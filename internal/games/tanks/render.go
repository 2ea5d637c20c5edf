package tanks

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks/core"
)

// Layout constants. Each grid cell is two screen columns wide.
const (
	cellW     = 2
	hudHeight = 2
)

type glyph struct {
	runes [cellW]rune
	color platformcore.Color
}

func g2(a, b rune, c platformcore.Color) glyph {
	return glyph{runes: [cellW]rune{a, b}, color: c}
}

var tileGlyphs = [...]glyph{
	core.TileEmpty:   g2(' ', ' ', platformcore.ColorDefault),
	core.TileBrick:   g2('▓', '▓', platformcore.ColorOrange),
	core.TileSteel:   g2('█', '█', platformcore.ColorWhite),
	core.TileWater:   g2('≈', '≈', platformcore.ColorBlue),
	core.TileFoliage: g2('♣', '♣', platformcore.ColorGreen),
}

var tankGlyphs = [...][cellW]rune{
	core.DirUp:    {'▟', '▙'},
	core.DirRight: {'█', '▶'},
	core.DirDown:  {'▜', '▛'},
	core.DirLeft:  {'◀', '█'},
}

var opponentColors = [...]platformcore.Color{
	core.OpponentBasic:   platformcore.ColorGray,
	core.OpponentFast:    platformcore.ColorCyan,
	core.OpponentArmored: platformcore.ColorBrightGreen,
	core.OpponentSniper:  platformcore.ColorMagenta,
}

var powerUpGlyphs = [...]glyph{
	core.PowerUpClearAll:  g2('✸', '✸', platformcore.ColorBrightRed),
	core.PowerUpShield:    g2('◆', '◆', platformcore.ColorBrightCyan),
	core.PowerUpExtraLife: g2('♥', '♥', platformcore.ColorRed),
	core.PowerUpFreeze:    g2('❄', '❄', platformcore.ColorBrightBlue),
	core.PowerUpFortify:   g2('▣', '▣', platformcore.ColorBrightYellow),
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.world == nil {
		g.renderOverlay(dst, "Tanks", "Starting...")
		return
	}
	snap := g.world.Snapshot()

	g.renderHUD(dst, snap)

	cols, rows := snap.Grid.W, snap.Grid.H
	if dst.Width() < cols*cellW || dst.Height() < rows+hudHeight {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", cols*cellW, rows+hudHeight))
		return
	}
	ox := (dst.Width() - cols*cellW) / 2
	oy := hudHeight
	if ox > 0 {
		dst.DrawVLine(ox-1, oy, rows, '│')
		dst.DrawVLine(ox+cols*cellW, oy, rows, '│')
	}

	put := func(c core.Coord, gl glyph) {
		x := ox + c.X*cellW
		for i, r := range gl.runes {
			dst.SetColored(x+i, oy+c.Y, r, gl.color)
		}
	}

	for y := range rows {
		for x := range cols {
			c := core.C(x, y)
			if t := snap.Grid.At(c); t != core.TileFoliage {
				put(c, tileGlyphs[t])
			}
		}
	}

	for _, pu := range snap.PowerUps {
		// Blink during the last two seconds.
		if pu.Timer < 120 && (pu.Timer/8)%2 == 0 {
			continue
		}
		put(pu.Pos, powerUpGlyphs[pu.Type])
	}

	if snap.HasStructure {
		if snap.Structure.Alive {
			put(snap.Structure.Pos, g2('⌂', '⌂', platformcore.ColorBrightYellow))
		} else {
			put(snap.Structure.Pos, g2('x', 'x', platformcore.ColorRed))
		}
	}

	for _, o := range snap.Opponents {
		color := opponentColors[o.Type]
		if o.Flash > 0 {
			color = platformcore.ColorBrightWhite
		}
		put(o.Pos, glyph{runes: tankGlyphs[o.Facing], color: color})
	}

	if p := snap.Player; p.Alive {
		color := platformcore.ColorBrightYellow
		if p.Invuln > 0 && (snap.Tick/6)%2 == 0 {
			color = platformcore.ColorYellow
		}
		put(p.Pos, glyph{runes: tankGlyphs[p.Facing], color: color})
	}

	// Foliage hides tanks but not shots.
	for y := range rows {
		for x := range cols {
			c := core.C(x, y)
			if snap.Grid.At(c) == core.TileFoliage {
				put(c, tileGlyphs[core.TileFoliage])
			}
		}
	}

	for _, pr := range snap.Projectiles {
		if !pr.Active {
			continue
		}
		color := platformcore.ColorBrightRed
		if pr.Owner == core.OwnerPlayer {
			color = platformcore.ColorBrightWhite
		}
		// The fractional part picks the half of the cell.
		half := 0
		if pr.X-float64(int(pr.X)) >= 0.5 {
			half = 1
		}
		c := pr.Cell()
		dst.SetColored(ox+c.X*cellW+half, oy+c.Y, '•', color)
	}

	for _, ex := range snap.Explosions {
		if ex.Frames > 10 {
			put(ex.Pos, g2('✺', '✺', platformcore.ColorOrange))
		} else {
			put(ex.Pos, g2('·', '·', platformcore.ColorRed))
		}
	}

	g.renderEffects(dst, snap, oy+rows)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over: "+snap.Reason.String(), fmt.Sprintf("Score %d | R to restart", g.Score()))
	case g.cleared:
		g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", g.level), fmt.Sprintf("Score %d", g.Score()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *platformcore.Screen, snap core.Snapshot) {
	p := snap.Player
	hud := fmt.Sprintf(" %s | Score: %d | Level: %s | Lives: %d | HP: %d | Kills: %d/%d | Left: %d",
		g.Title(), g.Score(), g.levelLabel(), p.Lives, p.HP, snap.Kills, snap.Quota, snap.RosterLeft)
	dst.DrawTextColored(0, 0, hud, platformcore.ColorCyan)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderEffects lists active timed effects under the arena.
func (g *Game) renderEffects(dst *platformcore.Screen, snap core.Snapshot, y int) {
	if y >= dst.Height() {
		return
	}
	rate := max(g.cfg.Arena.TickRate, 1)

	var parts []string
	if snap.Player.Alive && snap.Player.Invuln > 0 {
		parts = append(parts, fmt.Sprintf("Shield %ds", (snap.Player.Invuln+rate-1)/rate))
	}
	if snap.FortifyTimer > 0 {
		parts = append(parts, fmt.Sprintf("Fortified %ds", (snap.FortifyTimer+rate-1)/rate))
	}
	if !snap.Player.Alive && snap.Player.Lives > 0 {
		parts = append(parts, "Respawning...")
	}
	if len(parts) > 0 {
		dst.DrawTextCenteredColored(y, strings.Join(parts, "  "), platformcore.ColorGray)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := platformcore.NewRect((dst.Width()-maxLen-4)/2, (dst.Height()-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, platformcore.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCenteredColored(box.Y+3, line2, platformcore.ColorGray)
}
