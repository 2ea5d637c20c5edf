// Package tanks adapts the tank battle simulation to the platform: it picks
// levels per mode, applies the difficulty preset, advances between levels
// and records progress and sessions.
package tanks

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks/core"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks/levels"
	"github.com/vovakirdan/tui-tanks/internal/registry"
	"github.com/vovakirdan/tui-tanks/internal/storage"
)

// Mode selects where levels come from.
type Mode uint8

const (
	ModeArcade   Mode = iota // Procedural arenas, random rosters
	ModeCampaign             // campaign/level_N.txt
	ModeClassic              // classic/level_N.txt with a structure to defend
)

type modeInfo struct {
	id          string
	title       string
	description string
	set         levels.Set
	structure   bool
}

var modes = [...]modeInfo{
	ModeArcade: {
		id:          "tanks",
		title:       "Tanks (Arcade)",
		description: "Endless procedural arenas with a random opponent roster",
	},
	ModeCampaign: {
		id:          "tanks_campaign",
		title:       "Tanks (Campaign)",
		description: "Hand-made levels, progress is saved per difficulty",
		set:         levels.SetCampaign,
	},
	ModeClassic: {
		id:          "tanks_classic",
		title:       "Tanks (Classic)",
		description: "Defend the base; losing it ends the game",
		set:         levels.SetClassic,
		structure:   true,
	},
}

// clearTicks is how long the level-cleared banner stays up.
const clearTicks = 90

func init() {
	for _, m := range []Mode{ModeArcade, ModeCampaign, ModeClassic} {
		info := modes[m]
		registry.Register(registry.GameInfo{
			ID:          info.id,
			Title:       info.title,
			Description: info.description,
		}, func(opts registry.Options) registry.Game {
			return New(m, opts)
		})
	}
}

// ProgressStore persists level progress and finished sessions.
// *storage.Store satisfies it.
type ProgressStore interface {
	LevelProgress(mode, difficulty string) (int, error)
	SaveLevelProgress(mode, difficulty string, level int) error
	RecordSession(rec storage.SessionRecord) (string, error)
}

// Game implements registry.Game for one tanks mode.
type Game struct {
	mode   Mode
	opts   registry.Options
	logger *log.Logger
	store  ProgressStore

	cfg        config.TanksConfig
	difficulty config.DifficultyPreset
	rules      core.Rules
	loader     *levels.Loader

	rng   *rand.Rand
	world *core.World

	level       int
	bankedScore int // Score from cleared levels
	bankedKills int
	deaths      int
	ticks       int // Active simulation ticks this session

	cleared    bool
	clearTimer int
	gameOver   bool
	recorded   bool
	paused     bool

	screenW int
	screenH int
}

// New creates a game for a mode. A nil opts.Logger discards log output and
// a nil opts.Store disables persistence.
func New(mode Mode, opts registry.Options) *Game {
	g := &Game{mode: mode, opts: opts, logger: opts.Logger}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if opts.Store != nil {
		g.store = opts.Store
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string { return modes[g.mode].id }

// Title returns the display name.
func (g *Game) Title() string { return modes[g.mode].title }

// Difficulty returns the resolved difficulty preset name.
func (g *Game) Difficulty() string { return string(g.difficulty) }

// Reset loads configuration and starts a new session.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	tc, err := config.LoadTanks(g.opts.ConfigPath)
	if err != nil {
		g.logger.Error("config load failed, using defaults", "path", g.opts.ConfigPath, "err", err)
		tc = config.DefaultTanksConfig()
	}
	g.cfg = tc

	g.difficulty, err = config.ParseDifficulty(g.opts.Difficulty)
	if err != nil {
		g.logger.Warn("unknown difficulty, using normal", "difficulty", g.opts.Difficulty)
		g.difficulty = config.DifficultyNormal
	}
	g.rules = rulesFor(tc, tc.Preset(g.difficulty))

	dir := g.opts.LevelsDir
	if dir == "" {
		dir = tc.Levels.Dir
	}
	g.loader = levels.NewLoader(dir)

	g.level = g.startLevel()
	g.bankedScore = 0
	g.bankedKills = 0
	g.deaths = 0
	g.ticks = 0
	g.gameOver = false
	g.recorded = false
	g.paused = false

	g.world = core.NewWorld(g.rules, g.rng)
	g.beginLevel()
}

// startLevel returns the level a new session begins on.
func (g *Game) startLevel() int {
	if g.mode == ModeArcade || g.store == nil {
		return 1
	}
	saved, err := g.store.LevelProgress(g.ID(), g.Difficulty())
	if err != nil {
		g.logger.Error("progress read failed", "mode", g.ID(), "err", err)
		return 1
	}
	return levels.Wrap(max(saved, 1), g.levelCount())
}

func (g *Game) levelCount() int {
	switch g.mode {
	case ModeCampaign:
		return g.cfg.Levels.CampaignCount
	case ModeClassic:
		return g.cfg.Levels.ClassicCount
	default:
		return 0
	}
}

// beginLevel builds the current level and starts the world on it.
func (g *Game) beginLevel() {
	g.cleared = false
	g.clearTimer = 0

	spec := g.levelSpec()
	for _, e := range g.world.Start(spec) {
		g.observe(e)
	}
	g.logger.Debug("level started", "mode", g.ID(), "level", g.level, "quota", g.world.Quota)
}

func (g *Game) levelSpec() core.LevelSpec {
	info := modes[g.mode]
	if g.mode == ModeArcade {
		return core.LevelSpec{
			Procedural: true,
			Roster:     core.RandomRoster(g.rng, max(g.rules.Quota, 1)),
		}
	}

	spec := core.LevelSpec{Structure: info.structure}
	lvl, err := g.loader.Load(info.set, levels.Wrap(g.level, g.levelCount()))
	switch {
	case errors.Is(err, levels.ErrLevelNotFound):
		g.logger.Warn("level not found", "set", info.set, "level", g.level)
	case err != nil:
		g.logger.Error("level load failed", "set", info.set, "level", g.level, "err", err)
	default:
		spec.Layout = lvl.Text
	}
	return spec
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	if g.world == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionRestart) && g.gameOver {
		g.Reset(platformcore.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.gameOver || g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	if g.cleared {
		g.clearTimer++
		if g.clearTimer >= clearTicks {
			g.advance()
		}
		return platformcore.StepResult{State: g.State()}
	}

	g.ticks++
	res := g.world.Step(intentFrom(input))

	var msgs []string
	for _, e := range res.Events {
		if m := g.observe(e); m != "" {
			msgs = append(msgs, m)
		}
	}

	switch res.State {
	case core.StateCleared:
		g.onCleared()
	case core.StateOver:
		g.onOver()
	}

	return platformcore.StepResult{State: g.State(), Messages: msgs}
}

// intentFrom maps platform actions onto a simulation intent.
func intentFrom(in platformcore.InputFrame) core.Intent {
	var it core.Intent
	switch in.Direction() {
	case platformcore.ActionUp:
		it = core.Intent{Dir: core.DirUp, Move: true}
	case platformcore.ActionDown:
		it = core.Intent{Dir: core.DirDown, Move: true}
	case platformcore.ActionLeft:
		it = core.Intent{Dir: core.DirLeft, Move: true}
	case platformcore.ActionRight:
		it = core.Intent{Dir: core.DirRight, Move: true}
	}
	it.Fire = in.Has(platformcore.ActionFire) || in.Has(platformcore.ActionConfirm)
	return it
}

// observe updates session counters from an event and returns a message for
// the platform, if the event warrants one.
func (g *Game) observe(e core.Event) string {
	switch e.Kind {
	case core.EventWarning:
		g.logger.Warn(e.Warning.String(), "mode", g.ID(), "level", g.level)
		return "warning: " + e.Warning.String()
	case core.EventPlayerKilled:
		g.deaths++
	case core.EventPowerUpCollected:
		return e.PowerUp.String() + " collected"
	case core.EventStructureDestroyed:
		return "base destroyed"
	}
	return ""
}

func (g *Game) onCleared() {
	g.cleared = true
	g.clearTimer = 0
	g.logger.Info("level cleared", "mode", g.ID(), "level", g.level, "score", g.Score())

	if g.mode == ModeArcade || g.store == nil {
		return
	}
	next := levels.Wrap(g.level+1, g.levelCount())
	if err := g.store.SaveLevelProgress(g.ID(), g.Difficulty(), next); err != nil {
		g.logger.Error("progress save failed", "mode", g.ID(), "level", next, "err", err)
	}
}

// advance banks the finished level's score and starts the next one.
func (g *Game) advance() {
	g.bankedScore += g.world.Score
	g.bankedKills += g.world.Kills
	g.level++
	if g.mode != ModeArcade {
		g.level = levels.Wrap(g.level, g.levelCount())
	}
	g.beginLevel()
}

func (g *Game) onOver() {
	g.gameOver = true
	g.logger.Info("session over", "mode", g.ID(), "reason", g.world.Reason, "score", g.Score())
	g.record(g.world.Reason.String())
}

// record stores the session once.
func (g *Game) record(outcome string) {
	if g.recorded || g.store == nil {
		return
	}
	g.recorded = true

	rate := g.cfg.Arena.TickRate
	if rate <= 0 {
		rate = 60
	}
	id, err := g.store.RecordSession(storage.SessionRecord{
		Mode:       g.ID(),
		Difficulty: g.Difficulty(),
		Level:      g.level,
		Score:      g.Score(),
		Kills:      g.Kills(),
		Deaths:     g.deaths,
		Outcome:    outcome,
		Duration:   g.ticks / rate,
	})
	if err != nil {
		g.logger.Error("session record failed", "mode", g.ID(), "err", err)
		return
	}
	g.logger.Debug("session recorded", "id", id)
}

// Abandon records an unfinished session, e.g. when the player quits.
func (g *Game) Abandon() {
	if g.world == nil || g.gameOver || g.ticks == 0 {
		return
	}
	g.record("quit")
}

// Score is the session score across all levels played.
func (g *Game) Score() int {
	if g.world == nil {
		return g.bankedScore
	}
	return g.bankedScore + g.world.Score
}

// Kills is the session kill count across all levels played.
func (g *Game) Kills() int {
	if g.world == nil {
		return g.bankedKills
	}
	return g.bankedKills + g.world.Kills
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.Score(),
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// rulesFor merges the configuration with a difficulty preset.
func rulesFor(cfg config.TanksConfig, p config.PresetConfig) core.Rules {
	stats := func(s config.OpponentStats) core.OpponentStats {
		return core.OpponentStats{
			SpeedDelay:  s.SpeedDelay,
			HP:          s.HP,
			Score:       s.Score,
			FireMin:     s.FireMin,
			FireMax:     s.FireMax,
			SightChance: s.SightChance,
		}
	}

	return core.Rules{
		Cols: cfg.Arena.Cols,
		Rows: cfg.Arena.Rows,
		Arena: core.ArenaParams{
			GenAttempts:   cfg.Arena.GenAttempts,
			MinArea:       cfg.Arena.MinArea,
			MinExitRow:    cfg.Arena.MinExitRow,
			DefaultRoster: cfg.Arena.DefaultRoster,
		},
		Stats: core.StatsTable{
			core.OpponentBasic:   stats(cfg.Opponents.Basic),
			core.OpponentFast:    stats(cfg.Opponents.Fast),
			core.OpponentArmored: stats(cfg.Opponents.Armored),
			core.OpponentSniper:  stats(cfg.Opponents.Sniper),
		},
		AI: core.AIParams{
			SightRange:     cfg.AI.SightRange,
			TrackMoveDelay: cfg.AI.TrackMoveDelay,
			TrackFireDelay: cfg.AI.TrackFireDelay,
			FireReady:      cfg.AI.FireReady,
			RerollChance:   cfg.AI.RerollChance,
			TrackDistance:  cfg.AI.TrackDistance,
		},
		ProjectileSpeed: cfg.Projectile.Speed,
		PlayerHP:        p.PlayerHP,
		Lives:           p.Lives,
		PlayerMoveDelay: cfg.Player.MoveDelay,
		HitInvuln:       cfg.Player.HitInvuln,
		RespawnDelay:    cfg.Player.RespawnDelay,
		RespawnInvuln:   cfg.Player.RespawnInvuln,
		Quota:           p.Quota,
		SpawnInterval:   p.SpawnInterval,
		OnScreenCap:     p.OnScreenCap,
		PowerUpLifetime: cfg.PowerUps.Lifetime,
		ShieldTicks:     cfg.PowerUps.ShieldTicks,
		FreezeTicks:     cfg.PowerUps.FreezeTicks,
		FortifyTicks:    cfg.PowerUps.FortifyTicks,
	}
}

// levelLabel is the HUD text for the current level.
func (g *Game) levelLabel() string {
	if n := g.levelCount(); n > 0 {
		return fmt.Sprintf("%d/%d", g.level, n)
	}
	return fmt.Sprintf("%d", g.level)
}
