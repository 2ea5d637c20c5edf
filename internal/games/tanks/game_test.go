package tanks

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platformcore "github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks/core"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks/levels"
	"github.com/vovakirdan/tui-tanks/internal/registry"
	"github.com/vovakirdan/tui-tanks/internal/storage"
)

type fakeStore struct {
	progress map[string]int
	saved    []int
	sessions []storage.SessionRecord
	readErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{progress: make(map[string]int)}
}

func (s *fakeStore) LevelProgress(mode, difficulty string) (int, error) {
	if s.readErr != nil {
		return 0, s.readErr
	}
	return s.progress[mode+"/"+difficulty], nil
}

func (s *fakeStore) SaveLevelProgress(mode, difficulty string, level int) error {
	s.saved = append(s.saved, level)
	s.progress[mode+"/"+difficulty] = max(s.progress[mode+"/"+difficulty], level)
	return nil
}

func (s *fakeStore) RecordSession(rec storage.SessionRecord) (string, error) {
	s.sessions = append(s.sessions, rec)
	return "id", nil
}

// writeConfig writes a config file so tests never pick up a user config.
func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "tanks.yaml")
	require.NoError(t, os.WriteFile(p, []byte("arena:\n  tick_rate: 60\n"+yaml), 0o644))
	return p
}

func openLayout(extra ...string) string {
	rows := []string{strings.Repeat("@", 16)}
	for range 14 {
		rows = append(rows, "@"+strings.Repeat(".", 14)+"@")
	}
	rows = append(rows, strings.Repeat("@", 16))
	return strings.Join(append(rows, extra...), "\n")
}

// openLevels writes an override directory where level 1 of every set is an
// empty arena with a single Basic opponent.
func openLevels(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, set := range levels.AllSets {
		dir := filepath.Join(root, string(set))
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "level_1.txt"), []byte(openLayout("ENEMIES:b")), 0o644))
	}
	return root
}

func newGame(t *testing.T, mode Mode, opts registry.Options, store ProgressStore) *Game {
	t.Helper()
	if opts.ConfigPath == "" {
		opts.ConfigPath = writeConfig(t, "")
	}
	g := New(mode, opts)
	if store != nil {
		g.store = store
	}
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	return g
}

func input(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"tanks", "tanks_campaign", "tanks_classic"} {
		info, ok := registry.Lookup(id)
		require.True(t, ok, id)
		assert.NotEmpty(t, info.Title)
		assert.NotEmpty(t, info.Description)

		g, err := registry.Create(id, registry.Options{Difficulty: "easy"})
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestResetArcade(t *testing.T) {
	g := newGame(t, ModeArcade, registry.Options{}, nil)

	assert.Equal(t, "normal", g.Difficulty())
	assert.Equal(t, core.StateActive, g.world.State)
	assert.Equal(t, 10, g.world.Quota)
	assert.Nil(t, g.world.Structure)
	assert.Equal(t, core.C(8, 14), g.world.Player.Pos)
	assert.Equal(t, platformcore.GameState{Level: 1}, g.State())
}

func TestDifficultyPresets(t *testing.T) {
	g := newGame(t, ModeArcade, registry.Options{Difficulty: "hard"}, nil)
	assert.Equal(t, 2, g.rules.Lives)
	assert.Equal(t, 20, g.rules.Quota)
	assert.Equal(t, 120, g.rules.SpawnInterval)
	assert.Equal(t, 10, g.rules.OnScreenCap)
	assert.Equal(t, 2, g.world.Player.Lives)
	assert.Equal(t, 20, g.world.Quota)

	g = newGame(t, ModeArcade, registry.Options{Difficulty: "nightmare"}, nil)
	assert.Equal(t, "normal", g.Difficulty())
	assert.Equal(t, 3, g.rules.Lives)
}

func TestConfigOverridesRules(t *testing.T) {
	path := writeConfig(t, "player:\n  move_delay: 4\nopponents:\n  sniper:\n    score: 999\n")
	g := newGame(t, ModeArcade, registry.Options{ConfigPath: path}, nil)

	assert.Equal(t, 4, g.rules.PlayerMoveDelay)
	assert.Equal(t, 999, g.rules.Stats.Of(core.OpponentSniper).Score)
	assert.Equal(t, 100, g.rules.Stats.Of(core.OpponentBasic).Score)
}

func TestBadConfigFallsBackToDefaults(t *testing.T) {
	var buf bytes.Buffer
	g := newGame(t, ModeArcade, registry.Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
		Logger:     log.New(&buf),
	}, nil)

	assert.Equal(t, core.StateActive, g.world.State)
	assert.Equal(t, 16, g.rules.Cols)
	assert.Contains(t, buf.String(), "config load failed")
}

func TestCampaignLoadsLevelRoster(t *testing.T) {
	g := newGame(t, ModeCampaign, registry.Options{}, nil)

	lvl, err := levels.NewLoader("").Load(levels.SetCampaign, 1)
	require.NoError(t, err)
	d, err := levels.Check(lvl.Text, 16, 16, core.DefaultArenaParams())
	require.NoError(t, err)

	assert.Equal(t, len(d.Roster), g.world.Quota, "level roster overrides the preset quota")
	assert.Nil(t, g.world.Structure)
	assert.Equal(t, "1/10", g.levelLabel())
}

func TestClassicPlacesStructure(t *testing.T) {
	g := newGame(t, ModeClassic, registry.Options{}, nil)

	require.NotNil(t, g.world.Structure)
	assert.Equal(t, core.C(8, 14), g.world.Structure.Pos)
	assert.Equal(t, core.C(6, 14), g.world.Player.Pos)
	for _, c := range core.StructureFootprint(g.world.Structure.Pos) {
		assert.Equal(t, core.TileBrick, g.world.Arena.Grid.At(c))
	}
}

func TestCampaignResumesProgress(t *testing.T) {
	store := newFakeStore()
	store.progress["tanks_campaign/normal"] = 3
	g := newGame(t, ModeCampaign, registry.Options{}, store)
	assert.Equal(t, 3, g.level)

	store.progress["tanks_campaign/normal"] = 12
	g = newGame(t, ModeCampaign, registry.Options{}, store)
	assert.Equal(t, 2, g.level, "wraps after the last level")

	g = newGame(t, ModeCampaign, registry.Options{Difficulty: "easy"}, store)
	assert.Equal(t, 1, g.level, "progress is per difficulty")

	store.readErr = errors.New("disk gone")
	g = newGame(t, ModeCampaign, registry.Options{}, store)
	assert.Equal(t, 1, g.level)
}

func TestArcadeIgnoresProgress(t *testing.T) {
	store := newFakeStore()
	store.progress["tanks/normal"] = 5
	g := newGame(t, ModeArcade, registry.Options{}, store)
	assert.Equal(t, 1, g.level)
}

func TestMissingLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	store := newFakeStore()
	store.progress["tanks_campaign/normal"] = 15

	g := newGame(t, ModeCampaign, registry.Options{
		ConfigPath: writeConfig(t, "levels:\n  campaign_count: 20\n"),
		Logger:     log.New(&buf),
	}, store)

	assert.Equal(t, 15, g.level)
	assert.Equal(t, core.StateActive, g.world.State)
	assert.Equal(t, 10, g.world.Quota, "procedural fallback uses the preset quota")
	assert.Contains(t, buf.String(), "level not found")
	assert.Contains(t, buf.String(), core.WarnLevelFallback.String())
}

func TestIntentMapping(t *testing.T) {
	tests := []struct {
		name string
		in   platformcore.InputFrame
		want core.Intent
	}{
		{"idle", input(), core.Intent{}},
		{"up", input(platformcore.ActionUp), core.Intent{Dir: core.DirUp, Move: true}},
		{"left", input(platformcore.ActionLeft), core.Intent{Dir: core.DirLeft, Move: true}},
		{"fire", input(platformcore.ActionFire), core.Intent{Fire: true}},
		{"confirm fires", input(platformcore.ActionConfirm), core.Intent{Fire: true}},
		{"move and fire", input(platformcore.ActionDown, platformcore.ActionFire), core.Intent{Dir: core.DirDown, Move: true, Fire: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intentFrom(tt.in))
		})
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := newGame(t, ModeArcade, registry.Options{}, nil)

	g.Step(input())
	require.Equal(t, 1, g.world.Tick)

	res := g.Step(input(platformcore.ActionPause))
	assert.True(t, res.State.Paused)
	g.Step(input())
	assert.Equal(t, 1, g.world.Tick)

	g.Step(input(platformcore.ActionPause))
	assert.False(t, g.State().Paused)
	assert.Equal(t, 2, g.world.Tick)
}

func TestCampaignClearAdvances(t *testing.T) {
	store := newFakeStore()
	g := newGame(t, ModeCampaign, registry.Options{}, store)

	g.world.Score = 500
	g.world.Kills = g.world.Quota
	g.Step(input())

	require.True(t, g.cleared)
	assert.Equal(t, []int{2}, store.saved)
	assert.Equal(t, 500, g.Score())

	for range clearTicks {
		g.Step(input())
	}
	assert.False(t, g.cleared)
	assert.Equal(t, 2, g.level)
	assert.Equal(t, core.StateActive, g.world.State)
	assert.Equal(t, 500, g.Score(), "score carries across levels")
	assert.Equal(t, 0, g.world.Score)
}

func TestCampaignWrapsAfterLastLevel(t *testing.T) {
	store := newFakeStore()
	store.progress["tanks_campaign/normal"] = 10
	g := newGame(t, ModeCampaign, registry.Options{}, store)

	g.world.Kills = g.world.Quota
	g.Step(input())
	assert.Equal(t, []int{1}, store.saved)

	for range clearTicks {
		g.Step(input())
	}
	assert.Equal(t, 1, g.level)
}

func TestArcadeStartsNewRound(t *testing.T) {
	store := newFakeStore()
	g := newGame(t, ModeArcade, registry.Options{}, store)

	g.world.Kills = g.world.Quota
	g.Step(input())
	for range clearTicks {
		g.Step(input())
	}

	assert.Equal(t, 2, g.level)
	assert.Equal(t, 10, g.Kills())
	assert.Empty(t, store.saved, "arcade keeps no level progress")
}

// killPlayer puts an opponent shot one cell above the player.
func killPlayer(g *Game) {
	g.world.Spawner.Roster = nil
	above := g.world.Player.Pos.Add(0, -1)
	g.world.Projectiles = append(g.world.Projectiles, core.NewProjectile(above, core.DirDown, core.OwnerOpponent))
}

func TestLivesExhaustedRecordsSession(t *testing.T) {
	store := newFakeStore()
	g := newGame(t, ModeCampaign, registry.Options{LevelsDir: openLevels(t)}, store)
	g.world.Player.Lives = 1

	killPlayer(g)
	var msgs []string
	for range 4 {
		res := g.Step(input())
		msgs = append(msgs, res.Messages...)
	}

	require.True(t, g.State().GameOver)
	assert.Equal(t, core.OverLivesExhausted, g.world.Reason)
	require.Len(t, store.sessions, 1)
	rec := store.sessions[0]
	assert.Equal(t, "tanks_campaign", rec.Mode)
	assert.Equal(t, "normal", rec.Difficulty)
	assert.Equal(t, 1, rec.Level)
	assert.Equal(t, 1, rec.Deaths)
	assert.Equal(t, "lives exhausted", rec.Outcome)
	assert.Empty(t, msgs)

	g.Step(input())
	g.Abandon()
	assert.Len(t, store.sessions, 1, "sessions are recorded once")
}

func TestStructureLossEndsClassic(t *testing.T) {
	store := newFakeStore()
	g := newGame(t, ModeClassic, registry.Options{LevelsDir: openLevels(t)}, store)
	g.world.Spawner.Roster = nil

	base := g.world.Structure.Pos
	g.world.Projectiles = append(g.world.Projectiles, core.NewProjectile(base.Add(1, 0), core.DirLeft, core.OwnerOpponent))

	var msgs []string
	for range 4 {
		msgs = append(msgs, g.Step(input()).Messages...)
	}

	require.True(t, g.gameOver)
	assert.Contains(t, msgs, "base destroyed")
	require.Len(t, store.sessions, 1)
	assert.Equal(t, "structure destroyed", store.sessions[0].Outcome)
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newGame(t, ModeCampaign, registry.Options{LevelsDir: openLevels(t)}, nil)
	g.world.Player.Lives = 1
	killPlayer(g)
	for range 4 {
		g.Step(input())
	}
	require.True(t, g.gameOver)

	g.Step(input(platformcore.ActionPause))
	assert.False(t, g.paused, "pause is ignored once the game is over")

	g.Step(input(platformcore.ActionRestart))
	assert.False(t, g.gameOver)
	assert.Equal(t, core.StateActive, g.world.State)
	assert.Equal(t, 3, g.world.Player.Lives)
	assert.Zero(t, g.Score())
}

func TestAbandonRecordsQuit(t *testing.T) {
	store := newFakeStore()
	g := newGame(t, ModeArcade, registry.Options{}, store)

	g.Abandon()
	assert.Empty(t, store.sessions, "nothing played yet")

	for range 120 {
		g.Step(input())
	}
	g.Abandon()
	require.Len(t, store.sessions, 1)
	assert.Equal(t, "quit", store.sessions[0].Outcome)
	assert.Equal(t, 2, store.sessions[0].Duration)
}

func TestSeededSessionsMatch(t *testing.T) {
	a := newGame(t, ModeArcade, registry.Options{}, nil)
	b := newGame(t, ModeArcade, registry.Options{}, nil)

	for i := range 600 {
		in := input(platformcore.ActionFire)
		if i%50 < 25 {
			in.Set(platformcore.ActionLeft)
		}
		a.Step(in)
		b.Step(in)
	}
	assert.Equal(t, a.world.Snapshot(), b.world.Snapshot())
}

func TestRender(t *testing.T) {
	g := newGame(t, ModeClassic, registry.Options{LevelsDir: openLevels(t)}, nil)
	scr := platformcore.NewScreen(80, 24)

	g.Render(scr)
	hud := scr.Row(0)
	assert.Contains(t, hud, "Tanks (Classic)")
	assert.Contains(t, hud, "Lives: 3")
	assert.Contains(t, hud, "Level: 1/5")

	ox := (80 - 16*cellW) / 2
	assert.Equal(t, '│', scr.Get(ox-1, hudHeight), "left border")
	assert.Equal(t, '█', scr.Get(ox, hudHeight), "steel corner")
	base := g.world.Structure.Pos
	assert.Equal(t, '⌂', scr.Get(ox+base.X*cellW, hudHeight+base.Y))
	p := g.world.Player.Pos
	assert.Equal(t, tankGlyphs[core.DirUp][0], scr.Get(ox+p.X*cellW, hudHeight+p.Y))

	g.Step(input(platformcore.ActionPause))
	g.Render(scr)
	assert.Contains(t, scr.String(), "Paused")
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, ModeArcade, registry.Options{}, nil)
	scr := platformcore.NewScreen(30, 10)

	g.Render(scr)
	assert.Contains(t, scr.String(), "Window too small")
}
