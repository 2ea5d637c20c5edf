package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/registry"
	"github.com/vovakirdan/tui-tanks/internal/storage"
)

// stubGame records what the platform feeds it.
type stubGame struct {
	resets    int
	frames    []core.InputFrame
	state     core.GameState
	messages  []string
	abandoned bool
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Level: 1}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	msgs := g.messages
	g.messages = nil
	return core.StepResult{State: g.state, Messages: msgs}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Difficulty() string { return "hard" }
func (g *stubGame) Abandon() { g.abandoned = true }

func init() {
	registry.Register(registry.GameInfo{ID: "stub", Title: "Stub", Description: "test mode"},
		func(registry.Options) registry.Game { return &stubGame{} })
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "tanks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg(time.Now()))
	return m
}

func TestModelInitResetsGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, nil, testConfig())

	assert.NotNil(t, m.Init())
	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 23, m.screen.Height(), "footer row is reserved")
}

func TestModelHoldsDirectionBetweenRepeats(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, nil, testConfig())
	m.Init()

	m, _ = update(t, m, runeKey('w'))
	for range holdTicks + 1 {
		m = tick(t, m)
	}

	require.Len(t, g.frames, holdTicks+1)
	for i := range holdTicks {
		assert.True(t, g.frames[i].Has(core.ActionUp), "tick %d", i)
	}
	assert.False(t, g.frames[holdTicks].Has(core.ActionUp), "released after hold expires")
}

func TestModelFireIsOneShot(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, nil, testConfig())
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	m = tick(t, m)

	assert.True(t, g.frames[0].Has(core.ActionFire))
	assert.False(t, g.frames[1].Has(core.ActionFire))
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	g := &stubGame{}
	m := NewModel(g, store, nil, testConfig())
	m.Init()

	g.state = core.GameState{Score: 700, Level: 3, GameOver: true}
	for range 5 {
		m = tick(t, m)
	}

	scores, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 700, scores[0].Score)
	assert.Equal(t, 3, scores[0].Level)
	assert.Equal(t, "hard", scores[0].Difficulty)
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, nil, testConfig())
	m.Init()

	g.state.GameOver = true
	m = tick(t, m)
	m, _ = update(t, m, runeKey('r'))
	m = tick(t, m)

	assert.Equal(t, 2, g.resets)
	assert.False(t, m.gameState.GameOver)
}

func TestModelShowsNotice(t *testing.T) {
	g := &stubGame{messages: []string{"shield collected"}}
	m := NewModel(g, nil, nil, testConfig())
	m.Init()

	m = tick(t, m)
	view := m.View()
	assert.True(t, strings.HasPrefix(view, "stub"))
	assert.Contains(t, view, "shield collected")
}

func TestModelQuitAbandons(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, nil, testConfig())
	m.Init()

	m, cmd := update(t, m, runeKey('q'))
	assert.NotNil(t, cmd)
	assert.True(t, g.abandoned)
	assert.True(t, m.IsQuitting())
	assert.False(t, m.BackToMenu())
}

func TestModelBackOnlyWhenPausedOrOver(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, nil, testConfig())
	m.Init()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd, "esc ignored while playing")
	assert.False(t, m.BackToMenu())

	g.state.Paused = true
	m = tick(t, m)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
	assert.False(t, m.IsQuitting())
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, nil, testConfig())
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 39, m.screen.Height())
}

func TestFrameIntervalClamps(t *testing.T) {
	assert.Equal(t, time.Second/60, frameInterval(60))
	assert.Equal(t, time.Second/minTickRate, frameInterval(0))
	assert.Equal(t, time.Second/maxTickRate, frameInterval(10_000))
}
