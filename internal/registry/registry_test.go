package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

type stubGame struct {
	id   string
	opts Options
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func stubFactory(id string) Factory {
	return func(opts Options) Game { return &stubGame{id: id, opts: opts} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register(GameInfo{ID: "zz_stub_b", Description: "second"}, stubFactory("zz_stub_b"))
	Register(GameInfo{ID: "zz_stub_a", Title: "Custom"}, stubFactory("zz_stub_a"))

	info, ok := Lookup("zz_stub_b")
	require.True(t, ok)
	assert.Equal(t, "Stub zz_stub_b", info.Title, "title taken from the game when omitted")
	assert.Equal(t, "second", info.Description)

	info, ok = Lookup("zz_stub_a")
	require.True(t, ok)
	assert.Equal(t, "Custom", info.Title)

	g, err := Create("zz_stub_a", Options{Difficulty: "hard"})
	require.NoError(t, err)
	assert.Equal(t, "hard", g.(*stubGame).opts.Difficulty)

	var ids []string
	for _, gi := range List() {
		ids = append(ids, gi.ID)
	}
	assert.IsIncreasing(t, ids)
	assert.Contains(t, ids, "zz_stub_a")
	assert.True(t, Exists("zz_stub_b"))
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game", Options{})
	assert.ErrorContains(t, err, "no_such_game")
	assert.False(t, Exists("no_such_game"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "zz_stub_dup"}, stubFactory("zz_stub_dup"))
	assert.Panics(t, func() {
		Register(GameInfo{ID: "zz_stub_dup"}, stubFactory("zz_stub_dup"))
	})
}
