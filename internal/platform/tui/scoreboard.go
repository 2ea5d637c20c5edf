package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tanks/internal/registry"
	"github.com/vovakirdan/tui-tanks/internal/storage"
)

const (
	maxScores = 100
	// chromeRows covers title, mode tabs, table border, stats and help.
	chromeRows = 11
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
	statsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// scoreColumn describes one scoreboard column and how to fill it.
type scoreColumn struct {
	title string
	width int
	cell  func(rank int, e storage.ScoreEntry) string
}

var scoreColumns = []scoreColumn{
	{"Rank", 5, func(rank int, _ storage.ScoreEntry) string { return "#" + strconv.Itoa(rank) }},
	{"Score", 8, func(_ int, e storage.ScoreEntry) string { return strconv.Itoa(e.Score) }},
	{"Level", 6, func(_ int, e storage.ScoreEntry) string { return strconv.Itoa(e.Level) }},
	{"Difficulty", 10, func(_ int, e storage.ScoreEntry) string { return e.Difficulty }},
	{"Date", 12, func(_ int, e storage.ScoreEntry) string { return e.CreatedAt.Format("Jan 02 15:04") }},
}

// dateColumn absorbs spare width; the others are fixed.
const dateColumn = 4

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev mode")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the top scores and session totals of one mode at
// a time.
type ScoreboardModel struct {
	modes []registry.GameInfo
	mode  int
	store *storage.Store

	scores []storage.ScoreEntry
	stats  *storage.ModeStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard opened on the first mode.
// store may be nil, in which case every mode shows as empty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	m.table = table.New(table.WithFocused(true), table.WithStyles(styles))

	m.layout()
	m.reload()
	return m
}

// layout sizes the table to the window. Columns keep their widths; the
// date column takes what is left, up to 20 cells.
func (m *ScoreboardModel) layout() {
	fixed := 0
	cols := make([]table.Column, len(scoreColumns))
	for i, c := range scoreColumns {
		cols[i] = table.Column{Title: c.title, Width: c.width}
		if i != dateColumn {
			fixed += c.width + 2
		}
	}
	spare := m.width - fixed - 6 // frame and padding
	cols[dateColumn].Width = min(max(spare, scoreColumns[dateColumn].width), 20)

	// The table renders rows cell by cell against its columns, so rows are
	// detached while the columns change.
	rows := m.table.Rows()
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.table.SetHeight(max(m.height-chromeRows, 3))
	m.help.Width = m.width
}

// reload fetches scores and totals for the current mode.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.mode].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.Stats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, e := range m.scores {
		row := make(table.Row, len(scoreColumns))
		for j, c := range scoreColumns {
			row[j] = c.cell(i+1, e)
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cycle moves the mode cursor by delta, wrapping around.
func (m *ScoreboardModel) cycle(delta int) {
	if n := len(m.modes); n > 0 {
		m.mode = (m.mode + delta + n) % n
		m.reload()
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	body := emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	if len(m.scores) > 0 {
		body = m.table.View()
	}

	parts := []string{
		"",
		centerText(boardTitleStyle.Render(title), m.width),
		"",
		centerText(m.modeTabs(), m.width),
		"",
		centerText(boardFrameStyle.Render(body), m.width),
	}
	if line := m.statsLine(); line != "" {
		parts = append(parts, "", centerText(statsStyle.Render(line), m.width))
	}
	parts = append(parts, "", helpStyle.Render(m.help.View(m.keys)))

	return strings.Join(parts, "\n")
}

// modeTabs lists every mode, highlighting the current one. When the tabs
// do not fit, only the current mode is shown between arrows.
func (m ScoreboardModel) modeTabs() string {
	if len(m.modes) == 0 {
		return ""
	}

	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width-4 {
		return activeTabStyle.Render("< " + m.modes[m.mode].Title + " >")
	}
	return line
}

// statsLine summarizes the recorded sessions of the selected mode.
func (m ScoreboardModel) statsLine() string {
	st := m.stats
	if st == nil || st.Games == 0 {
		return ""
	}
	return fmt.Sprintf("Games %d | Kills %d | Deaths %d | Avg %.0f | Best level %d | Last %s",
		st.Games, st.Kills, st.Deaths, st.AvgScore, st.BestLevel, st.LastPlayed.Format("Jan 02 15:04"))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(ScoreboardModel); ok {
		return m.IsGoingBack(), nil
	}
	return false, nil
}
