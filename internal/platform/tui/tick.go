// Package tui runs games in the terminal with Bubble Tea: the tick loop,
// key bindings, the mode menu, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Tick rates outside this range are clamped.
const (
	minTickRate = 10
	maxTickRate = 240
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// frameInterval is the wall time between simulation ticks.
func frameInterval(tickRate int) time.Duration {
	return time.Second / time.Duration(min(max(tickRate, minTickRate), maxTickRate))
}

// tickCmd schedules the next simulation tick.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
