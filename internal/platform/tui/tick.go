// Package tui provides the Bubble Tea integration for the snake arcade.
// It handles the terminal UI loop, input mapping and the tick clock; the
// simulation itself lives in internal/game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a command that fires one tick after the period of the
// given rate. The model re-arms it after every tick, so speed changes take
// effect on the next tick.
func tickCmd(ticksPerSecond int) tea.Cmd {
	if ticksPerSecond < 1 {
		ticksPerSecond = 1
	}
	interval := time.Second / time.Duration(ticksPerSecond)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
