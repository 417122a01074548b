// Package tui provides the Bubble Tea integration for the sweeper game.
// It handles the terminal UI loop, input mapping, and screen rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per second to refresh the elapsed-time display.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
