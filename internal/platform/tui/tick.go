// Package tui provides the Bubble Tea driver for the snake simulation.
// It runs the fixed-rate tick loop, maps keys to actions and draws frames.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-snake/internal/core"
)

// TickMsg is sent to trigger a game simulation tick. ID names the model
// whose loop produced it, so a stale loop cannot drive a newer game.
type TickMsg struct {
	Time time.Time
	ID   uint64
}

var lastLoopID atomic.Uint64

// nextLoopID returns a fresh tick loop identifier.
func nextLoopID() uint64 {
	return lastLoopID.Add(1)
}

// tickInterval converts a step rate to the delay between steps.
// Non-positive rates fall back to the default.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id uint64, tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
