// Package tui provides the Bubble Tea integration for the climb.
// It runs the fixed-rate terminal loop, maps keys to player actions and
// serves sessions over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	Time time.Time
	Loop int64 // tick loop that scheduled this message
}

// loops hands out tick loop IDs, so ticks left over from a finished run
// are dropped instead of doubling the rate of the next one.
var loops atomic.Int64

func newLoop() int64 {
	return loops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
