// Package tui runs games in the terminal with Bubble Tea: the frame loop,
// key bindings, menu, session history and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one game frame. Gen ties it to the model that
// scheduled it, so ticks left over from a finished game are dropped.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGens atomic.Uint64

// nextTickGen returns a fresh tick generation.
func nextTickGen() uint64 {
	return tickGens.Add(1)
}

// tickCmd returns a command that sends one tick message after a frame
// interval at the given rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
