// Package tui hosts the catcher in a terminal through Bubble Tea.
// It owns the frame ticker, key and mouse mapping, the menu screens and the
// SSH front door; the game itself stays free of terminal concerns.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame. At is the frame timestamp the game
// derives its elapsed time from; Run tells apart the tick chains of
// successive games in one program.
type TickMsg struct {
	At  time.Time
	Run uint64
}

var runIDs atomic.Uint64

func nextRunID() uint64 {
	return runIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, run uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Run: run}
	})
}
