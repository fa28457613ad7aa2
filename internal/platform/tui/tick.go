// Package tui provides the Bubble Tea integration for the platformer.
// It runs the terminal loop, turns key events into held actions and
// records finished runs.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock turns tick timestamps into frame durations.
type frameClock struct {
	last     time.Time
	fallback float64
}

func newFrameClock(tickRate int) frameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return frameClock{fallback: 1 / float64(tickRate)}
}

// next returns the seconds since the previous tick. The first tick, and any
// tick that arrives out of order, counts as one nominal frame.
func (c *frameClock) next(now time.Time) float64 {
	dt := c.fallback
	if !c.last.IsZero() && now.After(c.last) {
		dt = now.Sub(c.last).Seconds()
	}
	c.last = now
	return dt
}
