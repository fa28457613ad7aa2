package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ", "w", "up", "k":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// HoldTracker approximates key releases for terminals, which only report
// presses and auto-repeats. An action stays held until no event for it has
// arrived within the hold window.
type HoldTracker struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// Press records a key event for the action at now. Pressing one direction
// releases the other.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.lastSeen, core.ActionRight)
	case core.ActionRight:
		delete(h.lastSeen, core.ActionLeft)
	}
	h.lastSeen[a] = now
}

// Apply marks every action still inside its hold window as held in frame
// and forgets the expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, t := range h.lastSeen {
		if now.Sub(t) > h.window {
			delete(h.lastSeen, a)
			continue
		}
		frame.Hold(a)
	}
}

// Reset releases every action.
func (h *HoldTracker) Reset() {
	clear(h.lastSeen)
}
