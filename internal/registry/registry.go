// Package registry maps game IDs to factories. Games register themselves in
// init(), so the CLI and the SSH server can create them by ID without
// importing game internals.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what the platform drives. Implementations hold pure game logic:
// the platform owns input mapping, frame timing and the terminal.
type Game interface {
	// ID is the stable identifier used on the command line and in the
	// runs database.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new run. Called before the first Step and again on
	// restart after the run has ended.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by dt seconds with the input sampled
	// for this frame.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Render draws the game into dst.
	Render(dst *core.Screen)

	// State reports score, lives and run status.
	State() core.GameState
}

// LevelSelector is implemented by games that can start on a chosen level.
type LevelSelector interface {
	SelectLevel(id string)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id. The title is taken from a probe
// instance. Registering the same id twice panics.
func Register(id string, f Factory) {
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: GameInfo{ID: id, Title: title}, factory: f}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
