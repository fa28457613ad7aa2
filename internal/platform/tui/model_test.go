package tui

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// scriptedGame records the frames it is stepped with and returns a fixed
// result.
type scriptedGame struct {
	inputs []core.InputFrame
	dts    []float64
	resets int
	result core.StepResult
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) Render(dst *core.Screen) { dst.Clear(); dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState { return g.result.State }
func (g *scriptedGame) Step(in core.InputFrame, dt float64) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	g.dts = append(g.dts, dt)
	return g.result
}

func newTestModel(t *testing.T, g *scriptedGame, store *storage.Store, opts GameOptions) GameModel {
	t.Helper()
	opts.Logger = log.New(io.Discard)
	m := NewGameModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, opts)
	m.Init()
	return m
}

func send(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected GameModel", next)
	}
	return gm
}

func TestGameModelHeldMovement(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil, GameOptions{HoldWindow: time.Hour})

	m = send(t, m, runeKey("a"))
	m = send(t, m, runeKey(" "))
	now := time.Now()
	m = send(t, m, TickMsg(now))
	send(t, m, TickMsg(now.Add(20*time.Millisecond)))

	if len(g.inputs) != 2 {
		t.Fatalf("Step() called %d times, expected 2", len(g.inputs))
	}
	first, second := g.inputs[0], g.inputs[1]
	if !first.IsHeld(core.ActionLeft) || !second.IsHeld(core.ActionLeft) {
		t.Error("Left not held across frames")
	}
	if !first.Has(core.ActionJump) {
		t.Error("Jump press missing from first frame")
	}
	if second.Has(core.ActionJump) {
		t.Error("Jump press repeated in second frame")
	}
	if g.dts[0] != 1.0/60 {
		t.Errorf("first dt = %v, expected %v", g.dts[0], 1.0/60)
	}
	if g.dts[1] != 0.02 {
		t.Errorf("second dt = %v, expected 0.02", g.dts[1])
	}
}

func TestGameModelHoldExpires(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil, GameOptions{HoldWindow: 150 * time.Millisecond})

	m = send(t, m, runeKey("d"))
	send(t, m, TickMsg(time.Now().Add(time.Minute)))

	if g.inputs[0].IsHeld(core.ActionRight) {
		t.Error("Right still held long after its last key event")
	}
}

func TestGameModelBackToMenuSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{result: core.StepResult{
		State:      core.GameState{Score: 300, Lives: 2, Level: "level2", Collected: 3, Restarts: 1},
		BackToMenu: true,
	}}
	m := newTestModel(t, g, store, GameOptions{})

	m = send(t, m, TickMsg(time.Now()))
	if !m.BackToMenu() {
		t.Fatal("BackToMenu() = false, expected true")
	}
	if m.View() != "" {
		t.Error("View() not empty after leaving the game")
	}

	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("TopRuns() returned %d runs, expected 1", len(runs))
	}
	r := runs[0]
	if r.Score != 300 || r.Coins != 3 || r.Level != "level2" || r.Restarts != 1 || r.Outcome != storage.OutcomeQuit {
		t.Errorf("saved run = %+v", r)
	}
}

func TestGameModelCompletedRunSavedOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{result: core.StepResult{
		State: core.GameState{Score: 850, Lives: 3, Level: "level2", GameOver: true, Won: true},
	}}
	m := newTestModel(t, g, store, GameOptions{})

	now := time.Now()
	for i := range 3 {
		m = send(t, m, TickMsg(now.Add(time.Duration(i)*time.Millisecond)))
	}

	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("TopRuns() returned %d runs, expected 1", len(runs))
	}
	if runs[0].Outcome != storage.OutcomeComplete {
		t.Errorf("Outcome = %q, expected %q", runs[0].Outcome, storage.OutcomeComplete)
	}

	// Restart after the run starts over.
	m = send(t, m, runeKey("r"))
	m = send(t, m, TickMsg(now.Add(time.Second)))
	if g.resets != 2 {
		t.Errorf("Reset() called %d times, expected 2", g.resets)
	}
	if m.IsQuitting() {
		t.Error("model quit on restart")
	}
}

func TestGameModelStopsOnError(t *testing.T) {
	boom := errors.New("level missing")
	g := &scriptedGame{result: core.StepResult{Err: boom}}
	m := newTestModel(t, g, nil, GameOptions{})

	m = send(t, m, TickMsg(time.Now()))
	if !m.IsQuitting() {
		t.Error("IsQuitting() = false after a game error")
	}
	if !errors.Is(m.Err(), boom) {
		t.Errorf("Err() = %v, expected %v", m.Err(), boom)
	}
}

func TestGameModelQuitKey(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil, GameOptions{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() {
		t.Error("IsQuitting() = false after ctrl+c")
	}
	if len(g.inputs) != 0 {
		t.Error("quit key reached the game")
	}
}

func TestGameModelView(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil, GameOptions{})
	m = send(t, m, tea.WindowSizeMsg{Width: 20, Height: 4})

	if g.resets != 1 {
		t.Errorf("resize reset the game: Reset() called %d times", g.resets)
	}
	if got := m.View(); got == "" {
		t.Error("View() is empty")
	}
}
