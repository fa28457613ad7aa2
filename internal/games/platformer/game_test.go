package platformer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/engine"
)

const frame = 1.0 / 60

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

// useLevels points the catalogue at dir for the duration of the test.
func useLevels(t *testing.T, dir string) {
	t.Helper()
	SetLevelsDir(dir)
	t.Cleanup(func() { SetLevelsDir("") })
}

func writeLevel(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestResetStartsFirstLevel(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	if g.Err() != nil {
		t.Fatalf("Reset() error = %v", g.Err())
	}
	st := g.State()
	if st.Level != "level1" {
		t.Errorf("Level = %q, expected level1", st.Level)
	}
	if st.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", st.Lives)
	}
	if st.Coins == 0 {
		t.Error("Coins = 0, expected the level's coins")
	}
	if st.GameOver || st.Won || st.Paused {
		t.Errorf("State = %+v, expected a running game", st)
	}
}

func TestDeterminism(t *testing.T) {
	g1, g2 := New(), New()
	g1.Reset(testRuntime())
	g2.Reset(testRuntime())

	in := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		in.Clear()
		switch {
		case i < 100:
			in.Hold(core.ActionRight)
		case i == 120:
			in.Set(core.ActionJump)
		case i > 150:
			in.Hold(core.ActionLeft)
		}
		g1.Step(in, frame)
		g2.Step(in, frame)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestCampaignProgression(t *testing.T) {
	dir := t.TempDir()
	// Hero spawns touching the only coin.
	tiny := "Width 3\nHeight 2\n2 4 0\n1 1 1\n"
	writeLevel(t, dir, "level1.txt", tiny)
	writeLevel(t, dir, "level2.txt", tiny)
	useLevels(t, dir)

	g := New()
	g.Reset(testRuntime())

	res := g.Step(core.NewInputFrame(), frame)
	if res.State.Level != "level2" {
		t.Fatalf("Level after clearing level1 = %q, expected level2", res.State.Level)
	}
	if res.State.Score != 100 {
		t.Errorf("Score = %d, expected 100", res.State.Score)
	}
	if res.State.Collected != 1 {
		t.Errorf("Collected = %d, expected 1", res.State.Collected)
	}

	res = g.Step(core.NewInputFrame(), frame)
	if !res.State.GameOver || !res.State.Won {
		t.Fatalf("State = %+v, expected a won game", res.State)
	}
	if res.State.Score != 350 {
		t.Errorf("final Score = %d, expected 2*100 + 3*50", res.State.Score)
	}
	if res.State.Collected != 2 {
		t.Errorf("final Collected = %d, expected 2", res.State.Collected)
	}

	// The finished run stays finished.
	res = g.Step(core.NewInputFrame(), frame)
	if !res.State.GameOver || res.State.Score != 350 {
		t.Errorf("State after game over = %+v", res.State)
	}
}

func TestBackToMenu(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	in.Set(core.ActionBack)
	if res := g.Step(in, frame); !res.BackToMenu {
		t.Error("BackToMenu = false after Back, expected true")
	}
	if g.Snapshot().Transition != engine.TransitionMenu {
		t.Errorf("Transition = %v, expected Menu", g.Snapshot().Transition)
	}
}

func TestPauseFreezes(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, frame)
	if !g.State().Paused {
		t.Fatal("Paused = false after Pause")
	}

	before := g.Snapshot()
	right := core.NewInputFrame()
	right.Hold(core.ActionRight)
	for i := 0; i < 30; i++ {
		g.Step(right, frame)
	}
	if after := g.Snapshot(); after != before {
		t.Errorf("paused game changed:\n%+v\n%+v", before, after)
	}

	g.Step(pause, frame)
	if g.State().Paused {
		t.Error("Paused = true after second Pause")
	}

	back := core.NewInputFrame()
	g.Step(pause, frame)
	back.Set(core.ActionBack)
	if res := g.Step(back, frame); !res.BackToMenu {
		t.Error("Back while paused did not return to the menu")
	}
}

func TestRestartKey(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	spawn := g.Snapshot()

	right := core.NewInputFrame()
	right.Hold(core.ActionRight)
	for i := 0; i < 20; i++ {
		g.Step(right, frame)
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart, frame)

	snap := g.Snapshot()
	if snap.Restarts != 1 {
		t.Errorf("Restarts = %d, expected 1", snap.Restarts)
	}
	if snap.HeroX != spawn.HeroX || snap.HeroY != spawn.HeroY {
		t.Errorf("hero at (%v, %v) after restart, expected spawn (%v, %v)", snap.HeroX, snap.HeroY, spawn.HeroX, spawn.HeroY)
	}
}

func TestUnknownStartLevel(t *testing.T) {
	SetStartLevel("no-such-level")
	t.Cleanup(func() { SetStartLevel("") })

	g := New()
	g.Reset(testRuntime())

	res := g.Step(core.NewInputFrame(), frame)
	if res.Err == nil || !IsLevelMissing(res.Err) {
		t.Fatalf("Step() Err = %v, expected a missing level", res.Err)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "CANNOT START") {
		t.Error("error screen not rendered")
	}
}

func TestStartLevel(t *testing.T) {
	SetStartLevel("level2")
	t.Cleanup(func() { SetStartLevel("") })

	g := New()
	g.Reset(testRuntime())
	if g.State().Level != "level2" {
		t.Errorf("Level = %q, expected level2", g.State().Level)
	}
}

func TestSelectLevel(t *testing.T) {
	g := New()
	g.SelectLevel("level2")
	g.Reset(testRuntime())
	if g.State().Level != "level2" {
		t.Errorf("Level = %q, expected level2", g.State().Level)
	}

	// The choice survives a reset.
	g.Reset(testRuntime())
	if g.State().Level != "level2" {
		t.Errorf("Level after second Reset = %q, expected level2", g.State().Level)
	}

	// A fresh instance still starts at the beginning.
	other := New()
	other.Reset(testRuntime())
	if other.State().Level != "level1" {
		t.Errorf("Level = %q, expected level1", other.State().Level)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Level 1") || !strings.Contains(hud, "Lives: 3") {
		t.Errorf("HUD = %q, expected level name and lives", hud)
	}
	out := screen.String()
	if !strings.Contains(out, "@") {
		t.Error("hero not drawn")
	}
	if !strings.Contains(out, "█") {
		t.Error("walls not drawn")
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, frame)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay not drawn")
	}
}
