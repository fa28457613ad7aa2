package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") || Exists("stub-missing") {
		t.Error("Exists() returned wrong result")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "stub-a")
	}

	if _, err := Create("stub-missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(unknown) error = %v, expected ErrUnknownGame", err)
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "stub-a" && info.Title != "Stub stub-a" {
			t.Errorf("Title = %q, expected %q", info.Title, "Stub stub-a")
		}
	}
	posA, posB := -1, -1
	for i, id := range ids {
		switch id {
		case "stub-a":
			posA = i
		case "stub-b":
			posB = i
		}
	}
	if posA < 0 || posB < 0 || posA > posB {
		t.Errorf("List() = %v, expected stub-a before stub-b", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("Register() of a duplicate ID did not panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}
