package engine

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestPatrolUnobstructed(t *testing.T) {
	params := PatrolParams{Speed: 7.5, IdleTime: 2}
	p := NewPatrol(DirRight)

	p, cmd := p.Step(PatrolEvents{Dt: 0.016}, params)
	if _, ok := p.Phase.(OnUpdate); !ok {
		t.Fatalf("phase after enter = %T, expected OnUpdate", p.Phase)
	}
	if !cmd.SetVelX || cmd.VelX != 7.5 {
		t.Fatalf("enter command = %+v, expected VelX 7.5", cmd)
	}

	for i := 0; i < 1000; i++ {
		p, cmd = p.Step(PatrolEvents{Dt: 0.016}, params)
		if cmd.SetVelX {
			t.Fatalf("step %d changed velocity to %v", i, cmd.VelX)
		}
	}
	if _, ok := p.Phase.(OnUpdate); !ok || p.Dir != DirRight {
		t.Errorf("patrol = %+v, expected Right/OnUpdate", p)
	}
}

func TestPatrolBlockedReverses(t *testing.T) {
	params := PatrolParams{Speed: 7.5, IdleTime: 2}
	p := Patrol{Dir: DirRight, Phase: OnUpdate{}}

	p, cmd := p.Step(PatrolEvents{Blocked: true, Dt: 0.5}, params)
	exit, ok := p.Phase.(OnExit)
	if !ok {
		t.Fatalf("phase after block = %T, expected OnExit", p.Phase)
	}
	if exit.Remaining != 2 {
		t.Errorf("Remaining = %v, expected 2", exit.Remaining)
	}
	if !cmd.SetVelX || cmd.VelX != 0 {
		t.Errorf("block command = %+v, expected VelX 0", cmd)
	}

	// 2.0 -> 1.5 -> 1.0 -> 0.5 -> 0.0 still idles; the next tick goes negative.
	for i := 0; i < 4; i++ {
		p, _ = p.Step(PatrolEvents{Dt: 0.5}, params)
		if _, ok := p.Phase.(OnExit); !ok {
			t.Fatalf("tick %d left OnExit early", i)
		}
	}
	p, _ = p.Step(PatrolEvents{Dt: 0.5}, params)
	if p.Dir != DirLeft {
		t.Errorf("Dir = %v, expected Left", p.Dir)
	}
	if _, ok := p.Phase.(OnEnter); !ok {
		t.Fatalf("phase after idle = %T, expected OnEnter", p.Phase)
	}

	_, cmd = p.Step(PatrolEvents{Dt: 0.5}, params)
	if cmd.VelX != -7.5 {
		t.Errorf("VelX after reversal = %v, expected -7.5", cmd.VelX)
	}
}

func TestPatrolLedgeStops(t *testing.T) {
	p := Patrol{Dir: DirLeft, Phase: OnUpdate{}}
	p, cmd := p.Step(PatrolEvents{Ledge: true}, PatrolParams{Speed: 1, IdleTime: 0.5})
	if _, ok := p.Phase.(OnExit); !ok {
		t.Fatalf("phase at ledge = %T, expected OnExit", p.Phase)
	}
	if !cmd.SetVelX || cmd.VelX != 0 {
		t.Errorf("ledge command = %+v, expected VelX 0", cmd)
	}
}

func TestPatrolNoDirection(t *testing.T) {
	p := Patrol{}
	next, cmd := p.Step(PatrolEvents{Blocked: true, Dt: 1}, PatrolParams{Speed: 1})
	if next != p || cmd.SetVelX {
		t.Errorf("Step() on idle patrol = %+v, %+v, expected no change", next, cmd)
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		dir     Direction
		sign    int
		reverse Direction
		name    string
	}{
		{DirLeft, -1, DirRight, "Left"},
		{DirRight, 1, DirLeft, "Right"},
		{DirNone, 0, DirNone, "None"},
	}
	for _, tt := range tests {
		if got := tt.dir.Sign(); got != tt.sign {
			t.Errorf("%v.Sign() = %d, expected %d", tt.dir, got, tt.sign)
		}
		if got := tt.dir.Reverse(); got != tt.reverse {
			t.Errorf("%v.Reverse() = %v, expected %v", tt.dir, got, tt.reverse)
		}
		if got := tt.dir.String(); got != tt.name {
			t.Errorf("String() = %q, expected %q", got, tt.name)
		}
	}
}

func TestPatrolEventsAtMapEdge(t *testing.T) {
	g := mustGrid(t, [][]int{
		{3, 0},
		{1, 1},
	})
	enemy := &Instance{Pos: core.V(0.5, 1.5), Patrol: Patrol{Dir: DirLeft, Phase: OnUpdate{}}}
	ev := patrolEvents(g, enemy, 0.1)
	if !ev.Ledge {
		t.Error("Ledge = false at the left map edge, expected true")
	}

	enemy.Patrol.Dir = DirRight
	if ev := patrolEvents(g, enemy, 0.1); ev.Ledge {
		t.Error("Ledge = true over solid floor, expected false")
	}

	// Bottom row: the row below is off the grid.
	enemy.Pos = core.V(0.5, 0.5)
	if ev := patrolEvents(g, enemy, 0.1); !ev.Ledge {
		t.Error("Ledge = false on the bottom row, expected true")
	}
}
