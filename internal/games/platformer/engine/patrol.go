package engine

// Direction is an enemy's patrol direction.
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Sign returns -1 for left, +1 for right and 0 otherwise.
func (d Direction) Sign() int {
	switch d {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	default:
		return 0
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// blockingSide is the grid side that stops travel in direction d.
func (d Direction) blockingSide() Side {
	switch d {
	case DirLeft:
		return SideLeft
	case DirRight:
		return SideRight
	default:
		return 0
	}
}

// Phase is the progress within the current patrol direction. It is one of
// OnEnter, OnUpdate or OnExit.
type Phase interface {
	phase()
}

// OnEnter starts walking in the patrol direction.
type OnEnter struct{}

// OnUpdate keeps walking until blocked or at a ledge.
type OnUpdate struct{}

// OnExit idles before turning around. Remaining counts down in seconds.
type OnExit struct {
	Remaining float64
}

func (OnEnter) phase()  {}
func (OnUpdate) phase() {}
func (OnExit) phase()   {}

// Patrol is the two-level enemy state: direction x phase.
type Patrol struct {
	Dir   Direction
	Phase Phase
}

// NewPatrol returns a patrol about to start walking in dir.
func NewPatrol(dir Direction) Patrol {
	return Patrol{Dir: dir, Phase: OnEnter{}}
}

// PatrolEvents are the inputs to one patrol step.
type PatrolEvents struct {
	Blocked bool    // the grid blocks the side facing the patrol direction
	Ledge   bool    // the cell ahead and one row down is open
	Dt      float64 // frame time in seconds
}

// PatrolParams tune the patrol.
type PatrolParams struct {
	Speed    float64 // walking speed
	IdleTime float64 // pause before turning around
}

// PatrolCommand is the side effect a step asks the caller to apply.
type PatrolCommand struct {
	SetVelX bool
	VelX    float64
}

// Step advances the patrol by one frame and returns the new state along
// with the velocity change to apply. Patrols without a direction or phase
// are returned unchanged.
func (p Patrol) Step(ev PatrolEvents, params PatrolParams) (Patrol, PatrolCommand) {
	if p.Dir == DirNone {
		return p, PatrolCommand{}
	}

	switch ph := p.Phase.(type) {
	case OnEnter:
		return Patrol{Dir: p.Dir, Phase: OnUpdate{}},
			PatrolCommand{SetVelX: true, VelX: float64(p.Dir.Sign()) * params.Speed}

	case OnUpdate:
		if ev.Blocked || ev.Ledge {
			return Patrol{Dir: p.Dir, Phase: OnExit{Remaining: params.IdleTime}},
				PatrolCommand{SetVelX: true, VelX: 0}
		}
		return p, PatrolCommand{}

	case OnExit:
		remaining := ph.Remaining - ev.Dt
		if remaining < 0 {
			return NewPatrol(p.Dir.Reverse()), PatrolCommand{}
		}
		return Patrol{Dir: p.Dir, Phase: OnExit{Remaining: remaining}}, PatrolCommand{}
	}

	return p, PatrolCommand{}
}

// patrolEvents samples the grid for an enemy after its collision pass.
func patrolEvents(g *MapGrid, inst *Instance, dt float64) PatrolEvents {
	dir := inst.Patrol.Dir
	cx, cy := cellOf(inst.Pos.X), cellOf(inst.Pos.Y)
	return PatrolEvents{
		Blocked: inst.Sides.Has(dir.blockingSide()),
		Ledge:   !g.Collidable(cx+dir.Sign(), cy-1),
		Dt:      dt,
	}
}
