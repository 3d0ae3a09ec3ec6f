package runner

// Lane is one of the three horizontal player positions.
type Lane int

const (
	LaneLeft Lane = iota
	LaneCenter
	LaneRight

	laneCount = 3
)

// clampLane keeps a lane within [LaneLeft, LaneRight].
func clampLane(l Lane) Lane {
	if l < LaneLeft {
		return LaneLeft
	}
	if l > LaneRight {
		return LaneRight
	}
	return l
}

// Player is the runner's state. JumpHeight is never negative.
type Player struct {
	Lane           Lane
	JumpHeight     float64
	JumpVelocity   float64
	Sliding        bool
	SlideRemaining float64
}

// ObstacleKind selects how an obstacle has to be avoided.
type ObstacleKind int

const (
	// ObstacleLow is a barrier that has to be jumped over.
	ObstacleLow ObstacleKind = iota
	// ObstacleHigh is a gate that has to be slid under.
	ObstacleHigh
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleLow:
		return "low"
	case ObstacleHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Obstacle approaches the player along a lane. Resolved is set once the
// obstacle has been scored as passed.
type Obstacle struct {
	Lane     Lane
	Kind     ObstacleKind
	Depth    float64
	Resolved bool
}

// Pickup is a bonus item collected by being in its lane as it passes.
type Pickup struct {
	Lane      Lane
	Depth     float64
	Collected bool
}

// Intent is a discrete player input.
type Intent int

const (
	IntentMoveLeft Intent = iota
	IntentMoveRight
	IntentJump
	IntentSlide
)

func (i Intent) String() string {
	switch i {
	case IntentMoveLeft:
		return "MoveLeft"
	case IntentMoveRight:
		return "MoveRight"
	case IntentJump:
		return "Jump"
	case IntentSlide:
		return "Slide"
	default:
		return "Unknown"
	}
}

// Phase is the run lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
)

func (p Phase) String() string {
	if p == PhaseRunning {
		return "Running"
	}
	return "Idle"
}
