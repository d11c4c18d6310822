package manager

import "time"

// SessionState is the lifecycle stage of a single game session.
type SessionState int

const (
	NotStarted SessionState = iota
	Running
	Ended
)

func (s SessionState) String() string {
	switch s {
	case Running:
		return "running"
	case Ended:
		return "ended"
	default:
		return "not started"
	}
}

// Outcome records why a session ended.
type Outcome int

const (
	NoOutcome Outcome = iota
	WallHit
	SelfHit
	Quit
)

func (o Outcome) String() string {
	switch o {
	case WallHit:
		return "wall hit"
	case SelfHit:
		return "self hit"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}

// OutcomeFor maps a collision to the outcome that ends the session.
func OutcomeFor(c CollisionType) Outcome {
	switch c {
	case WallCollision:
		return WallHit
	case SelfCollision:
		return SelfHit
	default:
		return NoOutcome
	}
}

// StateManager tracks NotStarted -> Running -> Ended. Ended is terminal.
type StateManager struct {
	state     SessionState
	outcome   Outcome
	startTime time.Time
	endTime   time.Time
	ticks     int
	foodEaten int
}

func NewStateManager() *StateManager {
	return &StateManager{state: NotStarted}
}

// Start moves a fresh session into Running.
func (sm *StateManager) Start(now time.Time) bool {
	if sm.state != NotStarted {
		return false
	}
	sm.state = Running
	sm.startTime = now
	return true
}

// End finishes the session with the given outcome. Later calls are ignored.
func (sm *StateManager) End(outcome Outcome, now time.Time) bool {
	if sm.state == Ended {
		return false
	}
	sm.state = Ended
	sm.outcome = outcome
	sm.endTime = now
	return true
}

func (sm *StateManager) AddTick() {
	sm.ticks++
}

func (sm *StateManager) AddFood() {
	sm.foodEaten++
}

func (sm *StateManager) State() SessionState { return sm.state }
func (sm *StateManager) Outcome() Outcome { return sm.outcome }
func (sm *StateManager) Running() bool { return sm.state == Running }
func (sm *StateManager) Ended() bool { return sm.state == Ended }
func (sm *StateManager) StartTime() time.Time { return sm.startTime }
func (sm *StateManager) EndTime() time.Time { return sm.endTime }
func (sm *StateManager) Ticks() int { return sm.ticks }
func (sm *StateManager) FoodEaten() int { return sm.foodEaten }
