package game

import (
	"log"
	"time"

	"circle-snake/game/entity"
	"circle-snake/game/manager"
	"circle-snake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Input is a key press already translated by a frontend.
type Input int

const (
	InputNone Input = iota
	InputUp
	InputRight
	InputDown
	InputLeft
	InputStart
	InputQuit
)

// Direction returns the heading an input asks for, or NONE.
func (in Input) Direction() types.Direction {
	switch in {
	case InputUp:
		return types.NORTH
	case InputRight:
		return types.EAST
	case InputDown:
		return types.SOUTH
	case InputLeft:
		return types.WEST
	default:
		return types.NONE
	}
}

// Game owns all mutable state of one session. Frontends feed it input,
// call Frame once per rendering iteration and only read it for drawing.
type Game struct {
	UUID    string
	Config  types.Config
	Verbose bool

	snake        *entity.Snake
	heading      entity.Heading
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	lastUpdate   time.Time
}

func NewGame(cfg types.Config, rng *rand.Rand, now time.Time) *Game {
	shape := entity.Shape{Radius: cfg.Radius, Sides: cfg.CircleSides, Color: types.Black}

	return &Game{
		UUID:         uuid.New().String(),
		Config:       cfg,
		snake:        entity.NewSnake(cfg.SnakeStart, shape),
		heading:      entity.NewHeading(cfg.StartDirection),
		collisionMgr: manager.NewCollisionManager(cfg),
		foodMgr:      manager.NewFoodManager(cfg, rng),
		stateMgr:     manager.NewStateManager(),
		lastUpdate:   now,
	}
}

// HandleInput applies one translated key press. Directions are recorded
// even before the start signal; nothing is accepted once the session ended.
func (g *Game) HandleInput(in Input, now time.Time) {
	if g.stateMgr.Ended() {
		return
	}

	switch in {
	case InputQuit:
		g.end(manager.Quit, now)
	case InputStart:
		if g.stateMgr.Start(now) {
			log.Printf("session %s started heading %v", g.UUID, g.heading.Current())
		}
	default:
		if dir := in.Direction(); dir != types.NONE {
			g.heading.Apply(dir)
		}
	}
}

// Frame is called once per rendering iteration. It runs at most one
// simulation step when the tick interval has elapsed since the last step
// and reports whether it did. Missed ticks are not caught up.
func (g *Game) Frame(now time.Time) bool {
	if !g.stateMgr.Running() {
		return false
	}
	if now.Sub(g.lastUpdate) < g.Config.TickInterval {
		return false
	}
	g.Step(now)
	g.lastUpdate = now
	return true
}

// Step advances the simulation by one tick: collision checks, food,
// then the body shift and head move.
func (g *Game) Step(now time.Time) {
	if !g.stateMgr.Running() {
		return
	}
	g.stateMgr.AddTick()

	if collision := g.collisionMgr.CheckCollision(g.snake, g.heading); collision != manager.NoCollision {
		g.end(manager.OutcomeFor(collision), now)
		return
	}

	if g.collisionMgr.IsFoodCollision(g.snake.GetHead(), g.foodMgr.GetFood()) {
		g.snake.Grow()
		g.stateMgr.AddFood()
		if !g.foodMgr.Respawn(g.snake) {
			log.Printf("session %s: no free cell left for food", g.UUID)
		}
		if g.Verbose {
			log.Printf("tick %d: ate food, length %d, next food %v",
				g.stateMgr.Ticks(), g.snake.Len(), g.foodMgr.GetFood())
		}
	}

	g.snake.Move(g.heading.Current().Delta(g.Config.Step))

	if g.Verbose {
		log.Printf("tick %d: head %v heading %v", g.stateMgr.Ticks(), g.snake.GetHead(), g.heading.Current())
	}
}

func (g *Game) end(outcome manager.Outcome, now time.Time) {
	if g.stateMgr.End(outcome, now) {
		log.Printf("session %s ended: %v", g.UUID, outcome)
	}
}

// Segments returns a copy of the body, head first.
func (g *Game) Segments() []entity.Segment {
	out := make([]entity.Segment, len(g.snake.Body))
	copy(out, g.snake.Body)
	return out
}

func (g *Game) Positions() []types.Point {
	return g.snake.Positions()
}

func (g *Game) GetHead() types.Point {
	return g.snake.GetHead()
}

func (g *Game) Len() int {
	return g.snake.Len()
}

func (g *Game) GetFood() types.Point {
	return g.foodMgr.GetFood()
}

func (g *Game) Direction() types.Direction {
	return g.heading.Current()
}

func (g *Game) State() manager.SessionState {
	return g.stateMgr.State()
}

func (g *Game) Started() bool {
	return g.stateMgr.State() != manager.NotStarted
}

func (g *Game) Ended() bool {
	return g.stateMgr.Ended()
}

func (g *Game) Outcome() manager.Outcome {
	return g.stateMgr.Outcome()
}
