package manager

import (
	"circle-snake/game/entity"
	"circle-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	cfg types.Config
}

func NewCollisionManager(cfg types.Config) *CollisionManager {
	return &CollisionManager{
		cfg: cfg,
	}
}

// CheckCollision runs the wall check and then the self check against the
// snake's current head. It does not look at food.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake, heading entity.Heading) CollisionType {
	if cm.isWallCollision(snake.GetHead()) {
		return WallCollision
	}
	if cm.isSelfCollision(snake, heading) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position lies in the border region
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	b := cm.cfg.BorderWidth
	return pos.X < b || pos.X >= cm.cfg.WindowWidth-b ||
		pos.Y < b || pos.Y >= cm.cfg.WindowHeight-b
}

// isSelfCollision reports whether the head overlaps any other segment.
// An overlap is tolerated while the last heading change was an axis
// reversal, since the neck can sit under the head for one tick then.
func (cm *CollisionManager) isSelfCollision(snake *entity.Snake, heading entity.Heading) bool {
	head := snake.GetHead()
	for i := 1; i < len(snake.Body); i++ {
		if snake.Body[i].Pos != head {
			continue
		}
		if heading.Reversed() {
			continue
		}
		return true
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
