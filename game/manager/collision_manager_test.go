package manager

import (
	"testing"

	"circle-snake/game/entity"
	"circle-snake/game/types"
)

func snakeAt(p types.Point) *entity.Snake {
	return entity.NewSnake(p, entity.Shape{Radius: types.Radius, Sides: types.CircleSides, Color: types.Black})
}

func TestWallBoundary(t *testing.T) {
	cm := NewCollisionManager(types.DefaultConfig())
	b := types.BorderWidth

	cases := []struct {
		name string
		pos  types.Point
		want bool
	}{
		{"left inside", types.Point{X: b, Y: 100}, false},
		{"left border", types.Point{X: b - 1, Y: 100}, true},
		{"top inside", types.Point{X: 100, Y: b}, false},
		{"top border", types.Point{X: 100, Y: b - 1}, true},
		{"right inside", types.Point{X: types.WindowWidth - b - 1, Y: 100}, false},
		{"right border", types.Point{X: types.WindowWidth - b, Y: 100}, true},
		{"bottom inside", types.Point{X: 100, Y: types.WindowHeight - b - 1}, false},
		{"bottom border", types.Point{X: 100, Y: types.WindowHeight - b}, true},
	}
	for _, c := range cases {
		if got := cm.isWallCollision(c.pos); got != c.want {
			t.Errorf("%s: isWallCollision(%v) = %v, want %v", c.name, c.pos, got, c.want)
		}
		want := NoCollision
		if c.want {
			want = WallCollision
		}
		if got := cm.CheckCollision(snakeAt(c.pos), entity.NewHeading(types.SOUTH)); got != want {
			t.Errorf("%s: CheckCollision = %v, want %v", c.name, got, want)
		}
	}
}

func TestSingleSegmentNeverHitsItself(t *testing.T) {
	cm := NewCollisionManager(types.DefaultConfig())
	s := snakeAt(types.Point{X: 100, Y: 100})
	if cm.isSelfCollision(s, entity.NewHeading(types.SOUTH)) {
		t.Errorf("Expected no self collision for a single segment")
	}
}

func TestSelfCollision(t *testing.T) {
	cm := NewCollisionManager(types.DefaultConfig())
	s := snakeAt(types.Point{X: 100, Y: 100})
	s.Grow() // neck now sits under the head

	h := entity.NewHeading(types.SOUTH)
	if got := cm.CheckCollision(s, h); got != SelfCollision {
		t.Errorf("got %v, want %v", got, SelfCollision)
	}

	h.Apply(types.EAST)
	if got := cm.CheckCollision(s, h); got != SelfCollision {
		t.Errorf("after a turn got %v, want %v", got, SelfCollision)
	}
}

func TestReversalExemption(t *testing.T) {
	cm := NewCollisionManager(types.DefaultConfig())

	pairs := [][2]types.Direction{
		{types.NORTH, types.SOUTH},
		{types.SOUTH, types.NORTH},
		{types.EAST, types.WEST},
		{types.WEST, types.EAST},
	}
	for _, p := range pairs {
		s := snakeAt(types.Point{X: 100, Y: 100})
		s.Grow()
		s.Grow()
		h := entity.NewHeading(p[0])
		h.Apply(p[1])
		if got := cm.CheckCollision(s, h); got != NoCollision {
			t.Errorf("reversal %v->%v: got %v, want %v", p[0], p[1], got, NoCollision)
		}
	}
}

func TestWallCheckedBeforeSelf(t *testing.T) {
	cm := NewCollisionManager(types.DefaultConfig())
	s := snakeAt(types.Point{X: 0, Y: 100})
	s.Grow()
	if got := cm.CheckCollision(s, entity.NewHeading(types.WEST)); got != WallCollision {
		t.Errorf("got %v, want %v", got, WallCollision)
	}
}

func TestIsFoodCollision(t *testing.T) {
	cm := NewCollisionManager(types.DefaultConfig())
	if !cm.IsFoodCollision(types.Point{X: 100, Y: 200}, types.Point{X: 100, Y: 200}) {
		t.Errorf("Expected food collision on equal points")
	}
	if cm.IsFoodCollision(types.Point{X: 100, Y: 180}, types.Point{X: 100, Y: 200}) {
		t.Errorf("Expected no food collision on different points")
	}
}
