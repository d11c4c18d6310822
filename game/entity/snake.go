package entity

import (
	"circle-snake/game/types"
)

// Shape is the drawable attached to a segment. Frontends read it; the
// simulation never does.
type Shape struct {
	Radius int
	Sides  int
	Color  types.Color
}

// Segment is one body unit: its grid position and the shape drawn there.
type Segment struct {
	Pos   types.Point
	Shape Shape
}

// Snake is an ordered body. Index 0 is the head, the last index is the tail.
type Snake struct {
	Body  []Segment
	shape Shape
}

func NewSnake(startPos types.Point, shape Shape) *Snake {
	return &Snake{
		Body:  []Segment{{Pos: startPos, Shape: shape}},
		shape: shape,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0].Pos
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Positions returns a copy of the body positions, head first.
func (s *Snake) Positions() []types.Point {
	out := make([]types.Point, len(s.Body))
	for i, seg := range s.Body {
		out[i] = seg.Pos
	}
	return out
}

// Grow appends one segment at the current tail position.
func (s *Snake) Grow() {
	tail := s.Body[len(s.Body)-1].Pos
	s.Body = append(s.Body, Segment{Pos: tail, Shape: s.shape})
}

// Move shifts every segment onto its predecessor, tail first, then moves
// the head by delta.
func (s *Snake) Move(delta types.Point) {
	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i].Pos = s.Body[i-1].Pos
	}
	s.Body[0].Pos = s.Body[0].Pos.Add(delta)
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, seg := range s.Body {
		if seg.Pos == p {
			return true
		}
	}
	return false
}
