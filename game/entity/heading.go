package entity

import "circle-snake/game/types"

// Heading remembers the requested direction and the one it replaced.
// It never validates input: reversals and repeats are recorded as given.
type Heading struct {
	previous types.Direction
	current  types.Direction
}

func NewHeading(start types.Direction) Heading {
	return Heading{previous: types.NONE, current: start}
}

// Apply records dir as the current direction. NONE is ignored.
func (h *Heading) Apply(dir types.Direction) {
	if dir == types.NONE {
		return
	}
	h.previous = h.current
	h.current = dir
}

func (h Heading) Current() types.Direction {
	return h.current
}

func (h Heading) Previous() types.Direction {
	return h.previous
}

// Reversed reports whether the last change flipped the snake onto the
// opposite heading of the same axis.
func (h Heading) Reversed() bool {
	return IsAxisReversal(h.previous, h.current)
}

// IsAxisReversal reports whether a and b are opposite headings.
func IsAxisReversal(a, b types.Direction) bool {
	return a != types.NONE && a.Opposite() == b
}
