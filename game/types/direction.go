package types

// Direction represents a cardinal heading
type Direction int

const (
	NONE  Direction = iota // 0
	NORTH                  // 1
	EAST                   // 2
	SOUTH                  // 3
	WEST                   // 4
)

// Delta returns the unit movement vector for d, scaled by step.
func (d Direction) Delta(step int) Point {
	switch d {
	case NORTH:
		return Point{X: 0, Y: -step} // screen y grows downwards
	case EAST:
		return Point{X: step, Y: 0}
	case SOUTH:
		return Point{X: 0, Y: step}
	case WEST:
		return Point{X: -step, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the heading on the same axis pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case NORTH:
		return SOUTH
	case EAST:
		return WEST
	case SOUTH:
		return NORTH
	case WEST:
		return EAST
	default:
		return NONE
	}
}

func (d Direction) String() string {
	switch d {
	case NORTH:
		return "north"
	case EAST:
		return "east"
	case SOUTH:
		return "south"
	case WEST:
		return "west"
	default:
		return "none"
	}
}
