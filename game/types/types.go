package types

import "time"

// Point is a position in window pixel space, aligned to the movement step.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Color is an RGB triple shared by every frontend.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{R: 0, G: 0, B: 0}
	White = Color{R: 255, G: 255, B: 255}
	Red   = Color{R: 255, G: 0, B: 0}
)

// Config holds the fixed parameters of a session.
type Config struct {
	WindowWidth  int
	WindowHeight int
	Radius       int // segment and food radius
	BorderWidth  int
	Step         int // pixels the head moves per tick, also the food grid
	CircleSides  int

	TickInterval time.Duration
	FrameRate    int

	SnakeStart     Point
	FoodStart      Point
	StartDirection Direction
}

// Game constants
const (
	WindowWidth  = 800
	WindowHeight = 800
	Radius       = 10
	BorderWidth  = 20
	Step         = 20
	CircleSides  = 10
	FrameRate    = 60
	TickInterval = 50 * time.Millisecond
)

// DefaultConfig returns the build-time configuration.
func DefaultConfig() Config {
	return Config{
		WindowWidth:    WindowWidth,
		WindowHeight:   WindowHeight,
		Radius:         Radius,
		BorderWidth:    BorderWidth,
		Step:           Step,
		CircleSides:    CircleSides,
		TickInterval:   TickInterval,
		FrameRate:      FrameRate,
		SnakeStart:     Point{X: 100, Y: 100},
		FoodStart:      Point{X: 100, Y: 200},
		StartDirection: SOUTH,
	}
}

// Columns returns how many step-sized cells fit across the window.
func (c Config) Columns() int {
	return c.WindowWidth / c.Step
}

// Rows returns how many step-sized cells fit down the window.
func (c Config) Rows() int {
	return c.WindowHeight / c.Step
}
