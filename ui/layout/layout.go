// Package layout holds the frontend-independent geometry of the board:
// where the border is, where a segment is drawn and what the status line says.
package layout

import (
	"fmt"

	"circle-snake/game"
	"circle-snake/game/manager"
	"circle-snake/game/types"
)

type Rect struct {
	X, Y, W, H int
}

// Border returns the left, right, top and bottom border strips.
func Border(cfg types.Config) [4]Rect {
	b := cfg.BorderWidth
	return [4]Rect{
		{X: 0, Y: 0, W: b, H: cfg.WindowHeight},
		{X: cfg.WindowWidth - b, Y: 0, W: b, H: cfg.WindowHeight},
		{X: 0, Y: 0, W: cfg.WindowWidth, H: b},
		{X: 0, Y: cfg.WindowHeight - b, W: cfg.WindowWidth, H: b},
	}
}

// InBorder reports whether a pixel lies in one of the border strips.
func InBorder(cfg types.Config, x, y int) bool {
	for _, r := range Border(cfg) {
		if x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H {
			return true
		}
	}
	return false
}

// Centre returns the centre of a circle whose bounding box starts at p.
func Centre(p types.Point, radius int) (float32, float32) {
	return float32(p.X + radius), float32(p.Y + radius)
}

// Cell maps a pixel position to its step-sized grid cell.
func Cell(p types.Point, step int) (col, row int) {
	return floorDiv(p.X, step), floorDiv(p.Y, step)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// StatusLine is the one-line HUD shared by the frontends.
func StatusLine(g *game.Game) string {
	switch g.State() {
	case manager.NotStarted:
		return "Press SPACE to start, arrows to steer, ESC to quit"
	case manager.Ended:
		return fmt.Sprintf("Game over: %v (length %d)", g.Outcome(), g.Len())
	default:
		return fmt.Sprintf("Length: %d", g.Len())
	}
}
