package ui

import (
	"time"

	"circle-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RunDesktop opens a raylib window and drives g until the session ends.
func RunDesktop(g *game.Game) {
	cfg := g.Config

	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "Snake")
	defer rl.CloseWindow()

	rl.SetExitKey(0) // Escape is mapped to InputQuit instead
	rl.SetTargetFPS(int32(cfg.FrameRate))

	renderer := NewRenderer(cfg)

	for !g.Ended() {
		if rl.WindowShouldClose() {
			g.HandleInput(game.InputQuit, time.Now())
			break
		}

		for _, in := range pollInputs() {
			g.HandleInput(in, time.Now())
		}
		if g.Ended() {
			break
		}

		// Update game state at fixed interval
		g.Frame(time.Now())

		renderer.Draw(g)
	}
}
