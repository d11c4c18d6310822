package ui

import (
	"circle-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyBindings = map[int32]game.Input{
	rl.KeyUp:     game.InputUp,
	rl.KeyRight:  game.InputRight,
	rl.KeyDown:   game.InputDown,
	rl.KeyLeft:   game.InputLeft,
	rl.KeySpace:  game.InputStart,
	rl.KeyEscape: game.InputQuit,
}

// pollInputs drains the key press queue in arrival order.
func pollInputs() []game.Input {
	var inputs []game.Input
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if in, ok := keyBindings[key]; ok {
			inputs = append(inputs, in)
		}
	}
	return inputs
}
