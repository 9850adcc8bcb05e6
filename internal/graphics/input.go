package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Keyboard reports Escape as the exit signal.
type Keyboard struct{}

func (Keyboard) ExitRequested() bool {
	return rl.IsKeyPressed(rl.KeyEscape)
}
