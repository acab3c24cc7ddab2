package desktop

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/rippanjyot11-sudo/GAME-DEVELOPMENT-SNAKE-GAME/internal/game"
)

// keyDirection maps arrow keys and WASD to directions.
func keyDirection(key glfw.Key) game.Direction {
	switch key {
	case glfw.KeyUp, glfw.KeyW:
		return game.DirUp
	case glfw.KeyDown, glfw.KeyS:
		return game.DirDown
	case glfw.KeyLeft, glfw.KeyA:
		return game.DirLeft
	case glfw.KeyRight, glfw.KeyD:
		return game.DirRight
	}
	return game.DirNone
}

func isQuitKey(key glfw.Key, mods glfw.ModifierKey) bool {
	return key == glfw.KeyEscape || key == glfw.KeyQ ||
		(key == glfw.KeyC && mods&glfw.ModControl != 0)
}

// Input collects key presses from the window callback in arrival order so
// the latest direction pressed within a frame wins.
type Input struct {
	window  *glfw.Window
	pending game.Input
}

func NewInput(window *glfw.Window) *Input {
	in := &Input{window: window}
	window.SetKeyCallback(in.onKey)
	return in
}

func (in *Input) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	in.press(key, mods)
}

func (in *Input) press(key glfw.Key, mods glfw.ModifierKey) {
	if isQuitKey(key, mods) {
		in.pending.Quit = true
		return
	}
	if d := keyDirection(key); d != game.DirNone {
		in.pending.Dir = d
	}
}

// Poll pumps window events and drains what arrived since the last call.
func (in *Input) Poll() game.Input {
	glfw.PollEvents()
	out := in.pending
	in.pending = game.Input{}
	if in.window.ShouldClose() {
		out.Quit = true
	}
	return out
}

// Clock reads GLFW's monotonic timer.
type Clock struct{}

func (Clock) Now() time.Duration {
	return time.Duration(glfw.GetTime() * float64(time.Second))
}
