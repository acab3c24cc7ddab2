package desktop

import (
	"context"
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/rippanjyot11-sudo/GAME-DEVELOPMENT-SNAKE-GAME/internal/game"
)

// Run opens the window and plays state to completion. Frames are paced by
// vsync; ticks by the state's speed.
func Run(ctx context.Context, state *game.GameState, audio game.AudioCue) (game.Result, error) {
	window, err := initWindow(state.Config())
	if err != nil {
		return game.Result{}, err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return game.Result{}, fmt.Errorf("gl init: %w", err)
	}
	log.Printf("desktop: OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	rend, err := NewRenderer(window, state.Config())
	if err != nil {
		return game.Result{}, fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	loop := game.NewLoop(state, NewInput(window), Clock{}, rend, audio)
	loop.Bus.Subscribe(game.EventFoodEaten, func(e game.Event) { rend.Burst(e.Head) })
	return loop.Run(ctx), nil
}
