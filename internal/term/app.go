package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rippanjyot11-sudo/GAME-DEVELOPMENT-SNAKE-GAME/internal/game"
)

// gameOverHold is how long the final frame stays up after a collision,
// unless a key is pressed first.
const gameOverHold = 3 * time.Second

// Run takes over the terminal and plays state to completion. The screen
// is restored before returning so the caller can print the score.
func Run(ctx context.Context, state *game.GameState, audio game.AudioCue) (game.Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return game.Result{}, fmt.Errorf("terminal screen: %w", err)
	}
	return run(ctx, screen, state, audio, game.NewWallClock(), gameOverHold)
}

func run(ctx context.Context, screen tcell.Screen, state *game.GameState, audio game.AudioCue, clock game.Clock, hold time.Duration) (game.Result, error) {
	if err := screen.Init(); err != nil {
		return game.Result{}, fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	in := NewInput(screen)
	defer in.Close()

	res := game.NewLoop(state, in, clock, NewRenderer(screen), audio).Run(ctx)
	if !res.Quit && hold > 0 {
		in.waitKey(ctx, hold)
	}
	return res, nil
}
