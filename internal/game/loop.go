package game

import (
	"context"
	"fmt"
	"io"
	"log"
)

// Renderer draws the current state. It must not mutate it.
type Renderer interface {
	Render(g *GameState)
}

// AudioCue plays fire-and-forget sound cues.
type AudioCue interface {
	FoodEaten()
	GameOver()
}

// NopAudio is the silent AudioCue used when no audio device is available.
type NopAudio struct{}

func (NopAudio) FoodEaten() {}
func (NopAudio) GameOver() {}

// Result is the terminal summary of a run.
type Result struct {
	Score int
	Cause Cause // CauseNone when the player quit
	Quit  bool
	Ticks int
}

// Loop is the cooperative game loop: poll input, maybe advance, render.
type Loop struct {
	State    *GameState
	Input    InputSource
	Clock    Clock
	Renderer Renderer
	Bus      *EventBus
}

// NewLoop wires a loop and routes food and game-over events to audio.
func NewLoop(state *GameState, input InputSource, clock Clock, r Renderer, audio AudioCue) *Loop {
	if audio == nil {
		audio = NopAudio{}
	}
	bus := NewEventBus()
	bus.Subscribe(EventFoodEaten, func(Event) { audio.FoodEaten() })
	bus.Subscribe(EventGameOver, func(Event) { audio.GameOver() })
	return &Loop{
		State:    state,
		Input:    input,
		Clock:    clock,
		Renderer: r,
		Bus:      bus,
	}
}

// Run iterates until the player quits, the game terminates or ctx is
// cancelled. Every iteration renders, whether or not a tick ran.
func (l *Loop) Run(ctx context.Context) Result {
	var (
		latch Latch
		pacer Pacer
		res   Result
	)
	for running := true; running; {
		if ctx.Err() != nil {
			res.Quit = true
			break
		}

		in := l.Input.Poll()
		if in.Quit {
			res.Quit = true
			break
		}
		latch.Set(in.Dir)

		if pacer.Ready(l.Clock.Now(), l.State.Speed()) {
			res.Ticks++
			st := l.State.Advance(latch.Take())
			if st.Ate {
				l.Bus.Emit(Event{Type: EventFoodEaten, Head: l.State.Head(), Score: l.State.Score()})
			}
			if st.Terminated {
				res.Cause = st.Cause
				l.Bus.Emit(Event{Type: EventGameOver, Head: l.State.Head(), Score: l.State.Score(), Cause: st.Cause})
				log.Printf("game over: %v after %d ticks, length %d", st.Cause, res.Ticks, l.State.Len())
				running = false
			}
		}

		l.Renderer.Render(l.State)
	}
	res.Score = l.State.Score()
	return res
}

// ReportScore writes the final score line, followed by how the run ended
// when withCause is set.
func ReportScore(w io.Writer, r Result, withCause bool) error {
	if !withCause {
		_, err := fmt.Fprintf(w, "Game Over! Your score: %d\n", r.Score)
		return err
	}
	ended := r.Cause.String()
	if r.Quit {
		ended = "quit"
	}
	_, err := fmt.Fprintf(w, "Game Over! Your score: %d (%s)\n", r.Score, ended)
	return err
}
