package term

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rippanjyot11-sudo/GAME-DEVELOPMENT-SNAKE-GAME/internal/game"
)

// eventBuffer is the pump channel capacity.
const eventBuffer = 100

// frameInterval bounds how long Poll waits for input, which paces the loop
// at roughly 60 frames per second.
const frameInterval = 16 * time.Millisecond

// translate maps a terminal event to a direction or a quit request.
func translate(ev tcell.Event) (game.Direction, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return game.DirNone, false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.DirNone, true
	case tcell.KeyUp:
		return game.DirUp, false
	case tcell.KeyDown:
		return game.DirDown, false
	case tcell.KeyLeft:
		return game.DirLeft, false
	case tcell.KeyRight:
		return game.DirRight, false
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q', 'Q':
			return game.DirNone, true
		case 'w', 'W':
			return game.DirUp, false
		case 's', 'S':
			return game.DirDown, false
		case 'a', 'A':
			return game.DirLeft, false
		case 'd', 'D':
			return game.DirRight, false
		}
	}
	return game.DirNone, false
}

// Input pumps screen events through a channel. Poll waits up to one frame
// for the first event, then drains whatever else is queued. Close stops the
// pump even when nobody is reading.
type Input struct {
	screen tcell.Screen
	events chan tcell.Event
	frame  time.Duration

	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

func NewInput(screen tcell.Screen) *Input {
	return newInput(screen, eventBuffer)
}

func newInput(screen tcell.Screen, buffer int) *Input {
	in := &Input{
		screen:  screen,
		events:  make(chan tcell.Event, buffer),
		frame:   frameInterval,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go in.pump()
	return in
}

func (in *Input) pump() {
	defer close(in.stopped)
	defer close(in.events)
	for {
		ev := in.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case in.events <- ev:
		case <-in.done:
			return
		}
	}
}

// Close releases a pump blocked on a full channel. A pump blocked in
// PollEvent exits once the screen is finalized.
func (in *Input) Close() {
	in.closeOnce.Do(func() { close(in.done) })
}

// waitKey blocks until a key is pressed, d elapses or ctx is done.
func (in *Input) waitKey(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				return
			}
			if _, isKey := ev.(*tcell.EventKey); isKey {
				return
			}
		case <-timer.C:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (in *Input) Poll() game.Input {
	var out game.Input

	timer := time.NewTimer(in.frame)
	defer timer.Stop()
	select {
	case ev, ok := <-in.events:
		if !ok {
			return game.Input{Quit: true}
		}
		in.apply(ev, &out)
	case <-timer.C:
		return out
	}

	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				out.Quit = true
				return out
			}
			in.apply(ev, &out)
		default:
			return out
		}
	}
}

func (in *Input) apply(ev tcell.Event, out *game.Input) {
	if _, ok := ev.(*tcell.EventResize); ok {
		in.screen.Sync()
		return
	}
	dir, quit := translate(ev)
	if quit {
		out.Quit = true
	}
	if dir != game.DirNone {
		out.Dir = dir
	}
}
