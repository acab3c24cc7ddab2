package audio

import (
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	Format       = oto.FormatFloat32LE

	// closeGrace bounds how long Close waits for cues still playing.
	closeGrace = time.Second
)

// readyTimeout bounds how long a cue waits for the device to come up.
var readyTimeout = 500 * time.Millisecond

// Audio plays pre-rendered sound cues through an oto context. Cues are
// fire-and-forget: each runs on its own player goroutine.
type Audio struct {
	ctx   *oto.Context
	ready chan struct{}

	eat   []byte
	over  []byte
	start []byte

	volume  float64
	playing sync.WaitGroup
	closed  atomic.Bool
}

// New opens the audio device and renders the built-in cues.
func New() (*Audio, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, Format)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	return &Audio{
		ctx:    ctx,
		ready:  ready,
		eat:    genEat(),
		over:   genGameOver(),
		start:  genStart(),
		volume: sfxVolume,
	}, nil
}

// SetEatSound replaces the food cue with float32 stereo PCM at SampleRate.
func (a *Audio) SetEatSound(pcm []byte) {
	if len(pcm) > 0 {
		a.eat = pcm
	}
}

func (a *Audio) FoodEaten() { a.play(a.eat) }
func (a *Audio) GameOver() { a.play(a.over) }
func (a *Audio) Start() { a.play(a.start) }

func (a *Audio) play(samples []byte) {
	if a.closed.Load() || len(samples) == 0 || a.volume <= 0 {
		return
	}
	vol := a.volume
	a.playing.Add(1)
	go func() {
		defer a.playing.Done()
		if !a.waitReady() {
			log.Printf("audio: device not ready after %v, dropping cue", readyTimeout)
			return
		}
		player := a.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(vol)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			log.Printf("audio: close player: %v", err)
		}
	}()
}

// waitReady blocks until the oto context is ready, for at most readyTimeout.
func (a *Audio) waitReady() bool {
	timer := time.NewTimer(readyTimeout)
	defer timer.Stop()
	select {
	case <-a.ready:
		return true
	case <-timer.C:
		return false
	}
}

// Close stops new cues, lets playing ones finish for up to a second and
// suspends the device.
func (a *Audio) Close() error {
	if !a.closed.CompareAndSwap(false, true) {
		return nil
	}
	done := make(chan struct{})
	go func() {
		a.playing.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(closeGrace):
	}
	return a.ctx.Suspend()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
