package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rippanjyot11-sudo/GAME-DEVELOPMENT-SNAKE-GAME/internal/audio"
	"github.com/rippanjyot11-sudo/GAME-DEVELOPMENT-SNAKE-GAME/internal/desktop"
	"github.com/rippanjyot11-sudo/GAME-DEVELOPMENT-SNAKE-GAME/internal/game"
	"github.com/rippanjyot11-sudo/GAME-DEVELOPMENT-SNAKE-GAME/internal/term"
)

// frontendFunc plays one game to completion on some output device.
type frontendFunc func(ctx context.Context, state *game.GameState, cue game.AudioCue) (game.Result, error)

var frontends = map[string]frontendFunc{
	"desktop": desktop.Run,
	"term":    term.Run,
}

type options struct {
	frontend string
	mute     bool
	debug    bool
	seed     uint64
	eatSound string
}

func main() {
	var opts options
	flag.StringVar(&opts.frontend, "frontend", "desktop", "frontend: desktop or term")
	flag.BoolVar(&opts.mute, "mute", false, "disable sound")
	flag.BoolVar(&opts.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	flag.Uint64Var(&opts.seed, "seed", 0, "food RNG seed (0: $SNAKE_SEED or the clock)")
	flag.StringVar(&opts.eatSound, "eat-sound", "", "WAV file played when food is eaten")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, opts, os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, stdout io.Writer) error {
	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	frontend, ok := frontends[opts.frontend]
	if !ok {
		return fmt.Errorf("unknown frontend %q", opts.frontend)
	}

	seed := resolveSeed(opts.seed, os.Getenv("SNAKE_SEED"), time.Now())
	state, err := game.NewGameState(game.DefaultConfig(), seed)
	if err != nil {
		return err
	}

	cue, closeAudio, err := openAudio(opts)
	if err != nil {
		return err
	}
	defer closeAudio()

	log.Printf("starting %s frontend, seed %d", opts.frontend, seed)
	res, err := frontend(ctx, state, cue)
	if err != nil {
		return err
	}
	log.Printf("finished: score %d, cause %v, quit %v, %d ticks", res.Score, res.Cause, res.Quit, res.Ticks)

	return game.ReportScore(stdout, res, opts.debug)
}

// resolveSeed prefers the flag, then SNAKE_SEED, then the clock.
func resolveSeed(flagSeed uint64, env string, now time.Time) uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if env != "" {
		if v, err := strconv.ParseUint(env, 10, 64); err == nil {
			return v
		}
		log.Printf("ignoring SNAKE_SEED=%q: not an unsigned integer", env)
	}
	return uint64(now.UnixNano())
}

// openAudio returns the cue sink for the run and its cleanup. A missing
// audio device degrades to silence; an unreadable -eat-sound file is an
// error.
func openAudio(opts options) (game.AudioCue, func(), error) {
	nop := func() {}

	var eat []byte
	if opts.eatSound != "" {
		pcm, err := audio.LoadWAV(opts.eatSound)
		if err != nil {
			return nil, nop, fmt.Errorf("eat sound: %w", err)
		}
		eat = pcm
	}
	if opts.mute {
		return game.NopAudio{}, nop, nil
	}

	a, err := audio.New()
	if err != nil {
		log.Printf("audio init failed (continuing without sound): %v", err)
		return game.NopAudio{}, nop, nil
	}
	a.SetEatSound(eat)
	a.Start()
	return a, func() {
		if err := a.Close(); err != nil {
			log.Printf("audio close: %v", err)
		}
	}, nil
}
