package game

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidFood is returned by PlaceFood for cells food may not occupy.
var ErrInvalidFood = errors.New("invalid food position")

type Status int

const (
	StatusAlive      Status = iota
	StatusTerminated        // absorbing
)

func (s Status) String() string {
	if s == StatusAlive {
		return "alive"
	}
	return "terminated"
}

// Cause records why a game terminated.
type Cause int

const (
	CauseNone     Cause = iota
	CauseWall           // head left the grid
	CauseSelf           // head ran into the body
	CauseGridFull       // body covers every cell, nowhere left for food
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseGridFull:
		return "grid full"
	}
	return "none"
}

// Step is the outcome of one Advance.
type Step struct {
	Ate        bool
	Terminated bool
	Cause      Cause
}

// GameState owns the snake, its heading, the food, the tick interval and
// the alive flag. It is not safe for concurrent use.
type GameState struct {
	cfg   Config
	snake *Snake
	dir   Direction
	food  Position
	speed time.Duration

	status Status
	cause  Cause

	initialLen int

	spawner *FoodSpawner
}

// NewGameState starts a game with the configured initial snake and a random
// food cell.
func NewGameState(cfg Config, seed uint64) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGameState(cfg, cfg.startBody(), cfg.StartDirection, seed), nil
}

// NewGameStateWithSnake starts a game from an explicit body and heading.
// The body needs at least three segments, all grid aligned and on the
// board, and no other segment may share the head's cell.
func NewGameStateWithSnake(cfg Config, body []Position, dir Direction, seed uint64) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(body) < 3 {
		return nil, fmt.Errorf("%w: snake length %d < 3", ErrInvalidConfig, len(body))
	}
	for _, p := range body[1:] {
		if p == body[0] {
			return nil, fmt.Errorf("%w: head %v overlaps the body", ErrInvalidConfig, p)
		}
	}
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: direction %v", ErrInvalidConfig, dir)
	}
	for _, p := range body {
		if !p.InBounds(cfg.Width, cfg.Height) || !p.Aligned(cfg.CellSize) {
			return nil, fmt.Errorf("%w: segment %v", ErrInvalidConfig, p)
		}
	}
	return newGameState(cfg, body, dir, seed), nil
}

func newGameState(cfg Config, body []Position, dir Direction, seed uint64) *GameState {
	g := &GameState{
		cfg:     cfg,
		snake:   NewSnake(body, cfg.Width, cfg.Height, cfg.CellSize),
		dir:     dir,
		speed:   cfg.InitialSpeed,
		spawner: NewFoodSpawner(cfg, seed),

		initialLen: len(body),
	}
	if !g.respawnFood() {
		g.terminate(CauseGridFull)
	}
	return g
}

// PlaceFood moves the food to p to script meals. p must be a free,
// grid-aligned cell on the board.
func (g *GameState) PlaceFood(p Position) error {
	switch {
	case !p.InBounds(g.cfg.Width, g.cfg.Height) || !p.Aligned(g.cfg.CellSize):
		return fmt.Errorf("%w: %v is not a board cell", ErrInvalidFood, p)
	case g.snake.Occupies(p):
		return fmt.Errorf("%w: %v is on the snake", ErrInvalidFood, p)
	}
	g.food = p
	return nil
}

// Advance runs one tick: direction update, body shift, head move, wall
// check, self check, then food. Collisions end the game; once terminated
// Advance only reports the final cause.
func (g *GameState) Advance(requested Direction) Step {
	if g.status == StatusTerminated {
		return Step{Terminated: true, Cause: g.cause}
	}

	if requested.Valid() && requested != g.dir.Opposite() {
		g.dir = requested
	}

	head := g.snake.Move(g.dir)

	if !head.InBounds(g.cfg.Width, g.cfg.Height) {
		return g.terminate(CauseWall)
	}
	if g.snake.HitsSelf() {
		return g.terminate(CauseSelf)
	}
	if head != g.food {
		return Step{}
	}

	g.snake.Grow()
	if !g.respawnFood() {
		st := g.terminate(CauseGridFull)
		st.Ate = true
		return st
	}
	if g.speed > g.cfg.MinSpeed {
		g.speed = maxDuration(g.speed-g.cfg.SpeedStep, g.cfg.MinSpeed)
	}
	return Step{Ate: true}
}

func (g *GameState) terminate(c Cause) Step {
	g.status = StatusTerminated
	g.cause = c
	return Step{Terminated: true, Cause: c}
}

// respawnFood returns false when the snake covers the whole grid.
func (g *GameState) respawnFood() bool {
	p, ok := g.spawner.Spawn(g.snake)
	if !ok {
		return false
	}
	g.food = p
	return true
}

func (g *GameState) Config() Config { return g.cfg }
func (g *GameState) Direction() Direction { return g.dir }
func (g *GameState) Food() Position { return g.food }
func (g *GameState) Speed() time.Duration { return g.speed }
func (g *GameState) Status() Status { return g.status }
func (g *GameState) Cause() Cause { return g.cause }
func (g *GameState) Alive() bool { return g.status == StatusAlive }
func (g *GameState) Len() int { return g.snake.Len() }
func (g *GameState) Head() Position { return g.snake.Head() }
func (g *GameState) Snake() []Position { return g.snake.Segments() }
func (g *GameState) Segment(i int) Position { return g.snake.At(i) }

// Score is the number of food items eaten.
func (g *GameState) Score() int {
	return g.snake.Len() - g.initialLen
}
