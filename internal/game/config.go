package game

import (
	"errors"
	"fmt"
	"time"
)

// Grid dimensions (in pixels). The board is Width/CellSize columns by
// Height/CellSize rows.
const (
	Width    = 600
	Height   = 600
	CellSize = 20
)

// Window defaults.
const (
	WindowTitle = "Snake Game"
)

// Tick interval. Each food item shortens the interval by SpeedStep until
// MinSpeed is reached.
const (
	InitialSpeed = 150 * time.Millisecond
	MinSpeed     = 40 * time.Millisecond
	SpeedStep    = 5 * time.Millisecond
)

// Snake start.
const (
	InitialLength  = 3
	StartX         = 300
	StartY         = 300
	StartDirection = DirRight
)

// Food spawning.
const (
	// SpawnAttemptsPerCell bounds rejection sampling at this many draws per
	// board cell before the spawner falls back to enumerating free cells.
	SpawnAttemptsPerCell = 4
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config bundles the fixed game constants. The binary always runs with
// DefaultConfig; other values exist for tests and scenarios.
type Config struct {
	Width, Height int
	CellSize      int

	InitialSpeed time.Duration
	MinSpeed     time.Duration
	SpeedStep    time.Duration

	InitialLength  int
	Start          Position
	StartDirection Direction
}

func DefaultConfig() Config {
	return Config{
		Width:          Width,
		Height:         Height,
		CellSize:       CellSize,
		InitialSpeed:   InitialSpeed,
		MinSpeed:       MinSpeed,
		SpeedStep:      SpeedStep,
		InitialLength:  InitialLength,
		Start:          Position{X: StartX, Y: StartY},
		StartDirection: StartDirection,
	}
}

// Cols returns the number of grid columns.
func (c Config) Cols() int { return c.Width / c.CellSize }

// Rows returns the number of grid rows.
func (c Config) Rows() int { return c.Height / c.CellSize }

// Cells returns the total number of grid cells.
func (c Config) Cells() int { return c.Cols() * c.Rows() }

// MaxSpawnAttempts is the rejection-sampling cap for one food respawn.
func (c Config) MaxSpawnAttempts() int { return SpawnAttemptsPerCell * c.Cells() }

// Validate reports the first problem with c, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Width%c.CellSize != 0 || c.Height%c.CellSize != 0:
		return fmt.Errorf("%w: grid %dx%d not a multiple of cell size %d", ErrInvalidConfig, c.Width, c.Height, c.CellSize)
	case c.InitialLength < 3:
		return fmt.Errorf("%w: initial length %d < 3", ErrInvalidConfig, c.InitialLength)
	case c.InitialSpeed <= 0 || c.MinSpeed <= 0 || c.SpeedStep < 0:
		return fmt.Errorf("%w: speed %v/%v/%v", ErrInvalidConfig, c.InitialSpeed, c.MinSpeed, c.SpeedStep)
	case c.MinSpeed > c.InitialSpeed:
		return fmt.Errorf("%w: min speed %v above initial %v", ErrInvalidConfig, c.MinSpeed, c.InitialSpeed)
	case !c.StartDirection.Valid():
		return fmt.Errorf("%w: start direction %v", ErrInvalidConfig, c.StartDirection)
	case !c.Start.Aligned(c.CellSize):
		return fmt.Errorf("%w: start %v not grid aligned", ErrInvalidConfig, c.Start)
	}
	for _, p := range c.startBody() {
		if !p.InBounds(c.Width, c.Height) {
			return fmt.Errorf("%w: start body leaves the grid at %v", ErrInvalidConfig, p)
		}
	}
	return nil
}

// startBody lays the initial snake out behind Start, opposite to the start
// direction: (300,300),(280,300),(260,300) for the defaults.
func (c Config) startBody() []Position {
	dx, dy := c.StartDirection.Opposite().Delta(c.CellSize)
	body := make([]Position, c.InitialLength)
	p := c.Start
	for i := range body {
		body[i] = p
		p = p.Add(dx, dy)
	}
	return body
}
