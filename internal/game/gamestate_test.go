package game

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// dumpBoard renders the board as ASCII for failure logs: H head, s body,
// * food, . empty.
func dumpBoard(g *GameState) string {
	cfg := g.Config()
	grid := make([][]byte, cfg.Rows())
	for r := range grid {
		grid[r] = []byte(strings.Repeat(".", cfg.Cols()))
	}
	put := func(p Position, b byte) {
		if !p.InBounds(cfg.Width, cfg.Height) {
			return
		}
		c, r := p.Cell(cfg.CellSize)
		grid[r][c] = b
	}
	put(g.Food(), '*')
	for i, p := range g.Snake() {
		if i == 0 {
			put(p, 'H')
		} else {
			put(p, 's')
		}
	}
	var sb strings.Builder
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// line lays out n segments starting at head and trailing away from dir.
func line(head Position, dir Direction, n, cell int) []Position {
	dx, dy := dir.Opposite().Delta(cell)
	body := make([]Position, n)
	for i := range body {
		body[i] = head
		head = head.Add(dx, dy)
	}
	return body
}

func newState(t *testing.T, cfg Config, body []Position, dir Direction) *GameState {
	t.Helper()
	g, err := NewGameStateWithSnake(cfg, body, dir, 42)
	require.NoError(t, err)
	return g
}

// smallConfig is a w x h cell board with the snake starting along the top row.
func smallConfig(cols, rows int) Config {
	cfg := DefaultConfig()
	cfg.Width = cols * cfg.CellSize
	cfg.Height = rows * cfg.CellSize
	cfg.Start = Position{X: 2 * cfg.CellSize, Y: 0}
	cfg.StartDirection = DirRight
	return cfg
}

func TestNewGameState_Initial(t *testing.T) {
	g, err := NewGameState(DefaultConfig(), 1)
	require.NoError(t, err)

	assert.Equal(t, []Position{{300, 300}, {280, 300}, {260, 300}}, g.Snake())
	assert.Equal(t, DirRight, g.Direction())
	assert.Equal(t, InitialSpeed, g.Speed())
	assert.True(t, g.Alive())
	assert.Equal(t, 0, g.Score())
	assert.True(t, g.Food().InBounds(Width, Height))
	assert.True(t, g.Food().Aligned(CellSize))
	assert.False(t, g.snake.Occupies(g.Food()))
}

func TestNewGameState_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Start = Position{X: 10, Y: 300}
	_, err := NewGameState(cfg, 1)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewGameStateWithSnake(DefaultConfig(), []Position{{601, 0}}, DirRight, 1)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewGameStateWithSnake(DefaultConfig(), line(Position{300, 300}, DirUp, 3, CellSize), DirNone, 1)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewGameStateWithSnake(DefaultConfig(), []Position{{300, 300}}, DirRight, 1)
	assert.ErrorIs(t, err, ErrInvalidConfig, "too short")

	_, err = NewGameStateWithSnake(DefaultConfig(), line(Position{300, 300}, DirRight, 2, CellSize), DirRight, 1)
	assert.ErrorIs(t, err, ErrInvalidConfig, "too short")

	_, err = NewGameStateWithSnake(DefaultConfig(), []Position{{300, 300}, {300, 300}, {280, 300}}, DirRight, 1)
	assert.ErrorIs(t, err, ErrInvalidConfig, "head overlaps body")
}

func TestPlaceFood(t *testing.T) {
	g := newState(t, DefaultConfig(), line(Position{300, 300}, DirRight, 3, CellSize), DirRight)
	before := g.Food()

	assert.ErrorIs(t, g.PlaceFood(Position{280, 300}), ErrInvalidFood, "on the body")
	assert.ErrorIs(t, g.PlaceFood(Position{300, 300}), ErrInvalidFood, "on the head")
	assert.ErrorIs(t, g.PlaceFood(Position{7, 9999}), ErrInvalidFood, "off the board")
	assert.ErrorIs(t, g.PlaceFood(Position{7, 40}), ErrInvalidFood, "misaligned")
	assert.ErrorIs(t, g.PlaceFood(Position{-20, 40}), ErrInvalidFood, "negative")
	assert.Equal(t, before, g.Food(), "rejected placements leave the food alone")

	require.NoError(t, g.PlaceFood(Position{0, 580}))
	assert.Equal(t, Position{0, 580}, g.Food())
}

func TestAdvance_ScenarioOneStep(t *testing.T) {
	g, err := NewGameState(DefaultConfig(), 7)
	require.NoError(t, err)
	require.NoError(t, g.PlaceFood(Position{X: 0, Y: 0}))

	st := g.Advance(DirNone)

	assert.Equal(t, Step{}, st)
	assert.Equal(t, []Position{{320, 300}, {300, 300}, {280, 300}}, g.Snake())
	assert.True(t, g.Alive())
	assert.Equal(t, InitialSpeed, g.Speed())
}

func TestAdvance_DirectionChange(t *testing.T) {
	cfg := DefaultConfig()
	g := newState(t, cfg, line(Position{300, 300}, DirRight, 3, CellSize), DirRight)
	require.NoError(t, g.PlaceFood(Position{X: 0, Y: 0}))

	g.Advance(DirUp)

	assert.Equal(t, DirUp, g.Direction())
	assert.Equal(t, []Position{{300, 280}, {300, 300}, {280, 300}}, g.Snake())
}

func TestAdvance_NoReversal(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		t.Run(d.String(), func(t *testing.T) {
			head := Position{300, 300}
			g := newState(t, DefaultConfig(), line(head, d, 3, CellSize), d)
			require.NoError(t, g.PlaceFood(Position{X: 0, Y: 0}))

			st := g.Advance(d.Opposite())

			assert.False(t, st.Terminated, "reversal must not fold into the neck\n%s", dumpBoard(g))
			assert.Equal(t, d, g.Direction())
			dx, dy := d.Delta(CellSize)
			assert.Equal(t, head.Add(dx, dy), g.Head())
		})
	}
}

func TestAdvance_WallCollision(t *testing.T) {
	last := Width - CellSize
	tests := []struct {
		name string
		head Position
		dir  Direction
	}{
		{"right", Position{last, 300}, DirRight},
		{"left", Position{0, 300}, DirLeft},
		{"up", Position{300, 0}, DirUp},
		{"down", Position{300, last}, DirDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newState(t, DefaultConfig(), line(tt.head, tt.dir, 3, CellSize), tt.dir)
			require.NoError(t, g.PlaceFood(Position{X: 300, Y: 300}))

			st := g.Advance(DirNone)

			assert.Equal(t, Step{Terminated: true, Cause: CauseWall}, st)
			assert.False(t, g.Alive())
			assert.Equal(t, StatusTerminated, g.Status())
			assert.Equal(t, CauseWall, g.Cause())
		})
	}
}

func TestAdvance_SelfCollision(t *testing.T) {
	// Head at (100,100) heading left; turning down runs into (100,120),
	// which the body still covers after the shift.
	body := []Position{{100, 100}, {120, 100}, {120, 120}, {100, 120}, {80, 120}}
	g := newState(t, DefaultConfig(), body, DirLeft)
	require.NoError(t, g.PlaceFood(Position{X: 0, Y: 0}))

	st := g.Advance(DirDown)

	assert.Equal(t, Step{Terminated: true, Cause: CauseSelf}, st, "\n%s", dumpBoard(g))
	assert.False(t, g.Alive())
}

func TestAdvance_FollowingTailIsSafe(t *testing.T) {
	// A 2x2 loop: the head moves into the cell the tail just left.
	body := []Position{{100, 100}, {120, 100}, {120, 120}, {100, 120}}
	g := newState(t, DefaultConfig(), body, DirLeft)
	require.NoError(t, g.PlaceFood(Position{X: 0, Y: 0}))

	st := g.Advance(DirDown)

	assert.False(t, st.Terminated, "\n%s", dumpBoard(g))
	assert.Equal(t, Position{100, 120}, g.Head())
}

func TestAdvance_Growth(t *testing.T) {
	g := newState(t, DefaultConfig(), line(Position{300, 300}, DirRight, 3, CellSize), DirRight)
	require.NoError(t, g.PlaceFood(Position{X: 320, Y: 300}))

	st := g.Advance(DirNone)

	require.Equal(t, Step{Ate: true}, st)
	assert.Equal(t, []Position{{320, 300}, {300, 300}, {280, 300}, {280, 300}}, g.Snake())
	assert.Equal(t, 1, g.Score())
	assert.Equal(t, InitialSpeed-SpeedStep, g.Speed())
	assert.False(t, g.snake.Occupies(g.Food()), "food respawned on the snake\n%s", dumpBoard(g))

	// The duplicate tail unfolds on the next move.
	require.NoError(t, g.PlaceFood(Position{X: 0, Y: 0}))
	g.Advance(DirNone)
	assert.Equal(t, []Position{{340, 300}, {320, 300}, {300, 300}, {280, 300}}, g.Snake())
}

func TestAdvance_SpeedFloor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialSpeed = 52 * time.Millisecond
	cfg.MinSpeed = 40 * time.Millisecond
	cfg.SpeedStep = 5 * time.Millisecond
	g := newState(t, cfg, line(Position{100, 300}, DirRight, 3, CellSize), DirRight)

	want := []time.Duration{47, 42, 40, 40, 40}
	for i, w := range want {
		dx, _ := DirRight.Delta(CellSize)
		require.NoError(t, g.PlaceFood(g.Head().Add(dx, 0)))
		st := g.Advance(DirNone)
		require.True(t, st.Ate, "meal %d", i)
		assert.Equal(t, w*time.Millisecond, g.Speed(), "meal %d", i)
	}
}

func TestAdvance_TerminatedIsAbsorbing(t *testing.T) {
	g := newState(t, DefaultConfig(), line(Position{0, 300}, DirLeft, 3, CellSize), DirLeft)
	require.NoError(t, g.PlaceFood(Position{X: 300, Y: 300}))
	require.True(t, g.Advance(DirNone).Terminated)

	before := g.Snake()
	st := g.Advance(DirUp)

	assert.Equal(t, Step{Terminated: true, Cause: CauseWall}, st)
	assert.Equal(t, before, g.Snake())
	assert.Equal(t, DirLeft, g.Direction())
}

func TestAdvance_GridFull(t *testing.T) {
	// 3x2 board, five distinct cells covered (the tail is doubled after a
	// meal) and the only free cell holds the food.
	cfg := smallConfig(3, 2)
	body := []Position{{20, 20}, {0, 20}, {0, 0}, {20, 0}, {40, 0}, {40, 0}}
	g := newState(t, cfg, body, DirRight)
	require.Equal(t, Position{40, 20}, g.Food())

	st := g.Advance(DirNone)

	assert.Equal(t, Step{Ate: true, Terminated: true, Cause: CauseGridFull}, st)
	assert.Equal(t, 7, g.Len())
	assert.False(t, g.Alive())
}

func TestNewGameState_NoRoomForFood(t *testing.T) {
	cfg := smallConfig(3, 1)
	g := newState(t, cfg, []Position{{40, 0}, {20, 0}, {0, 0}}, DirRight)

	assert.Equal(t, StatusTerminated, g.Status())
	assert.Equal(t, CauseGridFull, g.Cause())
}

// TestAdvance_Invariants drives random games and checks the board
// invariants after every tick.
func TestAdvance_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	dirs := []Direction{DirNone, DirUp, DirDown, DirLeft, DirRight}

	for game := 0; game < 50; game++ {
		g, err := NewGameState(DefaultConfig(), uint64(game))
		require.NoError(t, err)
		prevSpeed := g.Speed()

		for tick := 0; tick < 2000 && g.Alive(); tick++ {
			// Bias towards food so games grow.
			req := dirs[rng.Intn(len(dirs))]
			if rng.Intn(3) > 0 {
				req = towards(g.Head(), g.Food())
			}
			prevLen := g.Len()
			st := g.Advance(req)

			assert.LessOrEqual(t, g.Speed(), prevSpeed)
			assert.GreaterOrEqual(t, g.Speed(), MinSpeed)
			prevSpeed = g.Speed()

			if st.Terminated {
				continue
			}
			for _, p := range g.Snake() {
				require.True(t, p.InBounds(Width, Height), "segment %v out of bounds\n%s", p, dumpBoard(g))
				require.True(t, p.Aligned(CellSize), "segment %v misaligned", p)
			}
			if st.Ate {
				assert.Equal(t, prevLen+1, g.Len())
				require.False(t, g.snake.Occupies(g.Food()), "food on snake\n%s", dumpBoard(g))
			} else {
				assert.Equal(t, prevLen, g.Len())
			}
		}
	}
}

func towards(from, to Position) Direction {
	switch {
	case to.X > from.X:
		return DirRight
	case to.X < from.X:
		return DirLeft
	case to.Y > from.Y:
		return DirDown
	case to.Y < from.Y:
		return DirUp
	}
	return DirNone
}
