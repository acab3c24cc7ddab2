package game

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// Position is a grid-aligned pixel coordinate.
type Position struct {
	X, Y int
}

func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// InBounds reports whether p lies within [0,w) x [0,h).
func (p Position) InBounds(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Aligned reports whether both coordinates are multiples of cell.
func (p Position) Aligned(cell int) bool {
	return p.X%cell == 0 && p.Y%cell == 0
}

// Cell converts p to column/row indices.
func (p Position) Cell(cell int) (col, row int) {
	return floorDiv(p.X, cell), floorDiv(p.Y, cell)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a cardinal heading. DirNone means "no request".
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Opposite returns the 180 degree reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

// Delta returns the pixel offset of one step of the given cell size.
func (d Direction) Delta(cell int) (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -cell
	case DirDown:
		return 0, cell
	case DirLeft:
		return -cell, 0
	case DirRight:
		return cell, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Snake is the player body, head at index 0.
//
// cells mirrors body as cell index -> number of segments on that cell, so
// occupancy and free-cell counts do not need a scan. A count above one on
// the head cell is a self collision; right after growth the tail cell also
// holds two segments until the next move.
type Snake struct {
	body  []Position
	cells *intmap.Map[int, int]

	width, height int
	cellSize      int
}

// NewSnake copies body into a new snake on a width x height board.
func NewSnake(body []Position, width, height, cellSize int) *Snake {
	s := &Snake{
		body:     append(make([]Position, 0, len(body)+8), body...),
		cells:    intmap.New[int, int](len(body) * 2),
		width:    width,
		height:   height,
		cellSize: cellSize,
	}
	for _, p := range s.body {
		s.mark(p, 1)
	}
	return s
}

func (s *Snake) Len() int { return len(s.body) }

func (s *Snake) Head() Position { return s.body[0] }

func (s *Snake) Tail() Position { return s.body[len(s.body)-1] }

// At returns segment i.
func (s *Snake) At(i int) Position { return s.body[i] }

// Segments returns a copy of the body.
func (s *Snake) Segments() []Position {
	return append([]Position(nil), s.body...)
}

// Move shifts every segment onto its predecessor, tail first, then steps the
// head one cell in d. Returns the new head.
func (s *Snake) Move(d Direction) Position {
	s.mark(s.Tail(), -1)
	for i := len(s.body) - 1; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	dx, dy := d.Delta(s.cellSize)
	s.body[0] = s.body[0].Add(dx, dy)
	s.mark(s.body[0], 1)
	return s.body[0]
}

// Grow appends a segment on top of the current tail. The duplicate unfolds
// into a trailing segment on the next Move.
func (s *Snake) Grow() {
	t := s.Tail()
	s.body = append(s.body, t)
	s.mark(t, 1)
}

// HitsSelf reports whether the head shares its cell with another segment.
func (s *Snake) HitsSelf() bool {
	n, _ := s.cells.Get(s.key(s.Head()))
	return n > 1
}

// Occupies reports whether any segment lies on p.
func (s *Snake) Occupies(p Position) bool {
	k, ok := s.cellKey(p)
	if !ok {
		return false
	}
	n, _ := s.cells.Get(k)
	return n > 0
}

// OccupiedCells returns how many distinct in-bounds cells the body covers.
func (s *Snake) OccupiedCells() int { return s.cells.Len() }

func (s *Snake) key(p Position) int {
	k, ok := s.cellKey(p)
	if !ok {
		return -1
	}
	return k
}

func (s *Snake) cellKey(p Position) (int, bool) {
	if !p.InBounds(s.width, s.height) {
		return 0, false
	}
	col, row := p.Cell(s.cellSize)
	return row*(s.width/s.cellSize) + col, true
}

// mark adjusts the segment count of p's cell. Off-board positions (a head
// that just left the grid) are not indexed.
func (s *Snake) mark(p Position, delta int) {
	k, ok := s.cellKey(p)
	if !ok {
		return
	}
	n, _ := s.cells.Get(k)
	n += delta
	if n <= 0 {
		s.cells.Del(k)
		return
	}
	s.cells.Put(k, n)
}
