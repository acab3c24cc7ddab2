package game

// Input is one frame's worth of drained input events.
type Input struct {
	Dir  Direction // most recent directional command, DirNone if none
	Quit bool
}

// InputSource drains pending input events each frame.
type InputSource interface {
	Poll() Input
}

// Latch holds the latest direction request until a tick consumes it.
// Newer requests replace older ones; nothing is validated here, the
// reversal rule belongs to GameState.Advance.
type Latch struct {
	dir Direction
}

func (l *Latch) Set(d Direction) {
	if d.Valid() {
		l.dir = d
	}
}

func (l *Latch) Peek() Direction { return l.dir }

// Take returns the pending request and clears it.
func (l *Latch) Take() Direction {
	d := l.dir
	l.dir = DirNone
	return d
}
