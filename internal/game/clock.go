package game

import "time"

// Clock supplies monotonic timestamps measured from an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// WallClock measures time since its creation.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Now() time.Duration { return time.Since(c.start) }

// Pacer gates ticks: a tick is due once strictly more than the current
// interval has elapsed since the last accepted one.
type Pacer struct {
	last time.Duration
}

// Ready reports whether a tick is due at now and, if so, records it.
func (p *Pacer) Ready(now, interval time.Duration) bool {
	if now-p.last <= interval {
		return false
	}
	p.last = now
	return true
}
