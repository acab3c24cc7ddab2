package desktop

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/rippanjyot11-sudo/GAME-DEVELOPMENT-SNAKE-GAME/internal/game"
)

const (
	maxParticles  = 512
	burstSize     = 28
	particleDrag  = 3.5 // velocity decay per second
	particleStart = 5.0 // sprite size in board pixels at birth
	particleEnd   = 1.5
)

type particle struct {
	x, y    float64
	vx, vy  float64
	life    float64
	maxLife float64
	col     game.RGB
}

// particles is a fixed-capacity pool of short-lived debris sprites.
type particles struct {
	max    int
	p      []particle
	ovrIdx int // circular overwrite index when full
	rng    *rand.Rand
}

func newParticles(capacity int, seed uint64) *particles {
	if capacity <= 0 {
		capacity = maxParticles
	}
	return &particles{
		max: capacity,
		p:   make([]particle, 0, capacity),
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (ps *particles) add(p particle) {
	if len(ps.p) < ps.max {
		ps.p = append(ps.p, p)
		return
	}
	if ps.ovrIdx >= ps.max {
		ps.ovrIdx = 0
	}
	ps.p[ps.ovrIdx] = p
	ps.ovrIdx++
}

func (ps *particles) rangeF(lo, hi float64) float64 {
	return lo + ps.rng.Float64()*(hi-lo)
}

// burst scatters debris in col from (x, y) in board pixels.
func (ps *particles) burst(x, y float64, col game.RGB) {
	for i := 0; i < burstSize; i++ {
		ang := ps.rangeF(0, 2*math.Pi)
		spd := ps.rangeF(40, 160)
		ps.add(particle{
			x: x + ps.rangeF(-3, 3), y: y + ps.rangeF(-3, 3),
			vx: math.Cos(ang) * spd, vy: math.Sin(ang) * spd,
			maxLife: ps.rangeF(0.25, 0.6),
			col:     col,
		})
	}
}

func (ps *particles) update(dt float64) {
	drag := math.Exp(-particleDrag * dt)
	live := ps.p[:0]
	for _, p := range ps.p {
		p.life += dt
		if p.life >= p.maxLife {
			continue
		}
		p.x += p.vx * dt
		p.y += p.vy * dt
		p.vx *= drag
		p.vy *= drag
		live = append(live, p)
	}
	ps.p = live
	if ps.ovrIdx > len(ps.p) {
		ps.ovrIdx = 0
	}
}

// appendSprites appends one fading sprite per live particle.
func (ps *particles) appendSprites(buf []float32) []float32 {
	for _, p := range ps.p {
		t := p.life / p.maxLife
		r, g, b := p.col.Floats()
		size := particleStart + (particleEnd-particleStart)*t
		buf = append(buf,
			float32(math.Round(p.x)), float32(math.Round(p.y)), float32(size),
			r, g, b, float32(1-t),
		)
	}
	return buf
}
