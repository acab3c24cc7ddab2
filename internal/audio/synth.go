package audio

import (
	"encoding/binary"
	"math"
)

var sfxVolume = 0.58

// putFrame writes one float32 LE stereo frame at index i.
func putFrame(buf []byte, i int, left, right float64) {
	binary.LittleEndian.PutUint32(buf[i*8:], math.Float32bits(float32(left)))
	binary.LittleEndian.PutUint32(buf[i*8+4:], math.Float32bits(float32(right)))
}

// softSat rounds off peaks: cubic below unity, hyperbolic above, never
// reaching ±1.
func softSat(x float64) float64 {
	switch {
	case x > 1:
		return 1 - 0.5/x
	case x < -1:
		return -1 - 0.5/x
	}
	return x - x*x*x/3
}

// envelope is an ADSR shape over a cue's normalized progress. Attack,
// decay and release are fractions of the cue length.
type envelope struct {
	attack, decay, sustain, release float64
}

func (e envelope) at(p float64) float64 {
	switch {
	case p < e.attack:
		return p / e.attack
	case p < e.attack+e.decay:
		return 1 - (p-e.attack)/e.decay*(1-e.sustain)
	case p < 1-e.release:
		return e.sustain
	}
	return e.sustain * (1 - p) / e.release
}

// fm is a two-operator FM voice: a carrier at freq phase-modulated by a
// sine at freq*ratio with the given depth.
func fm(t, freq, ratio, depth float64) float64 {
	mod := math.Sin(2 * math.Pi * freq * ratio * t)
	return math.Sin(2*math.Pi*freq*t + depth*mod)
}

// frameBuf allocates n float32 stereo frames.
func frameBuf(n int) []byte { return make([]byte, n*8) }

// render synthesises dur seconds of mono audio from voice, called with the
// time in seconds and the normalized progress, into a stereo buffer.
func render(dur float64, voice func(t, p float64) float64) []byte {
	n := int(dur * SampleRate)
	buf := frameBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		v := softSat(voice(t, float64(i)/float64(n)))
		putFrame(buf, i, v, v)
	}
	return buf
}

var (
	eatEnv      = envelope{attack: 0.01, decay: 0.5, release: 0.1}
	startEnv    = envelope{attack: 0.004, decay: 0.55, release: 0.1}
	gameOverEnv = envelope{attack: 0.008, decay: 0.25, sustain: 0.3, release: 0.45}
)

// genEat: snappy FM pop, ascending pitch with bell attack.
func genEat() []byte {
	return render(0.09, func(t, p float64) float64 {
		env := eatEnv.at(p)
		freq := 480 + 720*p
		s := fm(t, freq, 2.0, 3.5*env) * env * 0.5
		return s + math.Sin(2*math.Pi*freq*3*t)*env*0.06
	})
}

// genStart: click plus a short falling tone.
func genStart() []byte {
	return render(0.065, func(t, p float64) float64 {
		env := startEnv.at(p)
		return fm(t, 1400-700*p, 1.0, 0.6) * env * 0.38
	})
}

// gameOverNotes is a descending E-C-A minor arpeggio, each note ringing
// into the next.
var gameOverNotes = []struct{ freq, onset float64 }{
	{329.63, 0.00},
	{261.63, 0.14},
	{220.00, 0.28},
}

// genGameOver mixes the arpeggio over 0.75s with a slight pitch drop and a
// sub octave.
func genGameOver() []byte {
	const dur = 0.75
	return render(dur, func(t, _ float64) float64 {
		mix := 0.0
		for _, note := range gameOverNotes {
			if t < note.onset {
				continue
			}
			np := (t - note.onset) / (dur - note.onset)
			env := gameOverEnv.at(np)
			freq := note.freq * (1 - np*0.025)
			mix += fm(t, freq, 2.0, 2.0*env) * env * 0.32
			mix += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
		}
		return mix
	})
}
