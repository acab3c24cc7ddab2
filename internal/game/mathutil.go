package game

import "time"

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// floorDiv performs mathematical floor division for integers.
func floorDiv(a, b int) int {
	q := a / b
	r := a % b
	if (r != 0) && ((r < 0) != (b < 0)) {
		q--
	}
	return q
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}
