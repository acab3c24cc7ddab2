package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Floats returns the channels scaled to [0,1].
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Background RGB
	Food       RGB
	Snake      RGB
	SnakeHead  RGB
	Dead       RGB
}{
	Background: RGB{R: 0, G: 0, B: 0},
	Food:       RGB{R: 255, G: 0, B: 0},
	Snake:      RGB{R: 0, G: 255, B: 0},
	SnakeHead:  RGB{R: 160, G: 255, B: 120},
	Dead:       RGB{R: 90, G: 90, B: 90},
}
