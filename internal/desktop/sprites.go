package desktop

import "github.com/rippanjyot11-sudo/GAME-DEVELOPMENT-SNAKE-GAME/internal/game"

// spriteFloats is the sprite vertex layout: x, y, size, r, g, b, a.
const spriteFloats = 7

// spriteBuffer appends one cell sprite for the food and one per on-board
// snake segment, tail first so the head is drawn last. buf is reused.
func spriteBuffer(g *game.GameState, buf []float32) []float32 {
	buf = buf[:0]
	cfg := g.Config()

	buf = appendCell(buf, cfg, g.Food(), game.Palette.Food)

	body, head := game.Palette.Snake, game.Palette.SnakeHead
	if !g.Alive() {
		body, head = game.Palette.Dead, game.Palette.Dead
	}
	for i := g.Len() - 1; i >= 0; i-- {
		p := g.Segment(i)
		if !p.InBounds(cfg.Width, cfg.Height) {
			continue
		}
		c := body
		if i == 0 {
			c = head
		}
		buf = appendCell(buf, cfg, p, c)
	}
	return buf
}

func appendCell(buf []float32, cfg game.Config, p game.Position, c game.RGB) []float32 {
	half := float32(cfg.CellSize) / 2
	r, g, b := c.Floats()
	return append(buf,
		float32(p.X)+half, float32(p.Y)+half, float32(cfg.CellSize),
		r, g, b, 1,
	)
}
