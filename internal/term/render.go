package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/rippanjyot11-sudo/GAME-DEVELOPMENT-SNAKE-GAME/internal/game"
)

// cellWidth is the number of terminal columns per board cell; two columns
// keep cells roughly square in most fonts.
const cellWidth = 2

func color(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Renderer draws the board with one coloured block per cell and a status
// line underneath.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func (r *Renderer) Render(g *game.GameState) {
	cfg := g.Config()
	r.screen.Clear()

	bg := tcell.StyleDefault.Background(color(game.Palette.Background))
	for row := 0; row < cfg.Rows(); row++ {
		for col := 0; col < cfg.Cols(); col++ {
			r.fill(col, row, bg)
		}
	}

	r.paint(cfg, g.Food(), game.Palette.Food)
	body, head := game.Palette.Snake, game.Palette.SnakeHead
	if !g.Alive() {
		body, head = game.Palette.Dead, game.Palette.Dead
	}
	for i := g.Len() - 1; i > 0; i-- {
		r.paint(cfg, g.Segment(i), body)
	}
	r.paint(cfg, g.Head(), head)

	status := fmt.Sprintf("Score: %d", g.Score())
	if !g.Alive() {
		status = fmt.Sprintf("Game Over! Your score: %d (%v)", g.Score(), g.Cause())
	}
	r.text(0, cfg.Rows(), status, tcell.StyleDefault)

	r.screen.Show()
}

func (r *Renderer) paint(cfg game.Config, p game.Position, c game.RGB) {
	if !p.InBounds(cfg.Width, cfg.Height) {
		return
	}
	col, row := p.Cell(cfg.CellSize)
	r.fill(col, row, tcell.StyleDefault.Background(color(c)))
}

func (r *Renderer) fill(col, row int, style tcell.Style) {
	for dx := 0; dx < cellWidth; dx++ {
		r.screen.SetContent(col*cellWidth+dx, row, ' ', nil, style)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
