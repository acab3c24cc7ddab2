package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/rippanjyot11-sudo/GAME-DEVELOPMENT-SNAKE-GAME/internal/game"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws the board into a GLFW window and presents each frame.
type Renderer struct {
	window *glfw.Window
	cfg    game.Config

	prog uint32
	vao  uint32
	vbo  uint32

	uBoard int32
	uScale int32

	maxSprites int
	buf        []float32

	fx        *particles
	fxBuf     []float32
	lastFrame float64
}

func NewRenderer(window *glfw.Window, cfg game.Config) (*Renderer, error) {
	prog, err := newProgram(cellVertSrc, cellFragSrc)
	if err != nil {
		return nil, fmt.Errorf("cell program: %w", err)
	}

	r := &Renderer{
		window:     window,
		cfg:        cfg,
		prog:       prog,
		maxSprites: cfg.Cells() + 2, // every cell, the food and an off-board head
		fx:         newParticles(maxParticles, uint64(cfg.Cells())),
		lastFrame:  glfw.GetTime(),
	}

	// Streaming buffer for point sprites, spriteFloats per sprite.
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(spriteFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, r.maxSprites*int(stride), nil, gl.STREAM_DRAW)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))

	gl.UseProgram(prog)
	r.uBoard = gl.GetUniformLocation(prog, gl.Str("uBoard\x00"))
	r.uScale = gl.GetUniformLocation(prog, gl.Str("uScale\x00"))
	gl.Uniform2f(r.uBoard, float32(cfg.Width), float32(cfg.Height))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	bgR, bgG, bgB := game.Palette.Background.Floats()
	gl.ClearColor(bgR, bgG, bgB, 1.0)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// Burst spawns a debris effect centred on cell p, in the food colour.
func (r *Renderer) Burst(p game.Position) {
	half := float64(r.cfg.CellSize) / 2
	r.fx.burst(float64(p.X)+half, float64(p.Y)+half, game.Palette.Food)
}

// Render clears the frame, draws food, snake and effects and swaps buffers.
func (r *Renderer) Render(g *game.GameState) {
	now := glfw.GetTime()
	dt := now - r.lastFrame
	r.lastFrame = now
	if dt > 0.1 {
		dt = 0.1
	}
	r.fx.update(dt)

	fbW, fbH := r.window.GetFramebufferSize()
	if fbW <= 0 || fbH <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	// HiDPI framebuffers are larger than the window; sprites scale with them.
	gl.Uniform1f(r.uScale, float32(fbW)/float32(r.cfg.Width))

	r.buf = spriteBuffer(g, r.buf)
	r.drawSprites(r.buf, r.maxSprites)

	r.fxBuf = r.fx.appendSprites(r.fxBuf[:0])
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	r.drawSprites(r.fxBuf, maxParticles)
	gl.Disable(gl.BLEND)

	gl.BindVertexArray(0)
	r.window.SwapBuffers()
}

// drawSprites uploads buf (spriteFloats per sprite) and draws up to limit
// points with the bound program.
func (r *Renderer) drawSprites(buf []float32, limit int) {
	count := len(buf) / spriteFloats
	if count > limit {
		count = limit
	}
	if count == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, count*spriteFloats*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
}
