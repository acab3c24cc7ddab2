package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Cell vertex shader: one square point sprite per grid cell, positioned in
// board pixels.
const cellVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;

uniform vec2 uBoard;
uniform float uScale;

out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uBoard) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    gl_PointSize = max(1.0, floor(aSize * uScale + 0.5));
    vColor = aColor;
}
` + "\x00"

// Cell fragment shader: solid fill.
const cellFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

// infoLog reads a shader or program info log through the matching pair of
// GL getters.
func infoLog(id uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var n int32
	getiv(id, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "(no log)"
	}
	buf := make([]byte, n+1)
	getLog(id, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	src, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, src, nil)
	free()
	gl.CompileShader(shader)

	var ok int32
	if gl.GetShaderiv(shader, gl.COMPILE_STATUS, &ok); ok == gl.FALSE {
		msg := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", msg)
	}
	return shader, nil
}

// newProgram compiles and links a vertex/fragment pair. The shader
// objects are released whether or not linking succeeds.
func newProgram(vertSrc, fragSrc string) (uint32, error) {
	var shaders []uint32
	defer func() {
		for _, sh := range shaders {
			gl.DeleteShader(sh)
		}
	}()
	for _, st := range []struct {
		src  string
		kind uint32
	}{{vertSrc, gl.VERTEX_SHADER}, {fragSrc, gl.FRAGMENT_SHADER}} {
		sh, err := compileShader(st.src, st.kind)
		if err != nil {
			return 0, err
		}
		shaders = append(shaders, sh)
	}

	prog := gl.CreateProgram()
	for _, sh := range shaders {
		gl.AttachShader(prog, sh)
	}
	gl.LinkProgram(prog)
	for _, sh := range shaders {
		gl.DetachShader(prog, sh)
	}

	var ok int32
	if gl.GetProgramiv(prog, gl.LINK_STATUS, &ok); ok == gl.FALSE {
		msg := infoLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link program: %s", msg)
	}
	return prog, nil
}
