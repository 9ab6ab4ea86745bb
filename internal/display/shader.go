package display

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// The vertex stage synthesizes a fullscreen triangle from gl_VertexID
// alone; no vertex buffer and no attribute inputs exist. Texture
// coordinates (0,0), (0,2) and (2,0) place the visible viewport inside
// the unit square.
const vertexShaderSource = `#version 330 core

noperspective out vec2 texCoord;

void main(void) {
    texCoord.x = (gl_VertexID == 2) ? 2.0 : 0.0;
    texCoord.y = (gl_VertexID == 1) ? 2.0 : 0.0;

    gl_Position = vec4(2.0 * texCoord - 1.0, 0.0, 1.0);
}
`

const fragmentShaderSource = `#version 330 core

uniform sampler2D frame;

noperspective in vec2 texCoord;

out vec4 outColor;

void main(void) {
    outColor = vec4(texture(frame, texCoord).rgb, 1.0);
}
`

// stageName returns a human-readable shader stage identifier for
// diagnostics.
func stageName(kind uint32) string {
	switch kind {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	default:
		return fmt.Sprintf("stage-%#04x", kind)
	}
}

// compileStage compiles one shader stage and returns its handle along
// with any driver diagnostic text. A failed compile still returns the
// handle: stage errors are advisory, only the subsequent link decides
// whether the program is usable.
func compileStage(kind uint32, src string) (handle uint32, diagnostic string) {
	handle = gl.CreateShader(kind)
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)
	return handle, infoLog(handle, gl.GetShaderiv, gl.GetShaderInfoLog)
}

// infoLog fetches a shader or program info log through the matching
// getter pair.
func infoLog(
	handle uint32,
	getiv func(uint32, uint32, *int32),
	getLog func(uint32, int32, *int32, *uint8),
) string {
	var length int32
	getiv(handle, gl.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(length+1))
	getLog(handle, length, nil, gl.Str(buf))
	return strings.TrimSpace(strings.TrimRight(buf, "\x00"))
}

// buildProgram compiles both stages, links them into one program and
// releases the stage objects. Stage diagnostics are logged and
// execution continues; a failed link releases the program handle and
// is returned as an error.
func buildProgram(logger *slog.Logger, vertexSrc, fragmentSrc string) (uint32, error) {
	program := gl.CreateProgram()

	stages := []struct {
		kind uint32
		src  string
	}{
		{gl.VERTEX_SHADER, vertexSrc},
		{gl.FRAGMENT_SHADER, fragmentSrc},
	}
	for _, stage := range stages {
		handle, diag := compileStage(stage.kind, stage.src)
		if diag != "" {
			logger.Warn("shader compile diagnostics",
				"stage", stageName(stage.kind), "log", diag)
		}
		gl.AttachShader(program, handle)
		// Flagged for deletion now, released once the program goes away.
		gl.DeleteShader(handle)
	}

	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		diag := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("display: shader program link failed: %s", diag)
	}
	return program, nil
}
