package display

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// errorName maps an OpenGL error code to its symbolic name.
func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("GL_ERROR_%#04x", code)
	}
}

// checkGL drains the OpenGL error queue, logging every pending error
// with its symbolic name and the call-site tag. These errors are
// advisory: rendering continues.
func checkGL(logger *slog.Logger, site string) {
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			return
		}
		logger.Warn("OpenGL error", "error", errorName(code), "site", site)
	}
}
