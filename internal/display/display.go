package display

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"invaders/internal/pixbuf"
)

// Pipeline is the fixed display path for one pixel buffer: a window, a
// single shader program and a single streamed texture. Each frame the
// buffer is cleared to the background color, uploaded, and blitted to
// the full viewport.
type Pipeline struct {
	opts   options
	logger *slog.Logger
	buf    *pixbuf.Buffer

	window  *glfw.Window
	program uint32
	vao     uint32
	texture uint32
}

// New acquires the window and context, builds the shader program and
// allocates the streamed texture, in that order. On error everything
// acquired up to the failure has been released.
func New(buf *pixbuf.Buffer, opts ...Option) (*Pipeline, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pipeline{opts: o, logger: o.logger, buf: buf}

	window, err := newWindow(o.title, buf.Width(), buf.Height(), o.vsync)
	if err != nil {
		return nil, err
	}
	p.window = window

	if err := gl.Init(); err != nil {
		p.Close()
		return nil, fmt.Errorf("display: load OpenGL functions: %w", err)
	}

	p.logger.Info("OpenGL context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	program, err := buildProgram(p.logger, vertexShaderSource, fragmentShaderSource)
	if err != nil {
		p.Close()
		return nil, err
	}
	p.program = program
	gl.UseProgram(p.program)

	// Core profile refuses attribute-less draws without a bound VAO.
	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	p.texture = newTexture(buf)
	gl.Uniform1i(gl.GetUniformLocation(p.program, gl.Str("frame\x00")), 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Disable(gl.DEPTH_TEST)
	checkGL(p.logger, "setup")

	if o.snapshotDir != "" {
		if err := os.MkdirAll(o.snapshotDir, 0o755); err != nil {
			p.logger.Warn("snapshot directory unavailable",
				"dir", o.snapshotDir, "err", err)
			p.opts.snapshotDir = ""
		}
	}

	p.window.SetKeyCallback(p.onKey)
	return p, nil
}

// Run drives the frame loop until the window is signaled closed by the
// operator or the windowing system.
func (p *Pipeline) Run() {
	frames := 0
	lastTitle := time.Now()

	for !p.window.ShouldClose() {
		p.renderFrame()

		frames++
		if now := time.Now(); now.Sub(lastTitle) >= time.Second {
			p.window.SetTitle(fmt.Sprintf("%s | FPS: %d", p.opts.title, frames))
			frames = 0
			lastTitle = now
		}
	}
}

// renderFrame produces one frame: clear the buffer, refresh the
// texture with a full-extent sub-image update, draw the fullscreen
// triangle, present, and poll pending events without blocking.
func (p *Pipeline) renderFrame() {
	p.buf.Clear(p.opts.clearColor)

	uploadTexture(p.buf)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	checkGL(p.logger, "frame")

	p.window.SwapBuffers()
	glfw.PollEvents()
}

// Close releases all graphics objects in reverse order of acquisition:
// texture, vertex array, program, window, then GLFW itself. It is safe
// on a partially constructed pipeline and must run on the pipeline's
// thread.
func (p *Pipeline) Close() {
	if p.texture != 0 {
		gl.DeleteTextures(1, &p.texture)
		p.texture = 0
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
	if p.window != nil {
		p.window.Destroy()
		p.window = nil
	}
	glfw.Terminate()
}

func (p *Pipeline) onKey(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeyF12:
		p.saveSnapshot()
	}
}
