package display

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"invaders/internal/pixbuf"
)

// newTexture allocates the GPU-side mirror of the buffer: one RGBA8
// texture at the buffer's exact dimensions, nearest-neighbor filtered
// and edge-clamped so pixel edges stay hard. The texture is left bound
// on TEXTURE_2D.
func newTexture(buf *pixbuf.Buffer) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(buf.Width()), int32(buf.Height()), 0,
		gl.RGBA, gl.UNSIGNED_INT_8_8_8_8, gl.Ptr(buf.Pix()))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return texture
}

// uploadTexture refreshes the bound texture's contents from the buffer
// with a sub-image update covering the full extent. The storage is
// never reallocated.
func uploadTexture(buf *pixbuf.Buffer) {
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0,
		int32(buf.Width()), int32(buf.Height()),
		gl.RGBA, gl.UNSIGNED_INT_8_8_8_8, gl.Ptr(buf.Pix()))
}
