// Package pixbuf provides the CPU-side framebuffer the display
// pipeline streams to the screen: a fixed-size grid of packed RGBA
// pixels with whole-buffer clear as the only mutation.
package pixbuf

import "fmt"

// Buffer is a fixed-size pixel buffer stored row-major, top-left
// first. Its dimensions never change after creation.
type Buffer struct {
	width  int
	height int
	pix    []Color
}

// New allocates a width×height buffer with every pixel set to the zero
// color (transparent black). Both dimensions must be positive.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pixbuf: invalid dimensions %dx%d", width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}, nil
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *Buffer) Height() int {
	return b.height
}

// Pix returns the dense pixel sequence. The slice aliases the buffer's
// storage: it stays valid while the buffer is alive, and its contents
// change on the next Clear.
func (b *Buffer) Pix() []Color {
	return b.pix
}

// Clear sets every pixel to c.
func (b *Buffer) Clear(c Color) {
	for i := range b.pix {
		b.pix[i] = c
	}
}
