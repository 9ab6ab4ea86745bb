package pixbuf

// Color is a packed RGBA color, one byte per channel with red in the
// most significant byte. The layout matches a GL_UNSIGNED_INT_8_8_8_8
// texture upload, so a []Color slice is handed to the GPU without
// repacking.
type Color uint32

// RGB packs three 8-bit channels into an opaque color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 0xff)
}

// RGBA packs four 8-bit channels into a color.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 24) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 16) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> 8) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c) }
