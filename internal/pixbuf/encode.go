package pixbuf

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Image unpacks the buffer into a standard NRGBA image.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for i, c := range b.pix {
		o := i * 4
		img.Pix[o+0] = c.R()
		img.Pix[o+1] = c.G()
		img.Pix[o+2] = c.B()
		img.Pix[o+3] = c.A()
	}
	return img
}

// ScaledImage unpacks the buffer upscaled by an integer factor with
// nearest-neighbor sampling, keeping pixel edges hard. A scale of 1 or
// less is equivalent to Image.
func (b *Buffer) ScaledImage(scale int) *image.NRGBA {
	src := b.Image()
	if scale <= 1 {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.width*scale, b.height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// SavePNG writes the buffer to a PNG file.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pixbuf: create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, b.Image())
}
