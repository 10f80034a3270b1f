package matrix

import (
	"image"
	"image/color"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"

	"matrix-scoreboard/internal/board"
)

// ImageCanvas renders into an in-memory RGBA image. It backs the /frame.png
// debug endpoint and the render tests.
type ImageCanvas struct {
	img *image.RGBA
}

// NewImageCanvas returns a panel-sized image canvas.
func NewImageCanvas() *ImageCanvas {
	c := &ImageCanvas{
		img: image.NewRGBA(image.Rect(0, 0, Width, Height)),
	}
	c.Clear()
	return c
}

func (c *ImageCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *ImageCanvas) SetPixel(x, y int, col board.Color) {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return
	}
	r, g, b := col.RGB()
	c.img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
}

func (c *ImageCanvas) Clear() {
	for i := range c.img.Pix {
		c.img.Pix[i] = 0
	}
	// Alpha channel stays opaque.
	for i := 3; i < len(c.img.Pix); i += 4 {
		c.img.Pix[i] = 0xFF
	}
}

// Show is a no-op; the image is always current.
func (c *ImageCanvas) Show() error { return nil }

func (c *ImageCanvas) Close() error { return nil }

// At returns the color at a pixel, for tests and encoding.
func (c *ImageCanvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// EncodePNG writes the current frame as a PNG, upscaled by scale with
// nearest-neighbor so the pixels stay crisp.
func (c *ImageCanvas) EncodePNG(w io.Writer, scale int) error {
	if scale <= 1 {
		return png.Encode(w, c.img)
	}

	b := c.img.Bounds()
	scaled := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), c.img, b, xdraw.Src, nil)
	return png.Encode(w, scaled)
}
