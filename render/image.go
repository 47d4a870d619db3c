// SPDX-License-Identifier: EPL-2.0

package render

import (
	"image"
	"image/color"

	"github.com/ik5/specvis/colormap"
)

// Background is the color of pixels that were never painted.
var Background = colormap.Color{}

// Image is a row-major RGB raster with its origin at the top left.
type Image struct {
	Width, Height int
	Pix           []colormap.Color
}

// NewImage allocates a width x height raster filled with Background.
// Non-positive dimensions produce an empty image.
func NewImage(width, height int) *Image {
	if width <= 0 || height <= 0 {
		return &Image{}
	}
	img := &Image{
		Width:  width,
		Height: height,
		Pix:    make([]colormap.Color, width*height),
	}
	if Background != (colormap.Color{}) {
		for i := range img.Pix {
			img.Pix[i] = Background
		}
	}
	return img
}

// Pixel returns the color at (x, y).
func (m *Image) Pixel(x, y int) colormap.Color {
	return m.Pix[y*m.Width+x]
}

// Set paints (x, y).
func (m *Image) Set(x, y int, c colormap.Color) {
	m.Pix[y*m.Width+x] = c
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.Width, m.Height) }

// At implements image.Image.
func (m *Image) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return color.RGBA{}
	}
	c := m.Pixel(x, y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// RGBA copies the raster into a standard library image, which the encoders
// handle on their fast path.
func (m *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(m.Bounds())
	for i, c := range m.Pix {
		o := i * 4
		out.Pix[o] = c.R
		out.Pix[o+1] = c.G
		out.Pix[o+2] = c.B
		out.Pix[o+3] = 0xff
	}
	return out
}

// Bytes returns the raster as packed RGB triplets.
func (m *Image) Bytes() []byte {
	out := make([]byte, 0, len(m.Pix)*3)
	for _, c := range m.Pix {
		out = append(out, c.R, c.G, c.B)
	}
	return out
}
