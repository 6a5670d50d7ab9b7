// Package raster draws the scene pixel by pixel onto a software surface.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"chosenoffset.com/lightrays/internal/render"
)

// Framebuffer is an in-memory RGBA surface, the equivalent of a window
// surface the scene is painted onto before it is presented.
type Framebuffer struct {
	img *image.RGBA
}

var _ render.Surface = (*Framebuffer)(nil)

// NewFramebuffer creates a framebuffer of the given size, cleared to transparent black
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Size returns the width and height of the framebuffer
func (f *Framebuffer) Size() (width, height int) {
	b := f.img.Bounds()
	return b.Dx(), b.Dy()
}

// FillRect paints a rectangle, clipped to the framebuffer
func (f *Framebuffer) FillRect(x, y, w, h int, clr color.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(f.img.Bounds())
	if r.Empty() {
		return
	}
	if w == 1 && h == 1 {
		f.img.Set(x, y, clr)
		return
	}
	draw.Draw(f.img, r, image.NewUniform(clr), image.Point{}, draw.Src)
}

// Fill paints the whole framebuffer
func (f *Framebuffer) Fill(clr color.Color) {
	draw.Draw(f.img, f.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

// Pix returns the raw RGBA pixel data, laid out like image.RGBA.Pix
func (f *Framebuffer) Pix() []byte {
	return f.img.Pix
}

// At returns the colour of a single pixel
func (f *Framebuffer) At(x, y int) color.RGBA {
	return f.img.RGBAAt(x, y)
}
