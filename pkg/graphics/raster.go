package graphics

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/TomekTTX/sdlw/pkg/geometry"
)

// Raster is a software Surface over an in-memory RGBA pixel buffer.
// It is the default backend for headless rendering and the drawing double
// used throughout the tests; Present is a no-op that only counts frames.
type Raster struct {
	img    *image.RGBA
	frames int
}

// NewRaster allocates a raster surface of the given size.
func NewRaster(w, h int) *Raster {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Size returns the pixel dimensions of the buffer.
func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image exposes the backing pixel buffer, e.g. for PNG snapshots.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Frames returns how many times Present has been called.
func (r *Raster) Frames() int {
	return r.frames
}

// ResolveColor packs a logical RGB value into the native ARGB layout.
func (r *Raster) ResolveColor(c RGB) Color {
	return Color(0xFF000000 | uint32(c)&0x00FFFFFF)
}

func nativeRGBA(c Color) color.RGBA {
	return color.RGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}
}

// Clear fills the whole buffer with opaque black.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(color.RGBA{A: 0xFF}), image.Point{}, draw.Src)
}

// Present completes a frame. The raster backend has no display to flip,
// so this only advances the frame counter.
func (r *Raster) Present() error {
	r.frames++
	return nil
}

// FillRect fills the rectangle with a solid color.
func (r *Raster) FillRect(rect geometry.Rect, c Color) {
	dst := image.Rect(rect.X, rect.Y, rect.X+rect.W, rect.Y+rect.H)
	draw.Draw(r.img, dst, image.NewUniform(nativeRGBA(c)), image.Point{}, draw.Src)
}

// FillRectBordered fills the rectangle and paints an inner border.
func (r *Raster) FillRectBordered(rect geometry.Rect, borderW int, fill, border Color) {
	r.FillRect(rect, fill)
	edges := [4]geometry.Rect{
		{X: rect.X, Y: rect.Y, W: borderW, H: rect.H},
		{X: rect.X + rect.W - borderW, Y: rect.Y, W: borderW, H: rect.H},
		{X: rect.X, Y: rect.Y, W: rect.W, H: borderW},
		{X: rect.X, Y: rect.Y + rect.H - borderW, W: rect.W, H: borderW},
	}
	for _, edge := range edges {
		r.FillRect(edge, border)
	}
}

// DrawText blits one line of text into the rectangle. A nil face is a
// silent no-op so that a failed font load degrades to blank labels
// instead of an error path in every widget.
func (r *Raster) DrawText(rect geometry.Rect, text string, face font.Face, c Color, hCenter, vCenter bool) {
	if face == nil || text == "" {
		return
	}
	metrics := face.Metrics()
	width := font.MeasureString(face, text).Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()

	x := rect.X
	y := rect.Y
	if hCenter {
		x += (rect.W - width) / 2
	}
	if vCenter {
		y += (rect.H - height) / 2
	}

	drawer := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(nativeRGBA(c)),
		Face: face,
		Dot:  fixed.P(x, y+metrics.Ascent.Ceil()),
	}
	drawer.DrawString(text)
}
