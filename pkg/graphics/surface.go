// Package graphics defines the narrow drawing contract the widget layer
// depends on, together with a pure-software implementation of it. Widgets
// never reach a real windowing backend directly; everything they need is
// rectangle fills, text blits and RGB resolution on a Surface.
package graphics

import (
	"golang.org/x/image/font"

	"github.com/TomekTTX/sdlw/pkg/geometry"
)

// Surface is the drawing target handed to every component's Draw call.
// Implementations own a pixel buffer; the widget layer only ever issues
// fills and text blits against it.
type Surface interface {
	ColorMapper

	// Size returns the surface dimensions in pixels.
	Size() (w, h int)

	// FillRect fills the rectangle with a solid color.
	FillRect(r geometry.Rect, c Color)

	// FillRectBordered fills the rectangle and paints a border of the
	// given width inside its edges.
	FillRectBordered(r geometry.Rect, borderW int, fill, border Color)

	// DrawText blits a single line of text anchored to the rectangle.
	// hCenter and vCenter select centering within the rectangle on each
	// axis; without centering the text is drawn from the top-left corner.
	// A nil face is a silent no-op.
	DrawText(r geometry.Rect, text string, face font.Face, c Color, hCenter, vCenter bool)
}
