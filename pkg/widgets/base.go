package widgets

import (
	"golang.org/x/image/font"

	"github.com/TomekTTX/sdlw/pkg/geometry"
	"github.com/TomekTTX/sdlw/pkg/graphics"
	"github.com/TomekTTX/sdlw/pkg/input"
)

// Base carries the state every component shares: bounds, the raw and
// resolved palettes, visibility, the hover flag and the window
// back-reference. Widgets embed it and override the Component methods
// they need.
type Base struct {
	rect    geometry.Rect
	raw     graphics.Palette
	colors  graphics.NativePalette
	win     Window
	hovered bool
	shown   bool
}

// NewBase creates a visible base with the given bounds and palette.
func NewBase(rect geometry.Rect, palette graphics.Palette) Base {
	return Base{rect: rect, raw: palette, shown: true}
}

// Rect returns the absolute bounds.
func (b *Base) Rect() geometry.Rect { return b.rect }

// Visible reports whether the component draws and receives events.
func (b *Base) Visible() bool { return b.shown }

// SetVisible shows or hides the component.
func (b *Base) SetVisible(v bool) { b.shown = v }

// Show makes the component visible.
func (b *Base) Show() { b.shown = true }

// Hide makes the component invisible.
func (b *Base) Hide() { b.shown = false }

// Hovered reports whether the pointer is currently inside the bounds.
func (b *Base) Hovered() bool { return b.hovered }

// SetDims changes the component's size, keeping its position.
func (b *Base) SetDims(w, h int) {
	b.rect.W = w
	b.rect.H = h
}

// SetColors replaces the raw palette. MapColors must run again before the
// change becomes visible.
func (b *Base) SetColors(p graphics.Palette) { b.raw = p }

// Palette returns the raw palette.
func (b *Base) Palette() graphics.Palette { return b.raw }

// Colors returns the resolved palette. Zero until MapColors has run.
func (b *Base) Colors() graphics.NativePalette { return b.colors }

// Translate moves the component's own bounds. Composites override this to
// carry their sub-trees along.
func (b *Base) Translate(dx, dy int) {
	b.rect = b.rect.Translated(dx, dy)
}

// SetWindow stores the non-owning window back-reference.
func (b *Base) SetWindow(win Window) { b.win = win }

// Win returns the attached window, or nil before attachment.
func (b *Base) Win() Window { return b.win }

// MapColors resolves the raw palette through the mapper, field by field.
func (b *Base) MapColors(m graphics.ColorMapper) {
	b.colors = b.raw.Resolve(m)
}

// Contains reports whether the point lies inside the component's bounds.
func (b *Base) Contains(p geometry.Point) bool {
	return b.rect.Contains(p)
}

// HandleHover flips the cached hover flag when a pointer-motion event
// crosses the component's boundary, reporting true when it flipped. Any
// widget gets highlight-on-hover by calling this first from HandleEvent.
func (b *Base) HandleHover(ev input.Event) bool {
	m, ok := ev.(input.MouseMotion)
	if !ok {
		return false
	}
	if inside := b.rect.Contains(m.Pos); inside != b.hovered {
		b.hovered = inside
		return true
	}
	return false
}

// Clicked returns the click count of a button-down event inside the
// bounds, or 0 for any other event.
func (b *Base) Clicked(ev input.Event) int {
	if down, ok := ev.(input.MouseButtonDown); ok && b.rect.Contains(down.Pos) {
		return down.Clicks
	}
	return 0
}

// ClickedOutside returns the click count of a button-down event outside
// the bounds, or 0 for any other event.
func (b *Base) ClickedOutside(ev input.Event) int {
	if down, ok := ev.(input.MouseButtonDown); ok && !b.rect.Contains(down.Pos) {
		return down.Clicks
	}
	return 0
}

// fontOrNil returns the window font once attached. Text drawing is a
// no-op until the component has a window, which keeps the invariant that
// no text renders before attachment.
func (b *Base) fontOrNil() font.Face {
	if b.win == nil {
		return nil
	}
	return b.win.Font()
}
