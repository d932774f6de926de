package widgets

import (
	"github.com/TomekTTX/sdlw/pkg/geometry"
	"github.com/TomekTTX/sdlw/pkg/graphics"
	"github.com/TomekTTX/sdlw/pkg/input"
)

// Button is a clickable rectangle with a centered caption. It highlights
// on hover and invokes its callback synchronously on a click inside its
// bounds. A button without a callback is inert: it ignores every event so
// clicks fall through to whatever is underneath.
type Button struct {
	Base
	Text     string
	callback func(*Button)
}

// NewButton creates a button. callback may be nil to create a disabled
// button that can be armed later with SetCallback.
func NewButton(rect geometry.Rect, text string, palette graphics.Palette, callback func(*Button)) *Button {
	return &Button{
		Base:     NewBase(rect, palette),
		Text:     text,
		callback: callback,
	}
}

// SetCallback replaces the click callback.
func (b *Button) SetCallback(callback func(*Button)) {
	b.callback = callback
}

// HandleEvent toggles hover on boundary crossings and fires the callback
// on a click inside the bounds.
func (b *Button) HandleEvent(ev input.Event) Outcome {
	if !b.shown || b.callback == nil {
		return Ignored
	}
	if b.HandleHover(ev) {
		return Handled
	}
	if b.Clicked(ev) != 0 {
		b.callback(b)
		return Handled
	}
	return Ignored
}

// Draw renders the bordered body, highlighted while hovered, with the
// caption centered.
func (b *Button) Draw(s graphics.Surface) {
	if !b.shown {
		return
	}
	fill := b.colors.Background
	if b.hovered {
		fill = b.colors.Highlight
	}
	s.FillRectBordered(b.rect, 1, fill, b.colors.Line)
	s.DrawText(b.rect, b.Text, b.fontOrNil(), b.colors.Text, true, true)
}
