// Package widgets implements the retained component model: the Component
// contract, the embeddable Base that carries geometry, palette and
// visibility, and every concrete widget from Button up to ColorSelect.
//
// Components form strict single-ownership trees. A container exclusively
// owns its children; the only back-reference is the non-owning Window
// handle each component receives at attachment time, used solely to query
// the shared font and drawing surface.
package widgets

import (
	"golang.org/x/image/font"

	"github.com/TomekTTX/sdlw/pkg/geometry"
	"github.com/TomekTTX/sdlw/pkg/graphics"
	"github.com/TomekTTX/sdlw/pkg/input"
)

// Outcome is the three-valued result of offering an event to a component.
type Outcome int

const (
	// Ignored means the event was irrelevant; the caller should offer it
	// to the next candidate.
	Ignored Outcome = iota
	// Handled means the event was fully consumed; siblings must not see
	// it and the window should repaint.
	Handled
	// Forwarded means the component reacted to the event but wants it to
	// stay visible to components above it. An Expandable collapsing on an
	// outside click reports Forwarded so the click still reaches whatever
	// it was aimed at.
	Forwarded
)

// Consumed reports whether the outcome stops a container's probe.
func (o Outcome) Consumed() bool {
	return o != Ignored
}

// Window is the query-only view a component has of the window it is
// attached to. It exists so components can resolve the shared font and
// surface; mutation flows only down the tree, never through this handle.
type Window interface {
	Font() font.Face
	Surface() graphics.Surface
}

// Component is the contract every widget implements.
//
// If a component is not visible, HandleEvent must return Ignored and Draw
// must emit nothing. Composites override Translate, SetWindow and
// MapColors to also cover every sub-widget they own.
type Component interface {
	// HandleEvent offers one raw event to the component.
	HandleEvent(ev input.Event) Outcome
	// Draw renders the component onto the surface.
	Draw(s graphics.Surface)
	// Translate moves the component and everything it owns by (dx, dy).
	Translate(dx, dy int)
	// SetWindow attaches the component to a window, recursively binding
	// every already-present descendant. Attachment happens exactly once.
	SetWindow(win Window)
	// MapColors resolves the component's raw palette into native colors.
	MapColors(m graphics.ColorMapper)
	// Rect returns the component's absolute bounds.
	Rect() geometry.Rect
	// Visible reports whether the component draws and receives events.
	Visible() bool
	// SetVisible shows or hides the component.
	SetVisible(v bool)
}

// SetPos moves a component to an absolute position through its own
// Translate, so composites carry their sub-trees along.
func SetPos(c Component, x, y int) {
	r := c.Rect()
	c.Translate(x-r.X, y-r.Y)
}
