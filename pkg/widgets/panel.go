package widgets

import (
	"slices"

	"github.com/TomekTTX/sdlw/pkg/geometry"
	"github.com/TomekTTX/sdlw/pkg/graphics"
	"github.com/TomekTTX/sdlw/pkg/input"
)

// Panel owns an ordered sequence of child components. Insertion order is
// draw order and hit-test priority order: events go to the first child
// that consumes them, later children paint over earlier ones.
//
// Event dispatch iterates a snapshot of the child slice, so a callback
// fired mid-dispatch may insert, remove or swap children without
// corrupting the in-flight pass. Every container in the package uses this
// same strategy.
type Panel struct {
	Base
	comps []Component
}

// NewPanel creates an empty panel with a background and border color.
func NewPanel(rect geometry.Rect, background, line graphics.RGB) *Panel {
	return &Panel{
		Base: NewBase(rect, graphics.Palette{Background: background, Line: line}),
	}
}

// Len returns the number of children.
func (p *Panel) Len() int { return len(p.comps) }

// Child returns the child at the given position, or nil out of range.
func (p *Panel) Child(index int) Component {
	if index < 0 || index >= len(p.comps) {
		return nil
	}
	return p.comps[index]
}

// Add appends a child. If the panel is already attached to a window, the
// child is bound and color-mapped immediately; otherwise both happen when
// the panel itself is attached. Returns the added component.
func (p *Panel) Add(c Component) Component {
	if p.win != nil {
		c.SetWindow(p.win)
		c.MapColors(p.win.Surface())
	}
	p.comps = append(p.comps, c)
	return c
}

// RemoveAt removes and returns the child at the given position. Out of
// range is a no-op returning nil.
func (p *Panel) RemoveAt(index int) Component {
	if index < 0 || index >= len(p.comps) {
		return nil
	}
	c := p.comps[index]
	p.comps = slices.Delete(p.comps, index, index+1)
	return c
}

// SwapChildren exchanges two children's positions. Out-of-range indices
// are a no-op reporting false.
func (p *Panel) SwapChildren(i, j int) bool {
	if i < 0 || j < 0 || i >= len(p.comps) || j >= len(p.comps) {
		return false
	}
	p.comps[i], p.comps[j] = p.comps[j], p.comps[i]
	return true
}

// HandleEvent probes children in insertion order and returns the first
// non-Ignored outcome.
func (p *Panel) HandleEvent(ev input.Event) Outcome {
	if !p.shown {
		return Ignored
	}
	for _, c := range slices.Clone(p.comps) {
		if out := c.HandleEvent(ev); out.Consumed() {
			return out
		}
	}
	return Ignored
}

// Draw renders the panel body and then every child in insertion order.
func (p *Panel) Draw(s graphics.Surface) {
	if !p.shown {
		return
	}
	s.FillRectBordered(p.rect, 1, p.colors.Background, p.colors.Line)
	for _, c := range p.comps {
		c.Draw(s)
	}
}

// Translate moves the panel and every child by the same delta.
func (p *Panel) Translate(dx, dy int) {
	p.Base.Translate(dx, dy)
	for _, c := range p.comps {
		c.Translate(dx, dy)
	}
}

// SetWindow binds the panel and then binds and color-maps every child
// already present, covering children added before attachment.
func (p *Panel) SetWindow(win Window) {
	p.Base.SetWindow(win)
	for _, c := range p.comps {
		c.SetWindow(win)
		c.MapColors(win.Surface())
	}
}
