package widgets

import (
	"github.com/TomekTTX/sdlw/pkg/geometry"
	"github.com/TomekTTX/sdlw/pkg/graphics"
	"github.com/TomekTTX/sdlw/pkg/input"
)

// ScrollPanel is a Panel that shows a sliding window of numShown children
// stacked vertically from scrollBegin. Exactly the children in
// [index, index+numShown) are visible; all others are hidden. Wheel input
// moves the window one position, and a move that would push the window
// out of [0, len(children)] leaves the index unchanged but still consumes
// the event.
type ScrollPanel struct {
	Panel
	index       int
	numShown    int
	scrollBegin geometry.Point
}

// NewScrollPanel creates a scroll panel whose content stacks from the
// panel's own top-left corner.
func NewScrollPanel(rect geometry.Rect, background, line graphics.RGB, numShown int) *ScrollPanel {
	return NewScrollPanelAt(rect, background, line, numShown, rect.Pos())
}

// NewScrollPanelAt creates a scroll panel with an explicit stacking
// origin.
func NewScrollPanelAt(rect geometry.Rect, background, line graphics.RGB, numShown int, scrollBegin geometry.Point) *ScrollPanel {
	return &ScrollPanel{
		Panel:       *NewPanel(rect, background, line),
		numShown:    numShown,
		scrollBegin: scrollBegin,
	}
}

// Index returns the position of the first visible child.
func (p *ScrollPanel) Index() int { return p.index }

// NumShown returns the size of the visible window.
func (p *ScrollPanel) NumShown() int { return p.numShown }

// Translate moves the panel, its children and the stacking origin.
func (p *ScrollPanel) Translate(dx, dy int) {
	p.Panel.Translate(dx, dy)
	p.scrollBegin = p.scrollBegin.Add(geometry.Point{X: dx, Y: dy})
}

// HandleEvent first offers the event to the children; an unconsumed
// wheel event then scrolls the visible window. Wheel events are always
// consumed, even when the window cannot move.
func (p *ScrollPanel) HandleEvent(ev input.Event) Outcome {
	if !p.shown {
		return Ignored
	}
	if out := p.Panel.HandleEvent(ev); out.Consumed() {
		return out
	}
	wheel, ok := ev.(input.Wheel)
	if !ok {
		return Ignored
	}
	// Wheel up steps toward the front of the child list.
	offset := -sign(wheel.Delta)
	if p.index+offset >= 0 && p.index+offset+p.numShown <= len(p.comps) {
		p.index += offset
		p.layoutContent()
	}
	return Handled
}

// Add appends a child and re-applies the windowing pass so the new child
// is correctly shown or hidden.
func (p *ScrollPanel) Add(c Component) Component {
	added := p.Panel.Add(c)
	p.layoutContent()
	return added
}

// layoutContent shows and stacks the children inside the visible window
// and hides all others. The vertical pitch is each shown child's height.
func (p *ScrollPanel) layoutContent() {
	yoff := 0
	for i, c := range p.comps {
		if i >= p.index && i < p.index+p.numShown {
			c.SetVisible(true)
			SetPos(c, p.scrollBegin.X, p.scrollBegin.Y+yoff)
			yoff += c.Rect().H
		} else {
			c.SetVisible(false)
		}
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
