package widgets

import (
	"github.com/TomekTTX/sdlw/pkg/geometry"
	"github.com/TomekTTX/sdlw/pkg/graphics"
	"github.com/TomekTTX/sdlw/pkg/input"
)

// ComboBox is an Expandable over a fixed option list. Its drop panel is a
// ScrollPanel holding one selectable row per option; clicking a row
// selects it, updates the trigger text and collapses the box.
//
// Rows are materialized at attachment time, not construction, because row
// rendering needs the window's font and color mapping.
type ComboBox struct {
	Expandable
	index     int
	options   []string
	drop      *ScrollPanel
	populated bool
}

// NewComboBox creates a combo box showing numShown options at a time.
// The option list must not be empty; an empty list degrades to a single
// blank option.
func NewComboBox(rect geometry.Rect, options []string, palette graphics.Palette, numShown int, dir Dir) *ComboBox {
	if len(options) == 0 {
		options = []string{""}
	}
	panelRect := geometry.Rect{W: rect.W, H: rect.H * numShown}
	drop := NewScrollPanel(panelRect, palette.Background, palette.Line, numShown)
	drop.SetColors(palette)
	c := &ComboBox{
		Expandable: *NewExpandable(rect, options[0], palette, drop, dir),
		options:    options,
		drop:       drop,
	}
	return c
}

// CurrentIndex returns the selected option's position.
func (c *ComboBox) CurrentIndex() int { return c.index }

// CurrentText returns the selected option's text.
func (c *ComboBox) CurrentText() string { return c.options[c.index] }

// SetSelection selects the option at the given position. Out of range is
// a no-op.
func (c *ComboBox) SetSelection(index int) {
	if index < 0 || index >= len(c.options) {
		return
	}
	c.index = index
	c.Text = c.options[index]
}

// SetWindow binds the combo box and materializes the option rows on the
// first attachment.
func (c *ComboBox) SetWindow(win Window) {
	c.Expandable.SetWindow(win)
	if c.populated {
		return
	}
	c.populated = true
	for i, option := range c.options {
		c.drop.Add(&comboOption{
			Base:  NewBase(c.rect, c.raw),
			index: i,
			text:  option,
			owner: c,
		})
	}
	c.drop.SetWindow(win)
}

// comboOption is one selectable row inside a ComboBox's drop panel. It
// knows its own index and reaches back to the owner only to select.
type comboOption struct {
	Base
	index int
	text  string
	owner *ComboBox
}

func (o *comboOption) HandleEvent(ev input.Event) Outcome {
	if !o.shown {
		return Ignored
	}
	if o.HandleHover(ev) {
		return Handled
	}
	if o.Clicked(ev) != 0 {
		o.owner.SetSelection(o.index)
		o.owner.SetExpanded(false)
		return Handled
	}
	return Ignored
}

func (o *comboOption) Draw(s graphics.Surface) {
	if !o.shown {
		return
	}
	fill := o.colors.Background
	if o.hovered {
		fill = o.colors.Highlight
	}
	s.FillRectBordered(o.rect, 1, fill, o.colors.Line)
	s.DrawText(o.rect, o.text, o.fontOrNil(), o.colors.Text, true, true)
}
