package widgets

import (
	"fmt"
	"strconv"

	"github.com/TomekTTX/sdlw/pkg/geometry"
	"github.com/TomekTTX/sdlw/pkg/graphics"
	"github.com/TomekTTX/sdlw/pkg/input"
)

// colorSelect panel geometry. The three channel sliders sit in a fixed
// grid inside the drop panel; the hex input sits beside the trigger,
// outside the panel.
const (
	colorPanelW   = 350
	colorPanelH   = 140
	sliderRange   = 255
	sliderHeight  = 13
	sliderOffsetX = 70
	sliderOffsetY = 30
	sliderPitch   = 35
)

// ColorSelect is an Expandable 24-bit color picker. Its drop panel holds
// one slider per RGB channel; a hex TextInput beside the trigger is a
// second view of the same value. Moving a slider refreshes the hex text;
// confirming the input pushes the parsed channels back into the sliders.
type ColorSelect struct {
	Expandable
	sliders   [3]*Slider
	hexInput  *TextInput
	populated bool
}

// NewColorSelect creates a collapsed color picker.
func NewColorSelect(rect geometry.Rect, palette graphics.Palette, dir Dir) *ColorSelect {
	panel := NewPanel(geometry.Rect{W: colorPanelW, H: colorPanelH}, 0, 0)
	c := &ColorSelect{
		Expandable: *NewExpandable(rect, "", palette, panel, dir),
	}
	c.hexInput = NewTextInput(
		geometry.Rect{X: rect.X + rect.W, Y: rect.Y, W: rect.W, H: 30},
		palette, "", true,
	)
	c.hexInput.SetCallback(func(text string) {
		c.SetHex(text)
	})
	return c
}

// Color returns the current 24-bit value assembled from the sliders.
// Zero until the picker is attached to a window.
func (c *ColorSelect) Color() graphics.RGB {
	if !c.populated {
		return 0
	}
	return graphics.RGB(c.sliders[0].TrueValue()<<16 |
		c.sliders[1].TrueValue()<<8 |
		c.sliders[2].TrueValue())
}

// Hex renders the current value as six uppercase hex digits.
func (c *ColorSelect) Hex() string {
	return fmt.Sprintf("%06X", int(c.Color()))
}

// SetColor pushes a 24-bit value into the three channel sliders.
// Before attachment there are no sliders yet and the call is a no-op.
func (c *ColorSelect) SetColor(color graphics.RGB) {
	if !c.populated {
		return
	}
	for i, s := range c.sliders {
		s.SetValue(int(color>>(16-8*i)) & 0xFF)
	}
}

// SetHex parses the first six characters of a hex string into the three
// channels. A malformed or too-short string is rejected with no state
// change.
func (c *ColorSelect) SetHex(hex string) bool {
	if len(hex) < 6 {
		return false
	}
	value, err := strconv.ParseUint(hex[:6], 16, 32)
	if err != nil {
		return false
	}
	c.SetColor(graphics.RGB(value))
	return true
}

// SetWindow binds the picker and materializes the channel sliders on the
// first attachment; slider construction needs the window for color
// mapping.
func (c *ColorSelect) SetWindow(win Window) {
	c.Expandable.SetWindow(win)
	if c.populated {
		c.hexInput.SetWindow(win)
		c.hexInput.MapColors(win.Surface())
		return
	}
	c.populated = true
	pr := c.panel.Rect()
	for i := range c.sliders {
		channelPalette := c.raw
		channelPalette.Background = graphics.RGB(0xFF0000 >> (8 * i))
		sliderRect := geometry.Rect{
			X: pr.X + sliderOffsetX,
			Y: pr.Y + sliderOffsetY + sliderPitch*i,
			W: sliderRange,
			H: sliderHeight,
		}
		c.sliders[i] = NewSliderOriented(sliderRect, 0, sliderRange, 1, channelPalette, false, sliderHeight)
		c.panel.Add(c.sliders[i])
	}
	c.panel.SetColors(c.raw)
	c.panel.SetWindow(win)
	c.panel.MapColors(win.Surface())
	c.hexInput.SetWindow(win)
	c.hexInput.MapColors(win.Surface())
}

// Translate moves the trigger, panel and the hex input together.
func (c *ColorSelect) Translate(dx, dy int) {
	c.Expandable.Translate(dx, dy)
	c.hexInput.Translate(dx, dy)
}

// HandleEvent cycles the hex input with clicks on the trigger: while the
// input is visible a click confirms it and collapses the picker; while
// expanded a click opens a fresh input. Everything else routes to the
// input first, then the Expandable logic.
func (c *ColorSelect) HandleEvent(ev input.Event) Outcome {
	if !c.shown {
		return Ignored
	}
	if c.Clicked(ev) != 0 {
		if c.hexInput.Visible() {
			c.hexInput.Deactivate()
			c.Toggle()
			return Handled
		}
		if c.expanded {
			c.hexInput.Clear()
			c.hexInput.Activate()
			return Handled
		}
	}
	if out := c.hexInput.HandleEvent(ev); out.Consumed() {
		return out
	}
	return c.Expandable.HandleEvent(ev)
}

// Draw renders the trigger with a live swatch and the refreshed hex
// caption, the panel with a tall preview while expanded, and the input.
func (c *ColorSelect) Draw(s graphics.Surface) {
	if !c.shown {
		return
	}
	current := s.ResolveColor(c.Color())
	c.Text = "#" + c.Hex()
	fill := c.colors.Background
	if c.hovered {
		fill = c.colors.Highlight
	}
	s.FillRectBordered(c.rect, 1, fill, c.colors.Line)
	s.DrawText(c.rect, c.Text, c.fontOrNil(), c.colors.Text, true, true)
	swatch := geometry.Rect{X: c.rect.X + 10, Y: c.rect.Y + 10, W: 20, H: 20}
	s.FillRectBordered(swatch, 1, current, c.colors.Line)
	if c.expanded {
		c.panel.Draw(s)
		pr := c.panel.Rect()
		preview := geometry.Rect{X: pr.X + 20, Y: pr.Y + 20, W: 30, H: 100}
		s.FillRectBordered(preview, 1, current, c.colors.Line)
	}
	c.hexInput.Draw(s)
}
