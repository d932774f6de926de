package widgets

import (
	"github.com/TomekTTX/sdlw/pkg/geometry"
	"github.com/TomekTTX/sdlw/pkg/graphics"
	"github.com/TomekTTX/sdlw/pkg/input"
)

// Label is a non-interactive line of text centered in its bounds.
type Label struct {
	Base
	Text string
}

// NewLabel creates a label with the given text color.
func NewLabel(rect geometry.Rect, text string, color graphics.RGB) *Label {
	return &Label{
		Base: NewBase(rect, graphics.Palette{Text: color}),
		Text: text,
	}
}

// HandleEvent always reports Ignored; labels never react to input.
func (l *Label) HandleEvent(ev input.Event) Outcome {
	return Ignored
}

// Draw renders the text centered in the label's bounds.
func (l *Label) Draw(s graphics.Surface) {
	if !l.shown {
		return
	}
	s.DrawText(l.rect, l.Text, l.fontOrNil(), l.colors.Text, true, true)
}
