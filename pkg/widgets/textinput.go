package widgets

import (
	"github.com/TomekTTX/sdlw/pkg/geometry"
	"github.com/TomekTTX/sdlw/pkg/graphics"
	"github.com/TomekTTX/sdlw/pkg/input"
)

// textPadding is the left inset of the rendered text.
const textPadding = 10

// TextInput is a single-line editable text field. Clicking it activates
// editing; Return or a click outside deactivates it. While active, text
// events insert at the caret and navigation keys move it. The caret
// offset always stays within [0, len(text)].
//
// With auto-hide set, the field stays hidden until activated and hides
// again on deactivation; ColorSelect uses this for its hex entry.
type TextInput struct {
	Base
	text      []rune
	caret     int
	active    bool
	autoHide  bool
	onConfirm func(string)
}

// NewTextInput creates a text field with the given initial contents.
func NewTextInput(rect geometry.Rect, palette graphics.Palette, initial string, autoHide bool) *TextInput {
	t := &TextInput{
		Base:     NewBase(rect, palette),
		text:     []rune(initial),
		autoHide: autoHide,
	}
	if autoHide {
		t.Hide()
	}
	return t
}

// Text returns the current contents.
func (t *TextInput) Text() string { return string(t.text) }

// Caret returns the caret offset in runes.
func (t *TextInput) Caret() int { return t.caret }

// Active reports whether the field is in editing state.
func (t *TextInput) Active() bool { return t.active }

// Clear empties the buffer and resets the caret.
func (t *TextInput) Clear() {
	t.text = t.text[:0]
	t.caret = 0
}

// SetAutoHide controls whether the field hides itself while inactive.
func (t *TextInput) SetAutoHide(v bool) { t.autoHide = v }

// SetCallback registers the confirm callback, invoked with the final text
// whenever the field deactivates.
func (t *TextInput) SetCallback(onConfirm func(string)) {
	t.onConfirm = onConfirm
}

// Activate begins editing, un-hiding the field if auto-hide is set.
func (t *TextInput) Activate() {
	t.active = true
	if t.autoHide {
		t.Show()
	}
}

// Deactivate stops editing, re-hides an auto-hide field and invokes the
// confirm callback with the final text.
func (t *TextInput) Deactivate() {
	t.active = false
	if t.autoHide {
		t.Hide()
	}
	if t.onConfirm != nil {
		t.onConfirm(string(t.text))
	}
}

// HandleEvent activates on a click while inactive; while active it
// consumes text and key events. A click outside deactivates but reports
// Ignored so the click stays visible to whatever is underneath.
func (t *TextInput) HandleEvent(ev input.Event) Outcome {
	if !t.shown {
		return Ignored
	}
	if !t.active {
		if t.Clicked(ev) != 0 {
			t.Activate()
			return Handled
		}
		return Ignored
	}
	if t.ClickedOutside(ev) != 0 {
		t.Deactivate()
		return Ignored
	}
	switch e := ev.(type) {
	case input.Text:
		for _, r := range e.Text {
			t.InsertRune(r, t.caret)
			t.caret++
		}
		return Handled
	case input.KeyDown:
		if t.handleKey(e.Key) {
			return Handled
		}
	}
	return Ignored
}

// handleKey applies a navigation or editing key, clamping the caret.
func (t *TextInput) handleKey(key input.Key) bool {
	switch key {
	case input.KeyLeft:
		t.caret--
	case input.KeyRight:
		t.caret++
	case input.KeyHome:
		t.caret = 0
	case input.KeyEnd:
		t.caret = len(t.text)
	case input.KeyDelete:
		t.DeleteAt(t.caret)
	case input.KeyBackspace:
		t.caret--
		t.DeleteAt(t.caret)
	case input.KeyReturn:
		t.Deactivate()
	default:
		return false
	}
	if t.caret < 0 {
		t.caret = 0
	}
	if t.caret > len(t.text) {
		t.caret = len(t.text)
	}
	return true
}

// Draw renders the field, highlighted while active, with the text
// left-aligned and vertically centered.
func (t *TextInput) Draw(s graphics.Surface) {
	if !t.shown {
		return
	}
	fill := t.colors.Background
	if t.active {
		fill = t.colors.Highlight
	}
	s.FillRectBordered(t.rect, 1, fill, t.colors.Line)
	textRect := geometry.Rect{X: t.rect.X + textPadding, Y: t.rect.Y, W: t.rect.W, H: t.rect.H}
	s.DrawText(textRect, string(t.text), t.fontOrNil(), t.colors.Text, false, true)
}

// InsertRune inserts a character at the given offset. Out-of-range
// offsets are a no-op.
func (t *TextInput) InsertRune(r rune, index int) {
	if index < 0 || index > len(t.text) {
		return
	}
	t.text = append(t.text, 0)
	copy(t.text[index+1:], t.text[index:])
	t.text[index] = r
}

// DeleteAt removes the character at the given offset. Out-of-range
// offsets are a no-op.
func (t *TextInput) DeleteAt(index int) {
	if index < 0 || index >= len(t.text) {
		return
	}
	t.text = append(t.text[:index], t.text[index+1:]...)
}
