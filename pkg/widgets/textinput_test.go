package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomekTTX/sdlw/pkg/geometry"
	"github.com/TomekTTX/sdlw/pkg/input"
)

func newTestInput(initial string) *TextInput {
	return NewTextInput(geometry.Rect{X: 10, Y: 10, W: 150, H: 30}, testPalette, initial, false)
}

func typeText(t *TextInput, s string) {
	t.HandleEvent(input.Text{Text: s})
}

func key(t *TextInput, k input.Key) Outcome {
	return t.HandleEvent(input.KeyDown{Key: k})
}

func TestTextInputClickActivates(t *testing.T) {
	ti := newTestInput("")
	require.False(t, ti.Active())

	assert.Equal(t, Handled, ti.HandleEvent(press(20, 20)))
	assert.True(t, ti.Active())
}

func TestTextInputIgnoresTextWhileInactive(t *testing.T) {
	ti := newTestInput("")
	assert.Equal(t, Ignored, ti.HandleEvent(input.Text{Text: "x"}))
	assert.Empty(t, ti.Text())
}

func TestTextInputTypingInsertsAtCaret(t *testing.T) {
	ti := newTestInput("")
	ti.Activate()

	typeText(ti, "helo")
	key(ti, input.KeyLeft)
	typeText(ti, "l")
	assert.Equal(t, "hello", ti.Text())
	assert.Equal(t, 4, ti.Caret())
}

func TestTextInputNavigationAndEditing(t *testing.T) {
	ti := newTestInput("abc")
	ti.Activate()

	key(ti, input.KeyEnd)
	assert.Equal(t, 3, ti.Caret())
	key(ti, input.KeyBackspace)
	assert.Equal(t, "ab", ti.Text())

	key(ti, input.KeyHome)
	assert.Zero(t, ti.Caret())
	key(ti, input.KeyDelete)
	assert.Equal(t, "b", ti.Text())
	assert.Zero(t, ti.Caret())
}

func TestTextInputCaretStaysInBounds(t *testing.T) {
	ti := newTestInput("ab")
	ti.Activate()

	key(ti, input.KeyHome)
	key(ti, input.KeyLeft)
	key(ti, input.KeyBackspace)
	assert.Zero(t, ti.Caret(), "caret never goes below zero")
	assert.Equal(t, "ab", ti.Text(), "backspace at the start deletes nothing")

	key(ti, input.KeyEnd)
	key(ti, input.KeyRight)
	assert.Equal(t, 2, ti.Caret(), "caret never passes the end")
	key(ti, input.KeyDelete)
	assert.Equal(t, "ab", ti.Text(), "delete at the end deletes nothing")
}

func TestTextInputInsertDeleteRoundTrip(t *testing.T) {
	ti := newTestInput("abcd")
	ti.Activate()

	key(ti, input.KeyHome)
	key(ti, input.KeyRight)
	key(ti, input.KeyRight)
	typeText(ti, "X")
	require.Equal(t, "abXcd", ti.Text())

	key(ti, input.KeyBackspace)
	assert.Equal(t, "abcd", ti.Text(), "deleting the inserted character restores the text")
	assert.Equal(t, 2, ti.Caret())
}

func TestTextInputUnknownKeyIgnored(t *testing.T) {
	ti := newTestInput("")
	ti.Activate()
	assert.Equal(t, Ignored, key(ti, input.KeyUnknown))
}

func TestTextInputReturnConfirms(t *testing.T) {
	ti := newTestInput("")
	var confirmed []string
	ti.SetCallback(func(s string) { confirmed = append(confirmed, s) })
	ti.Activate()

	typeText(ti, "done")
	require.Equal(t, Handled, key(ti, input.KeyReturn))
	assert.False(t, ti.Active())
	assert.Equal(t, []string{"done"}, confirmed)
}

func TestTextInputOutsideClickDeactivatesButStaysVisible(t *testing.T) {
	ti := newTestInput("kept")
	var confirmed string
	ti.SetCallback(func(s string) { confirmed = s })
	ti.Activate()

	assert.Equal(t, Ignored, ti.HandleEvent(press(300, 300)),
		"the deactivating click must fall through to whatever it was aimed at")
	assert.False(t, ti.Active())
	assert.Equal(t, "kept", confirmed, "deactivation always confirms")
}

func TestTextInputAutoHide(t *testing.T) {
	ti := NewTextInput(geometry.Rect{X: 10, Y: 10, W: 150, H: 30}, testPalette, "", true)
	assert.False(t, ti.Visible(), "an auto-hide field starts hidden")

	ti.Activate()
	assert.True(t, ti.Visible())
	ti.Deactivate()
	assert.False(t, ti.Visible())
}

func TestTextInputClear(t *testing.T) {
	ti := newTestInput("junk")
	ti.Activate()
	key(ti, input.KeyEnd)

	ti.Clear()
	assert.Empty(t, ti.Text())
	assert.Zero(t, ti.Caret())
}

func TestTextInputMultiRuneTextEvent(t *testing.T) {
	ti := newTestInput("")
	ti.Activate()

	typeText(ti, "żółw")
	assert.Equal(t, "żółw", ti.Text())
	assert.Equal(t, 4, ti.Caret(), "the caret counts runes, not bytes")
}
