package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomekTTX/sdlw/pkg/geometry"
)

func newTestButton(x, y int, onClick func(*Button)) *Button {
	return NewButton(geometry.Rect{X: x, Y: y, W: 40, H: 20}, "b", testPalette, onClick)
}

func TestPanelDispatchStopsAtFirstConsumer(t *testing.T) {
	p := NewPanel(geometry.Rect{X: 0, Y: 0, W: 200, H: 200}, 0x101010, 0x808080)
	var fired []string
	// Two buttons on the same spot: only the first inserted may fire.
	p.Add(newTestButton(10, 10, func(*Button) { fired = append(fired, "first") }))
	p.Add(newTestButton(10, 10, func(*Button) { fired = append(fired, "second") }))

	require.Equal(t, Handled, p.HandleEvent(motion(15, 15)))
	require.Equal(t, Handled, p.HandleEvent(press(15, 15)))
	assert.Equal(t, []string{"first"}, fired)
}

func TestPanelForwardedOutcomePropagates(t *testing.T) {
	p := NewPanel(geometry.Rect{X: 0, Y: 0, W: 200, H: 200}, 0x101010, 0x808080)
	s := NewSlider(geometry.Rect{X: 10, Y: 50, W: 100, H: 10}, 0, 10, 1, testPalette)
	p.Add(s)

	assert.Equal(t, Forwarded, p.HandleEvent(release(15, 55)),
		"a child's Forwarded must reach the panel's caller unchanged")
}

func TestPanelTranslateCascades(t *testing.T) {
	p := NewPanel(geometry.Rect{X: 0, Y: 0, W: 200, H: 200}, 0x101010, 0x808080)
	b := newTestButton(10, 10, nil)
	p.Add(b)

	p.Translate(30, -5)
	assert.Equal(t, geometry.Rect{X: 30, Y: -5, W: 200, H: 200}, p.Rect())
	assert.Equal(t, geometry.Rect{X: 40, Y: 5, W: 40, H: 20}, b.Rect(),
		"children must move by the same delta as the panel")
}

func TestPanelRemoveAndSwap(t *testing.T) {
	p := NewPanel(geometry.Rect{X: 0, Y: 0, W: 200, H: 200}, 0x101010, 0x808080)
	a := p.Add(newTestButton(0, 0, nil))
	b := p.Add(newTestButton(0, 30, nil))
	c := p.Add(newTestButton(0, 60, nil))

	require.True(t, p.SwapChildren(0, 2))
	assert.Same(t, c, p.Child(0))
	assert.Same(t, a, p.Child(2))

	removed := p.RemoveAt(1)
	assert.Same(t, b, removed)
	assert.Equal(t, 2, p.Len())

	assert.Nil(t, p.RemoveAt(7))
	assert.False(t, p.SwapChildren(0, -1))
}

func TestPanelMutationDuringDispatchIsSafe(t *testing.T) {
	p := NewPanel(geometry.Rect{X: 0, Y: 0, W: 200, H: 200}, 0x101010, 0x808080)
	// The callback removes both children mid-dispatch; the in-flight pass
	// iterates a snapshot and must not panic or double-fire.
	p.Add(newTestButton(10, 10, func(*Button) {
		p.RemoveAt(1)
		p.RemoveAt(0)
	}))
	p.Add(newTestButton(10, 40, nil))

	assert.NotPanics(t, func() {
		p.HandleEvent(press(15, 15))
	})
	assert.Zero(t, p.Len())
}

func TestPanelBindsChildrenAddedBeforeAttachment(t *testing.T) {
	win := newStubWindow()
	p := NewPanel(geometry.Rect{X: 0, Y: 0, W: 200, H: 200}, 0x101010, 0x808080)
	early := newTestButton(10, 10, nil)
	p.Add(early)

	p.SetWindow(win)
	assert.Equal(t, win, early.Win(), "attachment must recurse into pre-existing children")
	assert.NotZero(t, early.Colors().Line, "pre-existing children must be color-mapped")

	late := newTestButton(10, 40, nil)
	p.Add(late)
	assert.Equal(t, win, late.Win(), "children added after attachment bind immediately")
}

func TestPanelHiddenIgnoresAndChildNilOutOfRange(t *testing.T) {
	p := NewPanel(geometry.Rect{X: 0, Y: 0, W: 200, H: 200}, 0x101010, 0x808080)
	p.Add(newTestButton(10, 10, func(*Button) { t.Fatal("child of a hidden panel fired") }))
	p.Hide()

	assert.Equal(t, Ignored, p.HandleEvent(press(15, 15)))
	assert.Nil(t, p.Child(5))
	assert.Nil(t, p.Child(-1))
}
