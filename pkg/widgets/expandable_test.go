package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomekTTX/sdlw/pkg/geometry"
)

func newTestExpandable(dir Dir) (*Expandable, *Panel) {
	panel := NewPanel(geometry.Rect{W: 120, H: 90}, 0x101010, 0x808080)
	e := NewExpandable(geometry.Rect{X: 200, Y: 200, W: 60, H: 30}, "menu", testPalette, panel, dir)
	return e, panel
}

func TestExpandableStartsCollapsed(t *testing.T) {
	e, panel := newTestExpandable(DirDown)
	assert.False(t, e.Expanded())
	assert.False(t, panel.Visible(), "panel visibility mirrors the expanded state")
}

func TestExpandableClickToggles(t *testing.T) {
	e, panel := newTestExpandable(DirDown)

	assert.Equal(t, Forwarded, e.HandleEvent(press(210, 210)))
	assert.True(t, e.Expanded())
	assert.True(t, panel.Visible())

	assert.Equal(t, Forwarded, e.HandleEvent(press(210, 210)))
	assert.False(t, e.Expanded())
	assert.False(t, panel.Visible())
}

func TestExpandableDoubleClickDoesNotExpand(t *testing.T) {
	e, _ := newTestExpandable(DirDown)
	require.False(t, e.Expanded())

	assert.Equal(t, Ignored, e.HandleEvent(doubleClick(210, 210)))
	assert.False(t, e.Expanded(), "only single clicks toggle")
}

func TestExpandableOutsideClickCollapsesAndForwards(t *testing.T) {
	e, _ := newTestExpandable(DirDown)
	e.SetExpanded(true)

	assert.Equal(t, Forwarded, e.HandleEvent(press(500, 500)),
		"the collapsing click stays visible to components above")
	assert.False(t, e.Expanded())
}

func TestExpandablePanelSeesEventsFirst(t *testing.T) {
	e, panel := newTestExpandable(DirDown)
	fired := 0
	// The panel sits at (200, 230); put a button at its top-left corner.
	panel.Add(NewButton(geometry.Rect{X: 200, Y: 230, W: 40, H: 20}, "b", testPalette, func(*Button) { fired++ }))
	e.SetExpanded(true)

	assert.Equal(t, Handled, e.HandleEvent(press(210, 240)))
	assert.Equal(t, 1, fired)
	assert.True(t, e.Expanded(), "a click consumed inside the panel must not collapse it")
}

func TestExpandablePanelPositionPerDirection(t *testing.T) {
	cases := []struct {
		dir  Dir
		want geometry.Point
	}{
		{DirUp, geometry.Point{X: 200, Y: 110}},
		{DirDown, geometry.Point{X: 200, Y: 230}},
		{DirLeftUp, geometry.Point{X: 80, Y: 140}},
		{DirRightUp, geometry.Point{X: 260, Y: 140}},
		{DirLeftDown, geometry.Point{X: 80, Y: 200}},
		{DirRightDown, geometry.Point{X: 260, Y: 200}},
	}
	for _, tc := range cases {
		_, panel := newTestExpandable(tc.dir)
		assert.Equal(t, tc.want, panel.Rect().Pos(), "dir %d", tc.dir)
	}
}

func TestExpandableTranslateKeepsPanelAttached(t *testing.T) {
	e, panel := newTestExpandable(DirDown)
	offset := panel.Rect().Pos().Sub(e.Rect().Pos())

	e.Translate(-50, 17)
	assert.Equal(t, offset, panel.Rect().Pos().Sub(e.Rect().Pos()),
		"the panel keeps its directional offset after a move")
}

func TestExpandableSetWindowBindsPanel(t *testing.T) {
	win := newStubWindow()
	e, panel := newTestExpandable(DirDown)
	e.SetWindow(win)
	assert.Equal(t, win, panel.Win())
}
