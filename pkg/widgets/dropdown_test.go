package widgets

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomekTTX/sdlw/pkg/geometry"
)

func newTestDropdown(flags DropdownFlags) *Dropdown {
	d := NewDropdown(
		geometry.Rect{X: 100, Y: 100, W: 80, H: 25},
		geometry.Rect{W: 100, H: 20},
		"items", flags, 3, testPalette, DirDown,
	)
	d.SetWindow(newStubWindow())
	return d
}

func rowLabel(text string) *Label {
	return NewLabel(geometry.Rect{W: 100, H: 20}, text, 0xFFFFFF)
}

// rowTexts reads the user widgets back in row order.
func rowTexts(d *Dropdown) []string {
	texts := make([]string, d.Len())
	for i := range texts {
		texts[i] = d.RowWidget(i).(*Label).Text
	}
	return texts
}

func requireIndicesMatchPositions(t *testing.T, d *Dropdown) {
	t.Helper()
	for i, row := range d.rows {
		require.Equal(t, i, row.Index(), "row %d carries a stale index", i)
	}
}

func TestDropdownAddAssignsSequentialIndices(t *testing.T) {
	d := newTestDropdown(DropdownAdd | DropdownDelete | DropdownSwap)
	for i := 0; i < 3; i++ {
		d.Add(rowLabel(fmt.Sprintf("item %d", i)))
	}

	assert.Equal(t, 3, d.Len())
	requireIndicesMatchPositions(t, d)
	assert.Equal(t, []string{"item 0", "item 1", "item 2"}, rowTexts(d))
}

func TestDropdownRemoveReindexesSubsequentRows(t *testing.T) {
	d := newTestDropdown(DropdownDelete)
	for i := 0; i < 3; i++ {
		d.Add(rowLabel(fmt.Sprintf("item %d", i)))
	}

	d.RemoveAt(1)
	assert.Equal(t, 2, d.Len())
	requireIndicesMatchPositions(t, d)
	assert.Equal(t, []string{"item 0", "item 2"}, rowTexts(d))
}

func TestDropdownSwapExchangesContentNotIndices(t *testing.T) {
	d := newTestDropdown(DropdownSwap)
	d.Add(rowLabel("a"))
	d.Add(rowLabel("b"))

	d.Swap(0, 1)
	requireIndicesMatchPositions(t, d)
	assert.Equal(t, []string{"b", "a"}, rowTexts(d))
}

func TestDropdownAddRemoveSwapScenario(t *testing.T) {
	d := newTestDropdown(DropdownAdd | DropdownDelete | DropdownSwap)
	for i := 0; i < 3; i++ {
		d.Add(rowLabel(fmt.Sprintf("item %d", i)))
	}

	d.RemoveAt(1)
	d.Swap(0, 1)
	requireIndicesMatchPositions(t, d)
	assert.Equal(t, []string{"item 2", "item 0"}, rowTexts(d))
}

func TestDropdownOutOfRangeMutationsAreNoOps(t *testing.T) {
	d := newTestDropdown(DropdownDelete | DropdownSwap)
	d.Add(rowLabel("only"))

	d.RemoveAt(5)
	d.Swap(0, 3)
	d.Swap(-1, 0)
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, []string{"only"}, rowTexts(d))
}

func TestDropdownAddButtonUsesFactory(t *testing.T) {
	d := newTestDropdown(DropdownAdd)
	d.SetFactory(func(index int) Component {
		return rowLabel(fmt.Sprintf("made %d", index))
	})

	require.Equal(t, Forwarded, d.HandleEvent(press(110, 110)))
	require.True(t, d.Expanded())

	// The add button sits below the row window, centered in the spare
	// row of panel height.
	require.Equal(t, Handled, d.HandleEvent(press(112, 195)))
	require.Equal(t, Handled, d.HandleEvent(press(112, 195)))
	assert.Equal(t, []string{"made 0", "made 1"}, rowTexts(d))
	requireIndicesMatchPositions(t, d)
}

func TestDropdownAddButtonInertWhileCollapsed(t *testing.T) {
	d := newTestDropdown(DropdownAdd)
	d.SetFactory(func(index int) Component { return rowLabel("x") })

	d.HandleEvent(press(112, 195))
	assert.Zero(t, d.Len(), "the add button must not react while the panel is closed")
}

func TestDropdownRowDeleteButtonRemovesItsRow(t *testing.T) {
	d := newTestDropdown(DropdownDelete | DropdownSwap)
	for i := 0; i < 3; i++ {
		d.Add(rowLabel(fmt.Sprintf("item %d", i)))
	}
	d.SetExpanded(true)

	// First row spans y in [125, 145); its delete button is the third
	// trailer button.
	require.Equal(t, Handled, d.HandleEvent(press(252, 135)))
	assert.Equal(t, []string{"item 1", "item 2"}, rowTexts(d))
	requireIndicesMatchPositions(t, d)
}

func TestDropdownRowSwapButtonsActOnCurrentPosition(t *testing.T) {
	d := newTestDropdown(DropdownSwap)
	d.Add(rowLabel("a"))
	d.Add(rowLabel("b"))
	d.SetExpanded(true)

	// Move-down button of the first row.
	require.Equal(t, Handled, d.HandleEvent(press(232, 135)))
	require.Equal(t, []string{"b", "a"}, rowTexts(d))

	// The same widget now sits in the second row; its move-up button
	// brings it back.
	require.Equal(t, Handled, d.HandleEvent(press(212, 155)))
	assert.Equal(t, []string{"a", "b"}, rowTexts(d))
	requireIndicesMatchPositions(t, d)
}

func TestDropdownSwapAtListEdgeIsNoOp(t *testing.T) {
	d := newTestDropdown(DropdownSwap)
	d.Add(rowLabel("a"))
	d.Add(rowLabel("b"))
	d.SetExpanded(true)

	// Move-up on the first row has nowhere to go.
	require.Equal(t, Handled, d.HandleEvent(press(212, 135)))
	assert.Equal(t, []string{"a", "b"}, rowTexts(d))
}
