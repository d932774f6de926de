package widgets

import (
	"slices"

	"github.com/TomekTTX/sdlw/pkg/geometry"
	"github.com/TomekTTX/sdlw/pkg/graphics"
	"github.com/TomekTTX/sdlw/pkg/input"
)

// DropdownFlags select which row-management affordances a Dropdown has.
type DropdownFlags uint8

const (
	// DropdownAdd gives the dropdown an add button below the row window.
	DropdownAdd DropdownFlags = 1 << iota
	// DropdownDelete gives every row a delete button.
	DropdownDelete
	// DropdownSwap gives every row move-up and move-down buttons.
	DropdownSwap
)

const (
	rowButtonSize = 16
	rowButtonGap  = 4
)

// rowTrailerWidth is the horizontal space reserved after a row's user
// widget for the management buttons.
const rowTrailerWidth = 4*rowButtonGap + 3*rowButtonSize

// Dropdown is an Expandable holding mutable, user-supplied rows. Every
// inserted widget is wrapped in a Row pairing it with the enabled
// management buttons. Row order is authoritative: after any insert,
// delete or swap, each row's cached index equals its position.
type Dropdown struct {
	Expandable
	flags     DropdownFlags
	elemRect  geometry.Rect
	drop      *ScrollPanel
	rows      []*Row
	addButton *Button
	factory   func(index int) Component
}

// NewDropdown creates an empty dropdown. elemRect is the geometry every
// inserted row widget is resized to; numShown rows are visible at a time.
func NewDropdown(rect, elemRect geometry.Rect, text string, flags DropdownFlags, numShown int, palette graphics.Palette, dir Dir) *Dropdown {
	panelRect := geometry.Rect{
		W: elemRect.W + rowTrailerWidth,
		H: elemRect.H * (numShown + 1),
	}
	drop := NewScrollPanel(panelRect, 0, 0, numShown)
	drop.SetColors(palette)
	d := &Dropdown{
		Expandable: *NewExpandable(rect, text, palette, drop, dir),
		flags:      flags,
		elemRect:   elemRect,
		drop:       drop,
	}
	if flags&DropdownAdd != 0 {
		pr := drop.Rect()
		buttonRect := geometry.Rect{
			X: pr.X + rowButtonGap,
			Y: pr.Y + pr.H - (elemRect.H+rowButtonSize)/2,
			W: rowButtonSize,
			H: rowButtonSize,
		}
		d.addButton = NewButton(buttonRect, "+", palette, nil)
	}
	return d
}

// Len returns the number of rows.
func (d *Dropdown) Len() int { return len(d.rows) }

// RowWidget returns the user widget of the row at the given position, or
// nil out of range.
func (d *Dropdown) RowWidget(index int) Component {
	if index < 0 || index >= len(d.rows) {
		return nil
	}
	return d.rows[index].widget
}

// Add wraps the widget in a row, appends it, binds it if a window is
// already attached, and resizes it to the configured row geometry.
// Returns the user widget.
func (d *Dropdown) Add(c Component) Component {
	row := newRow(c, d, d.flags&DropdownDelete != 0, d.flags&DropdownSwap != 0)
	row.SetColors(d.raw)
	row.index = len(d.rows)
	if d.win != nil {
		row.SetWindow(d.win)
	}
	row.SetDims(d.elemRect.W+rowTrailerWidth, d.elemRect.H)
	d.rows = append(d.rows, row)
	d.drop.Add(row)
	return c
}

// RemoveAt deletes the row at the given position and reindexes every
// subsequent row so cached indices match positions again. Out of range is
// a no-op.
func (d *Dropdown) RemoveAt(index int) {
	if index < 0 || index >= len(d.rows) {
		return
	}
	d.drop.RemoveAt(index)
	d.rows = slices.Delete(d.rows, index, index+1)
	for i := index; i < len(d.rows); i++ {
		d.rows[i].index = i
	}
	d.drop.layoutContent()
}

// Swap exchanges two rows' positions and their cached indices in one
// step; one never changes without the other. Out-of-range indices are a
// no-op.
func (d *Dropdown) Swap(i, j int) {
	if i < 0 || j < 0 || i >= len(d.rows) || j >= len(d.rows) {
		return
	}
	d.drop.SwapChildren(i, j)
	d.rows[i], d.rows[j] = d.rows[j], d.rows[i]
	d.rows[i].index, d.rows[j].index = i, j
	d.drop.layoutContent()
}

// SetFactory arms the add button: each press manufactures a new row
// widget from the factory and inserts it.
func (d *Dropdown) SetFactory(factory func(index int) Component) {
	d.factory = factory
	if d.addButton == nil {
		return
	}
	d.addButton.SetCallback(func(*Button) {
		d.Add(d.factory(len(d.rows)))
	})
}

// SetWindow binds the dropdown, its panel tree and the add button.
func (d *Dropdown) SetWindow(win Window) {
	d.Expandable.SetWindow(win)
	if d.addButton != nil {
		d.addButton.SetWindow(win)
		d.addButton.MapColors(win.Surface())
	}
}

// Translate moves the trigger, the panel tree and the add button.
func (d *Dropdown) Translate(dx, dy int) {
	d.Expandable.Translate(dx, dy)
	if d.addButton != nil {
		d.addButton.Translate(dx, dy)
	}
}

// HandleEvent offers events to the add button while expanded, then to
// the Expandable routing. Any consumed event re-runs the scroll window
// pass, since row callbacks may have changed the row count or order.
func (d *Dropdown) HandleEvent(ev input.Event) Outcome {
	if !d.shown {
		return Ignored
	}
	if d.expanded && d.addButton != nil {
		if out := d.addButton.HandleEvent(ev); out.Consumed() {
			return out
		}
	}
	if out := d.Expandable.HandleEvent(ev); out.Consumed() {
		d.drop.layoutContent()
		return out
	}
	return Ignored
}

// Draw renders the Expandable and, while expanded, the add button.
func (d *Dropdown) Draw(s graphics.Surface) {
	d.Expandable.Draw(s)
	if d.shown && d.expanded && d.addButton != nil {
		d.addButton.Draw(s)
	}
}

// Row pairs a user widget with the dropdown's management buttons. Each
// button's callback reads the row's current index at press time, so a
// reindexed row keeps acting on the right position.
type Row struct {
	Base
	index  int
	owner  *Dropdown
	widget Component
	up     *Button
	down   *Button
	del    *Button
}

func newRow(widget Component, owner *Dropdown, allowDel, allowSwap bool) *Row {
	r := &Row{
		Base:   NewBase(geometry.Rect{}, owner.raw),
		owner:  owner,
		widget: widget,
	}
	wr := widget.Rect()
	if allowDel {
		buttonRect := geometry.Rect{
			X: wr.X + wr.W + 2*rowButtonSize + 3*rowButtonGap,
			Y: wr.Y + (wr.H-rowButtonSize)/2,
			W: rowButtonSize,
			H: rowButtonSize,
		}
		r.del = NewButton(buttonRect, "X", owner.raw, func(*Button) {
			r.owner.RemoveAt(r.index)
		})
	}
	if allowSwap {
		buttonRect := geometry.Rect{
			X: wr.X + wr.W + rowButtonGap,
			Y: wr.Y + (wr.H-rowButtonSize)/2,
			W: rowButtonSize,
			H: rowButtonSize,
		}
		r.up = NewButton(buttonRect, "U", owner.raw, func(*Button) {
			r.owner.Swap(r.index, r.index-1)
		})
		buttonRect.X += rowButtonSize + rowButtonGap
		r.down = NewButton(buttonRect, "D", owner.raw, func(*Button) {
			r.owner.Swap(r.index, r.index+1)
		})
	}
	return r
}

// Index returns the row's cached position.
func (r *Row) Index() int { return r.index }

func (r *Row) eachPart(f func(Component)) {
	f(r.widget)
	if r.up != nil {
		f(r.up)
	}
	if r.down != nil {
		f(r.down)
	}
	if r.del != nil {
		f(r.del)
	}
}

// Translate moves the row and all its parts.
func (r *Row) Translate(dx, dy int) {
	r.Base.Translate(dx, dy)
	r.eachPart(func(c Component) { c.Translate(dx, dy) })
}

// SetWindow binds and color-maps all the row's parts.
func (r *Row) SetWindow(win Window) {
	r.Base.SetWindow(win)
	r.eachPart(func(c Component) {
		c.SetWindow(win)
		c.MapColors(win.Surface())
	})
}

// HandleEvent offers the event to the user widget first, then to the
// buttons, returning the first non-Ignored outcome.
func (r *Row) HandleEvent(ev input.Event) Outcome {
	if !r.shown {
		return Ignored
	}
	out := Ignored
	r.eachPart(func(c Component) {
		if out.Consumed() {
			return
		}
		out = c.HandleEvent(ev)
	})
	return out
}

// Draw renders the user widget and the buttons.
func (r *Row) Draw(s graphics.Surface) {
	if !r.shown {
		return
	}
	r.eachPart(func(c Component) { c.Draw(s) })
}
