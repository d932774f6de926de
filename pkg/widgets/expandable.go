package widgets

import (
	"github.com/TomekTTX/sdlw/pkg/geometry"
	"github.com/TomekTTX/sdlw/pkg/graphics"
	"github.com/TomekTTX/sdlw/pkg/input"
)

// Dir selects where an Expandable's drop panel opens relative to its
// trigger. The diagonal variants account for the trigger's own size
// versus the panel's, so the panel edge stays flush with the trigger.
type Dir int

const (
	DirUp Dir = iota
	DirDown
	DirLeftUp
	DirRightUp
	DirLeftDown
	DirRightDown
)

// DropPanel is the container an Expandable shows and hides. Panel and
// ScrollPanel both satisfy it.
type DropPanel interface {
	Component
	Add(c Component) Component
	SetColors(p graphics.Palette)
	MapColors(m graphics.ColorMapper)
}

// Expandable is a clickable trigger that toggles a drop panel. The panel
// is hidden exactly when the Expandable is collapsed, and its position is
// always trigger position + directional offset. While expanded, events go
// to the panel first; a click outside the panel collapses it but reports
// Forwarded so the click stays visible above.
type Expandable struct {
	Base
	Text      string
	expanded  bool
	panel     DropPanel
	expOffset geometry.Point
}

// NewExpandable creates a collapsed expandable owning the given panel.
func NewExpandable(rect geometry.Rect, text string, palette graphics.Palette, panel DropPanel, dir Dir) *Expandable {
	e := &Expandable{
		Base:  NewBase(rect, palette),
		Text:  text,
		panel: panel,
	}
	panel.SetVisible(false)
	e.SetExpandDir(dir)
	return e
}

// Panel returns the owned drop panel.
func (e *Expandable) Panel() DropPanel { return e.panel }

// Expanded reports whether the drop panel is open.
func (e *Expandable) Expanded() bool { return e.expanded }

// SetExpanded opens or closes the drop panel. The panel's visibility
// always equals the expanded state.
func (e *Expandable) SetExpanded(v bool) {
	e.expanded = v
	e.panel.SetVisible(v)
}

// Toggle flips the expanded state.
func (e *Expandable) Toggle() {
	e.SetExpanded(!e.expanded)
}

// SetExpandDir recomputes the panel offset for the given direction and
// repositions the panel immediately.
func (e *Expandable) SetExpandDir(dir Dir) {
	pr := e.panel.Rect()
	switch dir {
	case DirUp:
		e.expOffset = geometry.Point{X: 0, Y: -pr.H}
	case DirDown:
		e.expOffset = geometry.Point{X: 0, Y: e.rect.H}
	case DirLeftUp:
		e.expOffset = geometry.Point{X: -pr.W, Y: -(pr.H - e.rect.H)}
	case DirRightUp:
		e.expOffset = geometry.Point{X: e.rect.W, Y: -(pr.H - e.rect.H)}
	case DirLeftDown:
		e.expOffset = geometry.Point{X: -pr.W, Y: 0}
	case DirRightDown:
		e.expOffset = geometry.Point{X: e.rect.W, Y: 0}
	}
	e.adjustPanel()
}

// adjustPanel snaps the panel to trigger position + offset.
func (e *Expandable) adjustPanel() {
	SetPos(e.panel, e.rect.X+e.expOffset.X, e.rect.Y+e.expOffset.Y)
}

// SetWindow binds the trigger and the owned panel.
func (e *Expandable) SetWindow(win Window) {
	e.Base.SetWindow(win)
	e.panel.SetWindow(win)
	e.panel.MapColors(win.Surface())
}

// Translate moves the trigger and the panel together.
func (e *Expandable) Translate(dx, dy int) {
	e.Base.Translate(dx, dy)
	e.panel.Translate(dx, dy)
}

// HandleEvent routes events with panel priority: hover first, then the
// panel contents, then toggle-on-single-click, then collapse on an
// outside click. Toggling and collapsing report Forwarded so outer
// containers still see the click.
func (e *Expandable) HandleEvent(ev input.Event) Outcome {
	if !e.shown {
		return Ignored
	}
	if e.HandleHover(ev) {
		return Handled
	}
	if out := e.panel.HandleEvent(ev); out.Consumed() {
		return out
	}
	if e.Clicked(ev) == 1 {
		e.Toggle()
		return Forwarded
	}
	if down, ok := ev.(input.MouseButtonDown); ok && e.expanded && !e.panel.Rect().Contains(down.Pos) {
		e.SetExpanded(false)
		return Forwarded
	}
	return Ignored
}

// Draw renders the trigger and, when expanded, the panel over it.
func (e *Expandable) Draw(s graphics.Surface) {
	if !e.shown {
		return
	}
	fill := e.colors.Background
	if e.hovered {
		fill = e.colors.Highlight
	}
	s.FillRectBordered(e.rect, 1, fill, e.colors.Line)
	s.DrawText(e.rect, e.Text, e.fontOrNil(), e.colors.Text, true, true)
	e.panel.Draw(s)
}
