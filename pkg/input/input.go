// Package input defines the raw event union produced by a host platform
// and the non-blocking source interface the run loop polls. The toolkit
// never talks to a real event pump directly; any type that can yield
// these events one at a time can drive a window.
package input

import "github.com/TomekTTX/sdlw/pkg/geometry"

// Key identifies a non-text key the widgets care about. Hosts translate
// their native key codes into these before handing events over; keys with
// no mapping are delivered as KeyUnknown and ignored by every widget.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyReturn
	KeyEscape
)

// Event is one raw input event. It is a closed union: the variants below
// are the only implementations.
type Event interface {
	isEvent()
}

// Quit is the host's request to end the run loop.
type Quit struct{}

// KeyDown reports a key press.
type KeyDown struct {
	Key Key
}

// KeyUp reports a key release.
type KeyUp struct {
	Key Key
}

// Text delivers typed characters, already translated by the host's input
// method. It is distinct from KeyDown: navigation keys never arrive here.
type Text struct {
	Text string
}

// MouseMotion reports the pointer moving to an absolute position.
type MouseMotion struct {
	Pos geometry.Point
}

// MouseButtonDown reports a button press with the platform click count
// (1 = single click, 2 = double, ...).
type MouseButtonDown struct {
	Pos    geometry.Point
	Clicks int
}

// MouseButtonUp reports a button release.
type MouseButtonUp struct {
	Pos geometry.Point
}

// Wheel reports vertical scroll movement; positive Delta scrolls up.
type Wheel struct {
	Delta int
}

func (Quit) isEvent()            {}
func (KeyDown) isEvent()         {}
func (KeyUp) isEvent()           {}
func (Text) isEvent()            {}
func (MouseMotion) isEvent()     {}
func (MouseButtonDown) isEvent() {}
func (MouseButtonUp) isEvent()   {}
func (Wheel) isEvent()           {}

// Pos extracts the pointer position from an event, reporting whether the
// event carries one.
func Pos(ev Event) (geometry.Point, bool) {
	switch e := ev.(type) {
	case MouseMotion:
		return e.Pos, true
	case MouseButtonDown:
		return e.Pos, true
	case MouseButtonUp:
		return e.Pos, true
	default:
		return geometry.Point{}, false
	}
}

// Source yields raw events without blocking. Poll reports false when no
// event is pending.
type Source interface {
	Poll() (Event, bool)
}
