// Package app owns the window and its run loop: the named registry of
// top-level components, event pumping and dispatch, and frame
// presentation. The loop is single-threaded and cooperative; one raw
// event is fully handled before the next is read, and nothing blocks
// except the fixed idle delay between polls.
package app

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/image/font"

	"github.com/TomekTTX/sdlw/pkg/graphics"
	"github.com/TomekTTX/sdlw/pkg/input"
	"github.com/TomekTTX/sdlw/pkg/widgets"
)

// Version is the toolkit version, checked against config `requires`
// constraints.
const Version = "v0.1.0"

// idleDelay is the fixed pause between poll passes.
const idleDelay = 5 * time.Millisecond

// Backend is the drawing side of a window: a Surface plus frame
// lifecycle. The software graphics.Raster satisfies it; a live host
// would wrap its native renderer instead.
type Backend interface {
	graphics.Surface
	Clear()
	Present() error
}

// State is the window lifecycle state.
type State int

const (
	// StateRun means the run loop is live or ready to start.
	StateRun State = iota
	// StateExit is the terminal state; Run returns once it is reached.
	StateExit
)

// Window is the root of a component forest. It owns the backend, the
// default font and the named top-level components, and drives the
// poll-dispatch-repaint loop.
type Window struct {
	width   int
	height  int
	title   string
	backend Backend
	source  input.Source
	face    font.Face
	state   State
	log     zerolog.Logger

	names         []string
	components    map[string]widgets.Component
	pendingUpdate bool
}

// Option configures a Window at construction.
type Option func(*Window)

// WithFont sets the window's default font family and size. A family that
// fails to load degrades to the bitmap fallback face.
func WithFont(family graphics.FontFamily, size float64) Option {
	return func(w *Window) {
		face, err := graphics.LoadFont(family, size)
		if err != nil {
			w.log.Warn().Err(err).Stringer("family", family).Msg("font load failed, using fallback")
			face = graphics.FallbackFace()
		}
		w.face = face
	}
}

// WithLogger attaches a logger to the window. The default logger is
// disabled, so embedding hosts pay nothing unless they opt in.
func WithLogger(log zerolog.Logger) Option {
	return func(w *Window) {
		w.log = log
	}
}

// NewWindow creates a window over the given backend and event source.
// A nil backend or source is an initialization error; per the error
// contract this is the only failure that prevents the window from
// operating at all.
func NewWindow(width, height int, title string, backend Backend, source input.Source, opts ...Option) (*Window, error) {
	w := &Window{
		width:      width,
		height:     height,
		title:      title,
		backend:    backend,
		source:     source,
		components: make(map[string]widgets.Component),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if backend == nil {
		w.state = StateExit
		return nil, &Error{Op: "app.NewWindow", Kind: KindInit, Err: errors.New("no drawing backend")}
	}
	if source == nil {
		w.state = StateExit
		return nil, &Error{Op: "app.NewWindow", Kind: KindInit, Err: errors.New("no event source")}
	}
	if w.face == nil {
		WithFont(graphics.FamilyMono, 14)(w)
	}
	w.pendingUpdate = true
	return w, nil
}

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// Size returns the window dimensions.
func (w *Window) Size() (int, int) { return w.width, w.height }

// Font returns the window's default font face.
func (w *Window) Font() font.Face { return w.face }

// Surface returns the drawing surface shared by all components.
func (w *Window) Surface() graphics.Surface { return w.backend }

// AddComponent registers a named top-level component, resolving its
// colors and binding it (and its whole existing sub-tree) to the window.
// Registration order is dispatch and draw order. Re-using a name
// replaces the component but keeps its original position.
func (w *Window) AddComponent(name string, c widgets.Component) widgets.Component {
	c.MapColors(w.backend)
	c.SetWindow(w)
	if _, exists := w.components[name]; !exists {
		w.names = append(w.names, name)
	}
	w.components[name] = c
	w.pendingUpdate = true
	w.log.Debug().Str("component", name).Msg("component added")
	return c
}

// Component returns the named top-level component, or nil if absent.
func (w *Window) Component(name string) widgets.Component {
	return w.components[name]
}

// Stop moves the window to its terminal state; Run returns at the next
// loop iteration.
func (w *Window) Stop() {
	w.state = StateExit
}

// Run drives the blocking loop: pause, pump events, repaint if anything
// changed, until the terminal state is reached.
func (w *Window) Run() {
	w.log.Info().Str("title", w.title).Msg("run loop started")
	for w.state == StateRun {
		time.Sleep(idleDelay)
		w.pumpEvents()
		if w.pendingUpdate {
			w.drawFrame()
		}
	}
	w.log.Info().Msg("run loop stopped")
}

// pumpEvents drains the source, handling each event fully before the
// next is read. Window-level events (quit, escape) are checked first;
// everything else is offered to the components in registration order
// until one consumes it.
func (w *Window) pumpEvents() {
	for {
		ev, ok := w.source.Poll()
		if !ok {
			return
		}
		if w.handleWindowEvent(ev) {
			continue
		}
		w.dispatch(ev)
	}
}

// handleWindowEvent intercepts events addressed to the window itself.
func (w *Window) handleWindowEvent(ev input.Event) bool {
	switch e := ev.(type) {
	case input.Quit:
		w.log.Debug().Msg("quit requested")
		w.state = StateExit
		return true
	case input.KeyUp:
		if e.Key == input.KeyEscape {
			w.log.Debug().Msg("escape pressed")
			w.state = StateExit
			return true
		}
	}
	return false
}

// dispatch offers one event to each top-level component in registration
// order. The first component that consumes it ends the pass; a Forwarded
// outcome marks a repaint but leaves the event visible to the rest.
func (w *Window) dispatch(ev input.Event) {
	for _, name := range w.names {
		out := w.components[name].HandleEvent(ev)
		if out == widgets.Ignored {
			continue
		}
		w.pendingUpdate = true
		if out == widgets.Handled {
			return
		}
	}
}

// drawFrame repaints the whole forest and presents it.
func (w *Window) drawFrame() {
	w.backend.Clear()
	for _, name := range w.names {
		w.components[name].Draw(w.backend)
	}
	if err := w.backend.Present(); err != nil {
		w.log.Error().Err(err).Msg("present failed")
	}
	w.pendingUpdate = false
}
