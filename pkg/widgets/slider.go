package widgets

import (
	"math"
	"strconv"

	"github.com/TomekTTX/sdlw/pkg/geometry"
	"github.com/TomekTTX/sdlw/pkg/graphics"
	"github.com/TomekTTX/sdlw/pkg/input"
)

// defaultThumbBreadth is the thumb thickness used when none is given.
const defaultThumbBreadth = 10

// Slider selects an integer from [Min, Max] in multiples of a step. The
// raw value moves continuously while dragging; TrueValue is the raw value
// snapped to the step grid. The track is the slider's own rect; the thumb
// rectangle is derived from the raw value and recomputed on every change.
//
// The palette is used as: Extra1 track fill, Line borders, Background
// thumb, Highlight thumb while hovered or dragging.
type Slider struct {
	Base
	min, max, step int
	vertical       bool

	val      float64
	lastVal  int
	dragging bool
	thumb    geometry.Rect
	mousePos geometry.Point
	onChange func(int)
}

// NewSlider creates a horizontal slider with the default thumb size.
func NewSlider(rect geometry.Rect, min, max, step int, palette graphics.Palette) *Slider {
	return NewSliderOriented(rect, min, max, step, palette, false, defaultThumbBreadth)
}

// NewSliderOriented creates a slider with explicit orientation and thumb
// breadth (the thumb's extent along the track axis).
func NewSliderOriented(rect geometry.Rect, min, max, step int, palette graphics.Palette, vertical bool, thumbBreadth int) *Slider {
	s := &Slider{
		Base:     NewBase(rect, palette),
		min:      min,
		max:      max,
		step:     step,
		vertical: vertical,
		val:      float64(min),
	}
	s.thumb = s.makeThumb(thumbBreadth)
	return s
}

func (s *Slider) makeThumb(breadth int) geometry.Rect {
	if s.vertical {
		return geometry.Rect{X: s.rect.X - breadth/2, Y: s.rect.Y, W: s.rect.W + breadth, H: breadth}
	}
	return geometry.Rect{X: s.rect.X, Y: s.rect.Y - breadth/2, W: breadth, H: s.rect.H + breadth}
}

// StepIndex returns how many steps above Min the current value sits.
func (s *Slider) StepIndex() int {
	return int(math.Round((s.val - float64(s.min)) / float64(s.step)))
}

// TrueValue returns the current value snapped to the step grid.
func (s *Slider) TrueValue() int {
	return s.StepIndex()*s.step + s.min
}

// String renders the stepped value as text.
func (s *Slider) String() string {
	return strconv.Itoa(s.TrueValue())
}

// trackLen is the pixel distance the thumb can travel.
func (s *Slider) trackLen() int {
	if s.vertical {
		return s.rect.H - s.thumb.H
	}
	return s.rect.W - s.thumb.W
}

// pixelsPerStep converts one step into thumb travel distance.
func (s *Slider) pixelsPerStep() float64 {
	return float64(s.trackLen()) / float64(s.max-s.min) * float64(s.step)
}

// unitsPerPixel converts one pixel of drag into value units.
func (s *Slider) unitsPerPixel() float64 {
	return float64(s.max-s.min) / float64(s.trackLen())
}

// SetCallback registers the value-change callback. The callback fires
// immediately with the current stepped value so dependents start in sync,
// and afterwards only when the stepped value actually changes.
func (s *Slider) SetCallback(onChange func(int)) {
	if onChange != nil {
		s.lastVal = s.TrueValue()
		onChange(s.lastVal)
	}
	s.onChange = onChange
}

// SetValue sets the raw value programmatically, clamping it and
// re-deriving the thumb rectangle.
func (s *Slider) SetValue(v int) {
	s.val = float64(v)
	s.dragBy(geometry.Point{})
}

// SetStepIndex positions the value at Min + n steps.
func (s *Slider) SetStepIndex(n int) {
	s.val = float64(s.min) + float64(n)*float64(s.step)
	s.dragBy(geometry.Point{})
}

// HandleEvent implements thumb dragging: button-down inside the thumb
// starts a drag, motion translates into value changes, button-up always
// ends the drag and reports Forwarded so sibling click-outside logic
// still sees the release.
func (s *Slider) HandleEvent(ev input.Event) Outcome {
	if !s.shown {
		return Ignored
	}
	switch e := ev.(type) {
	case input.MouseMotion:
		if inThumb := s.thumb.Contains(e.Pos); inThumb != s.hovered {
			s.hovered = inThumb
			return Handled
		}
		if s.dragging {
			s.dragBy(e.Pos.Sub(s.mousePos))
			s.fireIfChanged()
			s.mousePos = e.Pos
			return Handled
		}
	case input.MouseButtonDown:
		if s.thumb.Contains(e.Pos) {
			s.mousePos = e.Pos
			s.dragging = true
			return Handled
		}
	case input.MouseButtonUp:
		s.dragging = false
		return Forwarded
	}
	return Ignored
}

// Draw renders the track and the thumb.
func (s *Slider) Draw(surface graphics.Surface) {
	if !s.shown {
		return
	}
	surface.FillRectBordered(s.rect, 1, s.colors.Extra1, s.colors.Line)
	thumbFill := s.colors.Background
	if s.hovered || s.dragging {
		thumbFill = s.colors.Highlight
	}
	surface.FillRectBordered(s.thumb, 1, thumbFill, s.colors.Line)
}

// Translate moves the track and the derived thumb together.
func (s *Slider) Translate(dx, dy int) {
	s.Base.Translate(dx, dy)
	s.thumb = s.thumb.Translated(dx, dy)
}

// dragBy applies a pointer delta to the raw value, clamps it, and snaps
// the thumb to the stepped position.
func (s *Slider) dragBy(delta geometry.Point) {
	if s.vertical {
		s.val += float64(delta.Y) * s.unitsPerPixel()
		s.clampVal()
		s.thumb.Y = s.rect.Y + int(math.Round(float64(s.StepIndex())*s.pixelsPerStep()))
	} else {
		s.val += float64(delta.X) * s.unitsPerPixel()
		s.clampVal()
		s.thumb.X = s.rect.X + int(math.Round(float64(s.StepIndex())*s.pixelsPerStep()))
	}
}

// fireIfChanged invokes the callback only when the stepped value moved,
// debouncing sub-step drag motion.
func (s *Slider) fireIfChanged() {
	if s.onChange == nil {
		return
	}
	if v := s.TrueValue(); v != s.lastVal {
		s.lastVal = v
		s.onChange(v)
	}
}

func (s *Slider) clampVal() {
	if s.val > float64(s.max) {
		s.val = float64(s.max)
	} else if s.val < float64(s.min) {
		s.val = float64(s.min)
	}
}
