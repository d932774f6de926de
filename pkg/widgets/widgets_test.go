package widgets

import (
	"golang.org/x/image/font"

	"github.com/TomekTTX/sdlw/pkg/geometry"
	"github.com/TomekTTX/sdlw/pkg/graphics"
	"github.com/TomekTTX/sdlw/pkg/input"
)

// stubWindow satisfies Window over the software raster surface, giving
// widget tests color mapping and a font without any live backend.
type stubWindow struct {
	surf *graphics.Raster
	face font.Face
}

func newStubWindow() *stubWindow {
	return &stubWindow{
		surf: graphics.NewRaster(640, 480),
		face: graphics.FallbackFace(),
	}
}

func (w *stubWindow) Font() font.Face           { return w.face }
func (w *stubWindow) Surface() graphics.Surface { return w.surf }

var testPalette = graphics.PaletteOf(0x101010, 0x808080, 0xFFFFFF, 0x404040, 0x202020)

func motion(x, y int) input.Event {
	return input.MouseMotion{Pos: geometry.Point{X: x, Y: y}}
}

func press(x, y int) input.Event {
	return input.MouseButtonDown{Pos: geometry.Point{X: x, Y: y}, Clicks: 1}
}

func release(x, y int) input.Event {
	return input.MouseButtonUp{Pos: geometry.Point{X: x, Y: y}}
}

func doubleClick(x, y int) input.Event {
	return input.MouseButtonDown{Pos: geometry.Point{X: x, Y: y}, Clicks: 2}
}

func wheelEvent(delta int) input.Event {
	return input.Wheel{Delta: delta}
}

// click sends the motion/press/release triple a pointer click produces.
func click(c Component, x, y int) []Outcome {
	return []Outcome{
		c.HandleEvent(motion(x, y)),
		c.HandleEvent(press(x, y)),
		c.HandleEvent(release(x, y)),
	}
}
