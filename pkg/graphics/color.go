package graphics

// RGB is an author-chosen logical color, stored as 0xRRGGBB. Components
// declare widget palettes in RGB values; a backend resolves them into its
// native Color representation before anything is drawn.
type RGB int

// R returns the red component byte.
func (c RGB) R() uint8 { return uint8(c >> 16) }

// G returns the green component byte.
func (c RGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue component byte.
func (c RGB) B() uint8 { return uint8(c) }

// RGBOf packs red, green, blue bytes into an RGB value.
func RGBOf(r, g, b uint8) RGB {
	return RGB(int(r)<<16 | int(g)<<8 | int(b))
}

// Color is a backend-native color value. Its bit layout is owned by the
// Surface that produced it and is opaque to the widget layer.
type Color uint32

// ColorMapper resolves logical RGB values into backend-native colors.
type ColorMapper interface {
	ResolveColor(c RGB) Color
}

// Palette is the seven-field logical color set every component carries.
// Fields beyond the first four are widget-specific (a Slider uses Extra1
// for its track, for example).
type Palette struct {
	Background RGB
	Line       RGB
	Text       RGB
	Highlight  RGB
	Extra1     RGB
	Extra2     RGB
	Extra3     RGB
}

// PaletteOf builds a Palette from up to seven colors assigned in field
// order: background, line, text, highlight, extra1, extra2, extra3.
// Missing trailing values stay zero.
func PaletteOf(colors ...RGB) Palette {
	var p Palette
	fields := p.fields()
	for i, c := range colors {
		if i >= len(fields) {
			break
		}
		*fields[i] = c
	}
	return p
}

func (p *Palette) fields() [7]*RGB {
	return [7]*RGB{&p.Background, &p.Line, &p.Text, &p.Highlight, &p.Extra1, &p.Extra2, &p.Extra3}
}

// NativePalette is a Palette after resolution through a ColorMapper.
// It is only ever produced by Palette.Resolve, never populated directly.
type NativePalette struct {
	Background Color
	Line       Color
	Text       Color
	Highlight  Color
	Extra1     Color
	Extra2     Color
	Extra3     Color
}

// Resolve maps every palette field through the mapper, in field order.
func (p Palette) Resolve(m ColorMapper) NativePalette {
	return NativePalette{
		Background: m.ResolveColor(p.Background),
		Line:       m.ResolveColor(p.Line),
		Text:       m.ResolveColor(p.Text),
		Highlight:  m.ResolveColor(p.Highlight),
		Extra1:     m.ResolveColor(p.Extra1),
		Extra2:     m.ResolveColor(p.Extra2),
		Extra3:     m.ResolveColor(p.Extra3),
	}
}
