package graphics

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/opentype"
)

// FontFamily identifies one of the bundled typefaces. The toolkit ships
// the Go font collection so no font files need to exist on disk.
type FontFamily int

const (
	FamilySans FontFamily = iota
	FamilySansBold
	FamilyItalic
	FamilyMono
	FamilyMonoBold
	FamilySmallCaps
)

// String returns the canonical family name.
func (f FontFamily) String() string {
	switch f {
	case FamilySans:
		return "sans"
	case FamilySansBold:
		return "sans-bold"
	case FamilyItalic:
		return "italic"
	case FamilyMono:
		return "mono"
	case FamilyMonoBold:
		return "mono-bold"
	case FamilySmallCaps:
		return "smallcaps"
	default:
		return fmt.Sprintf("FontFamily(%d)", int(f))
	}
}

// FamilyByName resolves a family name as written in config files.
func FamilyByName(name string) (FontFamily, bool) {
	switch name {
	case "sans":
		return FamilySans, true
	case "sans-bold":
		return FamilySansBold, true
	case "italic":
		return FamilyItalic, true
	case "mono":
		return FamilyMono, true
	case "mono-bold":
		return FamilyMonoBold, true
	case "smallcaps":
		return FamilySmallCaps, true
	default:
		return 0, false
	}
}

var (
	fontMu     sync.Mutex
	parsedTTFs = map[FontFamily]*opentype.Font{}
)

func familyData(f FontFamily) []byte {
	switch f {
	case FamilySans:
		return goregular.TTF
	case FamilySansBold:
		return gobold.TTF
	case FamilyItalic:
		return goitalic.TTF
	case FamilyMono:
		return gomono.TTF
	case FamilyMonoBold:
		return gomonobold.TTF
	case FamilySmallCaps:
		return gosmallcaps.TTF
	default:
		return nil
	}
}

// LoadFont creates a font face for the family at the given point size.
// Parsed font data is cached per family; faces are cheap to create.
func LoadFont(family FontFamily, size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size %v out of range", size)
	}
	fontMu.Lock()
	parsed, ok := parsedTTFs[family]
	if !ok {
		data := familyData(family)
		if data == nil {
			fontMu.Unlock()
			return nil, fmt.Errorf("unknown font family %v", family)
		}
		var err error
		parsed, err = opentype.Parse(data)
		if err != nil {
			fontMu.Unlock()
			return nil, fmt.Errorf("parse %v: %w", family, err)
		}
		parsedTTFs[family] = parsed
	}
	fontMu.Unlock()

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face %v@%v: %w", family, size, err)
	}
	return face, nil
}

// FallbackFace returns the fixed 7x13 bitmap face. It always succeeds and
// is used when a requested face cannot be loaded.
func FallbackFace() font.Face {
	return basicfont.Face7x13
}
