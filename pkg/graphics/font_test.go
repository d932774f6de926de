package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFontAllFamilies(t *testing.T) {
	families := []FontFamily{
		FamilySans, FamilySansBold, FamilyItalic,
		FamilyMono, FamilyMonoBold, FamilySmallCaps,
	}
	for _, family := range families {
		face, err := LoadFont(family, 14)
		require.NoError(t, err, "family %v", family)
		require.NotNil(t, face)
	}
}

func TestLoadFontRejectsBadInput(t *testing.T) {
	_, err := LoadFont(FamilySans, 0)
	assert.Error(t, err)

	_, err = LoadFont(FontFamily(99), 14)
	assert.Error(t, err)
}

func TestFamilyByNameRoundTrip(t *testing.T) {
	for _, family := range []FontFamily{
		FamilySans, FamilySansBold, FamilyItalic,
		FamilyMono, FamilyMonoBold, FamilySmallCaps,
	} {
		got, ok := FamilyByName(family.String())
		require.True(t, ok, "name %q", family.String())
		assert.Equal(t, family, got)
	}

	_, ok := FamilyByName("comic-sans")
	assert.False(t, ok)
}

func TestFallbackFaceAlwaysAvailable(t *testing.T) {
	assert.NotNil(t, FallbackFace())
}
