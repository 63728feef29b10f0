package builder

import "strings"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/npillmayer/schuko/tracing/gotestingadapter"

const sampleBDF = `STARTFONT 2.1
FONT -test-fixed-medium-r-normal--8-80-75-75-C-80-iso10646-1
SIZE 8 75 75
FONTBOUNDINGBOX 8 8 0 -1
STARTPROPERTIES 2
FONT_ASCENT 7
FONT_DESCENT 1
ENDPROPERTIES
CHARS 3
STARTCHAR space
ENCODING 32
SWIDTH 500 0
DWIDTH 4 0
BBX 0 0 0 0
ENDCHAR
STARTCHAR exclam
ENCODING 33
SWIDTH 500 0
DWIDTH 3 0
BBX 1 6 1 0
BITMAP
80
80
80
80
00
80
ENDCHAR
STARTCHAR gee
ENCODING 103
SWIDTH 500 0
DWIDTH 5 0
BBX 4 5 0 -1
BITMAP
70
90
70
10
60
ENDCHAR
ENDFONT
`

func TestParseBDF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "microfont.build")
	defer teardown()

	rasterizer, err := ParseBDF(strings.NewReader(sampleBDF))
	assert.NoError(t, err)
	assert.Equal(t, 8, rasterizer.NativeSize())

	assert.True(t, rasterizer.Covers(' '))
	assert.True(t, rasterizer.Covers('!'))
	assert.True(t, rasterizer.Covers('g'))
	assert.False(t, rasterizer.Covers('A'))

	// '!': 1x6 column anchored on the baseline
	bang, err := rasterizer.Rasterize('!', 8)
	assert.NoError(t, err)
	assert.Equal(t, 1, bang.Mask.Width)
	assert.Equal(t, 6, bang.Mask.Height)
	assert.Equal(t, 6, bang.Top)
	assert.Equal(t, 1, bang.Left)
	assert.Equal(t, 3, bang.Advance)
	assert.True(t, bang.Mask.At(0, 0))
	assert.False(t, bang.Mask.At(0, 4)) // the gap above the dot
	assert.True(t, bang.Mask.At(0, 5))
	assert.Equal(t, 6, bang.Ascent())
	assert.Equal(t, 0, bang.Descent())

	// 'g' descends one pixel below the baseline
	gee, err := rasterizer.Rasterize('g', 8)
	assert.NoError(t, err)
	assert.Equal(t, 4, gee.Top)
	assert.Equal(t, 4, gee.Ascent())
	assert.Equal(t, 1, gee.Descent())
	assert.True(t, gee.Mask.At(1, 0))
	assert.False(t, gee.Mask.At(1, 1))
	assert.True(t, gee.Mask.At(0, 1)) // 0x90 row: leftmost and fourth pixels
	assert.True(t, gee.Mask.At(3, 1))

	// the space has no BITMAP section but still must exist with an
	// empty mask and its advance intact
	space, err := rasterizer.Rasterize(' ', 8)
	assert.NoError(t, err)
	assert.Equal(t, 4, space.Advance)
	assert.Equal(t, 0, space.Mask.Width)
}

func TestParseBDFErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "microfont.build")
	defer teardown()

	_, err := ParseBDF(strings.NewReader("TTF 1.0\n"))
	assert.ErrorContains(t, err, "STARTFONT")

	truncated := sampleBDF[ : strings.Index(sampleBDF, "ENDFONT")]
	_, err = ParseBDF(strings.NewReader(truncated))
	assert.ErrorContains(t, err, "ENDFONT")

	empty := "STARTFONT 2.1\nFONTBOUNDINGBOX 8 8 0 -1\nENDFONT\n"
	_, err = ParseBDF(strings.NewReader(empty))
	assert.ErrorContains(t, err, "no glyphs")
}

func TestParseBDFFromPathExtension(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "microfont.build")
	defer teardown()

	_, err := ParseBDFFromPath("font.ttf")
	assert.ErrorContains(t, err, "invalid bitmap font path")
}
