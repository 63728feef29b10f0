package builder

import "bytes"
import "encoding/binary"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/npillmayer/schuko/tracing/gotestingadapter"

import "github.com/mfnt/microfont"

func solidGlyph(width, height, top, advance int) Glyph {
	mask := NewBitmap(width, height)
	for index := range mask.Pixels { mask.Pixels[index] = 1 }
	return Glyph{ Mask: mask, Top: top, Left: 0, Advance: advance }
}

// fallback '?' ascends 4, 'A' adds one pixel of descent: the shared
// cell ends up 5 tall with the baseline at row 4
func twoGlyphSource() *mapRasterizer {
	return &mapRasterizer{
		glyphs: map[rune]Glyph{
			'?': solidGlyph(3, 4, 4, 4),
			'A': solidGlyph(4, 5, 4, 5),
		},
	}
}

func TestBuildContainerLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "microfont.build")
	defer teardown()

	var buf bytes.Buffer
	metrics, err := New(twoGlyphSource(), NewCharset('?', []rune{'A'})).Build(5, &buf)
	assert.NoError(t, err)
	assert.Equal(t, Metrics{ Height: 5, MaxWidth: 5, Ascent: 4, Descent: 1, PixelSize: 5 }, metrics)

	container := buf.Bytes()
	assert.Equal(t, []byte{
		'M', 'F', 'N', 'T', 5, 4, 5, 0, 4, 0, 0, 0, // header
		65, 0, 1, 0, // index: 'A' at block 1
	}, container[ : microfont.HeaderLen+4])

	data := container[microfont.HeaderLen+4 : ]
	assert.Equal(t, []byte{
		4, 0, 0xE0, 0xE0, 0xE0, 0xE0, 0x00, // fallback: 3 wide ink in a 4 wide cell
		0x00, // padding to the 8 byte boundary
		5, 0, 0xF0, 0xF0, 0xF0, 0xF0, 0xF0, // 'A': 4 wide ink in a 5 wide cell
	}, data)
}

func TestBuildMonospaced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "microfont.build")
	defer teardown()

	compiler := New(twoGlyphSource(), NewCharset('?', []rune{'A'}))
	compiler.SetMonospaced(true)
	var buf bytes.Buffer
	_, err := compiler.Build(5, &buf)
	assert.NoError(t, err)

	container := buf.Bytes()
	assert.Equal(t, byte(1), container[7]) // monospaced header flag

	// both blocks declare the font's max width
	data := container[microfont.HeaderLen+4 : ]
	assert.Equal(t, uint16(5), binary.LittleEndian.Uint16(data))
	assert.Equal(t, uint16(5), binary.LittleEndian.Uint16(data[8 : ]))
}

func TestBuildBitReversal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "microfont.build")
	defer teardown()

	// the fallback alone has no descent, so the cell is 4 tall
	compiler := New(twoGlyphSource(), NewCharset('?', nil))
	compiler.SetBitReversal(true)
	var buf bytes.Buffer
	_, err := compiler.Build(4, &buf)
	assert.NoError(t, err)

	data := buf.Bytes()[microfont.HeaderLen : ] // no index entries
	assert.Equal(t, []byte{4, 0, 0x07, 0x07, 0x07, 0x07}, data)
}

func TestBuildFallbackNotCovered(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "microfont.build")
	defer teardown()

	var buf bytes.Buffer
	_, err := New(twoGlyphSource(), NewCharset('z', []rune{'A'})).Build(5, &buf)
	assert.ErrorIs(t, err, ErrFallbackNotCovered)
	assert.Zero(t, buf.Len(), "failed builds must not write output")
}

func TestBuildMetricsRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "microfont.build")
	defer teardown()

	source := &mapRasterizer{
		glyphs: map[rune]Glyph{ '?': solidGlyph(4, 300, 300, 5) },
	}
	var buf bytes.Buffer
	_, err := New(source, NewCharset('?', nil)).Build(300, &buf)
	assert.ErrorIs(t, err, ErrMetricsRange)
	assert.Zero(t, buf.Len())
}

func TestBuildStrictHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "microfont.build")
	defer teardown()

	source := twoGlyphSource()
	source.native = 5

	compiler := New(source, NewCharset('?', []rune{'A'}))
	compiler.SetStrictHeight(true)
	var buf bytes.Buffer
	_, err := compiler.Build(10, &buf)
	assert.ErrorIs(t, err, ErrHeightMismatch)
	assert.Zero(t, buf.Len())

	// without strict mode the native size silently wins
	compiler.SetStrictHeight(false)
	metrics, err := compiler.Build(10, &buf)
	assert.NoError(t, err)
	assert.Equal(t, 5, metrics.Height)
}

func TestBuildCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "microfont.build")
	defer teardown()

	// 65 glyphs of 255x255 pixels overflow the 2^19-1 byte data
	// section limit
	glyphs := make(map[rune]Glyph, 65)
	var codePoints []rune
	for codePoint := rune('A'); codePoint < 'A'+65; codePoint++ {
		glyphs[codePoint] = solidGlyph(255, 255, 255, 255)
		codePoints = append(codePoints, codePoint)
	}
	source := &mapRasterizer{ glyphs: glyphs }
	var buf bytes.Buffer
	_, err := New(source, NewCharset('A', codePoints)).Build(255, &buf)
	assert.ErrorIs(t, err, microfont.ErrCapacity)
	assert.Zero(t, buf.Len())
}
