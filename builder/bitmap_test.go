package builder

import "testing"

import "github.com/stretchr/testify/assert"

func bitmapFromRows(rows []string) *Bitmap {
	bitmap := NewBitmap(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, char := range row {
			if char == '#' { bitmap.Set(x, y) }
		}
	}
	return bitmap
}

func TestBitmapSetAt(t *testing.T) {
	bitmap := NewBitmap(3, 2)
	assert.Equal(t, 6, len(bitmap.Pixels))
	bitmap.Set(2, 1)
	assert.True(t, bitmap.At(2, 1))
	assert.False(t, bitmap.At(0, 0))
	bitmap.Set(5, 5) // out of range, ignored
	assert.False(t, bitmap.At(5, 5))
}

func TestBitmapBlit(t *testing.T) {
	cell := NewBitmap(6, 4)
	mask := bitmapFromRows([]string{
		"##",
		".#",
	})
	cell.Blit(mask, 1, 3)
	expected := bitmapFromRows([]string{
		"......",
		"...##.",
		"....#.",
		"......",
	})
	assert.Equal(t, expected.Pixels, cell.Pixels)
}

func TestBitmapBlitClips(t *testing.T) {
	cell := NewBitmap(3, 3)
	mask := bitmapFromRows([]string{
		"####",
		"####",
	})
	// partially past the right and bottom edges; nothing panics and
	// only the overlapping pixels land
	cell.Blit(mask, 2, 1)
	expected := bitmapFromRows([]string{
		"...",
		"...",
		".##",
	})
	assert.Equal(t, expected.Pixels, cell.Pixels)
}

func TestBitmapBlitNegativeLeft(t *testing.T) {
	cell := NewBitmap(3, 2)
	mask := bitmapFromRows([]string{
		"###",
	})
	cell.Blit(mask, 0, -1)
	expected := bitmapFromRows([]string{
		"##.",
		"...",
	})
	assert.Equal(t, expected.Pixels, cell.Pixels)
}

func TestBitmapAppendHorz(t *testing.T) {
	// 9 pixels wide: each row packs into 2 bytes, MSB first, the
	// trailing 7 bits zero padded
	bitmap := bitmapFromRows([]string{
		"#.......#",
		"#########",
	})
	packed := bitmap.AppendHorz(nil, false)
	assert.Equal(t, []byte{0x80, 0x80, 0xFF, 0x80}, packed)

	reversed := bitmap.AppendHorz(nil, true)
	assert.Equal(t, []byte{0x01, 0x01, 0xFF, 0x01}, reversed)
}

func TestBitmapAppendVert(t *testing.T) {
	// 2x9: each column packs into 2 bytes, topmost pixel in the
	// least significant bit
	bitmap := NewBitmap(2, 9)
	bitmap.Set(0, 0)
	bitmap.Set(0, 8)
	bitmap.Set(1, 3)
	packed := bitmap.AppendVert(nil, false)
	assert.Equal(t, []byte{0x01, 0x01, 0x08, 0x00}, packed)

	reversed := bitmap.AppendVert(nil, true)
	assert.Equal(t, []byte{0x80, 0x80, 0x10, 0x00}, reversed)
}
