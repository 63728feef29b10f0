package builder

import "testing"

import "github.com/stretchr/testify/assert"

func TestNewCharset(t *testing.T) {
	charset := NewCharset('?', []rune{'z', 'a', '?', 'a'})
	assert.Equal(t, []rune{'?', 'a', 'z'}, charset.CodePoints())
	assert.Equal(t, '?', charset.Fallback())
	assert.Equal(t, 3, charset.Len())
}

func TestRangeCharset(t *testing.T) {
	charset := RangeCharset('?', 'a', 'c')
	assert.Equal(t, []rune{'?', 'a', 'b', 'c'}, charset.CodePoints())

	// fallback inside the range isn't duplicated
	charset = RangeCharset('b', 'a', 'c')
	assert.Equal(t, []rune{'b', 'a', 'c'}, charset.CodePoints())

	// inverted ranges degrade to the fallback alone
	charset = RangeCharset('?', 'z', 'a')
	assert.Equal(t, []rune{'?'}, charset.CodePoints())
}

func TestCharsetFromString(t *testing.T) {
	charset := CharsetFromString('?', "10:2\n\t")
	assert.Equal(t, []rune{'?', '0', '1', '2', ':'}, charset.CodePoints())

	// private use area code points pass the printability filter
	charset = CharsetFromString('?', string(rune(0xE000)))
	assert.Equal(t, []rune{'?', 0xE000}, charset.CodePoints())
}
