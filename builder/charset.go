package builder

import "slices"
import "unicode"

// Default inclusive range of ordinal values for charsets: the
// printable ASCII set.
const (
	MinChar rune = 32
	MaxChar rune = 126
)

// Default fallback character ('?').
const DefaultFallback rune = 63

// An ordered set of code points to build a font for. Position 0 is
// always the fallback character; the remainder is deduplicated and
// sorted by increasing code point. Code points the rasterizer turns
// out not to cover are dropped during the build, leaving holes in
// the container's sparse index rather than failing it.
type Charset struct {
	codePoints []rune // fallback first, rest sorted ascending
}

// Creates a charset from explicit code points. The fallback is
// forced present and first; duplicates are removed.
func NewCharset(fallback rune, codePoints []rune) Charset {
	unique := make([]rune, 0, len(codePoints) + 1)
	unique = append(unique, fallback)
	for _, codePoint := range codePoints {
		if codePoint != fallback { unique = append(unique, codePoint) }
	}
	rest := unique[1 : ]
	slices.Sort(rest)
	return Charset{ codePoints: append(unique[0 : 1], slices.Compact(rest)...) }
}

// Creates a charset spanning an inclusive code point range,
// e.g. RangeCharset('?', 32, 126) for printable ASCII.
func RangeCharset(fallback rune, min, max rune) Charset {
	if max < min { return NewCharset(fallback, nil) }
	codePoints := make([]rune, 0, max - min + 1)
	for codePoint := min; codePoint <= max; codePoint++ {
		codePoints = append(codePoints, codePoint)
	}
	return Charset{ codePoints: NewCharset(fallback, codePoints).codePoints }
}

// Creates a charset from the characters of a string, e.g.
// "1234567890:" to restrict a font to what a clock display needs.
// Non printable characters are dropped, except for the Unicode
// private use area, which icon fonts commonly map.
func CharsetFromString(fallback rune, chars string) Charset {
	codePoints := make([]rune, 0, len(chars))
	for _, codePoint := range chars {
		if unicode.IsPrint(codePoint) || (codePoint >= 0xE000 && codePoint <= 0xF8FF) {
			codePoints = append(codePoints, codePoint)
		}
	}
	return NewCharset(fallback, codePoints)
}

// The fallback character, always first in build order.
func (self Charset) Fallback() rune { return self.codePoints[0] }

// All code points in build order: fallback first, then increasing
// code point order. The returned slice must not be modified.
func (self Charset) CodePoints() []rune { return self.codePoints }

func (self Charset) Len() int { return len(self.codePoints) }
