package microfont

import "strconv"

// Pixel encodings supported by the compositor. The enumeration is
// closed: drawing onto a surface with any other value fails with
// [ErrUnsupportedEncoding].
type Encoding uint8

const (
	// 1 bit per pixel, rows packed most significant bit first and
	// padded to a byte boundary.
	Mono Encoding = iota

	// 16 bits per pixel, little endian color words.
	RGB565
)

func (self Encoding) String() string {
	switch self {
	case Mono: return "Mono"
	case RGB565: return "RGB565"
	default:
		return "UnknownEncoding(" + strconv.Itoa(int(self)) + ")"
	}
}

// A byte addressable pixel surface of known size and encoding, like
// the backing buffer of a small display. The compositor mutates it
// in place. All access goes through bounds checked methods; writes
// outside the surface are silently dropped.
type Surface struct {
	Width    int
	Height   int
	Encoding Encoding
	Pixels   []byte
}

// Allocates a zeroed surface of the given size and encoding.
func NewSurface(width, height int, encoding Encoding) *Surface {
	var size int
	switch encoding {
	case Mono: size = ((width + 7)/8)*height
	case RGB565: size = width*height*2
	}
	return &Surface{
		Width: width,
		Height: height,
		Encoding: encoding,
		Pixels: make([]byte, size),
	}
}

// Writes one pixel. Mono surfaces set the pixel's bit on any nonzero
// value and clear it on zero; RGB565 surfaces store the value as a
// little endian color word. Out of bounds coordinates and unknown
// encodings are no-ops.
func (self *Surface) Set(x, y int, value uint16) {
	if x < 0 || y < 0 || x >= self.Width || y >= self.Height { return }
	switch self.Encoding {
	case Mono:
		pos := y*((self.Width + 7)/8) + x/8
		bit := byte(0x80) >> (x % 8)
		if value != 0 {
			self.Pixels[pos] |= bit
		} else {
			self.Pixels[pos] &^= bit
		}
	case RGB565:
		pos := (y*self.Width + x)*2
		self.Pixels[pos] = byte(value)
		self.Pixels[pos+1] = byte(value >> 8)
	}
}

// Reads one pixel back. Mono surfaces return 0 or 1. Out of bounds
// coordinates and unknown encodings return 0.
func (self *Surface) At(x, y int) uint16 {
	if x < 0 || y < 0 || x >= self.Width || y >= self.Height { return 0 }
	switch self.Encoding {
	case Mono:
		pos := y*((self.Width + 7)/8) + x/8
		if self.Pixels[pos] & (0x80 >> (x % 8)) != 0 { return 1 }
		return 0
	case RGB565:
		pos := (y*self.Width + x)*2
		return uint16(self.Pixels[pos]) | uint16(self.Pixels[pos+1])<<8
	default:
		return 0
	}
}
