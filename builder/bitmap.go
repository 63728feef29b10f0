package builder

// A 2D monochrome mask with one byte per pixel: zero is off, anything
// else is on. The byte-per-pixel layout wastes memory but keeps
// compositing trivial; masks only live for the duration of a build.
type Bitmap struct {
	Width  int
	Height int
	Pixels []byte // row major, len Width*Height
}

// Allocates a cleared bitmap of the given size.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{ Width: width, Height: height, Pixels: make([]byte, width*height) }
}

// Turns on the pixel at (x, y). Out of range coordinates are ignored.
func (self *Bitmap) Set(x, y int) {
	if x < 0 || y < 0 || x >= self.Width || y >= self.Height { return }
	self.Pixels[y*self.Width + x] = 1
}

// Reports whether the pixel at (x, y) is on. Out of range
// coordinates read as off.
func (self *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= self.Width || y >= self.Height { return false }
	return self.Pixels[y*self.Width + x] != 0
}

// Copies all pixels from src into this bitmap, with src's top left
// corner at (left, top). Source pixels falling outside the
// destination are dropped.
func (self *Bitmap) Blit(src *Bitmap, top, left int) {
	for row := 0; row < src.Height; row++ {
		dstRow := top + row
		if dstRow < 0 || dstRow >= self.Height { continue }
		for col := 0; col < src.Width; col++ {
			dstCol := left + col
			if dstCol < 0 || dstCol >= self.Width { continue }
			self.Pixels[dstRow*self.Width + dstCol] = src.Pixels[row*src.Width + col]
		}
	}
}

// Appends the bitmap to buf in horizontal (row major) byte order:
// one row at a time, each row padded to a byte boundary. In normal
// order the most significant bit of a row's first byte is the
// leftmost pixel; reverse flips the bit order within each byte.
func (self *Bitmap) AppendHorz(buf []byte, reverse bool) []byte {
	for row := 0; row < self.Height; row++ {
		for col := 0; col < self.Width; col += 8 {
			var packed byte
			for bit := 0; bit < 8 && col + bit < self.Width; bit++ {
				if self.Pixels[row*self.Width + col + bit] == 0 { continue }
				if reverse {
					packed |= 1 << bit
				} else {
					packed |= 0x80 >> bit
				}
			}
			buf = append(buf, packed)
		}
	}
	return buf
}

// Appends the bitmap to buf in vertical (column major) byte order:
// one column at a time, each column padded to a byte boundary. In
// normal order the least significant bit of a column's first byte is
// the topmost pixel; reverse flips the bit order within each byte.
func (self *Bitmap) AppendVert(buf []byte, reverse bool) []byte {
	for col := 0; col < self.Width; col++ {
		for row := 0; row < self.Height; row += 8 {
			var packed byte
			for bit := 0; bit < 8 && row + bit < self.Height; bit++ {
				if self.Pixels[(row + bit)*self.Width + col] == 0 { continue }
				if reverse {
					packed |= 0x80 >> bit
				} else {
					packed |= 1 << bit
				}
			}
			buf = append(buf, packed)
		}
	}
	return buf
}
