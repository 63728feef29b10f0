package microfont

import "github.com/mfnt/microfont/fract"

// Sub-pixel offset of the second sample taken for every glyph pixel,
// in 64ths, applied along the diagonal. Rotated diagonals leave one
// pixel seams at integer destination resolution; one extra sample in
// that direction closes them. The value stays just under half a
// pixel so that at axis aligned angles both samples land on the same
// destination pixel and the output matches the unrotated blit.
const oversampleShift = 31

// Draws a single decoded glyph with its top left corner at (x, y),
// rotated by the renderer's current rotation around that same point.
// The shift is applied to the glyph's pixel coordinates before
// rotation, so it moves the glyph along the rotated axes; [Renderer.Draw]
// uses this for cursor advances, and it doubles as a sub-pixel nudge.
//
// Destination pixels falling outside the target surface are dropped.
// The only possible error is [ErrUnsupportedEncoding].
func (self *Renderer) DrawGlyph(glyph Glyph, x, y int, shift fract.Point) error {
	target := self.target
	if target == nil { panic("microfont: can't draw with a nil target (see Renderer.SetTarget)") }
	switch target.Encoding {
	case Mono, RGB565:
		// supported
	default:
		return ErrUnsupportedEncoding
	}

	if normalizeDegrees(self.rotation) == 0 && shift.IsWhole() {
		self.blitAligned(glyph, x + shift.X.ToIntFloor(), y + shift.Y.ToIntFloor())
		return nil
	}
	sin, cos := rotationPair(self.rotation)
	self.drawRotated(glyph, x, y, shift, sin, cos)
	return nil
}

// Axis aligned fast path for unrotated draws at whole pixel offsets.
func (self *Renderer) blitAligned(glyph Glyph, x, y int) {
	stride := (glyph.Width + 7)/8
	for row := 0; row < glyph.Height; row++ {
		for col := 0; col < stride*8; col++ {
			if glyph.Data[row*stride + col/8] & (0x80 >> (col % 8)) == 0 { continue }
			self.target.Set(x + col, y + row, self.color)
		}
	}
}

// General fixed point rotation path. Source coordinates are upscaled
// to 64ths, shifted, and multiplied by the scale 64 sine/cosine pair,
// leaving products scaled by 4096; adding half of that before the
// final shift rounds to the nearest destination pixel. Every set
// pixel is plotted twice, the second time nudged diagonally by
// [oversampleShift].
func (self *Renderer) drawRotated(glyph Glyph, x, y int, shift fract.Point, sin, cos int) {
	stride := (glyph.Width + 7)/8
	for row := 0; row < glyph.Height; row++ {
		ry0 := int(fract.FromInt(row) + shift.Y)
		for col := 0; col < stride*8; col++ {
			if glyph.Data[row*stride + col/8] & (0x80 >> (col % 8)) == 0 { continue }
			rx, ry := int(fract.FromInt(col) + shift.X), ry0
			for sample := 0; sample < 2; sample++ {
				dx := x + (rx*cos - ry*sin + 2048)>>12
				dy := y + (rx*sin + ry*cos + 2048)>>12
				self.target.Set(dx, dy, self.color)
				rx += oversampleShift
				ry += oversampleShift
			}
		}
	}
}

// Draws a string with its top left corner at (x, y), applying the
// renderer's rotation, color and spacing. A '\n' resets the
// horizontal cursor and advances the vertical one by the font height
// plus the configured line spacing; other characters advance the
// horizontal cursor by their logical width plus the character
// spacing. Cursor advances travel through the rotation transform,
// so rotated multi-line text stays correctly stacked.
//
// Characters without a glyph in the font render as the font's
// fallback glyph. Returned errors are either storage I/O errors
// from glyph lookups or [ErrUnsupportedEncoding].
func (self *Renderer) Draw(text string, x, y int) error {
	if self.font == nil { panic("microfont: can't draw text with a nil font (see NewRenderer)") }
	var cursorX, cursorY int
	for _, codePoint := range text {
		if codePoint == '\n' {
			cursorX = 0
			cursorY += self.font.Height() + self.lineSpacing
			continue
		}
		glyph, err := self.font.Glyph(codePoint)
		if err != nil { return err }
		err = self.DrawGlyph(glyph, x, y, fract.IntsToPoint(cursorX, cursorY))
		if err != nil { return err }
		cursorX += glyph.Width + self.charSpacing
	}
	return nil
}
