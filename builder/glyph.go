package builder

// A rasterized glyph plus its placement metrics, as returned by a
// [Rasterizer]. All values are in whole pixels; fractional advance
// precision is truncated by the rasterizer.
type Glyph struct {
	// The glyph's ink, tightly cropped.
	Mask *Bitmap

	// Top side bearing: vertical distance from the baseline to the
	// mask's topmost scanline.
	Top int

	// Left side bearing: horizontal distance from the pen origin to
	// the mask's leftmost column. May be negative (italics, J-like
	// overhangs).
	Left int

	// Horizontal distance to the next character's pen origin.
	Advance int
}

// Pixels the glyph extends below the baseline.
func (self Glyph) Descent() int {
	descent := self.Mask.Height - self.Top
	if descent < 0 { return 0 }
	return descent
}

// Pixels the glyph extends above the baseline.
func (self Glyph) Ascent() int {
	top := self.Top
	if self.Mask.Height > top { top = self.Mask.Height }
	ascent := top - self.Descent()
	if ascent < 0 { return 0 }
	return ascent
}

// The horizontal space the glyph occupies in a line, advance
// included, together with the clamped left bearing at which its mask
// gets composited. Ink extending left of the pen origin or right of
// the advance box widens the result instead of clipping.
func (self Glyph) logicalWidth() (width, left int) {
	if self.Left >= 0 {
		width = self.Mask.Width + self.Left
		if self.Advance > width { width = self.Advance }
		return width, self.Left
	}
	width = self.Advance - self.Left
	if self.Mask.Width > width { width = self.Mask.Width }
	return width, 0
}
