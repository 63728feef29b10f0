package builder

// Global metrics achieved by a build, all in whole pixels.
type Metrics struct {
	// Achieved overall height: max ascent + max descent across the
	// charset. May differ from the requested height; font rasterizers
	// round pixel sizes non monotonically near small sizes.
	Height int

	// Max over all glyphs of max(advance width, mask width).
	MaxWidth int

	// Max ascent (the container's baseline field).
	Ascent int

	// Max descent.
	Descent int

	// The rasterization pixel size that produced the above. This is
	// what the builder re-rasterizes at; it is not stored in the
	// container.
	PixelSize int
}

// Maximum number of trial rasterization passes before giving up on
// improving the achieved height.
const maxFitPasses = 10

// Finds the rasterization pixel size whose achieved overall height
// (max ascent + max descent across the charset) lands as close as
// possible to the requested height. Each pass rasterizes the full
// charset at the current trial size and feeds the error back into
// the next trial; the loop stops on an exact fit, when the error
// stops shrinking (the rasterizer's integer rounding makes it
// oscillate), or after 10 passes.
//
// Bitmap native sources skip the iteration: their height is fixed by
// the source format, so a single measurement pass runs at the native
// size. Code points not covered by the rasterizer are ignored.
func FitHeight(rast Rasterizer, charset Charset, requestedHeight int) (Metrics, error) {
	if native := rast.NativeSize(); native != 0 {
		metrics, err := measure(rast, charset, native)
		if err != nil { return metrics, err }
		tracer().Infof("bitmap native font, height %d pixels, max width %d pixels",
			metrics.Height, metrics.MaxWidth)
		return metrics, nil
	}

	var metrics Metrics
	var err error
	fitError := 0
	size := requestedHeight
	passes := 0
	for ; passes < maxFitPasses; passes++ {
		size += fitError
		if size < 1 { size = 1 }
		metrics, err = measure(rast, charset, size)
		if err != nil { return metrics, err }
		newError := requestedHeight - metrics.Height
		if newError == 0 { passes++; break }
		if passes > 0 && abs(newError) >= abs(fitError) { passes++; break }
		fitError = newError
	}
	tracer().Infof("height set in %d passes, actual height %d pixels, max character width %d pixels",
		passes, metrics.Height, metrics.MaxWidth)
	return metrics, nil
}

// One trial pass: rasterizes every covered code point at the given
// pixel size and accumulates the extremes.
func measure(rast Rasterizer, charset Charset, pixelSize int) (Metrics, error) {
	metrics := Metrics{ PixelSize: pixelSize }
	measured := 0
	for _, codePoint := range charset.CodePoints() {
		if !rast.Covers(codePoint) { continue }
		glyph, err := rast.Rasterize(codePoint, pixelSize)
		if err != nil { return metrics, err }
		if glyph.Ascent() > metrics.Ascent { metrics.Ascent = glyph.Ascent() }
		if glyph.Descent() > metrics.Descent { metrics.Descent = glyph.Descent() }
		// for a few chars e.g. _ the mask is wider than the advance
		if glyph.Advance > metrics.MaxWidth { metrics.MaxWidth = glyph.Advance }
		if glyph.Mask.Width > metrics.MaxWidth { metrics.MaxWidth = glyph.Mask.Width }
		measured++
	}
	if measured == 0 { return metrics, ErrBuildNoGlyphs }
	metrics.Height = metrics.Ascent + metrics.Descent
	return metrics, nil
}

func abs(value int) int {
	if value < 0 { return -value }
	return value
}
