package builder

// The narrow contract between the builder and a glyph source. Two
// implementations ship with the package: [OutlineRasterizer] for
// scalable .ttf/.otf fonts and [BDFRasterizer] for pre-rasterized
// .bdf bitmap fonts. Rasterizers are stateful (internal caches) and
// not safe for concurrent use.
type Rasterizer interface {
	// Renders the monochrome mask and placement metrics for one code
	// point at the given pixel size. Only code points for which
	// Covers returns true may be requested. Bitmap native sources
	// ignore the pixel size.
	Rasterize(codePoint rune, pixelSize int) (Glyph, error)

	// Reports whether the source defines a glyph for the code point.
	Covers(codePoint rune) bool

	// The fixed pixel size of bitmap native sources, or 0 for
	// scalable ones. A nonzero value makes the height fitter skip
	// its iteration and measure once at this size.
	NativeSize() int
}
