// microfont is a package for rendering text on resource constrained
// devices from compact, randomly accessible MFNT font files. Fonts
// are converted offline with the [builder] subpackage (or the mfntgen
// command) and consumed at runtime through two types:
//
// First, you open a [Font]:
//   font, err := microfont.Open("victor:B:12.mfnt", microfont.CacheIndex)
//   if err != nil { ... }
//
// Then, you create a [Renderer], point it to a pixel [Surface] and
// start drawing:
//   renderer := microfont.NewRenderer(font)
//   renderer.SetTarget(surface)
//   renderer.Draw("Hello world!", x, y)
//
// Glyph lookups never fail on missing characters; they resolve to the
// font's fallback glyph instead. Rotation, spacing and colors are
// configured on the renderer. All rendering math is integer only.
//
// Neither fonts nor renderers are safe for concurrent use; give each
// goroutine its own instances or serialize access externally.
//
// [builder]: https://pkg.go.dev/github.com/mfnt/microfont/builder
package microfont
