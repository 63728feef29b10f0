// fract is a small package defining the fixed point [Unit] type used
// throughout microfont for sub-pixel positioning. Units store values
// in 64ths: var pixels fract.Unit = 64 means 1 pixel, 96 means 1.5
// pixels. The scale matches the precomputed sine table used by the
// glyph compositor, so rotation math never leaves integer land.
//
// The internal representation is compatible with [fixed.Int26_6].
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
package fract
