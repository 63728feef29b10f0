package builder

import "io"
import "errors"
import "encoding/binary"

import "github.com/mfnt/microfont"

// Returned when height fitting finds no covered code point to measure.
var ErrBuildNoGlyphs = errors.New("can't build font with no covered glyphs")

// Returned when the charset's fallback character has no glyph in the
// source font. Every other coverage gap is tolerated as a hole, but
// the fallback is what holes resolve to, so it must exist.
var ErrFallbackNotCovered = errors.New("fallback character not covered by source font")

// Returned when the achieved height, baseline or max width don't fit
// the container's 8 bit header fields.
var ErrMetricsRange = errors.New("font metrics exceed 255 pixels")

// Returned in strict height mode when a bitmap native source's fixed
// size differs from the requested height.
var ErrHeightMismatch = errors.New("requested height differs from bitmap font native size")

// A Builder assembles an MFNT container from a [Rasterizer] and a
// [Charset]. Builds are one shot batch operations with no state kept
// across runs; a single Builder can run multiple builds.
type Builder struct {
	rast         Rasterizer
	charset      Charset
	monospaced   bool
	reverse      bool
	strictHeight bool
}

// Creates a builder for the given glyph source and charset.
func New(rast Rasterizer, charset Charset) *Builder {
	return &Builder{ rast: rast, charset: charset }
}

// Makes every glyph occupy the font's max width instead of its own
// logical width.
func (self *Builder) SetMonospaced(monospaced bool) { self.monospaced = monospaced }

// Reverses the bit order within each packed output byte. Some
// display drivers consume glyph rows least significant bit first.
func (self *Builder) SetBitReversal(reverse bool) { self.reverse = reverse }

// Decides the policy for bitmap native sources whose fixed pixel
// size differs from the requested build height: strict mode fails
// with [ErrHeightMismatch], the default silently overrides the
// request with the native size (a warning is traced).
func (self *Builder) SetStrictHeight(strict bool) { self.strictHeight = strict }

// Builds the container at the requested pixel height and writes it
// to the given writer. Nothing is written until the whole container
// has been assembled and validated, so a failed build (capacity,
// coverage, rasterizer or metric range errors) produces no output.
// Returns the achieved metrics, which are what the header records.
func (self *Builder) Build(requestedHeight int, writer io.Writer) (Metrics, error) {
	if !self.rast.Covers(self.charset.Fallback()) {
		return Metrics{}, ErrFallbackNotCovered
	}
	if native := self.rast.NativeSize(); native != 0 && requestedHeight != native {
		if self.strictHeight { return Metrics{}, ErrHeightMismatch }
		tracer().Infof("requested height %d ignored, bitmap font has native size %d",
			requestedHeight, native)
	}

	metrics, err := FitHeight(self.rast, self.charset, requestedHeight)
	if err != nil { return metrics, err }
	if metrics.Height > 255 || metrics.Ascent > 255 || metrics.MaxWidth > 255 {
		return metrics, ErrMetricsRange
	}

	data, sparse, err := self.buildArrays(metrics)
	if err != nil { return metrics, err }

	header := microfont.AppendHeader(nil, microfont.Header{
		Height: metrics.Height,
		Baseline: metrics.Ascent,
		MaxWidth: metrics.MaxWidth,
		Monospaced: self.monospaced,
		IndexLen: len(sparse),
	})
	for _, chunk := range [][]byte{header, sparse, data} {
		if _, err := writer.Write(chunk); err != nil { return metrics, err }
	}
	return metrics, nil
}

// Serializes the glyph data section and its sparse index. The
// fallback glyph always occupies block 0 and has no index entry;
// every other covered code point gets one, in increasing code point
// order, with its block offset counted in 8 byte units.
func (self *Builder) buildArrays(metrics Metrics) (data, sparse []byte, err error) {
	data, err = self.appendGlyphBlock(data, self.charset.Fallback(), metrics)
	if err != nil { return nil, nil, err }

	for _, codePoint := range self.charset.CodePoints()[1 : ] {
		if !self.rast.Covers(codePoint) {
			tracer().Debugf("skipping %q: not covered by source font", codePoint)
			continue
		}
		if codePoint > 0xFFFF {
			tracer().Infof("skipping %q: code point beyond the u16 index range", codePoint)
			continue
		}

		data = padToBlock(data)
		blockOffset := len(data)/microfont.BlockAlign
		if blockOffset > 0xFFFF { return nil, nil, microfont.ErrCapacity }
		sparse = binary.LittleEndian.AppendUint16(sparse, uint16(codePoint))
		sparse = binary.LittleEndian.AppendUint16(sparse, uint16(blockOffset))
		data, err = self.appendGlyphBlock(data, codePoint, metrics)
		if err != nil { return nil, nil, err }
	}
	if len(data) > microfont.MaxDataSize { return nil, nil, microfont.ErrCapacity }
	return data, sparse, nil
}

// Rasterizes one code point at the fitted size, composites it onto
// the shared baseline and appends its data block ({u16 width, packed
// rows}) to the buffer.
func (self *Builder) appendGlyphBlock(data []byte, codePoint rune, metrics Metrics) ([]byte, error) {
	glyph, err := self.rast.Rasterize(codePoint, metrics.PixelSize)
	if err != nil { return nil, err }

	logical, left := glyph.logicalWidth()
	cellWidth := logical
	if self.monospaced { cellWidth = metrics.MaxWidth }
	cell := NewBitmap(cellWidth, metrics.Height)
	// anchor the glyph to the shared baseline
	row := metrics.Height - glyph.Ascent() - metrics.Descent
	cell.Blit(glyph.Mask, row, left)

	data = binary.LittleEndian.AppendUint16(data, uint16(cellWidth))
	return cell.AppendHorz(data, self.reverse), nil
}

// Pads the data section so the next block starts on an 8 byte
// boundary, which is what lets index offsets fit in 16 bits.
func padToBlock(data []byte) []byte {
	for len(data) % microfont.BlockAlign != 0 {
		data = append(data, 0)
	}
	return data
}
