package microfont

import "io"
import "os"
import "encoding/binary"

// Caching behavior for an open [Font]. Fonts read their sparse index
// and glyph data from storage on every lookup unless told otherwise;
// the cache modes trade memory for lookup latency. Caches are
// unbounded and live until the font is closed, which is fine for the
// small charsets MFNT targets.
type CacheMode uint8

const (
	// Read index and glyph data from storage on every lookup.
	CacheNone CacheMode = iota

	// Keep the sparse index bytes in memory after the first lookup.
	CacheIndex

	// Keep every decoded glyph in memory, keyed by the requested
	// code point. Implies [CacheIndex].
	CacheGlyphs
)

// A decoded glyph: packed pixel rows at the font's fixed height,
// horizontally mapped, each row padded to a byte boundary, plus the
// logical width in pixels (the horizontal space the glyph occupies,
// advance included).
type Glyph struct {
	Data   []byte
	Width  int
	Height int
}

// A Font is an open MFNT container. It keeps its source open for low
// latency lookups; use [Font.Close] when done. Fonts are not safe
// for concurrent use.
type Font struct {
	source io.ReadSeeker
	closer io.Closer
	header Header
	mode   CacheMode
	index  []byte
	glyphs map[rune]Glyph
}

// Opens the MFNT font file at the given path. The file stays open
// until [Font.Close] is called.
func Open(path string, mode CacheMode) (*Font, error) {
	file, err := os.Open(path)
	if err != nil { return nil, err }
	font, err := New(file, mode)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	font.closer = file
	return font, nil
}

// Creates a [Font] from an already open container source, like a
// [bytes.Reader] over an embedded font. Only the header is read
// upfront; everything else stays on the source until it is needed.
func New(source io.ReadSeeker, mode CacheMode) (*Font, error) {
	var headerBytes [HeaderLen]byte
	if _, err := source.Seek(0, io.SeekStart); err != nil { return nil, err }
	if _, err := io.ReadFull(source, headerBytes[:]); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF { return nil, ErrCorruptHeader }
		return nil, err
	}
	header, err := ParseHeader(headerBytes[:])
	if err != nil { return nil, err }

	font := &Font{ source: source, header: header, mode: mode }
	if mode >= CacheGlyphs {
		font.glyphs = make(map[rune]Glyph, 16)
	}
	return font, nil
}

// Height of every glyph in the font, in pixels.
func (self *Font) Height() int { return self.header.Height }

// Distance from the top of a glyph to its baseline, in pixels.
func (self *Font) Baseline() int { return self.header.Baseline }

// Width of the widest glyph in the font, in pixels.
func (self *Font) MaxWidth() int { return self.header.MaxWidth }

// Whether the font was built with every glyph occupying the
// same horizontal space.
func (self *Font) Monospaced() bool { return self.header.Monospaced }

// Closes the underlying source, if the font owns one. Cached data
// is dropped. The font must not be used afterwards.
func (self *Font) Close() error {
	self.index = nil
	self.glyphs = nil
	if self.closer == nil { return nil }
	return self.closer.Close()
}

// Returns the glyph for the given code point. Code points without an
// indexed glyph resolve to the font's fallback glyph; only storage
// I/O can make this operation fail.
func (self *Font) Glyph(codePoint rune) (Glyph, error) {
	if self.glyphs != nil {
		if glyph, cached := self.glyphs[codePoint]; cached { return glyph, nil }
	}

	index, err := self.indexBytes()
	if err != nil { return Glyph{}, err }
	offset := 0
	if codePoint >= 0 && codePoint <= 0xFFFF {
		offset = int(searchIndex(index, uint16(codePoint)))
	}
	glyph, err := self.readGlyph(offset)
	if err != nil { return Glyph{}, err }

	if self.glyphs != nil { self.glyphs[codePoint] = glyph }
	return glyph, nil
}

// Returns the sparse index bytes, reading them from storage
// unless already cached.
func (self *Font) indexBytes() ([]byte, error) {
	if self.index != nil { return self.index, nil }
	index := make([]byte, self.header.IndexLen)
	if _, err := self.source.Seek(HeaderLen, io.SeekStart); err != nil { return nil, err }
	if _, err := io.ReadFull(self.source, index); err != nil { return nil, err }
	if self.mode >= CacheIndex { self.index = index }
	return index, nil
}

// Reads and decodes the glyph data block at the given offset,
// counted in 8 byte blocks from the start of the data section.
func (self *Font) readGlyph(blockOffset int) (Glyph, error) {
	pos := int64(HeaderLen + self.header.IndexLen + blockOffset*BlockAlign)
	if _, err := self.source.Seek(pos, io.SeekStart); err != nil { return Glyph{}, err }

	var widthBytes [2]byte
	if _, err := io.ReadFull(self.source, widthBytes[:]); err != nil { return Glyph{}, err }
	width := int(binary.LittleEndian.Uint16(widthBytes[:]))
	data := make([]byte, ((width + 7)/8)*self.header.Height)
	if _, err := io.ReadFull(self.source, data); err != nil { return Glyph{}, err }
	return Glyph{ Data: data, Width: width, Height: self.header.Height }, nil
}

// Binary search over the raw sparse index bytes. Entries are 4 bytes
// ({u16 code, u16 block offset}, little endian); the midpoint is
// derived by masking the byte length down to a multiple of 8, which
// keeps every probe aligned to an entry boundary without dividing.
// A miss returns 0, the fallback glyph's block.
func searchIndex(index []byte, code uint16) uint16 {
	for len(index) >= 4 {
		mid := (len(index) &^ 7) >> 1
		probe := uint16(index[mid]) | uint16(index[mid+1])<<8
		if probe == code {
			return uint16(index[mid+2]) | uint16(index[mid+3])<<8
		}
		if mid == 0 { break }
		if probe < code {
			index = index[mid:]
		} else {
			index = index[:mid]
		}
	}
	return 0
}
