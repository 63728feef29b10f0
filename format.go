package microfont

import "encoding/binary"

// MFNT container layout, little endian:
//
//	offset | size      | field
//	-------+-----------+------------------------------------------
//	0      | 4         | magic bytes "MFNT"
//	4      | 1         | height
//	5      | 1         | baseline (max ascent)
//	6      | 1         | max glyph width
//	7      | 1         | monospaced flag (0/1)
//	8      | 4         | sparse index length in bytes
//	12     | index len | sparse index: {u16 code, u16 block offset}
//	...    | remaining | glyph data blocks
//
// Each glyph data block is a u16 logical width followed by the packed
// pixel rows (horizontally mapped, each row padded to a byte). Blocks
// start at multiples of 8 bytes from the start of the data section,
// which is what allows index offsets to fit in 16 bits. Block 0 is
// the fallback glyph and has no index entry: binary search misses
// resolve to it.

// Number of bytes of the fixed MFNT header.
const HeaderLen = 12

// Alignment of glyph data blocks within the data section.
const BlockAlign = 8

// Maximum byte size of the glyph data section. Block offsets are
// 16 bit counts of 8 byte blocks, so the addressable range is
// 2^19 - 1 bytes. Exceeding it is a build time error.
const MaxDataSize = 1<<19 - 1

var mfntMagic = [4]byte{'M', 'F', 'N', 'T'}

// The decoded fixed part of an MFNT container. Height and Baseline
// are the values actually achieved by the build's height fitting,
// not the requested ones.
type Header struct {
	Height     int
	Baseline   int
	MaxWidth   int
	Monospaced bool
	IndexLen   int
}

// Appends the 12 byte encoding of the header to the given buffer.
// Values outside their encodable ranges are a build bug; the builder
// validates them before calling this.
func AppendHeader(buf []byte, header Header) []byte {
	buf = append(buf, mfntMagic[:]...)
	monospaced := byte(0)
	if header.Monospaced { monospaced = 1 }
	buf = append(buf, byte(header.Height), byte(header.Baseline), byte(header.MaxWidth), monospaced)
	return binary.LittleEndian.AppendUint32(buf, uint32(header.IndexLen))
}

// Decodes the fixed header at the start of an MFNT container.
// Returns [ErrCorruptHeader] on truncated data and [ErrBadMagic]
// if the magic bytes don't match.
func ParseHeader(data []byte) (Header, error) {
	var header Header
	if len(data) < HeaderLen { return header, ErrCorruptHeader }
	if [4]byte(data[0 : 4]) != mfntMagic { return header, ErrBadMagic }
	header.Height = int(data[4])
	header.Baseline = int(data[5])
	header.MaxWidth = int(data[6])
	header.Monospaced = data[7] != 0
	header.IndexLen = int(binary.LittleEndian.Uint32(data[8 : 12]))
	return header, nil
}
