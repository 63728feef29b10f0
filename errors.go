package microfont

import "errors"

// Returned when a container is shorter than the fixed MFNT header.
var ErrCorruptHeader = errors.New("corrupted or truncated MFNT header")

// Returned when the magic bytes at the start of a container don't
// spell "MFNT".
var ErrBadMagic = errors.New("not a MicroFont (MFNT) file")

// Returned at build time when the serialized glyph data would exceed
// the offset range addressable by the sparse index ([MaxDataSize]).
var ErrCapacity = errors.New("total size of font bitmap exceeds 524287 bytes")

// Returned by draw operations when the target surface declares a
// pixel encoding the compositor doesn't support.
var ErrUnsupportedEncoding = errors.New("unsupported target pixel encoding")
