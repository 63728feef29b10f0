package microfont

import "testing"

func TestHeaderRoundTrip(t *testing.T) {
	in := Header{ Height: 16, Baseline: 12, MaxWidth: 11, Monospaced: true, IndexLen: 40 }
	encoded := AppendHeader(nil, in)
	if len(encoded) != HeaderLen {
		t.Fatalf("expected %d header bytes, got %d", HeaderLen, len(encoded))
	}
	if string(encoded[0 : 4]) != "MFNT" {
		t.Fatalf("bad magic %q", encoded[0 : 4])
	}
	out, err := ParseHeader(encoded)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if out != in { t.Fatalf("expected %v, got %v", in, out) }
}

func TestHeaderErrors(t *testing.T) {
	_, err := ParseHeader([]byte("MFNT"))
	if err != ErrCorruptHeader {
		t.Fatalf("expected ErrCorruptHeader, got %v", err)
	}
	_, err = ParseHeader([]byte("GGFNT670860486"))
	if err != ErrBadMagic {
		t.Fatalf("expected ErrBadMagic, got %v", err)
	}
}

func TestSearchIndex(t *testing.T) {
	// {code, offset} pairs, increasing code order
	var index []byte
	entries := map[uint16]uint16{ 'A': 1, 'B': 7, 'Z': 13, 'a': 21, 0x2026: 40 }
	for _, code := range []uint16{'A', 'B', 'Z', 'a', 0x2026} {
		offset := entries[code]
		index = append(index, byte(code), byte(code >> 8), byte(offset), byte(offset >> 8))
	}

	for code, offset := range entries {
		if got := searchIndex(index, code); got != offset {
			t.Fatalf("code %d: expected offset %d, got %d", code, offset, got)
		}
	}
	for _, code := range []uint16{0, '@', 'C', 'b', 0xFFFF} {
		if got := searchIndex(index, code); got != 0 {
			t.Fatalf("absent code %d: expected fallback offset 0, got %d", code, got)
		}
	}
	if got := searchIndex(nil, 'A'); got != 0 {
		t.Fatalf("empty index: expected fallback offset 0, got %d", got)
	}
}
