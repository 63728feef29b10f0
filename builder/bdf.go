package builder

import "os"
import "io"
import "bufio"
import "errors"
import "strconv"
import "strings"

var _ Rasterizer = (*BDFRasterizer)(nil)

// A [Rasterizer] for pre-rasterized .bdf bitmap fonts. These carry
// glyphs at a single native pixel size, so the height fitter skips
// its multi-pass iteration and measures once; whether a mismatched
// requested height is an error is decided by [Builder.SetStrictHeight].
type BDFRasterizer struct {
	nativeSize int
	glyphs     map[rune]Glyph
}

// Parses the .bdf font file at the given path.
func ParseBDFFromPath(path string) (*BDFRasterizer, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".bdf") {
		return nil, errors.New("invalid bitmap font path '" + path + "'")
	}
	file, err := os.Open(path)
	if err != nil { return nil, err }
	rasterizer, err := ParseBDF(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return rasterizer, file.Close()
}

// Parses a font in BDF text format. Only the subset of the format
// needed for monochrome glyph extraction is interpreted (SIZE,
// FONTBOUNDINGBOX, ENCODING, DWIDTH, BBX, BITMAP); everything else
// is skipped.
func ParseBDF(reader io.Reader) (*BDFRasterizer, error) {
	rasterizer := &BDFRasterizer{ glyphs: make(map[rune]Glyph, 128) }

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() || !strings.HasPrefix(scanner.Text(), "STARTFONT") {
		return nil, errors.New("not a BDF font file (missing STARTFONT)")
	}

	var current Glyph
	var codePoint rune = -1
	var bbWidth, bbHeight int
	var inBitmap bool
	var bitmapRow int
	for scanner.Scan() {
		line := scanner.Text()
		if inBitmap {
			if strings.HasPrefix(line, "ENDCHAR") {
				inBitmap = false
				if codePoint >= 0 { rasterizer.glyphs[codePoint] = current }
				codePoint = -1
				continue
			}
			if err := decodeBitmapRow(current.Mask, bitmapRow, line); err != nil { return nil, err }
			bitmapRow++
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 { continue }
		switch fields[0] {
		case "FONTBOUNDINGBOX":
			height, err := intField(fields, 2)
			if err != nil { return nil, err }
			// the font bounding box height is the native pixel size
			rasterizer.nativeSize = height
		case "STARTCHAR":
			current = Glyph{}
			codePoint = -1
		case "ENCODING":
			value, err := intField(fields, 1)
			if err != nil { return nil, err }
			codePoint = rune(value)
		case "DWIDTH":
			advance, err := intField(fields, 1)
			if err != nil { return nil, err }
			current.Advance = advance
		case "BBX":
			var err error
			bbWidth, err = intField(fields, 1)
			if err == nil { bbHeight, err = intField(fields, 2) }
			xOff, errX := intField(fields, 3)
			yOff, errY := intField(fields, 4)
			if err != nil || errX != nil || errY != nil {
				return nil, errors.New("malformed BBX line in BDF font")
			}
			// BBX offsets are relative to the baseline pen origin
			current.Left = xOff
			current.Top = bbHeight + yOff
		case "BITMAP":
			current.Mask = NewBitmap(bbWidth, bbHeight)
			inBitmap = true
			bitmapRow = 0
		case "ENDCHAR": // chars without a BITMAP section (e.g. space)
			if codePoint >= 0 {
				if current.Mask == nil { current.Mask = NewBitmap(bbWidth, bbHeight) }
				rasterizer.glyphs[codePoint] = current
			}
			codePoint = -1
		case "ENDFONT":
			// stop even if the scanner has trailing garbage
			if len(rasterizer.glyphs) == 0 {
				return nil, errors.New("BDF font defines no glyphs")
			}
			return rasterizer, nil
		}
	}
	if err := scanner.Err(); err != nil { return nil, err }
	return nil, errors.New("truncated BDF font (missing ENDFONT)")
}

func intField(fields []string, index int) (int, error) {
	if index >= len(fields) {
		return 0, errors.New("malformed BDF line '" + strings.Join(fields, " ") + "'")
	}
	return strconv.Atoi(fields[index])
}

// Decodes one BITMAP hex line into the given mask row. Hex rows pack
// pixels most significant bit first, left to right.
func decodeBitmapRow(mask *Bitmap, row int, line string) error {
	line = strings.TrimSpace(line)
	for byteIndex := 0; byteIndex*2 + 1 < len(line); byteIndex++ {
		value, err := strconv.ParseUint(line[byteIndex*2 : byteIndex*2 + 2], 16, 8)
		if err != nil { return errors.New("malformed BITMAP row in BDF font") }
		for bit := 0; bit < 8; bit++ {
			if value & (0x80 >> bit) != 0 { mask.Set(byteIndex*8 + bit, row) }
		}
	}
	return nil
}

// Satisfies the [Rasterizer] interface.
func (self *BDFRasterizer) NativeSize() int { return self.nativeSize }

// Satisfies the [Rasterizer] interface.
func (self *BDFRasterizer) Covers(codePoint rune) bool {
	_, covered := self.glyphs[codePoint]
	return covered
}

// Satisfies the [Rasterizer] interface. The pixel size is ignored;
// bitmap fonts only exist at their native size.
func (self *BDFRasterizer) Rasterize(codePoint rune, pixelSize int) (Glyph, error) {
	glyph, covered := self.glyphs[codePoint]
	if !covered {
		return Glyph{}, errors.New("code point not covered by font (check Covers first)")
	}
	return glyph, nil
}
