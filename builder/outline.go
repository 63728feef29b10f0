package builder

import "os"
import "io"
import "io/fs"
import "image"
import "errors"

import "golang.org/x/image/font"
import "golang.org/x/image/font/opentype"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Rasterizer = (*OutlineRasterizer)(nil)

// Alpha coverage at or above this renders as an "on" pixel when
// reducing antialiased rasterization output to a monochrome mask.
const monoThreshold = 0x80

// A [Rasterizer] for scalable .ttf/.otf fonts, backed by
// [golang.org/x/image/font/sfnt] and the [opentype] face rasterizer.
// Faces are cached per pixel size, since height fitting rasterizes
// the same charset at several trial sizes.
//
// [opentype]: https://pkg.go.dev/golang.org/x/image/font/opentype
type OutlineRasterizer struct {
	font   *sfnt.Font
	buffer sfnt.Buffer
	faces  map[int]font.Face
}

// Creates a rasterizer for an already parsed outline font.
// See [ParseFromPath] and friends for obtaining one.
func NewOutlineRasterizer(sfntFont *sfnt.Font) *OutlineRasterizer {
	return &OutlineRasterizer{ font: sfntFont, faces: make(map[int]font.Face, 8) }
}

// Satisfies the [Rasterizer] interface. Outline fonts are scalable,
// so there is no native size.
func (self *OutlineRasterizer) NativeSize() int { return 0 }

// Satisfies the [Rasterizer] interface.
func (self *OutlineRasterizer) Covers(codePoint rune) bool {
	index, err := self.font.GlyphIndex(&self.buffer, codePoint)
	return err == nil && index != 0
}

func (self *OutlineRasterizer) face(pixelSize int) (font.Face, error) {
	if face, cached := self.faces[pixelSize]; cached { return face, nil }
	face, err := opentype.NewFace(self.font, &opentype.FaceOptions{
		Size: float64(pixelSize), // points == pixels at 72 DPI
		DPI: 72,
		Hinting: font.HintingFull,
	})
	if err != nil { return nil, err }
	self.faces[pixelSize] = face
	return face, nil
}

// Satisfies the [Rasterizer] interface. The face's antialiased
// output is thresholded into a monochrome mask; fractional advance
// widths are truncated to whole pixels.
func (self *OutlineRasterizer) Rasterize(codePoint rune, pixelSize int) (Glyph, error) {
	face, err := self.face(pixelSize)
	if err != nil { return Glyph{}, err }

	bounds, maskImage, maskOrigin, advance, hasGlyph := face.Glyph(fixed.Point26_6{}, codePoint)
	if !hasGlyph {
		return Glyph{}, errors.New("code point not covered by font (check Covers first)")
	}

	mask := NewBitmap(bounds.Dx(), bounds.Dy())
	alpha, isAlpha := maskImage.(*image.Alpha)
	for y := 0; y < mask.Height; y++ {
		for x := 0; x < mask.Width; x++ {
			var coverage uint8
			if isAlpha {
				coverage = alpha.AlphaAt(maskOrigin.X + x, maskOrigin.Y + y).A
			} else {
				_, _, _, a := maskImage.At(maskOrigin.X + x, maskOrigin.Y + y).RGBA()
				coverage = uint8(a >> 8)
			}
			if coverage >= monoThreshold { mask.Set(x, y) }
		}
	}

	return Glyph{
		Mask: mask,
		Top: -bounds.Min.Y, // glyph drawn at a (0, 0) dot, so the rect starts at -top
		Left: bounds.Min.X,
		Advance: advance.Floor(),
	}, nil
}

// ---- parsing helpers ----

// Similar to [sfnt.Parse](). The bytes must not be modified while
// the font is in use.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, error) {
	return sfnt.Parse(fontBytes)
}

// Attempts to parse the font at the given filepath. Supported
// formats are .ttf and .otf; for .bdf bitmap fonts, see
// [ParseBDFFromPath] instead.
func ParseFromPath(path string) (*sfnt.Font, error) {
	if !hasOutlineFontExtension(path) {
		return nil, errors.New("invalid outline font path '" + path + "'")
	}
	file, err := os.Open(path)
	if err != nil { return nil, err }
	return parseFontFileAndClose(file)
}

// Same as [ParseFromPath](), but for embedded filesystems.
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, error) {
	if !hasOutlineFontExtension(path) {
		return nil, errors.New("invalid outline font path '" + path + "'")
	}
	file, err := filesys.Open(path)
	if err != nil { return nil, err }
	return parseFontFileAndClose(file)
}

func parseFontFileAndClose(file io.ReadCloser) (*sfnt.Font, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	err = file.Close()
	if err != nil { return nil, err }
	return ParseFromBytes(fontBytes)
}

// Whether the font path ends in .ttf or .otf.
func hasOutlineFontExtension(path string) bool {
	if len(path) < 4 { return false }
	if path[len(path)-1] != 'f' { return false }
	if path[len(path)-2] != 't' { return false }
	thrd := path[len(path)-3]
	if thrd != 't' && thrd != 'o' { return false }
	return path[len(path)-4] == '.'
}
