package microfont

// Renderers draw glyphs and text from a [Font] onto a target
// [Surface]. The zero-ish configuration draws unrotated, color 1,
// with no extra spacing; everything can be adjusted through the
// setter methods and stays in effect for subsequent draws.
//
// Renderers are lightweight; feel free to create one per font and
// target combination. They are not safe for concurrent use, mostly
// because the underlying [Font] isn't either.
type Renderer struct {
	font        *Font
	target      *Surface
	color       uint16
	rotation    int
	charSpacing int
	lineSpacing int
}

// Creates a renderer for the given font. The font may be nil if only
// [Renderer.DrawGlyph] is used with externally obtained glyphs.
func NewRenderer(font *Font) *Renderer {
	return &Renderer{ font: font, color: 1 }
}

// Sets the surface that subsequent draw operations mutate.
func (self *Renderer) SetTarget(target *Surface) { self.target = target }

// Sets the pixel value written for "on" glyph pixels. On [Mono]
// surfaces any nonzero color sets bits and zero clears them; on
// [RGB565] surfaces the color is the full 16 bit word.
func (self *Renderer) SetColor(color uint16) { self.color = color }

// Sets the rotation applied to glyphs and text, in whole degrees,
// counterclockwise around each draw operation's origin.
func (self *Renderer) SetRotation(degrees int) { self.rotation = degrees }

// Sets the extra spacing added between characters and between lines
// by [Renderer.Draw], in pixels.
func (self *Renderer) SetSpacing(char, line int) {
	self.charSpacing = char
	self.lineSpacing = line
}

func (self *Renderer) GetFont() *Font { return self.font }
func (self *Renderer) GetRotation() int { return self.rotation }
