package terminal

// ColorDepth indicates terminal color capability
type ColorDepth uint8

const (
	Depth8         ColorDepth = iota // ANSI 8-color
	Depth256                         // xterm-256 palette
	DepthTrueColor                   // 24-bit RGB
)

// String returns the depth name
func (d ColorDepth) String() string {
	switch d {
	case DepthTrueColor:
		return "truecolor"
	case Depth256:
		return "256"
	default:
		return "8"
	}
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Color carries one color at every fidelity level so the renderer can step down
// without recomputing. The zero value is DefaultColor, the terminal's own color.
// Colors are comparable with ==
type Color struct {
	rgb  RGB
	c256 uint8
	c8   uint8
	set  bool
}

// DefaultColor selects the terminal default foreground or background
var DefaultColor = Color{}

// NewColor builds a Color from an RGB triple, quantizing the palette forms
func NewColor(r, g, b uint8) Color {
	c := RGB{R: r, G: g, B: b}
	return Color{
		rgb:  c,
		c256: RGBTo256(c),
		c8:   RGBTo8(c),
		set:  true,
	}
}

// ColorFromRGB builds a Color from an RGB value
func ColorFromRGB(c RGB) Color {
	return NewColor(c.R, c.G, c.B)
}

// PaletteColor builds a Color from an xterm-256 palette index
// Indices 0-15 keep their ANSI 8-color identity at the lowest fidelity
func PaletteColor(idx uint8) Color {
	c := Color{
		rgb:  Palette256RGB(idx),
		c256: idx,
		set:  true,
	}
	switch {
	case idx < 8:
		c.c8 = idx
	case idx < 16:
		c.c8 = idx - 8
	default:
		c.c8 = RGBTo8(c.rgb)
	}
	return c
}

// IsDefault reports whether c is the terminal default color
func (c Color) IsDefault() bool {
	return !c.set
}

// RGB returns the truecolor form
func (c Color) RGB() RGB {
	return c.rgb
}

// Index256 returns the xterm-256 palette form
func (c Color) Index256() uint8 {
	return c.c256
}

// Index8 returns the ANSI 8-color form
func (c Color) Index8() uint8 {
	return c.c8
}

// Attr represents text style attributes (bitmask)
// Bit order matches the profile style functions
type Attr uint8

const (
	AttrNone          Attr = 0
	AttrBold          Attr = 1 << 0
	AttrFaint         Attr = 1 << 1
	AttrItalic        Attr = 1 << 2
	AttrUnderline     Attr = 1 << 3
	AttrBlink         Attr = 1 << 4
	AttrReverse       Attr = 1 << 5
	AttrHidden        Attr = 1 << 6
	AttrStrikethrough Attr = 1 << 7
)

// GFX is the requested graphics state for a write
type GFX struct {
	Fg   Color
	Bg   Color
	Attr Attr
}

// DefaultGFX uses terminal default colors and no attributes
var DefaultGFX = GFX{}
