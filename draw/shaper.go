package draw

// Glyph is one shaped glyph cell, positioned relative to the top-left origin
// of the shaped text run.
type Glyph struct {
	// Rune identifies the glyph for rasterization.
	Rune rune
	// X, Y are the top-left corner of the glyph cell.
	X, Y int
	// Width, Height are the cell dimensions in pixels.
	Width, Height int
}

// Mask is a rasterized glyph: row-major coverage values, one byte per pixel,
// 0 (empty) to 255 (fully covered).
type Mask struct {
	Width    int
	Height   int
	Coverage []uint8
}

// At returns the coverage at (x, y). Out-of-range coordinates read as zero.
func (m Mask) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return m.Coverage[y*m.Width+x]
}

// Shaper lays out and rasterizes text for named fonts. Text views call Shape
// during measurement and drawing, and Rasterize once per glyph while drawing.
//
// Implementations must be total: an unknown font name yields no glyphs and an
// empty mask rather than an error, so that layout can never fail.
type Shaper interface {
	// Shape lays out text at the given pixel size. A maxWidth greater than
	// zero wraps lines at word boundaries to fit within it; zero or
	// negative means unconstrained.
	Shape(font string, size float64, text string, maxWidth int) []Glyph

	// Rasterize produces the coverage mask for a single glyph at the given
	// pixel size.
	Rasterize(font string, r rune, size float64) Mask
}
