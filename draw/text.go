package draw

import "image/color"

// paintThreshold is the glyph coverage cutoff: pixels above it are painted
// solid black, everything else is left untouched. The engine does binary
// thresholding, not alpha blending, because ePaper panels render pure
// black-and-white anyway.
const paintThreshold = 30

var black = color.RGBA{A: 255}

// Text renders a string in one of the canvas's fonts. Content, size, and
// font can be changed freely before layout.
type Text struct {
	// Content is the string to render.
	Content string
	// Size is the font size in pixels.
	Size float64
	// Font names a font in the canvas's registry.
	Font string
	// Wrap enables word wrapping at the suggested width minus padding.
	Wrap bool

	padding Padding
}

// NewText returns a text view without wrapping or padding.
func NewText(content string, size float64, font string) *Text {
	return &Text{Content: content, Size: size, Font: font}
}

// shape lays the text out via the canvas shaper. With wrapping enabled the
// line width is the suggestion minus the view's own padding.
func (t *Text) shape(c *Canvas, suggested Bounds) []Glyph {
	if c == nil || c.shaper == nil {
		return nil
	}
	maxWidth := 0
	if t.Wrap {
		maxWidth = suggested.Sub(t.padding.Bounds()).Width
	}
	return c.shaper.Shape(t.Font, t.Size, t.Content, maxWidth)
}

// Bounds implements View. The result is the tight bounding box of all glyph
// cells plus padding.
func (t *Text) Bounds(c *Canvas, suggested Bounds) Bounds {
	glyphs := t.shape(c, suggested)

	maxX, maxY := 0, 0
	for _, g := range glyphs {
		if right := g.X + g.Width; right > maxX {
			maxX = right
		}
		if bottom := g.Y + g.Height; bottom > maxY {
			maxY = bottom
		}
	}

	return NewBounds(
		maxX+t.padding.Left+t.padding.Right,
		maxY+t.padding.Top+t.padding.Bottom,
	)
}

// Draw implements View. Each glyph is rasterized to a coverage mask and every
// pixel over the threshold is painted solid black.
func (t *Text) Draw(c *Canvas, x, y int, suggested Bounds) {
	glyphs := t.shape(c, suggested)

	originX := x + t.padding.Left
	originY := y + t.padding.Top

	for _, g := range glyphs {
		mask := c.shaper.Rasterize(t.Font, g.Rune, t.Size)
		for my := 0; my < mask.Height; my++ {
			for mx := 0; mx < mask.Width; mx++ {
				if mask.At(mx, my) > paintThreshold {
					c.SetPixel(originX+g.X+mx, originY+g.Y+my, black)
				}
			}
		}
	}
}

// Padding implements View.
func (t *Text) Padding() Padding { return t.padding }

// SetPadding implements View.
func (t *Text) SetPadding(p Padding) { t.padding = p }
