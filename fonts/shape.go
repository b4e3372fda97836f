package fonts

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/jonasoberschweiber/open-epaper-gen/draw"
)

// Shape implements draw.Shaper. Glyph cells are positioned relative to the
// top-left corner of the shaped run, with each line's baseline at its
// ascent. A maxWidth greater than zero wraps lines greedily at word
// boundaries; words wider than maxWidth get a line of their own rather than
// being split. Unknown fonts and runes missing from the font shape to
// nothing.
func (reg *Registry) Shape(name string, size float64, text string, maxWidth int) []draw.Glyph {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	face, err := reg.face(name, size)
	if err != nil {
		return nil
	}

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	var glyphs []draw.Glyph
	for i, line := range splitLines(face, text, maxWidth) {
		baseline := i*lineHeight + ascent
		penX := fixed.I(0)
		prev := rune(-1)
		for _, r := range line {
			if prev >= 0 {
				penX += face.Kern(prev, r)
			}
			// Whole-pixel dot positions keep the rastered cell identical
			// to the mask Rasterize produces for the same rune and size.
			dot := fixed.P(penX.Round(), baseline)
			dr, _, _, advance, ok := face.Glyph(dot, r)
			if !ok {
				prev = -1
				continue
			}
			if dr.Dx() > 0 && dr.Dy() > 0 {
				glyphs = append(glyphs, draw.Glyph{
					Rune:   r,
					X:      dr.Min.X,
					Y:      dr.Min.Y,
					Width:  dr.Dx(),
					Height: dr.Dy(),
				})
			}
			penX += advance
			prev = r
		}
	}
	return glyphs
}

// Rasterize implements draw.Shaper. Masks come from the cache when the
// glyph has been rastered before at the same size.
func (reg *Registry) Rasterize(name string, r rune, size float64) draw.Mask {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	key := maskKey{font: name, r: r, size: size}
	if mask, ok := reg.masks.Get(key); ok {
		return mask
	}

	face, err := reg.face(name, size)
	if err != nil {
		return draw.Mask{}
	}

	dot := fixed.P(0, face.Metrics().Ascent.Ceil())
	dr, src, srcOffset, _, ok := face.Glyph(dot, r)
	if !ok || dr.Dx() == 0 || dr.Dy() == 0 {
		return draw.Mask{}
	}

	mask := draw.Mask{
		Width:    dr.Dx(),
		Height:   dr.Dy(),
		Coverage: make([]uint8, dr.Dx()*dr.Dy()),
	}
	for y := 0; y < mask.Height; y++ {
		for x := 0; x < mask.Width; x++ {
			_, _, _, a := src.At(srcOffset.X+x, srcOffset.Y+y).RGBA()
			mask.Coverage[y*mask.Width+x] = uint8(a >> 8)
		}
	}
	reg.masks.Add(key, mask)
	return mask
}

// splitLines breaks text on explicit newlines and, with a positive
// maxWidth, wraps each line at word boundaries.
func splitLines(face font.Face, text string, maxWidth int) []string {
	raw := strings.Split(text, "\n")
	if maxWidth <= 0 {
		return raw
	}

	limit := fixed.I(maxWidth)
	var lines []string
	for _, line := range raw {
		lines = append(lines, wrapLine(face, line, limit)...)
	}
	return lines
}

func wrapLine(face font.Face, line string, limit fixed.Int26_6) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(line) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current != "" && font.MeasureString(face, candidate) > limit {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
