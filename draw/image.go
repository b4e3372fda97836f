package draw

import (
	"errors"
	"fmt"
	"image"
	"io"

	// Register the decoders for the raster formats tag assets come in.
	_ "image/jpeg"
	_ "image/png"
)

// ErrDecodeImage is returned when image bytes cannot be decoded.
var ErrDecodeImage = errors.New("image decode failed")

// Image is a fixed-size bitmap view. Unlike the other views it never adapts
// to the suggested bounds: it needs exactly the space of its pixels.
type Image struct {
	src     image.Image
	padding Padding
}

// DecodeImage reads and decodes PNG or JPEG bytes into an image view. This
// is the only point where an image can fail; drawing never does.
func DecodeImage(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeImage, err)
	}
	return &Image{src: src}, nil
}

// NewImage wraps an already decoded image in a view.
func NewImage(src image.Image) *Image {
	return &Image{src: src}
}

// Bounds implements View. Images need the space they need, no more, no less;
// the suggestion is ignored.
func (v *Image) Bounds(c *Canvas, suggested Bounds) Bounds {
	size := v.src.Bounds()
	return NewBounds(size.Dx(), size.Dy()).Add(v.padding.Bounds())
}

// Draw implements View. Every source pixel is copied unmodified.
func (v *Image) Draw(c *Canvas, x, y int, suggested Bounds) {
	originX := x + v.padding.Left
	originY := y + v.padding.Top

	size := v.src.Bounds()
	for row := 0; row < size.Dy(); row++ {
		for col := 0; col < size.Dx(); col++ {
			c.SetPixel(originX+col, originY+row, v.src.At(size.Min.X+col, size.Min.Y+row))
		}
	}
}

// Padding implements View.
func (v *Image) Padding() Padding { return v.padding }

// SetPadding implements View.
func (v *Image) SetPadding(p Padding) { v.padding = p }
