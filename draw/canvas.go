// Package draw contains the primitives for composing an ePaper tag image: a
// pixel canvas, text and image views, and a small layout system of stacks and
// spacers loosely modeled on SwiftUI.
//
// Layout runs in two phases. A caller builds a tree of views, asks the root
// for its bounds given the canvas bounds, then asks the root to draw into the
// canvas at the origin. Bounds queries are pure and may run any number of
// times; drawing mutates pixels and runs once per view per frame.
package draw

import (
	"image"
	"image/color"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Canvas owns the pixel buffer that views draw into and the shaper used by
// text views. The buffer starts fully white and is never resized.
type Canvas struct {
	img    *image.RGBA
	shaper Shaper
}

// NewCanvas allocates a white canvas of the given dimensions. The shaper may
// be nil, in which case text views render nothing.
func NewCanvas(width, height int, shaper Shaper) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, white)
		}
	}
	return &Canvas{img: img, shaper: shaper}
}

// Bounds returns the canvas dimensions with the Optimal hint.
func (c *Canvas) Bounds() Bounds {
	return NewBounds(c.img.Rect.Dx(), c.img.Rect.Dy())
}

// Image exposes the backing pixel buffer, e.g. for encoding the finished
// frame.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// SetPixel writes one pixel. Writes outside the canvas are ignored.
func (c *Canvas) SetPixel(x, y int, col color.Color) {
	c.img.Set(x, y, col)
}
