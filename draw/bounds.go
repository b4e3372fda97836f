package draw

// SizingHint tells a view how to interpret suggested bounds.
type SizingHint int

const (
	// Optimal asks the view to size itself to exactly what it needs.
	Optimal SizingHint = iota
	// InfiniteSpace asks how the view would size itself with unlimited room.
	InfiniteSpace
	// ZeroSpace asks for the minimum the view could collapse to.
	ZeroSpace
)

// Bounds carries a width and height suggestion together with a sizing hint.
// The hint is informational only; it never constrains the width or height
// values themselves.
type Bounds struct {
	Width  int
	Height int
	Hint   SizingHint
}

// NewBounds returns bounds with the Optimal hint.
func NewBounds(width, height int) Bounds {
	return Bounds{Width: width, Height: height, Hint: Optimal}
}

// WithWidth returns a copy with the width replaced.
func (b Bounds) WithWidth(width int) Bounds {
	return Bounds{Width: width, Height: b.Height, Hint: b.Hint}
}

// WithHeight returns a copy with the height replaced.
func (b Bounds) WithHeight(height int) Bounds {
	return Bounds{Width: b.Width, Height: height, Hint: b.Hint}
}

// WithSize returns a copy with both dimensions replaced, keeping the hint.
func (b Bounds) WithSize(width, height int) Bounds {
	return Bounds{Width: width, Height: height, Hint: b.Hint}
}

// ZeroHinted returns a copy hinted with ZeroSpace.
func (b Bounds) ZeroHinted() Bounds {
	return Bounds{Width: b.Width, Height: b.Height, Hint: ZeroSpace}
}

// OptimallyHinted returns a copy hinted with Optimal.
func (b Bounds) OptimallyHinted() Bounds {
	return Bounds{Width: b.Width, Height: b.Height, Hint: Optimal}
}

// InfinitelyHinted returns a copy hinted with InfiniteSpace.
func (b Bounds) InfinitelyHinted() Bounds {
	return Bounds{Width: b.Width, Height: b.Height, Hint: InfiniteSpace}
}

// Sub subtracts o from b, saturating at zero on each axis independently.
// The receiver's hint is kept.
func (b Bounds) Sub(o Bounds) Bounds {
	return Bounds{
		Width:  satSub(b.Width, o.Width),
		Height: satSub(b.Height, o.Height),
		Hint:   b.Hint,
	}
}

// Add returns the component-wise sum of b and o, keeping the receiver's hint.
func (b Bounds) Add(o Bounds) Bounds {
	return Bounds{
		Width:  b.Width + o.Width,
		Height: b.Height + o.Height,
		Hint:   b.Hint,
	}
}

// Equal reports whether b and o have the same width and height. Hints are
// ignored.
func (b Bounds) Equal(o Bounds) bool {
	return b.Width == o.Width && b.Height == o.Height
}

// satSub is a saturating subtraction: it never goes below zero. All size
// arithmetic in this package must use it so that no combination of
// suggestions, spacing, and padding can produce a negative dimension.
func satSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
