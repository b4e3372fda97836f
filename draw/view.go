package draw

// View is the contract every drawable element implements, leaf or container.
//
// Bounds must be pure: it can be called any number of times with different
// suggestions before drawing and must return the same result for the same
// canvas state and suggestion. Draw is the only operation that may touch
// canvas pixels, and the suggested bounds passed to it should be a value the
// view previously reported from Bounds during placement.
type View interface {
	// Bounds reports the size the view would take given the suggestion.
	// The hint on the returned bounds carries no meaning for callers.
	Bounds(c *Canvas, suggested Bounds) Bounds

	// Draw paints the view into the canvas with its top-left corner at
	// (x, y).
	Draw(c *Canvas, x, y int, suggested Bounds)

	// Padding returns the view's current padding.
	Padding() Padding

	// SetPadding replaces the view's padding.
	SetPadding(p Padding)
}

// Alignment positions children on a stack's cross axis: left/center/right for
// a vertical stack, top/center/bottom for a horizontal one.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)
