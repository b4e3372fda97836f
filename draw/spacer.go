package draw

type direction int

const (
	dirVertical direction = iota
	dirHorizontal
)

// Spacer is an invisible, maximally flexible view. Along its flex axis it
// claims exactly what it is offered, or nothing at all under a ZeroSpace
// hint; on the other axis it is always zero. Spacers have no padding.
type Spacer struct {
	dir direction
}

// VerticalSpacer returns a spacer that flexes along the vertical axis, for
// use in a VStack.
func VerticalSpacer() *Spacer {
	return &Spacer{dir: dirVertical}
}

// HorizontalSpacer returns a spacer that flexes along the horizontal axis,
// for use in an HStack.
func HorizontalSpacer() *Spacer {
	return &Spacer{dir: dirHorizontal}
}

// Bounds implements View.
func (s *Spacer) Bounds(c *Canvas, suggested Bounds) Bounds {
	if suggested.Hint == ZeroSpace {
		return NewBounds(0, 0)
	}
	if s.dir == dirVertical {
		return suggested.WithWidth(0)
	}
	return suggested.WithHeight(0)
}

// Draw implements View. Spacers paint nothing.
func (s *Spacer) Draw(c *Canvas, x, y int, suggested Bounds) {}

// Padding implements View. A spacer's padding is always empty.
func (s *Spacer) Padding() Padding { return Padding{} }

// SetPadding implements View. Spacers ignore padding.
func (s *Spacer) SetPadding(p Padding) {}
