package draw

// Padding is a four-sided inset owned by each view.
type Padding struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// Bounds converts the padding to a bounds value where the width is the sum of
// the left and right insets and the height the sum of the top and bottom
// insets. Useful for subtracting padding from a space budget.
func (p Padding) Bounds() Bounds {
	return NewBounds(p.Left+p.Right, p.Top+p.Bottom)
}

// Edge names one side of a view for padding adjustments.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// SetEdge replaces the padding on a single edge of a view, leaving the other
// three sides untouched.
func SetEdge(v View, edge Edge, size int) {
	p := v.Padding()
	switch edge {
	case EdgeLeft:
		p.Left = size
	case EdgeRight:
		p.Right = size
	case EdgeTop:
		p.Top = size
	case EdgeBottom:
		p.Bottom = size
	}
	v.SetPadding(p)
}
