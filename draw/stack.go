package draw

import "sort"

// flexProbe is the oversized suggestion used while scoring child flexibility.
const flexProbe = 999

// axis selects which dimension is the main axis of a stack. The layout core
// below is written once against this abstraction and serves both stack
// orientations.
type axis int

const (
	vertical axis = iota
	horizontal
)

func (a axis) main(b Bounds) int {
	if a == vertical {
		return b.Height
	}
	return b.Width
}

func (a axis) cross(b Bounds) int {
	if a == vertical {
		return b.Width
	}
	return b.Height
}

func (a axis) withMain(b Bounds, v int) Bounds {
	if a == vertical {
		return b.WithHeight(v)
	}
	return b.WithWidth(v)
}

// sized builds bounds from main/cross sizes with the Optimal hint.
func (a axis) sized(main, cross int) Bounds {
	if a == vertical {
		return NewBounds(cross, main)
	}
	return NewBounds(main, cross)
}

// mainPad returns the leading and trailing padding along the main axis.
func (a axis) mainPad(p Padding) (lead, trail int) {
	if a == vertical {
		return p.Top, p.Bottom
	}
	return p.Left, p.Right
}

// crossPad returns the leading and trailing padding across the main axis.
func (a axis) crossPad(p Padding) (lead, trail int) {
	if a == vertical {
		return p.Left, p.Right
	}
	return p.Top, p.Bottom
}

// placement is one child's slot on the main axis: its running offset and the
// size the child reported for that slot.
type placement struct {
	offset int
	size   int
}

// placements runs the space-distribution pass for a stack.
//
// Children differ in how flexible they are along the main axis. A text view
// needs room for its text but no more; a spacer collapses to nothing or
// swallows everything it is offered. So the pass first scores every child by
// how far it is willing to flex, then hands out space starting with the least
// flexible child: each child in turn is offered an equal share of whatever
// budget is left, takes what it takes, and the remainder carries over to the
// more flexible children after it. The returned placements are in original
// sibling order.
func placements(c *Canvas, views []View, spacing int, a axis, suggested Bounds) []placement {
	// Score flexibility: willingness to grow to an oversized suggestion,
	// willingness to collapse to zero, and partial willingness to shrink
	// below the optimal size.
	scores := make([]int, len(views))
	order := make([]int, len(views))
	for i, v := range views {
		score := 0
		if a.main(v.Bounds(c, NewBounds(flexProbe, flexProbe).InfinitelyHinted())) == flexProbe {
			score += 3
		}
		zero := a.main(v.Bounds(c, NewBounds(0, 0).ZeroHinted()))
		if zero == 0 {
			score += 3
		}
		optimal := a.main(v.Bounds(c, NewBounds(flexProbe, flexProbe).OptimallyHinted()))
		if zero > 0 && zero < optimal {
			// Some willingness to flex down.
			score += 2
		}
		scores[i] = score
		order[i] = i
	}
	// Least flexible first. The sort is stable so ties keep sibling order.
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] < scores[order[j]]
	})

	// The initial budget depends on the sizing hint. With infinite space we
	// hand out the whole suggestion. Otherwise we ask every child how much
	// it wants under the original suggestion and sum that up; splitting the
	// suggestion up front would make children under-report, the real values
	// come out of the greedy pass below. The budget is clamped to the
	// suggestion and must still leave room for inter-child spacing.
	budget := 0
	if suggested.Hint == InfiniteSpace {
		budget = a.main(suggested)
	} else {
		for _, v := range views {
			budget += a.main(v.Bounds(c, suggested))
		}
		budget = min(budget, a.main(suggested))
	}
	spacingTotal := 0
	if len(views) > 0 {
		spacingTotal = (len(views) - 1) * spacing
	}
	if limit := satSub(a.main(suggested), spacingTotal); budget > limit {
		budget = limit
	}

	// Greedy pass in ascending flexibility: offer an equal share of the
	// leftover budget, record what the child actually reports, and carry the
	// rest forward. Integer division sends the remainder to the later, more
	// flexible children. A child may take more than was left; the budget
	// saturates at zero and the child is never truncated.
	leftover := budget
	sizes := make([]int, len(views))
	for i, idx := range order {
		viewsLeft := len(order) - i
		offer := leftover / viewsLeft
		actual := a.main(views[idx].Bounds(c, a.withMain(suggested, offer)))
		sizes[idx] = actual
		leftover = satSub(leftover, actual)
	}

	// Back in sibling order, accumulate offsets with spacing between
	// neighbors.
	result := make([]placement, len(views))
	off := 0
	for i := range views {
		result[i] = placement{offset: off, size: sizes[i]}
		off += sizes[i] + spacing
	}
	return result
}

// stackBounds measures a stack: the cross axis is the largest child
// measurement under the original suggestion, the main axis the end of the
// last placement, both grown by the stack's own padding. An empty stack is
// its padding alone.
func stackBounds(c *Canvas, views []View, spacing int, a axis, pad Padding, suggested Bounds) Bounds {
	crossMax := 0
	for _, v := range views {
		if cv := a.cross(v.Bounds(c, suggested)); cv > crossMax {
			crossMax = cv
		}
	}

	inner := suggested.Sub(pad.Bounds())
	pl := placements(c, views, spacing, a, inner)
	mainTotal := 0
	if len(pl) > 0 {
		last := pl[len(pl)-1]
		mainTotal = last.offset + last.size
	}

	mainLead, mainTrail := a.mainPad(pad)
	crossLead, crossTrail := a.crossPad(pad)
	return a.sized(mainTotal+mainLead+mainTrail, crossMax+crossLead+crossTrail)
}

// stackDraw recomputes the placements (measurement is pure, so the result
// matches what stackBounds saw) and draws every child at its slot. Each child
// is re-measured at its placed bounds to learn its cross-axis size, which the
// alignment turns into a cross offset.
func stackDraw(c *Canvas, views []View, spacing int, align Alignment, a axis, pad Padding, x, y int, suggested Bounds) {
	mainOrigin, crossOrigin := y, x
	if a == horizontal {
		mainOrigin, crossOrigin = x, y
	}
	mainLead, _ := a.mainPad(pad)
	crossLead, crossTrail := a.crossPad(pad)
	farEdge := crossOrigin + satSub(a.cross(suggested), crossLead+crossTrail)

	inner := suggested.Sub(pad.Bounds())
	pl := placements(c, views, spacing, a, inner)

	for i, v := range views {
		placed := a.sized(pl[i].size, a.cross(inner))
		placed.Hint = suggested.Hint

		childBounds := v.Bounds(c, placed)

		var crossOff int
		switch align {
		case AlignEnd:
			crossOff = satSub(farEdge, a.cross(childBounds))
		case AlignCenter:
			crossOff = crossOrigin + crossLead + satSub(a.cross(suggested), a.cross(childBounds))/2
		default:
			crossOff = crossOrigin + crossLead
		}
		mainOff := mainOrigin + mainLead + pl[i].offset

		if a == vertical {
			v.Draw(c, crossOff, mainOff, childBounds)
		} else {
			v.Draw(c, mainOff, crossOff, childBounds)
		}
	}
}

// VStack arranges its children top to bottom. Views is the paint order and
// the tie-break order during flexibility scoring; Align positions children
// horizontally within the stack.
type VStack struct {
	Views   []View
	Spacing int
	Align   Alignment
	padding Padding
}

// NewVStack returns an empty vertical stack, left-aligned, without spacing.
func NewVStack() *VStack {
	return &VStack{}
}

// Push appends child views in layout order.
func (s *VStack) Push(views ...View) {
	s.Views = append(s.Views, views...)
}

// Bounds implements View.
func (s *VStack) Bounds(c *Canvas, suggested Bounds) Bounds {
	return stackBounds(c, s.Views, s.Spacing, vertical, s.padding, suggested)
}

// Draw implements View.
func (s *VStack) Draw(c *Canvas, x, y int, suggested Bounds) {
	stackDraw(c, s.Views, s.Spacing, s.Align, vertical, s.padding, x, y, suggested)
}

// Padding implements View.
func (s *VStack) Padding() Padding { return s.padding }

// SetPadding implements View.
func (s *VStack) SetPadding(p Padding) { s.padding = p }

// HStack arranges its children left to right. Views is the paint order and
// the tie-break order during flexibility scoring; Align positions children
// vertically within the stack.
type HStack struct {
	Views   []View
	Spacing int
	Align   Alignment
	padding Padding
}

// NewHStack returns an empty horizontal stack, top-aligned, without spacing.
func NewHStack() *HStack {
	return &HStack{}
}

// Push appends child views in layout order.
func (s *HStack) Push(views ...View) {
	s.Views = append(s.Views, views...)
}

// Bounds implements View.
func (s *HStack) Bounds(c *Canvas, suggested Bounds) Bounds {
	return stackBounds(c, s.Views, s.Spacing, horizontal, s.padding, suggested)
}

// Draw implements View.
func (s *HStack) Draw(c *Canvas, x, y int, suggested Bounds) {
	stackDraw(c, s.Views, s.Spacing, s.Align, horizontal, s.padding, x, y, suggested)
}

// Padding implements View.
func (s *HStack) Padding() Padding { return s.padding }

// SetPadding implements View.
func (s *HStack) SetPadding(p Padding) { s.padding = p }
