package draw

import "testing"

func TestBoundsSubSaturates(t *testing.T) {
	tests := []struct {
		a, b Bounds
		want Bounds
	}{
		{NewBounds(100, 100), NewBounds(30, 40), NewBounds(70, 60)},
		{NewBounds(100, 100), NewBounds(100, 100), NewBounds(0, 0)},
		{NewBounds(30, 100), NewBounds(100, 30), NewBounds(0, 70)},
		{NewBounds(100, 30), NewBounds(30, 100), NewBounds(70, 0)},
		{NewBounds(0, 0), NewBounds(50, 50), NewBounds(0, 0)},
	}
	for _, tt := range tests {
		got := tt.a.Sub(tt.b)
		if got.Width != tt.want.Width || got.Height != tt.want.Height {
			t.Errorf("%v.Sub(%v) = %dx%d, want %dx%d",
				tt.a, tt.b, got.Width, got.Height, tt.want.Width, tt.want.Height)
		}
	}
}

func TestBoundsSubKeepsHint(t *testing.T) {
	got := NewBounds(100, 100).InfinitelyHinted().Sub(NewBounds(10, 10))
	if got.Hint != InfiniteSpace {
		t.Errorf("Sub changed hint to %v, want InfiniteSpace", got.Hint)
	}
}

func TestBoundsAdd(t *testing.T) {
	got := NewBounds(100, 50).Add(NewBounds(15, 17))
	if got.Width != 115 || got.Height != 67 {
		t.Errorf("Add = %dx%d, want 115x67", got.Width, got.Height)
	}
}

func TestBoundsEqualIgnoresHint(t *testing.T) {
	a := NewBounds(100, 50)
	if !a.Equal(a.ZeroHinted()) {
		t.Error("bounds with different hints should compare equal")
	}
	if !a.Equal(a.InfinitelyHinted()) {
		t.Error("bounds with different hints should compare equal")
	}
	if a.Equal(NewBounds(100, 51)) {
		t.Error("bounds with different sizes should not compare equal")
	}
}

func TestBoundsHintHelpers(t *testing.T) {
	b := NewBounds(10, 20)
	if b.Hint != Optimal {
		t.Errorf("NewBounds hint = %v, want Optimal", b.Hint)
	}
	if got := b.ZeroHinted(); got.Hint != ZeroSpace || got.Width != 10 || got.Height != 20 {
		t.Errorf("ZeroHinted = %v, want 10x20 with ZeroSpace hint", got)
	}
	if got := b.InfinitelyHinted(); got.Hint != InfiniteSpace || got.Width != 10 || got.Height != 20 {
		t.Errorf("InfinitelyHinted = %v, want 10x20 with InfiniteSpace hint", got)
	}
	if got := b.ZeroHinted().OptimallyHinted(); got.Hint != Optimal {
		t.Errorf("OptimallyHinted = %v, want Optimal hint", got)
	}
}

func TestBoundsWithSize(t *testing.T) {
	b := NewBounds(10, 20).InfinitelyHinted()
	if got := b.WithWidth(99); got.Width != 99 || got.Height != 20 || got.Hint != InfiniteSpace {
		t.Errorf("WithWidth = %v, want 99x20 with InfiniteSpace hint", got)
	}
	if got := b.WithHeight(99); got.Width != 10 || got.Height != 99 || got.Hint != InfiniteSpace {
		t.Errorf("WithHeight = %v, want 10x99 with InfiniteSpace hint", got)
	}
	if got := b.WithSize(1, 2); got.Width != 1 || got.Height != 2 || got.Hint != InfiniteSpace {
		t.Errorf("WithSize = %v, want 1x2 with InfiniteSpace hint", got)
	}
}
