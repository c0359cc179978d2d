package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxIntersects(t *testing.T) {
	tile := Box{X: 40, Y: 40, W: 40, H: 40}

	tests := []struct {
		name     string
		b        Box
		expected bool
	}{
		{"resting on top edge", Box{X: 50, Y: 2, W: 24, H: 38}, false},
		{"sunk one pixel", Box{X: 50, Y: 3, W: 24, H: 38}, true},
		{"touching left side", Box{X: 16, Y: 40, W: 24, H: 38}, false},
		{"fractional overlap", Box{X: 16.01, Y: 40, W: 24, H: 38}, true},
		{"far away", Box{X: 200, Y: 200, W: 10, H: 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.b.Intersects(tile); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxOverlap(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 24, H: 38}
	b := Box{X: 20, Y: 30, W: 40, H: 40}

	if got := a.OverlapX(b); got != 4 {
		t.Errorf("OverlapX() = %v, expected 4", got)
	}
	if got := a.OverlapY(b); got != 8 {
		t.Errorf("OverlapY() = %v, expected 8", got)
	}
	if got := a.OverlapX(Box{X: 100, W: 5, H: 5}); got != 0 {
		t.Errorf("OverlapX() disjoint = %v, expected 0", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
}
