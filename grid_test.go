package main

import "testing"

func TestPlanGridInvariants(t *testing.T) {
	areas := []struct{ w, h float64 }{
		{400, 300}, {300, 400}, {1010, 1110}, {100, 100}, {1800, 200},
	}
	for _, area := range areas {
		for n := 1; n <= 60; n++ {
			rows, cols := planGrid(n, area.w, area.h)
			if rows < 1 || cols < 1 {
				t.Fatalf("planGrid(%d, %v, %v) = (%d, %d): rows and cols must be >= 1", n, area.w, area.h, rows, cols)
			}
			if rows*cols < n {
				t.Fatalf("planGrid(%d, %v, %v) = (%d, %d): %d cells cannot hold %d items", n, area.w, area.h, rows, cols, rows*cols, n)
			}
			if cols > n {
				t.Fatalf("planGrid(%d, %v, %v) = (%d, %d): more columns than items", n, area.w, area.h, rows, cols)
			}
		}
	}
}

func TestPlanGridZeroItems(t *testing.T) {
	rows, cols := planGrid(0, 400, 300)
	if rows != 0 || cols != 0 {
		t.Fatalf("expected (0, 0) for zero items, got (%d, %d)", rows, cols)
	}
}

func TestPlanGridFourIn400x300(t *testing.T) {
	rows, cols := planGrid(4, 400, 300)
	if rows != 2 || cols != 2 {
		t.Fatalf("expected 2x2, got %dx%d", rows, cols)
	}

	area := Rect{X: 0, Y: 0, W: 400, H: 300}
	want := []Rect{
		{X: 0, Y: 0, W: 200, H: 150},
		{X: 200, Y: 0, W: 200, H: 150},
		{X: 0, Y: 150, W: 200, H: 150},
		{X: 200, Y: 150, W: 200, H: 150},
	}
	for i, w := range want {
		got := cellRect(i, rows, cols, area)
		if got != w {
			t.Errorf("cell %d: expected %+v, got %+v", i, w, got)
		}
	}
}

func TestCellsDisjointAndWithinArea(t *testing.T) {
	area := Rect{X: 40, Y: 150, W: 1010, H: 1110}
	for _, n := range []int{1, 2, 3, 7, 12, 23, 48} {
		rows, cols := planGrid(n, area.W, area.H)
		cells := make([]Rect, n)
		for i := range cells {
			cells[i] = cellRect(i, rows, cols, area)
		}

		const eps = 1e-9
		for i, c := range cells {
			if c.X < area.X-eps || c.Y < area.Y-eps || c.X+c.W > area.X+area.W+eps || c.Y+c.H > area.Y+area.H+eps {
				t.Fatalf("n=%d: cell %d %+v outside area %+v", n, i, c, area)
			}
			for j := i + 1; j < n; j++ {
				o := cells[j]
				overlapW := min(c.X+c.W, o.X+o.W) - max(c.X, o.X)
				overlapH := min(c.Y+c.H, o.Y+o.H) - max(c.Y, o.Y)
				if overlapW > eps && overlapH > eps {
					t.Fatalf("n=%d: cells %d and %d overlap: %+v vs %+v", n, i, j, c, o)
				}
			}
		}
	}
}
