package main

import "math"

// planGrid partitions n items into a rows x cols grid whose shape
// approximates the aspect ratio of the target area. For n >= 1 it
// guarantees rows*cols >= n and rows, cols >= 1. For n == 0 it returns
// (0, 0): a zero-run year renders an empty grid panel.
func planGrid(n int, areaWidth, areaHeight float64) (rows, cols int) {
	if n <= 0 {
		return 0, 0
	}
	aspect := areaWidth / areaHeight
	rows = int(math.Ceil(math.Sqrt(float64(n) / aspect)))
	if rows < 1 {
		rows = 1
	}
	cols = int(math.Ceil(float64(n) / float64(rows)))
	return rows, cols
}

// cellRect returns the pixel rectangle of item i in reading order:
// left to right, top to bottom, uniform cell size.
func cellRect(i, rows, cols int, area Rect) Rect {
	cellW := area.W / float64(cols)
	cellH := area.H / float64(rows)
	row := i / cols
	col := i % cols
	return Rect{
		X: area.X + float64(col)*cellW,
		Y: area.Y + float64(row)*cellH,
		W: cellW,
		H: cellH,
	}
}
