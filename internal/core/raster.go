package core

import "math"

// Point is an integer cell coordinate.
type Point struct {
	X, Y int
}

// LinePoints rasterizes the segment (x0, y0)-(x1, y1) with a DDA walk.
// Both endpoints are included. A degenerate segment yields a single point.
func LinePoints(x0, y0, x1, y1 int) []Point {
	dx := x1 - x0
	dy := y1 - y0
	steps := Max(Abs(dx), Abs(dy))
	if steps == 0 {
		return []Point{{X: x0, Y: y0}}
	}

	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)

	pts := make([]Point, 0, steps+1)
	x, y := float64(x0), float64(y0)
	for i := 0; i <= steps; i++ {
		pts = append(pts, Point{X: int(math.Round(x)), Y: int(math.Round(y))})
		x += xInc
		y += yInc
	}
	return pts
}

// CirclePoints rasterizes the outline of a circle with the midpoint algorithm.
// Points may repeat where octants meet. Radius 0 yields the center.
func CirclePoints(cx, cy, r int) []Point {
	if r <= 0 {
		return []Point{{X: cx, Y: cy}}
	}

	var pts []Point
	x, y := 0, r
	d := 1 - r
	for x <= y {
		pts = append(pts,
			Point{cx + x, cy + y}, Point{cx - x, cy + y},
			Point{cx + x, cy - y}, Point{cx - x, cy - y},
			Point{cx + y, cy + x}, Point{cx - y, cy + x},
			Point{cx + y, cy - x}, Point{cx - y, cy - x},
		)
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
	}
	return pts
}

// EllipsePoints rasterizes the outline of an axis-aligned ellipse with the
// midpoint algorithm. Zero radii collapse to a horizontal or vertical line.
func EllipsePoints(cx, cy, rx, ry int) []Point {
	switch {
	case rx <= 0 && ry <= 0:
		return []Point{{X: cx, Y: cy}}
	case rx <= 0:
		return LinePoints(cx, cy-ry, cx, cy+ry)
	case ry <= 0:
		return LinePoints(cx-rx, cy, cx+rx, cy)
	}

	var pts []Point
	plot := func(x, y int) {
		pts = append(pts,
			Point{cx + x, cy + y}, Point{cx - x, cy + y},
			Point{cx + x, cy - y}, Point{cx - x, cy - y},
		)
	}

	rx2 := float64(rx * rx)
	ry2 := float64(ry * ry)
	x, y := 0, ry
	dx := 0.0
	dy := 2 * rx2 * float64(y)

	// Region 1: slope magnitude below 1.
	d1 := ry2 - rx2*float64(ry) + 0.25*rx2
	for dx < dy {
		plot(x, y)
		x++
		dx += 2 * ry2
		if d1 < 0 {
			d1 += dx + ry2
		} else {
			y--
			dy -= 2 * rx2
			d1 += dx - dy + ry2
		}
	}

	// Region 2
	fx, fy := float64(x), float64(y)
	d2 := ry2*(fx+0.5)*(fx+0.5) + rx2*(fy-1)*(fy-1) - rx2*ry2
	for y >= 0 {
		plot(x, y)
		y--
		dy -= 2 * rx2
		if d2 > 0 {
			d2 += rx2 - dy
		} else {
			x++
			dx += 2 * ry2
			d2 += dx - dy + rx2
		}
	}
	return pts
}
