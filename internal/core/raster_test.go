package core

import (
	"math"
	"testing"
)

func hasPoint(pts []Point, p Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}

func TestLinePoints(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		count          int
	}{
		{"horizontal", 0, 0, 5, 0, 6},
		{"vertical reversed", 2, 7, 2, 3, 5},
		{"steep diagonal", 0, 0, 3, 9, 10},
		{"degenerate", 4, 4, 4, 4, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pts := LinePoints(tc.x0, tc.y0, tc.x1, tc.y1)
			if len(pts) != tc.count {
				t.Fatalf("LinePoints() len = %d, expected %d", len(pts), tc.count)
			}
			if pts[0] != (Point{tc.x0, tc.y0}) || pts[len(pts)-1] != (Point{tc.x1, tc.y1}) {
				t.Errorf("LinePoints() endpoints = %v..%v", pts[0], pts[len(pts)-1])
			}
			for i := 1; i < len(pts); i++ {
				if Abs(pts[i].X-pts[i-1].X) > 1 || Abs(pts[i].Y-pts[i-1].Y) > 1 {
					t.Errorf("LinePoints() gap between %v and %v", pts[i-1], pts[i])
				}
			}
		})
	}
}

func TestCirclePoints(t *testing.T) {
	const r = 7
	pts := CirclePoints(10, 10, r)

	for _, p := range []Point{{17, 10}, {3, 10}, {10, 17}, {10, 3}} {
		if !hasPoint(pts, p) {
			t.Errorf("CirclePoints() missing extreme point %v", p)
		}
	}
	for _, p := range pts {
		d := math.Hypot(float64(p.X-10), float64(p.Y-10))
		if math.Abs(d-r) > 0.75 {
			t.Errorf("CirclePoints() point %v is %f from center, expected ~%d", p, d, r)
		}
	}

	if got := CirclePoints(3, 4, 0); len(got) != 1 || got[0] != (Point{3, 4}) {
		t.Errorf("CirclePoints(r=0) = %v, expected center only", got)
	}
}

func TestEllipsePoints(t *testing.T) {
	const rx, ry = 10, 5
	pts := EllipsePoints(20, 20, rx, ry)

	for _, p := range []Point{{30, 20}, {10, 20}, {20, 25}, {20, 15}} {
		if !hasPoint(pts, p) {
			t.Errorf("EllipsePoints() missing extreme point %v", p)
		}
	}
	for _, p := range pts {
		nx := float64(p.X-20) / rx
		ny := float64(p.Y-20) / ry
		if v := math.Sqrt(nx*nx + ny*ny); math.Abs(v-1) > 0.3 {
			t.Errorf("EllipsePoints() point %v off the curve (%f)", p, v)
		}
	}

	flat := EllipsePoints(0, 0, 3, 0)
	if len(flat) != 7 {
		t.Errorf("EllipsePoints(ry=0) len = %d, expected 7", len(flat))
	}
}
