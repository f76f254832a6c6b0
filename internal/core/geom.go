// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec is a point or direction in world units.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 {
	return v.Sub(o).Len()
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// MoveToward returns the point reached by moving from v toward target by at
// most step units. It never overshoots the target.
func (v Vec) MoveToward(target Vec, step float64) Vec {
	d := target.Sub(v)
	l := d.Len()
	if l <= step || l == 0 {
		return target
	}
	return v.Add(d.Scale(step / l))
}

// Translate moves p by (tx, ty).
func Translate(p Vec, tx, ty float64) Vec {
	return Vec{X: p.X + tx, Y: p.Y + ty}
}

// Rotate rotates p around center by the given angle in degrees.
func Rotate(p, center Vec, degrees float64) Vec {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx := p.X - center.X
	dy := p.Y - center.Y
	return Vec{
		X: dx*cos - dy*sin + center.X,
		Y: dx*sin + dy*cos + center.Y,
	}
}

// ScaleAbout scales p relative to center by (sx, sy).
func ScaleAbout(p, center Vec, sx, sy float64) Vec {
	return Vec{
		X: (p.X-center.X)*sx + center.X,
		Y: (p.Y-center.Y)*sy + center.Y,
	}
}

// Box is an axis-aligned rectangle in world units.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() Vec {
	return Vec{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Contains reports whether p lies inside the box, edges included.
func (b Box) Contains(p Vec) bool {
	return p.X >= b.X && p.X <= b.Right() && p.Y >= b.Y && p.Y <= b.Bottom()
}

// Outcodes for Cohen-Sutherland clipping.
const outInside = 0

const (
	outLeft = 1 << iota
	outRight
	outTop
	outBottom
)

func (b Box) outcode(p Vec) int {
	code := outInside
	if p.X < b.X {
		code |= outLeft
	} else if p.X > b.Right() {
		code |= outRight
	}
	if p.Y < b.Y {
		code |= outTop
	} else if p.Y > b.Bottom() {
		code |= outBottom
	}
	return code
}

// ClipSegment clips the segment a-b to the box using Cohen-Sutherland.
// Returns the clipped endpoints and false if the segment lies entirely outside.
func ClipSegment(a, b Vec, box Box) (Vec, Vec, bool) {
	codeA := box.outcode(a)
	codeB := box.outcode(b)

	for {
		switch {
		case codeA|codeB == 0:
			return a, b, true
		case codeA&codeB != 0:
			return a, b, false
		}

		out := codeA
		if out == outInside {
			out = codeB
		}

		var p Vec
		switch {
		case out&outBottom != 0:
			p = Vec{X: a.X + (b.X-a.X)*(box.Bottom()-a.Y)/(b.Y-a.Y), Y: box.Bottom()}
		case out&outTop != 0:
			p = Vec{X: a.X + (b.X-a.X)*(box.Y-a.Y)/(b.Y-a.Y), Y: box.Y}
		case out&outRight != 0:
			p = Vec{X: box.Right(), Y: a.Y + (b.Y-a.Y)*(box.Right()-a.X)/(b.X-a.X)}
		default:
			p = Vec{X: box.X, Y: a.Y + (b.Y-a.Y)*(box.X-a.X)/(b.X-a.X)}
		}

		if out == codeA {
			a = p
			codeA = box.outcode(a)
		} else {
			b = p
			codeB = box.outcode(b)
		}
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp interpolates linearly from a to b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
