package core

import (
	"math"
	"unicode/utf8"
)

// Image is a small glyph sprite. Spaces are transparent.
type Image struct {
	Name  string
	Rows  []string
	Color Color
}

// ShapeKind selects a shape for Surface.DrawShape.
type ShapeKind int

const (
	ShapeRect    ShapeKind = iota // X, Y top-left; W, H size
	ShapeCircle                   // X, Y center; W radius
	ShapeEllipse                  // X, Y center; W, H radii
)

// PrimitiveKind selects a rasterized outline for Surface.DrawPrimitive.
type PrimitiveKind int

const (
	PrimitiveLine    PrimitiveKind = iota // X, Y to X2, Y2
	PrimitiveCircle                       // X, Y center; W radius
	PrimitiveEllipse                      // X, Y center; W, H radii
)

// Params carries the geometry of a shape or primitive in world units.
// Which fields are read depends on the kind.
type Params struct {
	X, Y   float64
	W, H   float64
	X2, Y2 float64
	Glyph  rune // 0 picks the kind's default glyph
}

// Align controls horizontal text placement relative to the anchor x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Span is a run of text in one color.
type Span struct {
	Text  string
	Color Color
}

// Surface is the render contract games draw against.
// Coordinates are world units; implementations map them to their own output.
type Surface interface {
	DrawQuad(img Image, x, y, w, h float64)
	DrawShape(kind ShapeKind, p Params, c Color, filled bool)
	DrawPrimitive(kind PrimitiveKind, p Params, c Color)
	DrawText(x, y float64, text string, c Color, align Align)
	DrawSpans(x, y float64, spans []Span, align Align)
}

// CellSurface draws onto a Screen, scaling a world box to the full screen.
type CellSurface struct {
	screen *Screen
	world  Box
	sx, sy float64
}

// NewCellSurface maps the world box onto the whole screen.
func NewCellSurface(screen *Screen, world Box) *CellSurface {
	cs := &CellSurface{screen: screen, world: world}
	if world.W > 0 {
		cs.sx = float64(screen.Width()) / world.W
	}
	if world.H > 0 {
		cs.sy = float64(screen.Height()) / world.H
	}
	return cs
}

// Screen returns the underlying screen buffer.
func (cs *CellSurface) Screen() *Screen {
	return cs.screen
}

// World returns the world box mapped onto the screen.
func (cs *CellSurface) World() Box {
	return cs.world
}

// ToCell converts a world point to a cell coordinate.
func (cs *CellSurface) ToCell(v Vec) Point {
	return Point{
		X: int(math.Floor((v.X - cs.world.X) * cs.sx)),
		Y: int(math.Floor((v.Y - cs.world.Y) * cs.sy)),
	}
}

// cellSpan returns the cell range covering [x, x+w) x [y, y+h), at least 1x1.
func (cs *CellSurface) cellSpan(x, y, w, h float64) Rect {
	tl := cs.ToCell(V(x, y))
	br := cs.ToCell(V(x+w, y+h))
	return NewRect(tl.X, tl.Y, Max(br.X-tl.X, 1), Max(br.Y-tl.Y, 1))
}

// DrawQuad samples the sprite into the destination box, nearest neighbour.
func (cs *CellSurface) DrawQuad(img Image, x, y, w, h float64) {
	if len(img.Rows) == 0 {
		return
	}
	dst := cs.cellSpan(x, y, w, h)

	rows := make([][]rune, len(img.Rows))
	for i, r := range img.Rows {
		rows[i] = []rune(r)
	}

	for dy := 0; dy < dst.H; dy++ {
		src := rows[(dy*len(rows))/dst.H]
		if len(src) == 0 {
			continue
		}
		for dx := 0; dx < dst.W; dx++ {
			r := src[(dx*len(src))/dst.W]
			if r == ' ' {
				continue
			}
			cs.screen.SetColor(dst.X+dx, dst.Y+dy, r, img.Color)
		}
	}
}

// DrawShape draws a rectangle, circle or ellipse, filled or outlined.
func (cs *CellSurface) DrawShape(kind ShapeKind, p Params, c Color, filled bool) {
	switch kind {
	case ShapeRect:
		cs.drawRect(p, c, filled)
	case ShapeCircle:
		cs.drawEllipse(V(p.X, p.Y), p.W, p.W, p.Glyph, c, filled)
	case ShapeEllipse:
		cs.drawEllipse(V(p.X, p.Y), p.W, p.H, p.Glyph, c, filled)
	}
}

func (cs *CellSurface) drawRect(p Params, c Color, filled bool) {
	r := cs.cellSpan(p.X, p.Y, p.W, p.H)
	switch {
	case filled:
		cs.screen.DrawRect(r, glyphOr(p.Glyph, '█'), c)
	case r.W >= 2 && r.H >= 2:
		cs.screen.DrawBox(r, c)
	default:
		// Too thin for box-drawing corners.
		cs.screen.SetColor(r.X, r.Y, '[', c)
		cs.screen.SetColor(r.Right()-1, r.Y, ']', c)
	}
}

func (cs *CellSurface) drawEllipse(center Vec, rx, ry float64, glyph rune, c Color, filled bool) {
	cc := cs.ToCell(center)
	crx := int(math.Round(rx * cs.sx))
	cry := int(math.Round(ry * cs.sy))

	if !filled {
		cs.screen.DrawPoints(EllipsePoints(cc.X, cc.Y, crx, cry), glyphOr(glyph, '•'), c)
		return
	}

	g := glyphOr(glyph, '█')
	for y := -cry; y <= cry; y++ {
		for x := -crx; x <= crx; x++ {
			nx, ny := 0.0, 0.0
			if crx > 0 {
				nx = float64(x) / float64(crx)
			}
			if cry > 0 {
				ny = float64(y) / float64(cry)
			}
			if nx*nx+ny*ny <= 1 {
				cs.screen.SetColor(cc.X+x, cc.Y+y, g, c)
			}
		}
	}
}

// DrawPrimitive rasterizes a line, circle or ellipse outline. Lines are
// clipped to the world box first.
func (cs *CellSurface) DrawPrimitive(kind PrimitiveKind, p Params, c Color) {
	switch kind {
	case PrimitiveLine:
		a, b, ok := ClipSegment(V(p.X, p.Y), V(p.X2, p.Y2), cs.world)
		if !ok {
			return
		}
		from, to := cs.ToCell(a), cs.ToCell(b)
		cs.screen.DrawPoints(LinePoints(from.X, from.Y, to.X, to.Y), glyphOr(p.Glyph, '·'), c)
	case PrimitiveCircle:
		cs.drawEllipse(V(p.X, p.Y), p.W, p.W, p.Glyph, c, false)
	case PrimitiveEllipse:
		cs.drawEllipse(V(p.X, p.Y), p.W, p.H, p.Glyph, c, false)
	}
}

// DrawText writes text anchored at the world point.
func (cs *CellSurface) DrawText(x, y float64, text string, c Color, align Align) {
	cs.DrawSpans(x, y, []Span{{Text: text, Color: c}}, align)
}

// DrawSpans writes consecutive colored runs as one line anchored at the world point.
func (cs *CellSurface) DrawSpans(x, y float64, spans []Span, align Align) {
	n := 0
	for _, sp := range spans {
		n += utf8.RuneCountInString(sp.Text)
	}

	pos := cs.ToCell(V(x, y))
	switch align {
	case AlignCenter:
		pos.X -= n / 2
	case AlignRight:
		pos.X -= n
	}

	for _, sp := range spans {
		cs.screen.DrawTextColor(pos.X, pos.Y, sp.Text, sp.Color)
		pos.X += utf8.RuneCountInString(sp.Text)
	}
}

func glyphOr(g, fallback rune) rune {
	if g == 0 {
		return fallback
	}
	return g
}
