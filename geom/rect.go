package geom

import "math"

// Rect is an axis-aligned rectangle. X and Y locate the corner with the
// smallest coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectOf builds a rect from an origin and a size.
func RectOf(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }
func (r Rect) Size() Size    { return Size{Width: r.Width, Height: r.Height} }
func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + 0.5*r.Width, Y: r.Y + 0.5*r.Height}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Intersects reports whether r and o overlap or touch.
func (r Rect) Intersects(o Rect) bool {
	return !(r.MaxX() < o.MinX() || o.MaxX() < r.MinX() ||
		r.MaxY() < o.MinY() || o.MaxY() < r.MinY())
}

// Intersection returns the overlap of r and o, or the zero Rect when they
// do not intersect.
func (r Rect) Intersection(o Rect) Rect {
	if !r.Intersects(o) {
		return Rect{}
	}
	x := math.Max(r.MinX(), o.MinX())
	y := math.Max(r.MinY(), o.MinY())
	return Rect{
		X:      x,
		Y:      y,
		Width:  math.Min(r.MaxX(), o.MaxX()) - x,
		Height: math.Min(r.MaxY(), o.MaxY()) - y,
	}
}

// Inset shrinks r by inset on every side.
func (r Rect) Inset(inset Size) Rect {
	return Rect{
		X:      r.X + inset.Width,
		Y:      r.Y + inset.Height,
		Width:  math.Max(0, r.Width-2*inset.Width),
		Height: math.Max(0, r.Height-2*inset.Height),
	}
}

// Outset grows r by outset on every side.
func (r Rect) Outset(outset Size) Rect {
	return Rect{
		X:      r.X - outset.Width,
		Y:      r.Y - outset.Height,
		Width:  math.Max(0, r.Width+2*outset.Width),
		Height: math.Max(0, r.Height+2*outset.Height),
	}
}

// OutsetBy grows r by the same amount on every side.
func (r Rect) OutsetBy(outset float64) Rect {
	return r.Outset(Size{Width: outset, Height: outset})
}

// BoundaryPoint returns where a ray leaving the centre of r (grown by
// outset) at angleDeg crosses its boundary. The result is relative to the
// rect's own origin, so the centre is at (w/2, h/2).
func BoundaryPoint(r Rect, angleDeg, outset float64) Point {
	r = r.OutsetBy(outset)
	p := Point{X: 0.5 * r.Width, Y: 0.5 * r.Height}

	angle := NormalizeAngle(DegToRad(angleDeg))
	diagonal := math.Atan2(r.Height, r.Width)

	switch {
	case angle >= diagonal && angle < math.Pi-diagonal: // top
		p.X += 0.5 * r.Height * math.Tan(math.Pi/2-angle)
		p.Y += 0.5 * r.Height
	case angle >= math.Pi-diagonal && angle < math.Pi+diagonal: // left
		p.X -= 0.5 * r.Width
		p.Y -= 0.5 * r.Width * math.Tan(angle)
	case angle >= math.Pi+diagonal && angle < twoPi-diagonal: // bottom
		p.X -= 0.5 * r.Height * math.Tan(math.Pi/2-angle)
		p.Y -= 0.5 * r.Height
	default: // right
		p.X += 0.5 * r.Width
		p.Y += 0.5 * r.Width * math.Tan(angle)
	}
	return p
}
