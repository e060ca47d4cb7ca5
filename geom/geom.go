package geom

import "math"

const twoPi = 2 * math.Pi

// Point is a 2D position or offset.
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul multiplies each component of p by the matching factor.
func (p Point) Mul(sx, sy float64) Point {
	return Point{X: p.X * sx, Y: p.Y * sy}
}

// Snap rounds p to the nearest device pixel for the given content scale factor.
func (p Point) Snap(factor float64) Point {
	return Point{X: Snap(p.X, factor), Y: Snap(p.Y, factor)}
}

// Max returns the component-wise maximum of s and o.
func (s Size) Max(o Size) Size {
	return Size{Width: math.Max(s.Width, o.Width), Height: math.Max(s.Height, o.Height)}
}

// Outset grows s by twice the outset on each axis, never going below zero.
func (s Size) Outset(outset Size) Size {
	return Size{
		Width:  math.Max(0, s.Width+2*outset.Width),
		Height: math.Max(0, s.Height+2*outset.Height),
	}
}

// Center returns the midpoint of a box of size s anchored at the origin.
func (s Size) Center() Point {
	return Point{X: 0.5 * s.Width, Y: 0.5 * s.Height}
}

// Snap rounds both dimensions to device pixels.
func (s Size) Snap(factor float64) Size {
	return Size{Width: Snap(s.Width, factor), Height: Snap(s.Height, factor)}
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// CubicInterp evaluates the cubic Bernstein polynomial with control values
// x0..x3 at t.
func CubicInterp(x0, x1, x2, x3, t float64) float64 {
	u := 1 - t
	return u*u*u*x0 +
		3*t*u*u*x1 +
		3*t*t*u*x2 +
		t*t*t*x3
}

// NormalizeAngle maps an angle in radians into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, twoPi)
	if angle < 0 {
		return angle + twoPi
	}
	return angle
}

// Azimuth returns the angle in radians of the vector from a to b.
func Azimuth(a, b Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// Snap rounds v to the nearest multiple of 1/factor.
func Snap(v, factor float64) float64 {
	return math.RoundToEven(v*factor) / factor
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
