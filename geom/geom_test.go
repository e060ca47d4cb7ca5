package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{name: "zero", angle: 0, want: 0},
		{name: "already normal", angle: math.Pi / 3, want: math.Pi / 3},
		{name: "full turn wraps to zero", angle: twoPi, want: 0},
		{name: "negative quarter", angle: -math.Pi / 2, want: 1.5 * math.Pi},
		{name: "several turns", angle: 5*math.Pi + 0.25, want: math.Pi + 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAngle(tt.angle); !near(got, tt.want) {
				t.Errorf("NormalizeAngle(%f) = %f; want %f", tt.angle, got, tt.want)
			}
		})
	}
}

func TestCubicInterp(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{name: "start", t: 0, want: 1},
		{name: "end", t: 1, want: 4},
		{name: "middle", t: 0.5, want: 0.125*1 + 0.375*2 + 0.375*3 + 0.125*4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CubicInterp(1, 2, 3, 4, tt.t); !near(got, tt.want) {
				t.Errorf("CubicInterp(t=%f) = %f; want %f", tt.t, got, tt.want)
			}
		})
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		factor float64
		want   float64
	}{
		{name: "integer scale", v: 10.4, factor: 1, want: 10},
		{name: "retina half pixel", v: 10.3, factor: 2, want: 10.5},
		{name: "ties to even", v: 2.5, factor: 1, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Snap(tt.v, tt.factor); !near(got, tt.want) {
				t.Errorf("Snap(%f, %f) = %f; want %f", tt.v, tt.factor, got, tt.want)
			}
		})
	}

	p := Point{X: 1.26, Y: 3.74}.Snap(2)
	if p != (Point{X: 1.5, Y: 3.5}) {
		t.Errorf("Point.Snap = %+v", p)
	}
}

func TestAzimuthAndLerp(t *testing.T) {
	if got := Azimuth(Point{X: 1, Y: 1}, Point{X: 1, Y: 5}); !near(got, math.Pi/2) {
		t.Errorf("Azimuth straight up = %f; want %f", got, math.Pi/2)
	}
	if got := Lerp(10, 20, 0.25); !near(got, 12.5) {
		t.Errorf("Lerp = %f; want 12.5", got)
	}
}

func TestSizeOps(t *testing.T) {
	s := Size{Width: 10, Height: 4}
	if got := s.Max(Size{Width: 3, Height: 8}); got != (Size{Width: 10, Height: 8}) {
		t.Errorf("Max = %+v", got)
	}
	if got := s.Outset(Size{Width: -6, Height: 1}); got != (Size{Width: 0, Height: 6}) {
		t.Errorf("Outset = %+v", got)
	}
	if got := s.Center(); got != (Point{X: 5, Y: 2}) {
		t.Errorf("Center = %+v", got)
	}
}
