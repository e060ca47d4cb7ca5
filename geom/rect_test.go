package geom

import "testing"

func TestRectIntersection(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			name: "overlapping",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 5, Y: 5, Width: 10, Height: 10},
			want: Rect{X: 5, Y: 5, Width: 5, Height: 5},
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 2, Y: 3, Width: 4, Height: 4},
			want: Rect{X: 2, Y: 3, Width: 4, Height: 4},
		},
		{
			name: "disjoint",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 20, Y: 0, Width: 5, Height: 5},
			want: Rect{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersection(tt.b); got != tt.want {
				t.Errorf("got %+v; want %+v", got, tt.want)
			}
		})
	}
}

func TestRectInsetOutset(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	if got := r.Inset(Size{Width: 5, Height: 10}); got != (Rect{X: 15, Y: 30, Width: 20, Height: 20}) {
		t.Errorf("Inset = %+v", got)
	}
	if got := r.Inset(Size{Width: 20, Height: 0}); got.Width != 0 {
		t.Errorf("Inset past zero width = %f; want 0", got.Width)
	}
	if got := r.OutsetBy(2); got != (Rect{X: 8, Y: 18, Width: 34, Height: 44}) {
		t.Errorf("OutsetBy = %+v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 5}
	for _, p := range []Point{{0, 0}, {10, 5}, {3, 2}} {
		if !r.Contains(p) {
			t.Errorf("Contains(%+v) = false", p)
		}
	}
	if r.Contains(Point{X: 10.01, Y: 1}) {
		t.Error("Contains outside point = true")
	}
	if c := r.Center(); c != (Point{X: 5, Y: 2.5}) {
		t.Errorf("Center = %+v", c)
	}
}

func TestBoundaryPoint(t *testing.T) {
	r := Rect{X: 100, Y: 100, Width: 40, Height: 20}

	tests := []struct {
		name  string
		angle float64
		want  Point
	}{
		{name: "right", angle: 0, want: Point{X: 40, Y: 10}},
		{name: "top", angle: 90, want: Point{X: 20, Y: 20}},
		{name: "left", angle: 180, want: Point{X: 0, Y: 10}},
		{name: "bottom", angle: 270, want: Point{X: 20, Y: 0}},
		{name: "top right corner", angle: 26.565051177077990, want: Point{X: 40, Y: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoundaryPoint(r, tt.angle, 0)
			if !nearPoint(got, tt.want, 1e-6) {
				t.Errorf("BoundaryPoint(%f) = %+v; want %+v", tt.angle, got, tt.want)
			}
		})
	}

	got := BoundaryPoint(r, 0, 5)
	if !nearPoint(got, Point{X: 50, Y: 15}, 1e-6) {
		t.Errorf("BoundaryPoint with outset = %+v", got)
	}
}

func nearPoint(a, b Point, tol float64) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy <= tol*tol
}

func BenchmarkBoundaryPoint(b *testing.B) {
	r := Rect{Width: 120, Height: 45}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BoundaryPoint(r, float64(i%360), 2)
	}
}
