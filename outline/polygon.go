// Package outline turns polygon outlines, typically read from ESRI
// shapefiles, into triangle meshes that fill a scene node.
package outline

import (
	"errors"
	"fmt"
	"math"

	"github.com/flywave/go-earcut"

	"github.com/OpticalFlyer/nodeutil/geom"
)

// ErrDegenerate is returned when a polygon has no outer ring with at least
// three distinct vertices.
var ErrDegenerate = errors.New("degenerate polygon")

// Polygon is an outer ring followed by zero or more holes. Rings may repeat
// their first vertex at the end, as shapefiles do.
type Polygon struct {
	Rings [][]geom.Point
}

// Bounds returns the smallest rect enclosing every ring.
func (p Polygon) Bounds() geom.Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, ring := range p.Rings {
		for _, pt := range ring {
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return geom.Rect{}
	}
	return geom.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// open drops the closing vertex of a ring if it repeats the first one.
func open(ring []geom.Point) []geom.Point {
	if n := len(ring); n > 1 && ring[0] == ring[n-1] {
		return ring[:n-1]
	}
	return ring
}

// Vertices lists the vertices of all rings in order, without closing
// duplicates. Triangle indices refer to this slice.
func (p Polygon) Vertices() []geom.Point {
	var out []geom.Point
	for _, ring := range p.Rings {
		out = append(out, open(ring)...)
	}
	return out
}

// Flatten returns the vertices as interleaved x, y coordinates together
// with the vertex index at which each hole starts.
func (p Polygon) Flatten() (coords []float64, holes []int) {
	n := 0
	for i, ring := range p.Rings {
		ring = open(ring)
		if i > 0 {
			holes = append(holes, n)
		}
		for _, pt := range ring {
			coords = append(coords, pt.X, pt.Y)
		}
		n += len(ring)
	}
	return coords, holes
}

// Triangulate splits the polygon into triangles and returns them as
// triples of indices into Vertices.
func (p Polygon) Triangulate() ([]int, error) {
	if len(p.Rings) == 0 || len(open(p.Rings[0])) < 3 {
		return nil, ErrDegenerate
	}

	coords, holes := p.Flatten()
	indices, err := earcut.Earcut(coords, holes, 2)
	if err != nil {
		return nil, fmt.Errorf("triangulating polygon: %w", err)
	}
	if len(indices) == 0 {
		return nil, ErrDegenerate
	}
	return indices, nil
}

// Fit scales the polygon uniformly and moves it so that its bounds are
// centred in a box of the given size anchored at the origin.
func (p Polygon) Fit(size geom.Size) Polygon {
	b := p.Bounds()

	scale := math.Inf(1)
	if b.Width > 0 {
		scale = size.Width / b.Width
	}
	if b.Height > 0 {
		scale = math.Min(scale, size.Height/b.Height)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	offset := geom.Point{
		X: 0.5 * (size.Width - b.Width*scale),
		Y: 0.5 * (size.Height - b.Height*scale),
	}

	out := Polygon{Rings: make([][]geom.Point, len(p.Rings))}
	for i, ring := range p.Rings {
		fitted := make([]geom.Point, len(ring))
		for j, pt := range ring {
			fitted[j] = pt.Sub(b.Origin()).Mul(scale, scale).Add(offset)
		}
		out.Rings[i] = fitted
	}
	return out
}
