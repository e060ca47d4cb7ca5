package outline

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/nodeutil/geom"
	"github.com/OpticalFlyer/nodeutil/paint"
	"github.com/OpticalFlyer/nodeutil/scene"
)

func square(x, y, side float64) []geom.Point {
	return []geom.Point{
		{X: x, Y: y},
		{X: x + side, Y: y},
		{X: x + side, Y: y + side},
		{X: x, Y: y + side},
		{X: x, Y: y},
	}
}

func meshArea(verts []geom.Point, indices []int) float64 {
	var area float64
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := verts[indices[i]], verts[indices[i+1]], verts[indices[i+2]]
		area += math.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2
	}
	return area
}

func TestFlatten(t *testing.T) {
	p := Polygon{Rings: [][]geom.Point{square(0, 0, 10), square(3, 3, 4)}}

	coords, holes := p.Flatten()
	assert.Len(t, coords, 16)
	assert.Equal(t, []int{4}, holes)
	assert.Len(t, p.Vertices(), 8)
	assert.Equal(t, geom.Rect{Width: 10, Height: 10}, p.Bounds())
}

func TestTriangulate(t *testing.T) {
	tests := []struct {
		name      string
		rings     [][]geom.Point
		triangles int
		area      float64
	}{
		{"square", [][]geom.Point{square(0, 0, 10)}, 2, 100},
		{"open ring", [][]geom.Point{square(0, 0, 10)[:4]}, 2, 100},
		{"hole", [][]geom.Point{square(0, 0, 10), square(3, 3, 4)}, 8, 84},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Polygon{Rings: tt.rings}
			indices, err := p.Triangulate()
			require.NoError(t, err)
			assert.Len(t, indices, 3*tt.triangles)
			assert.InDelta(t, tt.area, meshArea(p.Vertices(), indices), 1e-9)
		})
	}
}

func TestTriangulateDegenerate(t *testing.T) {
	_, err := Polygon{}.Triangulate()
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = Polygon{Rings: [][]geom.Point{{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}}}.Triangulate()
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestFit(t *testing.T) {
	p := Polygon{Rings: [][]geom.Point{{
		{X: 100, Y: 50}, {X: 120, Y: 50}, {X: 120, Y: 60}, {X: 100, Y: 60},
	}}}

	fitted := p.Fit(geom.Size{Width: 40, Height: 40})
	assert.Equal(t, geom.Rect{X: 0, Y: 10, Width: 40, Height: 20}, fitted.Bounds())

	// the source is left untouched
	assert.Equal(t, 100.0, p.Rings[0][0].X)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.shp")
	polys := []Polygon{
		{Rings: [][]geom.Point{square(0, 0, 10), square(3, 3, 4)}},
		{Rings: [][]geom.Point{square(20, 20, 5)}},
	}

	require.NoError(t, Save(path, polys))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, polys, got)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.shp"))
	assert.Error(t, err)
}

func TestNode(t *testing.T) {
	p := Polygon{Rings: [][]geom.Point{square(0, 0, 10)}}
	n, err := NewNode(p, paint.RGBA{R: 0xff, A: 0xff}, geom.Size{Width: 20, Height: 40})
	require.NoError(t, err)

	assert.Same(t, n, n.Host())
	assert.Implements(t, (*paint.Colorable)(nil), n.Host())

	verts, indices := n.Mesh()
	assert.Len(t, indices, 6)
	assert.InDelta(t, 400, meshArea(verts, indices), 1e-9)

	// resizing the node refits the mesh
	n.SetContentSize(geom.Size{Width: 5, Height: 5})
	verts, _ = n.Mesh()
	assert.InDelta(t, 25, meshArea(verts, indices), 1e-9)

	parent := scene.New()
	parent.AddChild(n.SceneNode())
	assert.Same(t, parent, n.Parent())
}
