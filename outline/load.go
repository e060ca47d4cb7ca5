package outline

import (
	"errors"
	"fmt"

	"github.com/jonas-p/go-shp"

	"github.com/OpticalFlyer/nodeutil/geom"
)

// ErrUnsupportedShape is returned by Load for records that are neither
// polygons nor null shapes.
var ErrUnsupportedShape = errors.New("unsupported shape type")

// Load reads every polygon record of the shapefile at path. Null records
// are skipped.
func Load(path string) ([]Polygon, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening shapefile %s: %w", path, err)
	}
	defer r.Close()

	var polys []Polygon
	for r.Next() {
		n, shape := r.Shape()
		switch s := shape.(type) {
		case *shp.Polygon:
			polys = append(polys, fromShape(s.Parts, s.Points))
		case *shp.Null:
		default:
			return nil, fmt.Errorf("record %d of %s: %w (%T)", n, path, ErrUnsupportedShape, shape)
		}
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("reading shapefile %s: %w", path, err)
	}
	return polys, nil
}

// fromShape splits a shapefile point list into rings at the part offsets.
func fromShape(parts []int32, points []shp.Point) Polygon {
	p := Polygon{Rings: make([][]geom.Point, 0, len(parts))}
	for i, start := range parts {
		end := len(points)
		if i+1 < len(parts) {
			end = int(parts[i+1])
		}
		ring := make([]geom.Point, 0, end-int(start))
		for _, pt := range points[start:end] {
			ring = append(ring, geom.Point{X: pt.X, Y: pt.Y})
		}
		p.Rings = append(p.Rings, ring)
	}
	return p
}

// Save writes polys as a polygon shapefile at path.
func Save(path string, polys []Polygon) error {
	w, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		return fmt.Errorf("creating shapefile %s: %w", path, err)
	}
	defer w.Close()

	for _, p := range polys {
		parts := make([][]shp.Point, len(p.Rings))
		for i, ring := range p.Rings {
			for _, pt := range ring {
				parts[i] = append(parts[i], shp.Point{X: pt.X, Y: pt.Y})
			}
		}
		w.Write((*shp.Polygon)(shp.NewPolyLine(parts)))
	}
	return nil
}
