package outline

import (
	"github.com/OpticalFlyer/nodeutil/geom"
	"github.com/OpticalFlyer/nodeutil/paint"
	"github.com/OpticalFlyer/nodeutil/scene"
)

// Node is a colour node filled with a polygon instead of its whole box.
// The polygon is stretched uniformly to fit the current content size, so
// outlines can serve as layout backgrounds.
type Node struct {
	*scene.ColorNode

	shape   Polygon
	indices []int
}

// NewNode triangulates p and returns a node of the given size filled with c.
func NewNode(p Polygon, c paint.RGBA, size geom.Size) (*Node, error) {
	indices, err := p.Triangulate()
	if err != nil {
		return nil, err
	}
	n := &Node{shape: p, indices: indices}
	n.ColorNode = scene.NewHostedColorNode(n, c, size)
	return n, nil
}

func (n *Node) Shape() Polygon { return n.shape }

// Mesh returns the triangle vertices in node space together with the
// triangle indices.
func (n *Node) Mesh() ([]geom.Point, []int) {
	return n.shape.Fit(n.ContentSize()).Vertices(), n.indices
}
