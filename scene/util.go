package scene

import "github.com/OpticalFlyer/nodeutil/geom"

// Rect returns n's scaled bounding box in its parent's space.
func (n *Node) Rect() geom.Rect {
	origin := n.position
	if n.ignoreAnchor {
		// position ignores the anchor, scaling does not
		origin = origin.Add(n.anchorInPoints())
	}
	scaled := geom.Size{Width: n.size.Width * n.scaleX, Height: n.size.Height * n.scaleY}
	origin = origin.Sub(n.anchor.Mul(scaled.Width, scaled.Height))
	return geom.RectOf(origin, scaled)
}

// Center returns the midpoint of n's unscaled box in its parent's space.
func (n *Node) Center() geom.Point {
	anchor := n.anchor
	if n.ignoreAnchor {
		anchor = geom.Point{}
	}
	return geom.Point{
		X: n.position.X + (0.5-anchor.X)*n.size.Width,
		Y: n.position.Y + (0.5-anchor.Y)*n.size.Height,
	}
}

// RecenterAnchor moves the anchor point to the middle of n while keeping
// the node where it is on screen.
func (n *Node) RecenterAnchor() {
	size := n.ScaledContentSize()
	n.position = geom.Point{
		X: n.position.X + (0.5-n.anchor.X)*size.Width,
		Y: n.position.Y + (0.5-n.anchor.Y)*size.Height,
	}
	n.anchor = geom.Point{X: 0.5, Y: 0.5}
}

// BoundaryPoint returns where a ray from n's centre at angleDeg leaves its
// bounding box grown by outset, relative to the box's lower-left corner.
func (n *Node) BoundaryPoint(angleDeg, outset float64) geom.Point {
	return geom.BoundaryPoint(n.Rect(), angleDeg, outset)
}

// TransformPoint converts p from src's local space into dst's local space.
func TransformPoint(p geom.Point, src, dst *Node) geom.Point {
	return dst.FromWorld(src.ToWorld(p))
}

// TransformRect converts r from src's local space into dst's local space by
// mapping its lower-left and upper-right corners.
func TransformRect(r geom.Rect, src, dst *Node) geom.Rect {
	origin := TransformPoint(r.Origin(), src, dst)
	topRight := TransformPoint(geom.Point{X: r.MaxX(), Y: r.MaxY()}, src, dst)
	return geom.Rect{
		X:      origin.X,
		Y:      origin.Y,
		Width:  topRight.X - origin.X,
		Height: topRight.Y - origin.Y,
	}
}

// Find returns the first node named name in n's subtree, n included, in
// depth-first order.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}
