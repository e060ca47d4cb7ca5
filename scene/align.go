package scene

import (
	"fmt"
	"strings"

	"github.com/OpticalFlyer/nodeutil/geom"
)

// Alignment combines at most one horizontal and one vertical flag.
type Alignment uint8

const (
	AlignNone Alignment = 0x00

	AlignLeft    Alignment = 0x01
	AlignCenterX Alignment = 0x02
	AlignRight   Alignment = 0x04
	AlignTop     Alignment = 0x10
	AlignCenterY Alignment = 0x20
	AlignBottom  Alignment = 0x40

	AlignTopLeft      = AlignTop | AlignLeft
	AlignTopCenter    = AlignTop | AlignCenterX
	AlignTopRight     = AlignTop | AlignRight
	AlignCenterLeft   = AlignCenterY | AlignLeft
	AlignCenter       = AlignCenterY | AlignCenterX
	AlignCenterRight  = AlignCenterY | AlignRight
	AlignBottomLeft   = AlignBottom | AlignLeft
	AlignBottomCenter = AlignBottom | AlignCenterX
	AlignBottomRight  = AlignBottom | AlignRight
)

var alignNames = []struct {
	name string
	flag Alignment
}{
	{"left", AlignLeft},
	{"center-x", AlignCenterX},
	{"right", AlignRight},
	{"top", AlignTop},
	{"center-y", AlignCenterY},
	{"bottom", AlignBottom},
}

// Has reports whether every flag in f is set in a.
func (a Alignment) Has(f Alignment) bool {
	return a&f == f && f != 0
}

func (a Alignment) String() string {
	if a == AlignNone {
		return "none"
	}
	if a == AlignCenter {
		return "center"
	}
	var parts []string
	for _, an := range alignNames {
		if a.Has(an.flag) {
			parts = append(parts, an.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseAlignment reads an alignment such as "center", "top-left",
// "bottom|center-x" or "none".
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return AlignNone, nil
	case "center":
		return AlignCenter, nil
	case "top-left":
		return AlignTopLeft, nil
	case "top-center", "top":
		return AlignTopCenter, nil
	case "top-right":
		return AlignTopRight, nil
	case "center-left", "left":
		return AlignCenterLeft, nil
	case "center-right", "right":
		return AlignCenterRight, nil
	case "bottom-left":
		return AlignBottomLeft, nil
	case "bottom-center", "bottom":
		return AlignBottomCenter, nil
	case "bottom-right":
		return AlignBottomRight, nil
	}

	var a Alignment
	for _, part := range strings.Split(s, "|") {
		part = strings.ToLower(strings.TrimSpace(part))
		found := false
		for _, an := range alignNames {
			if an.name == part {
				a |= an.flag
				found = true
				break
			}
		}
		if !found {
			return AlignNone, fmt.Errorf("unknown alignment %q", s)
		}
	}
	return a, nil
}

func alignPosition(pos, refOrigin geom.Point, refSize geom.Size, align Alignment) geom.Point {
	switch {
	case align&AlignLeft != 0:
		pos.X = refOrigin.X
	case align&AlignCenterX != 0:
		pos.X = refOrigin.X + 0.5*refSize.Width
	case align&AlignRight != 0:
		pos.X = refOrigin.X + refSize.Width
	}

	switch {
	case align&AlignBottom != 0:
		pos.Y = refOrigin.Y
	case align&AlignCenterY != 0:
		pos.Y = refOrigin.Y + 0.5*refSize.Height
	case align&AlignTop != 0:
		pos.Y = refOrigin.Y + refSize.Height
	}
	return pos
}

func alignAnchor(anchor geom.Point, align Alignment) geom.Point {
	switch {
	case align&AlignLeft != 0:
		anchor.X = 0
	case align&AlignCenterX != 0:
		anchor.X = 0.5
	case align&AlignRight != 0:
		anchor.X = 1
	}

	switch {
	case align&AlignBottom != 0:
		anchor.Y = 0
	case align&AlignCenterY != 0:
		anchor.Y = 0.5
	case align&AlignTop != 0:
		anchor.Y = 1
	}
	return anchor
}

// padding pushes the node inwards from whichever edge it is aligned to
func alignPadding(pos geom.Point, align Alignment, padding geom.Size) geom.Point {
	switch {
	case align&AlignLeft != 0:
		pos.X += padding.Width
	case align&AlignRight != 0:
		pos.X -= padding.Width
	}

	switch {
	case align&AlignBottom != 0:
		pos.Y += padding.Height
	case align&AlignTop != 0:
		pos.Y -= padding.Height
	}
	return pos
}

func (n *Node) alignTo(refOrigin geom.Point, refSize geom.Size, nodeAlign, refAlign Alignment, padding geom.Size) {
	pos := alignPosition(n.position, refOrigin, refSize, refAlign)
	anchor := alignAnchor(n.anchor, nodeAlign)
	pos = alignPadding(pos, nodeAlign, padding)

	if n.ignoreAnchor {
		pos = pos.Sub(anchor.Mul(n.size.Width, n.size.Height))
	}

	n.position = pos
	n.anchor = anchor
}

// AlignToParent places n so that its align point meets the same point of
// its parent's box.
func AlignToParent(n *Node, align Alignment) {
	AlignToParentPadded(n, align, align, geom.Size{})
}

// AlignToParentPadded places n's nodeAlign point on the refAlign point of
// its parent's box, then moves it inwards by padding. n must have a parent.
func AlignToParentPadded(n *Node, nodeAlign, refAlign Alignment, padding geom.Size) {
	if n.parent == nil {
		panic("scene: node must have a parent")
	}
	n.alignTo(geom.Point{}, n.parent.size, nodeAlign, refAlign, padding)
}

// AlignToNode places n so that its align point meets the same point of ref.
func AlignToNode(n, ref *Node, align Alignment) {
	AlignToNodePadded(n, ref, align, align, geom.Size{})
}

// AlignToNodePadded places n's nodeAlign point on the refAlign point of
// ref's bounding box, then moves it inwards by padding. Both nodes must be
// attached; ref's box is mapped into n's parent space when their parents
// differ.
func AlignToNodePadded(n, ref *Node, nodeAlign, refAlign Alignment, padding geom.Size) {
	if n.parent == nil || ref.parent == nil {
		panic("scene: node and reference must have parents")
	}

	refRect := ref.Rect()
	if n.parent != ref.parent {
		refRect = TransformRect(refRect, ref.parent, n.parent)
	}
	n.alignTo(refRect.Origin(), refRect.Size(), nodeAlign, refAlign, padding)
}
