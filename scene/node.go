// Package scene is a small retained 2D scene graph: nodes with position,
// anchor point, content size, scale and visibility arranged in a tree.
//
// Coordinates grow rightwards and upwards. A node's position is expressed
// in its parent's space and, unless the node ignores its anchor for
// positioning, locates the node's anchor point.
package scene

import (
	"math"
	"slices"

	"github.com/OpticalFlyer/nodeutil/geom"
)

// Kind tags what a node is part of. It is fixed when the node is created,
// so containers can classify children without inspecting their types.
type Kind int

const (
	KindPlain Kind = iota
	KindSpacer
	KindContainer
)

func (k Kind) String() string {
	switch k {
	case KindSpacer:
		return "spacer"
	case KindContainer:
		return "container"
	default:
		return "node"
	}
}

// Node is a single element of the scene graph.
type Node struct {
	Name string

	position     geom.Point
	anchor       geom.Point
	size         geom.Size
	scaleX       float64
	scaleY       float64
	visible      bool
	ignoreAnchor bool

	parent   *Node
	children []*Node

	kind Kind
	host any

	added   func(child *Node)
	removed func(child *Node)
}

// New returns a visible, unscaled node with zero size.
func New() *Node {
	return &Node{scaleX: 1, scaleY: 1, visible: true}
}

// NewSized returns a new node with the given content size.
func NewSized(size geom.Size) *Node {
	n := New()
	n.size = size
	return n
}

// NewHosted returns a node owned by host, tagged with kind.
func NewHosted(kind Kind, host any) *Node {
	n := New()
	n.kind = kind
	n.host = host
	return n
}

// SceneNode returns n. It lets wrappers that embed a *Node be passed
// wherever a node is expected.
func (n *Node) SceneNode() *Node { return n }

func (n *Node) Kind() Kind { return n.kind }

// Host returns the value that owns n, or nil for a plain node.
func (n *Node) Host() any { return n.host }

func (n *Node) Position() geom.Point     { return n.position }
func (n *Node) SetPosition(p geom.Point) { n.position = p }

func (n *Node) AnchorPoint() geom.Point     { return n.anchor }
func (n *Node) SetAnchorPoint(a geom.Point) { n.anchor = a }

func (n *Node) ContentSize() geom.Size     { return n.size }
func (n *Node) SetContentSize(s geom.Size) { n.size = s }

func (n *Node) ScaleX() float64 { return n.scaleX }
func (n *Node) ScaleY() float64 { return n.scaleY }

func (n *Node) SetScale(s float64) {
	n.scaleX = s
	n.scaleY = s
}

func (n *Node) SetScaleX(s float64) { n.scaleX = s }
func (n *Node) SetScaleY(s float64) { n.scaleY = s }

func (n *Node) IsVisible() bool     { return n.visible }
func (n *Node) SetVisible(v bool)   { n.visible = v }
func (n *Node) IgnoresAnchor() bool { return n.ignoreAnchor }

// SetIgnoreAnchor makes the position locate the node's lower-left corner
// instead of its anchor point. Scaling still pivots around the anchor.
func (n *Node) SetIgnoreAnchor(v bool) { n.ignoreAnchor = v }

func (n *Node) Parent() *Node { return n.parent }

// Children returns the children in insertion order. The slice is owned by
// n and must not be modified.
func (n *Node) Children() []*Node { return n.children }

// ChildAt returns the i-th child.
func (n *Node) ChildAt(i int) *Node { return n.children[i] }

// Observe registers callbacks invoked after a child is attached to or
// detached from n. Either may be nil. A later call replaces both.
func (n *Node) Observe(added, removed func(child *Node)) {
	n.added = added
	n.removed = removed
}

// AddChild appends child to n. The child must not have a parent.
func (n *Node) AddChild(child *Node) {
	n.InsertChild(len(n.children), child)
}

// InsertChild attaches child at index i of n's children, so that it is
// drawn before the children that follow it.
func (n *Node) InsertChild(i int, child *Node) {
	if child == nil {
		panic("scene: nil child")
	}
	if child.parent != nil {
		panic("scene: child already has a parent")
	}
	child.parent = n
	n.children = slices.Insert(n.children, i, child)
	if n.added != nil {
		n.added(child)
	}
}

// RemoveChild detaches child from n. It is a no-op if child is not one of
// n's children.
func (n *Node) RemoveChild(child *Node) {
	i := slices.Index(n.children, child)
	if i < 0 {
		return
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	if n.removed != nil {
		n.removed(child)
	}
}

// RemoveFromParent detaches n from its parent, if any.
func (n *Node) RemoveFromParent() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// ScaledContentSize is the content size multiplied by the absolute scale
// factors. All layout math works in this unit.
func (n *Node) ScaledContentSize() geom.Size {
	return geom.Size{
		Width:  math.Abs(n.size.Width * n.scaleX),
		Height: math.Abs(n.size.Height * n.scaleY),
	}
}

func (n *Node) anchorInPoints() geom.Point {
	return n.anchor.Mul(n.size.Width, n.size.Height)
}

// ToParent converts p from n's local space into its parent's space.
func (n *Node) ToParent(p geom.Point) geom.Point {
	a := n.anchorInPoints()
	base := n.position
	if n.ignoreAnchor {
		base = base.Add(a)
	}
	return base.Add(p.Sub(a).Mul(n.scaleX, n.scaleY))
}

// FromParent converts p from the parent's space into n's local space.
func (n *Node) FromParent(p geom.Point) geom.Point {
	a := n.anchorInPoints()
	base := n.position
	if n.ignoreAnchor {
		base = base.Add(a)
	}
	d := p.Sub(base)
	return geom.Point{X: d.X/n.scaleX + a.X, Y: d.Y/n.scaleY + a.Y}
}

// ToWorld converts p from n's local space to world space, the space the
// root of n's tree is positioned in.
func (n *Node) ToWorld(p geom.Point) geom.Point {
	for cur := n; cur != nil; cur = cur.parent {
		p = cur.ToParent(p)
	}
	return p
}

// FromWorld is the inverse of ToWorld.
func (n *Node) FromWorld(p geom.Point) geom.Point {
	var chain []*Node
	for cur := n; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		p = chain[i].FromParent(p)
	}
	return p
}
