package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/nodeutil/geom"
	"github.com/OpticalFlyer/nodeutil/paint"
)

func TestNodeTree(t *testing.T) {
	parent := New()
	a, b := New(), New()

	var added, removed []*Node
	parent.Observe(
		func(c *Node) { added = append(added, c) },
		func(c *Node) { removed = append(removed, c) },
	)

	parent.AddChild(a)
	parent.AddChild(b)
	require.Equal(t, []*Node{a, b}, parent.Children())
	assert.Same(t, parent, a.Parent())
	assert.Same(t, b, parent.ChildAt(1))

	a.RemoveFromParent()
	assert.Nil(t, a.Parent())
	assert.Equal(t, []*Node{b}, parent.Children())

	// removing a stranger is a no-op
	parent.RemoveChild(a)

	assert.Equal(t, []*Node{a, b}, added)
	assert.Equal(t, []*Node{a}, removed)

	assert.Panics(t, func() { New().AddChild(b) }, "re-parenting an attached node")
}

func TestInsertChild(t *testing.T) {
	parent := New()
	a, b, c := New(), New(), New()

	var added []*Node
	parent.Observe(func(n *Node) { added = append(added, n) }, nil)

	parent.AddChild(a)
	parent.AddChild(b)
	parent.InsertChild(0, c)

	assert.Equal(t, []*Node{c, a, b}, parent.Children())
	assert.Same(t, parent, c.Parent())
	assert.Equal(t, []*Node{a, b, c}, added)
	assert.Panics(t, func() { parent.InsertChild(0, a) })
}

func TestScaledContentSize(t *testing.T) {
	n := NewSized(geom.Size{Width: 10, Height: 20})
	n.SetScaleX(-2)
	n.SetScaleY(0.5)
	assert.Equal(t, geom.Size{Width: 20, Height: 10}, n.ScaledContentSize())
}

func TestNodeRect(t *testing.T) {
	tests := []struct {
		name         string
		pos          geom.Point
		anchor       geom.Point
		scale        float64
		ignoreAnchor bool
		want         geom.Rect
	}{
		{
			name:   "centered anchor scaled",
			pos:    geom.Point{X: 50, Y: 50},
			anchor: geom.Point{X: 0.5, Y: 0.5},
			scale:  2,
			want:   geom.Rect{X: 30, Y: 40, Width: 40, Height: 20},
		},
		{
			name:         "ignoring anchor",
			pos:          geom.Point{X: 50, Y: 50},
			anchor:       geom.Point{X: 0.5, Y: 0.5},
			scale:        1,
			ignoreAnchor: true,
			want:         geom.Rect{X: 50, Y: 50, Width: 20, Height: 10},
		},
		{
			name:  "origin anchor",
			pos:   geom.Point{X: 5, Y: 6},
			scale: 1,
			want:  geom.Rect{X: 5, Y: 6, Width: 20, Height: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewSized(geom.Size{Width: 20, Height: 10})
			n.SetPosition(tt.pos)
			n.SetAnchorPoint(tt.anchor)
			n.SetScale(tt.scale)
			n.SetIgnoreAnchor(tt.ignoreAnchor)
			assert.Equal(t, tt.want, n.Rect())
		})
	}
}

func TestWorldTransforms(t *testing.T) {
	parent := New()
	parent.SetPosition(geom.Point{X: 100, Y: 100})
	parent.SetScale(2)

	child := NewSized(geom.Size{Width: 10, Height: 10})
	child.SetPosition(geom.Point{X: 10, Y: 10})
	parent.AddChild(child)

	world := child.ToWorld(geom.Point{})
	assert.Equal(t, geom.Point{X: 120, Y: 120}, world)
	assert.Equal(t, geom.Point{}, child.FromWorld(world))

	other := New()
	other.SetPosition(geom.Point{X: 20, Y: 0})
	assert.Equal(t, geom.Point{X: 100, Y: 120}, TransformPoint(geom.Point{}, child, other))
}

func TestCenterAndRecenter(t *testing.T) {
	n := NewSized(geom.Size{Width: 20, Height: 20})
	n.SetPosition(geom.Point{X: 10, Y: 10})
	assert.Equal(t, geom.Point{X: 20, Y: 20}, n.Center())

	m := NewSized(geom.Size{Width: 10, Height: 20})
	m.SetScale(2)
	m.RecenterAnchor()
	assert.Equal(t, geom.Point{X: 10, Y: 20}, m.Position())
	assert.Equal(t, geom.Point{X: 0.5, Y: 0.5}, m.AnchorPoint())
}

func TestFind(t *testing.T) {
	root := New()
	a, b, c := New(), New(), New()
	a.Name, b.Name, c.Name = "a", "b", "b"
	root.AddChild(a)
	a.AddChild(b)
	root.AddChild(c)

	assert.Same(t, b, root.Find("b"))
	assert.Same(t, a, a.Find("a"))
	assert.Nil(t, c.Find("a"))
}

func TestColorNodeHost(t *testing.T) {
	cn := NewColorNode(paint.RGBA{R: 1, G: 2, B: 3, A: 4}, geom.Size{Width: 5, Height: 6})
	assert.Same(t, cn, cn.Host())
	assert.Equal(t, geom.Size{Width: 5, Height: 6}, cn.ContentSize())
	assert.Equal(t, paint.RGBA{R: 1, G: 2, B: 3, A: 4}, cn.Fill())

	owner := &struct{ name string }{"owner"}
	hosted := NewHostedColorNode(owner, paint.RGBA{}, geom.Size{})
	assert.Same(t, owner, hosted.Host())

	paint.Apply(cn, paint.RGBA{R: 9, A: 8})
	assert.Equal(t, paint.RGB{R: 9}, cn.Color())
	assert.Equal(t, uint8(8), cn.Opacity())
}
