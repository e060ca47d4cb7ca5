package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/nodeutil/geom"
)

func attached(parentSize, size geom.Size) (*Node, *Node) {
	parent := NewSized(parentSize)
	child := NewSized(size)
	parent.AddChild(child)
	return parent, child
}

func TestAlignToParent(t *testing.T) {
	tests := []struct {
		name         string
		align        Alignment
		padding      geom.Size
		ignoreAnchor bool
		wantPos      geom.Point
		wantAnchor   geom.Point
	}{
		{
			name:       "top right",
			align:      AlignTopRight,
			wantPos:    geom.Point{X: 100, Y: 50},
			wantAnchor: geom.Point{X: 1, Y: 1},
		},
		{
			name:       "top right padded",
			align:      AlignTopRight,
			padding:    geom.Size{Width: 5, Height: 3},
			wantPos:    geom.Point{X: 95, Y: 47},
			wantAnchor: geom.Point{X: 1, Y: 1},
		},
		{
			name:       "center",
			align:      AlignCenter,
			padding:    geom.Size{Width: 5, Height: 3},
			wantPos:    geom.Point{X: 50, Y: 25},
			wantAnchor: geom.Point{X: 0.5, Y: 0.5},
		},
		{
			name:         "ignoring anchor",
			align:        AlignTopRight,
			ignoreAnchor: true,
			wantPos:      geom.Point{X: 90, Y: 40},
			wantAnchor:   geom.Point{X: 1, Y: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, child := attached(geom.Size{Width: 100, Height: 50}, geom.Size{Width: 10, Height: 10})
			child.SetIgnoreAnchor(tt.ignoreAnchor)
			AlignToParentPadded(child, tt.align, tt.align, tt.padding)
			assert.Equal(t, tt.wantPos, child.Position())
			assert.Equal(t, tt.wantAnchor, child.AnchorPoint())
		})
	}
}

func TestAlignRequiresParent(t *testing.T) {
	assert.Panics(t, func() { AlignToParent(New(), AlignCenter) })
	assert.Panics(t, func() { AlignToNode(New(), New(), AlignCenter) })
}

func TestAlignToSibling(t *testing.T) {
	parent := NewSized(geom.Size{Width: 200, Height: 200})
	ref := NewSized(geom.Size{Width: 30, Height: 10})
	ref.SetPosition(geom.Point{X: 20, Y: 20})
	n := NewSized(geom.Size{Width: 5, Height: 5})
	parent.AddChild(ref)
	parent.AddChild(n)

	AlignToNodePadded(n, ref, AlignCenterLeft, AlignCenterRight, geom.Size{Width: 2})
	assert.Equal(t, geom.Point{X: 52, Y: 25}, n.Position())
	assert.Equal(t, geom.Point{X: 0, Y: 0.5}, n.AnchorPoint())
}

func TestAlignAcrossParents(t *testing.T) {
	root := New()
	a, b := New(), New()
	b.SetPosition(geom.Point{X: 100})
	root.AddChild(a)
	root.AddChild(b)

	ref := NewSized(geom.Size{Width: 10, Height: 10})
	ref.SetPosition(geom.Point{X: 10, Y: 10})
	a.AddChild(ref)

	n := NewSized(geom.Size{Width: 4, Height: 4})
	b.AddChild(n)

	AlignToNode(n, ref, AlignBottomLeft)
	assert.Equal(t, geom.Point{X: -90, Y: 10}, n.Position())
	assert.Equal(t, geom.Point{}, n.AnchorPoint())
}

func TestParseAlignment(t *testing.T) {
	tests := map[string]Alignment{
		"center":          AlignCenter,
		"none":            AlignNone,
		"top-left":        AlignTopLeft,
		"Bottom-Right":    AlignBottomRight,
		"bottom|center-x": AlignBottomCenter,
		"left":            AlignCenterLeft,
		"top":             AlignTopCenter,
		"right | top":     AlignTopRight,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			got, err := ParseAlignment(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := ParseAlignment("diagonal")
	assert.Error(t, err)
}

func TestAlignmentString(t *testing.T) {
	assert.Equal(t, "center", AlignCenter.String())
	assert.Equal(t, "none", AlignNone.String())
	assert.Equal(t, "right|top", AlignTopRight.String())
	assert.True(t, AlignTopRight.Has(AlignTop))
	assert.False(t, AlignTopRight.Has(AlignBottom))
}
