package scene

import (
	"github.com/OpticalFlyer/nodeutil/geom"
	"github.com/OpticalFlyer/nodeutil/paint"
)

var _ paint.Colorable = (*ColorNode)(nil)

// ColorNode is a node filled with a solid colour when drawn.
type ColorNode struct {
	*Node

	color            paint.RGB
	opacity          uint8
	opacityModifyRGB bool
}

// NewColorNode returns a colour node of the given size.
func NewColorNode(c paint.RGBA, size geom.Size) *ColorNode {
	return NewHostedColorNode(nil, c, size)
}

// NewHostedColorNode is NewColorNode for types that embed a ColorNode.
// Host reports host instead of the colour node, or the colour node itself
// when host is nil.
func NewHostedColorNode(host any, c paint.RGBA, size geom.Size) *ColorNode {
	cn := &ColorNode{
		color:            c.RGB(),
		opacity:          c.A,
		opacityModifyRGB: true,
	}
	if host == nil {
		host = cn
	}
	cn.Node = NewHosted(KindPlain, host)
	cn.SetContentSize(size)
	return cn
}

func (c *ColorNode) SetColor(v paint.RGB) { c.color = v }
func (c *ColorNode) Color() paint.RGB     { return c.color }
func (c *ColorNode) SetOpacity(v uint8)   { c.opacity = v }
func (c *ColorNode) Opacity() uint8       { return c.opacity }

func (c *ColorNode) SetOpacityModifyRGB(v bool) { c.opacityModifyRGB = v }
func (c *ColorNode) IsOpacityModifyRGB() bool   { return c.opacityModifyRGB }

// Fill is the colour to draw the node with.
func (c *ColorNode) Fill() paint.RGBA {
	return paint.RGBA{R: c.color.R, G: c.color.G, B: c.color.B, A: c.opacity}
}
