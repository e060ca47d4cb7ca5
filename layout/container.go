// Package layout arranges scene nodes inside box containers. A Container
// sizes itself from its children, hands any leftover room to its spacers
// and then positions everything according to its behavior and alignment.
package layout

import (
	"math"
	"slices"

	"github.com/OpticalFlyer/nodeutil/geom"
	"github.com/OpticalFlyer/nodeutil/paint"
	"github.com/OpticalFlyer/nodeutil/scene"
)

// Element is anything that wraps a scene node: plain nodes, colour nodes,
// spacers and containers all qualify.
type Element interface {
	SceneNode() *scene.Node
}

// Container is a scene node that lays out its children.
type Container struct {
	*scene.Node

	behavior  Behavior
	strategy  strategy
	alignment scene.Alignment

	minSize geom.Size
	padding geom.Size
	margin  geom.Size

	widthPolicy  SizingPolicy
	heightPolicy SizingPolicy

	frozen     bool
	background *scene.Node
	spacers    []*Spacer

	color            paint.RGB
	opacity          uint8
	opacityModifyRGB bool
}

// New returns an empty container that does not move its children.
func New() *Container {
	c := &Container{
		alignment:        scene.AlignCenter,
		color:            paint.White,
		opacity:          0xff,
		opacityModifyRGB: true,
	}
	c.Node = scene.NewHosted(scene.KindContainer, c)
	c.Node.Observe(c.childAdded, c.childRemoved)
	c.SetBehavior(BehaviorNone)
	return c
}

func NewHorizontal() *Container { return New().SetBehavior(Horizontal) }
func NewVertical() *Container   { return New().SetBehavior(Vertical) }
func NewOverlay() *Container    { return New().SetBehavior(Overlay) }

func (c *Container) childAdded(n *scene.Node) {
	if n == c.background || n.Kind() != scene.KindSpacer {
		return
	}
	if s, ok := n.Host().(*Spacer); ok {
		c.spacers = append(c.spacers, s)
	}
}

func (c *Container) childRemoved(n *scene.Node) {
	if n == c.background {
		c.background = nil
	}
	c.spacers = slices.DeleteFunc(c.spacers, func(s *Spacer) bool {
		return s.Node == n
	})
}

// participates reports whether n takes part in sizing and placement.
func (c *Container) participates(n *scene.Node) bool {
	return n != c.background && n.IsVisible()
}

func (c *Container) Behavior() Behavior { return c.behavior }

// SetBehavior switches the strategy used by the next layout pass.
func (c *Container) SetBehavior(b Behavior) *Container {
	c.behavior = b
	c.strategy = strategyFor(b)
	return c
}

func (c *Container) Alignment() scene.Alignment { return c.alignment }

func (c *Container) SetAlignment(a scene.Alignment) *Container {
	c.alignment = a
	return c
}

func (c *Container) Padding() geom.Size { return c.padding }

// SetPadding sets the gap placed after each non-spacer child.
func (c *Container) SetPadding(p geom.Size) *Container {
	c.padding = p
	return c
}

func (c *Container) Margin() geom.Size { return c.margin }

// SetMargin sets the inset between the container's edges and its content.
func (c *Container) SetMargin(m geom.Size) *Container {
	c.margin = m
	return c
}

func (c *Container) WidthSizingPolicy() SizingPolicy  { return c.widthPolicy }
func (c *Container) HeightSizingPolicy() SizingPolicy { return c.heightPolicy }

func (c *Container) SetWidthSizingPolicy(p SizingPolicy) *Container {
	c.widthPolicy = p
	return c
}

func (c *Container) SetHeightSizingPolicy(p SizingPolicy) *Container {
	c.heightPolicy = p
	return c
}

func (c *Container) Frozen() bool { return c.frozen }

// SetFrozen stops layout passes from touching the container.
func (c *Container) SetFrozen(v bool) *Container {
	c.frozen = v
	return c
}

// SetMinSize sets the explicit lower bound on the container's size.
func (c *Container) SetMinSize(s geom.Size) *Container {
	c.minSize = s
	return c
}

// MinSize is the larger of the explicit minimum and what the children need.
func (c *Container) MinSize() geom.Size {
	return c.minSize.Max(c.strategy.minSize(c))
}

// Background returns the background node, or nil.
func (c *Container) Background() *scene.Node { return c.background }

// Spacers returns the spacers among the children in child order.
func (c *Container) Spacers() []*Spacer { return c.spacers }

// FitToContents shrinks the explicit minimum to zero and lays out, leaving
// the container exactly as large as its children require.
func (c *Container) FitToContents() *Container {
	c.minSize = geom.Size{}
	c.Layout()
	return c
}

// FitWidthToContents is FitToContents restricted to the width.
func (c *Container) FitWidthToContents() *Container {
	c.minSize.Width = 0
	c.Layout()
	return c
}

// FitHeightToContents is FitToContents restricted to the height.
func (c *Container) FitHeightToContents() *Container {
	c.minSize.Height = 0
	c.Layout()
	return c
}

// AddChild attaches children in order.
func (c *Container) AddChild(children ...Element) *Container {
	for _, e := range children {
		c.Node.AddChild(e.SceneNode())
	}
	return c
}

// RemoveChild detaches e. Removing the background clears it.
func (c *Container) RemoveChild(e Element) {
	c.Node.RemoveChild(e.SceneNode())
}

// Clear removes every child except the background.
func (c *Container) Clear() {
	for _, n := range slices.Clone(c.Children()) {
		if n != c.background {
			c.Node.RemoveChild(n)
		}
	}
}

// SetBackground replaces the background with e, or removes it when e is
// nil. The background fills the container, sits behind the other children
// and takes no part in layout.
func (c *Container) SetBackground(e Element) {
	if e == nil && c.background == nil {
		return
	}
	if e != nil && e.SceneNode() == c.background {
		return
	}
	if old := c.background; old != nil {
		if old.Parent() != c.Node {
			panic("layout: background is not a child of its container")
		}
		old.RemoveFromParent()
	}
	if e == nil {
		return
	}

	n := e.SceneNode()
	c.background = n
	c.Node.InsertChild(0, n)
	n.SetAnchorPoint(geom.Point{})
	n.SetPosition(geom.Point{})
	c.resizeBackground(c.ContentSize())
}

// SetContentSize resizes the container and its background.
func (c *Container) SetContentSize(s geom.Size) {
	c.Node.SetContentSize(s)
	if c.background != nil {
		c.resizeBackground(s)
	}
}

// resizeBackground goes through a container background's own
// SetContentSize so that its background follows too.
func (c *Container) resizeBackground(s geom.Size) {
	if inner, ok := c.background.Host().(*Container); ok {
		inner.SetContentSize(s)
		return
	}
	c.background.SetContentSize(s)
}

// Layout lays the container out with no size floor.
func (c *Container) Layout() {
	c.DoLayout(geom.Size{})
}

// DoLayout runs a layout pass with minSize as the smallest size the
// container may take. Frozen and invisible containers are left alone.
func (c *Container) DoLayout(minSize geom.Size) {
	if c.frozen || !c.IsVisible() {
		return
	}

	c.fitChildren(c.widthPolicy == SizingEqualize, c.heightPolicy == SizingEqualize)

	var floor geom.Size
	if c.widthPolicy == SizingEqualize || c.heightPolicy == SizingEqualize {
		largest := c.largestChild()
		if c.widthPolicy == SizingEqualize {
			floor.Width = largest.Width
		}
		if c.heightPolicy == SizingEqualize {
			floor.Height = largest.Height
		}
	}

	for _, n := range c.Children() {
		if !c.participates(n) || n.Kind() != scene.KindContainer {
			continue
		}
		if child, ok := n.Host().(*Container); ok {
			child.DoLayout(floor)
		}
	}

	size := c.MinSize().Max(minSize)
	c.SetContentSize(size)
	c.strategy.place(c)

	logger.Debug("layout", "name", c.Name, "behavior", c.behavior, "width", size.Width, "height", size.Height)
}

// fitChildren shrinks nested containers on the equalized axes so they can
// be stretched back to a common size afterwards.
func (c *Container) fitChildren(width, height bool) {
	if !width && !height {
		return
	}
	for _, n := range c.Children() {
		if !c.participates(n) || n.Kind() != scene.KindContainer {
			continue
		}
		child, ok := n.Host().(*Container)
		if !ok {
			continue
		}
		switch {
		case width && height:
			child.FitToContents()
		case width:
			child.FitWidthToContents()
		default:
			child.FitHeightToContents()
		}
	}
}

func (c *Container) largestChild() geom.Size {
	var largest geom.Size
	for _, n := range c.Children() {
		if !c.participates(n) {
			continue
		}
		s := n.ScaledContentSize()
		largest.Width = math.Max(largest.Width, s.Width)
		largest.Height = math.Max(largest.Height, s.Height)
	}
	return largest
}

// SetColor tints the container, its background and every colourable child.
func (c *Container) SetColor(v paint.RGB) {
	c.color = v
	c.cascade(func(col paint.Colorable) { col.SetColor(v) })
}

func (c *Container) Color() paint.RGB { return c.color }

// SetOpacity applies to the background and every colourable child.
func (c *Container) SetOpacity(v uint8) {
	c.opacity = v
	c.cascade(func(col paint.Colorable) { col.SetOpacity(v) })
}

func (c *Container) Opacity() uint8 { return c.opacity }

func (c *Container) SetOpacityModifyRGB(v bool) {
	c.opacityModifyRGB = v
	c.cascade(func(col paint.Colorable) { col.SetOpacityModifyRGB(v) })
}

func (c *Container) IsOpacityModifyRGB() bool { return c.opacityModifyRGB }

func (c *Container) cascade(apply func(paint.Colorable)) {
	if c.background != nil {
		if col, ok := c.background.Host().(paint.Colorable); ok {
			apply(col)
		}
	}
	for _, n := range c.Children() {
		if n == c.background {
			continue
		}
		if col, ok := n.Host().(paint.Colorable); ok {
			apply(col)
		}
	}
}
