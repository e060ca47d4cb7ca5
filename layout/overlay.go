package layout

import (
	"github.com/OpticalFlyer/nodeutil/geom"
	"github.com/OpticalFlyer/nodeutil/scene"
)

// overlayStrategy stacks every child on one point chosen by the alignment.
type overlayStrategy struct{}

func (overlayStrategy) minSize(c *Container) geom.Size {
	var size geom.Size
	for _, n := range c.Children() {
		if !c.participates(n) || n.Kind() == scene.KindSpacer {
			continue
		}
		size = size.Max(n.ScaledContentSize())
	}
	return size.Outset(c.margin)
}

func (overlayStrategy) place(c *Container) {
	size := c.ContentSize()
	margin := c.margin
	align := c.alignment

	anchor := geom.Point{X: 0.5, Y: 0.5}
	loc := size.Center()

	switch {
	case align&scene.AlignLeft != 0:
		anchor.X = 0
		loc.X = margin.Width
	case align&scene.AlignRight != 0:
		anchor.X = 1
		loc.X = size.Width - margin.Width
	}

	switch {
	case align&scene.AlignBottom != 0:
		anchor.Y = 0
		loc.Y = margin.Height
	case align&scene.AlignTop != 0:
		anchor.Y = 1
		loc.Y = size.Height - margin.Height
	}

	for _, n := range c.Children() {
		if !c.participates(n) {
			continue
		}
		n.SetAnchorPoint(anchor)
		n.SetPosition(loc)
	}
}
