package layout

import (
	"math"

	"github.com/OpticalFlyer/nodeutil/geom"
	"github.com/OpticalFlyer/nodeutil/scene"
)

type axis int

const (
	axisX axis = iota
	axisY
)

func (a axis) of(s geom.Size) float64 {
	if a == axisX {
		return s.Width
	}
	return s.Height
}

func (a axis) cross() axis {
	return 1 - a
}

func (a axis) with(s geom.Size, v float64) geom.Size {
	if a == axisX {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// linearStrategy lines children up along one axis: left to right for
// Horizontal, top to bottom for Vertical.
type linearStrategy struct {
	axis axis
}

// fixedExtent sums the scaled extents of the non-spacer children along the
// primary axis, with padding between consecutive children and margin on
// both ends. It also returns the cross-axis minimum.
func (l linearStrategy) fixedExtent(c *Container) (primary, cross float64) {
	padding := l.axis.of(c.padding)
	first := true

	for _, n := range c.Children() {
		if !c.participates(n) || n.Kind() == scene.KindSpacer {
			continue
		}

		size := n.ScaledContentSize()
		if first {
			first = false
		} else {
			primary += padding
		}
		primary += l.axis.of(size)
		cross = math.Max(cross, l.axis.cross().of(size))
	}

	primary += 2 * l.axis.of(c.margin)
	cross += 2 * l.axis.cross().of(c.margin)
	return primary, cross
}

func (l linearStrategy) minSize(c *Container) geom.Size {
	primary, cross := l.fixedExtent(c)
	return l.axis.cross().with(l.axis.with(geom.Size{}, primary), cross)
}

func (l linearStrategy) place(c *Container) {
	size := c.ContentSize()
	fixed, _ := l.fixedExtent(c)

	// hand the leftover primary extent to the spacers
	var totalWeight float64
	for _, s := range c.spacers {
		if s.IsVisible() {
			totalWeight += s.weight
		}
	}
	if totalWeight > 0 {
		free := l.axis.of(size) - fixed
		for _, s := range c.spacers {
			if !s.IsVisible() {
				continue
			}
			extent := math.Max(0, free*s.weight/totalWeight)
			s.SetContentSize(l.axis.with(s.ContentSize(), extent))
		}
	}

	anchor, loc := l.origin(c, size)
	padding := l.axis.of(c.padding)

	for _, n := range c.Children() {
		if !c.participates(n) {
			continue
		}

		n.SetAnchorPoint(anchor)
		n.SetPosition(loc)

		step := l.axis.of(n.ScaledContentSize())
		if n.Kind() != scene.KindSpacer {
			step += padding
		}
		if l.axis == axisX {
			loc.X += step
		} else {
			loc.Y -= step
		}
	}
}

// origin returns the anchor shared by all children and the position of the
// first one.
func (l linearStrategy) origin(c *Container, size geom.Size) (anchor, loc geom.Point) {
	margin := c.margin
	align := c.alignment

	if l.axis == axisX {
		anchor = geom.Point{X: 0, Y: 0}
		loc = geom.Point{X: margin.Width, Y: margin.Height}
		switch {
		case align&scene.AlignTop != 0:
			anchor.Y = 1
			loc.Y = size.Height - margin.Height
		case align&scene.AlignCenterY != 0:
			anchor.Y = 0.5
			loc.Y = 0.5 * size.Height
		}
		return anchor, loc
	}

	anchor = geom.Point{X: 0, Y: 1}
	loc = geom.Point{X: margin.Width, Y: size.Height - margin.Height}
	switch {
	case align&scene.AlignRight != 0:
		anchor.X = 1
		loc.X = size.Width - margin.Width
	case align&scene.AlignCenterX != 0:
		anchor.X = 0.5
		loc.X = 0.5 * size.Width
	}
	return anchor, loc
}
