package layout

import (
	"fmt"
	"strings"

	"github.com/OpticalFlyer/nodeutil/geom"
)

// Behavior selects how a container arranges its children.
type Behavior int

const (
	// BehaviorNone leaves children where they are and reports a zero
	// minimum size.
	BehaviorNone Behavior = iota
	// Horizontal lines children up left to right.
	Horizontal
	// Vertical stacks children top to bottom.
	Vertical
	// Overlay puts every child on the same alignment point.
	Overlay
)

var behaviorNames = [...]string{"none", "horizontal", "vertical", "overlay"}

func (b Behavior) String() string {
	if b < 0 || int(b) >= len(behaviorNames) {
		return fmt.Sprintf("Behavior(%d)", int(b))
	}
	return behaviorNames[b]
}

// ParseBehavior reads a behavior name as produced by String.
func ParseBehavior(s string) (Behavior, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return BehaviorNone, nil
	}
	for i, name := range behaviorNames {
		if name == s {
			return Behavior(i), nil
		}
	}
	return BehaviorNone, fmt.Errorf("unknown layout behavior %q", s)
}

// SizingPolicy controls whether nested containers are stretched to match
// the largest sibling on an axis.
type SizingPolicy int

const (
	SizingNone SizingPolicy = iota
	SizingEqualize
)

func (p SizingPolicy) String() string {
	if p == SizingEqualize {
		return "equalize"
	}
	return "none"
}

// strategy computes a container's minimum size and positions its children.
// Implementations hold no state and are shared by every container.
type strategy interface {
	minSize(c *Container) geom.Size
	place(c *Container)
}

var strategies = [...]strategy{
	BehaviorNone: noneStrategy{},
	Horizontal:   linearStrategy{axis: axisX},
	Vertical:     linearStrategy{axis: axisY},
	Overlay:      overlayStrategy{},
}

func strategyFor(b Behavior) strategy {
	if b < 0 || int(b) >= len(strategies) {
		return strategies[BehaviorNone]
	}
	return strategies[b]
}

type noneStrategy struct{}

func (noneStrategy) minSize(*Container) geom.Size { return geom.Size{} }
func (noneStrategy) place(*Container)             {}
