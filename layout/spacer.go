package layout

import "github.com/OpticalFlyer/nodeutil/scene"

// Spacer is an invisible child that soaks up the space a horizontal or
// vertical container has left over, in proportion to its weight.
type Spacer struct {
	*scene.Node

	weight float64
}

// NewSpacer returns a spacer with weight 1.
func NewSpacer() *Spacer {
	s := &Spacer{weight: 1}
	s.Node = scene.NewHosted(scene.KindSpacer, s)
	return s
}

func (s *Spacer) Weight() float64 { return s.weight }

// SetWeight changes the spacer's share of leftover space. Non-positive
// weights are ignored.
func (s *Spacer) SetWeight(w float64) *Spacer {
	if w > 0 {
		s.weight = w
	}
	return s
}
