package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/nodeutil/geom"
)

// Widget is a top-level element managed by a Controller. Bounds are in
// screen space, y growing downwards.
type Widget interface {
	Update() error
	Draw(screen *ebiten.Image)
	Bounds() geom.Rect
	UpdateWindowSize(width, height int)
	// Interacting reports whether the widget holds the pointer, for
	// example while it is being dragged.
	Interacting() bool
}

// toScene converts a screen position into the y-up scene space of a window
// of the given height.
func toScene(x, y float64, windowHeight int) geom.Point {
	return geom.Point{X: x, Y: float64(windowHeight) - y}
}
