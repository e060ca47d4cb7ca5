package ui

import (
	"github.com/OpticalFlyer/nodeutil/geom"
	"github.com/OpticalFlyer/nodeutil/paint"
	"github.com/OpticalFlyer/nodeutil/scene"
)

var (
	buttonIdle    = paint.RGB{R: 150, G: 150, B: 150}
	buttonHovered = paint.RGB{R: 180, G: 180, B: 180}
	buttonPressed = paint.RGB{R: 100, G: 100, B: 100}
)

// Button is a clickable box that layouts place like any other node.
type Button struct {
	*scene.ColorNode

	text    string
	onClick func()

	// State
	isHovered bool
	isPressed bool
}

func NewButton(text string, size geom.Size, onClick func()) *Button {
	b := &Button{text: text, onClick: onClick}
	b.ColorNode = scene.NewHostedColorNode(b, buttonIdle.RGBA(), size)
	return b
}

func (b *Button) Label() string { return b.text }

// contains reports whether p, in world space, lies on the button.
func (b *Button) contains(p geom.Point) bool {
	local := b.FromWorld(p)
	size := b.ContentSize()
	return local.X >= 0 && local.X <= size.Width &&
		local.Y >= 0 && local.Y <= size.Height
}

// HandleInput updates hover and press state for a pointer at p in world
// space. A click fires when the button is released over the button.
func (b *Button) HandleInput(p geom.Point, pressed bool) bool {
	if !b.contains(p) {
		b.isHovered = false
		b.isPressed = false
		b.SetColor(buttonIdle)
		return false
	}

	b.isHovered = true
	if pressed {
		b.isPressed = true
	} else if b.isPressed {
		b.isPressed = false
		if b.onClick != nil {
			b.onClick()
		}
	}

	switch {
	case b.isPressed:
		b.SetColor(buttonPressed)
	default:
		b.SetColor(buttonHovered)
	}
	return true
}
