package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OpticalFlyer/nodeutil/geom"
	"github.com/OpticalFlyer/nodeutil/layout"
	"github.com/OpticalFlyer/nodeutil/paint"
	"github.com/OpticalFlyer/nodeutil/scene"
)

func TestNodeAt(t *testing.T) {
	swatch := scene.NewColorNode(paint.RGBA{A: 0xff}, geom.Size{Width: 20, Height: 20})
	body := layout.NewHorizontal().AddChild(swatch)

	c := &Controller{}
	c.AddWidget(NewPanel(10, 10, 200, 100, "test", body))

	// the body's inner area starts 4px inside the panel, below the title bar
	assert.Same(t, swatch.Node, c.NodeAt(20, 70))
	assert.Same(t, body.Node, c.NodeAt(100, 70))
	assert.Nil(t, c.NodeAt(500, 500))
}
