package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OpticalFlyer/nodeutil/geom"
	"github.com/OpticalFlyer/nodeutil/paint"
	"github.com/OpticalFlyer/nodeutil/scene"
)

func TestDescribe(t *testing.T) {
	n := scene.NewColorNode(paint.MustParseHex("ff8800ff"), geom.Size{Width: 40, Height: 30})
	n.Name = "swatch"
	assert.Equal(t, `node "swatch" 40x30 #ff8800`, Describe(n.Node))

	plain := scene.NewSized(geom.Size{Width: 2, Height: 3})
	assert.Equal(t, `node "" 2x3`, Describe(plain))
}
