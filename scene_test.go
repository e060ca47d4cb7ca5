package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/nodeutil/geom"
	"github.com/OpticalFlyer/nodeutil/layout"
	"github.com/OpticalFlyer/nodeutil/outline"
	"github.com/OpticalFlyer/nodeutil/paint"
	"github.com/OpticalFlyer/nodeutil/random"
)

func TestAddOutline(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	c := layout.NewOverlay()

	addOutline(c, "star", starShape(5, 1, 0.45), paint.White.RGBA(), geom.Size{Width: 10, Height: 10}, logger)
	require.Len(t, c.Children(), 1)
	assert.Equal(t, "star", c.ChildAt(0).Name)
	assert.Empty(t, buf.String())

	line := outline.Polygon{Rings: [][]geom.Point{{{X: 0, Y: 0}, {X: 1, Y: 1}}}}
	addOutline(c, "line", line, paint.White.RGBA(), geom.Size{Width: 10, Height: 10}, logger)
	assert.Len(t, c.Children(), 1)
	assert.Contains(t, buf.String(), "skipping outline")
	assert.Contains(t, buf.String(), "line")
}

func TestDemoScene(t *testing.T) {
	var buf bytes.Buffer
	body := demoScene(random.New(1), log.New(&buf))

	assert.NotNil(t, body.Find("star"))
	assert.NotNil(t, body.Find("swatches"))
	assert.Empty(t, buf.String())
}

func TestSaveSnapshot(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.NRGBA{R: 0xff, A: 0xff})
	path := filepath.Join(t.TempDir(), "snap.png")

	require.NoError(t, saveSnapshot(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	got, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), got.Bounds())
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, color.NRGBAModel.Convert(got.At(1, 1)))

	assert.Error(t, saveSnapshot(filepath.Join(t.TempDir(), "missing", "snap.png"), img))
}
