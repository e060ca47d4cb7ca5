package main

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/OpticalFlyer/nodeutil/geom"
	"github.com/OpticalFlyer/nodeutil/layout"
	"github.com/OpticalFlyer/nodeutil/outline"
	"github.com/OpticalFlyer/nodeutil/paint"
	"github.com/OpticalFlyer/nodeutil/random"
	"github.com/OpticalFlyer/nodeutil/scene"
	"github.com/OpticalFlyer/nodeutil/ui"
)

var palette = []random.Choice[paint.RGBA]{
	{Value: paint.MustParseHex("e4572eff"), Weight: 3},
	{Value: paint.MustParseHex("29335cff"), Weight: 2},
	{Value: paint.MustParseHex("f3a712ff"), Weight: 2},
	{Value: paint.MustParseHex("a8c686ff"), Weight: 1},
	{Value: paint.MustParseHex("669bbcff"), Weight: 1},
}

// demoScene builds the tree shown when no layout file is given: a header
// row, a strip of randomly sized swatches pushed apart by spacers, a star
// drawn over an overlay and a row of buttons.
func demoScene(r *random.Rand, logger *log.Logger) *layout.Container {
	body := layout.NewVertical().
		SetPadding(geom.Size{Height: 6}).
		SetAlignment(scene.AlignTopCenter).
		SetWidthSizingPolicy(layout.SizingEqualize)
	body.Name = "body"

	header := layout.NewHorizontal().SetMargin(geom.Size{Width: 4, Height: 4})
	header.Name = "header"
	header.SetBackground(scene.NewColorNode(paint.MustParseHex("3a3a46ff"), geom.Size{}))
	header.AddChild(swatch("logo", paint.MustParseHex("e4572eff"), 16, 16), layout.NewSpacer())

	strip := layout.NewHorizontal().SetPadding(geom.Size{Width: 4}).SetAlignment(scene.AlignBottomLeft)
	strip.Name = "swatches"
	for i := 0; i < 5; i++ {
		fill, _ := random.Weighted(r, palette)
		strip.AddChild(swatch("", fill, r.Range(12, 28), r.Range(12, 40)))
		if i < 4 {
			strip.AddChild(layout.NewSpacer().SetWeight(float64(1 + r.Uniform(3))))
		}
	}

	gradient := layout.NewHorizontal()
	gradient.Name = "gradient"
	from, to := paint.MustParseHex("29335cff").RGB(), paint.MustParseHex("f3a712ff").RGB()
	for i := 0; i <= 8; i++ {
		gradient.AddChild(swatch("", paint.LerpRGB(from, to, float64(i)/8).RGBA(), 12, 8), layout.NewSpacer())
	}

	stage := layout.NewOverlay().SetMinSize(geom.Size{Width: 120, Height: 90})
	stage.Name = "stage"
	stage.SetBackground(scene.NewColorNode(paint.MustParseHex("2c2c35ff"), geom.Size{}))
	addOutline(stage, "star", starShape(5, 1, 0.45), paint.MustParseHex("f3a712ff"), geom.Size{Width: 80, Height: 80}, logger)

	buttons := layout.NewHorizontal().SetPadding(geom.Size{Width: 4}).SetMargin(geom.Size{Width: 2, Height: 2})
	buttons.Name = "buttons"
	buttons.AddChild(
		layout.NewSpacer(),
		ui.NewButton("Shuffle", geom.Size{Width: 70, Height: 22}, func() {
			strip.SetAlignment(nextAlignment(strip.Alignment()))
			body.DoLayout(body.ContentSize())
		}),
		ui.NewButton("Hide", geom.Size{Width: 50, Height: 22}, func() {
			gradient.SetVisible(!gradient.IsVisible())
			body.DoLayout(body.ContentSize())
		}),
	)

	body.AddChild(header, strip, gradient, stage, buttons)
	body.Layout()
	return body
}

// addOutline adds a named outline node to c. Shapes that cannot be
// triangulated are logged and left out.
func addOutline(c *layout.Container, name string, shape outline.Polygon, fill paint.RGBA, size geom.Size, logger *log.Logger) {
	n, err := outline.NewNode(shape, fill, size)
	if err != nil {
		logger.Warn("skipping outline", "name", name, "err", err)
		return
	}
	n.Name = name
	c.AddChild(n)
}

func swatch(name string, fill paint.RGBA, w, h float64) *scene.ColorNode {
	n := scene.NewColorNode(fill, geom.Size{Width: w, Height: h})
	n.Name = name
	return n
}

// nextAlignment cycles the vertical alignment of a horizontal row.
func nextAlignment(a scene.Alignment) scene.Alignment {
	switch {
	case a.Has(scene.AlignBottom):
		return scene.AlignCenterLeft
	case a.Has(scene.AlignCenterY):
		return scene.AlignTopLeft
	default:
		return scene.AlignBottomLeft
	}
}

// starShape returns a star with the given number of points whose tips lie
// on a circle of radius outer.
func starShape(points int, outer, inner float64) outline.Polygon {
	ring := make([]geom.Point, 0, 2*points+1)
	for i := 0; i < 2*points; i++ {
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		angle := geom.NormalizeAngle(math.Pi/2 + float64(i)*math.Pi/float64(points))
		ring = append(ring, geom.Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	ring = append(ring, ring[0])
	return outline.Polygon{Rings: [][]geom.Point{ring}}
}
