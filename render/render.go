// Package render draws scene trees with ebiten.
//
// Scene coordinates grow upwards; the renderer flips them so that y = 0
// lies on the bottom edge of the target image.
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/nodeutil/geom"
	"github.com/OpticalFlyer/nodeutil/outline"
	"github.com/OpticalFlyer/nodeutil/paint"
	"github.com/OpticalFlyer/nodeutil/scene"
)

var (
	debugContainer = color.RGBA{G: 200, A: 255}
	debugSpacer    = color.RGBA{R: 255, G: 200, A: 255}
	debugNode      = color.RGBA{R: 255, A: 255}
)

// Filled is implemented by node hosts drawn as a solid box: colour nodes
// and anything embedding one.
type Filled interface {
	Fill() paint.RGBA
}

// Labeled is implemented by node hosts that carry a caption, such as
// buttons. The caption is printed in the node's top-left corner.
type Labeled interface {
	Label() string
}

// Renderer draws colour nodes and outlines. Plain nodes, spacers and
// containers only show up in debug mode.
type Renderer struct {
	Debug bool

	// solid is a white pixel used as the texture for outline meshes.
	solid *ebiten.Image
}

func New() *Renderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Renderer{solid: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

// projection maps a point in a node's local space onto the target image.
type projection func(n *scene.Node, p geom.Point) (float32, float32)

// Draw draws root and its visible descendants onto dst, positioned in
// world space.
func (r *Renderer) Draw(dst *ebiten.Image, root *scene.Node) {
	h := float64(dst.Bounds().Dy())
	r.walk(dst, root, func(n *scene.Node, p geom.Point) (float32, float32) {
		w := n.ToWorld(p)
		return float32(w.X), float32(h - w.Y)
	})
}

// Snapshot renders n into a new image the size of its scaled content,
// regardless of where n sits in its tree.
func (r *Renderer) Snapshot(n *scene.Node) *ebiten.Image {
	size := n.ScaledContentSize()
	w, h := int(math.Ceil(size.Width)), int(math.Ceil(size.Height))
	img := ebiten.NewImage(max(w, 1), max(h, 1))

	sx, sy := math.Abs(n.ScaleX()), math.Abs(n.ScaleY())
	r.walk(img, n, func(m *scene.Node, p geom.Point) (float32, float32) {
		local := scene.TransformPoint(p, m, n)
		return float32(local.X * sx), float32(float64(h) - local.Y*sy)
	})
	return img
}

func (r *Renderer) walk(dst *ebiten.Image, n *scene.Node, project projection) {
	if !n.IsVisible() {
		return
	}

	switch host := n.Host().(type) {
	case *outline.Node:
		r.drawMesh(dst, host, project)
	case Filled:
		x, y, w, h := bounds(n, project)
		vector.DrawFilledRect(dst, x, y, w, h, host.Fill().NRGBA(), true)
	}
	if l, ok := n.Host().(Labeled); ok && l.Label() != "" {
		x, y, _, _ := bounds(n, project)
		ebitenutil.DebugPrintAt(dst, l.Label(), int(x)+4, int(y)+2)
	}

	if r.Debug {
		r.drawDebug(dst, n, project)
	}

	for _, c := range n.Children() {
		r.walk(dst, c, project)
	}
}

// bounds returns the screen rect covered by n's content box.
func bounds(n *scene.Node, project projection) (x, y, w, h float32) {
	size := n.ContentSize()
	x0, y0 := project(n, geom.Point{})
	x1, y1 := project(n, geom.Point{X: size.Width, Y: size.Height})
	return min(x0, x1), min(y0, y1), abs32(x1 - x0), abs32(y1 - y0)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func (r *Renderer) drawMesh(dst *ebiten.Image, n *outline.Node, project projection) {
	points, indices := n.Mesh()
	if len(points) == 0 || len(points) > math.MaxUint16 {
		return
	}

	fill := n.Fill()
	cr, cg, cb, ca := channel(fill.R), channel(fill.G), channel(fill.B), channel(fill.A)

	vs := make([]ebiten.Vertex, len(points))
	for i, p := range points {
		x, y := project(n.SceneNode(), p)
		vs[i] = ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	is := make([]uint16, len(indices))
	for i, idx := range indices {
		is[i] = uint16(idx)
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, r.solid, op)
}

func channel(v uint8) float32 {
	return float32(v) / 0xff
}

func (r *Renderer) drawDebug(dst *ebiten.Image, n *scene.Node, project projection) {
	x, y, w, h := bounds(n, project)

	clr := debugNode
	switch n.Kind() {
	case scene.KindContainer:
		clr = debugContainer
	case scene.KindSpacer:
		clr = debugSpacer
	}
	vector.StrokeRect(dst, x, y, w, h, 1, clr, false)

	if n.Name != "" {
		ebitenutil.DebugPrintAt(dst, n.Name, int(x)+2, int(y)+2)
	}
}

// Describe summarises n for overlays.
func Describe(n *scene.Node) string {
	size := n.ContentSize()
	fill := ""
	if c, ok := n.Host().(paint.Colorable); ok {
		fill = " #" + c.Color().RGBA().Hex()[:6]
	}
	return fmt.Sprintf("%s %q %.0fx%.0f%s", n.Kind(), n.Name, size.Width, size.Height, fill)
}
