package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/OpticalFlyer/nodeutil/format"
	"github.com/OpticalFlyer/nodeutil/geom"
	"github.com/OpticalFlyer/nodeutil/render"
	"github.com/OpticalFlyer/nodeutil/scene"
)

// Controller manages all UI elements
type Controller struct {
	widgets  []Widget
	renderer *render.Renderer
}

// NewController creates a new UI controller
func NewController() *Controller {
	return &Controller{
		renderer: render.New(),
	}
}

// AddPanel adds a panel and lets it draw its body with the controller's
// renderer.
func (c *Controller) AddPanel(panel *Panel) {
	panel.renderer = c.renderer
	c.AddWidget(panel)
}

func (c *Controller) AddWidget(w Widget) {
	c.widgets = append(c.widgets, w)
}

// SetDebug toggles node outlines and names in every panel body.
func (c *Controller) SetDebug(v bool) {
	c.renderer.Debug = v
}

// Update updates all UI elements
func (c *Controller) Update() error {
	for _, w := range c.widgets {
		if err := w.Update(); err != nil {
			return err
		}
	}
	return nil
}

// Draw draws all UI elements
func (c *Controller) Draw(screen *ebiten.Image) {
	for _, w := range c.widgets {
		w.Draw(screen)
	}
}

// UpdateWindowSize updates the window size for all widgets
func (c *Controller) UpdateWindowSize(width, height int) {
	for _, w := range c.widgets {
		w.UpdateWindowSize(width, height)
	}
}

// ShowDebugInfo draws frame rates and the number of nodes in panel bodies.
func (c *Controller) ShowDebugInfo(screen *ebiten.Image) {
	nodes := 0
	for _, w := range c.widgets {
		if p, ok := w.(*Panel); ok && p.body != nil {
			nodes += count(p.body.Node)
		}
	}
	fps := ebiten.ActualFPS()
	tps := ebiten.ActualTPS()
	msg := fmt.Sprintf("FPS: %.2f TPS: %.2f Nodes: %s", fps, tps, format.Int(nodes))

	x, y := ebiten.CursorPosition()
	if n := c.NodeAt(float64(x), float64(y)); n != nil {
		msg += "\n" + render.Describe(n)
	}
	ebitenutil.DebugPrint(screen, msg)
}

// NodeAt returns the innermost visible node of a panel body under the
// screen position (x, y), or nil.
func (c *Controller) NodeAt(x, y float64) *scene.Node {
	for i := len(c.widgets) - 1; i >= 0; i-- {
		p, ok := c.widgets[i].(*Panel)
		if !ok || p.body == nil {
			continue
		}
		if n := hit(p.body.Node, toScene(x, y, p.windowHeight)); n != nil {
			return n
		}
	}
	return nil
}

// hit finds the last drawn node containing the world point pt.
func hit(n *scene.Node, pt geom.Point) *scene.Node {
	if !n.IsVisible() {
		return nil
	}
	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if found := hit(children[i], pt); found != nil {
			return found
		}
	}
	local := n.FromWorld(pt)
	size := n.ContentSize()
	if local.X >= 0 && local.X <= size.Width && local.Y >= 0 && local.Y <= size.Height {
		return n
	}
	return nil
}

// Snapshot renders n on its own, at its scaled size.
func (c *Controller) Snapshot(n *scene.Node) *ebiten.Image {
	return c.renderer.Snapshot(n)
}

func count(n *scene.Node) int {
	total := 1
	for _, c := range n.Children() {
		total += count(c)
	}
	return total
}

// IsInteractingWithUI returns true if any UI element is being interacted with
func (c *Controller) IsInteractingWithUI() bool {
	for _, w := range c.widgets {
		if w.Interacting() {
			return true
		}
	}
	return false
}
