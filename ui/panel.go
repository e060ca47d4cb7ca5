package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/nodeutil/geom"
	"github.com/OpticalFlyer/nodeutil/layout"
	"github.com/OpticalFlyer/nodeutil/paint"
	"github.com/OpticalFlyer/nodeutil/render"
	"github.com/OpticalFlyer/nodeutil/scene"
)

const (
	titleBarHeight = 20.0
	resizeArea     = 5.0
	bodyInset      = 4.0
	minPanelWidth  = 100.0
	minPanelHeight = 50.0
	panelAlpha     = 200
)

var (
	panelColor = paint.RGBA{R: 100, G: 100, B: 100, A: panelAlpha}
	titleColor = paint.RGBA{R: 60, G: 60, B: 60, A: panelAlpha}
)

type ResizeState int

const (
	resizeNone ResizeState = iota
	resizeLeft
	resizeRight
	resizeTop
	resizeBottom
	resizeTopLeft
	resizeTopRight
	resizeBottomLeft
	resizeBottomRight
)

var _ Widget = (*Panel)(nil)

// Panel is a draggable, resizable window whose body is a layout
// container. The body is laid out again whenever the panel moves or
// changes size, with the panel's inner area as its minimum size.
type Panel struct {
	X, Y          float64
	Width, Height float64
	Title         string

	body     *layout.Container
	renderer *render.Renderer

	// Interaction state
	isDragging                bool
	isResizing                bool
	dragStartX                float64
	dragStartY                float64
	resizeState               ResizeState
	startX                    float64
	startY                    float64
	startWidth                float64
	startHeight               float64
	mouseButtonPreviouslyDown bool

	// Window dimensions
	windowWidth  int
	windowHeight int
}

func NewPanel(x, y, width, height float64, title string, body *layout.Container) *Panel {
	p := &Panel{
		X:            x,
		Y:            y,
		Width:        width,
		Height:       height,
		Title:        title,
		body:         body,
		windowWidth:  800, // Default window size
		windowHeight: 600, // Default window size
	}
	p.Relayout()
	return p
}

func (p *Panel) Body() *layout.Container { return p.body }

func (p *Panel) Bounds() geom.Rect {
	return geom.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func (p *Panel) Interacting() bool {
	return p.isDragging || p.isResizing
}

func (p *Panel) UpdateWindowSize(width, height int) {
	p.windowWidth = width
	p.windowHeight = height
	p.Relayout()
}

// innerSize is the area below the title bar available to the body.
func (p *Panel) innerSize() geom.Size {
	return geom.Size{
		Width:  max(0, p.Width-2*bodyInset),
		Height: max(0, p.Height-titleBarHeight-2*bodyInset),
	}
}

// Relayout lays the body out again, for example after its scale changed.
func (p *Panel) Relayout() {
	if p.body == nil {
		return
	}

	// the body's origin is the bottom-left corner of the inner area
	p.body.SetAnchorPoint(geom.Point{})
	p.body.SetPosition(toScene(p.X+bodyInset, p.Y+p.Height-bodyInset, p.windowHeight))

	inner := p.innerSize()
	if sx, sy := p.body.ScaleX(), p.body.ScaleY(); sx != 0 && sy != 0 {
		inner = geom.Size{Width: inner.Width / abs(sx), Height: inner.Height / abs(sy)}
	}
	p.body.DoLayout(inner)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (p *Panel) getResizeArea(x, y float64) ResizeState {
	left := x >= p.X-resizeArea && x <= p.X+resizeArea
	right := x >= p.X+p.Width-resizeArea && x <= p.X+p.Width+resizeArea
	top := y >= p.Y-resizeArea && y <= p.Y+resizeArea
	bottom := y >= p.Y+p.Height-resizeArea && y <= p.Y+p.Height+resizeArea

	switch {
	case left && top:
		return resizeTopLeft
	case right && top:
		return resizeTopRight
	case left && bottom:
		return resizeBottomLeft
	case right && bottom:
		return resizeBottomRight
	case left:
		return resizeLeft
	case right:
		return resizeRight
	case top:
		return resizeTop
	case bottom:
		return resizeBottom
	}
	return resizeNone
}

func (p *Panel) updateCursor(x, y float64) {
	switch p.getResizeArea(x, y) {
	case resizeLeft, resizeRight:
		ebiten.SetCursorShape(ebiten.CursorShapeEWResize)
	case resizeTop, resizeBottom:
		ebiten.SetCursorShape(ebiten.CursorShapeNSResize)
	case resizeTopLeft, resizeBottomRight:
		ebiten.SetCursorShape(ebiten.CursorShapeNWSEResize)
	case resizeTopRight, resizeBottomLeft:
		ebiten.SetCursorShape(ebiten.CursorShapeNESWResize)
	default:
		if p.isInTitleBar(x, y) {
			ebiten.SetCursorShape(ebiten.CursorShapeMove)
		} else {
			ebiten.SetCursorShape(ebiten.CursorShapeDefault)
		}
	}
}

func (p *Panel) Update() error {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)

	p.updateCursor(fx, fy)
	isMousePressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if isMousePressed && !p.mouseButtonPreviouslyDown {
		p.mouseButtonPreviouslyDown = true
		p.startInteraction(fx, fy)
	}

	switch {
	case p.isDragging && isMousePressed:
		p.X = fx - p.dragStartX
		p.Y = fy - p.dragStartY
		p.Relayout()
	case p.isResizing && isMousePressed:
		p.resize(fx-p.dragStartX, fy-p.dragStartY)
		p.Relayout()
	case !isMousePressed:
		p.isDragging = false
		p.isResizing = false
		p.mouseButtonPreviouslyDown = false
	}

	if !p.Interacting() {
		p.handleButtons(fx, fy, isMousePressed)
	}
	return nil
}

func (p *Panel) startInteraction(x, y float64) {
	if p.isInTitleBar(x, y) {
		p.isDragging = true
		p.dragStartX = x - p.X
		p.dragStartY = y - p.Y
		return
	}

	if state := p.getResizeArea(x, y); state != resizeNone {
		p.isResizing = true
		p.resizeState = state
		p.dragStartX = x
		p.dragStartY = y
		p.startX = p.X
		p.startY = p.Y
		p.startWidth = p.Width
		p.startHeight = p.Height
	}
}

// resize applies a pointer delta to the edges being dragged. Edges
// opposite the dragged ones stay put.
func (p *Panel) resize(deltaX, deltaY float64) {
	s := p.resizeState
	if s == resizeLeft || s == resizeTopLeft || s == resizeBottomLeft {
		p.Width = max(minPanelWidth, p.startWidth-deltaX)
		p.X = p.startX + p.startWidth - p.Width
	}
	if s == resizeRight || s == resizeTopRight || s == resizeBottomRight {
		p.Width = max(minPanelWidth, p.startWidth+deltaX)
	}
	if s == resizeTop || s == resizeTopLeft || s == resizeTopRight {
		p.Height = max(minPanelHeight, p.startHeight-deltaY)
		p.Y = p.startY + p.startHeight - p.Height
	}
	if s == resizeBottom || s == resizeBottomLeft || s == resizeBottomRight {
		p.Height = max(minPanelHeight, p.startHeight+deltaY)
	}
}

func (p *Panel) handleButtons(x, y float64, pressed bool) {
	if p.body == nil {
		return
	}
	pt := toScene(x, y, p.windowHeight)
	eachButton(p.body.Node, func(b *Button) {
		b.HandleInput(pt, pressed)
	})
}

func eachButton(n *scene.Node, fn func(*Button)) {
	if !n.IsVisible() {
		return
	}
	if b, ok := n.Host().(*Button); ok {
		fn(b)
	}
	for _, c := range n.Children() {
		eachButton(c, fn)
	}
}

func (p *Panel) Draw(screen *ebiten.Image) {
	// Draw panel background
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), panelColor.NRGBA(), true)

	// Draw title bar
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(titleBarHeight), titleColor.NRGBA(), true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X)+4, int(p.Y)+2)

	if p.body != nil && p.renderer != nil {
		p.renderer.Draw(screen, p.body.Node)
	}
}

func (p *Panel) isInTitleBar(x, y float64) bool {
	// Don't capture title bar events if in resize area
	if p.getResizeArea(x, y) != resizeNone {
		return false
	}
	return x >= p.X && x <= p.X+p.Width &&
		y >= p.Y && y <= p.Y+titleBarHeight
}
