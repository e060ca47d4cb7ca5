package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/nodeutil/internal/cli"
	"github.com/OpticalFlyer/nodeutil/layout"
	"github.com/OpticalFlyer/nodeutil/paint"
	"github.com/OpticalFlyer/nodeutil/random"
	"github.com/OpticalFlyer/nodeutil/ui"
)

const (
	scaleStep = 1.1
	minScale  = 0.25
	maxScale  = 4.0
)

var backdrop = paint.MustParseHex("1e1e24ff")

// Viewer implements ebiten.Game interface.
type Viewer struct {
	ctx       context.Context
	logger    *log.Logger
	debugMode bool
	ui        *ui.Controller
	panel     *ui.Panel

	// Touch state for multi-touch interactions
	lastTouchX map[ebiten.TouchID]float64
	lastTouchY map[ebiten.TouchID]float64
}

func (v *Viewer) Update() error {
	if err := v.ctx.Err(); err != nil {
		return err
	}

	// Update UI first to handle any panel interactions
	if err := v.ui.Update(); err != nil {
		return err
	}

	if v.ui.IsInteractingWithUI() {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		v.debugMode = !v.debugMode
		v.ui.SetDebug(v.debugMode)
		v.logger.Debug("debug overlay", "enabled", v.debugMode)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		img := v.ui.Snapshot(v.panel.Body().Node)
		path := fmt.Sprintf("snapshot-%s.png", time.Now().Format("20060102-150405"))
		if err := saveSnapshot(path, img); err != nil {
			v.logger.Error("saving snapshot", "err", err)
		} else {
			v.logger.Info("saved snapshot", "file", path)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || // = key
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) { // numpad +
		v.scaleBody(scaleStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || // - key
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) { // numpad -
		v.scaleBody(1 / scaleStep)
	}

	v.handleTouchEvents()
	return nil
}

// scaleBody zooms the panel body. The layout works in scaled sizes, so
// the body is laid out again to fill the panel.
func (v *Viewer) scaleBody(factor float64) {
	body := v.panel.Body()
	s := min(maxScale, max(minScale, body.ScaleX()*factor))
	body.SetScale(s)
	v.panel.Relayout()
}

// saveSnapshot writes img to path as a PNG.
func saveSnapshot(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return f.Close()
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop.NRGBA())
	v.ui.Draw(screen)

	if v.debugMode {
		v.ui.ShowDebugInfo(screen)
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.ui.UpdateWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func runViewer(ctx context.Context, root *layout.Container, logger *log.Logger) error {
	if root == nil {
		root = demoScene(random.Default, logger)
	}

	uiController := ui.NewController()
	panel := ui.NewPanel(10, 10, 420, 320, "Layout", root)
	uiController.AddPanel(panel)

	app := &Viewer{
		ctx:    ctx,
		logger: logger,
		ui:     uiController,
		panel:  panel,
	}

	ebiten.SetWindowSize(800, 600)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("nodeutil")
	ebiten.SetVsyncEnabled(true)

	logger.Debug("starting viewer")
	return ebiten.RunGame(app)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx, runViewer, os.Args[1:]); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
