// Package game hosts the views in a desktop window. ebiten's Update is the
// display driven tick: it handles input and then ticks the active view's
// frame driver; Draw uploads the view's raster to the screen.
package game

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/iburimskiy/piverse/internal/audio"
	"github.com/iburimskiy/piverse/internal/compose"
	"github.com/iburimskiy/piverse/internal/config"
	"github.com/iburimskiy/piverse/internal/digits"
	"github.com/iburimskiy/piverse/internal/frame"
	"github.com/iburimskiy/piverse/internal/render"
	"github.com/iburimskiy/piverse/internal/view"
)

const (
	screenWidth  = 800
	headerHeight = 40
	footerHeight = 40
	canvasHeight = 600
	screenHeight = headerHeight + canvasHeight + footerHeight

	waveSamples   = 512
	waveLeft      = 320
	waveAmplitude = 12

	progressLeft   = 12
	progressRight  = 12
	progressHeight = 6
)

type Game struct {
	cfg    *config.Config
	logger *zap.Logger
	opts   view.Options
	rng    *rand.Rand

	// active view
	view    view.View
	driver  *frame.Driver
	surface *render.Surface
	canvas  *ebiten.Image
	offsetX int

	player *audio.Player

	// input edge detection
	prevKey map[ebiten.Key]bool
	hover   bool

	lastErr error
}

// New creates the host and activates the configured first view.
func New(cfg *config.Config, seq digits.Sequence, logger *zap.Logger) (*Game, error) {
	tool, ok := compose.ParseKind(cfg.Art.Tool)
	if !ok {
		return nil, fmt.Errorf("unknown art tool %q", cfg.Art.Tool)
	}
	g := &Game{
		cfg:    cfg,
		logger: logger,
		opts: view.Options{
			Sequence:   seq,
			Pattern:    cfg.Pattern,
			ToolRadius: cfg.Art.ToolRadius,
		},
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		player:  audio.NewPlayer(logger),
		prevKey: map[ebiten.Key]bool{},
	}
	if err := g.activate(cfg.View); err != nil {
		return nil, err
	}
	if art, ok := g.view.(*view.Art); ok {
		art.SetTool(tool)
	}
	return g, nil
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, seq digits.Sequence, logger *zap.Logger) error {
	g, err := New(cfg, seq, logger)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(int(screenWidth*cfg.Window.Scale), int(screenHeight*cfg.Window.Scale))
	ebiten.SetWindowTitle(cfg.Window.Title + " - 1-4: views, E: export, P: tones, Esc/Q: quit")
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// activate tears the current view down and mounts a fresh one, so each view
// starts from its defaults.
func (g *Game) activate(name string) error {
	v, err := view.New(name, g.opts)
	if err != nil {
		return err
	}
	g.teardown()

	w, h := v.Size()
	var sink render.Sink
	surface, err := render.NewSurface(w, h)
	if err != nil {
		// no drawing context: the view runs but draws nothing
		g.logger.Warn("surface unavailable", zap.String("view", name), zap.Error(err))
	} else {
		sink = surface
	}

	driver := frame.New(v, sink, frame.WithLogger(g.logger.With(zap.String("view", name))))
	if err := driver.Start(context.Background(), nil); err != nil {
		return err
	}

	g.view, g.driver, g.surface = v, driver, surface
	g.canvas = ebiten.NewImage(w, h)
	g.offsetX = (screenWidth - w) / 2
	g.hover = false
	g.logger.Info("view activated", zap.String("view", name))
	return nil
}

func (g *Game) teardown() {
	if g.driver != nil {
		g.driver.Stop()
		g.driver = nil
	}
	if g.surface != nil {
		_ = g.surface.Close()
		g.surface = nil
	}
	if g.canvas != nil {
		g.canvas.Deallocate()
		g.canvas = nil
	}
}

// Close stops the active view and any playback.
func (g *Game) Close() {
	g.teardown()
	g.player.Stop()
}

func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	g.driver.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 17, G: 24, B: 39, A: 255})

	if g.surface != nil {
		g.canvas.WritePixels(g.surface.Image().Pix)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(g.offsetX), headerHeight)
		screen.DrawImage(g.canvas, op)
	}

	ebitenutil.DebugPrintAt(screen, g.statusLine(), 12, 6)
	ebitenutil.DebugPrintAt(screen, g.controlsLine(), 12, 22)
	g.drawTones(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (g *Game) statusLine() string {
	status := fmt.Sprintf("[%s]", g.view.Name())
	switch v := g.view.(type) {
	case *view.Pattern:
		p := v.Params
		status += fmt.Sprintf(" radius %.0fpx  detail %d  speed %.1fx  rotate %v  digits %v  lines %v",
			p.Radius, p.Segments, p.Speed, p.AutoRotate, p.ShowDigits, p.ShowLines)
	case *view.Art:
		status += " " + v.Mode().String()
		if v.Mode() == view.Custom {
			status += fmt.Sprintf("  tool %s  size %.0fpx  shapes %d", v.Tool(), v.ToolRadius(), v.Layer().Len())
		}
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) controlsLine() string {
	switch g.view.(type) {
	case *view.Pattern:
		return "Up/Down radius  Left/Right detail  [/] speed  R rotate  D digits  L lines"
	case *view.Art:
		return "M mode  T tool  Up/Down size  click to place  Backspace clear"
	default:
		return "E export PNG  V export SVG  P play digits  O open audio  click bar to seek"
	}
}

// drawTones draws the playback strip: elapsed time, the sounding digit, a
// progress bar that seeks on click and a waveform of the most recent samples.
func (g *Game) drawTones(screen *ebiten.Image) {
	st := g.player.Status(waveSamples)
	if st.Duration == 0 {
		return
	}
	top := float64(headerHeight + canvasHeight)
	label, col := footerStyle(st, g.opts.Sequence)
	ebitenutil.DebugPrintAt(screen, label, 12, int(top)+4)

	x0, x1 := float32(progressLeft), float32(screenWidth-progressRight)
	y := float32(top + footerHeight - progressHeight - 4)
	vector.DrawFilledRect(screen, x0, y, x1-x0, progressHeight, color.RGBA{R: 25, G: 30, B: 40, A: 200}, false)
	if p := st.Progress(); p > 0 {
		vector.DrawFilledRect(screen, x0, y, float32(p)*(x1-x0), progressHeight, col.Color(), false)
	}

	if len(st.Wave) < 2 || !st.Playing {
		return
	}
	mid := top + (footerHeight-progressHeight)/2
	wx0, wx1 := float64(waveLeft), float64(screenWidth-progressRight)
	step := (wx1 - wx0) / float64(len(st.Wave)-1)
	for i := 1; i < len(st.Wave); i++ {
		ya := mid - clamp(st.Wave[i-1], -1, 1)*waveAmplitude
		yb := mid - clamp(st.Wave[i], -1, 1)*waveAmplitude
		vector.StrokeLine(screen,
			float32(wx0+float64(i-1)*step), float32(ya),
			float32(wx0+float64(i)*step), float32(yb),
			1, col.Color(), false)
	}
}

// footerStyle picks the footer label and the strip color. The melody shows
// and colors the sounding digit; soundtracks have no digit and use white.
func footerStyle(st audio.Status, seq digits.Sequence) (string, gg.RGBA) {
	label := fmt.Sprintf("%s / %s  %s", formatDuration(st.Position), formatDuration(st.Duration), st.Track)
	col := render.White
	if st.Index >= 0 {
		label += " " + seq.Char(st.Index)
		if d, ok := seq.Digit(st.Index); ok {
			col = render.DigitColor(d)
		}
	}
	if st.Paused {
		label += " (paused)"
	}
	return label, col
}

// canvasPoint translates a window cursor position into canvas coordinates.
func (g *Game) canvasPoint(x, y int) render.Point {
	return render.Point{X: float64(x - g.offsetX), Y: float64(y - headerHeight)}
}

// progressAt maps a cursor position to a fraction of the footer progress
// bar, or false when the cursor is outside it.
func progressAt(x, y int) (float64, bool) {
	top := headerHeight + canvasHeight + footerHeight - progressHeight - 4
	if y < top || y > top+progressHeight || x < progressLeft || x > screenWidth-progressRight {
		return 0, false
	}
	return float64(x-progressLeft) / float64(screenWidth-progressRight-progressLeft), true
}
