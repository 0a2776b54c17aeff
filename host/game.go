package host

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/vista"
)

var (
	clearColor    = color.RGBA{0x1a, 0x1a, 0x22, 0xff}
	gridColor     = color.RGBA{0x33, 0x33, 0x44, 0xff}
	regionColor   = color.RGBA{0x4f, 0xc3, 0xf7, 0xc0}
	selectedColor = color.RGBA{0xff, 0xb3, 0x00, 0xff}
	markerColor   = color.RGBA{0xe0, 0xe0, 0xe0, 0xc0}
	currentColor  = color.RGBA{0xff, 0x57, 0x22, 0xff}
	cardColor     = color.RGBA{0x10, 0x10, 0x18, 0xe8}
)

const gridStep = 200

// Game adapts an Engine to ebiten.Game.
type Game struct {
	engine *vista.Engine
	cfg    RunConfig
	log    *slog.Logger

	background *ebiten.Image
	bgPath     string

	card     *cardAnim
	cardImg  *ebiten.Image
	fps      *fpsOverlay
	shots    []string
	lastW    int
	lastH    int
	lastTick time.Time
	now      func() time.Time
}

// NewGame wraps e. The engine's viewport should already hold the initial
// window size; later sizes arrive through Layout.
func NewGame(e *vista.Engine, cfg RunConfig) *Game {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{
		engine: e,
		cfg:    cfg,
		log:    logger,
		card:   newCardAnim(),
		now:    time.Now,
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	d := e.Viewport().Dimensions()
	g.lastW, g.lastH = int(d.Width), int(d.Height)

	e.On(vista.EventOpen, func(vista.Event) { g.card.start() })
	e.On(vista.EventReload, func(vista.Event) { g.loadBackground() })
	g.loadBackground()
	return g
}

func (g *Game) loadBackground() {
	path := resolveAsset(g.cfg.AssetDir, g.engine.Story().Background)
	if path == g.bgPath && g.background != nil {
		return
	}
	g.bgPath = path
	g.background = nil
	if path == "" {
		return
	}
	img, err := loadBackground(path)
	if err != nil {
		g.log.Warn("Background unavailable, drawing placeholder", "path", path, "error", err)
		return
	}
	g.background = img
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	now := g.now()
	dt := 1.0 / 60
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick).Seconds()
	}
	g.lastTick = now

	g.pollReload()
	g.engine.Update(now)
	g.card.update(float32(dt))
	if g.fps != nil {
		g.fps.update(dt)
	}

	if err := g.handleKeys(); err != nil {
		return err
	}
	g.handlePointer()
	return nil
}

func (g *Game) pollReload() {
	if g.cfg.Reload == nil {
		return
	}
	st, err := g.cfg.Reload()
	if err != nil {
		g.log.Warn("Keeping previous story", "error", err)
		return
	}
	if st == nil {
		return
	}
	if err := g.engine.Reload(st); err != nil {
		g.log.Warn("Reload rejected", "error", err)
	}
}

func (g *Game) handleKeys() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.engine.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.engine.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.engine.Close()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if !g.engine.Activate() {
			g.engine.OpenCurrent()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		if sc := g.engine.Story().Scenes; len(sc) > 0 {
			g.engine.JumpToScene(sc[0].Key)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.cfg.ShowRegions = !g.cfg.ShowRegions
	case inpututil.IsKeyJustPressed(ebiten.KeyF12):
		g.requestScreenshot(g.engine.Sequencer().CurrentScene().Key + "-" + g.engine.Sequencer().Current().Key)
	}
	return nil
}

func (g *Game) handlePointer() {
	x, y := ebiten.CursorPosition()
	p := vista.Vec2{X: float64(x), Y: float64(y)}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.engine.PointerDown(p)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.engine.PointerUp(p)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.engine.PointerMove(p)
	}
}

// Layout implements ebiten.Game. Size changes are forwarded to the engine
// as raw resize signals; the engine debounces them.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.lastW || outsideHeight != g.lastH {
		g.lastW, g.lastH = outsideWidth, outsideHeight
		g.engine.Resize(float64(outsideWidth), float64(outsideHeight), g.now())
	}
	return outsideWidth, outsideHeight
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	snap := g.engine.Snapshot()

	g.drawContent(screen, snap)
	if g.cfg.ShowRegions {
		g.drawRegions(screen, snap)
	}
	g.drawMarkers(screen, snap)
	if snap.SelectionOpen {
		g.drawCard(screen, snap)
	}
	ebitenutil.DebugPrintAt(screen, statusLine(snap, g.engine.Story()), 4, screen.Bounds().Dy()-glyphH-2)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

func (g *Game) drawContent(screen *ebiten.Image, snap vista.Snapshot) {
	content := g.engine.Viewport().Content()
	if g.background != nil {
		b := g.background.Bounds()
		sx, sy := backgroundScale(b.Dx(), b.Dy(), content, snap.Zoom)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(snap.Offset.X, snap.Offset.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(g.background, op)
		return
	}

	// Placeholder grid so panning stays visible without an image.
	z := snap.Zoom
	w, h := content.Width*z, content.Height*z
	ox, oy := snap.Offset.X, snap.Offset.Y
	for x := 0.0; x <= content.Width; x += gridStep {
		sx := float32(ox + x*z)
		vector.StrokeLine(screen, sx, float32(oy), sx, float32(oy+h), 1, gridColor, false)
	}
	for y := 0.0; y <= content.Height; y += gridStep {
		sy := float32(oy + y*z)
		vector.StrokeLine(screen, float32(ox), sy, float32(ox+w), sy, 1, gridColor, false)
	}
}

func (g *Game) drawRegions(screen *ebiten.Image, snap vista.Snapshot) {
	scenes := g.engine.Story().Scenes
	if snap.State.Scene >= len(scenes) {
		return
	}
	for _, r := range scenes[snap.State.Scene].Regions {
		clr := regionColor
		if snap.SelectionOpen && snap.Selection.Kind == vista.SelectionRegion && snap.Selection.Region.ID == r.ID {
			clr = selectedColor
		}
		tl := g.engine.ContentToScreen(vista.Vec2{X: r.X, Y: r.Y})
		vector.StrokeRect(screen, float32(tl.X), float32(tl.Y),
			float32(r.Width*snap.Zoom), float32(r.Height*snap.Zoom), 2, clr, false)
		if r.Title != "" {
			ebitenutil.DebugPrintAt(screen, r.Title, int(tl.X)+4, int(tl.Y)+2)
		}
	}
}

func (g *Game) drawMarkers(screen *ebiten.Image, snap vista.Snapshot) {
	scenes := g.engine.Story().Scenes
	if snap.State.Scene >= len(scenes) {
		return
	}
	for i, a := range scenes[snap.State.Scene].Annotations {
		p := g.engine.ContentToScreen(tooltipPoint(a.Tooltip))
		clr := markerColor
		if i == snap.State.Annotation {
			clr = currentColor
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 6, clr, true)
	}
}

func (g *Game) drawCard(screen *ebiten.Image, snap vista.Snapshot) {
	c, ok := contentFor(g.engine.Story(), snap.Selection)
	if !ok {
		return
	}
	lines := cardLines(c)
	h := cardHeight(len(lines))
	if g.cardImg == nil || g.cardImg.Bounds().Dy() != h {
		if g.cardImg != nil {
			g.cardImg.Deallocate()
		}
		g.cardImg = ebiten.NewImage(cardWidth, h)
	}
	g.cardImg.Clear()
	vector.DrawFilledRect(g.cardImg, 0, 0, cardWidth, float32(h), cardColor, false)
	vector.StrokeRect(g.cardImg, 1, 1, cardWidth-2, float32(h-2), 1, currentColor, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(g.cardImg, line, cardPadding, cardPadding+i*glyphH)
	}

	pos := placeCard(g.engine.ContentToScreen(c.Anchor), cardWidth, float64(h), snap.Dimensions)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X+float64(g.card.dx), pos.Y)
	op.ColorScale.ScaleAlpha(g.card.alpha)
	screen.DrawImage(g.cardImg, op)
}
