//go:build ebiten

package app

import (
	"context"
	"image/color"
	"time"

	"mad-life/internal/render"
	"mad-life/internal/ui"
	"mad-life/pkg/core"
	"mad-life/pkg/pattern"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 200

var background = color.RGBA{A: 255}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	cfg     *Config
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	display int
	scale   int
	seed    int64
}

// New constructs a Game around s using the display settings in cfg.
func New(s *Session, cfg *Config) *Game {
	scale := max(cfg.Scale, 1)
	display := int(s.View().DisplaySize)
	return &Game{
		session: s,
		cfg:     cfg,
		painter: render.NewGridPainter(display, display),
		hud:     ui.NewHUD(s.Board().Name()+" life", hudWidth),
		overlay: ui.NewOverlay(s.Board(), s.View(), scale),
		display: display,
		scale:   scale,
		seed:    cfg.Seed,
	}
}

// Update handles per-frame input and advances the board.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		g.session.Checkerboard()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Randomize(g.seed, g.cfg.Density)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = time.Now().UnixNano()
		g.session.Randomize(g.seed, g.cfg.Density)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) && g.cfg.Pattern != "" {
		g.reimport()
	}
	for key, dir := range map[ebiten.Key]core.Direction{
		ebiten.KeyArrowUp:    core.Up,
		ebiten.KeyArrowDown:  core.Down,
		ebiten.KeyArrowLeft:  core.Left,
		ebiten.KeyArrowRight: core.Right,
	} {
		if inpututil.IsKeyJustPressed(key) {
			g.session.Shift(dir)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		scale := float32(g.scale)
		g.session.Click(float32(x)/scale, float32(y)/scale)
	}

	g.overlay.Update()
	g.session.Update()
	g.hud.Update(g.session.Snapshot())
	return nil
}

func (g *Game) reimport() {
	format, err := g.cfg.PatternFormat()
	if err != nil {
		g.session.Logger().Printf("reimport: %v", err)
		return
	}
	// failures are logged by the session and leave the board as it was
	_ = g.session.Import(context.Background(), format, pattern.FileSource(g.cfg.Pattern))
}

// Draw renders the board, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Render(), background, 0, 0, float64(g.scale))
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.display*g.scale, g.display*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.display * g.scale
	return side + g.hud.Width(), side
}

// WindowSize reports the window dimensions matching Layout.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}
