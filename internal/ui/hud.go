//go:build ebiten

package ui

import (
	"image/color"

	"mad-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 10
	hudLineHeight = 16
)

var controlHints = []string{
	"Space  play/pause",
	"N      step once",
	"C      clear",
	"K      checkerboard",
	"R/S    random soup",
	"Arrows shift",
	"I      reimport",
	"Click  toggle cell",
	"1      frontier",
	"Q/Esc  quit",
}

// HUD renders the status panel to the right of the board view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string
	lines      []string
}

// NewHUD constructs a HUD panel of the given width.
func NewHUD(title string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	if title == "" {
		title = "Life"
	}
	return &HUD{width: width, title: title}
}

// Width reports the horizontal space the panel occupies.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update caches the lines of the latest snapshot.
func (h *HUD) Update(snapshot core.ParameterSnapshot) {
	if h == nil {
		return
	}
	h.lines = snapshot.Lines()
}

// Draw paints the HUD panel at offsetX, spanning height pixels.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	y := hudPadding + hudLineHeight
	text.Draw(h.panel, h.title, basicfont.Face7x13, hudPadding, y, color.RGBA{R: 240, G: 240, B: 240, A: 255})
	y += hudLineHeight + 4
	for _, line := range h.lines {
		text.Draw(h.panel, line, basicfont.Face7x13, hudPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += hudLineHeight
	}
	y += hudLineHeight
	for _, hint := range controlHints {
		if y > height-hudPadding {
			break
		}
		text.Draw(h.panel, hint, basicfont.Face7x13, hudPadding, y, color.RGBA{R: 130, G: 130, B: 145, A: 255})
		y += hudLineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
