//go:build ebiten

package ui

import (
	"image/color"

	"mad-life/internal/render"
	"mad-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type frontierProvider interface {
	Frontier() []core.Cell
}

// frontierTint is premultiplied so it blends over the board image.
var frontierTint = color.RGBA{R: 0, G: 56, B: 84, A: 96}

// Overlay draws the sparse board's frontier on top of the board image.
type Overlay struct {
	board        core.Board
	view         core.View
	scale        float64
	showFrontier bool
	painter      *render.GridPainter
	fills        []core.Fill
}

// NewOverlay constructs an overlay for b drawn into view at the given scale.
func NewOverlay(b core.Board, view core.View, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{board: b, view: view, scale: float64(scale)}
}

// Update toggles the frontier layer on key 1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showFrontier = !o.showFrontier
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showFrontier {
		return
	}
	provider, ok := o.board.(frontierProvider)
	if !ok {
		return
	}
	size := int(o.view.DisplaySize)
	if size <= 0 {
		return
	}
	if o.painter == nil {
		o.painter = render.NewGridPainter(size, size)
	}
	o.fills = o.fills[:0]
	for _, c := range provider.Frontier() {
		o.fills = append(o.fills, core.Fill{Rect: o.view.CellRect(c), Color: frontierTint})
	}
	o.painter.Blit(screen, o.fills, color.RGBA{}, 0, 0, o.scale)
}
