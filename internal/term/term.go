// Package term runs a life session inside a terminal. Each board pixel is
// drawn as two terminal columns so cells come out roughly square.
package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"mad-life/internal/app"
	"mad-life/internal/render"
	"mad-life/pkg/core"
	"mad-life/pkg/pattern"

	"github.com/gdamore/tcell/v2"
)

const frameRate = 60

var (
	deadStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(0, 0, 0))
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
)

// Frontend drives a Session from a tcell screen. The session is only touched
// from the goroutine running Run.
type Frontend struct {
	screen  tcell.Screen
	session *app.Session
	cfg     *app.Config
	seed    int64

	side    int
	buf     []byte
	buttons tcell.ButtonMask
}

// New wires s to an initialised screen.
func New(screen tcell.Screen, s *app.Session, cfg *app.Config) *Frontend {
	f := &Frontend{screen: screen, session: s, cfg: cfg, seed: cfg.Seed}
	screen.EnableMouse()
	f.resize()
	return f
}

// Run processes input and advances the session until the user quits or ctx
// is done.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go f.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if f.Handle(ev) {
				return nil
			}
			f.Draw()
		case <-ticker.C:
			if f.session.Update() {
				f.Draw()
			}
		}
	}
}

// Handle applies one event and reports whether the user asked to quit.
func (f *Frontend) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
		f.resize()
	case *tcell.EventKey:
		return f.key(ev)
	case *tcell.EventMouse:
		pressed := ev.Buttons() & tcell.Button1
		if pressed != 0 && f.buttons&tcell.Button1 == 0 {
			x, y := ev.Position()
			f.session.Click((float32(x)+0.5)/2, float32(y)+0.5)
		}
		f.buttons = ev.Buttons()
	}
	return false
}

func (f *Frontend) key(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		f.session.Shift(core.Up)
	case tcell.KeyDown:
		f.session.Shift(core.Down)
	case tcell.KeyLeft:
		f.session.Shift(core.Left)
	case tcell.KeyRight:
		f.session.Shift(core.Right)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			f.session.TogglePlay()
		case 'n':
			f.session.StepOnce()
		case 'c':
			f.session.Clear()
		case 'k':
			f.session.Checkerboard()
		case 'r':
			f.session.Randomize(f.seed, f.cfg.Density)
		case 's':
			f.seed = time.Now().UnixNano()
			f.session.Randomize(f.seed, f.cfg.Density)
		case 'i':
			f.reimport()
		}
	}
	return false
}

func (f *Frontend) reimport() {
	if f.cfg.Pattern == "" {
		return
	}
	format, err := f.cfg.PatternFormat()
	if err != nil {
		f.session.Logger().Printf("reimport: %v", err)
		return
	}
	_ = f.session.Import(context.Background(), format, pattern.FileSource(f.cfg.Pattern))
}

// resize fits the board into the screen, leaving the bottom row for status.
func (f *Frontend) resize() {
	w, h := f.screen.Size()
	f.side = max(min(w/2, h-1), 0)
	f.buf = make([]byte, 4*f.side*f.side)
	if f.side > 0 {
		f.session.SetView(core.NewView(f.session.Board().Size(), float32(f.side)))
	}
}

// Draw paints the board and the status line and shows the result.
func (f *Frontend) Draw() {
	f.screen.Clear()
	if f.side > 0 {
		render.Rasterize(f.buf, f.side, f.side, f.session.Render(), color.RGBA{A: 255})
		for y := 0; y < f.side; y++ {
			for x := 0; x < f.side; x++ {
				base := (y*f.side + x) * 4
				style := deadStyle.Background(tcell.NewRGBColor(int32(f.buf[base]), int32(f.buf[base+1]), int32(f.buf[base+2])))
				f.screen.SetContent(2*x, y, ' ', nil, style)
				f.screen.SetContent(2*x+1, y, ' ', nil, style)
			}
		}
	}
	_, h := f.screen.Size()
	f.drawStatus(h - 1)
	f.screen.Show()
}

func (f *Frontend) drawStatus(row int) {
	if row < 0 {
		return
	}
	snap := f.session.Snapshot()
	get := func(key string) string {
		v, _ := snap.Lookup(key)
		return v
	}
	line := fmt.Sprintf("%s n=%s gen=%s pop=%s %s", get("board"), get("n"), get("generation"), get("population"), get("state"))
	w, _ := f.screen.Size()
	for i, r := range []rune(line) {
		if i >= w {
			break
		}
		f.screen.SetContent(i, row, r, nil, statusStyle)
	}
}
