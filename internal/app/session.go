package app

import (
	"context"
	"errors"
	"log"

	icore "mad-life/internal/core"
	"mad-life/pkg/core"
	"mad-life/pkg/pattern"
	"mad-life/pkg/sims/life"
)

// Session owns a board on behalf of a frontend. Every engine call goes
// through it from a single goroutine, which is the exclusive access the
// engine requires.
type Session struct {
	board      core.Board
	view       core.View
	clock      *icore.FixedStep
	tps        int
	generation int
	logger     *log.Logger
}

// NewSession wraps b. The session starts paused.
func NewSession(b core.Board, view core.View, tps int) *Session {
	view.N = b.Size()
	clock := icore.NewFixedStep(tps)
	clock.SetPaused(true)
	return &Session{board: b, view: view, clock: clock, tps: tps, logger: log.Default()}
}

// SetLogger redirects session diagnostics.
func (s *Session) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// Board exposes the owned board for read-only use between operations.
func (s *Session) Board() core.Board { return s.board }

// View returns the display area used for rendering and click mapping.
func (s *Session) View() core.View { return s.view }

// SetView changes the display area, keeping the board size.
func (s *Session) SetView(v core.View) {
	v.N = s.board.Size()
	s.view = v
}

// Logger returns the logger diagnostics are written to.
func (s *Session) Logger() *log.Logger { return s.logger }

// Generation counts steps since the board was last replaced.
func (s *Session) Generation() int { return s.generation }

// Paused reports whether continuous play is suspended.
func (s *Session) Paused() bool { return s.clock.Paused() }

// SetPlaying starts or stops continuous play.
func (s *Session) SetPlaying(play bool) { s.clock.SetPaused(!play) }

// TogglePlay flips continuous play.
func (s *Session) TogglePlay() { s.clock.Toggle() }

// StepOnce queues a single generation for the next Update.
func (s *Session) StepOnce() { s.clock.Once() }

// Update advances the board when the clock says so and reports whether it did.
func (s *Session) Update() bool {
	if !s.clock.ShouldStep() {
		return false
	}
	s.Step()
	return true
}

// Step advances the board by one generation immediately.
func (s *Session) Step() {
	s.board.Step()
	s.generation++
}

// Clear replaces the board with a blank one.
func (s *Session) Clear() { s.replace(nil) }

// Checkerboard reseeds the board with the checkerboard pattern.
func (s *Session) Checkerboard() { s.replace(life.Checkerboard(s.board.Size())) }

// Randomize reseeds the board with a deterministic random soup.
func (s *Session) Randomize(seed int64, density float64) {
	s.replace(life.Random(s.board.Size(), seed, density))
}

func (s *Session) replace(cells []core.Cell) {
	s.board.Reset(cells)
	s.generation = 0
}

// Shift moves the pattern one cell in dir.
func (s *Session) Shift(dir core.Direction) { s.board.Shift(dir, 1) }

// Click toggles the cell under the pixel offset from the display's top-left
// corner. Clicks outside the board are ignored.
func (s *Session) Click(px, py float32) bool {
	return life.Edit(s.board, s.view, px, py)
}

// Import acquires a buffer from src and loads it as format f. A cancelled
// acquisition or a decode failure leaves the board untouched.
func (s *Session) Import(ctx context.Context, f pattern.Format, src pattern.Source) error {
	buf, err := pattern.Acquire(ctx, src)
	if errors.Is(err, core.ErrCancelled) {
		s.logger.Printf("import cancelled")
		return err
	}
	if err != nil {
		s.logger.Printf("import: %v", err)
		return err
	}
	if err := life.Import(s.board, f, buf); err != nil {
		s.logger.Printf("import: %v", err)
		return err
	}
	s.generation = 0
	s.logger.Printf("imported %s pattern with %d live cells", f, s.board.Population())
	return nil
}

// Render describes the current board for painting.
func (s *Session) Render() []core.Fill { return s.board.Render(s.view) }

// Snapshot summarises the session for the HUD and status line.
func (s *Session) Snapshot() icore.ParameterSnapshot {
	return icore.Snapshot(s.board, icore.Status{
		Generation: s.generation,
		Paused:     s.clock.Paused(),
		TPS:        s.tps,
	})
}
