package core

import "time"

// FixedStep paces generations at a steady rate independent of the frame rate.
// A paused FixedStep only fires for queued single steps.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	paused      bool
	pending     int

	now func() time.Time
}

// NewFixedStep constructs a FixedStep targeting the given generations per second.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Paused reports whether continuous play is suspended.
func (f *FixedStep) Paused() bool { return f.paused }

// SetPaused suspends or resumes continuous play.
func (f *FixedStep) SetPaused(paused bool) {
	f.paused = paused
	f.last = time.Time{}
	f.accumulator = 0
}

// Toggle flips between playing and paused.
func (f *FixedStep) Toggle() { f.SetPaused(!f.paused) }

// Once queues a single step that fires even while paused.
func (f *FixedStep) Once() { f.pending++ }

// ShouldStep reports whether the simulation should advance by one generation.
func (f *FixedStep) ShouldStep() bool {
	if f.pending > 0 {
		f.pending--
		return true
	}
	if f.paused {
		return false
	}
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
