package core

import (
	"slices"
	"testing"
	"time"

	"mad-life/pkg/sims/life"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepPacesGenerations(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now

	if !fs.ShouldStep() {
		t.Fatal("first call should step with the primed accumulator")
	}
	clock.advance(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("should not step before a full tick elapsed")
	}
	clock.advance(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("should step once a full tick elapsed")
	}
}

func TestFixedStepPauseAndOnce(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now

	fs.Toggle()
	if !fs.Paused() {
		t.Fatal("Toggle should pause")
	}
	clock.advance(time.Second)
	if fs.ShouldStep() {
		t.Fatal("paused stepper must not advance")
	}

	fs.Once()
	fs.Once()
	if !fs.ShouldStep() || !fs.ShouldStep() {
		t.Fatal("queued single steps should fire while paused")
	}
	if fs.ShouldStep() {
		t.Fatal("only queued steps should fire")
	}

	fs.SetPaused(false)
	clock.advance(150 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("resuming restarts the clock so stale time is not replayed")
	}
	clock.advance(150 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("should step after resuming")
	}
}

func TestSnapshotDescribesBoard(t *testing.T) {
	b := life.NewDenseWithConfig(life.Config{Size: 6, Workers: 3})
	b.Reset(life.Checkerboard(6))
	snap := Snapshot(b, Status{Generation: 4, Paused: true, TPS: 30})

	want := map[string]string{
		"board":      "dense",
		"n":          "6",
		"workers":    "3",
		"generation": "4",
		"population": "18",
		"state":      "paused",
		"tps":        "30",
	}
	for key, value := range want {
		got, ok := snap.Lookup(key)
		if !ok || got != value {
			t.Fatalf("%s = %q (%v), expected %q", key, got, ok, value)
		}
	}

	sparse := Snapshot(life.NewSparse(6), Status{})
	if _, ok := sparse.Lookup("workers"); ok {
		t.Fatal("sparse boards have no workers parameter")
	}
	if !slices.Contains(sparse.Lines(), "State: playing") {
		t.Fatalf("unexpected lines %v", sparse.Lines())
	}
}
