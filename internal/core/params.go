package core

import (
	"strconv"

	lifecore "mad-life/pkg/core"
)

// Parameter describes a single value shown on the HUD or status line.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures what the shells display about a running board.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Status is the runtime state a snapshot is built from.
type Status struct {
	Generation int
	Paused     bool
	TPS        int
}

type workerProvider interface {
	Workers() int
}

// Snapshot describes board b together with the session status.
func Snapshot(b lifecore.Board, st Status) ParameterSnapshot {
	board := []Parameter{
		{Key: "board", Label: "Board", Value: b.Name()},
		{Key: "n", Label: "Size", Value: strconv.Itoa(b.Size())},
	}
	if wp, ok := b.(workerProvider); ok {
		board = append(board, Parameter{Key: "workers", Label: "Workers", Value: strconv.Itoa(wp.Workers())})
	}
	state := "playing"
	if st.Paused {
		state = "paused"
	}
	return ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Board", Params: board},
		{Name: "Run", Params: []Parameter{
			{Key: "generation", Label: "Generation", Value: strconv.Itoa(st.Generation)},
			{Key: "population", Label: "Population", Value: strconv.Itoa(b.Population())},
			{Key: "state", Label: "State", Value: state},
			{Key: "tps", Label: "TPS", Value: strconv.Itoa(st.TPS)},
		}},
	}}
}

// Lookup returns the value stored under key.
func (s ParameterSnapshot) Lookup(key string) (string, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p.Value, true
			}
		}
	}
	return "", false
}

// Lines flattens the snapshot into "Label: value" rows.
func (s ParameterSnapshot) Lines() []string {
	var lines []string
	for _, g := range s.Groups {
		for _, p := range g.Params {
			lines = append(lines, p.Label+": "+p.Value)
		}
	}
	return lines
}
