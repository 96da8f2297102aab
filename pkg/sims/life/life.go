// Package life implements Conway's Game of Life on a bounded N×N board
// surrounded by permanently dead cells. Two representations share the
// core.Board contract: Dense, a padded grid stepped by a parallel stencil,
// and Sparse, an active set with a neighbor frontier.
package life

import (
	"runtime"
	"strconv"

	"mad-life/pkg/core"
)

// DefaultSize is the interior edge length used when none is configured.
const DefaultSize = 1024

// Config holds parameters shared by both board representations.
type Config struct {
	Size    int
	Workers int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Size: DefaultSize, Workers: runtime.NumCPU()}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	return c
}

// survives applies B3/S23 to a cell with the given number of live Moore
// neighbors.
func survives(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

func init() {
	core.Register("dense", func(cfg map[string]string) core.Board {
		return NewDenseWithConfig(FromMap(cfg))
	})
	core.Register("sparse", func(cfg map[string]string) core.Board {
		return NewSparse(FromMap(cfg).Size)
	})
}
