package app

import (
	"flag"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"mad-life/pkg/core"
	"mad-life/pkg/pattern"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Board   string
	Size    int
	Workers int
	Display int
	Scale   int
	TPS     int
	Seed    int64
	Density float64
	Pattern string
	Format  string
	Play    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Board:   "dense",
		Size:    1024,
		Workers: runtime.NumCPU(),
		Display: core.DefaultDisplaySize,
		Scale:   1,
		TPS:     30,
		Seed:    42,
		Density: 0.3,
		Format:  "auto",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Board, "board", c.Board, "board representation ("+strings.Join(core.BoardNames(), ", ")+")")
	fs.IntVar(&c.Size, "n", c.Size, "interior edge length in cells")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used by the dense stencil")
	fs.IntVar(&c.Display, "display", c.Display, "board display edge length in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while playing")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for random soups")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern file to import at start")
	fs.StringVar(&c.Format, "format", c.Format, "pattern format: auto, plain or rle")
	fs.BoolVar(&c.Play, "play", c.Play, "start playing immediately")
}

// BoardConfig converts the board related fields to a factory config map.
func (c *Config) BoardConfig() map[string]string {
	return map[string]string{
		"n":       strconv.Itoa(c.Size),
		"workers": strconv.Itoa(c.Workers),
	}
}

// NewBoard builds the configured board from the registry.
func (c *Config) NewBoard() (core.Board, error) {
	factory, ok := core.Boards()[c.Board]
	if !ok {
		return nil, fmt.Errorf("unknown board %q (have %s)", c.Board, strings.Join(core.BoardNames(), ", "))
	}
	return factory(c.BoardConfig()), nil
}

// View returns the display area the board is rendered into.
func (c *Config) View() core.View {
	return core.NewView(c.Size, float32(c.Display))
}

// PatternFormat resolves Format, guessing from the pattern file name for "auto".
func (c *Config) PatternFormat() (pattern.Format, error) {
	if c.Format == "" || strings.EqualFold(c.Format, "auto") {
		return pattern.FormatFor(c.Pattern), nil
	}
	return pattern.ParseFormat(c.Format)
}
