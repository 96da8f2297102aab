package pattern

import (
	"iter"

	"mad-life/pkg/core"
)

// Plaintext decodes a plaintext pattern: one row per line, 'O' marks a live
// cell and any other byte a dead one. Lines starting with '!' are comments.
func Plaintext(buf []byte) iter.Seq2[core.Cell, error] {
	return PlaintextWithin(buf, Bounds{})
}

// PlaintextWithin decodes like Plaintext but never produces cells outside b.
func PlaintextWithin(buf []byte, b Bounds) iter.Seq2[core.Cell, error] {
	return func(yield func(core.Cell, error) bool) {
		data, err := unwrap(buf)
		if err != nil {
			yield(core.Cell{}, &DecodeError{Format: FormatPlaintext, Err: err})
			return
		}
		y := 0
		eachLine(data, func(_ int, line []byte) bool {
			if len(line) > 0 && line[0] == '!' {
				return true
			}
			if !b.rowInside(y) {
				return false
			}
			end := b.colLimit(len(line))
			for x := 0; x < end; x++ {
				if line[x] != 'O' {
					continue
				}
				if !yield(core.Cell{X: x, Y: y}, nil) {
					return false
				}
			}
			y++
			return true
		})
	}
}
