// Package pattern decodes Life pattern files into lazily produced sequences
// of live cells. Decoded coordinates are zero-based relative to the
// pattern's top-left corner.
package pattern

import (
	"errors"
	"fmt"
	"iter"
	"path/filepath"
	"strings"

	"mad-life/pkg/core"
)

// Format names a supported pattern encoding.
type Format string

const (
	// FormatPlaintext is the ".cells" style grid of 'O' characters.
	FormatPlaintext Format = "plaintext"
	// FormatRLE is the run-length encoded pattern format.
	FormatRLE Format = "rle"
)

var (
	ErrUnterminated = errors.New("missing '!' terminator")
	ErrRunCount     = errors.New("invalid run count")
	ErrTag          = errors.New("unexpected tag")
	ErrHeader       = errors.New("malformed header")
	ErrRule         = errors.New("unsupported rule")
	ErrCompressed   = errors.New("corrupt compressed buffer")
	ErrFormat       = errors.New("unknown pattern format")
)

// DecodeError reports malformed pattern input. Line is one-based and zero
// when the failure is not tied to a line.
type DecodeError struct {
	Format Format
	Line   int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("decode %s: line %d: %v", e.Format, e.Line, e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Bounds clips decoded cells to [0,W)×[0,H). A zero dimension is unbounded.
type Bounds struct {
	W int
	H int
}

func (b Bounds) rowInside(y int) bool { return b.H <= 0 || y < b.H }

func (b Bounds) colLimit(x int) int {
	if b.W > 0 && x > b.W {
		return b.W
	}
	return x
}

// ParseFormat resolves a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plain", "plaintext", "cells", "txt":
		return FormatPlaintext, nil
	case "rle":
		return FormatRLE, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, name)
}

// FormatFor guesses the format from a file name. Compressed ".zst" suffixes
// are looked through; anything not recognised as RLE is plaintext.
func FormatFor(path string) Format {
	name := strings.ToLower(filepath.Base(path))
	name = strings.TrimSuffix(name, ".zst")
	if strings.HasSuffix(name, ".rle") {
		return FormatRLE
	}
	return FormatPlaintext
}

// Decode dispatches to the decoder for f.
func Decode(f Format, buf []byte, b Bounds) iter.Seq2[core.Cell, error] {
	switch f {
	case FormatRLE:
		return RLEWithin(buf, b)
	case FormatPlaintext:
		return PlaintextWithin(buf, b)
	}
	return func(yield func(core.Cell, error) bool) {
		yield(core.Cell{}, &DecodeError{Format: f, Err: ErrFormat})
	}
}

// Collect drains seq. On the first error it returns no cells.
func Collect(seq iter.Seq2[core.Cell, error]) ([]core.Cell, error) {
	var cells []core.Cell
	for c, err := range seq {
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return cells, nil
}

// eachLine calls fn with every line of data (terminator stripped) and its
// one-based number until fn returns false.
func eachLine(data []byte, fn func(n int, line []byte) bool) {
	n := 0
	for len(data) > 0 {
		n++
		end := len(data)
		next := len(data)
		for i, ch := range data {
			if ch == '\n' {
				end, next = i, i+1
				break
			}
		}
		line := data[:end]
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		if !fn(n, line) {
			return
		}
		data = data[next:]
	}
}
