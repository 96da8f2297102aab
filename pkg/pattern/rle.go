package pattern

import (
	"bytes"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"mad-life/pkg/core"
)

// maxRun caps a single run count. Longer runs are rejected rather than
// clipped so that hostile input cannot drive the cursor arbitrarily far.
const maxRun = 1 << 24

// RLE decodes a run-length encoded pattern. '#' lines before the body are
// comments; an optional "x = W, y = H, rule = R" header may follow. The body
// is a sequence of [count]tag tokens where 'b' or '.' is dead, 'o' or 'A' is
// live, '$' ends rows and '!' ends the pattern.
func RLE(buf []byte) iter.Seq2[core.Cell, error] {
	return RLEWithin(buf, Bounds{})
}

// RLEWithin decodes like RLE but never produces cells outside b. Input is
// still validated to the terminator.
func RLEWithin(buf []byte, b Bounds) iter.Seq2[core.Cell, error] {
	return func(yield func(core.Cell, error) bool) {
		data, err := unwrap(buf)
		if err != nil {
			yield(core.Cell{}, &DecodeError{Format: FormatRLE, Err: err})
			return
		}
		d := &rleDecoder{bounds: b, yield: yield}
		d.decode(data)
	}
}

type rleDecoder struct {
	bounds Bounds
	yield  func(core.Cell, error) bool

	line    int
	x, y    int
	count   int
	counted bool

	inBody  bool
	done    bool
	stopped bool
}

func (d *rleDecoder) decode(data []byte) {
	eachLine(data, func(n int, line []byte) bool {
		d.line = n
		if !d.inBody {
			trimmed := bytes.TrimSpace(line)
			if len(trimmed) == 0 || trimmed[0] == '#' {
				return true
			}
			d.inBody = true
			if isHeader(trimmed) {
				if err := parseHeader(string(trimmed)); err != nil {
					d.fail(err)
					return false
				}
				return true
			}
		}
		return d.body(line)
	})
	if d.done || d.stopped {
		return
	}
	if d.counted {
		d.fail(fmt.Errorf("%w: dangling count %d", ErrRunCount, d.count))
		return
	}
	d.fail(ErrUnterminated)
}

func (d *rleDecoder) body(line []byte) bool {
	for _, ch := range line {
		switch {
		case ch >= '0' && ch <= '9':
			d.count = d.count*10 + int(ch-'0')
			d.counted = true
			if d.count > maxRun {
				d.fail(fmt.Errorf("%w: run exceeds %d", ErrRunCount, maxRun))
				return false
			}
		case ch == ' ' || ch == '\t' || ch == '\r':
		case ch == 'b' || ch == '.':
			n, ok := d.run()
			if !ok {
				return false
			}
			d.x += n
		case ch == 'o' || ch == 'A':
			n, ok := d.run()
			if !ok {
				return false
			}
			if !d.live(n) {
				return false
			}
		case ch == '$':
			n, ok := d.run()
			if !ok {
				return false
			}
			d.y += n
			d.x = 0
		case ch == '!':
			if d.counted {
				d.fail(fmt.Errorf("%w: count %d before terminator", ErrRunCount, d.count))
				return false
			}
			d.done = true
			return false
		default:
			d.fail(fmt.Errorf("%w: %q", ErrTag, ch))
			return false
		}
	}
	return true
}

func (d *rleDecoder) run() (int, bool) {
	if !d.counted {
		return 1, true
	}
	n := d.count
	d.count, d.counted = 0, false
	if n == 0 {
		d.fail(fmt.Errorf("%w: zero", ErrRunCount))
		return 0, false
	}
	return n, true
}

func (d *rleDecoder) live(n int) bool {
	if d.bounds.rowInside(d.y) {
		end := d.bounds.colLimit(d.x + n)
		for x := d.x; x < end; x++ {
			if !d.yield(core.Cell{X: x, Y: d.y}, nil) {
				d.stopped = true
				return false
			}
		}
	}
	d.x += n
	return true
}

func (d *rleDecoder) fail(err error) {
	d.stopped = true
	d.yield(core.Cell{}, &DecodeError{Format: FormatRLE, Line: d.line, Err: err})
}

func isHeader(line []byte) bool {
	if len(line) == 0 || (line[0] != 'x' && line[0] != 'X') {
		return false
	}
	rest := bytes.TrimLeft(line[1:], " \t")
	return len(rest) > 0 && rest[0] == '='
}

func parseHeader(line string) error {
	fields := strings.Split(line, ",")
	for i, field := range fields {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return fmt.Errorf("%w: %q", ErrHeader, strings.TrimSpace(field))
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		switch key {
		case "x", "y":
			if v, err := strconv.Atoi(value); err != nil || v < 0 {
				return fmt.Errorf("%w: %s = %q", ErrHeader, key, value)
			}
		case "rule":
			// The rule runs to the end of the line; topology suffixes such as
			// ":T10,10" contain commas.
			rule := strings.Join(append([]string{value}, fields[i+1:]...), ",")
			if !conwayRule(rule) {
				return fmt.Errorf("%w: %q", ErrRule, strings.TrimSpace(rule))
			}
			return nil
		}
	}
	return nil
}

// conwayRule accepts the B3/S23 rule in its common spellings. A topology
// suffix after ':' is ignored.
func conwayRule(rule string) bool {
	rule, _, _ = strings.Cut(rule, ":")
	rule = strings.ToUpper(strings.ReplaceAll(rule, " ", ""))
	switch rule {
	case "B3/S23", "S23/B3", "23/3":
		return true
	}
	return false
}
