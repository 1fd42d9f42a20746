// Package filter keeps the passwords that fit a simple positional mask such
// as "?l?l?d" or "lld".
package filter

import (
	"bufio"
	"errors"
	"io"

	"github.com/mhr3/pwstat/ascii"
	"github.com/mhr3/pwstat/hexline"
	"github.com/mhr3/pwstat/internal/lineio"
)

// ErrEmptyMask is returned by Run for a filter without positions.
var ErrEmptyMask = errors.New("filter mask has no positions")

// Filter holds one class bitmask per position.
type Filter struct {
	positions []uint8
	unknown   int
}

// Parse reads a filter mask. The letters l, u, d, s, a and b select lower,
// upper, digit, special, any printable and any byte. A '?' is ignored, so
// hashcat masks parse too. Any other character still takes a position, one
// that matches nothing.
func Parse(pattern string) Filter {
	var f Filter
	for i := 0; i < len(pattern); i++ {
		var bits uint8
		switch pattern[i] {
		case '?':
			continue
		case 'l':
			bits = ascii.Lower
		case 'u':
			bits = ascii.Upper
		case 'd':
			bits = ascii.Digit
		case 's':
			bits = ascii.Special
		case 'a':
			bits = ascii.Lower | ascii.Upper | ascii.Digit | ascii.Special
		case 'b':
			bits = ascii.Lower | ascii.Upper | ascii.Digit | ascii.Special | ascii.Binary
		default:
			f.unknown++
		}
		f.positions = append(f.positions, bits)
	}
	return f
}

// Len returns the number of positions, which is the only length a matching
// line can have.
func (f Filter) Len() int { return len(f.positions) }

// Unknown returns the number of positions that came from unknown characters.
func (f Filter) Unknown() int { return f.unknown }

// Match reports whether line, of logical length n, fits f.
func (f Filter) Match(line []byte, n int) bool {
	if n != len(f.positions) || len(line) != n {
		return false
	}
	for i, bits := range f.positions {
		if bits&ascii.Class(line[i]) == 0 {
			return false
		}
	}
	return true
}

// Summary counts the lines of a Run.
type Summary struct {
	Total   uint64
	Matched uint64
	Skipped uint64
}

// Run copies the lines of r that match f to w, as they were read. Lines in
// $HEX[...] form are matched on their decoded payload.
func Run(r io.Reader, w io.Writer, f Filter) (Summary, error) {
	var sum Summary
	if f.Len() == 0 {
		return sum, ErrEmptyMask
	}

	var (
		dec hexline.Decoder
		out = bufio.NewWriter(w)
	)
	err := lineio.Each(r, func(line []byte) error {
		sum.Total++
		payload, n := dec.Decode(line)
		if !f.Match(payload, n) {
			sum.Skipped++
			return nil
		}
		sum.Matched++
		return lineio.WriteLine(out, line)
	})
	if err != nil {
		return sum, err
	}
	return sum, out.Flush()
}
