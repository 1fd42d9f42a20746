// Package mask derives the structure of a password: its detailed hashcat
// mask, the union of the character classes it uses, its simple mask (the
// collapsed sequence of class runs) and its runs of same-class bytes.
package mask

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mhr3/pwstat/ascii"
)

// MaxLength is the longest line that can be analyzed. Lengths are tracked in
// 16 bits.
const MaxLength = 65535

// MaxRuns is the number of runs a simple mask describes before it gives up
// and becomes Other.
const MaxRuns = 5

// ErrInvalidWindow is returned by Validate for a window outside
// [0, MaxLength] or with Min > Max.
var ErrInvalidWindow = errors.New("invalid length window")

// Window is an inclusive range of accepted line lengths.
type Window struct {
	Min int
	Max int
}

// DefaultWindow accepts every non-empty line that fits in 16 bits.
var DefaultWindow = Window{Min: 1, Max: MaxLength}

// Validate checks 0 <= Min <= Max <= MaxLength.
func (w Window) Validate() error {
	if w.Min < 0 || w.Max > MaxLength || w.Min > w.Max {
		return fmt.Errorf("%w: [%d, %d] not within [0, %d]", ErrInvalidWindow, w.Min, w.Max, MaxLength)
	}
	return nil
}

// Contains reports whether a line of length n is accepted.
func (w Window) Contains(n int) bool {
	return n >= w.Min && n <= w.Max
}

// SimpleMask is the collapsed class sequence of a line. It is comparable and
// can be used as a map key.
type SimpleMask struct {
	codes [MaxRuns]uint8
	n     uint8
}

// OtherMask replaces the simple mask of lines with more than MaxRuns runs.
var OtherMask = SimpleMask{codes: [MaxRuns]uint8{ascii.Other}, n: 1}

// NewSimpleMask builds a mask from class codes. It returns OtherMask when
// there are more than MaxRuns codes.
func NewSimpleMask(codes ...uint8) SimpleMask {
	if len(codes) > MaxRuns {
		return OtherMask
	}
	var m SimpleMask
	m.n = uint8(copy(m.codes[:], codes))
	return m
}

// Len returns the number of codes in m.
func (m SimpleMask) Len() int { return int(m.n) }

// Codes returns the class codes of m.
func (m SimpleMask) Codes() []uint8 { return m.codes[:m.n] }

// IsOther reports whether m is the overflow sentinel.
func (m SimpleMask) IsOther() bool { return m == OtherMask }

// String concatenates the labels of the codes, e.g. "stringdigit".
func (m SimpleMask) String() string {
	var sb strings.Builder
	for _, c := range m.codes[:m.n] {
		sb.WriteString(ascii.SimpleLabel(c))
	}
	return sb.String()
}

// Result is the structure of one line.
type Result struct {
	// Detailed holds one mask letter per byte. It is owned by the Analyzer
	// and only valid until the next call to Analyze.
	Detailed []byte
	Charset  uint8
	Simple   SimpleMask
}

// Analyzer derives masks, reusing its buffers between lines.
type Analyzer struct {
	detailed []byte
}

// Analyze classifies every byte of line.
func (a *Analyzer) Analyze(line []byte) Result {
	a.detailed = a.detailed[:0]

	var (
		union    uint8
		last     uint8
		simple   SimpleMask
		overflow bool
	)
	for _, b := range line {
		a.detailed = append(a.detailed, ascii.MaskLetter(b))
		union |= ascii.Class(b)

		if overflow {
			continue
		}
		c := ascii.SimpleClass(b)
		if c == last {
			continue
		}
		if simple.n == MaxRuns {
			simple = OtherMask
			overflow = true
			continue
		}
		simple.codes[simple.n] = c
		simple.n++
		last = c
	}

	return Result{Detailed: a.detailed, Charset: union, Simple: simple}
}

// RenderDetailed appends the hashcat form of a detailed mask to dst, "?"
// before every letter.
func RenderDetailed(dst, detailed []byte) []byte {
	for _, c := range detailed {
		dst = append(dst, '?', c)
	}
	return dst
}
