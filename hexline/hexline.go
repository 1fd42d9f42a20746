// Package hexline implements the $HEX[...] convention used by password
// tooling to carry lines that are unsafe to print literally.
//
// A line that holds a control character or a byte >= 0x80 is written as
// "$HEX[" + lowercase hex of its bytes + "]". Any other line is written as is.
// Reading is lenient: text that looks like a wrapper but does not hex-decode
// is taken literally.
package hexline

import (
	"bytes"
	"encoding/hex"

	"github.com/mhr3/pwstat/ascii"
)

const (
	prefix = "$HEX["
	suffix = ']'
)

// IsWrapped reports whether line has the $HEX[...] shape. It does not check
// that the content is valid hex.
func IsWrapped(line []byte) bool {
	return len(line) > len(prefix) &&
		bytes.HasPrefix(line, []byte(prefix)) &&
		line[len(line)-1] == suffix
}

// Wrap appends the $HEX[...] form of line to dst.
func Wrap(dst, line []byte) []byte {
	dst = append(dst, prefix...)
	dst = hex.AppendEncode(dst, line)
	return append(dst, suffix)
}

// Encode appends line to dst, wrapped when it needs escaping.
func Encode(dst, line []byte) []byte {
	if ascii.NeedsEscaping(line) {
		return Wrap(dst, line)
	}
	return append(dst, line...)
}

// Decode returns the payload of a $HEX[...] line and its length. Lines that
// are not wrapped, or whose content fails to decode, are returned unchanged
// with their raw length.
func Decode(line []byte) ([]byte, int) {
	var d Decoder
	return d.Decode(line)
}

// Decoder decodes lines into a buffer it reuses between calls.
type Decoder struct {
	buf []byte
}

// Decode is like the package level Decode, but the returned payload is only
// valid until the next call.
func (d *Decoder) Decode(line []byte) ([]byte, int) {
	payload, _ := d.unwrap(line)
	return payload, len(payload)
}

func (d *Decoder) unwrap(line []byte) ([]byte, bool) {
	if !IsWrapped(line) {
		return line, false
	}

	inner := line[len(prefix) : len(line)-1]
	n := hex.DecodedLen(len(inner))
	if cap(d.buf) < n {
		d.buf = make([]byte, n)
	}
	d.buf = d.buf[:n]

	n, err := hex.Decode(d.buf, inner)
	if err != nil {
		// not valid $HEX encoding: the wrapper is part of the password
		return line, false
	}
	return d.buf[:n], true
}
