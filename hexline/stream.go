package hexline

import (
	"bufio"
	"io"

	"github.com/mhr3/pwstat/internal/lineio"
)

// Unhex copies every line of r to w with $HEX[...] wrappers decoded. It
// returns the number of lines that were unwrapped.
func Unhex(r io.Reader, w *bufio.Writer) (int, error) {
	var (
		d         Decoder
		unwrapped int
	)
	err := lineio.Each(r, func(line []byte) error {
		payload, ok := d.unwrap(line)
		if ok {
			unwrapped++
		}
		return lineio.WriteLine(w, payload)
	})
	return unwrapped, err
}

// Hex copies every line of r to w, wrapping the lines that need escaping. It
// returns the number of lines that were wrapped.
func Hex(r io.Reader, w *bufio.Writer) (int, error) {
	var (
		buf     []byte
		wrapped int
	)
	err := lineio.Each(r, func(line []byte) error {
		buf = Encode(buf[:0], line)
		if len(buf) != len(line) {
			wrapped++
		}
		return lineio.WriteLine(w, buf)
	})
	return wrapped, err
}
