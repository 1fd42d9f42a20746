// Package lineio reads newline-delimited input of unbounded line length and
// opens the input and output sinks of a run.
package lineio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
)

const bufferSize = 64 << 10

// Reader yields the lines of an input without their "\n" or "\r\n"
// terminator. A final line without terminator is returned as is.
type Reader struct {
	br  *bufio.Reader
	buf []byte
}

// NewReader returns a Reader buffering r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReaderSize(r, bufferSize)}
}

// Next returns the next line. The slice is only valid until the following
// call. Next returns io.EOF once the input is exhausted.
func (r *Reader) Next() ([]byte, error) {
	line, err := r.br.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		// line longer than the buffer: accumulate the pieces
		r.buf = append(r.buf[:0], line...)
		for err == bufio.ErrBufferFull {
			line, err = r.br.ReadSlice('\n')
			r.buf = append(r.buf, line...)
		}
		line = r.buf
	}

	if err != nil {
		if err != io.EOF {
			return nil, err
		}
		if len(line) == 0 {
			return nil, io.EOF
		}
		return line, nil
	}

	return trimTerminator(line), nil
}

// Each calls fn for every line of r until the input is exhausted or fn
// returns an error.
func Each(r io.Reader, fn func(line []byte) error) error {
	lr := NewReader(r)
	for {
		line, err := lr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}
		if err := fn(line); err != nil {
			return err
		}
	}
}

// WriteLine writes line followed by "\n".
func WriteLine(w *bufio.Writer, line []byte) error {
	if _, err := w.Write(line); err != nil {
		return err
	}
	return w.WriteByte('\n')
}

// Open returns the named file, or stdin when name is empty. Closing the
// returned reader never closes stdin.
func Open(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// Writer is a buffered output sink.
type Writer struct {
	*bufio.Writer
	c io.Closer
}

// Create truncates or creates the named file, or uses stdout when name is
// empty, and buffers writes to it.
func Create(name string, stdout io.Writer) (*Writer, error) {
	if name == "" {
		return &Writer{Writer: bufio.NewWriterSize(stdout, bufferSize), c: nopCloser{}}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return &Writer{Writer: bufio.NewWriterSize(f, bufferSize), c: f}, nil
}

// Close flushes pending writes and closes the underlying file.
func (w *Writer) Close() error {
	err := w.Flush()
	return multierr.Append(err, w.c.Close())
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// trimTerminator strips one trailing "\n" or "\r\n" from line.
func trimTerminator(line []byte) []byte {
	if !bytes.HasSuffix(line, []byte{'\n'}) {
		return line
	}
	line = line[:len(line)-1]
	return bytes.TrimSuffix(line, []byte{'\r'})
}
