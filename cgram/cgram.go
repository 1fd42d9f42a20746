// Package cgram splits passwords into c-grams, maximal runs of bytes of the
// same character class, and either streams them out or counts them.
package cgram

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/mhr3/pwstat/ascii"
	"github.com/mhr3/pwstat/hexline"
	"github.com/mhr3/pwstat/internal/lineio"
	"github.com/mhr3/pwstat/mask"
	"github.com/mhr3/pwstat/stats"
)

// Options configures Run.
type Options struct {
	// Window is the accepted length range, mask.DefaultWindow when nil.
	Window *mask.Window
	// Sort counts the runs and writes them ranked by frequency once the input
	// is exhausted, instead of streaming one run per line.
	Sort bool
	// IgnoreCase puts upper and lower case letters in the same class, so that
	// "Passw0rd" splits into "Passw", "0", "rd".
	IgnoreCase bool
	// Normalize also emits a lowercased copy of every run holding an upper
	// case letter.
	Normalize bool
	// Top bounds the runs shown in the diagnostics of a sorted run.
	// Negative shows all.
	Top int
}

func (o *Options) normalize() error {
	if o.Window == nil {
		w := mask.DefaultWindow
		o.Window = &w
	}
	if o.Top == 0 {
		o.Top = stats.DefaultTop
	}
	return o.Window.Validate()
}

// Summary describes a finished pass.
type Summary struct {
	Processed uint64
	Skipped   uint64
	// Runs is the number of runs emitted or counted, lowercased copies
	// included.
	Runs uint64
	// Distinct is the number of different runs, only set when sorting.
	Distinct int
}

// Run reads passwords from r, one per line, decoding $HEX[...] lines, and
// writes their runs to w. Runs of binary bytes are always written in
// $HEX[...] form. Diagnostics of a sorted run go to diag unless it is nil.
func Run(r io.Reader, w, diag io.Writer, opts Options) (Summary, error) {
	if err := opts.normalize(); err != nil {
		return Summary{}, err
	}

	var (
		sum     Summary
		dec     hexline.Decoder
		lower   []byte
		counter *Counter
		out     = bufio.NewWriter(w)
		buf     []byte
	)
	if opts.Sort {
		counter = NewCounter()
	}

	emit := func(run []byte) error {
		sum.Runs++
		if counter != nil {
			counter.Add(run)
			return nil
		}
		buf = render(buf[:0], run)
		return lineio.WriteLine(out, buf)
	}

	err := lineio.Each(r, func(line []byte) error {
		sum.Processed++
		payload, n := dec.Decode(line)
		if !opts.Window.Contains(n) {
			sum.Skipped++
			return nil
		}
		return mask.Split(payload, opts.IgnoreCase, func(run []byte, _ uint8) error {
			if err := emit(run); err != nil {
				return err
			}
			if opts.Normalize && ascii.HasUpper(run) {
				lower = ascii.AppendLower(lower[:0], run)
				return emit(lower)
			}
			return nil
		})
	})
	if err != nil {
		return sum, err
	}

	if counter != nil {
		rows := counter.Rank(sum.Processed)
		sum.Distinct = len(rows)
		if err := writeCounts(out, rows); err != nil {
			return sum, fmt.Errorf("write c-grams: %w", err)
		}
		if diag != nil {
			if err := writeDiagnostics(diag, sum, rows, opts.Top); err != nil {
				return sum, fmt.Errorf("write diagnostics: %w", err)
			}
		}
	}

	if err := out.Flush(); err != nil {
		return sum, fmt.Errorf("write c-grams: %w", err)
	}
	return sum, nil
}

// render appends the printable form of a run to dst. A run is made of bytes
// of one class, so the first byte tells whether it is binary.
func render(dst, run []byte) []byte {
	if len(run) > 0 && ascii.Class(run[0]) == ascii.Binary {
		return hexline.Wrap(dst, run)
	}
	return append(dst, run...)
}

func writeCounts(w *bufio.Writer, rows []stats.Row) error {
	var buf []byte
	for _, row := range rows {
		buf = render(buf[:0], []byte(row.Key))
		buf = append(buf, '\t')
		buf = strconv.AppendUint(buf, row.Count, 10)
		if err := lineio.WriteLine(w, buf); err != nil {
			return err
		}
	}
	return nil
}

func writeDiagnostics(w io.Writer, sum Summary, rows []stats.Row, top int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "[+] Analyzed %d / %d passwords.\n", sum.Processed-sum.Skipped, sum.Processed)
	shown := len(rows)
	if top >= 0 && top < shown {
		shown = top
	}
	fmt.Fprintf(bw, "[*] C-grams (top %d of %d):\n", shown, len(rows))
	rows = rows[:shown]
	for _, row := range rows {
		key := render(nil, []byte(row.Key))
		fmt.Fprintf(bw, "[+] %26s: %6.2f%% (%d)\n", key, row.Percent, row.Count)
	}
	return bw.Flush()
}
