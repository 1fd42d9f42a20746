package stats

import (
	"fmt"
	"io"

	"github.com/mhr3/pwstat/hexline"
	"github.com/mhr3/pwstat/internal/lineio"
	"github.com/mhr3/pwstat/mask"
)

// DefaultTop is the number of masks shown in the diagnostic summary.
const DefaultTop = 25

// Options configures Generate. The zero value is usable: it reports the
// masks table as tab separated values over the default window.
type Options struct {
	// Window is the accepted length range, mask.DefaultWindow when nil.
	Window    *mask.Window
	Separator string
	Table     TableName
	Format    Format
	// Top bounds the masks shown in the diagnostics. Negative shows all.
	Top int
}

func (o *Options) normalize() error {
	if o.Window == nil {
		w := mask.DefaultWindow
		o.Window = &w
	}
	if err := o.Window.Validate(); err != nil {
		return err
	}
	if o.Separator == "" {
		o.Separator = "\t"
	}
	if o.Table == "" {
		o.Table = Masks
	}
	if _, err := ParseTable(string(o.Table)); err != nil {
		return err
	}
	if o.Format == "" {
		o.Format = TSV
	}
	if _, err := ParseFormat(string(o.Format)); err != nil {
		return err
	}
	if o.Top == 0 {
		o.Top = DefaultTop
	}
	return nil
}

// Summary describes a finished pass.
type Summary struct {
	Processed uint64
	Skipped   uint64
	Accepted  uint64
	// Rows is the number of rows written for the selected table, or of all
	// tables for CBOR output.
	Rows int
}

// Generate reads a corpus from r, one password per line, and writes the
// selected table to w. Lines in $HEX[...] form are decoded first and their
// decoded length is the one checked against the window. A summary is written
// to diag unless it is nil.
func Generate(r io.Reader, w, diag io.Writer, opts Options) (Summary, error) {
	if err := opts.normalize(); err != nil {
		return Summary{}, err
	}

	var (
		agg = NewAggregator(*opts.Window)
		dec hexline.Decoder
	)
	err := lineio.Each(r, func(line []byte) error {
		payload, n := dec.Decode(line)
		agg.Add(payload, n)
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	report := agg.Report()
	sum := Summary{
		Processed: agg.Total(),
		Skipped:   agg.Skipped(),
		Accepted:  agg.Accepted(),
	}

	switch opts.Format {
	case CBOR:
		for _, t := range report.Tables {
			sum.Rows += len(t.Rows)
		}
		if err := report.WriteCBOR(w); err != nil {
			return sum, fmt.Errorf("write report: %w", err)
		}
	default:
		t, err := report.Table(opts.Table)
		if err != nil {
			return sum, err
		}
		sum.Rows = len(t.Rows)
		if err := WriteTable(w, t, opts.Separator); err != nil {
			return sum, fmt.Errorf("write report: %w", err)
		}
	}

	if diag != nil {
		if err := report.WriteDiagnostics(diag, opts.Top); err != nil {
			return sum, fmt.Errorf("write diagnostics: %w", err)
		}
	}
	return sum, nil
}
