package stats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fxamacker/cbor/v2"
)

// Format selects the encoding of the report written to the output sink.
type Format string

const (
	// TSV writes one table, one row per line.
	TSV Format = "tsv"
	// CBOR writes the whole report as a single CBOR document.
	CBOR Format = "cbor"
)

// ErrUnknownFormat is returned for a format other than tsv and cbor.
var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat maps a name to its Format.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case TSV, CBOR:
		return Format(name), nil
	}
	return "", fmt.Errorf("%w %q, want tsv or cbor", ErrUnknownFormat, name)
}

// Report is the ranked result of a pass over a corpus.
type Report struct {
	Processed uint64  `cbor:"processed"`
	Skipped   uint64  `cbor:"skipped"`
	MinLength int     `cbor:"min_length"`
	MaxLength int     `cbor:"max_length"`
	Tables    []Table `cbor:"tables"`
}

// Report ranks every table.
func (a *Aggregator) Report() Report {
	r := Report{
		Processed: a.total,
		Skipped:   a.skipped,
		Tables:    make([]Table, 0, len(TableNames)),
	}
	r.MinLength, r.MaxLength = a.LengthRange()
	for _, name := range TableNames {
		r.Tables = append(r.Tables, a.table(name))
	}
	return r
}

// Table returns the named table.
func (r Report) Table(name TableName) (Table, error) {
	for _, t := range r.Tables {
		if t.Name == name {
			return t, nil
		}
	}
	return Table{}, unknownTable(string(name))
}

// WriteTable writes every row of t as
// key{sep}percent{sep}count, followed by {sep}min{sep}max for tracked tables.
func WriteTable(w io.Writer, t Table, sep string) error {
	var buf []byte
	for _, row := range t.Rows {
		buf = append(buf[:0], row.Key...)
		buf = append(buf, sep...)
		buf = strconv.AppendFloat(buf, row.Percent, 'f', 4, 64)
		buf = append(buf, sep...)
		buf = strconv.AppendUint(buf, row.Count, 10)
		if t.Tracked {
			buf = append(buf, sep...)
			buf = strconv.AppendInt(buf, int64(row.Min), 10)
			buf = append(buf, sep...)
			buf = strconv.AppendInt(buf, int64(row.Max), 10)
		}
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// WriteCBOR encodes r with the core deterministic CBOR options.
func (r Report) WriteCBOR(w io.Writer) error {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return err
	}
	return em.NewEncoder(w).Encode(r)
}

// WriteDiagnostics writes a human readable summary of r: the length, charset
// and simple mask distributions in full and the top masks.
func (r Report) WriteDiagnostics(w io.Writer, top int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "[+] Analyzed %d / %d passwords.\n", r.Processed-r.Skipped, r.Processed)

	headers := map[TableName]string{
		Lengths:     fmt.Sprintf("[*] Length distribution: (min: %d max: %d)", max(r.MinLength, 0), r.MaxLength),
		Charsets:    "\n[*] Charset distribution:",
		SimpleMasks: "\n[*] Simple masks distribution:",
		Masks:       fmt.Sprintf("\n[*] Masks (top %d):", top),
	}

	for _, t := range r.Tables {
		fmt.Fprintln(bw, headers[t.Name])
		rows := t.Rows
		if t.Name == Masks && top >= 0 && len(rows) > top {
			rows = rows[:top]
		}
		for _, row := range rows {
			fmt.Fprintf(bw, "[+] %26s: %6.2f%% (%d)", row.Key, row.Percent, row.Count)
			if t.Tracked {
				fmt.Fprintf(bw, " [min: %d max: %d]", row.Min, row.Max)
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
