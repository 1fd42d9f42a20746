// Package stats aggregates the structure of a password corpus in a single
// pass: detailed masks, simple masks, charsets and lengths, then ranks the
// aggregates by frequency and writes them out.
package stats

import (
	"strconv"

	"github.com/mhr3/pwstat/ascii"
	"github.com/mhr3/pwstat/mask"
)

// Aggregator accumulates the frequency tables of a corpus. It is not safe for
// concurrent use.
type Aggregator struct {
	window   mask.Window
	analyzer mask.Analyzer

	masks    map[string]uint64
	simple   map[mask.SimpleMask]Entry
	charsets map[uint8]Entry
	lengths  map[uint16]uint64

	total   uint64
	skipped uint64
	minLen  int
	maxLen  int
}

// NewAggregator returns an Aggregator accepting lines whose length falls in w.
func NewAggregator(w mask.Window) *Aggregator {
	return &Aggregator{
		window:   w,
		masks:    make(map[string]uint64),
		simple:   make(map[mask.SimpleMask]Entry),
		charsets: make(map[uint8]Entry),
		lengths:  make(map[uint16]uint64),
		minLen:   -1,
	}
}

// Add folds a decoded line of logical length n into the tables. Lines outside
// the window are counted as skipped and Add returns false.
func (a *Aggregator) Add(line []byte, n int) bool {
	a.total++
	if !a.window.Contains(n) || n > mask.MaxLength {
		a.skipped++
		return false
	}

	if a.minLen < 0 || n < a.minLen {
		a.minLen = n
	}
	if n > a.maxLen {
		a.maxLen = n
	}

	res := a.analyzer.Analyze(line)
	length := uint16(n)

	a.masks[string(res.Detailed)]++
	a.lengths[length]++
	observe(a.charsets, res.Charset, length)
	observe(a.simple, res.Simple, length)
	return true
}

// Total returns the number of lines seen, skipped ones included.
func (a *Aggregator) Total() uint64 { return a.total }

// Skipped returns the number of lines outside the length window.
func (a *Aggregator) Skipped() uint64 { return a.skipped }

// Accepted returns the number of lines folded into the tables.
func (a *Aggregator) Accepted() uint64 { return a.total - a.skipped }

// LengthRange returns the shortest and longest accepted length, or -1, 0 when
// no line was accepted.
func (a *Aggregator) LengthRange() (int, int) { return a.minLen, a.maxLen }

// Table returns the ranked rows of one table.
func (a *Aggregator) Table(name TableName) (Table, error) {
	if _, err := ParseTable(string(name)); err != nil {
		return Table{}, err
	}
	return a.table(name), nil
}

// table ranks a known table. Unknown names yield an empty table.
func (a *Aggregator) table(name TableName) Table {
	t := Table{Name: name}

	switch name {
	case Masks:
		t.Rows = make([]Row, 0, len(a.masks))
		var buf []byte
		for k, count := range a.masks {
			buf = mask.RenderDetailed(buf[:0], []byte(k))
			t.Rows = append(t.Rows, Row{Key: string(buf), Count: count})
		}
	case SimpleMasks:
		t.Tracked = true
		t.Rows = make([]Row, 0, len(a.simple))
		for k, e := range a.simple {
			t.Rows = append(t.Rows, entryRow(k.String(), e))
		}
	case Charsets:
		t.Tracked = true
		t.Rows = make([]Row, 0, len(a.charsets))
		for k, e := range a.charsets {
			t.Rows = append(t.Rows, entryRow(ascii.CharsetName(k), e))
		}
	case Lengths:
		t.Rows = make([]Row, 0, len(a.lengths))
		for k, count := range a.lengths {
			t.Rows = append(t.Rows, Row{Key: strconv.Itoa(int(k)), Count: count})
		}
	}

	for i := range t.Rows {
		t.Rows[i].Percent = percent(t.Rows[i].Count, a.total)
	}
	Rank(t.Rows)
	return t
}

func entryRow(key string, e Entry) Row {
	return Row{Key: key, Count: uint64(e.Count()), Min: int(e.Min()), Max: int(e.Max())}
}

func percent(count, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(count) / float64(total)
}
