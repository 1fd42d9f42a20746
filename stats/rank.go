package stats

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// TableName selects one of the aggregate tables.
type TableName string

const (
	Masks       TableName = "masks"
	SimpleMasks TableName = "simple"
	Charsets    TableName = "charsets"
	Lengths     TableName = "lengths"
)

// TableNames lists every table in report order.
var TableNames = []TableName{Lengths, Charsets, SimpleMasks, Masks}

// ErrUnknownTable is returned for a table name other than masks, simple,
// charsets and lengths.
var ErrUnknownTable = errors.New("unknown table")

func unknownTable(name string) error {
	return fmt.Errorf("%w %q, want one of masks, simple, charsets, lengths", ErrUnknownTable, name)
}

// ParseTable maps a name to its TableName.
func ParseTable(name string) (TableName, error) {
	for _, t := range TableNames {
		if string(t) == name {
			return t, nil
		}
	}
	return "", unknownTable(name)
}

// Row is one ranked aggregate. Min and Max are only meaningful in tracked
// tables and are zero elsewhere.
type Row struct {
	Key     string  `cbor:"key"`
	Count   uint64  `cbor:"count"`
	Percent float64 `cbor:"percent"`
	Min     int     `cbor:"min"`
	Max     int     `cbor:"max"`

	fingerprint uint64
}

// Table is a ranked frequency table.
type Table struct {
	Name    TableName `cbor:"name"`
	Tracked bool      `cbor:"tracked"`
	Rows    []Row     `cbor:"rows"`
}

// Rank sorts rows by descending count. Ties are ordered by a hash of the key,
// then by the key itself, so the order only depends on the rows.
func Rank(rows []Row) {
	for i := range rows {
		rows[i].fingerprint = xxhash.Sum64String(rows[i].Key)
	}
	slices.SortFunc(rows, func(a, b Row) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		if a.fingerprint != b.fingerprint {
			return cmp.Compare(a.fingerprint, b.fingerprint)
		}
		return strings.Compare(a.Key, b.Key)
	})
}
