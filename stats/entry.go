package stats

import "math"

// Entry packs the occurrence count of a key together with the shortest and
// longest line length seen for it: count<<32 | min<<16 | max.
type Entry uint64

// emptyEntry has no occurrences; min starts at the top of the range and max
// at the bottom so that the first observation sets both.
const emptyEntry Entry = 0xFFFF << 16

// Observe returns e updated with one more line of length n. The count
// saturates at math.MaxUint32.
func (e Entry) Observe(n uint16) Entry {
	count, lo, hi := e.Count(), e.Min(), e.Max()
	if count < math.MaxUint32 {
		count++
	}
	if n < lo {
		lo = n
	}
	if n > hi {
		hi = n
	}
	return Entry(uint64(count)<<32 | uint64(lo)<<16 | uint64(hi))
}

// Count returns the number of observations.
func (e Entry) Count() uint32 { return uint32(e >> 32) }

// Min returns the shortest length observed.
func (e Entry) Min() uint16 { return uint16(e >> 16) }

// Max returns the longest length observed.
func (e Entry) Max() uint16 { return uint16(e) }

// observe folds a line of length n into the entry of k.
func observe[K comparable](m map[K]Entry, k K, n uint16) {
	e, ok := m[k]
	if !ok {
		e = emptyEntry
	}
	m[k] = e.Observe(n)
}
