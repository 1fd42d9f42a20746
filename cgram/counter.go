package cgram

import "github.com/mhr3/pwstat/stats"

// Counter counts runs by their bytes.
type Counter struct {
	counts map[string]uint64
	total  uint64
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]uint64)}
}

// Add counts one occurrence of run.
func (c *Counter) Add(run []byte) {
	c.counts[string(run)]++
	c.total++
}

// Count returns the occurrences of run.
func (c *Counter) Count(run string) uint64 { return c.counts[run] }

// Total returns the number of runs added.
func (c *Counter) Total() uint64 { return c.total }

// Len returns the number of distinct runs.
func (c *Counter) Len() int { return len(c.counts) }

// Rank returns the runs by descending count, with percentages taken over
// processed lines.
func (c *Counter) Rank(processed uint64) []stats.Row {
	rows := make([]stats.Row, 0, len(c.counts))
	for k, n := range c.counts {
		row := stats.Row{Key: k, Count: n}
		if processed > 0 {
			row.Percent = 100 * float64(n) / float64(processed)
		}
		rows = append(rows, row)
	}
	stats.Rank(rows)
	return rows
}
