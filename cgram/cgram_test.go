package cgram

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/pwstat/mask"
)

func run(t *testing.T, in string, opts Options) (string, Summary) {
	t.Helper()
	var out bytes.Buffer
	sum, err := Run(strings.NewReader(in), &out, nil, opts)
	require.NoError(t, err)
	return out.String(), sum
}

func TestRunStreaming(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts Options
		want string
	}{
		{"classes", "abc123!!\n", Options{}, "abc\n123\n!!\n"},
		{"case", "Passw0rd\n", Options{}, "P\nassw\n0\nrd\n"},
		{"ignore case", "Passw0rd\n", Options{IgnoreCase: true}, "Passw\n0\nrd\n"},
		{"normalize", "Passw0rd\n", Options{IgnoreCase: true, Normalize: true}, "Passw\npassw\n0\nrd\n"},
		{"normalize runs", "AB1c\n", Options{Normalize: true}, "AB\nab\n1\nc\n"},
		{"binary", "x\x00\x7fy\n", Options{}, "x\n$HEX[007f]\ny\n"},
		{"high bytes", "\xc3\xa9t\xc3\xa9\n", Options{}, "$HEX[c3a9]\nt\n$HEX[c3a9]\n"},
		{"hex input", "$HEX[61626331]\n", Options{}, "abc\n1\n"},
		{"malformed hex", "$HEX[zz]\n", Options{}, "$\nHEX\n[\nzz\n]\n"},
		{"lines", "ab\n\ncd12\r\n", Options{}, "ab\ncd\n12\n"},
		{"no newline", "a1", Options{}, "a\n1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := run(t, tt.in, tt.opts)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunSummary(t *testing.T) {
	_, sum := run(t, "abc123\n\nPass\n", Options{Normalize: true})
	assert.Equal(t, Summary{Processed: 3, Skipped: 1, Runs: 5}, sum)

	_, sum = run(t, "a\nabcd\nabcdefgh\n", Options{Window: &mask.Window{Min: 2, Max: 6}})
	assert.Equal(t, uint64(3), sum.Processed)
	assert.Equal(t, uint64(2), sum.Skipped)
	assert.Equal(t, uint64(1), sum.Runs)
}

func parseCounts(t *testing.T, out string) (map[string]uint64, []uint64) {
	t.Helper()
	counts := map[string]uint64{}
	var order []uint64
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		token, count, ok := strings.Cut(line, "\t")
		require.True(t, ok, "line %q", line)
		n, err := strconv.ParseUint(count, 10, 64)
		require.NoError(t, err)
		counts[token] = n
		order = append(order, n)
	}
	return counts, order
}

func TestRunSorted(t *testing.T) {
	in := "abc123\nabc!!\nxyz123\n123\n\x01\x02z\n"
	var out, diag bytes.Buffer
	sum, err := Run(strings.NewReader(in), &out, &diag, Options{Sort: true})
	require.NoError(t, err)

	counts, order := parseCounts(t, out.String())
	assert.Equal(t, map[string]uint64{
		"123":        3,
		"abc":        2,
		"!!":         1,
		"xyz":        1,
		"z":          1,
		"$HEX[0102]": 1,
	}, counts)
	assert.IsNonIncreasing(t, order)
	assert.True(t, strings.HasPrefix(out.String(), "123\t3\n"))

	assert.Equal(t, uint64(5), sum.Processed)
	assert.Equal(t, uint64(9), sum.Runs)
	assert.Equal(t, 6, sum.Distinct)

	assert.Contains(t, diag.String(), "[+] Analyzed 5 / 5 passwords.\n")
	assert.Contains(t, diag.String(), "[*] C-grams (top 6 of 6):\n")
	assert.Contains(t, diag.String(), fmt.Sprintf("[+] %26s: %6.2f%% (%d)\n", "123", 60.0, 3))
	assert.Contains(t, diag.String(), "$HEX[0102]")
}

func TestRunSortedDeterministic(t *testing.T) {
	in := "a1\nb2\nc3\nd4\ne5\n"
	first, _ := run(t, in, Options{Sort: true})
	for i := 0; i < 5; i++ {
		again, _ := run(t, in, Options{Sort: true})
		assert.Equal(t, first, again)
	}
}

func TestRunSortedNormalize(t *testing.T) {
	out, _ := run(t, "Abc\nabc\nABC\n", Options{Sort: true, IgnoreCase: true, Normalize: true})
	counts, _ := parseCounts(t, out)
	assert.Equal(t, map[string]uint64{"abc": 3, "Abc": 1, "ABC": 1}, counts)
}

func TestRunTop(t *testing.T) {
	var out, diag bytes.Buffer
	_, err := Run(strings.NewReader("aa1\naa2\nbb3\n"), &out, &diag, Options{Sort: true, Top: 1})
	require.NoError(t, err)
	assert.Contains(t, diag.String(), "[*] C-grams (top 1 of 5):\n")
	assert.Contains(t, diag.String(), "aa:")
	assert.NotContains(t, diag.String(), "bb:")
}

func TestRunTopAll(t *testing.T) {
	var out, diag bytes.Buffer
	_, err := Run(strings.NewReader("aa1\nbb2\n"), &out, &diag, Options{Sort: true, Top: -1})
	require.NoError(t, err)
	assert.Contains(t, diag.String(), "[*] C-grams (top 4 of 4):\n")
	assert.NotContains(t, diag.String(), "top -1")
	assert.Equal(t, 4, strings.Count(diag.String(), "[+] ")-1)
}

func TestRunEmptyWindow(t *testing.T) {
	out, sum := run(t, "\nabc\n", Options{Window: &mask.Window{}})
	assert.Empty(t, out)
	assert.Equal(t, Summary{Processed: 2, Skipped: 1}, sum)
}

func TestRunInvalidWindow(t *testing.T) {
	_, err := Run(strings.NewReader(""), &bytes.Buffer{}, nil, Options{Window: &mask.Window{Min: 3, Max: 1}})
	assert.ErrorIs(t, err, mask.ErrInvalidWindow)
}

func TestCounter(t *testing.T) {
	c := NewCounter()
	c.Add([]byte("ab"))
	c.Add([]byte("ab"))
	c.Add([]byte("1"))
	assert.Equal(t, uint64(2), c.Count("ab"))
	assert.Equal(t, uint64(3), c.Total())
	assert.Equal(t, 2, c.Len())

	rows := c.Rank(4)
	require.Len(t, rows, 2)
	assert.Equal(t, "ab", rows[0].Key)
	assert.InDelta(t, 50.0, rows[0].Percent, 1e-9)
	assert.InDelta(t, 25.0, rows[1].Percent, 1e-9)

	assert.Empty(t, NewCounter().Rank(0))
}

func BenchmarkRun(b *testing.B) {
	in := strings.Repeat("Password1!\nletmein\n$uper$ecret99\n\x00bin\n", 256)
	b.SetBytes(int64(len(in)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Run(strings.NewReader(in), &bytes.Buffer{}, nil, Options{Normalize: true}); err != nil {
			b.Fatal(err)
		}
	}
}
