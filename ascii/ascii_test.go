package ascii

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	segascii "github.com/segmentio/asm/ascii"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePrintable(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(0x20 + rand.Intn(0x7f-0x20))
	}
	return data
}

func classNaive(b byte) uint8 {
	switch {
	case b >= 'a' && b <= 'z':
		return Lower
	case b >= 'A' && b <= 'Z':
		return Upper
	case b >= '0' && b <= '9':
		return Digit
	case b >= 0x20 && b < 0x7f:
		return Special
	}
	return Binary
}

func needsEscapingNaive(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c >= 0x80 {
			return true
		}
	}
	return false
}

func TestTables(t *testing.T) {
	letters := map[uint8]uint8{Lower: 'l', Upper: 'u', Digit: 'd', Special: 's', Binary: 'b'}

	for i := 0; i < 256; i++ {
		b := byte(i)
		want := classNaive(b)
		require.Equal(t, want, Class(b), "Class(%#x)", b)
		require.Equal(t, letters[want], MaskLetter(b), "MaskLetter(%#x)", b)

		simple := want
		if simple == Upper {
			simple = Lower
		}
		require.Equal(t, simple, SimpleClass(b), "SimpleClass(%#x)", b)
	}
}

func TestUnion(t *testing.T) {
	tests := []struct {
		in   string
		want uint8
		name string
	}{
		{"", 0, "invalid"},
		{"abc", Lower, "loweralpha"},
		{"ABC", Upper, "upperalpha"},
		{"abc123", Lower | Digit, "loweralphanum"},
		{"ABC!!!", Upper | Special, "upperalphaspecial"},
		{"Passw0rd!", Lower | Upper | Digit | Special, "mixedalphaspecialnum"},
		{"123", Digit, "numeric"},
		{"\x01\x02", Binary, "binary"},
		{"a\xff1", Lower | Digit | Binary, "loweralphanumbin"},
		{"\x7f", Binary, "binary"},
	}

	for _, tt := range tests {
		got := Union(tt.in)
		assert.Equal(t, tt.want, got, "Union(%q)", tt.in)
		assert.Equal(t, tt.want, Union([]byte(tt.in)), "Union([]byte(%q))", tt.in)
		assert.Equal(t, tt.name, CharsetName(got), "CharsetName(Union(%q))", tt.in)
	}
}

func TestSimpleLabel(t *testing.T) {
	assert.Equal(t, "string", SimpleLabel(Lower))
	assert.Equal(t, "digit", SimpleLabel(Digit))
	assert.Equal(t, "special", SimpleLabel(Special))
	assert.Equal(t, "binary", SimpleLabel(Binary))
	assert.Equal(t, "othermask", SimpleLabel(Other))
	assert.Equal(t, "", SimpleLabel(Upper))
}

func TestNeedsEscaping(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"a", false},
		{"password", false},
		{"hello world!", false},
		{"~tilde~", false},
		{"del\x7fis fine", false},
		{"\x01\x02", true},
		{"tab\there", true},
		{"caf\xc3\xa9", true},
		{"\xff", true},
		{"12345678\x1f", true},
		{"1234567\x80", true},
		{"\x00" + strings.Repeat("a", 40), true},
		{strings.Repeat("a", 40) + "\x19", true},
		{strings.Repeat(" ", 64), false},
		{strings.Repeat("\x7f", 64), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NeedsEscaping([]byte(tt.in)), "NeedsEscaping(%q)", tt.in)
		assert.Equal(t, tt.want, needsEscapingGo(tt.in), "needsEscapingGo(%q)", tt.in)
	}
}

func TestNeedsEscapingPositions(t *testing.T) {
	for n := 1; n < 200; n++ {
		data := makePrintable(n)
		require.False(t, NeedsEscaping(data), "NeedsEscaping(%q)", data)
		require.True(t, segascii.ValidPrint(data))

		for _, bad := range []byte{0x00, 0x1f, 0x80, 0xff} {
			idx := rand.Intn(n)
			saved := data[idx]
			data[idx] = bad
			require.True(t, NeedsEscaping(data), "NeedsEscaping(%q)", data)
			require.False(t, segascii.ValidPrint(data))
			data[idx] = saved
		}
	}
}

func TestHasUpper(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"abc", false},
		{"aBc", true},
		{"@[`{", false},
		{"abcdefgh", false},
		{"abcdefgZ", true},
		{"abcdefghZ", true},
		{"\xc1\xda\xc8\xc9\xcaxyzw", false},
		{"12345678901234567890", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HasUpper(tt.in), "HasUpper(%q)", tt.in)
	}
}

func TestAppendLower(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"ABC", "abc"},
		{"Passw0rd", "passw0rd"},
		{"@[`{AZaz", "@[`{azaz"},
		{"HELLO WORLD, HELLO", "hello world, hello"},
		{"\xc1\xda\xc8Q", "\xc1\xda\xc8q"},
	}

	for _, tt := range tests {
		got := AppendLower(nil, []byte(tt.in))
		assert.Equal(t, tt.want, string(got), "AppendLower(%q)", tt.in)
	}

	dst := []byte("prefix:")
	dst = AppendLower(dst, []byte("ABCDEFGHIJ"))
	assert.Equal(t, "prefix:abcdefghij", string(dst))
}

func FuzzNeedsEscaping(f *testing.F) {
	f.Add([]byte("password"))
	f.Add([]byte("\x01\x02"))
	f.Add([]byte(strings.Repeat("x", 40) + "\x7f"))
	f.Add([]byte("caf\xc3\xa9"))

	f.Fuzz(func(t *testing.T, in []byte) {
		want := needsEscapingNaive(in)
		if got := NeedsEscaping(in); got != want {
			t.Fatalf("NeedsEscaping(%q) = %v; want %v", in, got, want)
		}

		lowered := AppendLower(nil, in)
		naive := make([]byte, len(in))
		for i, b := range in {
			naive[i] = toLower(b)
		}
		if !bytes.Equal(lowered, naive) {
			t.Fatalf("AppendLower(%q) = %q; want %q", in, lowered, naive)
		}
	})
}

func BenchmarkNeedsEscaping(b *testing.B) {
	for _, n := range []int{8, 16, 32, 64, 256} {
		data := makePrintable(n)

		b.Run(fmt.Sprintf("go-%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				needsEscapingGo(data)
			}
		})

		b.Run(fmt.Sprintf("segment-%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				segascii.ValidPrint(data)
			}
		})

		b.Run(fmt.Sprintf("dispatch-%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				NeedsEscaping(data)
			}
		})
	}
}
