package ascii

import "encoding/binary"

const (
	lsb = ^uint64(0) / 255 // 0x0101010101010101
	msb = lsb * 0x80       // 0x8080808080808080
)

// needsEscapingGo reports whether s holds a byte below 0x20 or at or above
// 0x80, eight bytes at a time.
func needsEscapingGo[T string | []byte](s T) bool {
	for ; len(s) >= 8; s = s[8:] {
		_ = s[7]
		x := uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
			uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56

		// a byte below 0x20 borrows into its own top bit, a high byte already has it
		if ((x-lsb*0x20)&^x|x)&msb != 0 {
			return true
		}
	}

	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b >= 0x80 {
			return true
		}
	}
	return false
}

// based on https://graphics.stanford.edu/~seander/bithacks.html#HasBetweenInWord
func hasUppercaseAsciiByte(x uint64) uint64 {
	const m, n = 'A' - 1, 'Z' + 1

	A := lsb * (127 + n)
	B := x & (lsb * 127)
	C := ^x
	D := lsb * (127 - m)
	return (A - B) & C & (B + D) & msb
}

func lowerWord(x uint64) uint64 {
	return x + hasUppercaseAsciiByte(x)>>2
}

// HasUpper reports whether s contains an ASCII uppercase letter.
func HasUpper[T string | []byte](s T) bool {
	for ; len(s) >= 8; s = s[8:] {
		_ = s[7]
		x := uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
			uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56
		if hasUppercaseAsciiByte(x) != 0 {
			return true
		}
	}

	for i := 0; i < len(s); i++ {
		if classBits[s[i]] == Upper {
			return true
		}
	}
	return false
}

// AppendLower appends s to dst with ASCII uppercase letters lowered. Every
// other byte, including bytes >= 0x80, is copied unchanged.
func AppendLower(dst, s []byte) []byte {
	for ; len(s) >= 8; s = s[8:] {
		dst = binary.LittleEndian.AppendUint64(dst, lowerWord(binary.LittleEndian.Uint64(s)))
	}
	for _, b := range s {
		dst = append(dst, toLower(b))
	}
	return dst
}

// toLower converts ASCII uppercase to lowercase.
func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 0x20
	}
	return b
}
