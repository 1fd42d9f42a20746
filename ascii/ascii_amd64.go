package ascii

import (
	segascii "github.com/segmentio/asm/ascii"
	"golang.org/x/sys/cpu"
)

var hasAVX2 = cpu.X86.HasAVX2

// NeedsEscaping reports whether b holds a control character (< 0x20) or a
// byte with the high bit set. Such lines are written as $HEX[...].
func NeedsEscaping(b []byte) bool {
	// printable ASCII never needs escaping; DEL is not printable but does not
	// need escaping either, so a failed check still has to scan
	if hasAVX2 && len(b) >= 32 && segascii.ValidPrint(b) {
		return false
	}
	return needsEscapingGo(b)
}
