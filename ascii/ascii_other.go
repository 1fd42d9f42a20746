//go:build !amd64

package ascii

// NeedsEscaping reports whether b holds a control character (< 0x20) or a
// byte with the high bit set. Such lines are written as $HEX[...].
func NeedsEscaping(b []byte) bool {
	return needsEscapingGo(b)
}
