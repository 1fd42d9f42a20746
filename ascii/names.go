package ascii

// Other is the simple mask code that stands for a line with too many runs to
// describe.
const Other uint8 = 255

// charsetNames is indexed by a class union. Index 0 never occurs for a
// non-empty line.
var charsetNames = [32]string{
	"invalid",
	"loweralpha",
	"upperalpha",
	"mixedalpha",
	"numeric",
	"loweralphanum",
	"upperalphanum",
	"mixedalphanum",
	"special",
	"loweralphaspecial",
	"upperalphaspecial",
	"mixedalphaspecial",
	"specialnum",
	"loweralphaspecialnum",
	"upperalphaspecialnum",
	"mixedalphaspecialnum",
	"binary",
	"loweralphabin",
	"upperalphabin",
	"mixedalphabin",
	"numericbin",
	"loweralphanumbin",
	"upperalphanumbin",
	"mixedalphanumbin",
	"specialbin",
	"loweralphaspecialbin",
	"upperalphaspecialbin",
	"mixedalphaspecialbin",
	"specialnumbin",
	"loweralphaspecialnumbin",
	"upperalphaspecialnumbin",
	"mixedalphaspecialnumbin",
}

// CharsetName returns the name of a class union, e.g. "loweralphanum" for
// Lower|Digit.
func CharsetName(union uint8) string {
	return charsetNames[union&0x1f]
}

// SimpleLabel returns the label of a simple mask code. Codes outside the
// simple classes and Other have no label.
func SimpleLabel(code uint8) string {
	switch code {
	case Lower:
		return "string"
	case Digit:
		return "digit"
	case Special:
		return "special"
	case Binary:
		return "binary"
	case Other:
		return "othermask"
	}
	return ""
}
