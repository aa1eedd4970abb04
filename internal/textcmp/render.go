package textcmp

import "strings"

// invalidPlaceholder stands in for any byte with the high bit set. The exact byte is discarded on purpose: the renderer signals "present but unrepresentable"
// rather than attempting transliteration.
const invalidPlaceholder = "(invalid)"

// MaxRenderedLen is the longest string RenderByte can return, in bytes. Diagnostic consumers may rely on this bound when sizing buffers.
const MaxRenderedLen = len(invalidPlaceholder)

// RenderByte renders a single raw byte for use in a one-line diagnostic:
//   - '\n' becomes the two characters `\n`, keeping otherwise-invisible newlines visible.
//   - Any byte >= 0x80 becomes "(invalid)". Some downstream consumers (IDE plugins parsing result text) choke on non-ASCII bytes in test output.
//   - Everything else is returned verbatim as a one-character string.
//
// RenderByte is total over the byte domain and pure.
func RenderByte(b byte) string {
	switch {
	case b == '\n':
		return `\n`
	case b >= 0x80:
		return invalidPlaceholder
	default:
		return string(b)
	}
}

// SanitizeNonASCII returns s with every high-bit byte replaced by '?'. Use it to scrub whole strings that will be displayed or logged as-is, where per-byte
// rendering would be too intrusive. Pure ASCII input is returned unchanged without allocating.
func SanitizeNonASCII(s string) string {
	i := 0
	for i < len(s) && s[i] < 0x80 {
		i++
	}
	if i == len(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for ; i < len(s); i++ {
		if s[i] >= 0x80 {
			b.WriteByte('?')
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
