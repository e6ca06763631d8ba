package common

import (
	"fmt"
	"strings"
)

// CEscape escapes s for use inside a double-quoted C string literal.
// Backslashes and quotes are escaped; control bytes become three digit
// octal escapes. Bytes >= 0x80 are copied unchanged.
func CEscape(s string) string {
	if !needsCEscape(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == '"':
			b.WriteString(`\"`)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, `\%03o`, c)
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

func needsCEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == '"' || c < 0x20 || c == 0x7f {
			return true
		}
	}

	return false
}
