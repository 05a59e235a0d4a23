package output

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// SanitizeTerminal replaces control characters and invalid UTF-8 bytes with
// visible escapes so a string cannot drive the terminal. Tabs and newlines
// pass through.
//
//	"lab\x1b[31m" -> `lab\x1b[31m`
//	"bad:\xff"    -> `bad:\xff`
func SanitizeTerminal(s string) string {
	if terminalSafe(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			writeEscape(&b, `\x`, uint32(s[i]), 2)
		case passThrough(r):
			b.WriteString(s[i : i+size])
		default:
			escapeRune(&b, r)
		}
		i += size
	}
	return b.String()
}

func terminalSafe(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || !passThrough(r) {
			return false
		}
		i += size
	}
	return true
}

func passThrough(r rune) bool {
	return r == '\n' || r == '\t' || !unicode.IsControl(r)
}

// escapeRune writes \xHH, \uHHHH or \UHHHHHHHH, whichever is shortest.
func escapeRune(b *strings.Builder, r rune) {
	switch {
	case r <= 0xff:
		writeEscape(b, `\x`, uint32(r), 2)
	case r <= 0xffff:
		writeEscape(b, `\u`, uint32(r), 4)
	default:
		writeEscape(b, `\U`, uint32(r), 8)
	}
}

func writeEscape(b *strings.Builder, prefix string, v uint32, digits int) {
	b.WriteString(prefix)
	for shift := 4 * (digits - 1); shift >= 0; shift -= 4 {
		b.WriteByte(hexDigits[(v>>uint(shift))&0x0f])
	}
}
