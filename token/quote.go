package token

import (
	"encoding/hex"
	"unicode"
	"unicode/utf8"
)

// Quote renders v as a double-quoted string with backslash escapes for
// quotes, backslashes, and control characters. Canonical value encoding
// does not escape (see the encode package); Quote exists for display and
// interop surfaces that need re-parseable strings.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// NeedsQuote reports whether v contains characters that Quote would
// escape.
func NeedsQuote(v string) bool {
	for _, r := range v {
		switch r {
		case '"', '\\':
			return true
		default:
			if unicode.IsControl(r) {
				return true
			}
		}
	}
	return false
}
