package token

import (
	"encoding/hex"
	"unicode/utf8"
)

// DecodeEscape decodes one escape sequence. d starts at the character
// following the backslash. It returns the decoded bytes and the number of
// input bytes consumed.
//
// Recognized escapes are " \ / b f n r t and uXXXX with four
// case-insensitive hex digits. A \u escape decodes to a single code point
// appended as UTF-8; surrogate halves are not combined, each \u sequence
// decodes independently.
func DecodeEscape(d []byte) ([]byte, int, error) {
	if len(d) == 0 {
		return nil, 0, ErrUnexpectedEOF
	}
	switch d[0] {
	case '"':
		return []byte{'"'}, 1, nil
	case '\\':
		return []byte{'\\'}, 1, nil
	case '/':
		return []byte{'/'}, 1, nil
	case 'b':
		return []byte{'\b'}, 1, nil
	case 'f':
		return []byte{'\f'}, 1, nil
	case 'n':
		return []byte{'\n'}, 1, nil
	case 'r':
		return []byte{'\r'}, 1, nil
	case 't':
		return []byte{'\t'}, 1, nil
	case 'u':
		if len(d) < 5 {
			return nil, 0, ErrUnexpectedEOF
		}
		dst := []byte{0, 0}
		if _, err := hex.Decode(dst, d[1:5]); err != nil {
			return nil, 0, ErrBadUnicode
		}
		r := rune(dst[0])<<8 | rune(dst[1])
		return utf8.AppendRune(nil, r), 5, nil
	default:
		return nil, 0, ErrBadEscape
	}
}
