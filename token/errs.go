package token

import "errors"

var (
	// ErrUnexpectedEOF indicates the input ran out while more characters
	// were grammatically required.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrBadEscape indicates a backslash followed by an unrecognized
	// escape character.
	ErrBadEscape = errors.New("invalid escape")

	// ErrBadUnicode indicates a \u escape whose four following characters
	// are not hexadecimal digits.
	ErrBadUnicode = errors.New("invalid unicode escape")

	// ErrNumber indicates input with no valid numeric prefix.
	ErrNumber = errors.New("invalid number")
)
