package parse

import (
	"errors"
	"fmt"

	"github.com/objson/go-objson/token"
)

// ErrParse is the base of every parser failure; the sentinels below all
// wrap it, so callers can match the broad kind with errors.Is(err,
// ErrParse) or the specific reason with the sentinel.
var (
	ErrParse = errors.New("parse error")

	// ErrUnexpectedEOF: input exhausted while more characters were
	// grammatically required.
	ErrUnexpectedEOF = fmt.Errorf("%w: %w", ErrParse, token.ErrUnexpectedEOF)

	// ErrIllegalStart: a construct's required leading delimiter is
	// missing.
	ErrIllegalStart = fmt.Errorf("%w: illegal start", ErrParse)

	// ErrIllegalSeparator: object key/value ':' separator missing or
	// wrong.
	ErrIllegalSeparator = fmt.Errorf("%w: illegal separator", ErrParse)

	// ErrUnexpectedChar: a character where grammar permits none of the
	// valid continuations.
	ErrUnexpectedChar = fmt.Errorf("%w: unexpected character", ErrParse)

	// ErrBadEscape: unrecognized escape character or malformed \u
	// sequence.
	ErrBadEscape = fmt.Errorf("%w: %w", ErrParse, token.ErrBadEscape)

	// ErrNumber: numeric literal scan failed to produce a value.
	ErrNumber = fmt.Errorf("%w: %w", ErrParse, token.ErrNumber)

	// ErrInvalidBool: input at a boolean position is neither true nor
	// false.
	ErrInvalidBool = fmt.Errorf("%w: invalid boolean", ErrParse)

	// ErrInvalidNull: input at a null position is not exactly null.
	ErrInvalidNull = fmt.Errorf("%w: invalid null literal", ErrParse)

	// ErrDepth: nesting exceeded a caller-configured MaxDepth.
	ErrDepth = fmt.Errorf("%w: max nesting depth exceeded", ErrParse)
)
