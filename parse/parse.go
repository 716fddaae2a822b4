package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/objson/go-objson/debug"
	"github.com/objson/go-objson/ir"
	"github.com/objson/go-objson/token"
)

// Parse consumes d and produces exactly one value. After the value, only
// whitespace may remain; any trailing non-whitespace character is an
// error. The input is consumed left to right exactly once, with one byte
// of lookahead and no backtracking.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if debug.Parse() {
		debug.Logf("parse: %d bytes\n", len(d))
	}
	p := &parser{
		cur:      token.NewCursor(d),
		maxDepth: pOpts.maxDepth,
	}
	res, err := p.value()
	if err != nil {
		return nil, err
	}
	p.cur.SkipWhite()
	if p.cur.Len() != 0 {
		b, _ := p.cur.Peek()
		return nil, fmt.Errorf("%w: trailing %q after document", ErrUnexpectedChar, b)
	}
	return res, nil
}

func ParseString(v string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(v), opts...)
}

type parser struct {
	cur      *token.Cursor
	depth    int
	maxDepth int
}

func (p *parser) push() error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return fmt.Errorf("%w (%d)", ErrDepth, p.maxDepth)
	}
	return nil
}

func (p *parser) pop() {
	p.depth--
}

// value routes on the first non-whitespace byte.
func (p *parser) value() (*ir.Node, error) {
	b, err := p.cur.PeekNonWhite()
	if err != nil {
		return nil, fmt.Errorf("%w: expecting a value", ErrUnexpectedEOF)
	}
	switch {
	case b == '"':
		return p.string()
	case b == '-' || asciiDigit(b):
		return p.number()
	case b == 't' || b == 'f':
		return p.boolean()
	case b == 'n':
		return p.null()
	case b == '{':
		return p.object()
	case b == '[':
		return p.array()
	default:
		return nil, fmt.Errorf("%w: %q cannot begin a value", ErrUnexpectedChar, b)
	}
}

func (p *parser) string() (*ir.Node, error) {
	b, err := p.cur.PeekNonWhite()
	if err != nil {
		return nil, fmt.Errorf("%w: expecting a string", ErrUnexpectedEOF)
	}
	if b != '"' {
		return nil, fmt.Errorf("%w: string must begin with '\"', got %q", ErrIllegalStart, b)
	}
	p.cur.Skip(1)
	var buf []byte
	for {
		c, err := p.cur.Next()
		if err != nil {
			return nil, fmt.Errorf("%w: unterminated string", ErrUnexpectedEOF)
		}
		switch c {
		case '"':
			return ir.FromString(string(buf)), nil
		case '\\':
			dec, n, err := token.DecodeEscape(p.cur.Rest())
			if err != nil {
				if errors.Is(err, token.ErrUnexpectedEOF) {
					return nil, fmt.Errorf("%w: unterminated escape", ErrUnexpectedEOF)
				}
				if errors.Is(err, token.ErrBadUnicode) {
					return nil, fmt.Errorf("%w: malformed \\u sequence", ErrBadEscape)
				}
				rest := p.cur.Rest()
				return nil, fmt.Errorf("%w: \\%q", ErrBadEscape, rest[0])
			}
			p.cur.Skip(n)
			buf = append(buf, dec...)
		default:
			buf = append(buf, c)
		}
	}
}

func (p *parser) number() (*ir.Node, error) {
	p.cur.SkipWhite()
	rest := p.cur.Rest()
	n := token.ScanNumber(rest)
	if n == 0 {
		return nil, fmt.Errorf("%w: no numeric prefix in %q", ErrNumber, preview(rest))
	}
	f, err := strconv.ParseFloat(string(rest[:n]), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNumber, rest[:n])
	}
	p.cur.Skip(n)
	return ir.FromFloat(f), nil
}

func (p *parser) boolean() (*ir.Node, error) {
	p.cur.SkipWhite()
	switch {
	case p.hasPrefix("true"):
		p.cur.Skip(len("true"))
		return ir.FromBool(true), nil
	case p.hasPrefix("false"):
		p.cur.Skip(len("false"))
		return ir.FromBool(false), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidBool, preview(p.cur.Rest()))
	}
}

func (p *parser) null() (*ir.Node, error) {
	p.cur.SkipWhite()
	if !p.hasPrefix("null") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNull, preview(p.cur.Rest()))
	}
	p.cur.Skip(len("null"))
	return ir.Null(), nil
}

func (p *parser) object() (*ir.Node, error) {
	b, err := p.cur.PeekNonWhite()
	if err != nil {
		return nil, fmt.Errorf("%w: expecting an object", ErrUnexpectedEOF)
	}
	if b != '{' {
		return nil, fmt.Errorf("%w: object must begin with '{', got %q", ErrIllegalStart, b)
	}
	p.cur.Skip(1)
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()

	obj := &ir.Node{
		Type:   ir.ObjectType,
		Fields: []*ir.Node{},
		Values: []*ir.Node{},
	}
	b, err = p.cur.PeekNonWhite()
	if err != nil {
		return nil, fmt.Errorf("%w: in object", ErrUnexpectedEOF)
	}
	if b == '}' {
		p.cur.Skip(1)
		return obj, nil
	}
	for {
		key, err := p.string()
		if err != nil {
			return nil, err
		}
		sep, err := p.cur.NextNonWhite()
		if err != nil {
			return nil, fmt.Errorf("%w: in object, after key %q", ErrUnexpectedEOF, key.String)
		}
		if sep != ':' {
			return nil, fmt.Errorf("%w: expected ':' after key %q, got %q",
				ErrIllegalSeparator, key.String, sep)
		}
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		// later duplicate keys overwrite earlier ones
		ir.Set(obj, key.String, val)
		b, err = p.cur.NextNonWhite()
		if err != nil {
			return nil, fmt.Errorf("%w: in object", ErrUnexpectedEOF)
		}
		switch b {
		case ',':
		case '}':
			return obj, nil
		default:
			return nil, fmt.Errorf("%w: expected ',' or '}' in object, got %q",
				ErrUnexpectedChar, b)
		}
	}
}

func (p *parser) array() (*ir.Node, error) {
	b, err := p.cur.PeekNonWhite()
	if err != nil {
		return nil, fmt.Errorf("%w: expecting an array", ErrUnexpectedEOF)
	}
	if b != '[' {
		return nil, fmt.Errorf("%w: array must begin with '[', got %q", ErrIllegalStart, b)
	}
	p.cur.Skip(1)
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()

	arr := &ir.Node{
		Type:   ir.ArrayType,
		Values: []*ir.Node{},
	}
	b, err = p.cur.PeekNonWhite()
	if err != nil {
		return nil, fmt.Errorf("%w: in array", ErrUnexpectedEOF)
	}
	if b == ']' {
		p.cur.Skip(1)
		return arr, nil
	}
	for {
		elt, err := p.value()
		if err != nil {
			return nil, err
		}
		ir.Append(arr, elt)
		b, err = p.cur.NextNonWhite()
		if err != nil {
			return nil, fmt.Errorf("%w: in array", ErrUnexpectedEOF)
		}
		switch b {
		case ',':
		case ']':
			return arr, nil
		default:
			return nil, fmt.Errorf("%w: expected ',' or ']' in array, got %q",
				ErrUnexpectedChar, b)
		}
	}
}

func (p *parser) hasPrefix(lit string) bool {
	rest := p.cur.Rest()
	if len(rest) < len(lit) {
		return false
	}
	return string(rest[:len(lit)]) == lit
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func preview(d []byte) []byte {
	const n = 10
	if len(d) > n {
		return d[:n]
	}
	return d
}
