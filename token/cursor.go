package token

// Cursor is a forward-only, single-pass view over input bytes. It supports
// one byte of lookahead and never backtracks. One parse call owns its
// cursor exclusively.
type Cursor struct {
	d []byte
	i int
}

func NewCursor(d []byte) *Cursor {
	return &Cursor{d: d}
}

// Len returns the number of unconsumed bytes.
func (c *Cursor) Len() int {
	return len(c.d) - c.i
}

// Rest returns the unconsumed remainder without consuming it.
func (c *Cursor) Rest() []byte {
	return c.d[c.i:]
}

// Skip consumes n bytes. It panics if fewer than n remain.
func (c *Cursor) Skip(n int) {
	if c.Len() < n {
		panic("cursor: skip past end of input")
	}
	c.i += n
}

// Next consumes and returns the next byte.
func (c *Cursor) Next() (byte, error) {
	if c.i >= len(c.d) {
		return 0, ErrUnexpectedEOF
	}
	b := c.d[c.i]
	c.i++
	return b, nil
}

// Peek returns the next byte without consuming it.
func (c *Cursor) Peek() (byte, error) {
	if c.i >= len(c.d) {
		return 0, ErrUnexpectedEOF
	}
	return c.d[c.i], nil
}

// SkipWhite discards consecutive whitespace bytes (space, tab, newline,
// carriage return).
func (c *Cursor) SkipWhite() {
	for c.i < len(c.d) && isWhite(c.d[c.i]) {
		c.i++
	}
}

// PeekNonWhite discards whitespace and returns the first non-whitespace
// byte without consuming it.
func (c *Cursor) PeekNonWhite() (byte, error) {
	c.SkipWhite()
	return c.Peek()
}

// NextNonWhite discards whitespace, then consumes and returns the first
// non-whitespace byte.
func (c *Cursor) NextNonWhite() (byte, error) {
	c.SkipWhite()
	return c.Next()
}

func isWhite(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
