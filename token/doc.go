// Package token provides the lexical layer under the parser: a
// forward-only byte cursor, escape decoding, number prefix scanning, and
// string quoting for display surfaces.
package token
