// Package objson is the facade over the JSON value model, parser, and
// encoder. Most callers need only this package:
//
//	node, err := objson.ParseString(`{"a": [1, 2]}`)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(objson.MustString(node))
//
// The subpackages ir, parse, and encode expose the full surfaces.
package objson

import (
	"github.com/objson/go-objson/encode"
	"github.com/objson/go-objson/ir"
	"github.com/objson/go-objson/parse"
)

// Parse parses one document from d.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// ParseString parses one document from v.
func ParseString(v string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseString(v, opts...)
}

// MustString renders node as canonical text, panicking on an invalid
// tree.
func MustString(node *ir.Node) string {
	return encode.MustString(node)
}

// Describe renders node as "<type>:<text>".
func Describe(node *ir.Node) string {
	return encode.Describe(node)
}

// Equal reports deep equality of two values.
func Equal(a, b *ir.Node) bool {
	return ir.Equal(a, b)
}
