// Package parse parses JSON text into ir nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, 2, 3]`)
//
//	// Cap nesting depth on untrusted input
//	node, err := parse.Parse(data, parse.MaxDepth(128))
//
// A document is one top-level value plus optional surrounding whitespace
// and nothing else. Parsing is fail-fast: the first grammar violation
// aborts with an error from the closed set in errs.go, and there is no
// partial result. Error messages reference the offending byte or expected
// token only; there is no line/column tracking.
//
// # Related Packages
//
//   - github.com/objson/go-objson/ir - value representation
//   - github.com/objson/go-objson/encode - encode nodes to text
//   - github.com/objson/go-objson/token - cursor and lexical utilities
package parse
