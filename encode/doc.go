// Package encode renders ir nodes as compact JSON text.
//
// # Usage
//
//	var buf bytes.Buffer
//	if err := encode.Encode(node, &buf); err != nil {
//	    return err
//	}
//
//	s := encode.MustString(node)
//	fmt.Println(encode.Describe(node)) // e.g. object:{"a":1}
//
// # Canonical form
//
// Output is compact: no added whitespace, object fields in insertion
// order, arrays in element order. Numbers use Go's default shortest float
// formatting, so the original literal text of a parsed number is not
// reproduced.
//
// String contents are emitted verbatim between double quotes. A string
// value containing '"', '\' or control characters therefore does not
// render as re-parseable text. EncodeEscaped(true) switches to escaped
// output for display and interop surfaces that need to round-trip.
package encode
