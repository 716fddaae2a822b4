// Package ir provides the in-memory representation of JSON documents.
//
// # Overview
//
// All documents (whether parsed from text or created programmatically) are
// represented as ir.Node trees. A node is a tagged union: its Type field
// names the active variant, and exactly one payload field is meaningful
// for that variant.
//
//	NullType        no payload
//	BoolType        Bool
//	NumberType      Float64 (IEEE-754 double; textual form is not kept)
//	StringType      String  (already unescaped, no backslash sequences)
//	ObjectType      Fields/Values parallel key and value nodes
//	ArrayType       Values
//
// A node exclusively owns its subtree. There is no sharing and no cycles;
// Parent, ParentIndex and ParentField exist only for navigation and are
// maintained by the constructors.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromFloat(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromFloat(1),
//	    ir.FromFloat(2),
//	})
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there are always the same number of fields as values. Keys are
// unique; Set overwrites in place.
//
// # Comparison and Hashing
//
// Nodes can be compared for deep equality:
//
//	equal := ir.Equal(a, b)
//
// Array equality is order-sensitive, object equality is not, and numbers
// are floating-point exact. Hash is consistent with Equal.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone
// nodes for each goroutine.
//
// # Related Packages
//
//   - github.com/objson/go-objson/parse - Parses text into nodes
//   - github.com/objson/go-objson/encode - Encodes nodes to text
package ir
