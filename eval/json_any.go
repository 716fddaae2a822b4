package eval

import (
	"encoding/json"

	"github.com/objson/go-objson/ir"
)

// MarshalJSON renders node as wire-safe JSON bytes through its Go-native
// form. Unlike encode, the output always escapes string contents, so it
// suits interop with libraries that re-parse their input.
func MarshalJSON(node *ir.Node) ([]byte, error) {
	return json.Marshal(ir.ToAny(node))
}

// UnmarshalJSON converts JSON bytes back to a node through the Go-native
// form.
func UnmarshalJSON(d []byte) (*ir.Node, error) {
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return ir.FromAny(v)
}
