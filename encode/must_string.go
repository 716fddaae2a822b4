package encode

import (
	"bytes"

	"github.com/objson/go-objson/ir"
)

func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

// Describe renders the diagnostic form "<type>:<text>", for debugging and
// CLI output rather than serialization.
func Describe(node *ir.Node) string {
	return node.Type.String() + ":" + MustString(node)
}
