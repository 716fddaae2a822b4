package objson

import (
	"fmt"

	"github.com/objson/go-objson/eval"
	"github.com/objson/go-objson/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch applies patch to doc per RFC 7386 and returns the result.
// Neither input is modified.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	docBytes, err := eval.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	patchBytes, err := eval.MarshalJSON(patch)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(docBytes, patchBytes)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return eval.UnmarshalJSON(out)
}
