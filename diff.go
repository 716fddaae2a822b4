package objson

import (
	"github.com/objson/go-objson/encode"
	"github.com/objson/go-objson/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff computes a character diff between the escaped canonical encodings
// of from and to. Escaped form is used so the compared texts are
// unambiguous even when string values contain quotes.
func Diff(from, to *ir.Node) []diffpatch.Diff {
	fromText := encode.MustString(from, encode.EncodeEscaped(true))
	toText := encode.MustString(to, encode.EncodeEscaped(true))
	diffCfg := diffpatch.New()
	return diffCfg.DiffMain(fromText, toText, false)
}

// DiffText renders Diff with insertions and deletions marked for
// terminal display.
func DiffText(from, to *ir.Node) string {
	diffCfg := diffpatch.New()
	return diffCfg.DiffPrettyText(Diff(from, to))
}
