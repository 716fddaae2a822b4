// Package eval evaluates expressions against parsed documents.
//
// Expressions use expr-lang syntax and see the document as `doc` in
// Go-native form:
//
//	node, _ := parse.ParseString(`{"users": [{"name": "alice"}]}`)
//	res, err := eval.Eval(node, `doc.users[0].name`)
//	// res is the string node "alice"
package eval

import (
	"errors"
	"fmt"

	"github.com/objson/go-objson/debug"
	"github.com/objson/go-objson/ir"

	"github.com/expr-lang/expr"
)

var ErrEval = errors.New("eval error")

// Eval compiles src and runs it with the document bound as doc. The
// result converts back to a node via ir.FromAny; expressions yielding
// values with no JSON representation (funcs, channels) fail.
func Eval(doc *ir.Node, src string) (*ir.Node, error) {
	if debug.Eval() {
		debug.Logf("eval: %s\n", src)
	}
	env := map[string]any{
		"doc": ir.ToAny(doc),
	}
	prg, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, src, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: running %q: %w", ErrEval, src, err)
	}
	node, err := ir.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return node, nil
}
