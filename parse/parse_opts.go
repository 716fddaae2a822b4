package parse

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// MaxDepth caps object/array nesting at n. The default (0) imposes no
// limit; recursion depth then tracks document nesting depth, bounded only
// by stack.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
