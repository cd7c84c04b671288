package parse

import "github.com/signadot/sexp-format/go-sexp/ir"

type ParseOption func(*parseOpts)

type parseOpts struct {
	filename string
	pool     *ir.NodePool
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

// WithFilename names the input in parse errors.
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// WithPool allocates parsed nodes from p instead of the heap.  Pair it with
// ir.DropPool to recycle whole documents.
func WithPool(p *ir.NodePool) ParseOption {
	return func(o *parseOpts) { o.pool = p }
}
