// Package sexp is the convenience surface of go-sexp: parse S-expression
// text, print it back, and destroy deep values safely.
//
// The heavy lifting lives in the subpackages: ir holds the value
// representation, parse and encode the text surface, and deepdrop the
// stack-safe destruction driver that ir's Drop and Dropper build on.
package sexp

import (
	"github.com/signadot/sexp-format/go-sexp/encode"
	"github.com/signadot/sexp-format/go-sexp/ir"
	"github.com/signadot/sexp-format/go-sexp/parse"
)

// Parse parses one S-expression.
func Parse(d []byte) (*ir.Node, error) {
	return parse.Parse(d)
}

// ParseString parses one S-expression from a string.
func ParseString(s string) (*ir.Node, error) {
	return parse.ParseString(s)
}

// MustParse parses one S-expression and panics on error.  Intended for
// literals in tests and setup code.
func MustParse(s string) *ir.Node {
	n, err := parse.ParseString(s)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the text of n.
func String(n *ir.Node) string {
	return encode.MustString(n)
}

// Equal reports structural equality.
func Equal(a, b *ir.Node) bool {
	return ir.Equal(a, b)
}

// Drop destroys the tree rooted at root without recursing, so values of
// untrusted depth cannot exhaust the stack.  See ir.Drop and ir.Dropper.
func Drop(root *ir.Node) {
	ir.Drop(root)
}
