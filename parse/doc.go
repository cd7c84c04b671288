// Package parse parses S-expression text into IR nodes.
//
// # Usage
//
//	// Parse one expression
//	node, err := parse.Parse([]byte(`(answer 42)`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from a string
//	node, err := parse.ParseString(`#(1 2 3)`)
//
//	// Parse with options
//	node, err := parse.Parse(data, parse.WithFilename("config.sexp"))
//
// The surface is the classic S-expression one: proper and dotted lists,
// #(...) vectors, #u8(...) byte vectors, #t/#f, #nil, #\x characters,
// "..." strings, :keywords, symbols, integers and floats, and ; comments.
//
// # Related Packages
//
//   - github.com/signadot/sexp-format/go-sexp/ir - IR representation
//   - github.com/signadot/sexp-format/go-sexp/encode - Encode IR to text
package parse
