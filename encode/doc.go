// Package encode writes IR nodes as S-expression text.
//
// # Usage
//
//	// Encode to a writer
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode in color
//	err := encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
//	// Encode to a string, panicking on bad input
//	s := encode.MustString(node)
//
// # Related Packages
//
//   - github.com/signadot/sexp-format/go-sexp/ir - IR representation
//   - github.com/signadot/sexp-format/go-sexp/parse - Parse text to IR
package encode
