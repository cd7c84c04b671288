// Package ir provides the intermediate representation (IR) for S-expression
// documents.
//
// # Overview
//
// All S-expression values (whether parsed from text or created
// programmatically) are represented as ir.Node trees.  The IR works as a
// recursive tagged union: a Node's Type selects which of its fields are
// meaningful.
//
// # Node Types
//
//   - Atoms: nil marker, null (the empty list), boolean, number, character,
//     string, symbol, keyword, byte vector
//   - Composites: cons cell (Car/Cdr slots), vector (ordered elements)
//
// Atoms own no child values; cons cells and vectors own the values in their
// slots.  Ownership forms a finite tree under single ownership: a node is
// the root or belongs to exactly one slot, never shared, never cyclic.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	sym := ir.FromSymbol("answer")
//	num := ir.FromInt(42)
//	list := ir.FromList([]*ir.Node{sym, num})
//	vec := ir.FromSlice([]*ir.Node{ir.FromBool(true), ir.Null()})
//
// # Destroying Nodes
//
// Deep trees (a million-cell list, a vector nest thousands of levels deep)
// must not be dismantled by naive recursion: releasing each child before its
// owner costs one stack frame per tree level.  Drop and Dropper walk the
// tree iteratively in constant auxiliary memory instead; see drop.go and
// package deepdrop.
package ir
