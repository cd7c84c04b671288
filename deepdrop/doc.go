// Package deepdrop dismantles arbitrarily deep trees of singly-owned nodes
// without using call-stack depth proportional to the tree's depth.
//
// Naive teardown of a recursively-shaped value releases each owned child
// before its owner, one stack frame per tree level; for degenerate trees
// (a long chain of two-slot cells, a deeply nested vector-of-vectors) that
// recursion exhausts the stack.  Drop walks the same tree iteratively,
// reusing each node's vacated slot 0 to hold the link back to its parent,
// so the auxiliary memory is constant no matter how deep the tree is.
//
// Tree node types opt in by implementing the Node capability; see the ir
// package for the S-expression adapter.
package deepdrop
