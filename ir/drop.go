package ir

import (
	"fmt"
	"io"

	"github.com/signadot/sexp-format/go-sexp/debug"
	"github.com/signadot/sexp-format/go-sexp/deepdrop"
)

// Drop releases every node in the tree rooted at root exactly once, using
// deepdrop.Drop so that destroying a deep value (a long list, a long chain
// of cons cells) cannot exhaust the call stack.
//
// Drop takes ownership of root: the tree must not be observed afterwards,
// and no other reader or writer may hold any part of it while Drop runs.
func Drop(root *Node, opts ...DropOption) {
	if root == nil {
		return
	}
	o := &dropOpts{}
	for _, f := range opts {
		f(o)
	}
	deepdrop.Drop(dropNode{n: root, opts: o})
	if debug.Drop() {
		debug.Logf("ir: dropped %d nodes (%d leaves)\n", o.nodes, o.leaves)
	}
}

type DropOption func(*dropOpts)

// DropLeafFunc calls f for each leaf node released during the drop.
func DropLeafFunc(f func(*Node)) DropOption {
	return func(o *dropOpts) { o.onLeaf = f }
}

// DropNodeFunc calls f for every node released during the drop, leaves and
// branches alike.
func DropNodeFunc(f func(*Node)) DropOption {
	return func(o *dropOpts) { o.onNode = f }
}

// DropPool returns released nodes to p for reuse.
func DropPool(p *NodePool) DropOption {
	return func(o *dropOpts) { o.pool = p }
}

type dropOpts struct {
	onLeaf func(*Node)
	onNode func(*Node)
	pool   *NodePool

	nodes, leaves int
}

// Dropper wraps a single owned value so that ending its lifetime runs the
// stack-safe destruction path instead of leaving a deep tree to the garbage
// collector's mercy and any pooled nodes unrecycled.  Ownership of the root
// transfers to the Dropper at wrap time.
//
// The zero Dropper and the nil Dropper close trivially.  Close is
// idempotent and never fails; it satisfies io.Closer so the usual
//
//	defer ir.NewDropper(root).Close()
//
// pattern bounds the value's lifetime to the enclosing scope.
type Dropper struct {
	root *Node
	opts []DropOption
}

var _ io.Closer = (*Dropper)(nil)

func NewDropper(root *Node, opts ...DropOption) *Dropper {
	return &Dropper{root: root, opts: opts}
}

func (d *Dropper) Close() error {
	if d == nil || d.root == nil {
		return nil
	}
	root := d.root
	d.root = nil
	Drop(root, d.opts...)
	return nil
}

// dropNode adapts *Node to the deepdrop child-slot capability.  Slot 0 is
// the car of a cons cell or element 0 of a vector; a vacated slot holds nil,
// the placeholder nothing else observes mid-drop.
type dropNode struct {
	n    *Node
	opts *dropOpts
}

var _ deepdrop.Node[dropNode] = dropNode{}

func (d dropNode) wrap(n *Node) dropNode {
	return dropNode{n: n, opts: d.opts}
}

// slot0 returns the address of the node's slot 0, or nil if the node has
// none (every atom, and the zero-length vector).
func (d dropNode) slot0() **Node {
	switch d.n.Type {
	case ConsType:
		return &d.n.Car
	case VectorType:
		if len(d.n.Values) == 0 {
			return nil
		}
		return &d.n.Values[0]
	case NilType,
		NullType,
		BoolType,
		NumberType,
		CharType,
		StringType,
		SymbolType,
		KeywordType,
		BytesType:
		return nil
	}
	panic(fmt.Sprintf("ir: drop on invalid type %d", int(d.n.Type)))
}

func (d dropNode) SetParentAtIndex0(parent dropNode) (deepdrop.SetParent, dropNode) {
	slot := d.slot0()
	if slot == nil {
		return deepdrop.SetParentNo, dropNode{}
	}
	prev := *slot
	*slot = parent.n
	if prev.IsBranch() {
		return deepdrop.SetParentYesReplacedChild, d.wrap(prev)
	}
	d.releaseLeaf(prev)
	return deepdrop.SetParentYes, dropNode{}
}

func (d dropNode) TakeChildAtIndex0() (dropNode, bool) {
	slot := d.slot0()
	if slot == nil || !(*slot).IsBranch() {
		return dropNode{}, false
	}
	child := *slot
	*slot = nil
	return d.wrap(child), true
}

func (d dropNode) TakeNextChildAtPosIndex() (dropNode, bool) {
	switch d.n.Type {
	case ConsType:
		// the tail slot is the single candidate; a tail leaf stays in
		// place and goes with the cell
		if !d.n.Cdr.IsBranch() {
			return dropNode{}, false
		}
		next := d.n.Cdr
		d.n.Cdr = nil
		return d.wrap(next), true
	case VectorType:
		// pop trailing leaves; element 0 carries the ancestor link and
		// is never popped here
		for len(d.n.Values) >= 2 {
			last := len(d.n.Values) - 1
			next := d.n.Values[last]
			d.n.Values = d.n.Values[:last]
			if next.IsBranch() {
				return d.wrap(next), true
			}
			d.releaseLeaf(next)
		}
		return dropNode{}, false
	case NilType,
		NullType,
		BoolType,
		NumberType,
		CharType,
		StringType,
		SymbolType,
		KeywordType,
		BytesType:
		return dropNode{}, false
	}
	panic(fmt.Sprintf("ir: drop on invalid type %d", int(d.n.Type)))
}

func (d dropNode) Finalize() {
	n := d.n
	switch n.Type {
	case ConsType:
		d.releaseLeaf(n.Car)
		d.releaseLeaf(n.Cdr)
		n.Car, n.Cdr = nil, nil
	case VectorType:
		for i, v := range n.Values {
			d.releaseLeaf(v)
			n.Values[i] = nil
		}
		n.Values = nil
	case NilType,
		NullType,
		BoolType,
		NumberType,
		CharType,
		StringType,
		SymbolType,
		KeywordType,
		BytesType:
		d.leafHook(n)
	default:
		panic(fmt.Sprintf("ir: drop on invalid type %d", int(n.Type)))
	}
	d.reclaim(n)
}

// releaseLeaf finalizes a leaf found in a slot of the current node.  The
// driver's invariants guarantee no branch is ever left behind in a slot it
// finalizes around; a branch here is a fatal defect, not an error.
func (d dropNode) releaseLeaf(n *Node) {
	if n == nil {
		return
	}
	if n.IsBranch() {
		panic(fmt.Sprintf("ir: drop invariant violated: unvisited %s child", n.Type))
	}
	d.leafHook(n)
	d.reclaim(n)
}

func (d dropNode) leafHook(n *Node) {
	d.opts.leaves++
	if d.opts.onLeaf != nil {
		d.opts.onLeaf(n)
	}
}

func (d dropNode) reclaim(n *Node) {
	d.opts.nodes++
	if d.opts.onNode != nil {
		d.opts.onNode(n)
	}
	if d.opts.pool != nil {
		d.opts.pool.Put(n)
	}
}
