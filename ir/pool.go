package ir

import (
	"sync"

	"github.com/signadot/sexp-format/go-sexp/debug"
)

// NodePool recycles Node allocations.  Parsing and rebuilding large
// documents churns through millions of nodes; routing dropped trees back
// into a pool (see DropPool) lets the next build reuse them instead of
// pressuring the garbage collector.
//
// A NodePool is safe for concurrent use.  Nodes are cleared before they are
// pooled, so a Get never observes stale payloads or children.
type NodePool struct {
	p sync.Pool
}

func NewNodePool() *NodePool {
	return &NodePool{
		p: sync.Pool{New: func() any { return &Node{} }},
	}
}

// Get returns a cleared node.
func (p *NodePool) Get() *Node {
	return p.p.Get().(*Node)
}

// Put clears n and returns it to the pool.  The caller must own n
// exclusively; putting a node that is still reachable from a live tree is a
// use-after-free in waiting.
func (p *NodePool) Put(n *Node) {
	if n == nil {
		return
	}
	*n = Node{}
	p.p.Put(n)
	if debug.Pool() {
		debug.Logf("ir: pooled node %p\n", n)
	}
}
