package ir

import (
	rtdebug "runtime/debug"
	"testing"
)

// withSmallStack runs f on a fresh goroutine while the per-goroutine stack
// limit is lowered to 1 MiB, the size the walk must never outgrow no matter
// how deep the dropped tree is.  Naive recursive teardown overflows such a
// stack at a few tens of thousands of levels.
func withSmallStack(t *testing.T, f func()) {
	t.Helper()
	old := rtdebug.SetMaxStack(1 << 20)
	defer rtdebug.SetMaxStack(old)
	done := make(chan struct{})
	go func() {
		defer close(done)
		f()
	}()
	<-done
}

// deepVectorTree builds the rotating-slot vector nest: depth levels of
// 3-element vectors where the nesting position cycles through indexes
// 0, 1, 2, ending in a Nil leaf.
func deepVectorTree(depth int) *Node {
	deep := Nil()
	for i := 0; i < depth; i++ {
		v := []*Node{FromInt(1), FromInt(2), FromInt(3)}
		v[i%3] = deep
		deep = FromSlice(v)
	}
	return deep
}

// consChain builds a proper-list-like chain of n cons cells linked through
// the tail slot, each car a number, ending in a Nil leaf.
func consChain(n int) *Node {
	node := Nil()
	for i := 0; i < n; i++ {
		node = Cons(FromInt(42), node)
	}
	return node
}

func TestDropDeepVectorRotatingSlots(t *testing.T) {
	const depth = 20_000
	var leaves, nodes int
	withSmallStack(t, func() {
		root := deepVectorTree(depth)
		Drop(root,
			DropLeafFunc(func(*Node) { leaves++ }),
			DropNodeFunc(func(*Node) { nodes++ }))
	})
	if want := depth*2 + 1; leaves != want {
		t.Errorf("got %d leaves, want %d", leaves, want)
	}
	if want := depth*3 + 1; nodes != want {
		t.Errorf("got %d nodes, want %d", nodes, want)
	}
}

func TestDropLongConsChain(t *testing.T) {
	const n = 1_000_000
	var leaves int
	withSmallStack(t, func() {
		root := consChain(n)
		Drop(root, DropLeafFunc(func(*Node) { leaves++ }))
	})
	if want := n + 1; leaves != want {
		t.Errorf("got %d leaves, want %d", leaves, want)
	}
}

func TestDropMixedShape(t *testing.T) {
	// cons(vector[cons(leaf, leaf), leaf], leaf): three branch nodes,
	// four leaves, each finalized exactly once
	root := Cons(
		FromSlice([]*Node{
			Cons(FromSymbol("a"), FromInt(1)),
			FromString("s"),
		}),
		FromBool(true),
	)
	seen := map[*Node]int{}
	var leaves, branches int
	Drop(root,
		DropLeafFunc(func(*Node) { leaves++ }),
		DropNodeFunc(func(n *Node) {
			seen[n]++
			if n.Type == ConsType || n.Type == VectorType {
				branches++
			}
		}))
	if leaves != 4 {
		t.Errorf("got %d leaves, want 4", leaves)
	}
	if branches != 3 {
		t.Errorf("got %d branches, want 3", branches)
	}
	for n, c := range seen {
		if c != 1 {
			t.Errorf("node %v finalized %d times", n.Type, c)
		}
	}
	if len(seen) != 7 {
		t.Errorf("got %d distinct nodes, want 7", len(seen))
	}
}

func TestDropLeafOnly(t *testing.T) {
	for _, n := range []*Node{
		FromInt(7),
		FromString("hello"),
		Nil(),
		Null(),
		FromBytes([]byte{1, 2, 3}),
	} {
		var leaves int
		Drop(n, DropLeafFunc(func(*Node) { leaves++ }))
		if leaves != 1 {
			t.Errorf("%s: got %d leaves, want 1", n.Type, leaves)
		}
	}
}

func TestDropEmptyContainers(t *testing.T) {
	var nodes, leaves int
	count := []DropOption{
		DropLeafFunc(func(*Node) { leaves++ }),
		DropNodeFunc(func(*Node) { nodes++ }),
	}
	Drop(FromSlice(nil), count...)
	if nodes != 1 || leaves != 0 {
		t.Errorf("empty vector: got %d nodes %d leaves, want 1, 0", nodes, leaves)
	}
	nodes, leaves = 0, 0
	Drop(Cons(FromInt(1), FromInt(2)), count...)
	if nodes != 3 || leaves != 2 {
		t.Errorf("leaf-only cell: got %d nodes %d leaves, want 3, 2", nodes, leaves)
	}
}

func TestDropNilRoot(t *testing.T) {
	Drop(nil)
}

func TestDropperClose(t *testing.T) {
	var leaves int
	d := NewDropper(consChain(10), DropLeafFunc(func(*Node) { leaves++ }))
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if leaves != 11 {
		t.Errorf("got %d leaves, want 11", leaves)
	}
	// Close is idempotent
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if leaves != 11 {
		t.Errorf("second close released %d more leaves", leaves-11)
	}
	var nilDropper *Dropper
	if err := nilDropper.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDropPoolRecycles(t *testing.T) {
	pool := NewNodePool()
	Drop(consChain(100), DropPool(pool))
	// pooled nodes come back cleared
	for i := 0; i < 100; i++ {
		n := pool.Get()
		if n.Type != NilType || n.Car != nil || n.Cdr != nil || n.Values != nil {
			t.Fatalf("pooled node not cleared: %+v", n)
		}
	}
}

// TestDropRecursiveBaseline exists to demonstrate the problem Drop solves:
// field-by-field recursive teardown of the same trees needs one stack frame
// per level and would overflow the constrained stack used above.  Running it
// would crash the whole test process, which is the point.
func TestDropRecursiveBaseline(t *testing.T) {
	t.Skip("recursive teardown of a 1,000,000-deep chain overflows a 1 MiB stack and kills the process")
	var release func(n *Node)
	release = func(n *Node) {
		if n == nil {
			return
		}
		release(n.Car)
		release(n.Cdr)
		for _, v := range n.Values {
			release(v)
		}
		*n = Node{}
	}
	withSmallStack(t, func() {
		release(consChain(1_000_000))
	})
}
