package deepdrop

import "fmt"

// SetParent is the result of Node.SetParentAtIndex0.
type SetParent int

const (
	// SetParentNo reports that the node has no slot 0 to store the parent
	// in; the caller keeps the parent.
	SetParentNo SetParent = iota
	// SetParentYes reports that slot 0 held a leaf, which the node has
	// finalized, and now holds the parent.
	SetParentYes
	// SetParentYesReplacedChild reports that slot 0 held a branch value,
	// now displaced and handed back; it must still be visited.
	SetParentYesReplacedChild
)

// Node is the child-slot capability a tree node type exposes to Drop.  T is
// the node type itself, typically a small value or pointer.
//
// The contract mirrors single ownership: a take operation detaches the
// returned child from its slot, leaving a trivially-finalizable placeholder,
// so the tree stays well-formed at every intermediate step.
type Node[T any] interface {
	// SetParentAtIndex0 stores parent into the node's slot 0.  Any leaf
	// previously in slot 0 is finalized by the node.
	SetParentAtIndex0(parent T) (SetParent, T)
	// TakeChildAtIndex0 detaches and returns the branch value in slot 0,
	// or reports false if slot 0 is absent or holds a leaf.
	TakeChildAtIndex0() (T, bool)
	// TakeNextChildAtPosIndex detaches and returns the next unvisited
	// branch child beyond slot 0, or reports false when none remain.
	// Leaves encountered beyond slot 0 are finalized by the node.
	TakeNextChildAtPosIndex() (T, bool)
	// Finalize releases the node itself.  All of its remaining children,
	// if any, are leaves.
	Finalize()
}

// Drop dismantles the tree rooted at root, finalizing every transitively
// owned node exactly once, in O(nodes) time and O(1) auxiliary memory.
//
// Instead of a traversal stack, the walk threads "return to parent" links
// through the trees' own vacated slot-0 positions: descending from a node
// into a child stores the node in the child's slot 0, and ascending takes
// it back out.  The root's slot 0 is never repurposed this way, so taking
// from it after the root's children are exhausted yields nothing and ends
// the walk.
//
// Drop has no error path.  It assumes the Node contract holds; a violation
// (say, a slot reported non-empty yielding no child) is an internal
// consistency bug in the node type, not a recoverable condition.
func Drop[T Node[T]](root T) {
	cur := root
	if child, ok := cur.TakeChildAtIndex0(); ok {
		cur = link(cur, child)
	}
	for {
		if next, ok := cur.TakeNextChildAtPosIndex(); ok {
			cur = link(cur, next)
			continue
		}
		// no owned branch children remain below cur; recover the
		// ancestor stored in its slot 0, if any, and finalize
		parent, ok := cur.TakeChildAtIndex0()
		cur.Finalize()
		if !ok {
			// ascended past the root
			return
		}
		cur = parent
	}
}

// link records parent as child's ancestor in the child's slot 0 and returns
// the node the walk continues at.  When storing the link displaces a branch
// out of slot 0, the displaced child is linked in turn, with the displacing
// node as its ancestor, so it is visited before the walk returns above it.
func link[T Node[T]](parent, child T) T {
	for {
		st, displaced := child.SetParentAtIndex0(parent)
		switch st {
		case SetParentNo:
			// childless branch: nothing below it to visit
			child.Finalize()
			return parent
		case SetParentYes:
			return child
		case SetParentYesReplacedChild:
			parent, child = child, displaced
		default:
			panic(fmt.Sprintf("deepdrop: invalid SetParent %d", int(st)))
		}
	}
}
