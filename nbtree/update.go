package nbtree

import "cmp"

// state is the per-internal-node update state that publishes an in-flight
// insert or delete, and reserves the node against conflicting operations
// until it clears back to CLEAN.
type state uint8

const (
	// clean means no operation currently owns this node.
	clean state = iota
	// iflag reserves a node as the parent of an in-flight insert.
	iflag
	// dflag reserves a node as the grandparent of an in-flight delete.
	dflag
	// mark is terminal: the node is the parent of a completed delete and
	// is about to be unlinked by the grandparent.
	mark
)

func (s state) String() string {
	switch s {
	case clean:
		return "CLEAN"
	case iflag:
		return "IFLAG"
	case dflag:
		return "DFLAG"
	case mark:
		return "MARK"
	default:
		return "UNKNOWN"
	}
}

// operationInfo is a tagged variant of Insert(insertInfo) | Delete(deleteInfo).
// The active variant is implied by the enclosing update's state: iflag means
// insert is populated, dflag and mark mean del is populated.
type operationInfo[K cmp.Ordered] struct {
	insert *insertInfo[K]
	del    *deleteInfo[K]
}

// update is the immutable (state, info) pair published into an internal
// node's upd field. A new update value is allocated for every transition;
// the old one is never mutated, so a pointer CAS on internalData.upd is
// equivalent to a double-word CAS on (info, state) taken together.
type update[K cmp.Ordered] struct {
	state state
	info  operationInfo[K]
}

// insertInfo describes an in-flight insert: the parent under which a leaf is
// being replaced by a freshly built two-leaf subtree.
type insertInfo[K cmp.Ordered] struct {
	parent      *node[K] // wrapper for the internal node being flagged
	newInternal *node[K] // wrapper for the new 3-node subtree's root
	oldLeaf     *node[K] // the leaf being spliced out
}

// deleteInfo describes an in-flight delete. grandparent is flagged (DFLAG)
// first; once parent is successfully marked, the pair (parent, leaf) is
// spliced out of grandparent in a single CAS.
type deleteInfo[K cmp.Ordered] struct {
	grandparent  *node[K]
	parent       *node[K]
	leaf         *node[K]
	parentUpdate *update[K] // the CLEAN update observed at parent during search

	// grandparentUpdate is the DFLAG update installed on grandparent for
	// this delete. helpMarked needs it as the expected value of the
	// grandparent's clearing CAS; the MARK update handed to helpMarked
	// lives on parent, not grandparent, so it can't serve that role itself.
	grandparentUpdate *update[K]
}
