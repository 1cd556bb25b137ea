package nbtree

// help dispatches on the state carried by upd, cooperatively completing
// whatever operation it describes. It is a no-op for a CLEAN update,
// which can be observed when two goroutines race to help the same
// already-completed operation.
func (t *Tree[K]) help(upd *update[K]) {
	switch upd.state {
	case iflag:
		t.helpInsert(upd)
	case dflag:
		t.helpDelete(upd)
	case mark:
		t.helpMarked(upd)
	case clean:
		// Nothing to do; the operation already completed.
	}
}

// helpInsert performs the child-splice-then-clear sequence that completes
// an insert. It is idempotent: only the goroutine that wins the child CAS
// gets to increment the size counter, and the clear CAS at the end succeeds
// exactly once no matter how many goroutines call helpInsert with the same
// upd.
func (t *Tree[K]) helpInsert(upd *update[K]) {
	ins := upd.info.insert

	slot := childSlot(ins.parent, ins.oldLeaf.leaf.key)
	if slot.CompareAndSwap(ins.oldLeaf, ins.newInternal) {
		t.count.Add(1)
	}

	// The clear CAS preserves the info field's identity (same *insertInfo)
	// while transitioning state back to CLEAN; only helpers that still see
	// the IFLAG update perform it, so the increment above and the
	// transition below can't be split across two logical inserts.
	cleared := &update[K]{state: clean, info: upd.info}
	ins.parent.internal.upd.CompareAndSwap(upd, cleared)
}

// helpDelete attempts to mark the parent, the first of the two CASes that
// make a delete durable. It reports whether the delete completed; on a
// false result the parent could not be marked, helpDelete has already
// backtracked (unflagged the grandparent), and the caller retries the
// whole delete from the root.
func (t *Tree[K]) helpDelete(upd *update[K]) bool {
	del := upd.info.del

	marked := &update[K]{state: mark, info: upd.info}
	if del.parent.internal.upd.CompareAndSwap(del.parentUpdate, marked) {
		t.helpMarked(marked)
		return true
	}

	// Someone else changed the parent's state first; help them, then
	// backtrack: unflag the grandparent so this key can be retried.
	t.help(del.parent.internal.upd.Load())
	backtracked := &update[K]{state: clean, info: upd.info}
	del.grandparent.internal.upd.CompareAndSwap(del.grandparentUpdate, backtracked)
	return false
}

// helpMarked splices the marked parent (and the leaf beneath it) out of the
// grandparent in one atomic step, then clears the grandparent's DFLAG.
// MARK is terminal for del.parent: it will never transition again, so this
// step is safe to run any number of times concurrently.
//
// upd is the MARK update, which lives on parent, not grandparent, so it
// cannot be the expected value of the grandparent's clearing CAS below;
// del.grandparentUpdate is the DFLAG update actually installed on
// grandparent back in Delete, and is what that CAS must expect.
func (t *Tree[K]) helpMarked(upd *update[K]) {
	del := upd.info.del

	var sibling *node[K]
	if del.parent.internal.right.Load() == del.leaf {
		sibling = del.parent.internal.left.Load()
	} else {
		sibling = del.parent.internal.right.Load()
	}

	slot := childSlot(del.grandparent, del.parent.internal.key)
	if slot.CompareAndSwap(del.parent, sibling) {
		t.count.Add(-1)
	}

	cleared := &update[K]{state: clean, info: upd.info}
	del.grandparent.internal.upd.CompareAndSwap(del.grandparentUpdate, cleared)
}
