package nbtree

import "cmp"

// searchResult is the record produced by a root-to-leaf descent, capturing
// the leaf, its parent and grandparent, and the update state observed on
// each internal node along the way.
type searchResult[K cmp.Ordered] struct {
	leaf        *node[K]
	parent      *node[K] // nil only if the tree has no internal nodes, which never happens
	grandparent *node[K] // nil when parent is the root

	parentUpdate      *update[K]
	grandparentUpdate *update[K] // undefined (nil) when grandparent is nil
}

// search performs the wait-free O(h) descent shared by Contains, Insert and
// Delete. The (info, state) pairs read along the way may be stale by the
// time the caller acts on them; that staleness is what drives the
// help-then-retry loops in Insert and Delete.
func (t *Tree[K]) search(key K) searchResult[K] {
	var gp, p *node[K]
	var gpu, pu *update[K]

	cur := t.root
	for !cur.isLeaf() {
		gp, gpu = p, pu
		p = cur
		pu = p.internal.upd.Load()

		if cmp.Less(key, p.internal.key) {
			cur = p.internal.left.Load()
		} else {
			cur = p.internal.right.Load()
		}
	}

	return searchResult[K]{
		leaf:              cur,
		parent:            p,
		grandparent:       gp,
		parentUpdate:      pu,
		grandparentUpdate: gpu,
	}
}
