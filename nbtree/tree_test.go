package nbtree

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
)

const (
	minSentinel = math.MaxInt32 - 1
	maxSentinel = math.MaxInt32
)

func newIntTree(t testing.TB) *Tree[int] {
	t.Helper()
	tree, err := New(minSentinel, maxSentinel)
	qt.Assert(t, err, qt.IsNil)
	return tree
}

func TestNewRejectsUnorderedSentinels(t *testing.T) {
	c := qt.New(t)
	_, err := New(5, 5)
	c.Assert(err, qt.ErrorIs, ErrInvalidArgument)

	_, err = New(5, 4)
	c.Assert(err, qt.ErrorIs, ErrInvalidArgument)
}

func TestOperationsRejectKeysAtOrAboveSentinel1(t *testing.T) {
	c := qt.New(t)
	tree := newIntTree(t)

	_, err := tree.Insert(minSentinel)
	c.Assert(err, qt.ErrorIs, ErrInvalidArgument)

	_, err = tree.Contains(maxSentinel)
	c.Assert(err, qt.ErrorIs, ErrInvalidArgument)

	_, err = tree.Delete(minSentinel + 1)
	c.Assert(err, qt.ErrorIs, ErrInvalidArgument)
}

func TestInsertSequential(t *testing.T) {
	c := qt.New(t)
	tree := newIntTree(t)

	for _, k := range []int{3, 4, 5, 6, 7} {
		ok, err := tree.Insert(k)
		c.Assert(err, qt.IsNil)
		c.Assert(ok, qt.IsTrue)
	}

	snap, err := tree.Snapshot()
	c.Assert(err, qt.IsNil)
	c.Assert(snap, qt.DeepEquals, []int{3, 4, 5, 6, 7})

	found, _ := tree.Contains(5)
	c.Assert(found, qt.IsTrue)
	found, _ = tree.Contains(8)
	c.Assert(found, qt.IsFalse)
}

func TestInsertThenDelete(t *testing.T) {
	c := qt.New(t)
	tree := newIntTree(t)

	for _, k := range []int{5, 3, 7, 1, 9} {
		_, err := tree.Insert(k)
		c.Assert(err, qt.IsNil)
	}

	ok, err := tree.Delete(5)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)

	snap, _ := tree.Snapshot()
	c.Assert(snap, qt.DeepEquals, []int{1, 3, 7, 9})

	found, _ := tree.Contains(5)
	c.Assert(found, qt.IsFalse)
}

func TestInsertIsIdempotent(t *testing.T) {
	c := qt.New(t)
	tree := newIntTree(t)

	ok, err := tree.Insert(10)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)

	ok, err = tree.Insert(10)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsFalse)

	ok, err = tree.Delete(10)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)

	ok, err = tree.Delete(10)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsFalse)

	found, _ := tree.Contains(10)
	c.Assert(found, qt.IsFalse)
}

func TestDeleteEmptiesBackToInitialShape(t *testing.T) {
	c := qt.New(t)
	tree := newIntTree(t)

	_, err := tree.Insert(42)
	c.Assert(err, qt.IsNil)
	_, err = tree.Delete(42)
	c.Assert(err, qt.IsNil)

	snap, _ := tree.Snapshot()
	c.Assert(len(snap), qt.Equals, 0)
	c.Assert(tree.Size(), qt.Equals, int64(0))

	// The initial two-sentinel configuration: root routes on sentinel2,
	// with sentinel1 and sentinel2 as its two leaves.
	c.Assert(tree.root.isLeaf(), qt.IsFalse)
	c.Assert(tree.root.internal.key, qt.Equals, maxSentinel)
	left := tree.root.internal.left.Load()
	right := tree.root.internal.right.Load()
	c.Assert(left.isLeaf(), qt.IsTrue)
	c.Assert(left.leaf.key, qt.Equals, minSentinel)
	c.Assert(right.isLeaf(), qt.IsTrue)
	c.Assert(right.leaf.key, qt.Equals, maxSentinel)

	// No descriptor should be left behind on the root once the delete has
	// quiesced.
	c.Assert(tree.root.internal.upd.Load().state, qt.Equals, clean)
}

func TestSentinelsAreNeverVisible(t *testing.T) {
	c := qt.New(t)
	tree := newIntTree(t)

	for _, k := range []int{1, 2, 3} {
		_, err := tree.Insert(k)
		c.Assert(err, qt.IsNil)
	}

	snap, _ := tree.Snapshot()
	for _, k := range snap {
		c.Assert(k, qt.Not(qt.Equals), minSentinel)
		c.Assert(k, qt.Not(qt.Equals), maxSentinel)
	}
	c.Assert(tree.Size(), qt.Equals, int64(3))
}

func TestIteratorOrderingAndRemove(t *testing.T) {
	c := qt.New(t)
	tree := newIntTree(t)

	for _, k := range []int{9, 1, 5, 3, 7} {
		_, err := tree.Insert(k)
		c.Assert(err, qt.IsNil)
	}

	var got []int
	it := tree.Iterator()
	for it.Next() {
		got = append(got, it.Key())
	}
	if diff := cmp.Diff([]int{1, 3, 5, 7, 9}, got); diff != "" {
		t.Fatalf("iterator order mismatch (-want +got):\n%s", diff)
	}

	it = tree.Iterator()
	it.Next()
	it.Key()
	removed, err := it.Remove()
	c.Assert(err, qt.IsNil)
	c.Assert(removed, qt.IsTrue)

	found, _ := tree.Contains(1)
	c.Assert(found, qt.IsFalse)

	_, err = tree.Iterator().Remove()
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestMonotonicSize(t *testing.T) {
	c := qt.New(t)
	tree := newIntTree(t)

	for i := 0; i < 20; i++ {
		_, err := tree.Insert(i)
		c.Assert(err, qt.IsNil)
	}
	c.Assert(tree.Size(), qt.Equals, int64(20))

	for i := 0; i < 5; i++ {
		_, err := tree.Delete(i)
		c.Assert(err, qt.IsNil)
	}
	c.Assert(tree.Size(), qt.Equals, int64(15))
}
