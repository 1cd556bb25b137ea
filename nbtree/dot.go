package nbtree

import "fmt"

// DotGraph renders the tree's current structure as a Graphviz DOT graph,
// labeling internal nodes with their routing key and leaves with their
// stored key. The two sentinel nodes are labeled DUMMY1/DUMMY2 and the root
// is labeled ROOT, matching the debugging visualization the algorithm's
// original test harness produced. This is a point-in-time, non-atomic
// snapshot: concurrent mutation during the walk can render a tree that
// never existed at any single instant.
func (t *Tree[K]) DotGraph() string {
	var b []byte
	b = append(b, "graph {\n"...)
	b = t.appendDotEdges(b, t.root, nil)
	b = append(b, "}\n"...)
	return string(b)
}

func (t *Tree[K]) appendDotEdges(b []byte, n *node[K], parentLabel []byte) []byte {
	label := []byte(t.dotLabel(n))
	if parentLabel != nil {
		b = append(b, parentLabel...)
		b = append(b, " -- "...)
		b = append(b, label...)
		b = append(b, ";\n"...)
	}
	if n.isLeaf() {
		return b
	}
	b = t.appendDotEdges(b, n.internal.left.Load(), label)
	b = t.appendDotEdges(b, n.internal.right.Load(), label)
	return b
}

func (t *Tree[K]) dotLabel(n *node[K]) string {
	if n == t.root {
		return "ROOT"
	}
	if n.isLeaf() {
		switch n.leaf.key {
		case t.sentinel1:
			return "DUMMY1"
		case t.sentinel2:
			return "DUMMY2"
		default:
			return fmt.Sprintf("L%v", n.leaf.key)
		}
	}
	return fmt.Sprintf("I%v", n.internal.key)
}
