package template

import "sort"

// Node is one level of a rule tree: an ordered set of placeholder edges.
// A nil subtree on an edge means "leaf, no further structure expected".
//
// Edges are a slice rather than a map because Group placeholders carry a
// parts sequence and cannot be comparable map keys; lookup goes through
// Placeholder.Equal.
type Node struct {
	Edges []Edge
}

// Edge pairs a placeholder with the subtree its matched objects must
// conform to.
type Edge struct {
	Key Placeholder
	Sub *Node
}

// NewNode builds a node from edges in declaration order.
func NewNode(edges ...Edge) *Node {
	n := &Node{Edges: make([]Edge, len(edges))}
	copy(n.Edges, edges)
	return n
}

// E builds a single edge. A nil sub marks a leaf.
func E(key Placeholder, sub *Node) Edge {
	return Edge{Key: key, Sub: sub}
}

// SortedEdges returns the node's edges in ascending priority order,
// stable with respect to declaration order.
func (n *Node) SortedEdges() []Edge {
	edges := make([]Edge, len(n.Edges))
	copy(edges, n.Edges)
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Key.Priority() < edges[j].Key.Priority()
	})
	return edges
}

// Lookup returns the subtree keyed by the given placeholder.
func (n *Node) Lookup(key Placeholder) (*Node, bool) {
	for _, e := range n.Edges {
		if e.Key.Equal(key) {
			return e.Sub, true
		}
	}
	return nil, false
}
