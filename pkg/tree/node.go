// Package tree implements the state engine behind a hierarchical tree view:
// expansion state, single-node selection, tri-state checkbox propagation, and
// roving keyboard focus over the currently visible node set. Rendering is a
// separate concern; see pkg/ui for a terminal front end built on this package.
package tree

import "fmt"

// Node is a single entry in the tree. Identity is the ID, which must be
// unique across the whole tree. A node with no children is a leaf.
//
// The tree is immutable from the engine's perspective: changing it means
// handing a whole new node slice to the session, never editing in place.
type Node struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Children []Node `json:"children,omitempty" yaml:"children,omitempty"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Loading  bool   `json:"loading,omitempty" yaml:"loading,omitempty"` // display hint only
	Data     any    `json:"data,omitempty" yaml:"data,omitempty"`
}

// IsLeaf reports whether the node is a leaf. A node with an empty but
// present children list is a childless parent, not a leaf: it renders like a
// leaf but is excluded from checkbox arithmetic (it has no leaf descendants,
// so it can never be checked).
func (n *Node) IsLeaf() bool {
	return n.Children == nil
}

// Clone creates a deep copy of the node and its subtree. The opaque Data
// payload is copied by reference.
func (n Node) Clone() Node {
	clone := n
	if n.Children != nil {
		clone.Children = make([]Node, len(n.Children))
		for i, child := range n.Children {
			clone.Children[i] = child.Clone()
		}
	}
	return clone
}

// Validate checks that every node in the forest has a non-empty ID and that
// no two nodes share one. Names may repeat; ids may not.
func Validate(nodes []Node) error {
	seen := make(map[string]bool)
	var walk func(n *Node) error
	walk = func(n *Node) error {
		if n.ID == "" {
			return fmt.Errorf("node %q: id cannot be empty", n.Name)
		}
		if seen[n.ID] {
			return fmt.Errorf("duplicate node id %q", n.ID)
		}
		seen[n.ID] = true
		for i := range n.Children {
			if err := walk(&n.Children[i]); err != nil {
				return err
			}
		}
		return nil
	}
	for i := range nodes {
		if err := walk(&nodes[i]); err != nil {
			return err
		}
	}
	return nil
}

// countNodes returns the total node count of the forest.
func countNodes(nodes []Node) int {
	total := 0
	var walk func(n *Node)
	walk = func(n *Node) {
		total++
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	for i := range nodes {
		walk(&nodes[i])
	}
	return total
}
