package tree

// Model holds the lookup structures derived from a node forest: parent map,
// per-id depth, the full-tree disabled set, the document-order id sequence,
// and the visible-id sequence for the current expansion set.
//
// Everything except the visible sequence depends only on the tree itself and
// is built once per tree version. The visible sequence additionally depends
// on the expansion set and is recomputed whenever that changes. All of it is
// computed eagerly so navigation order is correct before any interaction.
type Model struct {
	roots    []Node
	nodeByID map[string]*Node
	parentOf map[string]string // child id -> parent id; roots absent
	depth    map[string]int
	disabled map[string]bool // derived from the full tree, not the visible slice
	preorder []string        // every id, depth-first pre-order
	visible  []string        // ids whose full ancestor chain is expanded
}

// NewModel builds a Model for the given forest and expansion set. The model
// keeps its own deep copy of the nodes so later caller mutations cannot skew
// the lookups.
func NewModel(nodes []Node, expanded map[string]bool) *Model {
	m := &Model{
		roots:    make([]Node, len(nodes)),
		nodeByID: make(map[string]*Node, countNodes(nodes)),
		parentOf: make(map[string]string),
		depth:    make(map[string]int),
		disabled: make(map[string]bool),
	}
	for i, n := range nodes {
		m.roots[i] = n.Clone()
	}
	m.index()
	m.RecomputeVisible(expanded)
	return m
}

// index performs the single pre-order traversal that populates nodeByID,
// parentOf, depth, disabled, and the document-order sequence.
func (m *Model) index() {
	var walk func(n *Node, parent string, depth int)
	walk = func(n *Node, parent string, depth int) {
		m.nodeByID[n.ID] = n
		if parent != "" {
			m.parentOf[n.ID] = parent
		}
		m.depth[n.ID] = depth
		if n.Disabled {
			m.disabled[n.ID] = true
		}
		m.preorder = append(m.preorder, n.ID)
		for i := range n.Children {
			walk(&n.Children[i], n.ID, depth+1)
		}
	}
	for i := range m.roots {
		walk(&m.roots[i], "", 0)
	}
}

// RecomputeVisible rebuilds the visible-id sequence: depth-first pre-order,
// descending into a node's children only when its id is in the expansion set.
// Roots are always visible. The disabled set is untouched; it already covers
// the full tree so descendants of a collapsed disabled node are known.
func (m *Model) RecomputeVisible(expanded map[string]bool) {
	m.visible = m.visible[:0]
	var walk func(n *Node)
	walk = func(n *Node) {
		m.visible = append(m.visible, n.ID)
		if expanded[n.ID] {
			for i := range n.Children {
				walk(&n.Children[i])
			}
		}
	}
	for i := range m.roots {
		walk(&m.roots[i])
	}
}

// Node returns the node with the given id, or nil if it does not exist.
func (m *Model) Node(id string) *Node {
	return m.nodeByID[id]
}

// Parent returns the parent id of the given id. Roots and unknown ids
// report ok == false.
func (m *Model) Parent(id string) (string, bool) {
	p, ok := m.parentOf[id]
	return p, ok
}

// Depth returns the nesting level of the id; roots are depth 0.
func (m *Model) Depth(id string) int {
	return m.depth[id]
}

// IsDisabled reports whether the id carries the disabled flag.
func (m *Model) IsDisabled(id string) bool {
	return m.disabled[id]
}

// HasChildren reports whether the id names a parent node.
func (m *Model) HasChildren(id string) bool {
	n := m.nodeByID[id]
	return n != nil && len(n.Children) > 0
}

// VisibleIDs returns the current visible-id sequence. The slice is owned by
// the model; callers must not mutate it.
func (m *Model) VisibleIDs() []string {
	return m.visible
}

// visibleIndex returns the position of id in the visible sequence, or -1.
func (m *Model) visibleIndex(id string) int {
	for i, v := range m.visible {
		if v == id {
			return i
		}
	}
	return -1
}

// DescendantIDs returns every id strictly below the given id, pre-order.
// Unknown ids yield nil.
func (m *Model) DescendantIDs(id string) []string {
	n := m.nodeByID[id]
	if n == nil {
		return nil
	}
	var ids []string
	var walk func(n *Node)
	walk = func(n *Node) {
		ids = append(ids, n.ID)
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	for i := range n.Children {
		walk(&n.Children[i])
	}
	return ids
}

// LeafIDs returns the ids of every leaf in the subtree rooted at id,
// pre-order. A leaf id yields itself. Unknown ids yield nil.
func (m *Model) LeafIDs(id string) []string {
	n := m.nodeByID[id]
	if n == nil {
		return nil
	}
	var ids []string
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			ids = append(ids, n.ID)
			return
		}
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	walk(n)
	return ids
}

// Len returns the total node count of the tree.
func (m *Model) Len() int {
	return len(m.preorder)
}
