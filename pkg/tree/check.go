package tree

// Checked-state propagation. The engine follows a single global bottom-up
// policy: every mutation rewrites the affected subtree's membership and then
// reconciles the entire tree, so a parent is checked exactly when all of its
// leaf descendants are. Indeterminate is a derived display fact, never a
// stored value.
//
// Propagation traverses the full tree, not the visible slice, so collapsed
// subtrees stay correct. Disabled nodes participate in the arithmetic and
// toggles recurse into disabled subtrees unconditionally; the dispatcher is
// the layer that refuses toggles originating from a disabled node itself.

// ToggleChecked toggles id: unchecked ids are added along with every
// descendant, checked ids are removed along with every descendant. The whole
// tree is then reconciled and the result committed. Unknown ids are no-ops.
func (s *Session) ToggleChecked(id string) {
	if s.model.Node(id) == nil {
		return
	}
	next := copySet(s.checked)
	if next[id] {
		delete(next, id)
		for _, d := range s.model.DescendantIDs(id) {
			delete(next, d)
		}
	} else {
		next[id] = true
		for _, d := range s.model.DescendantIDs(id) {
			next[d] = true
		}
	}
	reconcile(s.model, next)
	s.commitChecked(next)
}

// SetCheckedGroup replaces the checked membership below parentID with exactly
// checkedChildIDs, then reconciles. This is the entry point for a UI-level
// checkbox group that reports its own membership wholesale. Ids outside the
// parent's subtree are ignored.
func (s *Session) SetCheckedGroup(parentID string, checkedChildIDs []string) {
	if s.model.Node(parentID) == nil {
		return
	}
	next := copySet(s.checked)
	descendants := s.model.DescendantIDs(parentID)
	inSubtree := idSet(descendants)
	for _, d := range descendants {
		delete(next, d)
	}
	for _, id := range checkedChildIDs {
		if inSubtree[id] {
			next[id] = true
		}
	}
	reconcile(s.model, next)
	s.commitChecked(next)
}

// Indeterminate reports whether id is a parent with some but not all of its
// leaf descendants checked. Leaves and zero-leaf parents are never
// indeterminate.
func (s *Session) Indeterminate(id string) bool {
	n := s.model.Node(id)
	if n == nil || n.IsLeaf() {
		return false
	}
	total, checked := leafTally(s.model, n, s.checked)
	return checked > 0 && checked < total
}

// reconcile runs the global bottom-up pass: post-order over the entire tree,
// children before parents, setting each parent's membership from its leaf
// tally. A parent with zero leaf descendants is never auto-checked. Calling
// reconcile twice with no intervening mutation yields an identical set.
func reconcile(m *Model, checked map[string]bool) {
	var walk func(n *Node) (leaves, checkedLeaves int)
	walk = func(n *Node) (int, int) {
		if n.IsLeaf() {
			if checked[n.ID] {
				return 1, 1
			}
			return 1, 0
		}
		total, hit := 0, 0
		for i := range n.Children {
			t, c := walk(&n.Children[i])
			total += t
			hit += c
		}
		if total > 0 && hit == total {
			checked[n.ID] = true
		} else {
			delete(checked, n.ID)
		}
		return total, hit
	}
	for i := range m.roots {
		walk(&m.roots[i])
	}
}

// leafTally counts the leaf descendants of n and how many are checked.
func leafTally(m *Model, n *Node, checked map[string]bool) (total, hit int) {
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			total++
			if checked[n.ID] {
				hit++
			}
			return
		}
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	for i := range n.Children {
		walk(&n.Children[i])
	}
	return total, hit
}
