package tree

// ToggleExpand flips the expansion state of id and commits the new set.
// Toggling a leaf is accepted (it reveals nothing but is not rejected);
// toggling an unknown id is a no-op since the tree can change between event
// dispatch and handling.
func (s *Session) ToggleExpand(id string) {
	if s.model.Node(id) == nil {
		return
	}
	next := copySet(s.expanded)
	if next[id] {
		delete(next, id)
	} else {
		next[id] = true
	}
	s.commitExpanded(next)
}

// Expand adds id to the expansion set if it is not already a member.
func (s *Session) Expand(id string) {
	if s.model.Node(id) == nil || s.expanded[id] {
		return
	}
	next := copySet(s.expanded)
	next[id] = true
	s.commitExpanded(next)
}

// Collapse removes id from the expansion set if it is a member.
func (s *Session) Collapse(id string) {
	if !s.expanded[id] {
		return
	}
	next := copySet(s.expanded)
	delete(next, id)
	s.commitExpanded(next)
}

// ExpandAll expands every parent node in the tree.
func (s *Session) ExpandAll() {
	next := make(map[string]bool)
	for _, id := range s.model.preorder {
		if s.model.HasChildren(id) {
			next[id] = true
		}
	}
	s.commitExpanded(next)
}

// CollapseAll collapses the whole tree back to its roots.
func (s *Session) CollapseAll() {
	s.commitExpanded(make(map[string]bool))
}
